// Package spectrum provides the frequency-domain analysis pieces of the
// voice pipeline: magnitude extraction for framed spectra, single-frequency
// power measurement (Goertzel), and harmonic/percussive separation by median
// filtering of the magnitude spectrogram.
package spectrum
