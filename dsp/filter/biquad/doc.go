// Package biquad implements second-order IIR filter sections (biquads) in
// Direct Form II Transposed, plus section cascades for higher-order designs.
package biquad
