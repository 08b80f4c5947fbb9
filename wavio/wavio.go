// Package wavio reads and writes mono PCM WAV files as sample buffers.
//
// Load accepts any channel count and collapses to mono by averaging; Save
// always writes 16-bit mono. The package sits at the file boundary only;
// processing code works on buffer.Buffer values and never touches disk.
package wavio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
)

const (
	saveBitDepth = 16
	// Full scale of the written format. Reads divide by 1 << (depth-1)
	// instead, so a round trip loses at most one quantization step.
	fullScale = 32767
)

// Load reads a PCM WAV file into a mono buffer. Multi-channel files are
// collapsed by averaging the channels of each frame; samples are scaled to
// [-1, 1] by the source bit depth.
func Load(path string) (buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return buffer.Buffer{}, fmt.Errorf("wavio: decode %s: %w", path, err)
	}

	if pcm.Format == nil || pcm.Format.NumChannels <= 0 || pcm.Format.SampleRate <= 0 {
		return buffer.Buffer{}, fmt.Errorf("wavio: decode %s: missing or invalid format chunk", path)
	}

	if pcm.SourceBitDepth <= 0 || pcm.SourceBitDepth > 32 {
		return buffer.Buffer{}, fmt.Errorf("wavio: decode %s: unsupported bit depth %d", path, pcm.SourceBitDepth)
	}

	channels := pcm.Format.NumChannels
	frames := len(pcm.Data) / channels
	scale := float64(int64(1) << (pcm.SourceBitDepth - 1))

	out := buffer.New(frames, pcm.Format.SampleRate)
	for i := range frames {
		sum := 0.0
		for c := range channels {
			sum += float64(pcm.Data[i*channels+c])
		}

		out.Data[i] = sum / float64(channels) / scale
	}

	return out, nil
}

// Save writes buf as a 16-bit mono PCM WAV file. Samples are clamped to
// [-1, 1] before scaling, so over-range processing output degrades to
// hard clipping rather than wrap-around.
func Save(path string, buf buffer.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("wavio: save %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, buf.SampleRate, saveBitDepth, 1, 1)

	data := make([]int, buf.Len())
	for i, v := range buf.Data {
		data[i] = int(math.Round(min(1, max(-1, v)) * fullScale))
	}

	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: saveBitDepth,
	}

	if err := enc.Write(pcm); err != nil {
		enc.Close()
		f.Close()

		return fmt.Errorf("wavio: write %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		f.Close()

		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("wavio: close %s: %w", path, err)
	}

	return nil
}
