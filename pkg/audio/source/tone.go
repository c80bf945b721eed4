// ABOUTME: Synthetic test tone source
// ABOUTME: Generates a finite 440Hz stereo sine wave as s16le PCM
package source

import (
	"io"
	"math"
	"time"
)

const toneFrequency = 440.0 // A4

// ToneSource generates a 440Hz sine wave for a fixed duration, duplicated
// to both stereo channels at half amplitude.
type ToneSource struct {
	sampleRate int
	remaining  int // frames left to emit
	index      uint64
}

// NewTone creates a tone source that emits duration's worth of frames at
// sampleRate and then reports io.EOF.
func NewTone(sampleRate int, duration time.Duration) *ToneSource {
	frames := int(duration.Seconds() * float64(sampleRate))
	return &ToneSource{sampleRate: sampleRate, remaining: frames}
}

func (s *ToneSource) Read(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	frames := len(p) / 4 // 2 channels x 2 bytes
	if frames > s.remaining {
		frames = s.remaining
	}
	if frames == 0 {
		return 0, nil
	}

	for i := 0; i < frames; i++ {
		t := float64(s.index+uint64(i)) / float64(s.sampleRate)
		sample := math.Sin(2 * math.Pi * toneFrequency * t)
		pcm := int16(sample * 32767.0 * 0.5)

		p[i*4] = byte(pcm)
		p[i*4+1] = byte(pcm >> 8)
		p[i*4+2] = byte(pcm)
		p[i*4+3] = byte(pcm >> 8)
	}

	s.index += uint64(frames)
	s.remaining -= frames
	return frames * 4, nil
}

func (s *ToneSource) SampleRate() int { return s.sampleRate }
func (s *ToneSource) Channels() int   { return 2 }
func (s *ToneSource) Close() error    { return nil }
