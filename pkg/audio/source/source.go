// ABOUTME: Source interface and file-type dispatch
// ABOUTME: Opens WAV, MP3, FLAC files and wraps raw PCM streams
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source provides interleaved stereo s16le PCM samples.
type Source interface {
	// Read fills p with s16le interleaved stereo PCM. A zero-byte read
	// with io.EOF signals clean end-of-input.
	Read(p []byte) (int, error)
	// SampleRate returns the stream's sample rate in Hz.
	SampleRate() int
	// Channels returns the delivered channel count, always 2.
	Channels() int
	// Close releases the underlying file or stream.
	Close() error
}

// Open creates a source from a file path, picking the decoder by extension.
func Open(path string) (Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}

	var (
		src Source
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		src, err = NewWAV(path)
	case ".mp3":
		src, err = NewMP3(path)
	case ".flac":
		src, err = NewFLAC(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac)", ext)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// RawSource wraps an already-decoded s16le stereo PCM byte stream at an
// explicit sample rate, for inputs with no container to sniff.
type RawSource struct {
	r          io.ReadCloser
	sampleRate int
}

// NewRaw wraps r as a raw PCM source at sampleRate Hz.
func NewRaw(r io.ReadCloser, sampleRate int) (*RawSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	return &RawSource{r: r, sampleRate: sampleRate}, nil
}

func (s *RawSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *RawSource) SampleRate() int            { return s.sampleRate }
func (s *RawSource) Channels() int              { return 2 }
func (s *RawSource) Close() error               { return s.r.Close() }
