// ABOUTME: MP3 file source
// ABOUTME: Decodes MP3 to s16le stereo PCM via hajimehoshi/go-mp3
package source

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Source decodes an MP3 file. The decoder emits s16le stereo at the
// file's native sample rate, which is exactly the encoder's input format.
type MP3Source struct {
	file    *os.File
	decoder *mp3.Decoder
}

// NewMP3 opens and prepares an MP3 file for decoding.
func NewMP3(path string) (*MP3Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode MP3 %s: %w", path, err)
	}

	return &MP3Source{file: f, decoder: decoder}, nil
}

func (s *MP3Source) Read(p []byte) (int, error) { return s.decoder.Read(p) }
func (s *MP3Source) SampleRate() int            { return s.decoder.SampleRate() }
func (s *MP3Source) Channels() int              { return 2 }
func (s *MP3Source) Close() error               { return s.file.Close() }
