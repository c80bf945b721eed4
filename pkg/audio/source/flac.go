// ABOUTME: FLAC file source
// ABOUTME: Decodes FLAC frames to s16le stereo PCM via mewkiz/flac
package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// FLACSource decodes a FLAC file frame by frame, converting to s16le
// stereo. Mono streams are duplicated to both channels; bit depths other
// than 16 are scaled.
type FLACSource struct {
	file       *os.File
	stream     *flac.Stream
	sampleRate int
	channels   int
	bitDepth   int
	pending    []byte
}

// NewFLAC opens a FLAC file and reads its stream info.
func NewFLAC(path string) (*FLACSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode FLAC %s: %w", path, err)
	}

	info := stream.Info
	if info.NChannels != 1 && info.NChannels != 2 {
		f.Close()
		return nil, fmt.Errorf("unsupported FLAC channel count %d (mono or stereo only)", info.NChannels)
	}

	return &FLACSource{
		file:       f,
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}

func (s *FLACSource) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		fr, err := s.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}
		s.pending = s.appendFrame(s.pending, fr)
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// appendFrame interleaves one decoded frame as s16le stereo bytes.
func (s *FLACSource) appendFrame(dst []byte, fr *frame.Frame) []byte {
	for i := 0; i < int(fr.BlockSize); i++ {
		left := s.sample16(fr.Subframes[0].Samples[i])
		right := left
		if s.channels == 2 {
			right = s.sample16(fr.Subframes[1].Samples[i])
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(left))
		dst = binary.LittleEndian.AppendUint16(dst, uint16(right))
	}
	return dst
}

// sample16 scales a decoded sample to the 16-bit range.
func (s *FLACSource) sample16(sample int32) int16 {
	switch {
	case s.bitDepth == 16:
		return int16(sample)
	case s.bitDepth > 16:
		return int16(sample >> (s.bitDepth - 16))
	default:
		return int16(sample << (16 - s.bitDepth))
	}
}

func (s *FLACSource) SampleRate() int { return s.sampleRate }
func (s *FLACSource) Channels() int   { return 2 }
func (s *FLACSource) Close() error    { return s.file.Close() }
