// ABOUTME: WAV file source
// ABOUTME: Streams the data chunk of 16-bit PCM RIFF/WAVE files
package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WAVSource streams 16-bit PCM from a RIFF/WAVE file. Mono files are
// duplicated to stereo on the fly.
type WAVSource struct {
	file        *os.File
	data        io.Reader
	sampleRate  int
	srcChannels int
	monoBuf     []byte
}

// NewWAV opens a WAV file and positions the stream at its data chunk.
// Only uncompressed 16-bit PCM with one or two channels is supported.
func NewWAV(path string) (*WAVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}

	s, err := parseWAV(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to parse WAV %s: %w", path, err)
	}
	s.file = f
	return s, nil
}

func parseWAV(r io.Reader) (*WAVSource, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("short RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	var (
		sampleRate int
		channels   int
		haveFmt    bool
	)
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			return nil, fmt.Errorf("missing data chunk: %w", err)
		}
		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk too small: %d bytes", size)
			}
			var fmtBuf [16]byte
			if _, err := io.ReadFull(r, fmtBuf[:]); err != nil {
				return nil, fmt.Errorf("short fmt chunk: %w", err)
			}
			if audioFormat := binary.LittleEndian.Uint16(fmtBuf[0:2]); audioFormat != 1 {
				return nil, fmt.Errorf("unsupported WAV audio format %d (PCM only)", audioFormat)
			}
			channels = int(binary.LittleEndian.Uint16(fmtBuf[2:4]))
			if channels != 1 && channels != 2 {
				return nil, fmt.Errorf("unsupported channel count %d (mono or stereo only)", channels)
			}
			sampleRate = int(binary.LittleEndian.Uint32(fmtBuf[4:8]))
			if bits := binary.LittleEndian.Uint16(fmtBuf[14:16]); bits != 16 {
				return nil, fmt.Errorf("unsupported bit depth %d (16-bit only)", bits)
			}
			// Skip any fmt extension bytes plus pad byte.
			if skip := int64(size) - 16 + int64(size&1); skip > 0 {
				if _, err := io.CopyN(io.Discard, r, skip); err != nil {
					return nil, err
				}
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("data chunk before fmt chunk")
			}
			return &WAVSource{
				data:        io.LimitReader(r, int64(size)),
				sampleRate:  sampleRate,
				srcChannels: channels,
			}, nil
		default:
			if _, err := io.CopyN(io.Discard, r, int64(size)+int64(size&1)); err != nil {
				return nil, fmt.Errorf("skip %q chunk: %w", id, err)
			}
		}
	}
}

func (s *WAVSource) Read(p []byte) (int, error) {
	if s.srcChannels == 2 {
		return s.data.Read(p)
	}

	// Mono: read half as many sample bytes, emit each sample twice.
	want := len(p) / 4 * 2
	if want == 0 {
		return 0, nil
	}
	if cap(s.monoBuf) < want {
		s.monoBuf = make([]byte, want)
	}
	n, err := s.data.Read(s.monoBuf[:want])
	if n == 0 {
		return 0, err
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		lo, hi := s.monoBuf[i*2], s.monoBuf[i*2+1]
		p[i*4], p[i*4+1] = lo, hi
		p[i*4+2], p[i*4+3] = lo, hi
	}
	return samples * 4, nil
}

func (s *WAVSource) SampleRate() int { return s.sampleRate }
func (s *WAVSource) Channels() int   { return 2 }
func (s *WAVSource) Close() error    { return s.file.Close() }
