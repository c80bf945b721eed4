// ABOUTME: Tests for the WAV source
// ABOUTME: Parses synthesized RIFF/WAVE bytes and checks PCM passthrough
package source

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// buildWAV assembles a minimal RIFF/WAVE file around the given s16le data.
func buildWAV(channels int, sampleRate int, data []byte, extraChunk bool) []byte {
	var buf bytes.Buffer

	var body bytes.Buffer
	body.WriteString("WAVE")

	if extraChunk {
		body.WriteString("LIST")
		junk := []byte{1, 2, 3, 4, 5} // odd size exercises pad handling
		binary.Write(&body, binary.LittleEndian, uint32(len(junk)))
		body.Write(junk)
		body.WriteByte(0) // pad
	}

	body.WriteString("fmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&body, binary.LittleEndian, uint16(channels))
	binary.Write(&body, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&body, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&body, binary.LittleEndian, uint16(channels*2))
	binary.Write(&body, binary.LittleEndian, uint16(16))

	body.WriteString("data")
	binary.Write(&body, binary.LittleEndian, uint32(len(data)))
	body.Write(data)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())
	return buf.Bytes()
}

func TestWAVStereoPassthrough(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	src, err := parseWAV(bytes.NewReader(buildWAV(2, 44100, data, false)))
	if err != nil {
		t.Fatalf("parseWAV failed: %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("expected sample rate 44100, got %d", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("expected 2 channels, got %d", src.Channels())
	}

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("expected %x, got %x", data, got)
	}
}

func TestWAVMonoUpmix(t *testing.T) {
	// Two mono samples: 0x0201 and 0x0403.
	data := []byte{0x01, 0x02, 0x03, 0x04}
	src, err := parseWAV(bytes.NewReader(buildWAV(1, 22050, data, false)))
	if err != nil {
		t.Fatalf("parseWAV failed: %v", err)
	}

	if src.Channels() != 2 {
		t.Errorf("mono source must report 2 delivered channels, got %d", src.Channels())
	}

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := []byte{0x01, 0x02, 0x01, 0x02, 0x03, 0x04, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("expected upmix %x, got %x", want, got)
	}
}

func TestWAVSkipsUnknownChunks(t *testing.T) {
	data := []byte{0x11, 0x22}
	src, err := parseWAV(bytes.NewReader(buildWAV(2, 48000, data, true)))
	if err != nil {
		t.Fatalf("parseWAV failed: %v", err)
	}
	got, err := io.ReadAll(src)
	if err != nil || !bytes.Equal(got, data) {
		t.Errorf("expected %x, got %x (err %v)", data, got, err)
	}
}

func TestWAVRejectsNonRIFF(t *testing.T) {
	if _, err := parseWAV(bytes.NewReader([]byte("OggS this is not a wav file"))); err == nil {
		t.Error("expected error for non-RIFF input")
	}
}

func TestWAVRejectsNonPCM(t *testing.T) {
	wav := buildWAV(2, 44100, []byte{0, 0}, false)
	// Patch the audio format field (offset 20: RIFF(12) + "fmt "(4) + size(4))
	// to 3 (IEEE float).
	binary.LittleEndian.PutUint16(wav[20:22], 3)
	if _, err := parseWAV(bytes.NewReader(wav)); err == nil {
		t.Error("expected error for non-PCM format")
	}
}

func TestWAVRejectsTruncated(t *testing.T) {
	wav := buildWAV(2, 44100, []byte{0, 0, 0, 0}, false)
	if _, err := parseWAV(bytes.NewReader(wav[:16])); err == nil {
		t.Error("expected error for truncated file")
	}
}
