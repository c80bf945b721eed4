// ABOUTME: Tests for the synthetic tone source
// ABOUTME: Checks duration accounting, stereo duplication, and clean EOF
package source

import (
	"encoding/binary"
	"io"
	"testing"
	"time"
)

func TestToneEmitsExactDuration(t *testing.T) {
	src := NewTone(8000, 250*time.Millisecond)
	defer src.Close()

	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	// 2000 frames of stereo s16le.
	if want := 2000 * 4; len(got) != want {
		t.Errorf("expected %d bytes, got %d", want, len(got))
	}

	// EOF must be clean and sticky.
	buf := make([]byte, 16)
	if n, err := src.Read(buf); n != 0 || err != io.EOF {
		t.Errorf("expected (0, io.EOF) after exhaustion, got (%d, %v)", n, err)
	}
}

func TestToneStereoDuplication(t *testing.T) {
	src := NewTone(44100, time.Second)
	buf := make([]byte, 400)
	n, err := src.Read(buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n%4 != 0 || n == 0 {
		t.Fatalf("expected whole stereo frames, got %d bytes", n)
	}

	nonZero := false
	for i := 0; i < n; i += 4 {
		left := int16(binary.LittleEndian.Uint16(buf[i : i+2]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2 : i+4]))
		if left != right {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i/4, left, right)
		}
		if left != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("expected a non-silent signal")
	}
}

func TestToneSampleRate(t *testing.T) {
	src := NewTone(48000, time.Second)
	if src.SampleRate() != 48000 {
		t.Errorf("expected 48000, got %d", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("expected 2 channels, got %d", src.Channels())
	}
}
