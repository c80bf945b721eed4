// ABOUTME: Tests against the real libfdk-aac engine
// ABOUTME: Construction across the parameter grid and an end-to-end smoke encode
package aacenc

import (
	"bytes"
	"testing"
)

func TestNewAcrossParamGrid(t *testing.T) {
	rates := []BitRate{
		CBR(128000),
		VBRVeryLow, VBRLow, VBRMedium, VBRHigh, VBRVeryHigh,
	}
	transports := []Transport{TransportADTS, TransportRaw}

	for _, rate := range rates {
		for _, transport := range transports {
			enc, err := New(EncoderParams{
				BitRate:    rate,
				SampleRate: 44100,
				Transport:  transport,
			})
			if err != nil {
				t.Fatalf("%v/%v: New failed: %v", rate, transport, err)
			}
			info, err := enc.Info()
			if err != nil {
				enc.Close()
				t.Fatalf("%v/%v: Info failed: %v", rate, transport, err)
			}
			if info.FrameLength <= 0 {
				t.Errorf("%v/%v: expected positive frame length, got %d", rate, transport, info.FrameLength)
			}
			if info.InputChannels != 2 {
				t.Errorf("%v/%v: expected 2 channels, got %d", rate, transport, info.InputChannels)
			}
			enc.Close()
		}
	}
}

func TestRawTransportExposesConfBuf(t *testing.T) {
	enc, err := New(EncoderParams{
		BitRate:    CBR(128000),
		SampleRate: 44100,
		Transport:  TransportRaw,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	info, err := enc.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if len(info.ConfBuf) == 0 {
		t.Error("expected a non-empty AudioSpecificConfig for raw transport")
	}
}

func TestEncodeSilenceSmoke(t *testing.T) {
	const (
		sampleRate = 44100
		bitrate    = 128000
		seconds    = 1
	)
	enc, err := New(EncoderParams{
		BitRate:    CBR(bitrate),
		SampleRate: sampleRate,
		Transport:  TransportADTS,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer enc.Close()

	// One second of stereo s16le silence.
	pcm := make([]byte, seconds*sampleRate*2*2)
	var sink bytes.Buffer

	stats, err := enc.Encode(bytes.NewReader(pcm), &sink)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := enc.Flush(&sink); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if sink.Len() == 0 {
		t.Fatal("expected non-empty output")
	}
	if stats.InputConsumed > seconds*sampleRate*2 {
		t.Errorf("consumed %d samples, more than were offered", stats.InputConsumed)
	}

	// At 128 kbps one second should land near 16000 bytes. Silence
	// compresses well, so allow a generous band.
	expected := seconds * bitrate / 8
	if sink.Len() > 4*expected {
		t.Errorf("output %d bytes is implausibly large for %d bps over %d s",
			sink.Len(), bitrate, seconds)
	}
}
