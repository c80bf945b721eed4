// ABOUTME: Encoder parameter types and validation
// ABOUTME: Bit-rate policy, sample rate, and bitstream transport selection
package aacenc

import "fmt"

// BitRate selects the encoder's rate control policy: a constant bit-rate at
// an explicit bits-per-second target, or one of five variable bit-rate
// quality tiers. The zero value is invalid; construction must pick one.
type BitRate struct {
	mode uint // 0 = CBR, 1..5 = VBR tier
	bps  uint // bits per second, CBR only
}

// CBR returns a constant bit-rate policy at the given bits per second.
func CBR(bitsPerSecond uint) BitRate {
	return BitRate{bps: bitsPerSecond}
}

// Variable bit-rate quality tiers, lowest to highest quality.
var (
	VBRVeryLow  = BitRate{mode: 1}
	VBRLow      = BitRate{mode: 2}
	VBRMedium   = BitRate{mode: 3}
	VBRHigh     = BitRate{mode: 4}
	VBRVeryHigh = BitRate{mode: 5}
)

func (b BitRate) valid() bool {
	return b.mode >= 1 && b.mode <= 5 || b.mode == 0 && b.bps > 0
}

func (b BitRate) String() string {
	if b.mode == 0 {
		return fmt.Sprintf("CBR %d bps", b.bps)
	}
	return fmt.Sprintf("VBR tier %d", b.mode)
}

// Transport selects the bitstream framing the encoder emits.
type Transport int

const (
	// TransportRaw emits raw access units with no framing; delimiting is
	// the caller's responsibility (use Info().ConfBuf for container muxing).
	TransportRaw Transport = iota
	// TransportADTS emits self-delimited ADTS frames.
	TransportADTS
)

func (t Transport) String() string {
	switch t {
	case TransportRaw:
		return "raw"
	case TransportADTS:
		return "adts"
	}
	return fmt.Sprintf("Transport(%d)", int(t))
}

// EncoderParams configures an encoder at construction time. BitRate and
// SampleRate have no defaults and must be set explicitly.
type EncoderParams struct {
	BitRate    BitRate
	SampleRate int
	Transport  Transport
}

func (p EncoderParams) validate() error {
	if !p.BitRate.valid() {
		return fmt.Errorf("aacenc: bit rate not specified")
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("aacenc: invalid sample rate %d", p.SampleRate)
	}
	if p.Transport != TransportRaw && p.Transport != TransportADTS {
		return fmt.Errorf("aacenc: invalid transport %d", int(p.Transport))
	}
	return nil
}
