// ABOUTME: PCM input sources for the AAC encoder
// ABOUTME: Decodes WAV, MP3, FLAC, raw PCM, and a synthetic test tone
// Package source provides PCM audio sources that feed the encoder.
//
// Every source delivers interleaved stereo 16-bit little-endian PCM through
// io.Reader and reports its native sample rate. Mono inputs are duplicated
// to both channels. A Read returning 0 bytes with io.EOF marks clean
// end-of-input.
//
// Example:
//
//	src, err := source.Open("song.flac")
//	defer src.Close()
//	enc, err := aacenc.New(aacenc.EncoderParams{
//	    BitRate:    aacenc.CBR(128000),
//	    SampleRate: src.SampleRate(),
//	    Transport:  aacenc.TransportADTS,
//	})
package source
