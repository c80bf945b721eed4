// ABOUTME: AAC encoder library backed by libfdk-aac
// ABOUTME: Provides streaming PCM-to-AAC encoding over io.Reader/io.Writer
// Package aacenc encodes 16-bit stereo PCM audio to AAC using libfdk-aac.
//
// An Encoder wraps one native encoder session. It is configured once at
// construction and then drives a streaming encode: raw s16le PCM in, AAC
// bitstream out. The session owns native memory and must be released with
// Close.
//
// Example:
//
//	enc, err := aacenc.New(aacenc.EncoderParams{
//	    BitRate:    aacenc.CBR(128000),
//	    SampleRate: 44100,
//	    Transport:  aacenc.TransportADTS,
//	})
//	defer enc.Close()
//	info, err := enc.Encode(pcmReader, aacWriter)
//	_, err = enc.Flush(aacWriter)
//
// Encoders are not safe for concurrent use; each goroutine needs its own.
package aacenc
