// ABOUTME: Encoder session: configuration sequence and streaming encode loop
// ABOUTME: Pulls PCM chunks from a reader, pushes AAC bitstream to a writer
package aacenc

import (
	"fmt"
	"io"
	"os"
)

const (
	stereoChannels = 2
	bytesPerSample = 2 // s16le
)

// EncodeInfo reports cumulative totals for an encode pass: input samples
// the engine consumed and output bytes it produced.
type EncodeInfo struct {
	InputConsumed int
	OutputSize    int
}

// Encoder is one configured AAC encoding session. It exclusively owns the
// native engine handle until Close releases it. Not safe for concurrent use.
type Encoder struct {
	eng      engine
	channels int
}

// New opens a native encoder session and configures it with params. The
// session is released before returning if any configuration step fails.
func New(params EncoderParams) (*Encoder, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	eng, err := openFDK(0, stereoChannels)
	if err != nil {
		return nil, err
	}
	return newEncoder(eng, params)
}

// newEncoder takes ownership of eng: on configuration failure it closes eng
// and returns the engine's error.
func newEncoder(eng engine, params EncoderParams) (*Encoder, error) {
	if err := configure(eng, params); err != nil {
		eng.Close()
		return nil, err
	}
	return &Encoder{eng: eng, channels: stereoChannels}, nil
}

// configure issues the parameter sequence the engine requires, ending with
// the mandatory null-buffer prime call. Order matters: profile, rate
// control, sample rate, transport, SBR, channel mode, prime.
func configure(eng engine, p EncoderParams) error {
	if err := eng.SetParam(paramAOT, aotAACLC); err != nil {
		return err
	}

	if p.BitRate.mode == 0 {
		if err := eng.SetParam(paramBitRate, p.BitRate.bps); err != nil {
			return err
		}
	}
	if err := eng.SetParam(paramBitRateMode, p.BitRate.mode); err != nil {
		return err
	}

	if err := eng.SetParam(paramSampleRate, uint(p.SampleRate)); err != nil {
		return err
	}

	transMux := uint(transMuxRaw)
	if p.Transport == TransportADTS {
		transMux = transMuxADTS
	}
	if err := eng.SetParam(paramTransMux, transMux); err != nil {
		return err
	}

	if err := eng.SetParam(paramSBRMode, sbrModeOff); err != nil {
		return err
	}
	if err := eng.SetParam(paramChannelMode, channelModeStereo); err != nil {
		return err
	}

	return eng.Prime()
}

// Info returns the engine's current frame geometry. It is re-queried from
// the engine on every call rather than cached.
func (e *Encoder) Info() (Info, error) {
	if e.eng == nil {
		return Info{}, os.ErrClosed
	}
	return e.eng.Info()
}

// Encode reads s16le interleaved stereo PCM from r one chunk at a time and
// writes the produced AAC bitstream to w until r is exhausted or the engine
// signals end-of-stream. A read returning zero bytes ends the stream; short
// reads are encoded as-is. The returned totals are authoritative per-call
// engine counts, not derived from request sizes: the engine may buffer
// internally and consume less than offered or produce nothing on a
// successful call.
//
// On error the totals cover only the calls that completed; bytes already
// written to w are valid but the stream is incomplete.
func (e *Encoder) Encode(r io.Reader, w io.Writer) (EncodeInfo, error) {
	var stats EncodeInfo
	if e.eng == nil {
		return stats, os.ErrClosed
	}

	info, err := e.eng.Info()
	if err != nil {
		return stats, err
	}

	chunk := bytesPerSample * e.channels * info.FrameLength
	inBuf := make([]byte, chunk)
	outBuf := make([]byte, max(chunk, info.MaxOutBufBytes))

	for {
		n, rerr := r.Read(inBuf)
		if n == 0 {
			if rerr == nil || rerr == io.EOF {
				break
			}
			return stats, fmt.Errorf("read input: %w", rerr)
		}

		in := bufDesc{data: inBuf[:n], identifier: bufInAudioData, elemSize: bytesPerSample}
		out := bufDesc{data: outBuf, identifier: bufOutBitstream, elemSize: 1}
		consumed, produced, eof, err := e.eng.Encode(in, out, n/bytesPerSample)
		if err != nil {
			return stats, err
		}
		if eof {
			break
		}

		if produced > 0 {
			if _, werr := w.Write(outBuf[:produced]); werr != nil {
				return stats, fmt.Errorf("write output: %w", werr)
			}
		}
		stats.InputConsumed += consumed
		stats.OutputSize += produced
	}

	return stats, nil
}

// Flush drains the engine's internal look-ahead after the input is
// exhausted, writing any remaining bitstream to w. Encode does not flush on
// its own: call Flush once, after the final Encode, to recover the delayed
// tail of the stream.
func (e *Encoder) Flush(w io.Writer) (EncodeInfo, error) {
	var stats EncodeInfo
	if e.eng == nil {
		return stats, os.ErrClosed
	}

	info, err := e.eng.Info()
	if err != nil {
		return stats, err
	}
	outBuf := make([]byte, max(bytesPerSample*e.channels*info.FrameLength, info.MaxOutBufBytes))

	for {
		out := bufDesc{data: outBuf, identifier: bufOutBitstream, elemSize: 1}
		consumed, produced, eof, err := e.eng.Encode(bufDesc{}, out, flushInSamples)
		if err != nil {
			return stats, err
		}
		if eof {
			break
		}
		if produced > 0 {
			if _, werr := w.Write(outBuf[:produced]); werr != nil {
				return stats, fmt.Errorf("write output: %w", werr)
			}
		}
		stats.InputConsumed += consumed
		stats.OutputSize += produced
		if produced == 0 {
			// Engine has nothing buffered and did not signal EOF;
			// stop rather than spin.
			break
		}
	}

	return stats, nil
}

// Close releases the native session. The first call releases; later calls
// report os.ErrClosed.
func (e *Encoder) Close() error {
	if e.eng == nil {
		return os.ErrClosed
	}
	err := e.eng.Close()
	e.eng = nil
	return err
}
