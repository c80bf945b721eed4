// ABOUTME: Internal engine contract between the encode loop and libfdk-aac
// ABOUTME: Defines the per-call buffer descriptor and parameter identifiers
package aacenc

// Parameter identifiers from aacenc_lib.h (AACENC_PARAM values).
const (
	paramAOT         = 0x0100
	paramBitRate     = 0x0101
	paramBitRateMode = 0x0102
	paramSampleRate  = 0x0103
	paramSBRMode     = 0x0104
	paramChannelMode = 0x0106
	paramTransMux    = 0x0300
)

// Parameter values used by the configurator.
const (
	aotAACLC          = 2 // MPEG-4 AAC Low Complexity
	sbrModeOff        = 0
	channelModeStereo = 2
	transMuxRaw       = 0
	transMuxADTS      = 2
)

// Buffer role identifiers (AACENC_BufferIdentifier values).
const (
	bufInAudioData  = 0
	bufOutBitstream = 3
)

// flushInSamples asks the engine to drain its internal delay lines instead
// of consuming new input.
const flushInSamples = -1

// bufDesc describes one memory region for exactly one engine call. It is
// built fresh per call from the current chunk and never persisted.
type bufDesc struct {
	data       []byte
	identifier int
	elemSize   int
}

// Info is the frame geometry the engine reports after configuration.
// Query it rather than caching it; geometry is a function of the current
// parameters.
type Info struct {
	// FrameLength is the number of samples per channel consumed per
	// encode call.
	FrameLength int
	// InputChannels is the configured channel count.
	InputChannels int
	// MaxOutBufBytes is the worst-case output size of a single call.
	MaxOutBufBytes int
	// EncoderDelay is the algorithmic look-ahead in samples.
	EncoderDelay int
	// ConfBuf is the AudioSpecificConfig blob, needed to mux raw access
	// units into a container.
	ConfBuf []byte
}

// engine is the narrow contract the configurator and encode loop drive.
// The production implementation is the libfdk-aac binding; tests substitute
// a counting fake to observe lifecycle and call sequencing.
type engine interface {
	// SetParam sets one named engine parameter.
	SetParam(param, value uint) error
	// Prime issues the mandatory null-buffer encode call that finalizes
	// parameter application. Must run after all SetParam calls and before
	// the first Encode.
	Prime() error
	// Info reads back the current frame geometry. Idempotent.
	Info() (Info, error)
	// Encode processes one chunk. consumed is in samples, produced in
	// bytes; both are authoritative per call. eof reports the engine's
	// logical end-of-stream. numInSamples is flushInSamples when draining.
	Encode(in, out bufDesc, numInSamples int) (consumed, produced int, eof bool, err error)
	// Close releases native resources. Safe to call more than once; only
	// the first call releases.
	Close() error
}
