// ABOUTME: cgo binding to the libfdk-aac encoder
// ABOUTME: Owns the native session handle and the buffer-descriptor call protocol
package aacenc

/*
#cgo pkg-config: fdk-aac
#include <string.h>
#include <fdk-aac/aacenc_lib.h>

// aacenc_encode assembles the per-call descriptor structures C-side so that
// only plain pointers and integers cross the cgo boundary. A NULL inBuf
// leaves the input descriptor empty, which is how a flush call looks.
static AACENC_ERROR aacenc_encode(HANDLE_AACENCODER h,
		void *inBuf, INT inSize, INT inElSize, INT inIdent, INT numInSamples,
		void *outBuf, INT outSize, INT outElSize, INT outIdent,
		INT *numInSamplesOut, INT *numOutBytes) {
	AACENC_BufDesc inDesc;
	AACENC_BufDesc outDesc;
	AACENC_InArgs inArgs;
	AACENC_OutArgs outArgs;
	void *inBufs[1], *outBufs[1];
	INT inIdents[1], inSizes[1], inElSizes[1];
	INT outIdents[1], outSizes[1], outElSizes[1];
	AACENC_ERROR err;

	memset(&inDesc, 0, sizeof(inDesc));
	memset(&outDesc, 0, sizeof(outDesc));
	memset(&inArgs, 0, sizeof(inArgs));
	memset(&outArgs, 0, sizeof(outArgs));

	if (inBuf != NULL) {
		inBufs[0] = inBuf;
		inIdents[0] = inIdent;
		inSizes[0] = inSize;
		inElSizes[0] = inElSize;
		inDesc.numBufs = 1;
		inDesc.bufs = inBufs;
		inDesc.bufferIdentifiers = inIdents;
		inDesc.bufSizes = inSizes;
		inDesc.bufElSizes = inElSizes;
	}

	outBufs[0] = outBuf;
	outIdents[0] = outIdent;
	outSizes[0] = outSize;
	outElSizes[0] = outElSize;
	outDesc.numBufs = 1;
	outDesc.bufs = outBufs;
	outDesc.bufferIdentifiers = outIdents;
	outDesc.bufSizes = outSizes;
	outDesc.bufElSizes = outElSizes;

	inArgs.numInSamples = numInSamples;
	inArgs.numAncBytes = 0;

	err = aacEncEncode(h, &inDesc, &outDesc, &inArgs, &outArgs);
	*numInSamplesOut = outArgs.numInSamples;
	*numOutBytes = outArgs.numOutBytes;
	return err;
}
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// fdkEngine is the production engine: a single opaque libfdk-aac session.
// The handle is exclusively owned and released exactly once by Close.
type fdkEngine struct {
	h C.HANDLE_AACENCODER
}

// openFDK allocates a native encoder session. The finalizer is a leak
// backstop only; callers are expected to Close deterministically.
func openFDK(maxModules, maxChannels int) (*fdkEngine, error) {
	var h C.HANDLE_AACENCODER
	if err := checkCode(uint(C.aacEncOpen(&h, C.UINT(maxModules), C.UINT(maxChannels)))); err != nil {
		return nil, err
	}
	e := &fdkEngine{h: h}
	runtime.SetFinalizer(e, func(e *fdkEngine) { e.Close() })
	return e, nil
}

func (e *fdkEngine) SetParam(param, value uint) error {
	return checkCode(uint(C.aacEncoder_SetParam(e.h, C.AACENC_PARAM(param), C.UINT(value))))
}

// Prime issues the required encode call with null buffers that applies the
// configured parameters.
func (e *fdkEngine) Prime() error {
	return checkCode(uint(C.aacEncEncode(e.h, nil, nil, nil, nil)))
}

func (e *fdkEngine) Info() (Info, error) {
	var ci C.AACENC_InfoStruct
	if err := checkCode(uint(C.aacEncInfo(e.h, &ci))); err != nil {
		return Info{}, err
	}
	return Info{
		FrameLength:    int(ci.frameLength),
		InputChannels:  int(ci.inputChannels),
		MaxOutBufBytes: int(ci.maxOutBufBytes),
		EncoderDelay:   int(ci.nDelay),
		ConfBuf:        C.GoBytes(unsafe.Pointer(&ci.confBuf[0]), C.int(ci.confSize)),
	}, nil
}

func (e *fdkEngine) Encode(in, out bufDesc, numInSamples int) (int, int, bool, error) {
	if e.h == nil {
		return 0, 0, false, &Error{Code: CodeInvalidHandle}
	}

	var inPtr, outPtr unsafe.Pointer
	if len(in.data) > 0 {
		inPtr = unsafe.Pointer(&in.data[0])
	}
	if len(out.data) > 0 {
		outPtr = unsafe.Pointer(&out.data[0])
	}

	var consumed, produced C.INT
	code := uint(C.aacenc_encode(e.h,
		inPtr, C.INT(len(in.data)), C.INT(in.elemSize), C.INT(in.identifier), C.INT(numInSamples),
		outPtr, C.INT(len(out.data)), C.INT(out.elemSize), C.INT(out.identifier),
		&consumed, &produced))
	if code == codeEncodeEOF {
		return 0, 0, true, nil
	}
	if err := checkCode(code); err != nil {
		return 0, 0, false, err
	}
	return int(consumed), int(produced), false, nil
}

func (e *fdkEngine) Close() error {
	if e.h == nil {
		return nil
	}
	C.aacEncClose(&e.h)
	e.h = nil
	runtime.SetFinalizer(e, nil)
	return nil
}
