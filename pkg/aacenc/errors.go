// ABOUTME: Error taxonomy for libfdk-aac error codes
// ABOUTME: Maps the engine's numeric codes to typed errors with fixed messages
package aacenc

import "fmt"

// Error codes reported by libfdk-aac (AACENC_ERROR values).
const (
	codeOK                    = 0x00
	CodeInvalidHandle    uint = 0x20
	CodeMemoryError      uint = 0x21
	CodeUnsupportedParam uint = 0x22
	CodeInvalidConfig    uint = 0x23
	CodeInitError        uint = 0x40
	CodeInitAACError     uint = 0x41
	CodeInitSBRError     uint = 0x42
	CodeInitTPError      uint = 0x43
	CodeInitMetaError    uint = 0x44
	CodeInitMPSError     uint = 0x45
	CodeEncodeError      uint = 0x60
	codeEncodeEOF        uint = 0x61 // end-of-stream status, not an error
)

var errorMessages = map[uint]string{
	CodeInvalidHandle:    "handle passed to function call was invalid",
	CodeMemoryError:      "memory allocation failed",
	CodeUnsupportedParam: "parameter not available",
	CodeInvalidConfig:    "configuration not provided",
	CodeInitError:        "general initialization error",
	CodeInitAACError:     "AAC library initialization error",
	CodeInitSBRError:     "SBR library initialization error",
	CodeInitTPError:      "transport library initialization error",
	CodeInitMetaError:    "metadata library initialization error",
	CodeInitMPSError:     "MPS library initialization error",
	CodeEncodeError:      "the encoding process was interrupted by an unexpected error",
}

// Error is an encoder failure reported by libfdk-aac. Code is the engine's
// numeric error code, kept for diagnostics. I/O failures from the input
// source or output sink are never wrapped in an Error; they surface as
// ordinary wrapped errors.
type Error struct {
	Code uint
}

func (e *Error) Error() string {
	msg, ok := errorMessages[e.Code]
	if !ok {
		msg = "unknown encoder error"
	}
	return fmt.Sprintf("aacenc: %s (code 0x%02x)", msg, e.Code)
}

// checkCode converts an engine return code to an error, treating OK as nil.
func checkCode(code uint) error {
	if code == codeOK {
		return nil
	}
	return &Error{Code: code}
}
