package processors

import (
	"errors"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/wire/common"
)

// NonFatalError is a per-file failure that lives alongside successful
// results in the same response.
type NonFatalError int

const (
	ErrCancelled NonFatalError = iota
	ErrEmptyFile
	ErrFileTooLarge
	ErrInvalidLanguage
	ErrWorkerJoinFailure
	ErrTimedOut
	ErrUnknown
)

func (e NonFatalError) Error() string {
	switch e {
	case ErrCancelled:
		return "cancelled"
	case ErrEmptyFile:
		return "empty file, nothing to do"
	case ErrFileTooLarge:
		return "file too large (limit: 256MB)"
	case ErrInvalidLanguage:
		return "invalid or unknown language"
	case ErrWorkerJoinFailure:
		return "internal worker error"
	case ErrTimedOut:
		return "timed out"
	default:
		return "unknown error"
	}
}

// ErrorCode projects the internal reason onto the wire enumeration. The
// mapping is fixed: an empty file is a well-formed request with an empty
// output, so it surfaces as NoError.
func (e NonFatalError) ErrorCode() common.ErrorCode {
	switch e {
	case ErrTimedOut, ErrCancelled:
		return common.ErrorCodeTimedOut
	case ErrWorkerJoinFailure, ErrUnknown:
		return common.ErrorCodeUnknownError
	case ErrInvalidLanguage:
		return common.ErrorCodeUnknownLanguage
	case ErrFileTooLarge:
		return common.ErrorCodeFileTooLarge
	case ErrEmptyFile:
		return common.ErrorCodeNoError
	default:
		return common.ErrorCodeUnknownError
	}
}

// FromHighlightError converts a highlighter error into a per-file reason. A
// running highlighter only observes the cancel flag after a timeout fired or
// the request is being torn down, so cancellation surfaces as TimedOut.
func FromHighlightError(err error) NonFatalError {
	switch {
	case errors.Is(err, highlight.ErrCancelled):
		return ErrTimedOut
	case errors.Is(err, highlight.ErrInvalidLanguage):
		return ErrInvalidLanguage
	default:
		return ErrUnknown
	}
}
