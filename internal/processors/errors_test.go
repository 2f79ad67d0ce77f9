package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/wire/common"
)

func TestErrorCodeProjection(t *testing.T) {
	// The wire projection is a fixed contract.
	cases := []struct {
		reason NonFatalError
		code   common.ErrorCode
	}{
		{ErrTimedOut, common.ErrorCodeTimedOut},
		{ErrCancelled, common.ErrorCodeTimedOut},
		{ErrWorkerJoinFailure, common.ErrorCodeUnknownError},
		{ErrUnknown, common.ErrorCodeUnknownError},
		{ErrInvalidLanguage, common.ErrorCodeUnknownLanguage},
		{ErrFileTooLarge, common.ErrorCodeFileTooLarge},
		{ErrEmptyFile, common.ErrorCodeNoError},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, c.reason.ErrorCode(), "reason %v", c.reason)
	}
}

func TestFromHighlightError(t *testing.T) {
	// A cancelled highlighter means a timeout fired somewhere in the request.
	assert.Equal(t, ErrTimedOut, FromHighlightError(highlight.ErrCancelled))
	assert.Equal(t, ErrInvalidLanguage, FromHighlightError(highlight.ErrInvalidLanguage))
	assert.Equal(t, ErrUnknown, FromHighlightError(highlight.ErrUnknown))
}

func TestOutcomeAccessors(t *testing.T) {
	s := Success[string](7, "a.c", nil, []string{"x"})
	assert.Equal(t, common.ErrorCodeNoError, s.ErrorCode())
	assert.Equal(t, common.LanguageUnspecified, s.Tag())

	f := Failure[string](9, "b.c", nil, ErrFileTooLarge)
	assert.Equal(t, common.ErrorCodeFileTooLarge, f.ErrorCode())
	assert.Equal(t, uint16(9), f.Ident)
	assert.Equal(t, "b.c", f.Filename)
}
