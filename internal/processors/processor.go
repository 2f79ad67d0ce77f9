// Package processors defines the pluggable per-file highlight operation and
// response assembly, with HTML and span-tuple implementations sharing one
// dispatch engine.
package processors

import (
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/wire/common"
	"github.com/standardbeagle/daylight/internal/workers"
)

// Outcome is the result of one enqueued highlight task.
type Outcome[T any] struct {
	Ident    uint16
	Filename string
	Language *languages.Config
	Success  bool
	Payload  []T
	Reason   NonFatalError
}

func Success[T any](ident uint16, filename string, lang *languages.Config, payload []T) Outcome[T] {
	return Outcome[T]{Ident: ident, Filename: filename, Language: lang, Success: true, Payload: payload}
}

func Failure[T any](ident uint16, filename string, lang *languages.Config, reason NonFatalError) Outcome[T] {
	return Outcome[T]{Ident: ident, Filename: filename, Language: lang, Reason: reason}
}

// Tag returns the wire language tag, or Unspecified when resolution failed.
func (o *Outcome[T]) Tag() common.Language {
	if o.Language == nil {
		return common.LanguageUnspecified
	}
	return o.Language.Tag
}

// ErrorCode returns the wire error code for this outcome.
func (o *Outcome[T]) ErrorCode() common.ErrorCode {
	if o.Success {
		return common.ErrorCodeNoError
	}
	return o.Reason.ErrorCode()
}

// Processor is the capability pair the dispatch engine is generic over:
// Process runs on a blocking worker and must poll the cancellation flag;
// BuildResponse runs on the request goroutine once every outcome has been
// harvested.
type Processor[T any] interface {
	Process(st *workers.State, ident uint16, filename string, lang *languages.Config,
		contents []byte, includeInjections bool, cancel *highlight.Flag) Outcome[T]
	BuildResponse(outcomes []Outcome[T]) ([]byte, error)
}

// resolver returns the injection resolver for a file, or nil when embedded
// regions should keep the host language.
func resolver(includeInjections bool) highlight.Resolver {
	if !includeInjections {
		return nil
	}
	return languages.FromName
}

// Response builders are reused across requests; construction is the
// expensive part of FlatBuffers encoding.
var builderPool = sync.Pool{
	New: func() any {
		return flatbuffers.NewBuilder(4096)
	},
}

func acquireBuilder() *flatbuffers.Builder {
	b := builderPool.Get().(*flatbuffers.Builder)
	b.Reset()
	return b
}

func releaseBuilder(b *flatbuffers.Builder) {
	builderPool.Put(b)
}
