package processors

import (
	"log/slog"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/wire/spans"
	"github.com/standardbeagle/daylight/internal/workers"
)

// SpanTuple is one (highlight index, start byte, end byte) triple.
type SpanTuple struct {
	Index int
	Start uint
	End   uint
}

// Spans consumes the same event stream as the HTML processor but emits
// numeric triples instead of markup. The response root also carries the
// highlight-name table so clients can resolve indices.
type Spans struct{}

func (Spans) Process(st *workers.State, ident uint16, filename string, lang *languages.Config,
	contents []byte, includeInjections bool, cancel *highlight.Flag) Outcome[SpanTuple] {

	var events []highlight.Event
	err := st.WithHighlighter(func(h *highlight.Highlighter) error {
		var err error
		events, err = h.Highlight(lang, contents, cancel, resolver(includeInjections))
		return err
	})
	if err != nil {
		return Failure[SpanTuple](ident, filename, lang, FromHighlightError(err))
	}

	// Single active-index state machine. Source outside any highlight is
	// unclassified text and is skipped; any other pairing is a protocol
	// anomaly that is logged and skipped without aborting the file.
	tuples := make([]SpanTuple, 0, len(events)/3)
	active := -1
	for _, ev := range events {
		switch {
		case ev.Kind == highlight.EventSource && active >= 0:
			tuples = append(tuples, SpanTuple{Index: active, Start: ev.Start, End: ev.End})
		case ev.Kind == highlight.EventHighlightStart && active < 0:
			active = ev.Highlight
		case ev.Kind == highlight.EventHighlightEnd && active >= 0:
			active = -1
		case ev.Kind == highlight.EventSource:
			// inactive source gap
		default:
			slog.Warn("unexpected highlight event",
				"kind", ev.Kind, "active", active, "filename", filename)
		}
	}
	return Success(ident, filename, lang, tuples)
}

func (Spans) BuildResponse(outcomes []Outcome[SpanTuple]) ([]byte, error) {
	builder := acquireBuilder()
	defer releaseBuilder(builder)

	documents := make([]flatbuffers.UOffsetT, 0, len(outcomes))
	for i := range outcomes {
		doc := &outcomes[i]
		filename := builder.CreateString(doc.Filename)
		var vec flatbuffers.UOffsetT
		if doc.Success {
			spans.DocumentStartSpansVector(builder, len(doc.Payload))
			for j := len(doc.Payload) - 1; j >= 0; j-- {
				t := doc.Payload[j]
				spans.CreateSpan(builder, uint16(t.Index), uint64(t.Start), uint64(t.End))
			}
			vec = builder.EndVector(len(doc.Payload))
		}

		spans.DocumentStart(builder)
		spans.DocumentAddIdent(builder, doc.Ident)
		spans.DocumentAddFilename(builder, filename)
		spans.DocumentAddLanguage(builder, doc.Tag())
		if doc.Success {
			spans.DocumentAddSpans(builder, vec)
		}
		spans.DocumentAddErrorCode(builder, doc.ErrorCode())
		documents = append(documents, spans.DocumentEnd(builder))
	}

	spans.ResponseStartDocumentsVector(builder, len(documents))
	for i := len(documents) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(documents[i])
	}
	docVec := builder.EndVector(len(documents))

	names := make([]flatbuffers.UOffsetT, len(languages.AllHighlightNames))
	for i, name := range languages.AllHighlightNames {
		names[i] = builder.CreateString(name)
	}
	spans.ResponseStartHighlightNamesVector(builder, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(names[i])
	}
	nameVec := builder.EndVector(len(names))

	spans.ResponseStart(builder)
	spans.ResponseAddDocuments(builder, docVec)
	spans.ResponseAddHighlightNames(builder, nameVec)
	builder.Finish(spans.ResponseEnd(builder))

	return append([]byte(nil), builder.FinishedBytes()...), nil
}
