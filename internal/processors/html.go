package processors

import (
	"bytes"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/standardbeagle/daylight/internal/highlight"
	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/wire/html"
	"github.com/standardbeagle/daylight/internal/workers"
)

// HTML renders highlighted files as line-delimited markup; each span carries
// a class attribute naming its highlight label.
type HTML struct{}

func (HTML) Process(st *workers.State, ident uint16, filename string, lang *languages.Config,
	contents []byte, includeInjections bool, cancel *highlight.Flag) Outcome[string] {

	var events []highlight.Event
	err := st.WithHighlighter(func(h *highlight.Highlighter) error {
		var err error
		events, err = h.Highlight(lang, contents, cancel, resolver(includeInjections))
		return err
	})
	if err != nil {
		return Failure[string](ident, filename, lang, FromHighlightError(err))
	}

	var lines []string
	err = st.WithRenderer(func(r *highlight.HTMLRenderer) error {
		if err := r.Render(events, contents, cancel, classAttribute); err != nil {
			return err
		}
		lines = append([]string(nil), r.Lines()...)
		return nil
	})
	if err != nil {
		return Failure[string](ident, filename, lang, FromHighlightError(err))
	}
	return Success(ident, filename, lang, lines)
}

func classAttribute(hl int, out *bytes.Buffer) {
	out.WriteString(`class="`)
	out.WriteString(languages.AllHighlightNames[hl])
	out.WriteByte('"')
}

func (HTML) BuildResponse(outcomes []Outcome[string]) ([]byte, error) {
	builder := acquireBuilder()
	defer releaseBuilder(builder)

	documents := make([]flatbuffers.UOffsetT, 0, len(outcomes))
	for i := range outcomes {
		doc := &outcomes[i]
		filename := builder.CreateString(doc.Filename)
		var lines flatbuffers.UOffsetT
		if doc.Success {
			offsets := make([]flatbuffers.UOffsetT, len(doc.Payload))
			for j, line := range doc.Payload {
				offsets[j] = builder.CreateString(line)
			}
			html.DocumentStartLinesVector(builder, len(offsets))
			for j := len(offsets) - 1; j >= 0; j-- {
				builder.PrependUOffsetT(offsets[j])
			}
			lines = builder.EndVector(len(offsets))
		}

		html.DocumentStart(builder)
		html.DocumentAddIdent(builder, doc.Ident)
		html.DocumentAddFilename(builder, filename)
		html.DocumentAddLanguage(builder, doc.Tag())
		if doc.Success {
			html.DocumentAddLines(builder, lines)
		}
		html.DocumentAddErrorCode(builder, doc.ErrorCode())
		documents = append(documents, html.DocumentEnd(builder))
	}

	html.ResponseStartDocumentsVector(builder, len(documents))
	for i := len(documents) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(documents[i])
	}
	docVec := builder.EndVector(len(documents))

	html.ResponseStart(builder)
	html.ResponseAddDocuments(builder, docVec)
	builder.Finish(html.ResponseEnd(builder))

	return append([]byte(nil), builder.FinishedBytes()...), nil
}
