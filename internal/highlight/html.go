package highlight

import (
	"bytes"
	"strings"
)

// AttributeFunc writes the attributes of an opening span for one highlight
// index, e.g. `class="keyword"`.
type AttributeFunc func(highlight int, out *bytes.Buffer)

// HTMLRenderer turns an event stream into line-delimited markup. Open spans
// are closed at each line break and reopened on the next line, so every line
// is a well-formed fragment on its own. The renderer is reusable; Reset
// clears it between files.
type HTMLRenderer struct {
	lines []string
	buf   bytes.Buffer
	stack []int
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Reset clears all renderer state.
func (r *HTMLRenderer) Reset() {
	r.lines = r.lines[:0]
	r.buf.Reset()
	r.stack = r.stack[:0]
}

// Lines returns the rendered lines. Every line but possibly the last ends in
// a newline, so concatenating them reproduces the document.
func (r *HTMLRenderer) Lines() []string {
	return r.lines
}

// Render consumes the event stream. The cancellation flag is polled before
// the first event and then every cancelPollInterval events.
func (r *HTMLRenderer) Render(events []Event, source []byte, cancel *Flag, attr AttributeFunc) error {
	for i, ev := range events {
		if i%cancelPollInterval == 0 && cancel.IsSet() {
			return ErrCancelled
		}
		switch ev.Kind {
		case EventHighlightStart:
			r.openSpan(ev.Highlight, attr)
			r.stack = append(r.stack, ev.Highlight)
		case EventHighlightEnd:
			if len(r.stack) > 0 {
				r.buf.WriteString("</span>")
				r.stack = r.stack[:len(r.stack)-1]
			}
		case EventSource:
			r.writeSource(source[ev.Start:ev.End], attr)
		}
	}
	if r.buf.Len() > 0 {
		r.lines = append(r.lines, r.buf.String())
		r.buf.Reset()
	}
	return nil
}

func (r *HTMLRenderer) openSpan(highlight int, attr AttributeFunc) {
	r.buf.WriteString("<span ")
	attr(highlight, &r.buf)
	r.buf.WriteByte('>')
}

func (r *HTMLRenderer) writeSource(chunk []byte, attr AttributeFunc) {
	for {
		nl := bytes.IndexByte(chunk, '\n')
		if nl < 0 {
			escapeHTML(&r.buf, chunk)
			return
		}
		escapeHTML(&r.buf, chunk[:nl])
		for range r.stack {
			r.buf.WriteString("</span>")
		}
		r.buf.WriteByte('\n')
		r.lines = append(r.lines, r.buf.String())
		r.buf.Reset()
		for _, hl := range r.stack {
			r.openSpan(hl, attr)
		}
		chunk = chunk[nl+1:]
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(buf *bytes.Buffer, chunk []byte) {
	htmlEscaper.WriteString(buf, string(chunk))
}
