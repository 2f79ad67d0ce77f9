package highlight

import (
	"bytes"
	"strings"
	"testing"
)

func classAttr(hl int, out *bytes.Buffer) {
	out.WriteString(`class="hl`)
	out.WriteByte(byte('0' + hl))
	out.WriteByte('"')
}

func TestRenderPlainSource(t *testing.T) {
	r := NewHTMLRenderer()
	source := []byte("one\ntwo\nthree")
	events := []Event{{Kind: EventSource, Start: 0, End: uint(len(source))}}

	if err := r.Render(events, source, &Flag{}, classAttr); err != nil {
		t.Fatal(err)
	}
	lines := r.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if strings.Join(lines, "") != "one\ntwo\nthree" {
		t.Fatalf("concatenated lines should reproduce the document, got %q", strings.Join(lines, ""))
	}
}

func TestRenderSpansAndEscaping(t *testing.T) {
	r := NewHTMLRenderer()
	source := []byte(`a<b`)
	events := []Event{
		{Kind: EventHighlightStart, Highlight: 1},
		{Kind: EventSource, Start: 0, End: 3},
		{Kind: EventHighlightEnd},
	}

	if err := r.Render(events, source, &Flag{}, classAttr); err != nil {
		t.Fatal(err)
	}
	lines := r.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	want := `<span class="hl1">a&lt;b</span>`
	if lines[0] != want {
		t.Fatalf("got %q, want %q", lines[0], want)
	}
}

func TestRenderReopensSpansAcrossLines(t *testing.T) {
	r := NewHTMLRenderer()
	source := []byte("x\ny")
	events := []Event{
		{Kind: EventHighlightStart, Highlight: 2},
		{Kind: EventSource, Start: 0, End: 3},
		{Kind: EventHighlightEnd},
	}

	if err := r.Render(events, source, &Flag{}, classAttr); err != nil {
		t.Fatal(err)
	}
	lines := r.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "<span class=\"hl2\">x</span>\n" {
		t.Fatalf("line 0: %q", lines[0])
	}
	if lines[1] != "<span class=\"hl2\">y</span>" {
		t.Fatalf("line 1: %q", lines[1])
	}
}

func TestRenderReset(t *testing.T) {
	r := NewHTMLRenderer()
	source := []byte("abc")
	events := []Event{{Kind: EventSource, Start: 0, End: 3}}

	if err := r.Render(events, source, &Flag{}, classAttr); err != nil {
		t.Fatal(err)
	}
	r.Reset()
	if len(r.Lines()) != 0 {
		t.Fatal("reset should clear rendered lines")
	}
	if err := r.Render(events, source, &Flag{}, classAttr); err != nil {
		t.Fatal(err)
	}
	if len(r.Lines()) != 1 || r.Lines()[0] != "abc" {
		t.Fatalf("render after reset: %q", r.Lines())
	}
}

func TestRenderCancelled(t *testing.T) {
	r := NewHTMLRenderer()
	var flag Flag
	flag.Set()
	err := r.Render([]Event{{Kind: EventSource, Start: 0, End: 1}}, []byte("a"), &flag, classAttr)
	if err != ErrCancelled {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}
