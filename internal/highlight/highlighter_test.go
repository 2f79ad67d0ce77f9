package highlight

import (
	"strings"
	"testing"

	"github.com/standardbeagle/daylight/internal/languages"
)

func TestFlagMonotonic(t *testing.T) {
	var f Flag
	if f.IsSet() {
		t.Fatal("fresh flag should not be set")
	}
	f.Set()
	f.Set()
	if !f.IsSet() {
		t.Fatal("flag should stay set")
	}

	var nilFlag *Flag
	if nilFlag.IsSet() {
		t.Fatal("nil flag should never be set")
	}
}

func TestBuildEventsCoversWholeInput(t *testing.T) {
	caps := []capture{
		{start: 0, end: 3, hl: 1},
		{start: 5, end: 9, hl: 2},
	}
	events := buildEvents(caps, 12)

	var pos uint
	depth := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventSource:
			if ev.Start != pos {
				t.Fatalf("gap in coverage: source starts at %d, expected %d", ev.Start, pos)
			}
			if ev.End <= ev.Start {
				t.Fatalf("empty source event %v", ev)
			}
			pos = ev.End
		case EventHighlightStart:
			depth++
		case EventHighlightEnd:
			depth--
			if depth < 0 {
				t.Fatal("unbalanced highlight end")
			}
		}
	}
	if pos != 12 {
		t.Fatalf("coverage ends at %d, want 12", pos)
	}
	if depth != 0 {
		t.Fatalf("unbalanced events, depth %d", depth)
	}
}

func TestBuildEventsNesting(t *testing.T) {
	// Container first (same start, larger end), then the nested capture.
	caps := []capture{
		{start: 0, end: 10, hl: 1},
		{start: 2, end: 4, hl: 2},
	}
	events := buildEvents(caps, 10)

	starts := 0
	for _, ev := range events {
		if ev.Kind == EventHighlightStart {
			starts++
		}
	}
	if starts != 2 {
		t.Fatalf("expected both captures to open, got %d starts", starts)
	}
}

func TestBuildEventsDropsStraddlingCapture(t *testing.T) {
	// The second capture starts inside the first but ends beyond it.
	caps := []capture{
		{start: 0, end: 5, hl: 1},
		{start: 3, end: 8, hl: 2},
	}
	events := buildEvents(caps, 10)

	starts := 0
	for _, ev := range events {
		if ev.Kind == EventHighlightStart {
			starts++
		}
	}
	if starts != 1 {
		t.Fatalf("straddling capture should be dropped, got %d starts", starts)
	}
}

func TestBuildEventsDedupesIdenticalRanges(t *testing.T) {
	caps := []capture{
		{start: 1, end: 4, hl: 1},
		{start: 1, end: 4, hl: 2},
	}
	events := buildEvents(caps, 6)

	for _, ev := range events {
		if ev.Kind == EventHighlightStart && ev.Highlight != 1 {
			t.Fatalf("first capture should win, got highlight %d", ev.Highlight)
		}
	}
}

func TestHighlightCSource(t *testing.T) {
	cfg, ok := languages.FromName("c")
	if !ok {
		t.Fatal("c should be registered")
	}

	h := New()
	defer h.Close()

	source := []byte("int main() { return 0; }\n")
	events, err := h.Highlight(cfg, source, &Flag{}, nil)
	if err != nil {
		t.Fatalf("highlight failed: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events for non-empty source")
	}

	sawHighlight := false
	for _, ev := range events {
		if ev.Kind == EventHighlightStart {
			sawHighlight = true
			if ev.Highlight < 0 || ev.Highlight >= len(languages.AllHighlightNames) {
				t.Fatalf("highlight index %d out of range", ev.Highlight)
			}
		}
		if ev.Kind == EventSource && ev.End > uint(len(source)) {
			t.Fatalf("source event %v beyond input", ev)
		}
	}
	if !sawHighlight {
		t.Fatal("expected at least one classified span in C source")
	}
}

func TestHighlightCancelledBeforeStart(t *testing.T) {
	cfg, ok := languages.FromName("go")
	if !ok {
		t.Fatal("go should be registered")
	}

	h := New()
	defer h.Close()

	var flag Flag
	flag.Set()
	_, err := h.Highlight(cfg, []byte("package main\n"), &flag, nil)
	if err != ErrCancelled {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestHighlightDeterministic(t *testing.T) {
	cfg, ok := languages.FromName("go")
	if !ok {
		t.Fatal("go should be registered")
	}

	h := New()
	defer h.Close()

	source := []byte("package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	first, err := h.Highlight(cfg, source, &Flag{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Highlight(cfg, source, &Flag{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("event counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("event %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestResolverLooksUpInjectedLanguages(t *testing.T) {
	cfg, ok := languages.FromName("javascript")
	if !ok {
		t.Fatal("javascript should be registered")
	}
	if cfg.Injections == nil {
		t.Fatal("javascript should carry an injections query")
	}

	h := New()
	defer h.Close()

	// The tag of a tagged template literal names the embedded language.
	source := []byte("const x = bash`echo hello`\n")
	var asked []string
	events, err := h.Highlight(cfg, source, &Flag{}, func(name string) (*languages.Config, bool) {
		asked = append(asked, name)
		return languages.FromName(name)
	})
	if err != nil {
		t.Fatalf("highlight with injections failed: %v", err)
	}
	if len(asked) != 1 || asked[0] != "bash" {
		t.Fatalf("resolver should be asked for the template tag's language, got %q", asked)
	}
	if len(events) == 0 {
		t.Fatal("expected events")
	}
	var all strings.Builder
	for _, ev := range events {
		if ev.Kind == EventSource {
			all.Write(source[ev.Start:ev.End])
		}
	}
	if all.String() != string(source) {
		t.Fatalf("source events do not reassemble the input:\n%q\n%q", all.String(), source)
	}
}
