// Package highlight drives a tree-sitter grammar over file contents and emits
// a stream of highlight events, with cooperative cancellation between chunks
// of work.
package highlight

import (
	"errors"
	"sort"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/daylight/internal/languages"
)

var (
	// ErrCancelled is returned when the shared cancellation flag was observed
	// set at a polling point.
	ErrCancelled = errors.New("highlight cancelled")
	// ErrInvalidLanguage is returned when the grammar cannot be installed on
	// the parser.
	ErrInvalidLanguage = errors.New("invalid language")
	// ErrUnknown is returned when parsing fails for any other reason.
	ErrUnknown = errors.New("unknown highlight error")
)

// cancelPollInterval is the number of query matches consumed between checks
// of the cancellation flag.
const cancelPollInterval = 64

// maxInjectionDepth bounds recursive language switching inside embedded
// regions.
const maxInjectionDepth = 3

// Resolver maps an injected-language name to its configuration. A nil
// resolver disables injections.
type Resolver func(name string) (*languages.Config, bool)

// Highlighter owns a reusable tree-sitter parser. It is not safe for
// concurrent use; each worker keeps its own.
type Highlighter struct {
	parser *tree_sitter.Parser
}

func New() *Highlighter {
	return &Highlighter{parser: tree_sitter.NewParser()}
}

// Close releases the underlying parser.
func (h *Highlighter) Close() {
	if h.parser != nil {
		h.parser.Close()
		h.parser = nil
	}
}

type capture struct {
	start uint
	end   uint
	hl    int
}

// Highlight parses contents with cfg's grammar and returns the event stream.
// The cancellation flag is polled between parsing, query matching, and
// injected-region recursion; once observed set, processing stops with
// ErrCancelled.
func (h *Highlighter) Highlight(cfg *languages.Config, contents []byte, cancel *Flag, resolve Resolver) ([]Event, error) {
	caps, err := h.collectCaptures(cfg, contents, 0, cancel, resolve, 0)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(caps, func(i, j int) bool {
		if caps[i].start != caps[j].start {
			return caps[i].start < caps[j].start
		}
		return caps[i].end > caps[j].end
	})

	return buildEvents(caps, uint(len(contents))), nil
}

func (h *Highlighter) collectCaptures(cfg *languages.Config, contents []byte, base uint, cancel *Flag, resolve Resolver, depth int) ([]capture, error) {
	if cancel.IsSet() {
		return nil, ErrCancelled
	}
	if err := h.parser.SetLanguage(cfg.Language); err != nil {
		return nil, ErrInvalidLanguage
	}

	tree := h.parser.Parse(contents, nil)
	if tree == nil {
		return nil, ErrUnknown
	}
	defer tree.Close()

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()

	var caps []capture
	seen := 0
	matches := qc.Matches(cfg.Highlights, tree.RootNode(), contents)
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		seen++
		if seen%cancelPollInterval == 0 && cancel.IsSet() {
			return nil, ErrCancelled
		}
		for _, c := range match.Captures {
			hl, ok := cfg.HighlightIndex(uint32(c.Index))
			if !ok {
				continue
			}
			start := uint(c.Node.StartByte())
			end := uint(c.Node.EndByte())
			if start >= end {
				continue
			}
			caps = append(caps, capture{start: base + start, end: base + end, hl: hl})
		}
	}

	if resolve != nil && cfg.Injections != nil && depth < maxInjectionDepth {
		injected, err := h.collectInjections(cfg, tree, contents, base, cancel, resolve, depth)
		if err != nil {
			return nil, err
		}
		caps = append(caps, injected...)
	}
	return caps, nil
}

// collectInjections finds @injection.language/@injection.content capture
// pairs, resolves the named language, and highlights each embedded region in
// place. Region captures are offset into the host coordinate space so they
// merge into one event stream.
func (h *Highlighter) collectInjections(cfg *languages.Config, tree *tree_sitter.Tree, contents []byte, base uint, cancel *Flag, resolve Resolver, depth int) ([]capture, error) {
	type region struct {
		name  string
		start uint
		end   uint
	}

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()

	names := cfg.Injections.CaptureNames()
	var regions []region
	matches := qc.Matches(cfg.Injections, tree.RootNode(), contents)
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		var r region
		for _, c := range match.Captures {
			switch names[c.Index] {
			case "injection.language":
				r.name = string(contents[c.Node.StartByte():c.Node.EndByte()])
			case "injection.content":
				r.start = uint(c.Node.StartByte())
				r.end = uint(c.Node.EndByte())
			}
		}
		if r.name != "" && r.start < r.end {
			regions = append(regions, r)
		}
	}

	var caps []capture
	for _, r := range regions {
		if cancel.IsSet() {
			return nil, ErrCancelled
		}
		sub, ok := resolve(r.name)
		if !ok {
			continue
		}
		// The recursion replaces the parser's installed language; the caller
		// has already drained its own query matches by the time we run.
		subCaps, err := h.collectCaptures(sub, contents[r.start:r.end], base+r.start, cancel, resolve, depth+1)
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return nil, err
			}
			continue
		}
		caps = append(caps, subCaps...)
	}
	return caps, nil
}

// buildEvents turns sorted captures into a balanced event stream covering the
// whole input. Captures sort by (start ascending, end descending) so a
// container precedes its contents; a capture that straddles the end of the
// enclosing open capture is dropped.
func buildEvents(caps []capture, length uint) []Event {
	events := make([]Event, 0, len(caps)*3+1)
	var stack []capture
	pos := uint(0)

	flushTo := func(p uint) {
		if p > pos {
			events = append(events, Event{Kind: EventSource, Start: pos, End: p})
			pos = p
		}
	}
	closeThrough := func(limit uint) {
		for len(stack) > 0 && stack[len(stack)-1].end <= limit {
			top := stack[len(stack)-1]
			flushTo(top.end)
			events = append(events, Event{Kind: EventHighlightEnd})
			stack = stack[:len(stack)-1]
		}
	}

	var prev capture
	for i, c := range caps {
		if c.end > length {
			continue
		}
		if i > 0 && c.start == prev.start && c.end == prev.end {
			continue
		}
		prev = c
		closeThrough(c.start)
		if len(stack) > 0 && c.end > stack[len(stack)-1].end {
			continue
		}
		flushTo(c.start)
		events = append(events, Event{Kind: EventHighlightStart, Highlight: c.hl})
		stack = append(stack, c)
	}
	closeThrough(length)
	flushTo(length)
	return events
}
