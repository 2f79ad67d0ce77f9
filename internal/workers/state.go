package workers

import (
	"github.com/standardbeagle/daylight/internal/highlight"
)

// State is the reusable scratch owned by one worker: a highlighter and an
// HTML renderer. It is only ever touched by its owning worker, one file at a
// time; the scoped accessors below keep the borrow discipline visible at call
// sites.
type State struct {
	highlighter *highlight.Highlighter
	renderer    *highlight.HTMLRenderer
}

func newState() *State {
	return &State{
		highlighter: highlight.New(),
		renderer:    highlight.NewHTMLRenderer(),
	}
}

func (s *State) close() {
	s.highlighter.Close()
}

// WithHighlighter borrows the worker's highlighter for the duration of f.
func (s *State) WithHighlighter(f func(*highlight.Highlighter) error) error {
	return f(s.highlighter)
}

// WithRenderer borrows the worker's renderer for the duration of f. The
// renderer is reset first, so f always starts fresh.
func (s *State) WithRenderer(f func(*highlight.HTMLRenderer) error) error {
	s.renderer.Reset()
	return f(s.renderer)
}
