// Package languages maps wire tags, short names, and filename extensions to
// immutable per-language highlight configurations. Configurations are built
// lazily on first use and shared by reference afterwards.
package languages

import (
	"path/filepath"
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/daylight/internal/wire/common"
)

// AllHighlightNames is the ordered list of classification labels. The index of
// a label is the integer identifier emitted by the highlighter, so the order
// is part of the external contract of the spans endpoint.
var AllHighlightNames = []string{
	"attribute",
	"comment",
	"constant",
	"constant.builtin",
	"constructor",
	"embedded",
	"function",
	"function.builtin",
	"keyword",
	"module",
	"number",
	"operator",
	"property",
	"property.builtin",
	"punctuation",
	"punctuation.bracket",
	"punctuation.delimiter",
	"punctuation.special",
	"string",
	"string.special",
	"tag",
	"type",
	"type.builtin",
	"variable",
	"variable.builtin",
	"variable.parameter",
}

// Config is the prepared highlight configuration for one language. It is
// created once, never mutated, and shared across workers.
type Config struct {
	Tag        common.Language
	Name       string
	Extensions []string

	Language   *tree_sitter.Language
	Highlights *tree_sitter.Query
	Injections *tree_sitter.Query

	// captureMap resolves a highlights-query capture index to an index into
	// AllHighlightNames, or -1 when the capture has no matching label.
	captureMap []int
}

// HighlightIndex resolves a capture index of the highlights query to its
// position in AllHighlightNames. The second result is false for captures that
// carry no recognized label.
func (c *Config) HighlightIndex(capture uint32) (int, bool) {
	if int(capture) >= len(c.captureMap) {
		return 0, false
	}
	idx := c.captureMap[capture]
	return idx, idx >= 0
}

// definition is the static metadata for one language; the tree-sitter side is
// only materialized when the language is first looked up.
type definition struct {
	tag        common.Language
	name       string
	extensions []string

	once  sync.Once
	cfg   *Config
	build func(*definition) *Config
}

func (d *definition) config() *Config {
	d.once.Do(func() {
		d.cfg = d.build(d)
	})
	return d.cfg
}

var (
	definitions = []*definition{
		{tag: common.LanguageBash, name: "bash", extensions: []string{"sh", "bash"}, build: setupBash},
		{tag: common.LanguageC, name: "c", extensions: []string{"c", "h"}, build: setupC},
		{tag: common.LanguageCpp, name: "cpp", extensions: []string{"cc", "cpp", "cxx", "hh", "hpp"}, build: setupCpp},
		{tag: common.LanguageCSharp, name: "c_sharp", extensions: []string{"cs"}, build: setupCSharp},
		{tag: common.LanguageGo, name: "go", extensions: []string{"go"}, build: setupGo},
		{tag: common.LanguageJava, name: "java", extensions: []string{"java"}, build: setupJava},
		{tag: common.LanguageJavaScript, name: "javascript", extensions: []string{"js", "mjs", "cjs", "jsx"}, build: setupJavaScript},
		{tag: common.LanguagePhp, name: "php", extensions: []string{"php"}, build: setupPhp},
		{tag: common.LanguagePython, name: "python", extensions: []string{"py"}, build: setupPython},
		{tag: common.LanguageRust, name: "rust", extensions: []string{"rs"}, build: setupRust},
		{tag: common.LanguageTsx, name: "tsx", extensions: []string{"tsx"}, build: setupTsx},
		{tag: common.LanguageTypeScript, name: "typescript", extensions: []string{"ts", "mts", "cts"}, build: setupTypeScript},
		{tag: common.LanguageZig, name: "zig", extensions: []string{"zig"}, build: setupZig},
	}

	byTag       = make(map[common.Language]*definition, len(definitions))
	byName      = make(map[string]*definition, len(definitions))
	byExtension = make(map[string]*definition, len(definitions))
)

func init() {
	for _, d := range definitions {
		byTag[d.tag] = d
		byName[d.name] = d
		for _, ext := range d.extensions {
			byExtension[ext] = d
		}
	}
}

// FromTag looks up a language by its wire enum tag. Unspecified never
// resolves.
func FromTag(tag common.Language) (*Config, bool) {
	d, ok := byTag[tag]
	if !ok {
		return nil, false
	}
	return d.config(), true
}

// FromName looks up a language by its short name ("go", "c_sharp", ...).
func FromName(name string) (*Config, bool) {
	d, ok := byName[name]
	if !ok {
		return nil, false
	}
	return d.config(), true
}

// FromExtension looks up a language by filename extension, without the dot.
func FromExtension(ext string) (*Config, bool) {
	d, ok := byExtension[ext]
	if !ok {
		return nil, false
	}
	return d.config(), true
}

// FromPath infers a language from the extension of path.
func FromPath(path string) (*Config, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, false
	}
	return FromExtension(ext)
}

// Names returns the short names of every registered language, in registry
// order.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for _, d := range definitions {
		names = append(names, d.name)
	}
	return names
}

// newConfig compiles the query sources for a definition and resolves capture
// names against AllHighlightNames the way the renderer expects: exact label
// first, then progressively dropping trailing dot-separated segments, so
// "function.method.special" falls back to "function.method" and then
// "function".
func newConfig(d *definition, lang *tree_sitter.Language, highlights, injections string) *Config {
	query, err := tree_sitter.NewQuery(lang, highlights)
	if err != nil || query == nil {
		// A grammar whose bundled query no longer parses is a build-time
		// defect; surface it loudly rather than serving a silent no-op.
		panic("languages: invalid highlights query for " + d.name)
	}

	cfg := &Config{
		Tag:        d.tag,
		Name:       d.name,
		Extensions: d.extensions,
		Language:   lang,
		Highlights: query,
	}

	if injections != "" {
		inj, err := tree_sitter.NewQuery(lang, injections)
		if err == nil && inj != nil {
			cfg.Injections = inj
		}
	}

	names := query.CaptureNames()
	cfg.captureMap = make([]int, len(names))
	for i, name := range names {
		cfg.captureMap[i] = resolveHighlightName(name)
	}
	return cfg
}

func resolveHighlightName(capture string) int {
	for capture != "" {
		for i, label := range AllHighlightNames {
			if label == capture {
				return i
			}
		}
		dot := strings.LastIndexByte(capture, '.')
		if dot < 0 {
			break
		}
		capture = capture[:dot]
	}
	return -1
}
