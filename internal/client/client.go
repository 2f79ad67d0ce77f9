// Package client builds highlight requests from local files, talks to a
// running server, and decodes the binary responses. It backs the CLI
// subcommands and the end-to-end tests.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/wire/common"
	"github.com/standardbeagle/daylight/internal/wire/html"
	"github.com/standardbeagle/daylight/internal/wire/spans"
)

// FileSpec is one file of a request.
type FileSpec struct {
	Ident             uint16
	Filename          string
	Contents          []byte
	Language          common.Language
	IncludeInjections bool
}

// Client talks to one Daylight server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(addr string) *Client {
	base := addr
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: strings.TrimSuffix(base, "/"),
		httpc:   &http.Client{Timeout: 5 * time.Minute},
	}
}

// BuildRequest encodes files into a request envelope.
func BuildRequest(files []FileSpec, timeoutMs uint64) []byte {
	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(files))
	for i, f := range files {
		filename := builder.CreateString(f.Filename)
		contents := builder.CreateByteVector(f.Contents)
		common.FileStart(builder)
		common.FileAddIdent(builder, f.Ident)
		common.FileAddFilename(builder, filename)
		common.FileAddContents(builder, contents)
		common.FileAddLanguage(builder, f.Language)
		common.FileAddIncludeInjections(builder, f.IncludeInjections)
		offsets[i] = common.FileEnd(builder)
	}

	common.RequestStartFilesVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	filesVec := builder.EndVector(len(offsets))

	common.RequestStart(builder)
	common.RequestAddFiles(builder, filesVec)
	common.RequestAddTimeoutMs(builder, timeoutMs)
	builder.Finish(common.RequestEnd(builder))
	return builder.FinishedBytes()
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}
	return payload, nil
}

// HTML posts files to the HTML endpoint.
func (c *Client) HTML(ctx context.Context, files []FileSpec, timeoutMs uint64) (*html.Response, error) {
	payload, err := c.post(ctx, "/v1/html", BuildRequest(files, timeoutMs))
	if err != nil {
		return nil, err
	}
	return html.GetRootAsResponse(payload, 0), nil
}

// Spans posts files to the spans endpoint.
func (c *Client) Spans(ctx context.Context, files []FileSpec, timeoutMs uint64) (*spans.Response, error) {
	payload, err := c.post(ctx, "/v1/spans", BuildRequest(files, timeoutMs))
	if err != nil {
		return nil, err
	}
	return spans.GetRootAsResponse(payload, 0), nil
}

// CollectPaths expands doublestar glob patterns; a pattern with no
// metacharacters must name an existing file.
func CollectPaths(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("no files match %q", pattern)
			}
			matches = []string{pattern}
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// ReadFiles loads paths into file specs. An explicit language applies to all
// files; Unspecified lets the server infer per file.
func ReadFiles(paths []string, language common.Language, includeInjections bool) ([]FileSpec, error) {
	files := make([]FileSpec, 0, len(paths))
	for i, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, FileSpec{
			Ident:             uint16(i),
			Filename:          path,
			Contents:          contents,
			Language:          language,
			IncludeInjections: includeInjections,
		})
	}
	return files, nil
}

// ResolveLanguageName maps a short language name to its wire tag, suggesting
// the closest registered name on a miss.
func ResolveLanguageName(name string) (common.Language, error) {
	if cfg, ok := languages.FromName(name); ok {
		return cfg.Tag, nil
	}
	if suggestion, err := edlib.FuzzySearch(name, languages.Names(), edlib.Levenshtein); err == nil && suggestion != "" {
		return common.LanguageUnspecified, fmt.Errorf("unknown language %q (did you mean %q?)", name, suggestion)
	}
	return common.LanguageUnspecified, fmt.Errorf("unknown language %q", name)
}
