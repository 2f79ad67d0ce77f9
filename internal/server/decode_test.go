package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/daylight/internal/client"
	"github.com/standardbeagle/daylight/internal/processors"
	"github.com/standardbeagle/daylight/internal/wire/common"
)

func TestDecodeRequestZeroCopy(t *testing.T) {
	contents := []byte("int main(){return 0;}")
	body := client.BuildRequest([]client.FileSpec{{
		Ident:    3,
		Filename: "t.c",
		Contents: contents,
		Language: common.LanguageC,
	}}, 42)

	units, timeoutMs, err := decodeRequest(body)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, uint64(42), timeoutMs)

	u := units[0]
	assert.Equal(t, uint16(3), u.ident)
	assert.Equal(t, "t.c", u.filename)
	assert.False(t, u.failed)
	require.NotNil(t, u.lang)
	assert.Equal(t, common.LanguageC, u.lang.Tag)
	assert.Equal(t, contents, u.contents)

	// The unit's contents must alias the request buffer, not copy it.
	assert.True(t, sameBacking(body, u.contents), "contents should be a sub-view of the request body")
}

// sameBacking reports whether sub's backing array lies inside buf.
func sameBacking(buf, sub []byte) bool {
	if len(sub) == 0 {
		return false
	}
	for i := range buf {
		if &buf[i] == &sub[0] {
			return true
		}
	}
	return false
}

func TestDecodeRequestLanguageResolution(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		language common.Language
		failure  processors.NonFatalError
		failed   bool
		resolved common.Language
	}{
		{"declared tag wins", "whatever.txt", common.LanguageGo, 0, false, common.LanguageGo},
		{"inferred from extension", "script.sh", common.LanguageUnspecified, 0, false, common.LanguageBash},
		{"unknown extension", "x.unknownext", common.LanguageUnspecified, processors.ErrInvalidLanguage, true, 0},
		{"no extension", "Makefile", common.LanguageUnspecified, processors.ErrInvalidLanguage, true, 0},
		{"unknown tag", "t.c", common.Language(99), processors.ErrInvalidLanguage, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := client.BuildRequest([]client.FileSpec{{
				Ident:    1,
				Filename: tc.filename,
				Contents: []byte("content"),
				Language: tc.language,
			}}, 0)

			units, _, err := decodeRequest(body)
			require.NoError(t, err)
			require.Len(t, units, 1)
			assert.Equal(t, tc.failed, units[0].failed)
			if tc.failed {
				assert.Equal(t, tc.failure, units[0].failure)
			} else {
				require.NotNil(t, units[0].lang)
				assert.Equal(t, tc.resolved, units[0].lang.Tag)
			}
		})
	}
}

func TestDecodeRequestContentPolicies(t *testing.T) {
	// Empty contents short-circuit before any work is scheduled.
	body := client.BuildRequest([]client.FileSpec{{
		Ident:    0,
		Filename: "e.c",
		Contents: nil,
		Language: common.LanguageC,
	}}, 0)
	units, _, err := decodeRequest(body)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.True(t, units[0].failed)
	assert.Equal(t, processors.ErrEmptyFile, units[0].failure)

	// An invalid language outranks an empty file.
	body = client.BuildRequest([]client.FileSpec{{
		Ident:    1,
		Filename: "no-extension",
		Contents: nil,
		Language: common.LanguageUnspecified,
	}}, 0)
	units, _, err = decodeRequest(body)
	require.NoError(t, err)
	assert.Equal(t, processors.ErrInvalidLanguage, units[0].failure)
}

func TestDecodeRequestOversizeFile(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates >256MB")
	}
	big := make([]byte, MaxFileSize+1)
	body := client.BuildRequest([]client.FileSpec{{
		Ident:    0,
		Filename: "big.c",
		Contents: big,
		Language: common.LanguageC,
	}}, 0)

	units, _, err := decodeRequest(body)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.True(t, units[0].failed)
	assert.Equal(t, processors.ErrFileTooLarge, units[0].failure)
}

func TestDecodeRequestTruncated(t *testing.T) {
	_, _, err := decodeRequest([]byte{})
	assert.ErrorIs(t, err, ErrDecode)

	_, _, err = decodeRequest([]byte{1, 2})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeRequestRoundTripIdents(t *testing.T) {
	files := []client.FileSpec{
		{Ident: 10, Filename: "a.c", Contents: []byte("a"), Language: common.LanguageC},
		{Ident: 20, Filename: "b.go", Contents: []byte("b"), Language: common.LanguageGo},
		{Ident: 10, Filename: "c.rs", Contents: []byte("c"), Language: common.LanguageRust},
	}
	units, _, err := decodeRequest(client.BuildRequest(files, 0))
	require.NoError(t, err)
	require.Len(t, units, 3)

	got := []uint16{units[0].ident, units[1].ident, units[2].ident}
	assert.Equal(t, []uint16{10, 20, 10}, got)
}
