package server

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/standardbeagle/daylight/internal/languages"
	"github.com/standardbeagle/daylight/internal/processors"
	"github.com/standardbeagle/daylight/internal/wire/common"
)

const (
	// MaxRequestSize caps the whole envelope at the HTTP surface.
	MaxRequestSize = 2 << 30
	// MaxFileSize caps one file's contents.
	MaxFileSize = 256 << 20
)

// workUnit is one file's decoded, pre-validated job description. Files whose
// decoding already failed carry their failure so errors and successes
// traverse the same merged stream.
type workUnit struct {
	ident             uint16
	filename          string
	lang              *languages.Config
	contents          []byte
	includeInjections bool

	failed  bool
	failure processors.NonFatalError
}

// decodeRequest validates the envelope and yields one work unit per file
// entry plus the request's raw timeout_ms. The content slice of each unit
// aliases body; no file bytes are copied. FlatBuffers accessors trust their
// offsets, so traversal runs under a recover that converts any out-of-bounds
// panic into ErrDecode.
func decodeRequest(body []byte) (units []workUnit, timeoutMs uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			units, timeoutMs, err = nil, 0, ErrDecode
		}
	}()

	if len(body) < flatbuffers.SizeUOffsetT {
		return nil, 0, ErrDecode
	}
	req := common.GetRootAsRequest(body, 0)
	timeoutMs = req.TimeoutMs()

	n := req.FilesLength()
	units = make([]workUnit, 0, n)
	var file common.File
	for i := 0; i < n; i++ {
		if !req.Files(&file, i) {
			return nil, 0, ErrDecode
		}
		units = append(units, prepareFile(&file))
	}
	return units, timeoutMs, nil
}

// prepareFile resolves the file's language and applies the content policies.
// Resolution: a declared tag is looked up directly; Unspecified falls back to
// the filename extension.
func prepareFile(file *common.File) workUnit {
	u := workUnit{
		ident:             file.Ident(),
		filename:          string(file.Filename()),
		includeInjections: file.IncludeInjections(),
	}

	var ok bool
	if tag := file.Language(); tag == common.LanguageUnspecified {
		u.lang, ok = languages.FromPath(u.filename)
	} else {
		u.lang, ok = languages.FromTag(tag)
	}

	contents := file.ContentsBytes()
	switch {
	case !ok:
		u.failed = true
		u.failure = processors.ErrInvalidLanguage
	case len(contents) == 0:
		u.failed = true
		u.failure = processors.ErrEmptyFile
	case len(contents) > MaxFileSize:
		u.failed = true
		u.failure = processors.ErrFileTooLarge
	default:
		u.contents = contents
	}
	return u
}
