// Package ingest turns input files into element streams. Two sources
// are supported: element dumps (JSON arrays written by an upstream
// layout parser) and raw PDFs, which are parsed locally through the
// tabula library.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// AllowedExt checks if a file extension is in the allowed set
// (defaults to json/pdf).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// Load reads an element stream from path, choosing the source by
// extension.
func Load(path string) (element.Stream, error) {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "json":
		return element.DecodeFile(path)
	case "pdf":
		return FromPDF(path)
	default:
		return nil, fmt.Errorf("unsupported input type: %s", path)
	}
}
