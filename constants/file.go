package constants

import "strings"

// SourceFormats holds the allowed input formats for an extraction run.
var SourceFormats = []string{"PDF", "JSON"}

// AllowedExtensions holds the default allowed file extensions for
// document ingestion: parsed-element dumps and raw PDFs.
var AllowedExtensions = map[string]struct{}{
	"json": {},
	"pdf":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
