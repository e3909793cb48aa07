package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/d-okonkwo/loandocs/internal/patterns"
)

// Extractor applies a pattern library to element streams and text
// blobs. It holds no per-run state; one Extractor may serve any
// number of documents.
type Extractor struct {
	Logger *slog.Logger
	Rules  patterns.Library
}

// New builds an Extractor over the given rule set.
func New(logger *slog.Logger, rules patterns.Library) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{Logger: logger, Rules: rules}
}

// WithPattern applies pattern to text case-insensitively and returns
// the trimmed first capture group, or def when the pattern does not
// match. A pattern that fails to compile is logged and treated as a
// non-match; this function never panics.
func (x *Extractor) WithPattern(text, pattern, def string) string {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		x.Logger.Warn("extract.pattern.invalid", "pattern", pattern, "err", err)
		return def
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return def
	}
	return strings.TrimSpace(m[1])
}

// lastWithPattern is WithPattern taking the final occurrence instead
// of the first.
func (x *Extractor) lastWithPattern(text, pattern, def string) string {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		x.Logger.Warn("extract.pattern.invalid", "pattern", pattern, "err", err)
		return def
	}
	ms := re.FindAllStringSubmatch(text, -1)
	if len(ms) == 0 || len(ms[len(ms)-1]) < 2 {
		return def
	}
	return strings.TrimSpace(ms[len(ms)-1][1])
}
