package extract

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// DocumentType derives the document type from the first Title element:
// lowercased, with any "template" marker removed, then one capitalized
// word at a time. Returns "Unknown" when the stream has no titled
// element.
func (x *Extractor) DocumentType(stream element.Stream) string {
	title, ok := stream.FirstOfType(constants.ElementTitle)
	if !ok {
		x.Logger.Warn("extract.doctype.missing")
		return "Unknown"
	}
	t := strings.ToLower(title.Text)
	if strings.Contains(t, "template") {
		t = strings.TrimSpace(strings.ReplaceAll(t, "template", ""))
	}
	words := strings.Fields(t)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
