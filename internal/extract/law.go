package extract

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

const lawSectionTitle = "GOVERNING LAW"

// GoverningLaw finds a Title containing "GOVERNING LAW" and reads the
// jurisdiction out of the element immediately after it, provided that
// element is narrative text or a list item. The governing-law rules
// are tried in order, first match wins, and the captured token gets
// its first character capitalized. Anything else yields "Unknown".
func (x *Extractor) GoverningLaw(stream element.Stream) string {
	const unknown = "Unknown"

	lawText := ""
	for i, el := range stream {
		if el.Type != constants.ElementTitle {
			continue
		}
		if !strings.Contains(strings.ToUpper(el.Text), lawSectionTitle) {
			continue
		}
		if i+1 < len(stream) {
			next := stream[i+1]
			if next.Type == constants.ElementNarrativeText || next.Type == constants.ElementListItem {
				lawText = next.Text
				break
			}
		}
	}

	if lawText == "" {
		x.Logger.Warn("extract.law.section_missing")
		return unknown
	}

	for _, pattern := range x.Rules.GoverningLaw {
		if jurisdiction := x.WithPattern(lawText, pattern, ""); jurisdiction != "" {
			r := []rune(jurisdiction)
			return strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}

	x.Logger.Warn("extract.law.no_match", "text", lawText)
	return unknown
}
