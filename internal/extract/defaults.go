package extract

import (
	"regexp"
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

const eventsSectionTitle = "EVENTS OF DEFAULT"

var (
	reLetterPrefix = regexp.MustCompile(`^[a-z]\s+`)
	reRomanPrefix  = regexp.MustCompile(`^[ivx]+\s+`)
)

// EventsOfDefault scans the stream once for the events-of-default
// clause list. The scanner is outside the section until it sees a
// Title containing "EVENTS OF DEFAULT"; inside, every ListItem is a
// candidate: the 5.1/5.2 introductory clauses are skipped and the
// scan terminates at 5.3. Surviving items lose any leading
// single-letter or roman-numeral enumeration prefix.
func (x *Extractor) EventsOfDefault(stream element.Stream) []string {
	events := []string{}
	inSection := false

	for _, el := range stream {
		if el.Type == constants.ElementTitle && strings.Contains(el.Text, eventsSectionTitle) {
			inSection = true
			continue
		}
		if !inSection || el.Type != constants.ElementListItem {
			continue
		}

		text := strings.TrimSpace(el.Text)
		if strings.HasPrefix(text, "5.3") {
			break
		}
		if strings.HasPrefix(text, "5.1") || strings.HasPrefix(text, "5.2") {
			continue
		}

		cleaned := reLetterPrefix.ReplaceAllString(text, "")
		cleaned = reRomanPrefix.ReplaceAllString(cleaned, "")
		if cleaned != "" {
			events = append(events, cleaned)
		}
	}

	if !inSection {
		x.Logger.Warn("extract.events.section_missing", "title", eventsSectionTitle)
	}
	return events
}
