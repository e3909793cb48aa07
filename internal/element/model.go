package element

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
)

// Metadata carries the layout parser's per-element annotations.
// PageNumber is 1-based; ParentID references the ElementID of the
// enclosing section element, when the parser established one.
type Metadata struct {
	PageNumber int    `json:"page_number,omitempty"`
	ParentID   string `json:"parent_id,omitempty"`
}

// Element is one classified unit of document layout. Elements are
// produced once by the upstream parser and are read-only afterwards;
// nothing downstream mutates them.
type Element struct {
	Type      constants.ElementType `json:"type"`
	Text      string                `json:"text"`
	ElementID string                `json:"element_id"`
	Metadata  Metadata              `json:"metadata"`
}

// Is reports whether the element has the given type.
func (e Element) Is(t constants.ElementType) bool {
	return e.Type == t
}

// TextContains reports case-insensitive substring containment.
func (e Element) TextContains(sub string) bool {
	return strings.Contains(strings.ToLower(e.Text), strings.ToLower(sub))
}
