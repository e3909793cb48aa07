package element

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
)

// Stream is an ordered, read-only sequence of elements in document
// reading order. All query helpers return views or copies; none
// modify the receiver.
type Stream []Element

// First returns the first element satisfying pred.
func (s Stream) First(pred func(Element) bool) (Element, bool) {
	for _, el := range s {
		if pred(el) {
			return el, true
		}
	}
	return Element{}, false
}

// FirstOfType returns the first element of the given type with
// non-empty text.
func (s Stream) FirstOfType(t constants.ElementType) (Element, bool) {
	return s.First(func(el Element) bool {
		return el.Type == t && el.Text != ""
	})
}

// ByType returns all elements of the given type, in stream order.
func (s Stream) ByType(t constants.ElementType) Stream {
	var out Stream
	for _, el := range s {
		if el.Type == t {
			out = append(out, el)
		}
	}
	return out
}

// ExcludePage returns a stream without the elements of the given page.
func (s Stream) ExcludePage(page int) Stream {
	out := make(Stream, 0, len(s))
	for _, el := range s {
		if el.Metadata.PageNumber != page {
			out = append(out, el)
		}
	}
	return out
}

// AnchorIDs returns the ElementIDs of all elements whose text equals
// marker exactly. Section markers like "PARTIES" are emitted by the
// parser as their own elements, so an exact match is intentional.
func (s Stream) AnchorIDs(marker string) []string {
	var ids []string
	for _, el := range s {
		if el.Text == marker {
			ids = append(ids, el.ElementID)
		}
	}
	return ids
}

// ChildrenOf returns the ListItem elements parented to any of the
// given anchor IDs, in stream order.
func (s Stream) ChildrenOf(parentIDs []string) Stream {
	if len(parentIDs) == 0 {
		return nil
	}
	parents := make(map[string]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}
	var out Stream
	for _, el := range s {
		if el.Type != constants.ElementListItem {
			continue
		}
		if _, ok := parents[el.Metadata.ParentID]; ok {
			out = append(out, el)
		}
	}
	return out
}

// CleanText collapses all runs of whitespace in s to single spaces and
// trims the result.
func CleanText(s string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
