package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

func TestEventsOfDefault(t *testing.T) {
	x := newTestExtractor(t)

	stream := element.Stream{
		el(constants.ElementTitle, "EVENTS OF DEFAULT"),
		el(constants.ElementListItem, "5.1 intro"),
		el(constants.ElementListItem, "5.2 intro"),
		el(constants.ElementListItem, "a breach of covenant"),
		el(constants.ElementListItem, "ii late payment"),
		el(constants.ElementListItem, "5.3 remedies"),
		el(constants.ElementListItem, "b never reached"),
	}
	assert.Equal(t, []string{"breach of covenant", "late payment"}, x.EventsOfDefault(stream))
}

func TestEventsOfDefaultNoSection(t *testing.T) {
	x := newTestExtractor(t)

	stream := element.Stream{
		el(constants.ElementTitle, "GOVERNING LAW"),
		el(constants.ElementListItem, "a stray item"),
	}
	assert.Empty(t, x.EventsOfDefault(stream))
}

func TestEventsOfDefaultIgnoresNonListItems(t *testing.T) {
	x := newTestExtractor(t)

	stream := element.Stream{
		el(constants.ElementTitle, "5 EVENTS OF DEFAULT"),
		el(constants.ElementNarrativeText, "narrative inside the section"),
		el(constants.ElementListItem, "c cross default"),
	}
	assert.Equal(t, []string{"cross default"}, x.EventsOfDefault(stream))
}

func TestEventsOfDefaultPrefixStripping(t *testing.T) {
	x := newTestExtractor(t)

	tests := []struct {
		item string
		want []string
	}{
		{"a breach of covenant", []string{"breach of covenant"}},
		{"iv misrepresentation", []string{"misrepresentation"}},
		{"x cessation of business", []string{"cessation of business"}},
		{"insolvency without prefix", []string{"insolvency without prefix"}},
		// Empty after cleanup: skipped entirely.
		{"   ", nil},
	}
	for _, tt := range tests {
		stream := element.Stream{
			el(constants.ElementTitle, "EVENTS OF DEFAULT"),
			el(constants.ElementListItem, tt.item),
		}
		got := x.EventsOfDefault(stream)
		if tt.want == nil {
			assert.Empty(t, got, "item %q", tt.item)
		} else {
			assert.Equal(t, tt.want, got, "item %q", tt.item)
		}
	}
}
