package element

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-okonkwo/loandocs/constants"
)

func TestDecode(t *testing.T) {
	dump := `[
		{"type": "Title", "text": "LOAN AGREEMENT", "element_id": "t1", "metadata": {"page_number": 1}},
		{"type": "ListItem", "text": "first clause", "element_id": "l1", "metadata": {"page_number": 2, "parent_id": "t1"}},
		{"type": "NarrativeText", "text": "body", "element_id": "n1", "metadata": {}}
	]`

	stream, err := Decode(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, stream, 3)

	assert.Equal(t, constants.ElementTitle, stream[0].Type)
	assert.Equal(t, "LOAN AGREEMENT", stream[0].Text)
	assert.Equal(t, 1, stream[0].Metadata.PageNumber)

	assert.Equal(t, "t1", stream[1].Metadata.ParentID)
	assert.Equal(t, 2, stream[1].Metadata.PageNumber)

	// Sparse metadata decodes to zero values.
	assert.Equal(t, 0, stream[2].Metadata.PageNumber)
	assert.Empty(t, stream[2].Metadata.ParentID)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not": "an array"`))
	assert.Error(t, err)
}

func TestStreamQueries(t *testing.T) {
	stream := Stream{
		{Type: constants.ElementTitle, Text: "PARTIES", ElementID: "anchor", Metadata: Metadata{PageNumber: 1}},
		{Type: constants.ElementListItem, Text: "the Lender", ElementID: "a", Metadata: Metadata{PageNumber: 2, ParentID: "anchor"}},
		{Type: constants.ElementNarrativeText, Text: "not a clause", ElementID: "b", Metadata: Metadata{PageNumber: 2, ParentID: "anchor"}},
		{Type: constants.ElementListItem, Text: "the Borrower", ElementID: "c", Metadata: Metadata{PageNumber: 3, ParentID: "anchor"}},
		{Type: constants.ElementListItem, Text: "unrelated", ElementID: "d", Metadata: Metadata{PageNumber: 3, ParentID: "other"}},
	}

	t.Run("anchor ids match exact text only", func(t *testing.T) {
		assert.Equal(t, []string{"anchor"}, stream.AnchorIDs("PARTIES"))
		assert.Empty(t, stream.AnchorIDs("Parties"))
	})

	t.Run("children filters by type and parent", func(t *testing.T) {
		children := stream.ChildrenOf([]string{"anchor"})
		require.Len(t, children, 2)
		assert.Equal(t, "the Lender", children[0].Text)
		assert.Equal(t, "the Borrower", children[1].Text)
	})

	t.Run("children of nothing is empty", func(t *testing.T) {
		assert.Empty(t, stream.ChildrenOf(nil))
	})

	t.Run("exclude page", func(t *testing.T) {
		rest := stream.ExcludePage(2)
		require.Len(t, rest, 3)
		for _, el := range rest {
			assert.NotEqual(t, 2, el.Metadata.PageNumber)
		}
	})

	t.Run("first of type skips empty text", func(t *testing.T) {
		s := Stream{
			{Type: constants.ElementTitle, Text: ""},
			{Type: constants.ElementTitle, Text: "Loan Agreement"},
		}
		title, ok := s.FirstOfType(constants.ElementTitle)
		require.True(t, ok)
		assert.Equal(t, "Loan Agreement", title.Text)
	})
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "one two three", CleanText("  one \n two\t\tthree "))
	assert.Equal(t, "", CleanText(" \n\t "))
}
