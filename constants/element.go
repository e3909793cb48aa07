package constants

// ElementType is the canonical layout classification assigned by the
// upstream document parser. Stable values (they appear verbatim in
// element JSON dumps).
type ElementType string

const (
	ElementTitle         ElementType = "Title"
	ElementHeader        ElementType = "Header"
	ElementNarrativeText ElementType = "NarrativeText"
	ElementListItem      ElementType = "ListItem"
	ElementTable         ElementType = "Table"
	ElementFigureCaption ElementType = "FigureCaption"
	ElementImage         ElementType = "Image"
	ElementText          ElementType = "Text"
)
