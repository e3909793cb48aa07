package ingest

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tsawler/tabula"
	"github.com/tsawler/tabula/model"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// FromPDF parses a PDF through tabula and adapts its layout model to
// the element stream: level-1 headings become Titles, deeper headings
// Headers, paragraphs NarrativeText, list items ListItems parented to
// the preceding Title, and tables keep their flattened text. Element
// IDs are generated; page numbers come from tabula's page model.
func FromPDF(path string) (element.Stream, error) {
	doc, _, err := tabula.Open(path).Document()
	if err != nil {
		return nil, fmt.Errorf("parse pdf %s: %w", path, err)
	}
	return FromDocument(doc), nil
}

// FromDocument converts an already-parsed tabula document.
func FromDocument(doc *model.Document) element.Stream {
	var stream element.Stream
	sectionID := ""

	add := func(t constants.ElementType, text string, page int, parent string) {
		stream = append(stream, element.Element{
			Type:      t,
			Text:      text,
			ElementID: uuid.NewString(),
			Metadata:  element.Metadata{PageNumber: page, ParentID: parent},
		})
	}

	for _, page := range doc.Pages {
		for _, el := range page.Elements {
			switch v := el.(type) {
			case *model.Heading:
				if v.Level <= 1 {
					add(constants.ElementTitle, v.Text, page.Number, "")
					sectionID = stream[len(stream)-1].ElementID
				} else {
					add(constants.ElementHeader, v.Text, page.Number, sectionID)
				}
			case *model.Paragraph:
				add(constants.ElementNarrativeText, v.Text, page.Number, sectionID)
			case *model.List:
				for _, item := range v.Items {
					add(constants.ElementListItem, item.Text, page.Number, sectionID)
				}
			case *model.Table:
				add(constants.ElementTable, v.GetText(), page.Number, sectionID)
			case *model.Image:
				add(constants.ElementImage, v.AltText, page.Number, sectionID)
			default:
				if te, ok := el.(model.TextElement); ok {
					t := constants.ElementText
					if el.Type() == model.ElementTypeCaption {
						t = constants.ElementFigureCaption
					}
					add(t, te.GetText(), page.Number, sectionID)
				}
			}
		}
	}
	return stream
}
