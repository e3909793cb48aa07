// Package render maps an element stream to a markdown view. The
// renderer shares nothing with the field extractors; it is a pure
// fold over the same input.
package render

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// Markdown renders the stream: Titles become level-1 headings,
// Headers level-2, ListItems bullets, FigureCaptions italics, Images
// placeholder references, NarrativeText paragraphs, and anything else
// a raw line. Consecutive Table elements are buffered into one run
// and flushed as a pipe-delimited block when a non-table element
// breaks the run or the stream ends. Elements that are empty after
// whitespace cleanup are skipped.
func Markdown(stream element.Stream) string {
	var lines []string
	var tableRun []string

	flush := func() {
		if len(tableRun) == 0 {
			return
		}
		lines = append(lines, formatTable(tableRun)...)
		tableRun = nil
	}

	for _, el := range stream {
		text := element.CleanText(el.Text)
		if text == "" {
			continue
		}

		if el.Type != constants.ElementTable {
			flush()
		}

		switch el.Type {
		case constants.ElementTitle:
			lines = append(lines, "# "+text+"\n")
		case constants.ElementHeader:
			lines = append(lines, "## "+text+"\n")
		case constants.ElementListItem:
			lines = append(lines, "- "+text)
		case constants.ElementTable:
			tableRun = append(tableRun, text)
		case constants.ElementFigureCaption:
			lines = append(lines, "\n*"+text+"*\n")
		case constants.ElementImage:
			lines = append(lines, "!["+text+"](image_path)\n")
		case constants.ElementNarrativeText:
			lines = append(lines, "\n"+text+"\n")
		default:
			lines = append(lines, text)
		}
	}
	flush()

	return strings.Join(lines, "\n")
}

// formatTable emits one table run as a minimal pipe table: one cell
// per buffered element, followed by a separator row.
func formatTable(cells []string) []string {
	return []string{
		"\n| " + strings.Join(cells, " | ") + " |",
		"|" + strings.Repeat("---|", len(cells)),
	}
}
