package extract

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// Fixed marker strings delimiting one signature block in the standard
// template.
const (
	signatureStartMarker = "Signature of authorised signatory"
	signatureEndMarker   = "Print full name of authorised"
)

// Signatures scans for signature blocks and returns them in document
// order. A block starts at a NarrativeText or FigureCaption element
// whose text equals the start marker; within the span up to the end
// marker, the first NarrativeText containing a comma is split on its
// first comma into name and title.
//
// Party assignment is strictly positional and belongs to the caller:
// the first signature goes to the lender, the second to the borrower
// (see AssignSignatures).
func (x *Extractor) Signatures(stream element.Stream) []Signature {
	var sigs []Signature
	for i, el := range stream {
		if el.Type != constants.ElementNarrativeText && el.Type != constants.ElementFigureCaption {
			continue
		}
		if el.Text != signatureStartMarker {
			continue
		}
		for j := i + 1; j < len(stream); j++ {
			cur := stream[j]
			if cur.Text == signatureEndMarker {
				break
			}
			if cur.Type == constants.ElementNarrativeText && strings.Contains(cur.Text, ",") {
				name, title, _ := strings.Cut(cur.Text, ",")
				sigs = append(sigs, Signature{
					Name:  strings.TrimSpace(name),
					Title: strings.TrimSpace(title),
				})
				break
			}
		}
	}
	if len(sigs) == 0 {
		x.Logger.Warn("extract.signatures.none")
	}
	return sigs
}

// AssignSignatures applies signature titles to parties using an
// ordered queue: the first block found is the lender's, the second
// the borrower's, irrespective of any party label near the block. A
// found title overwrites the party's contact title.
func AssignSignatures(sigs []Signature, parties map[constants.PartyType]*PartyRecord) {
	order := []constants.PartyType{constants.PartyLender, constants.PartyBorrower}
	for i, sig := range sigs {
		if i >= len(order) {
			break
		}
		if p := parties[order[i]]; p != nil && sig.Title != "" {
			p.Contact.Title = sig.Title
		}
	}
}
