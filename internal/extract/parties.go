package extract

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// partiesMarker is the exact text of the section element anchoring
// the party clause list.
const partiesMarker = "PARTIES"

// Parties locates the PARTIES section, classifies its ListItem
// children as lender or borrower, and extracts each party's company
// details. The returned map always carries both parties; a party the
// stream never mentions is a zero record.
func (x *Extractor) Parties(stream element.Stream) map[constants.PartyType]*PartyRecord {
	parties := map[constants.PartyType]*PartyRecord{
		constants.PartyLender:   {},
		constants.PartyBorrower: {},
	}

	anchors := stream.AnchorIDs(partiesMarker)
	if len(anchors) == 0 {
		x.Logger.Warn("extract.parties.anchor_missing", "marker", partiesMarker)
		return parties
	}

	children := stream.ChildrenOf(anchors)
	for _, item := range children {
		partyType := constants.PartyBorrower
		if strings.Contains(item.Text, "Lender") {
			partyType = constants.PartyLender
		}
		details := x.CompanyDetails(item.Text)
		p := parties[partyType]
		p.Name = details.Name
		p.CompanyNumber = details.CompanyNumber
		p.Jurisdiction = details.Jurisdiction
		p.RegisteredOffice = details.RegisteredOffice
	}

	x.Logger.Info("extract.parties.ok", "clauses", len(children))
	return parties
}

// ApplyContactTables finds every Table element mentioning "contact",
// classifies it by the presence of "LENDER" in its uppercased text,
// and fills the matching party's contact record.
func (x *Extractor) ApplyContactTables(stream element.Stream, parties map[constants.PartyType]*PartyRecord) {
	for _, tbl := range stream.ByType(constants.ElementTable) {
		if !strings.Contains(strings.ToLower(tbl.Text), "contact") {
			continue
		}
		partyType := constants.PartyBorrower
		if strings.Contains(strings.ToUpper(tbl.Text), "LENDER") {
			partyType = constants.PartyLender
		}
		parties[partyType].Contact = x.ContactDetails(tbl.Text)
	}
}
