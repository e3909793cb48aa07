// Package assemble merges the independent extractor outputs into one
// fixed-shape document record. The shape guarantees from the output
// contract are enforced here and only here; extractors are free to
// produce partial data.
package assemble

import (
	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/extract"
)

// DocumentRecord is the final structured output for one document.
// After assembly it is always fully populated: both parties exist,
// every contact has all four fields (possibly empty), slices are
// never nil, and string fields default to "Unknown".
type DocumentRecord struct {
	DocumentType    string                                         `json:"documentType"`
	Parties         map[constants.PartyType]*extract.PartyRecord   `json:"parties"`
	LoanTerms       extract.LoanTerms                              `json:"loanTerms"`
	EventsOfDefault []string                                       `json:"eventsOfDefault"`
	GoverningLaw    string                                         `json:"governingLaw"`
}
