package assemble

import (
	"encoding/json"
	"log/slog"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/extract"
)

// Inputs carries the raw extractor outputs into assembly. Any field
// may be zero; the assembler fills the gaps.
type Inputs struct {
	DocumentType    string
	Parties         map[constants.PartyType]*extract.PartyRecord
	LoanTerms       extract.LoanTerms
	EventsOfDefault []string
	GoverningLaw    string
}

// Assembler builds and normalizes DocumentRecords.
type Assembler struct {
	Logger *slog.Logger
}

func New(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{Logger: logger}
}

// Assemble combines extractor outputs into a DocumentRecord and
// enforces the output-shape invariants: both parties present with a
// complete contact record, non-nil event list, "Unknown" defaults for
// empty strings, and cleaned company names.
func (a *Assembler) Assemble(in Inputs) *DocumentRecord {
	rec := &DocumentRecord{
		DocumentType:    in.DocumentType,
		Parties:         in.Parties,
		LoanTerms:       in.LoanTerms,
		EventsOfDefault: in.EventsOfDefault,
		GoverningLaw:    in.GoverningLaw,
	}

	if rec.DocumentType == "" {
		rec.DocumentType = "Unknown"
	}
	if rec.GoverningLaw == "" {
		rec.GoverningLaw = "Unknown"
	}
	if rec.EventsOfDefault == nil {
		rec.EventsOfDefault = []string{}
	}
	if rec.LoanTerms.Currency == "" {
		rec.LoanTerms.Currency = "Unknown"
	}
	if rec.LoanTerms.DrawdownDate == "" {
		rec.LoanTerms.DrawdownDate = "Unknown"
	}
	if rec.LoanTerms.RepaymentTerm == "" {
		rec.LoanTerms.RepaymentTerm = "Unknown"
	}

	if rec.Parties == nil {
		rec.Parties = make(map[constants.PartyType]*extract.PartyRecord, len(constants.PartyTypes))
	}
	for _, pt := range constants.PartyTypes {
		p := rec.Parties[pt]
		if p == nil {
			p = &extract.PartyRecord{}
			rec.Parties[pt] = p
		}
		p.Name = extract.CleanCompanyName(p.Name)
	}

	// Internal consistency probe against the output schema; a
	// mismatch is logged, never fatal.
	if data, err := json.Marshal(rec); err == nil {
		if err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(), data); err != nil {
			a.Logger.Warn("assemble.schema_mismatch", "err", err)
		}
	}

	return rec
}

// MarshalRecord renders a record as indented UTF-8 JSON. Key order is
// deterministic, so two runs over the same stream produce identical
// bytes.
func MarshalRecord(rec *DocumentRecord) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}
