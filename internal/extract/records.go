// Package extract turns a parsed element stream into the semantic
// field groups of a loan agreement. Every extractor is best-effort:
// a field the rules cannot find comes back as its typed default, and
// no extractor ever fails the run.
package extract

// ContactRecord holds one party's contact-table fields. Unmatched
// fields stay empty strings.
type ContactRecord struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// CompanyDetails holds one party's corporate identity from its
// PARTIES clause line.
type CompanyDetails struct {
	Name             string `json:"name"`
	CompanyNumber    string `json:"companyNumber"`
	Jurisdiction     string `json:"jurisdiction"`
	RegisteredOffice string `json:"registeredOffice"`
}

// PartyRecord is one contracting party as assembled into the output
// record: company identity plus contact details.
type PartyRecord struct {
	Name             string        `json:"name"`
	CompanyNumber    string        `json:"companyNumber"`
	Jurisdiction     string        `json:"jurisdiction"`
	RegisteredOffice string        `json:"registeredOffice"`
	Contact          ContactRecord `json:"contact"`
}

// Signature is one matched signature block, in document order. Title
// is the text after the first comma; it overwrites the owning party's
// contact title during assembly.
type Signature struct {
	Name  string
	Title string
}

// InterestPayment is the sub-record parsed from the interest clause.
// Frequency and PaymentDate are nil when the clause is absent or the
// rules find nothing.
type InterestPayment struct {
	Frequency   *string `json:"frequency"`
	Compounding bool    `json:"compounding"`
	PaymentDate *string `json:"paymentDate"`
}

// LoanTerms holds the commercial terms. Numeric fields are nil when
// unmatched or unparseable; string fields default to "Unknown".
type LoanTerms struct {
	PrincipalAmount *float64        `json:"principalAmount"`
	Currency        string          `json:"currency"`
	InterestRate    *float64        `json:"interestRate"`
	DrawdownDate    string          `json:"drawdownDate"`
	RepaymentTerm   string          `json:"repaymentTerm"`
	InterestPayment InterestPayment `json:"interestPayment"`
}
