// Package patterns holds the rule set driving field extraction: one
// regular expression per semantic field, grouped by namespace. The
// library is plain data passed explicitly into extractors, so tests
// and callers can substitute alternate rule sets.
package patterns

// ContactRules match fields inside a party's contact table text.
type ContactRules struct {
	Name    string
	Address string
	Email   string
	Title   string
}

// CompanyRules match a party's corporate identity inside a PARTIES
// clause line.
type CompanyRules struct {
	Name         string
	Number       string
	Jurisdiction string
	Office       string
}

// LoanRules match the commercial terms of the loan.
type LoanRules struct {
	Principal    string
	Currency     string
	InterestRate string
	DrawdownDays string
	Repayment    string
}

// Library is the full rule set. Every pattern is applied
// case-insensitively and yields its first capture group; ordered
// slices are tried first-match-wins.
type Library struct {
	Contact ContactRules
	Company CompanyRules
	Loan    LoanRules

	// GoverningLaw patterns are tried in order against the text
	// following a GOVERNING LAW title.
	GoverningLaw []string

	// PaymentDate patterns are tried in order against the interest
	// clause ("payable on", "paid on", "due on").
	PaymentDate []string

	// PrincipalFallback matches a standalone comma-grouped amount;
	// the last occurrence wins when the primary principal rule
	// finds nothing.
	PrincipalFallback string
}

// Default returns the rule set for the standard loan agreement
// template.
func Default() Library {
	return Library{
		Contact: ContactRules{
			Name:    `Contact Name\s+(.*?)(?:\s+Company|$)`,
			Address: `Address\s+(.*?)(?:\s+Email|$)`,
			Email:   `Email address\s+(.*?)(?:$|\s)`,
			Title:   `Title\s+(.*?)(?:\s+|$)`,
		},
		Company: CompanyRules{
			Name:         `^(.*?),\s*company\s*number`,
			Number:       `company\s*number\s*([^,]+)`,
			Jurisdiction: `incorporated\s*in\s*([^\s]+)`,
			Office:       `registered\s*office\s*is\s*at\s*([^(]+)`,
		},
		Loan: LoanRules{
			Principal:    `(?:Loan\s*\$|\$)\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)`,
			Currency:     `(?:to\s+)?(SGD|USD|EUR|GBP|THB)`,
			InterestRate: `Interest Rate\s+(\d+\.?\d*)`,
			DrawdownDays: `Drawdown Date\s+(.*?)(?:\.|$)`,
			Repayment:    `Repayment of Loan:\s*(.*?)(?:\.|$)`,
		},
		GoverningLaw: []string{
			`governed by.+?laws? of\s+([^,\.\s]+)`,
			`governed by.+?([^,\.\s]+)\s+law`,
			`interpreted in accordance with.+?laws? of\s+([^,\.\s]+)`,
			`([^,\.\s]+)\s+law shall apply`,
		},
		PaymentDate: []string{
			`payable\s+on\s+(?:the\s+)?([^,\.]+)`,
			`paid\s+on\s+(?:the\s+)?([^,\.]+)`,
			`due\s+on\s+(?:the\s+)?([^,\.]+)`,
		},
		PrincipalFallback: `(?:^|\s)(\d{1,3}(?:,\d{3})+)(?:\s|$)`,
	}
}
