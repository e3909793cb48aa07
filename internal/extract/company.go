package extract

import (
	"regexp"
	"strings"
)

var reLeadingDigits = regexp.MustCompile(`^\d+\s*`)

// CleanCompanyName strips a leading run of digits (numbered-clause
// artifacts like "1 Acme Pte Ltd") and collapses internal whitespace.
func CleanCompanyName(name string) string {
	cleaned := reLeadingDigits.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// CompanyDetails runs the company rules against one PARTIES clause
// line. Unmatched fields come back empty.
func (x *Extractor) CompanyDetails(text string) CompanyDetails {
	return CompanyDetails{
		Name:             x.WithPattern(text, x.Rules.Company.Name, ""),
		CompanyNumber:    x.WithPattern(text, x.Rules.Company.Number, ""),
		Jurisdiction:     x.WithPattern(text, x.Rules.Company.Jurisdiction, ""),
		RegisteredOffice: x.WithPattern(text, x.Rules.Company.Office, ""),
	}
}

// ContactDetails runs the contact rules against one contact table's
// flattened text.
func (x *Extractor) ContactDetails(text string) ContactRecord {
	return ContactRecord{
		Name:    x.WithPattern(text, x.Rules.Contact.Name, ""),
		Title:   x.WithPattern(text, x.Rules.Contact.Title, ""),
		Address: x.WithPattern(text, x.Rules.Contact.Address, ""),
		Email:   x.WithPattern(text, x.Rules.Contact.Email, ""),
	}
}
