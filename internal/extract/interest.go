package extract

import (
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// interestClausePrefix identifies the clause the interest-payment
// rules run against in the standard template.
const interestClausePrefix = "3.1"

var frequencies = []string{"annually", "monthly", "daily"}

// InterestPayment parses the interest clause (the "3.1 ... Borrower
// must pay interest" ListItem). When the clause is absent the record
// comes back all defaults with a logged warning; that is an expected
// outcome, not a failure.
func (x *Extractor) InterestPayment(stream element.Stream) InterestPayment {
	var payment InterestPayment

	clause, ok := stream.First(func(el element.Element) bool {
		return el.Type == constants.ElementListItem &&
			strings.HasPrefix(el.Text, interestClausePrefix) &&
			strings.Contains(el.Text, "Borrower must pay interest")
	})
	if !ok {
		x.Logger.Warn("extract.interest.clause_missing")
		return payment
	}

	lowered := strings.ToLower(clause.Text)
	for _, freq := range frequencies {
		if strings.Contains(lowered, freq) {
			f := freq
			payment.Frequency = &f
			break
		}
	}

	payment.Compounding = strings.Contains(lowered, "compounding")

	for _, pattern := range x.Rules.PaymentDate {
		if date := x.WithPattern(clause.Text, pattern, ""); date != "" {
			payment.PaymentDate = &date
			break
		}
	}

	return payment
}
