package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
)

// LoanTerms extracts the commercial terms of the loan. The loan table
// is the first Table mentioning "per annum" or "Interest Rate"; the
// repayment and currency clauses are located independently among the
// ListItems so a sparse document still yields partial terms.
func (x *Extractor) LoanTerms(stream element.Stream) LoanTerms {
	tableText := ""
	if tbl, ok := stream.First(func(el element.Element) bool {
		return el.Type == constants.ElementTable &&
			(strings.Contains(el.Text, "per annum") || strings.Contains(el.Text, "Interest Rate"))
	}); ok {
		tableText = tbl.Text
	}

	repaymentText := ""
	if item, ok := stream.First(func(el element.Element) bool {
		return el.Type == constants.ElementListItem && strings.Contains(el.Text, "Repayment of Loan")
	}); ok {
		repaymentText = item.Text
	}

	currencyText := ""
	if item, ok := stream.First(func(el element.Element) bool {
		return el.Type == constants.ElementListItem &&
			(strings.Contains(el.Text, "$") || strings.Contains(strings.ToLower(el.Text), "currency"))
	}); ok {
		currencyText = item.Text
	}

	terms := x.loanDetails(tableText)

	terms.Currency = x.WithPattern(currencyText, x.Rules.Loan.Currency, "")
	if terms.Currency == "" {
		terms.Currency = "Unknown"
	}

	// Fall back to the standalone repayment clause when the loan
	// table carried no repayment line.
	if terms.RepaymentTerm == "" {
		terms.RepaymentTerm = x.WithPattern(repaymentText, x.Rules.Loan.Repayment, "")
	}
	if terms.RepaymentTerm == "" {
		terms.RepaymentTerm = "Unknown"
	}

	terms.InterestPayment = x.InterestPayment(stream)

	x.Logger.Info("extract.loanterms.ok",
		"currency", terms.Currency,
		"has_principal", terms.PrincipalAmount != nil,
		"has_rate", terms.InterestRate != nil,
	)
	return terms
}

// loanDetails parses rate, principal and drawdown phrase out of the
// loan table text.
func (x *Extractor) loanDetails(text string) LoanTerms {
	var terms LoanTerms

	if raw := x.WithPattern(text, x.Rules.Loan.InterestRate, ""); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil {
			terms.InterestRate = &rate
		} else {
			x.Logger.Warn("extract.loanterms.bad_rate", "value", raw)
		}
	}

	if raw := x.WithPattern(text, x.Rules.Loan.Principal, ""); raw != "" {
		if amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
			terms.PrincipalAmount = &amount
		} else {
			x.Logger.Warn("extract.loanterms.bad_principal", "value", raw)
		}
	}
	if terms.PrincipalAmount == nil {
		// Last standalone comma-grouped amount in the table, for
		// documents that state the amount without a currency sign.
		if raw := x.lastWithPattern(text, x.Rules.PrincipalFallback, ""); raw != "" {
			if amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
				terms.PrincipalAmount = &amount
			}
		}
	}

	if days := x.WithPattern(text, x.Rules.Loan.DrawdownDays, ""); days != "" {
		terms.DrawdownDate = fmt.Sprintf("%s Business Days after agreement date", days)
	} else {
		terms.DrawdownDate = "Unknown"
	}

	terms.RepaymentTerm = x.WithPattern(text, x.Rules.Loan.Repayment, "")
	return terms
}
