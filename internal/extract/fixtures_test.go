package extract

import (
	"log/slog"
	"testing"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/element"
	"github.com/d-okonkwo/loandocs/internal/patterns"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(slog.Default(), patterns.Default())
}

func el(typ constants.ElementType, text string) element.Element {
	return element.Element{Type: typ, Text: text}
}

// agreementStream models the element dump of a complete parsed loan
// agreement, page numbers and parent links included.
func agreementStream() element.Stream {
	return element.Stream{
		{Type: constants.ElementTitle, Text: "Loan Agreement", ElementID: "title-1", Metadata: element.Metadata{PageNumber: 1}},
		{Type: constants.ElementTitle, Text: "PARTIES", ElementID: "parties-anchor", Metadata: element.Metadata{PageNumber: 1}},
		{Type: constants.ElementListItem,
			Text:      "1 Lendco Capital Pte Ltd, company number 201800001A, incorporated in Singapore whose registered office is at 1 Raffles Place (the Lender)",
			ElementID: "party-1", Metadata: element.Metadata{PageNumber: 1, ParentID: "parties-anchor"}},
		{Type: constants.ElementListItem,
			Text:      "2 Borrowco Trading Pte Ltd, company number 201900002B, incorporated in Singapore whose registered office is at 2 Shenton Way (the Borrower)",
			ElementID: "party-2", Metadata: element.Metadata{PageNumber: 1, ParentID: "parties-anchor"}},
		el(constants.ElementTable,
			"LENDER Contact Name Alice Tan Company Lendco Capital Pte Ltd Title Director Address 1 Raffles Place Singapore 048616 Email address alice@lendco.sg"),
		el(constants.ElementTable,
			"BORROWER Contact Name Ben Ong Company Borrowco Trading Pte Ltd Title Finance Manager Address 2 Shenton Way Singapore 068804 Email address ben@borrowco.sg"),
		el(constants.ElementTitle, "LOAN DETAILS"),
		el(constants.ElementTable,
			"Loan $ 2,000,000 Interest Rate 5.5 per annum Drawdown Date 10. Repayment of Loan: The Borrower must repay the Loan in full within 24 months."),
		el(constants.ElementListItem, "2.1 The Lender agrees to lend to the Borrower SGD $2,000,000 in a single advance"),
		el(constants.ElementListItem, "3.1 The Borrower must pay interest on the Loan annually with compounding, payable on the first Business Day of each year, in arrears"),
		el(constants.ElementTitle, "5 EVENTS OF DEFAULT"),
		el(constants.ElementListItem, "5.1 Each of the events set out in this clause is an Event of Default"),
		el(constants.ElementListItem, "5.2 The Lender may rely on any of the following"),
		el(constants.ElementListItem, "a breach of covenant"),
		el(constants.ElementListItem, "ii late payment"),
		el(constants.ElementListItem, "5.3 remedies available to the Lender"),
		el(constants.ElementListItem, "b insolvency of the Borrower"),
		el(constants.ElementTitle, "GOVERNING LAW"),
		el(constants.ElementNarrativeText, "This Agreement shall be governed by the laws of Singapore."),
		el(constants.ElementFigureCaption, "Signature of authorised signatory"),
		el(constants.ElementNarrativeText, "Alice Tan, Director of Lendco"),
		el(constants.ElementNarrativeText, "Print full name of authorised"),
		el(constants.ElementFigureCaption, "Signature of authorised signatory"),
		el(constants.ElementNarrativeText, "Ben Ong, Finance Manager"),
		el(constants.ElementNarrativeText, "Print full name of authorised"),
	}
}
