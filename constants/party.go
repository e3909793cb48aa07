package constants

// PartyType identifies a contracting party in a loan agreement.
type PartyType string

const (
	PartyLender   PartyType = "lender"
	PartyBorrower PartyType = "borrower"
)

// PartyTypes lists the parties every assembled record must carry, in
// output order.
var PartyTypes = []PartyType{PartyLender, PartyBorrower}
