package assemble

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the assembled output, as a generic map. It encodes the shape
// invariants the assembler promises: fixed top-level keys, both
// parties, complete contact records.
func BuildDocumentJSONSchema() map[string]any {
	contact := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string"},
			"title":   map[string]any{"type": "string"},
			"address": map[string]any{"type": "string"},
			"email":   map[string]any{"type": "string"},
		},
		"required": []string{"name", "title", "address", "email"},
	}

	party := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":             map[string]any{"type": "string"},
			"companyNumber":    map[string]any{"type": "string"},
			"jurisdiction":     map[string]any{"type": "string"},
			"registeredOffice": map[string]any{"type": "string"},
			"contact":          contact,
		},
		"required": []string{"name", "companyNumber", "jurisdiction", "registeredOffice", "contact"},
	}

	interestPayment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"frequency":   map[string]any{"type": []string{"string", "null"}, "enum": []any{"annually", "monthly", "daily", nil}},
			"compounding": map[string]any{"type": "boolean"},
			"paymentDate": map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{"frequency", "compounding", "paymentDate"},
	}

	loanTerms := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"principalAmount": map[string]any{"type": []string{"number", "null"}},
			"currency":        map[string]any{"type": "string", "minLength": 1},
			"interestRate":    map[string]any{"type": []string{"number", "null"}},
			"drawdownDate":    map[string]any{"type": "string", "minLength": 1},
			"repaymentTerm":   map[string]any{"type": "string", "minLength": 1},
			"interestPayment": interestPayment,
		},
		"required": []string{"principalAmount", "currency", "interestRate", "drawdownDate", "repaymentTerm", "interestPayment"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"documentType": map[string]any{"type": "string", "minLength": 1},
			"parties": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"lender":   party,
					"borrower": party,
				},
				"required": []string{"lender", "borrower"},
			},
			"loanTerms":       loanTerms,
			"eventsOfDefault": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"governingLaw":    map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"documentType", "parties", "loanTerms", "eventsOfDefault", "governingLaw"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
