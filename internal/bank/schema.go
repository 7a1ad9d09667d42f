package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema describes the minimal shape a bank file must have: required
// keys and basic types only. Anything beyond key presence (answer values
// appearing in choices, sensible point values) is the author's problem.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string"},
					"type": map[string]any{
						"enum": []any{"multiple_choice", "multiple_selection"},
					},
					"choices": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correct_answers": map[string]any{
						"oneOf": []any{
							map[string]any{"type": "string"},
							map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
						},
					},
					"points": map[string]any{"type": "integer"},
					"id":     map[string]any{"type": "string"},
				},
				"required": []any{"text", "type", "choices", "correct_answers"},
			},
		},
	},
	"required": []any{"name", "questions"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateBankDoc checks a decoded bank document against bankSchema.
// The schema is compiled once per process.
func validateBankDoc(doc any) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileBankSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile bank schema: %w", compileErr)
	}

	// The validator expects JSON-typed values (string-keyed maps, float64
	// numbers). Round-trip the YAML-decoded document through encoding/json
	// to normalize it.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("normalize document: %w", err)
	}

	return compiledSchema.Validate(parsed)
}

func compileBankSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-bank.json"
	if err := c.AddResource(schemaURL, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
