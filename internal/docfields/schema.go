package docfields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fieldsSchema is the shape persisted in scan_job.extracted_json. Every
// field is nullable; tax_id, when present, is digits-only and fixed length.
var fieldsSchema = map[string]any{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type":    "object",
	"properties": map[string]any{
		"name":       map[string]any{"type": []string{"string", "null"}},
		"tax_id":     map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{11}$`},
		"birth_date": map[string]any{"type": []string{"string", "null"}},
		"raw_text":   map[string]any{"type": "string"},
	},
	"required":             []string{"name", "tax_id", "birth_date", "raw_text"},
	"additionalProperties": false,
}

// FieldsJSON marshals the record for persistence.
func (r DocumentRecord) FieldsJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ValidateFieldsJSON validates data against the extracted-fields schema.
func ValidateFieldsJSON(data []byte) error {
	b, err := json.Marshal(fieldsSchema)
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
