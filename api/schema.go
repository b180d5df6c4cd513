package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// createSchema guards POST /candidates/ and the CSV import rows: required
// fields and JSON types only. Business rules such as rating bounds or a stage
// enumeration are intentionally not enforced.
const createSchema = `{
	"type": "object",
	"required": ["name", "rating", "stage", "role"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"avatar": {"type": "string"},
		"rating": {"type": "number"},
		"stage": {"type": "string"},
		"role": {"type": "string", "minLength": 1},
		"files": {"type": "integer"},
		"email": {"type": "string"},
		"phone": {"type": "string"},
		"experience": {"type": "string"}
	}
}`

var createValidator = mustSchema(createSchema)

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return rs
}

// validateCreatePayload checks a raw creation body against the schema and
// reports the first violation in a client-readable form.
func validateCreatePayload(ctx context.Context, body []byte) error {
	keyErrs, err := createValidator.ValidateBytes(ctx, body)
	if err != nil {
		return err
	}
	if len(keyErrs) > 0 {
		return fmt.Errorf("%s", keyErrs[0].Error())
	}
	return nil
}
