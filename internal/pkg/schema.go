package pkg

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// ValidateRecord validates a record bag against a collection's JSON schema.
// A nil or empty schema accepts any bag. Violations are reported as a single
// validation AppError listing every failing field.
func ValidateRecord(rec domain.Record, schema map[string]any) error {
	return validateAgainst(rec, schema)
}

// ValidatePartial validates a partial update bag. The schema's required
// constraint is lifted, since a partial by definition carries only the
// edited keys.
func ValidatePartial(partial domain.Record, schema map[string]any) error {
	if len(schema) == 0 {
		return nil
	}
	relaxed := make(map[string]any, len(schema))
	for k, v := range schema {
		if k == "required" {
			continue
		}
		relaxed[k] = v
	}
	return validateAgainst(partial, relaxed)
}

func validateAgainst(rec domain.Record, schema map[string]any) error {
	if len(schema) == 0 {
		return nil
	}

	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "encode schema", err)
	}
	docJSON, err := json.Marshal(rec)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "encode record", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(docJSON),
	)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "validate record", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return domain.NewAppError(domain.CodeValidation, strings.Join(msgs, "; "), nil)
}
