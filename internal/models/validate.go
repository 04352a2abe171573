// internal/models/validate.go
package models

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"internship-allocator/internal/common/errors"
)

// Records are loosely structured in upstream feeds; both schemas pin down the
// field set the export/reporting layer depends on. Validation runs at
// creation/deserialization boundaries only, never on the allocation hot path.
// Array fields admit null: a nil slice marshals to JSON null and means the
// same thing as an empty list.

const applicantSchema = `{
	"type": "object",
	"required": ["id", "name", "email", "skills", "status"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"},
		"skills": {"type": ["array", "null"], "items": {"type": "string"}},
		"qualifications": {"type": "string"},
		"location": {"type": "string"},
		"sector_interests": {"type": ["array", "null"], "items": {"type": "string"}},
		"rural": {"type": "boolean"},
		"social_category": {"type": "string", "enum": ["General", "OBC", "SC", "ST", "EWS"]},
		"past_participation": {"type": "integer", "minimum": 0},
		"score": {"type": ["number", "null"]},
		"status": {"type": "string", "enum": ["applied", "selected", "rejected"]}
	}
}`

const postingSchema = `{
	"type": "object",
	"required": ["id", "title", "positions"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"department_id": {"type": "string"},
		"title": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"stipend": {"type": "string"},
		"positions": {"type": "integer", "minimum": 1},
		"positions_filled": {"type": "integer", "minimum": 0},
		"applied": {"type": "integer", "minimum": 0},
		"skills_required": {"type": ["array", "null"], "items": {"type": "string"}},
		"location_preference": {"type": "string"},
		"sector": {"type": "string"}
	}
}`

var (
	applicantSchemaLoader = gojsonschema.NewStringLoader(applicantSchema)
	postingSchemaLoader   = gojsonschema.NewStringLoader(postingSchema)
)

// ValidateApplicant checks an applicant record against the schema.
func ValidateApplicant(a *Applicant) error {
	return validate(a, applicantSchemaLoader)
}

// ValidatePosting checks a posting record against the schema. It also
// enforces the capacity invariant the schema alone cannot express.
func ValidatePosting(p *Posting) error {
	if err := validate(p, postingSchemaLoader); err != nil {
		return err
	}
	if p.PositionsFilled > p.Positions {
		return errors.NewValidationFailedError("positions_filled exceeds positions")
	}
	return nil
}

func validate(record interface{}, schema gojsonschema.JSONLoader) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.NewValidationFailedError(strings.Join(msgs, "; "))
}
