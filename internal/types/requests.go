package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the HTTP API request body for one scoring run. The three
// payloads are kept raw so they can be schema-validated before decoding.
type ScoreRequest struct {
	Document    json.RawMessage `json:"document" validate:"required"`
	Requirement json.RawMessage `json:"requirement_extract" validate:"required"`
	Candidate   json.RawMessage `json:"candidate_extract" validate:"required"`
	ResumeText  string          `json:"resume_text,omitempty"`
	JobTitle    string          `json:"job_title,omitempty"`
	Company     string          `json:"company,omitempty"`
	Persist     bool            `json:"persist,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
