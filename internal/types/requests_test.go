//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRequest_Validate(t *testing.T) {
	req := ScoreRequest{
		Document:    json.RawMessage(`{"file_type":"pdf","sections":[]}`),
		Requirement: json.RawMessage(`{}`),
		Candidate:   json.RawMessage(`{}`),
	}
	assert.NoError(t, req.Validate())
}

func TestScoreRequest_ValidateMissingPayloads(t *testing.T) {
	req := ScoreRequest{Document: json.RawMessage(`{}`)}
	assert.Error(t, req.Validate())

	req = ScoreRequest{}
	assert.Error(t, req.Validate())
}

func TestScoreRequest_JSONDecoding(t *testing.T) {
	body := `{
		"document": {"file_type": "pdf", "sections": []},
		"requirement_extract": {"required_skills": []},
		"candidate_extract": {"hard_skills": []},
		"resume_text": "text",
		"job_title": "Engineer",
		"company": "Acme",
		"persist": true
	}`

	var req ScoreRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.NotEmpty(t, req.Document)
	assert.NotEmpty(t, req.Requirement)
	assert.NotEmpty(t, req.Candidate)
	assert.Equal(t, "text", req.ResumeText)
	assert.Equal(t, "Engineer", req.JobTitle)
	assert.Equal(t, "Acme", req.Company)
	assert.True(t, req.Persist)
}
