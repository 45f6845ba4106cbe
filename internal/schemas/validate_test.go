package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentStructure_Valid(t *testing.T) {
	payload := `{
		"file_type": "pdf",
		"sections": [
			{"name": "experience", "body": "Built services", "in_header_or_footer": false, "multi_column": false}
		]
	}`
	assert.NoError(t, ValidateDocumentStructure(payload))
}

func TestValidateDocumentStructure_MissingFields(t *testing.T) {
	err := ValidateDocumentStructure(`{"sections": []}`)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotEmpty(t, vErr.Errors)
	assert.Contains(t, vErr.Error(), "file_type")
}

func TestValidateDocumentStructure_WrongTypes(t *testing.T) {
	payload := `{
		"file_type": "pdf",
		"sections": [
			{"name": "experience", "body": "x", "in_header_or_footer": "no", "multi_column": false}
		]
	}`
	var vErr *ValidationError
	require.ErrorAs(t, ValidateDocumentStructure(payload), &vErr)
}

func TestValidateRequirementExtract_Valid(t *testing.T) {
	payload := `{
		"required_skills": ["Go"],
		"preferred_skills": [],
		"soft_skills": ["communication"],
		"min_experience_years": null,
		"min_education_tier": "bachelor",
		"acronym_map": {"K8s": "Kubernetes"}
	}`
	assert.NoError(t, ValidateRequirementExtract(payload))
}

func TestValidateRequirementExtract_NullMinimums(t *testing.T) {
	payload := `{
		"required_skills": [],
		"preferred_skills": [],
		"soft_skills": [],
		"min_experience_years": null,
		"min_education_tier": null,
		"acronym_map": {}
	}`
	assert.NoError(t, ValidateRequirementExtract(payload))
}

func TestValidateRequirementExtract_BadTier(t *testing.T) {
	payload := `{
		"required_skills": [],
		"preferred_skills": [],
		"soft_skills": [],
		"min_education_tier": "diploma",
		"acronym_map": {}
	}`
	var vErr *ValidationError
	require.ErrorAs(t, ValidateRequirementExtract(payload), &vErr)
}

func TestValidateCandidateExtract_Valid(t *testing.T) {
	payload := `{
		"hard_skills": ["Go"],
		"inferred_skills": [{"skill": "Docker", "evidence": "Containerized the pipeline"}],
		"soft_skills": [],
		"job_titles": ["Software Engineer"],
		"total_experience_years": 4.5,
		"employment_periods": [{"start_date": "01/2021", "end_date": "present"}],
		"education_tier": "master"
	}`
	assert.NoError(t, ValidateCandidateExtract(payload))
}

func TestValidateCandidateExtract_NegativeExperience(t *testing.T) {
	payload := `{
		"hard_skills": [],
		"inferred_skills": [],
		"soft_skills": [],
		"job_titles": [],
		"total_experience_years": -1,
		"employment_periods": []
	}`
	var vErr *ValidationError
	require.ErrorAs(t, ValidateCandidateExtract(payload), &vErr)
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := ValidateDocumentStructure("{not json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
