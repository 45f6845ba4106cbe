//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationTier_Rank(t *testing.T) {
	assert.Less(t, TierNone.Rank(), TierBachelor.Rank())
	assert.Less(t, TierBachelor.Rank(), TierMaster.Rank())
	assert.Less(t, TierMaster.Rank(), TierPhD.Rank())
	assert.Equal(t, TierNone.Rank(), EducationTier("diploma").Rank())
}

func TestRequirementExtract_NilMeansNotStated(t *testing.T) {
	jsonStr := `{
		"required_skills": ["Go"],
		"preferred_skills": [],
		"soft_skills": [],
		"min_experience_years": null,
		"min_education_tier": null,
		"acronym_map": {}
	}`

	var req RequirementExtract
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &req))
	assert.Nil(t, req.MinExperienceYears)
	assert.Nil(t, req.MinEducationTier)
	assert.Equal(t, []string{"Go"}, req.RequiredSkills)
}

func TestRequirementExtract_StatedMinimums(t *testing.T) {
	jsonStr := `{
		"required_skills": [],
		"preferred_skills": [],
		"soft_skills": [],
		"min_experience_years": 0,
		"min_education_tier": "master",
		"acronym_map": {"K8s": "Kubernetes"}
	}`

	var req RequirementExtract
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &req))
	require.NotNil(t, req.MinExperienceYears)
	assert.Equal(t, 0.0, *req.MinExperienceYears)
	require.NotNil(t, req.MinEducationTier)
	assert.Equal(t, TierMaster, *req.MinEducationTier)
	assert.Equal(t, "Kubernetes", req.AcronymMap["K8s"])
}

func TestCandidateExtract_AllSkills(t *testing.T) {
	candidate := CandidateExtract{
		HardSkills: []string{"Go", "PostgreSQL"},
		InferredSkills: []InferredSkill{
			{Skill: "Docker", Evidence: "Containerized deployment pipeline with Docker"},
		},
	}

	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, candidate.AllSkills())
}

func TestCandidateExtract_AllSkillsEmpty(t *testing.T) {
	candidate := CandidateExtract{}
	assert.Empty(t, candidate.AllSkills())
}
