package types

// EducationTier represents a ranked education level. Order matters:
// none < bachelor < master < phd.
type EducationTier string

// Known education tiers.
const (
	TierNone     EducationTier = "none"
	TierBachelor EducationTier = "bachelor"
	TierMaster   EducationTier = "master"
	TierPhD      EducationTier = "phd"
)

// tierRank maps education tiers to numeric ranks for comparison
var tierRank = map[EducationTier]int{
	TierNone:     0,
	TierBachelor: 1,
	TierMaster:   2,
	TierPhD:      3,
}

// Rank returns the numeric rank of the tier. Unknown tiers rank as none.
func (t EducationTier) Rank() int {
	return tierRank[t]
}

// RequirementExtract is the structured representation of a job description's
// requirements, produced by the external text-understanding collaborator.
// Nil pointer fields mean "not stated in the job description" and must never
// be interpreted as zero.
type RequirementExtract struct {
	RequiredSkills     []string          `json:"required_skills"`
	PreferredSkills    []string          `json:"preferred_skills"`
	SoftSkills         []string          `json:"soft_skills"`
	MinExperienceYears *float64          `json:"min_experience_years"`
	MinEducationTier   *EducationTier    `json:"min_education_tier"`
	AcronymMap         map[string]string `json:"acronym_map"`
	JobTitle           string            `json:"job_title,omitempty"`
	Company            string            `json:"company,omitempty"`
}

// InferredSkill is a skill demonstrated in resume bullet text but not listed
// explicitly, together with the supporting evidence text.
type InferredSkill struct {
	Skill    string `json:"skill"`
	Evidence string `json:"evidence"`
}

// EmploymentPeriod is one job held by the candidate. Dates are the raw
// strings produced by the extraction collaborator (e.g. "01/2021",
// "January 2021", "present"). An empty or "present" end date means the
// position is current.
type EmploymentPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CandidateExtract is the structured representation of a resume's content,
// produced by the external text-understanding collaborator.
type CandidateExtract struct {
	HardSkills           []string           `json:"hard_skills"`
	InferredSkills       []InferredSkill    `json:"inferred_skills"`
	SoftSkills           []string           `json:"soft_skills"`
	JobTitles            []string           `json:"job_titles"`
	TotalExperienceYears float64            `json:"total_experience_years"`
	EmploymentPeriods    []EmploymentPeriod `json:"employment_periods"`
	EducationTier        *EducationTier     `json:"education_tier"`
}

// AllSkills returns every skill the candidate holds, explicit and inferred.
func (c *CandidateExtract) AllSkills() []string {
	skills := make([]string, 0, len(c.HardSkills)+len(c.InferredSkills))
	skills = append(skills, c.HardSkills...)
	for _, inferred := range c.InferredSkills {
		skills = append(skills, inferred.Skill)
	}
	return skills
}
