package keywords

import (
	"math"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// Placement weights: where a matched skill appears determines how much
// contextual credit it earns.
const (
	placementTitleWeight      = 5
	placementExperienceWeight = 3
	placementSkillsWeight     = 1

	maxPlacementBonus = 6
)

// placementWeight returns the contextual weight for one matched skill:
// job-title context beats experience-bullet context beats skills-list-only.
// A skill matched purely through acronym equivalence with no textual
// occurrence earns no placement credit.
func placementWeight(skill string, candidate *types.CandidateExtract, resumeText string) int {
	normalized := normalizeSkill(skill)
	if normalized == "" {
		return 0
	}

	for _, title := range candidate.JobTitles {
		if strings.Contains(strings.ToLower(title), normalized) {
			return placementTitleWeight
		}
	}

	for _, inferred := range candidate.InferredSkills {
		if strings.Contains(strings.ToLower(inferred.Evidence), normalized) {
			return placementExperienceWeight
		}
	}
	if inBulletLine(normalized, resumeText) {
		return placementExperienceWeight
	}

	for _, hard := range candidate.HardSkills {
		if normalizeSkill(hard) == normalized {
			return placementSkillsWeight
		}
	}
	if strings.Contains(strings.ToLower(resumeText), normalized) {
		return placementSkillsWeight
	}

	return 0
}

// inBulletLine reports whether the skill occurs on a resume line that starts
// with a standard bullet glyph.
func inBulletLine(normalizedSkill, resumeText string) bool {
	for _, line := range strings.Split(resumeText, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "•") && !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), normalizedSkill) {
			return true
		}
	}
	return false
}

// placementBonus sums placement weights across matched requirement skills,
// normalizes by the maximum possible weight (title context for every
// requirement), and scales into at most maxPlacementBonus points.
func placementBonus(matched []string, totalRequired int, candidate *types.CandidateExtract, resumeText string) int {
	if totalRequired == 0 || len(matched) == 0 {
		return 0
	}

	sum := 0
	for _, skill := range matched {
		sum += placementWeight(skill, candidate, resumeText)
	}

	scaled := float64(maxPlacementBonus) * float64(sum) / float64(placementTitleWeight*totalRequired)
	bonus := int(math.Round(scaled))
	if bonus > maxPlacementBonus {
		bonus = maxPlacementBonus
	}
	return bonus
}
