// Package keywords implements Layer 2 of the ATS analysis: matching job
// requirements against candidate skills, scored out of 60 points.
package keywords

import (
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// normalizeSkill canonicalizes a skill name for comparison.
func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// candidateSkillSet builds the set of skills the candidate can be credited
// with: explicit hard skills, inferred skills, and the acronym-equivalent
// form of anything the candidate actually holds.
func candidateSkillSet(candidate *types.CandidateExtract, acronymMap map[string]string) map[string]bool {
	raw := make(map[string]bool)
	for _, skill := range candidate.HardSkills {
		if normalized := normalizeSkill(skill); normalized != "" {
			raw[normalized] = true
		}
	}
	for _, inferred := range candidate.InferredSkills {
		if normalized := normalizeSkill(inferred.Skill); normalized != "" {
			raw[normalized] = true
		}
	}

	// Acronym equivalence: holding either form of a pair credits the other.
	// Each pair is checked against the skills the candidate actually holds,
	// never against forms credited by another pair, so equivalence is one
	// hop and independent of map iteration order.
	set := make(map[string]bool, len(raw))
	for skill := range raw {
		set[skill] = true
	}
	for abbrev, expansion := range acronymMap {
		abbrevNorm := normalizeSkill(abbrev)
		expansionNorm := normalizeSkill(expansion)
		if raw[abbrevNorm] {
			set[expansionNorm] = true
		}
		if raw[expansionNorm] {
			set[abbrevNorm] = true
		}
	}

	return set
}

// matchSkills partitions requirement skills into matched and missing,
// preserving the input order of the requirement list. Duplicate requirement
// entries (after normalization) are counted once.
func matchSkills(required []string, candidateSet map[string]bool) (matched, missing []string) {
	matched = make([]string, 0, len(required))
	missing = make([]string, 0)
	seen := make(map[string]bool, len(required))

	for _, skill := range required {
		normalized := normalizeSkill(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		if candidateSet[normalized] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}
