package keywords

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/types"
)

// MaxScore is the Layer 2 point budget.
const MaxScore = 60

// Result holds the Layer 2 outcome.
type Result struct {
	Score            int             `json:"score"`
	MatchPct         float64         `json:"match_pct"`
	MissingRequired  []string        `json:"missing_required"`
	MissingPreferred []string        `json:"missing_preferred"`
	Findings         []types.Finding `json:"findings"`
}

// Score matches the requirement extract against the candidate extract and
// returns the Layer 2 score. A requirement is matched when it equals a
// candidate hard skill, an inferred skill, or the acronym-equivalent form of
// either. With no required skills the match percentage is defined as 100.
func Score(requirement *types.RequirementExtract, candidate *types.CandidateExtract, resumeText string, cfg *config.Config) Result {
	candidateSet := candidateSkillSet(candidate, requirement.AcronymMap)

	matchedRequired, missingRequired := matchSkills(requirement.RequiredSkills, candidateSet)
	_, missingPreferred := matchSkills(requirement.PreferredSkills, candidateSet)

	totalRequired := len(matchedRequired) + len(missingRequired)
	matchPct := 100.0
	if totalRequired > 0 {
		matchPct = float64(len(matchedRequired)) / float64(totalRequired) * 100
	}

	base := int(math.Round(float64(MaxScore) * matchPct / 100))
	if base > MaxScore {
		base = MaxScore
	}

	bonus := placementBonus(matchedRequired, totalRequired, candidate, resumeText)

	score := base + bonus
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}

	findings := make([]types.Finding, 0)
	if len(missingRequired) > 0 {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "missing_required",
			Message:  fmt.Sprintf("required skills not found: %s", strings.Join(missingRequired, ", ")),
			Layer:    types.LayerKeyword,
		})
	}
	if len(missingPreferred) > 0 {
		findings = append(findings, types.Finding{
			Severity: types.SeverityInfo,
			Code:     "missing_preferred",
			Message:  fmt.Sprintf("preferred skills not found: %s", strings.Join(missingPreferred, ", ")),
			Layer:    types.LayerKeyword,
		})
	}

	findings = append(findings, densityFindings(matchedRequired, resumeText, cfg.KeywordDensityMax)...)
	findings = append(findings, acronymFindings(requirement.AcronymMap, candidate)...)

	return Result{
		Score:            score,
		MatchPct:         matchPct,
		MissingRequired:  missingRequired,
		MissingPreferred: missingPreferred,
		Findings:         findings,
	}
}

// acronymFindings recommends including both forms of an acronym when the
// candidate's skills carry exactly one of them. Pairs are visited in sorted
// abbreviation order so output is deterministic.
func acronymFindings(acronymMap map[string]string, candidate *types.CandidateExtract) []types.Finding {
	if len(acronymMap) == 0 {
		return nil
	}

	// Raw candidate skills, before acronym expansion.
	raw := make(map[string]bool)
	for _, skill := range candidate.AllSkills() {
		if normalized := normalizeSkill(skill); normalized != "" {
			raw[normalized] = true
		}
	}

	abbrevs := make([]string, 0, len(acronymMap))
	for abbrev := range acronymMap {
		abbrevs = append(abbrevs, abbrev)
	}
	sort.Strings(abbrevs)

	findings := make([]types.Finding, 0)
	for _, abbrev := range abbrevs {
		expansion := acronymMap[abbrev]
		hasAbbrev := raw[normalizeSkill(abbrev)]
		hasExpansion := raw[normalizeSkill(expansion)]

		switch {
		case hasAbbrev && !hasExpansion:
			findings = append(findings, types.Finding{
				Severity: types.SeverityInfo,
				Code:     "acronym",
				Message:  fmt.Sprintf("%q found but not %q - include both forms so any ATS keyword filter matches", abbrev, expansion),
				Layer:    types.LayerKeyword,
			})
		case hasExpansion && !hasAbbrev:
			findings = append(findings, types.Finding{
				Severity: types.SeverityInfo,
				Code:     "acronym",
				Message:  fmt.Sprintf("%q found but not %q - include both forms so any ATS keyword filter matches", expansion, abbrev),
				Layer:    types.LayerKeyword,
			})
		}
	}
	return findings
}
