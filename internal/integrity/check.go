package integrity

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/contact"
	"github.com/jonathan/ats-engine/internal/types"
)

// MaxScore is the Layer 3 point budget.
const MaxScore = 20

// Sub-score weights. Email + phone + dates + experience sum to MaxScore;
// employment gaps are informational and deduct from the dates sub-score
// instead of owning a bucket of their own.
const (
	emailPoints      = 5
	phonePoints      = 5
	datePoints       = 5
	experiencePoints = 5
)

// Result holds the Layer 3 outcome.
type Result struct {
	Score    int             `json:"score"`
	Findings []types.Finding `json:"findings"`
}

// Check runs the Layer 3 integrity checks. bodyText must be the resume text
// excluding header/footer sections: contact information placed there does
// not count. now closes open-ended employment periods; it is injected so
// scoring stays a pure function of its inputs.
func Check(bodyText string, candidate *types.CandidateExtract, requirement *types.RequirementExtract, cfg *config.Config, now time.Time) Result {
	findings := make([]types.Finding, 0)
	score := 0

	// Email presence.
	if contact.FindEmail(bodyText) != "" {
		score += emailPoints
	} else {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "contact_email",
			Message:  "no email address found in resume body",
			Layer:    types.LayerIntegrity,
		})
	}

	// Phone presence.
	if contact.FindPhone(bodyText, cfg.PhoneCountry) != "" {
		score += phonePoints
	} else {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "contact_phone",
			Message:  "no phone number found in resume body",
			Layer:    types.LayerIntegrity,
		})
	}

	// Date format validity, scaled by the fraction of valid periods, then
	// reduced by one point per flagged employment gap.
	dateScore, dateFindings := checkDates(candidate.EmploymentPeriods)
	findings = append(findings, dateFindings...)

	gapFindings := findGaps(candidate.EmploymentPeriods, cfg.GapThresholdMonths, now)
	findings = append(findings, gapFindings...)
	dateScore -= len(gapFindings)
	if dateScore < 0 {
		dateScore = 0
	}
	score += dateScore

	// Experience sufficiency. An absent requirement means "not applicable",
	// never a requirement of zero.
	expScore, expFindings := checkExperience(candidate.TotalExperienceYears, requirement.MinExperienceYears)
	findings = append(findings, expFindings...)
	score += expScore

	// Education tier comparison is advisory only.
	if finding := checkEducation(candidate.EducationTier, requirement.MinEducationTier); finding != nil {
		findings = append(findings, *finding)
	}

	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return Result{Score: score, Findings: findings}
}

// checkDates validates every employment-period date against the accepted
// canonical patterns. The sub-score scales linearly with the fraction of
// valid periods; no periods at all is valid and earns full credit.
func checkDates(periods []types.EmploymentPeriod) (int, []types.Finding) {
	if len(periods) == 0 {
		return datePoints, nil
	}

	findings := make([]types.Finding, 0)
	valid := 0
	for _, period := range periods {
		start := parseDateToken(period.StartDate)
		end := parseDateToken(period.EndDate)

		if start.canonical && end.canonical {
			valid++
			continue
		}

		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "date_format",
			Message:  fmt.Sprintf("fuzzy employment dates (%q - %q), use MM/YYYY or \"Month YYYY\"", period.StartDate, period.EndDate),
			Layer:    types.LayerIntegrity,
		})
	}

	score := int(math.Round(float64(datePoints) * float64(valid) / float64(len(periods))))
	return score, findings
}

// checkExperience compares candidate experience against the job's minimum.
func checkExperience(totalYears float64, minYears *float64) (int, []types.Finding) {
	if minYears == nil {
		return experiencePoints, nil
	}

	if totalYears >= *minYears {
		return experiencePoints, nil
	}

	return 0, []types.Finding{{
		Severity: types.SeverityWarning,
		Code:     "experience_years",
		Message:  fmt.Sprintf("%.1f years of experience but the role requires %.1f+", totalYears, *minYears),
		Layer:    types.LayerIntegrity,
	}}
}

// checkEducation emits an advisory when the candidate's education tier sits
// below the job's minimum. No points ride on it; relevant experience may
// compensate. Skipped when either side is unstated.
func checkEducation(candidateTier, minTier *types.EducationTier) *types.Finding {
	if candidateTier == nil || minTier == nil {
		return nil
	}
	if candidateTier.Rank() >= minTier.Rank() {
		return nil
	}
	return &types.Finding{
		Severity: types.SeverityInfo,
		Code:     "education",
		Message:  fmt.Sprintf("education tier %q below the role's minimum %q - relevant experience may compensate", string(*candidateTier), string(*minTier)),
		Layer:    types.LayerIntegrity,
	}
}
