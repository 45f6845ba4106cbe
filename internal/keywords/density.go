package keywords

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

// densityFindings flags matched skills whose occurrence density in the
// resume text exceeds maxDensity. Advisory only: stuffing never deducts
// points, it just warns.
func densityFindings(matched []string, resumeText string, maxDensity float64) []types.Finding {
	words := strings.Fields(strings.ToLower(resumeText))
	totalWords := len(words)
	if totalWords == 0 {
		return nil
	}

	wordCounts := make(map[string]int, totalWords)
	for _, word := range words {
		wordCounts[word]++
	}

	textLower := strings.ToLower(resumeText)
	findings := make([]types.Finding, 0)

	for _, skill := range matched {
		normalized := normalizeSkill(skill)
		if normalized == "" {
			continue
		}

		// Multi-word skills need substring counting; single words match
		// whole tokens only.
		var count int
		if strings.Contains(normalized, " ") {
			count = strings.Count(textLower, normalized)
		} else {
			count = wordCounts[normalized]
		}
		if count == 0 {
			continue
		}

		density := float64(count) / float64(totalWords)
		if density > maxDensity {
			findings = append(findings, types.Finding{
				Severity: types.SeverityWarning,
				Code:     "keyword_density",
				Message:  fmt.Sprintf("%q repeated excessively (%d times, %.1f%% of resume text)", skill, count, density*100),
				Layer:    types.LayerKeyword,
			})
		}
	}

	return findings
}
