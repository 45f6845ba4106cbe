package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-engine/internal/formatting"
	"github.com/jonathan/ats-engine/internal/integrity"
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

const ruleWidth = 50

var severityMarkers = map[types.Severity]string{
	types.SeverityHardBlock: "[BLOCK]",
	types.SeverityWarning:   "[WARN] ",
	types.SeverityInfo:      "[INFO] ",
}

var layerTitles = map[types.Layer]string{
	types.LayerFormat:    "Layer 1 - Formatting",
	types.LayerKeyword:   "Layer 2 - Keywords",
	types.LayerIntegrity: "Layer 3 - Integrity",
}

// RenderText renders the score report as a human-readable report card.
func RenderText(r *types.ScoreReport) string {
	var lines []string

	header := "ATS Report"
	if r.Company != "" || r.JobTitle != "" {
		header = strings.TrimSpace(fmt.Sprintf("ATS Report - %s %s", r.Company, r.JobTitle))
	}
	lines = append(lines,
		header,
		strings.Repeat("=", ruleWidth),
		fmt.Sprintf("Overall Score:  %d / 100   (%s)", r.OverallScore, r.Label),
		"",
	)

	layerScores := map[types.Layer]string{
		types.LayerFormat:    fmt.Sprintf("%d / %d", r.LayerScores.Format, formatting.MaxScore),
		types.LayerKeyword:   fmt.Sprintf("%d / %d", r.LayerScores.Keyword, keywords.MaxScore),
		types.LayerIntegrity: fmt.Sprintf("%d / %d", r.LayerScores.Integrity, integrity.MaxScore),
	}

	for _, layer := range []types.Layer{types.LayerFormat, types.LayerKeyword, types.LayerIntegrity} {
		lines = append(lines, fmt.Sprintf("%s:  %s", layerTitles[layer], layerScores[layer]))
		if layer == types.LayerKeyword {
			lines = append(lines, fmt.Sprintf("  Match: %.1f%% of required skills found", r.MatchPct))
			if len(r.MissingRequired) > 0 {
				lines = append(lines, fmt.Sprintf("  Missing required: %s", strings.Join(r.MissingRequired, ", ")))
			}
			if len(r.MissingPreferred) > 0 {
				lines = append(lines, fmt.Sprintf("  Missing preferred: %s", strings.Join(r.MissingPreferred, ", ")))
			}
		}
		for _, finding := range r.Findings {
			if finding.Layer != layer {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s %s", severityMarkers[finding.Severity], finding.Message))
		}
		lines = append(lines, "")
	}

	lines = append(lines, recommendation(r.OverallScore), strings.Repeat("=", ruleWidth))
	return strings.Join(lines, "\n") + "\n"
}

// recommendation returns the closing advice line for a given overall score.
func recommendation(score int) string {
	switch {
	case score >= 85:
		return "Recommendation: resume is well-optimised for this role."
	case score >= 70:
		return "Recommendation: minor improvements possible before applying."
	case score >= 50:
		return "Recommendation: address the findings above before applying."
	default:
		return "Recommendation: significant changes needed before applying."
	}
}
