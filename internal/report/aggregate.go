// Package report combines the three layer results into the final score report.
package report

import (
	"sort"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/formatting"
	"github.com/jonathan/ats-engine/internal/integrity"
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

// Metadata carries optional report header fields through aggregation.
type Metadata struct {
	JobTitle string
	Company  string
}

// Aggregate builds the final ScoreReport from the three layer results.
// The overall score is always the exact sum of the layer scores. Findings
// are ordered by layer, then severity (hard_block > warning > info), then
// insertion order within each layer.
func Aggregate(format formatting.Result, keyword keywords.Result, integ integrity.Result, cfg *config.Config, meta Metadata) *types.ScoreReport {
	findings := make([]types.Finding, 0, len(format.Findings)+len(keyword.Findings)+len(integ.Findings))
	findings = append(findings, format.Findings...)
	findings = append(findings, keyword.Findings...)
	findings = append(findings, integ.Findings...)

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Layer != findings[j].Layer {
			return findings[i].Layer.Rank() < findings[j].Layer.Rank()
		}
		return findings[i].Severity.Rank() < findings[j].Severity.Rank()
	})

	overall := format.Score + keyword.Score + integ.Score

	return &types.ScoreReport{
		JobTitle:     meta.JobTitle,
		Company:      meta.Company,
		OverallScore: overall,
		Label:        cfg.LabelFor(overall),
		LayerScores: types.LayerScores{
			Format:    format.Score,
			Keyword:   keyword.Score,
			Integrity: integ.Score,
		},
		MatchPct:         keyword.MatchPct,
		Findings:         findings,
		MissingRequired:  keyword.MissingRequired,
		MissingPreferred: keyword.MissingPreferred,
	}
}
