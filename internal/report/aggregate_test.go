package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/formatting"
	"github.com/jonathan/ats-engine/internal/integrity"
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

func TestAggregate_OverallIsExactSum(t *testing.T) {
	cfg := config.DefaultConfig()

	report := Aggregate(
		formatting.Result{Score: 16},
		keywords.Result{Score: 40, MatchPct: 66.7},
		integrity.Result{Score: 18},
		&cfg,
		Metadata{},
	)

	assert.Equal(t, 74, report.OverallScore)
	assert.Equal(t, 16, report.LayerScores.Format)
	assert.Equal(t, 40, report.LayerScores.Keyword)
	assert.Equal(t, 18, report.LayerScores.Integrity)
	assert.Equal(t, "Good", report.Label)
	assert.Equal(t, 66.7, report.MatchPct)
}

func TestAggregate_FindingsOrderedByLayerThenSeverity(t *testing.T) {
	cfg := config.DefaultConfig()

	report := Aggregate(
		formatting.Result{Score: 0, Findings: []types.Finding{
			{Severity: types.SeverityInfo, Code: "bullet_style", Layer: types.LayerFormat},
			{Severity: types.SeverityHardBlock, Code: "file_type", Layer: types.LayerFormat},
		}},
		keywords.Result{Score: 0, Findings: []types.Finding{
			{Severity: types.SeverityInfo, Code: "missing_preferred", Layer: types.LayerKeyword},
			{Severity: types.SeverityWarning, Code: "missing_required", Layer: types.LayerKeyword},
		}},
		integrity.Result{Score: 0, Findings: []types.Finding{
			{Severity: types.SeverityWarning, Code: "contact_email", Layer: types.LayerIntegrity},
		}},
		&cfg,
		Metadata{},
	)

	require.Len(t, report.Findings, 5)
	codes := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		codes = append(codes, f.Code)
	}
	assert.Equal(t, []string{"file_type", "bullet_style", "missing_required", "missing_preferred", "contact_email"}, codes)
}

func TestAggregate_InsertionOrderStableWithinSeverity(t *testing.T) {
	cfg := config.DefaultConfig()

	report := Aggregate(
		formatting.Result{Score: 10, Findings: []types.Finding{
			{Severity: types.SeverityWarning, Code: "layout", Layer: types.LayerFormat},
			{Severity: types.SeverityWarning, Code: "text_box", Layer: types.LayerFormat},
			{Severity: types.SeverityWarning, Code: "section_header", Layer: types.LayerFormat},
		}},
		keywords.Result{Score: 60, MatchPct: 100},
		integrity.Result{Score: 20},
		&cfg,
		Metadata{},
	)

	require.Len(t, report.Findings, 3)
	assert.Equal(t, "layout", report.Findings[0].Code)
	assert.Equal(t, "text_box", report.Findings[1].Code)
	assert.Equal(t, "section_header", report.Findings[2].Code)
}

func TestAggregate_Metadata(t *testing.T) {
	cfg := config.DefaultConfig()

	report := Aggregate(
		formatting.Result{Score: 20},
		keywords.Result{Score: 60, MatchPct: 100},
		integrity.Result{Score: 20},
		&cfg,
		Metadata{JobTitle: "Backend Engineer", Company: "Acme"},
	)

	assert.Equal(t, "Backend Engineer", report.JobTitle)
	assert.Equal(t, "Acme", report.Company)
	assert.Equal(t, 100, report.OverallScore)
	assert.Equal(t, "Excellent", report.Label)
}

func TestRenderText(t *testing.T) {
	report := &types.ScoreReport{
		JobTitle:     "Backend Engineer",
		Company:      "Acme",
		OverallScore: 72,
		Label:        "Good",
		LayerScores:  types.LayerScores{Format: 16, Keyword: 40, Integrity: 16},
		MatchPct:     66.7,
		Findings: []types.Finding{
			{Severity: types.SeverityWarning, Code: "layout", Message: "multi-column layout detected", Layer: types.LayerFormat},
			{Severity: types.SeverityWarning, Code: "missing_required", Message: "required skills not found: Kafka", Layer: types.LayerKeyword},
		},
		MissingRequired: []string{"Kafka"},
	}

	text := RenderText(report)

	assert.Contains(t, text, "Acme Backend Engineer")
	assert.Contains(t, text, "Overall Score:  72 / 100   (Good)")
	assert.Contains(t, text, "16 / 20")
	assert.Contains(t, text, "40 / 60")
	assert.Contains(t, text, "Match: 66.7% of required skills found")
	assert.Contains(t, text, "Missing required: Kafka")
	assert.Contains(t, text, "[WARN]")
	assert.Contains(t, text, "multi-column layout detected")
	assert.Contains(t, text, "minor improvements possible")
}

func TestRenderText_NoMetadata(t *testing.T) {
	report := &types.ScoreReport{OverallScore: 30, Label: "Poor", MatchPct: 100}

	text := RenderText(report)
	assert.Contains(t, text, "ATS Report\n")
	assert.Contains(t, text, "significant changes needed")
}
