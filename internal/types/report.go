package types

// Severity classifies how serious a finding is.
type Severity string

// Finding severities, ordered hard_block > warning > info.
const (
	SeverityHardBlock Severity = "hard_block"
	SeverityWarning   Severity = "warning"
	SeverityInfo      Severity = "info"
)

// severityRank orders severities for report sorting (lower sorts first)
var severityRank = map[Severity]int{
	SeverityHardBlock: 0,
	SeverityWarning:   1,
	SeverityInfo:      2,
}

// Rank returns the sort rank of the severity. Unknown severities sort last.
func (s Severity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return len(severityRank)
}

// Layer identifies which scoring layer produced a finding.
type Layer string

// Scoring layers.
const (
	LayerFormat    Layer = "format"
	LayerKeyword   Layer = "keyword"
	LayerIntegrity Layer = "integrity"
)

// layerRank orders layers for report sorting
var layerRank = map[Layer]int{
	LayerFormat:    0,
	LayerKeyword:   1,
	LayerIntegrity: 2,
}

// Rank returns the sort rank of the layer. Unknown layers sort last.
func (l Layer) Rank() int {
	if rank, ok := layerRank[l]; ok {
		return rank
	}
	return len(layerRank)
}

// Finding is one issue or observation discovered during a scoring run.
// Findings are append-only during a run and never mutated after creation.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Layer    Layer    `json:"layer"`
}

// LayerScores holds the three per-layer sub-scores.
// format ∈ [0,20], keyword ∈ [0,60], integrity ∈ [0,20].
type LayerScores struct {
	Format    int `json:"format"`
	Keyword   int `json:"keyword"`
	Integrity int `json:"integrity"`
}

// ScoreReport is the engine's output: an overall score out of 100, per-layer
// sub-scores, findings ordered by (layer, severity, insertion order), and the
// unmatched requirement sets. OverallScore is always the exact sum of the
// layer scores.
type ScoreReport struct {
	JobTitle         string      `json:"job_title,omitempty"`
	Company          string      `json:"company,omitempty"`
	OverallScore     int         `json:"overall_score"`
	Label            string      `json:"label"`
	LayerScores      LayerScores `json:"layer_scores"`
	MatchPct         float64     `json:"match_pct"`
	Findings         []Finding   `json:"findings"`
	MissingRequired  []string    `json:"missing_required"`
	MissingPreferred []string    `json:"missing_preferred"`
}
