package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/formatting"
	"github.com/jonathan/ats-engine/internal/integrity"
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/report"
	"github.com/jonathan/ats-engine/internal/types"
)

// Inputs are the three immutable inputs of one scoring run. The engine never
// mutates them; callers must not mutate them while the run is in progress.
type Inputs struct {
	Document    *types.DocumentStructure
	Requirement *types.RequirementExtract
	Candidate   *types.CandidateExtract

	// ResumeText is the raw resume text used for density and placement
	// analysis. When empty, the document's full text is used.
	ResumeText string
}

// Options tune one scoring run.
type Options struct {
	// Config holds the scoring knobs; nil means defaults.
	Config *config.Config

	// JobTitle and Company annotate the report header.
	JobTitle string
	Company  string

	// Now closes open-ended employment periods. The zero value is replaced
	// with time.Now() once at entry, keeping the run itself deterministic.
	Now time.Time
}

// Score runs the three layer scorers over the inputs and aggregates the
// final report. The scorers are pure functions over immutable inputs and run
// concurrently; aggregation joins them.
func Score(ctx context.Context, in Inputs, opts Options) (*types.ScoreReport, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if opts.Config != nil {
		cfg = opts.Config.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	resumeText := in.ResumeText
	if resumeText == "" {
		resumeText = in.Document.FullText()
	}
	bodyText := in.Document.BodyText()
	if bodyText == "" && in.ResumeText != "" {
		bodyText = in.ResumeText
	}

	var (
		formatResult    formatting.Result
		keywordResult   keywords.Result
		integrityResult integrity.Result
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		formatResult = formatting.Check(in.Document, &cfg)
		return nil
	})
	g.Go(func() error {
		keywordResult = keywords.Score(in.Requirement, in.Candidate, resumeText, &cfg)
		return nil
	})
	g.Go(func() error {
		integrityResult = integrity.Check(bodyText, in.Candidate, in.Requirement, &cfg, now)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report.Aggregate(formatResult, keywordResult, integrityResult, &cfg, report.Metadata{
		JobTitle: opts.JobTitle,
		Company:  opts.Company,
	}), nil
}

// validate fails fast on structurally required fields. Empty-but-valid
// inputs (zero skills, zero periods, empty text) pass; absent structures and
// an absent file type do not.
func validate(in Inputs) error {
	if in.Document == nil {
		return &ValidationError{Field: "document", Message: "document structure is required"}
	}
	if in.Document.FileType == "" {
		return &ValidationError{Field: "document.file_type", Message: "file type is required"}
	}
	if in.Requirement == nil {
		return &ValidationError{Field: "requirement_extract", Message: "requirement extract is required"}
	}
	if in.Candidate == nil {
		return &ValidationError{Field: "candidate_extract", Message: "candidate extract is required"}
	}
	return nil
}
