// Package config provides configuration loading and validation for the ATS engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LabelThreshold maps a minimum overall score to a qualitative label.
type LabelThreshold struct {
	MinScore int    `json:"min_score"`
	Label    string `json:"label"`
}

// Config holds the tunable knobs of the scoring engine. All fields are
// optional; zero values are filled from defaults via MergeWithDefaults.
type Config struct {
	// KeywordDensityMax is the occurrence/word-count ratio above which a
	// matched skill is flagged as keyword stuffing (default 0.05). Zero
	// means "use the default", not "flag everything".
	KeywordDensityMax float64 `json:"keyword_density_max,omitempty"`

	// GapThresholdMonths flags employment gaps of at least this many months
	// (default 6). Zero means "use the default", not "flag every gap".
	GapThresholdMonths int `json:"gap_threshold_months,omitempty"`

	// SectionSynonyms maps additional accepted section names to the
	// canonical names {experience, education, skills}. Empty by default:
	// only the canonical names themselves count.
	SectionSynonyms map[string]string `json:"section_synonyms,omitempty"`

	// FontDenylist lists font names known to corrupt ATS text extraction.
	FontDenylist []string `json:"font_denylist,omitempty"`

	// PhoneCountry selects the domestic phone number pattern (default "IN").
	PhoneCountry string `json:"phone_country,omitempty"`

	// LabelThresholds assigns the qualitative report label. Entries are
	// evaluated highest MinScore first.
	LabelThresholds []LabelThreshold `json:"label_thresholds,omitempty"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		KeywordDensityMax:  0.05,
		GapThresholdMonths: 6,
		SectionSynonyms:    map[string]string{},
		FontDenylist:       []string{"Wingdings", "Webdings", "Symbol", "Zapf Dingbats", "Marlett"},
		PhoneCountry:       "IN",
		LabelThresholds: []LabelThreshold{
			{MinScore: 85, Label: "Excellent"},
			{MinScore: 70, Label: "Good"},
			{MinScore: 50, Label: "Needs Improvement"},
			{MinScore: 0, Label: "Poor"},
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.KeywordDensityMax < 0 || c.KeywordDensityMax > 1 {
		return fmt.Errorf("config error: 'keyword_density_max' must be in [0,1]")
	}
	if c.GapThresholdMonths < 0 {
		return fmt.Errorf("config error: 'gap_threshold_months' must be non-negative")
	}
	for _, lt := range c.LabelThresholds {
		if lt.Label == "" {
			return fmt.Errorf("config error: 'label_thresholds' entry with min_score %d has empty label", lt.MinScore)
		}
		if lt.MinScore < 0 || lt.MinScore > 100 {
			return fmt.Errorf("config error: 'label_thresholds' min_score %d out of range [0,100]", lt.MinScore)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.KeywordDensityMax == 0 {
		result.KeywordDensityMax = defaults.KeywordDensityMax
	}
	if result.GapThresholdMonths == 0 {
		result.GapThresholdMonths = defaults.GapThresholdMonths
	}
	if result.SectionSynonyms == nil {
		result.SectionSynonyms = defaults.SectionSynonyms
	}
	if result.FontDenylist == nil {
		result.FontDenylist = defaults.FontDenylist
	}
	if result.PhoneCountry == "" {
		result.PhoneCountry = defaults.PhoneCountry
	}
	if len(result.LabelThresholds) == 0 {
		result.LabelThresholds = defaults.LabelThresholds
	}

	return result
}

// LabelFor returns the qualitative label for an overall score.
func (c *Config) LabelFor(score int) string {
	thresholds := make([]LabelThreshold, len(c.LabelThresholds))
	copy(thresholds, c.LabelThresholds)
	sort.Slice(thresholds, func(i, j int) bool {
		return thresholds[i].MinScore > thresholds[j].MinScore
	})

	for _, lt := range thresholds {
		if score >= lt.MinScore {
			return lt.Label
		}
	}
	return "Poor"
}
