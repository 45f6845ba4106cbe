// Package formatting implements Layer 1 of the ATS analysis: structural and
// format checks over the parsed document structure, scored out of 20 points.
package formatting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/contact"
	"github.com/jonathan/ats-engine/internal/types"
)

// MaxScore is the Layer 1 point budget.
const MaxScore = 20

// Deductions per rule. All rules are evaluated independently and the total
// deduction is clamped so the score never goes below 0.
const (
	multiColumnPenalty      = 4
	textBoxPenalty          = 3
	missingSectionPenalty   = 3
	missingSectionCap       = 9
	contactPlacementPenalty = 3
	bulletStylePenalty      = 1
	fontDenylistPenalty     = 1
)

// canonicalSections are the section names ATS parsers expect to find.
var canonicalSections = []string{"experience", "education", "skills"}

// standardBullets are the bullet glyphs ATS parsers handle reliably.
var standardBullets = map[string]bool{"•": true, "-": true, "*": true}

// Result holds the Layer 1 outcome.
type Result struct {
	Score    int             `json:"score"`
	Findings []types.Finding `json:"findings"`
}

// Check runs all Layer 1 formatting rules against the document structure.
// A non-PDF/DOCX file type is a hard block: the layer scores 0 and no other
// rule is evaluated.
func Check(doc *types.DocumentStructure, cfg *config.Config) Result {
	findings := make([]types.Finding, 0)

	if !doc.FileType.IsATSCompatible() {
		findings = append(findings, types.Finding{
			Severity: types.SeverityHardBlock,
			Code:     "file_type",
			Message:  fmt.Sprintf("file type %q not accepted - only .pdf and .docx are ATS-compatible", string(doc.FileType)),
			Layer:    types.LayerFormat,
		})
		return Result{Score: 0, Findings: findings}
	}

	deduction := 0

	if hasMultiColumn(doc) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "layout",
			Message:  "multi-column layout detected - may cause text jumbling in ATS parsers",
			Layer:    types.LayerFormat,
		})
		deduction += multiColumnPenalty
	}

	if hasTextBox(doc) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "text_box",
			Message:  "text box or frame detected - content may be skipped by ATS parsers",
			Layer:    types.LayerFormat,
		})
		deduction += textBoxPenalty
	}

	sectionFindings, sectionDeduction := checkSections(doc, cfg)
	findings = append(findings, sectionFindings...)
	deduction += sectionDeduction

	if contactInHeaderOrFooter(doc, cfg.PhoneCountry) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "contact_placement",
			Message:  "contact information found in header or footer - move it to the resume body",
			Layer:    types.LayerFormat,
		})
		deduction += contactPlacementPenalty
	}

	if glyphs := nonStandardBullets(doc); len(glyphs) > 0 {
		findings = append(findings, types.Finding{
			Severity: types.SeverityInfo,
			Code:     "bullet_style",
			Message:  fmt.Sprintf("non-standard bullet characters found: %s - use \"•\", \"-\" or \"*\"", strings.Join(glyphs, ", ")),
			Layer:    types.LayerFormat,
		})
		deduction += bulletStylePenalty
	}

	if fonts := denylistedFonts(doc, cfg.FontDenylist); len(fonts) > 0 {
		findings = append(findings, types.Finding{
			Severity: types.SeverityInfo,
			Code:     "font",
			Message:  fmt.Sprintf("fonts known to corrupt ATS text extraction: %s", strings.Join(fonts, ", ")),
			Layer:    types.LayerFormat,
		})
		deduction += fontDenylistPenalty
	}

	score := MaxScore - deduction
	if score < 0 {
		score = 0
	}

	return Result{Score: score, Findings: findings}
}

// hasMultiColumn reports whether any section is flagged multi-column.
func hasMultiColumn(doc *types.DocumentStructure) bool {
	for _, section := range doc.Sections {
		if section.MultiColumn {
			return true
		}
	}
	return false
}

// hasTextBox reports whether the converter flagged any text-box sections.
func hasTextBox(doc *types.DocumentStructure) bool {
	for _, section := range doc.Sections {
		if section.IsTextBox {
			return true
		}
	}
	return false
}

// checkSections verifies the canonical section names are present. Synonyms
// only count when explicitly configured; by default "career history" and the
// like do not match "experience".
func checkSections(doc *types.DocumentStructure, cfg *config.Config) ([]types.Finding, int) {
	present := make(map[string]bool)
	for _, section := range doc.Sections {
		name := strings.ToLower(strings.TrimSpace(section.Name))
		if canonical, ok := cfg.SectionSynonyms[name]; ok {
			name = strings.ToLower(canonical)
		}
		present[name] = true
	}

	findings := make([]types.Finding, 0)
	deduction := 0
	for _, canonical := range canonicalSections {
		if present[canonical] {
			continue
		}
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Code:     "section_header",
			Message:  fmt.Sprintf("no %q section found - ATS parsers expect the standard section name", canonical),
			Layer:    types.LayerFormat,
		})
		deduction += missingSectionPenalty
	}

	if deduction > missingSectionCap {
		deduction = missingSectionCap
	}
	return findings, deduction
}

// contactInHeaderOrFooter reports whether an email or phone number appears
// inside a section the converter flagged as header or footer content.
func contactInHeaderOrFooter(doc *types.DocumentStructure, country string) bool {
	for _, section := range doc.Sections {
		if section.InHeaderOrFooter && contact.HasContactInfo(section.Body, country) {
			return true
		}
	}
	return false
}

// nonStandardBullets collects bullet glyphs outside the standard set, sorted
// for deterministic output.
func nonStandardBullets(doc *types.DocumentStructure) []string {
	seen := make(map[string]bool)
	for _, section := range doc.Sections {
		for _, glyph := range section.BulletGlyphs {
			if glyph != "" && !standardBullets[glyph] {
				seen[glyph] = true
			}
		}
	}

	glyphs := make([]string, 0, len(seen))
	for glyph := range seen {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)
	return glyphs
}

// denylistedFonts collects font names on the denylist (case-insensitive),
// sorted for deterministic output.
func denylistedFonts(doc *types.DocumentStructure, denylist []string) []string {
	denied := make(map[string]bool, len(denylist))
	for _, font := range denylist {
		denied[strings.ToLower(font)] = true
	}

	seen := make(map[string]bool)
	for _, section := range doc.Sections {
		for _, font := range section.FontNames {
			if denied[strings.ToLower(font)] {
				seen[font] = true
			}
		}
	}

	fonts := make([]string, 0, len(seen))
	for font := range seen {
		fonts = append(fonts, font)
	}
	sort.Strings(fonts)
	return fonts
}
