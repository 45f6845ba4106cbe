package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/types"
)

func newConfig() config.Config {
	return config.DefaultConfig()
}

func cleanDocument() *types.DocumentStructure {
	return &types.DocumentStructure{
		FileType: types.FileTypePDF,
		Sections: []types.Section{
			{Name: "Experience", Body: "• Built Go services at Acme", BulletGlyphs: []string{"•"}},
			{Name: "Education", Body: "B.Tech, Computer Science"},
			{Name: "Skills", Body: "Go, PostgreSQL, Docker"},
		},
	}
}

func TestCheck_CleanDocumentFullScore(t *testing.T) {
	cfg := newConfig()
	result := Check(cleanDocument(), &cfg)

	assert.Equal(t, MaxScore, result.Score)
	assert.Empty(t, result.Findings)
}

func TestCheck_UnsupportedFileTypeHardBlock(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.FileType = "txt"
	doc.Sections[0].MultiColumn = true // must not produce a second finding

	result := Check(doc, &cfg)

	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.SeverityHardBlock, result.Findings[0].Severity)
	assert.Equal(t, "file_type", result.Findings[0].Code)
	assert.Equal(t, types.LayerFormat, result.Findings[0].Layer)
}

func TestCheck_MultiColumnDeduction(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[0].MultiColumn = true

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-4, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "layout", result.Findings[0].Code)
	assert.Equal(t, types.SeverityWarning, result.Findings[0].Severity)
}

func TestCheck_TextBoxDeduction(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[2].IsTextBox = true

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-3, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "text_box", result.Findings[0].Code)
}

func TestCheck_MissingSectionsCapped(t *testing.T) {
	cfg := newConfig()
	doc := &types.DocumentStructure{
		FileType: types.FileTypePDF,
		Sections: []types.Section{{Name: "Summary", Body: "Engineer"}},
	}

	result := Check(doc, &cfg)

	// Three missing sections: deduction caps at 9, one finding each.
	assert.Equal(t, MaxScore-9, result.Score)
	assert.Len(t, result.Findings, 3)
	for _, f := range result.Findings {
		assert.Equal(t, "section_header", f.Code)
	}
}

func TestCheck_SynonymsOnlyCountWhenConfigured(t *testing.T) {
	doc := cleanDocument()
	doc.Sections[0].Name = "Career History"

	cfg := newConfig()
	result := Check(doc, &cfg)
	assert.Equal(t, MaxScore-3, result.Score)

	cfg.SectionSynonyms = map[string]string{"career history": "experience"}
	result = Check(doc, &cfg)
	assert.Equal(t, MaxScore, result.Score)
	assert.Empty(t, result.Findings)
}

func TestCheck_ContactInHeaderDeduction(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections = append(doc.Sections, types.Section{
		Name:             "header",
		Body:             "jane@example.com | +91 98765 43210",
		InHeaderOrFooter: true,
	})

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-3, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "contact_placement", result.Findings[0].Code)
}

func TestCheck_ContactInBodyNoDeduction(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[0].Body += "\njane@example.com"

	result := Check(doc, &cfg)
	assert.Equal(t, MaxScore, result.Score)
}

func TestCheck_NonStandardBullets(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[0].BulletGlyphs = []string{"➤", "•", "★"}

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-1, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "bullet_style", result.Findings[0].Code)
	assert.Equal(t, types.SeverityInfo, result.Findings[0].Severity)
	assert.Contains(t, result.Findings[0].Message, "➤")
	assert.Contains(t, result.Findings[0].Message, "★")
}

func TestCheck_DenylistedFonts(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[1].FontNames = []string{"Calibri", "wingdings"}

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-1, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "font", result.Findings[0].Code)
	assert.Contains(t, result.Findings[0].Message, "wingdings")
}

func TestCheck_DeductionsAreAdditive(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[0].MultiColumn = true
	doc.Sections[1].IsTextBox = true

	result := Check(doc, &cfg)

	assert.Equal(t, MaxScore-4-3, result.Score)
	assert.Len(t, result.Findings, 2)
}

func TestCheck_ScoreNeverNegative(t *testing.T) {
	cfg := newConfig()
	doc := &types.DocumentStructure{
		FileType: types.FileTypeDOCX,
		Sections: []types.Section{
			{
				Name:             "header",
				Body:             "jane@example.com",
				InHeaderOrFooter: true,
				MultiColumn:      true,
				IsTextBox:        true,
				BulletGlyphs:     []string{"➤"},
				FontNames:        []string{"Wingdings"},
			},
		},
	}

	// 4 + 3 + 9 + 3 + 1 + 1 = 21 > 20: clamp to 0.
	result := Check(doc, &cfg)
	assert.Equal(t, 0, result.Score)
}

func TestCheck_MultiColumnWithAllSections(t *testing.T) {
	cfg := newConfig()
	doc := cleanDocument()
	doc.Sections[2].MultiColumn = true

	result := Check(doc, &cfg)

	assert.Equal(t, 16, result.Score)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.SeverityWarning, result.Findings[0].Severity)
}
