// Package types provides type definitions for structured data used throughout the ATS engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// FileType identifies the declared format of the parsed document.
type FileType string

// Supported and unsupported file types. Anything other than PDF or DOCX is a
// hard block in the format layer.
const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
)

// IsATSCompatible reports whether the file type is one real ATS parsers accept.
func (ft FileType) IsATSCompatible() bool {
	return ft == FileTypePDF || ft == FileTypeDOCX
}

// Section represents one parsed section of a resume document, as produced by
// the external document converter.
type Section struct {
	Name             string   `json:"name"`
	Body             string   `json:"body"`
	InHeaderOrFooter bool     `json:"in_header_or_footer"`
	MultiColumn      bool     `json:"multi_column"`
	IsTextBox        bool     `json:"is_text_box,omitempty"`
	BulletGlyphs     []string `json:"bullet_glyphs,omitempty"`
	FontNames        []string `json:"font_names,omitempty"`
}

// DocumentStructure is the layout representation of one parsed resume.
// It is produced once per document by the external converter and treated as
// read-only by the engine.
type DocumentStructure struct {
	FileType FileType  `json:"file_type"`
	Sections []Section `json:"sections"`
}

// FullText concatenates the body text of all sections in document order.
func (d *DocumentStructure) FullText() string {
	var sb strings.Builder
	for _, section := range d.Sections {
		sb.WriteString(section.Body)
		sb.WriteString("\n")
	}
	return sb.String()
}

// BodyText concatenates the body text of sections that are not flagged as
// header or footer content.
func (d *DocumentStructure) BodyText() string {
	var sb strings.Builder
	for _, section := range d.Sections {
		if section.InHeaderOrFooter {
			continue
		}
		sb.WriteString(section.Body)
		sb.WriteString("\n")
	}
	return sb.String()
}
