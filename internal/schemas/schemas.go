// Package schemas validates the untyped extraction payloads against JSON
// Schemas before they are decoded into typed records.
package schemas

// DocumentStructureSchema describes the document converter's output.
const DocumentStructureSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "DocumentStructure",
  "type": "object",
  "required": ["file_type", "sections"],
  "properties": {
    "file_type": {"type": "string", "minLength": 1},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "body", "in_header_or_footer", "multi_column"],
        "properties": {
          "name": {"type": "string"},
          "body": {"type": "string"},
          "in_header_or_footer": {"type": "boolean"},
          "multi_column": {"type": "boolean"},
          "is_text_box": {"type": "boolean"},
          "bullet_glyphs": {"type": "array", "items": {"type": "string"}},
          "font_names": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// RequirementExtractSchema describes the text-understanding collaborator's
// job-description output. Nullable fields stay nullable: absent means "not
// applicable", never zero.
const RequirementExtractSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "RequirementExtract",
  "type": "object",
  "required": ["required_skills", "preferred_skills", "soft_skills", "acronym_map"],
  "properties": {
    "required_skills": {"type": "array", "items": {"type": "string"}},
    "preferred_skills": {"type": "array", "items": {"type": "string"}},
    "soft_skills": {"type": "array", "items": {"type": "string"}},
    "min_experience_years": {"type": ["number", "null"], "minimum": 0},
    "min_education_tier": {
      "type": ["string", "null"],
      "enum": ["none", "bachelor", "master", "phd", null]
    },
    "acronym_map": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "job_title": {"type": "string"},
    "company": {"type": "string"}
  }
}`

// CandidateExtractSchema describes the text-understanding collaborator's
// resume output.
const CandidateExtractSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CandidateExtract",
  "type": "object",
  "required": ["hard_skills", "inferred_skills", "soft_skills", "job_titles", "total_experience_years", "employment_periods"],
  "properties": {
    "hard_skills": {"type": "array", "items": {"type": "string"}},
    "inferred_skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "evidence"],
        "properties": {
          "skill": {"type": "string"},
          "evidence": {"type": "string"}
        }
      }
    },
    "soft_skills": {"type": "array", "items": {"type": "string"}},
    "job_titles": {"type": "array", "items": {"type": "string"}},
    "total_experience_years": {"type": "number", "minimum": 0},
    "employment_periods": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["start_date"],
        "properties": {
          "start_date": {"type": "string"},
          "end_date": {"type": ["string", "null"]}
        }
      }
    },
    "education_tier": {
      "type": ["string", "null"],
      "enum": ["none", "bachelor", "master", "phd", null]
    }
  }
}`
