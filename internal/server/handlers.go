package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
)

// writeJSON writes a JSON response with the given status code.
//
//nolint:errcheck // response writing errors are not recoverable
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes an error response in a consistent shape.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

// handleHealth responds to health checks.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScore validates the request payloads, runs one scoring run, and
// optionally persists the resulting report.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("invalid JSON body: %v", err)})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrBadRequest{Message: err.Error()})
		return
	}

	// Schema-validate the untyped payloads before decoding them.
	if err := schemas.ValidateDocumentStructure(string(req.Document)); err != nil {
		writeError(w, err)
		return
	}
	if err := schemas.ValidateRequirementExtract(string(req.Requirement)); err != nil {
		writeError(w, err)
		return
	}
	if err := schemas.ValidateCandidateExtract(string(req.Candidate)); err != nil {
		writeError(w, err)
		return
	}

	var doc types.DocumentStructure
	var requirement types.RequirementExtract
	var candidate types.CandidateExtract
	if err := json.Unmarshal(req.Document, &doc); err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("failed to decode document: %v", err)})
		return
	}
	if err := json.Unmarshal(req.Requirement, &requirement); err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("failed to decode requirement extract: %v", err)})
		return
	}
	if err := json.Unmarshal(req.Candidate, &candidate); err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("failed to decode candidate extract: %v", err)})
		return
	}

	if req.Persist && s.db == nil {
		writeError(w, &ErrPersistenceUnavailable{})
		return
	}

	jobTitle := req.JobTitle
	if jobTitle == "" {
		jobTitle = requirement.JobTitle
	}
	company := req.Company
	if company == "" {
		company = requirement.Company
	}

	report, err := engine.Score(r.Context(), engine.Inputs{
		Document:    &doc,
		Requirement: &requirement,
		Candidate:   &candidate,
		ResumeText:  req.ResumeText,
	}, engine.Options{
		Config:   s.engineConfig,
		JobTitle: jobTitle,
		Company:  company,
		Now:      time.Now(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	response := map[string]any{"report": report}
	if req.Persist {
		id, err := s.db.SaveReport(r.Context(), report)
		if err != nil {
			writeError(w, err)
			return
		}
		response["id"] = id
	}

	writeJSON(w, http.StatusOK, response)
}

// handleGetReport loads one stored report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, &ErrPersistenceUnavailable{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("invalid report ID: %v", err)})
		return
	}

	row, err := s.db.GetReport(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if row == nil {
		writeError(w, &ErrReportNotFound{ReportID: id})
		return
	}

	writeJSON(w, http.StatusOK, row)
}

// handleListReports lists stored report summaries, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, &ErrPersistenceUnavailable{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, &ErrBadRequest{Message: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	summaries, err := s.db.ListReports(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": summaries})
}

// handleDeleteReport removes one stored report.
func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, &ErrPersistenceUnavailable{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrBadRequest{Message: fmt.Sprintf("invalid report ID: %v", err)})
		return
	}

	deleted, err := s.db.DeleteReport(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, &ErrReportNotFound{ReportID: id})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
