// Package server provides the HTTP REST API for the ATS scoring engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/schemas"
)

// ErrReportNotFound indicates the requested report does not exist.
type ErrReportNotFound struct {
	ReportID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ReportID)
}

// ErrBadRequest indicates a malformed request body or parameter.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// ErrPersistenceUnavailable indicates a persistence operation was requested
// but the server is running without a database.
type ErrPersistenceUnavailable struct{}

func (e *ErrPersistenceUnavailable) Error() string {
	return "persistence is not configured (DATABASE_URL not set)"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrReportNotFound
	var badRequest *ErrBadRequest
	var noPersistence *ErrPersistenceUnavailable
	var inputErr *engine.ValidationError
	var schemaErr *schemas.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest), errors.As(err, &inputErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &noPersistence):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
