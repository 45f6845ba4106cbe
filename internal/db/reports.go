package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/ats-engine/internal/types"
)

// ReportRow is a stored score report with its persistence metadata.
type ReportRow struct {
	ID           uuid.UUID          `json:"id"`
	JobTitle     string             `json:"job_title"`
	Company      string             `json:"company"`
	OverallScore int                `json:"overall_score"`
	Report       *types.ScoreReport `json:"report"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ReportSummary is the listing view of a stored report, without the payload.
type ReportSummary struct {
	ID           uuid.UUID `json:"id"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	OverallScore int       `json:"overall_score"`
	Label        string    `json:"label"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaveReport stores a score report and returns its ID.
func (db *DB) SaveReport(ctx context.Context, report *types.ScoreReport) (uuid.UUID, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO score_reports (job_title, company, overall_score, label, report)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		report.JobTitle, report.Company, report.OverallScore, report.Label, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// GetReport loads a stored report by ID. Returns nil if no row exists.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*ReportRow, error) {
	row := ReportRow{ID: id}
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT job_title, company, overall_score, report, created_at
		 FROM score_reports WHERE id = $1`,
		id,
	).Scan(&row.JobTitle, &row.Company, &row.OverallScore, &payload, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}

	var report types.ScoreReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	row.Report = &report
	return &row, nil
}

// ListReports returns stored report summaries, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, company, overall_score, label, created_at
		 FROM score_reports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]ReportSummary, 0)
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.JobTitle, &s.Company, &s.OverallScore, &s.Label, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}
	return summaries, nil
}

// DeleteReport removes a stored report. Returns true if a row was deleted.
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM score_reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
