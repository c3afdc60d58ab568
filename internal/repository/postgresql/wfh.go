package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
)

type wfhRepository struct {
	db *database.DB
}

func NewWFHRepository(db *database.DB) wfh.WFHRepository {
	return &wfhRepository{db: db}
}

const wfhColumns = `
	id, employee_id, company_id, to_char(date, 'YYYY-MM-DD'),
	status, stage, req_time, created_at, updated_at
`

func scanRequest(row pgx.Row) (wfh.Request, error) {
	var req wfh.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.CompanyID, &req.Date,
		&req.Status, &req.Stage, &req.ReqTime, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements wfh.WFHRepository.
func (r *wfhRepository) Create(ctx context.Context, req wfh.Request) (wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_requests (
			id, employee_id, company_id, date, status, stage, req_time
		) VALUES (
			$1, $2, $3, $4::date, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.CompanyID,
		req.Date,
		req.Status,
		req.Stage,
		req.ReqTime,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return wfh.Request{}, wfh.ErrDuplicateRequest
		}
		return wfh.Request{}, fmt.Errorf("failed to create wfh request: %w", database.ClassifyError(err))
	}

	return req, nil
}

// ExistsForDate implements wfh.WFHRepository.
func (r *wfhRepository) ExistsForDate(ctx context.Context, employeeID string, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM wfh_requests
			WHERE employee_id = $1 AND date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for existing wfh request: %w", database.ClassifyError(err))
	}

	return exists, nil
}

// ListPendingByCompany implements wfh.WFHRepository.
func (r *wfhRepository) ListPendingByCompany(ctx context.Context, companyID string) ([]wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhColumns + `
		FROM wfh_requests
		WHERE company_id = $1
		  AND status = $2
		ORDER BY req_time ASC
	`

	return r.queryRequests(ctx, q, query, companyID, wfh.StatusPending)
}

// ListByEmployee implements wfh.WFHRepository.
func (r *wfhRepository) ListByEmployee(ctx context.Context, employeeID string) ([]wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + wfhColumns + `
		FROM wfh_requests
		WHERE employee_id = $1
		ORDER BY req_time DESC
	`

	return r.queryRequests(ctx, q, query, employeeID)
}

// UpdateDecision implements wfh.WFHRepository. No precondition on the prior
// status: an already resolved request may be overwritten.
func (r *wfhRepository) UpdateDecision(ctx context.Context, requestID string, status wfh.Status, stage wfh.Stage) (wfh.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_requests
		SET status = $1,
			stage = COALESCE(NULLIF($2, ''), stage),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + wfhColumns

	req, err := scanRequest(q.QueryRow(ctx, query, status, string(stage), requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wfh.Request{}, wfh.ErrRequestNotFound
		}
		return wfh.Request{}, fmt.Errorf("failed to update wfh decision: %w", database.ClassifyError(err))
	}

	return req, nil
}

func (r *wfhRepository) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]wfh.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wfh requests: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	var requests []wfh.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wfh request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wfh request rows: %w", database.ClassifyError(err))
	}

	return requests, nil
}
