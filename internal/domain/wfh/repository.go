package wfh

import "context"

// WFHRepository persists work-from-home requests.
type WFHRepository interface {
	// Create inserts a new request. ErrDuplicateRequest when the employee
	// already has one for the same date (unique on employee_id + date).
	Create(ctx context.Context, req Request) (Request, error)

	// ExistsForDate reports whether the employee already has a request for
	// the given date.
	ExistsForDate(ctx context.Context, employeeID string, date string) (bool, error)

	// ListPendingByCompany returns all pending requests scoped to a company.
	ListPendingByCompany(ctx context.Context, companyID string) ([]Request, error)

	// ListByEmployee returns all of the employee's requests, any status.
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// UpdateDecision overwrites the status (and stage, when non-empty) of a
	// request by id. ErrRequestNotFound when no such request exists. The
	// overwrite is deliberately permissive about the prior status.
	UpdateDecision(ctx context.Context, requestID string, status Status, stage Stage) (Request, error)
}
