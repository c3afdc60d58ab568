package wfh

import "context"

// WFHService defines business logic for the work-from-home workflow
type WFHService interface {
	// CreateRequest lodges a pending request for the given day
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// ListPending returns a company's pending requests enriched with the
	// requesting employees' profile fields
	ListPending(ctx context.Context, companyID string) ([]EnrichedRequestResponse, error)

	// ListByEmployee returns an employee's own request history
	ListByEmployee(ctx context.Context, employeeID string) ([]RequestResponse, error)

	// Decide resolves a request to accepted or rejected
	Decide(ctx context.Context, req DecisionRequest) (RequestResponse, error)
}
