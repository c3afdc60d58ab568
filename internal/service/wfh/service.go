package wfh

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
)

type WFHServiceImpl struct {
	wfh.WFHRepository
	employee.EmployeeRepository
}

func NewWFHService(
	wfhRepo wfh.WFHRepository,
	employeeRepo employee.EmployeeRepository,
) wfh.WFHService {
	return &WFHServiceImpl{
		WFHRepository:      wfhRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateRequest implements wfh.WFHService.
func (s *WFHServiceImpl) CreateRequest(ctx context.Context, req wfh.CreateRequestRequest) (wfh.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return wfh.RequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return wfh.RequestResponse{}, err
	}
	if emp.CompanyID != req.CompanyID {
		return wfh.RequestResponse{}, employee.ErrEmployeeNotFound
	}

	exists, err := s.WFHRepository.ExistsForDate(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return wfh.RequestResponse{}, fmt.Errorf("failed to check for existing request: %w", err)
	}
	if exists {
		return wfh.RequestResponse{}, wfh.ErrDuplicateRequest
	}

	// The unique index on (employee_id, date) closes the race left open by
	// the pre-check; Create reports a conflicting concurrent insert as
	// ErrDuplicateRequest as well.
	created, err := s.WFHRepository.Create(ctx, wfh.Request{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CompanyID:  req.CompanyID,
		Date:       req.Date,
		Status:     wfh.StatusPending,
		Stage:      wfh.StageRequest,
		ReqTime:    time.Now().UTC(),
	})
	if err != nil {
		return wfh.RequestResponse{}, err
	}

	return wfh.ToResponse(created), nil
}

// ListPending implements wfh.WFHService. The profile merge is an
// application-level join: scan the pending requests, fetch the distinct
// employees, stitch the display fields onto each row.
func (s *WFHServiceImpl) ListPending(ctx context.Context, companyID string) ([]wfh.EnrichedRequestResponse, error) {
	requests, err := s.WFHRepository.ListPendingByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	employeeIDs := make([]string, 0, len(requests))
	seen := make(map[string]bool, len(requests))
	for _, req := range requests {
		if !seen[req.EmployeeID] {
			seen[req.EmployeeID] = true
			employeeIDs = append(employeeIDs, req.EmployeeID)
		}
	}

	profiles := map[string]employee.Employee{}
	if len(employeeIDs) > 0 {
		profiles, err = s.EmployeeRepository.GetByIDs(ctx, employeeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch employee profiles: %w", err)
		}
	}

	enriched := make([]wfh.EnrichedRequestResponse, 0, len(requests))
	for _, req := range requests {
		row := wfh.EnrichedRequestResponse{RequestResponse: wfh.ToResponse(req)}
		if emp, ok := profiles[req.EmployeeID]; ok {
			row.FirstName = emp.FirstName
			row.LastName = emp.LastName
			row.Email = emp.Email
			row.ImageURL = emp.ImageURL
		}
		enriched = append(enriched, row)
	}

	return enriched, nil
}

// ListByEmployee implements wfh.WFHService.
func (s *WFHServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]wfh.RequestResponse, error) {
	requests, err := s.WFHRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	responses := make([]wfh.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, wfh.ToResponse(req))
	}
	return responses, nil
}

// Decide implements wfh.WFHService. The overwrite is permissive: an already
// resolved request can be resolved again with a different outcome.
func (s *WFHServiceImpl) Decide(ctx context.Context, req wfh.DecisionRequest) (wfh.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return wfh.RequestResponse{}, err
	}

	updated, err := s.WFHRepository.UpdateDecision(ctx, req.RequestID, wfh.Status(req.Status), wfh.Stage(req.Stage))
	if err != nil {
		return wfh.RequestResponse{}, err
	}

	return wfh.ToResponse(updated), nil
}
