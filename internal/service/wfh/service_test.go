package wfh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ===== FAKES =====

type fakeWFHRepo struct {
	requests map[string]*wfh.Request // by id
}

func newFakeWFHRepo() *fakeWFHRepo {
	return &fakeWFHRepo{requests: make(map[string]*wfh.Request)}
}

func (f *fakeWFHRepo) Create(_ context.Context, req wfh.Request) (wfh.Request, error) {
	for _, existing := range f.requests {
		if existing.EmployeeID == req.EmployeeID && existing.Date == req.Date {
			return wfh.Request{}, wfh.ErrDuplicateRequest
		}
	}
	cp := req
	f.requests[req.ID] = &cp
	return req, nil
}

func (f *fakeWFHRepo) ExistsForDate(_ context.Context, employeeID, date string) (bool, error) {
	for _, existing := range f.requests {
		if existing.EmployeeID == employeeID && existing.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWFHRepo) ListPendingByCompany(_ context.Context, companyID string) ([]wfh.Request, error) {
	var out []wfh.Request
	for _, req := range f.requests {
		if req.CompanyID == companyID && req.Status == wfh.StatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeWFHRepo) ListByEmployee(_ context.Context, employeeID string) ([]wfh.Request, error) {
	var out []wfh.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeWFHRepo) UpdateDecision(_ context.Context, requestID string, status wfh.Status, stage wfh.Stage) (wfh.Request, error) {
	req, ok := f.requests[requestID]
	if !ok {
		return wfh.Request{}, wfh.ErrRequestNotFound
	}
	req.Status = status
	if stage != "" {
		req.Stage = stage
	}
	return *req, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByIDs(_ context.Context, employeeIDs []string) (map[string]employee.Employee, error) {
	out := make(map[string]employee.Employee)
	for _, id := range employeeIDs {
		if emp, ok := f.employees[id]; ok {
			out[id] = emp
		}
	}
	return out, nil
}

func newTestService() (wfh.WFHService, *fakeWFHRepo) {
	repo := newFakeWFHRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp1": {ID: "emp1", CompanyID: "companyA", FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
		"emp2": {ID: "emp2", CompanyID: "companyA", FirstName: "Ben", LastName: "Lin", Email: "ben@example.com"},
	}}
	return NewWFHService(repo, empRepo), repo
}

// ===== CREATE REQUEST TESTS =====

func TestCreateRequest_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	got, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{
		EmployeeID: "emp1",
		CompanyID:  "companyA",
		Date:       "2024-05-01",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, string(wfh.StatusPending), got.Status)
	assert.Equal(t, string(wfh.StageRequest), got.Stage)
	assert.Equal(t, "2024-05-01", got.Date)
}

func TestCreateRequest_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	req := wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"}
	_, err := svc.CreateRequest(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateRequest(ctx, req)
	assert.ErrorIs(t, err, wfh.ErrDuplicateRequest)
}

func TestCreateRequest_SameDateDifferentEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)

	_, err = svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp2", CompanyID: "companyA", Date: "2024-05-01"})
	assert.NoError(t, err)
}

func TestCreateRequest_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "ghost", CompanyID: "companyA", Date: "2024-05-01"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateRequest_InvalidDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "May 1st"})

	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

// ===== LIST TESTS =====

func TestListPending_EnrichesWithProfiles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp2", CompanyID: "companyA", Date: "2024-05-02"})
	require.NoError(t, err)

	got, err := svc.ListPending(ctx, "companyA")
	require.NoError(t, err)
	require.Len(t, got, 2)

	byEmployee := map[string]string{}
	for _, row := range got {
		byEmployee[row.EmployeeID] = row.FirstName
		assert.NotEmpty(t, row.Email)
	}
	assert.Equal(t, "Asha", byEmployee["emp1"])
	assert.Equal(t, "Ben", byEmployee["emp2"])
}

func TestListPending_ExcludesResolved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, wfh.DecisionRequest{RequestID: created.ID, Status: string(wfh.StatusAccepted)})
	require.NoError(t, err)

	got, err := svc.ListPending(ctx, "companyA")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByEmployee_AnyStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-02"})
	require.NoError(t, err)
	_, err = svc.Decide(ctx, wfh.DecisionRequest{RequestID: created.ID, Status: string(wfh.StatusRejected)})
	require.NoError(t, err)

	got, err := svc.ListByEmployee(ctx, "emp1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// ===== DECISION TESTS =====

func TestDecide_AcceptsPendingRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)

	got, err := svc.Decide(ctx, wfh.DecisionRequest{RequestID: created.ID, Status: string(wfh.StatusAccepted)})
	require.NoError(t, err)
	assert.Equal(t, string(wfh.StatusAccepted), got.Status)
	assert.Equal(t, wfh.StatusAccepted, repo.requests[created.ID].Status)
}

func TestDecide_OverwritesResolvedRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.CreateRequest(ctx, wfh.CreateRequestRequest{EmployeeID: "emp1", CompanyID: "companyA", Date: "2024-05-01"})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, wfh.DecisionRequest{RequestID: created.ID, Status: string(wfh.StatusAccepted)})
	require.NoError(t, err)

	// resolution is permissive about prior status
	got, err := svc.Decide(ctx, wfh.DecisionRequest{RequestID: created.ID, Status: string(wfh.StatusRejected)})
	require.NoError(t, err)
	assert.Equal(t, string(wfh.StatusRejected), got.Status)
}

func TestDecide_UnknownRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Decide(ctx, wfh.DecisionRequest{RequestID: "missing", Status: string(wfh.StatusAccepted)})
	assert.ErrorIs(t, err, wfh.ErrRequestNotFound)
}

func TestDecide_RejectsInvalidStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Decide(ctx, wfh.DecisionRequest{RequestID: "any", Status: "maybe"})

	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}
