package wfh

import (
	"time"

	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// WFH DTOs
// ========================================

type CreateRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Date       string `json:"whf_date"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "whf_date",
			Message: "whf_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	RequestID string `json:"-"`
	Status    string `json:"status"`
	Stage     string `json:"stage,omitempty"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !validator.IsInSlice(r.Status, ValidDecisions()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: accepted, rejected",
		})
	}

	if r.Stage != "" && !validator.IsInSlice(r.Stage, []string{
		string(StageRequest), string(StageCheckIn), string(StageCompleted),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "stage",
			Message: "stage must be one of: request, checkIn, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID         string `json:"request_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Date       string `json:"whf_date"`
	Status     string `json:"whf"`
	Stage      string `json:"stage"`
	ReqTime    string `json:"req_time"`
}

// EnrichedRequestResponse is a pending request merged with the requesting
// employee's profile, for the HR review screen.
type EnrichedRequestResponse struct {
	RequestResponse
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	ImageURL  *string `json:"image_url,omitempty"`
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		CompanyID:  r.CompanyID,
		Date:       r.Date,
		Status:     string(r.Status),
		Stage:      string(r.Stage),
		ReqTime:    r.ReqTime.UTC().Format(time.RFC3339),
	}
}
