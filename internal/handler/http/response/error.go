package response

import (
	"errors"
	"net/http"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/company"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/user"
	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors. Each transition rejection keeps its own
	// message so clients can tell them apart.
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You are already checked in")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You are already checked out")
	case errors.Is(err, attendance.ErrNoPriorCheckIn):
		Conflict(w, "Cannot mark check-out without a previous check-in for the day")
	case errors.Is(err, attendance.ErrConcurrentModification):
		Conflict(w, "Attendance record was modified concurrently, retry the request")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// WFH domain errors
	case errors.Is(err, wfh.ErrDuplicateRequest):
		Conflict(w, "A work-from-home request already exists for this date")
	case errors.Is(err, wfh.ErrRequestNotFound):
		NotFound(w, "Work-from-home request not found")

	// Directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Auth errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrAccessDenied):
		Forbidden(w, "Insufficient role for this resource")

	// Transient persistence failures are retryable
	case errors.Is(err, database.ErrUnavailable):
		ServiceUnavailable(w, "Record store unavailable, retry later")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
