package attendance

import (
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkAttendanceRequest carries a check-in or check-out intent. The three
// booleans are pointers because the wire contract distinguishes "field
// absent" (rejected) from an explicit false.
type MarkAttendanceRequest struct {
	EmployeeID     string `json:"employee_id"`
	CompanyID      string `json:"company_id"`
	Time           string `json:"time"`
	IsCheckedIn    *bool  `json:"is_checked_in"`
	IsCheckedOut   *bool  `json:"is_checked_out"`
	IsWorkFromHome *bool  `json:"is_work_from_home"`
}

func (r *MarkAttendanceRequest) Validate() error {
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

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	}

	if r.IsCheckedIn == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_checked_in",
			Message: "is_checked_in is required",
		})
	}

	if r.IsCheckedOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_checked_out",
			Message: "is_checked_out is required",
		})
	}

	if r.IsWorkFromHome == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "is_work_from_home",
			Message: "is_work_from_home is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string `json:"attendance_id"`
	EmployeeID     string `json:"employee_id"`
	CompanyID      string `json:"company_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	IsCheckedIn    bool   `json:"is_checked_in"`
	IsCheckedOut   bool   `json:"is_checked_out"`
	IsWorkFromHome bool   `json:"is_work_from_home"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		CompanyID:      a.CompanyID,
		Date:           a.Date,
		Time:           a.Time,
		IsCheckedIn:    a.IsCheckedIn,
		IsCheckedOut:   a.IsCheckedOut,
		IsWorkFromHome: a.IsWorkFromHome,
	}
}

// HistoryFilter selects an inclusive date range of an employee's records.
type HistoryFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(f.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(f.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkedHours sums completed check-in/check-out pairs per weekday, rounded to
// two decimals the way the mobile client expects.
type WorkedHours struct {
	Mon float64 `json:"mon"`
	Tue float64 `json:"tue"`
	Wed float64 `json:"wed"`
	Thu float64 `json:"thu"`
	Fri float64 `json:"fri"`
}

type HistoryResponse struct {
	WorkedHours
	Details []AttendanceResponse `json:"details"`
}
