package attendance

import (
	"context"
)

// AttendanceRepository translates attendance-domain operations into record
// store calls. Every write is conditional on the expected prior state so a
// lost read-modify-write race surfaces as ErrConcurrentModification instead
// of silently overwriting.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the employee's record for the given day,
	// or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string, companyID string) (*Attendance, error)

	// CreateCheckIn inserts a fresh daily record. Fails with
	// ErrConcurrentModification when a record for the same (employee, date)
	// appeared since the caller's read.
	CreateCheckIn(ctx context.Context, att Attendance) error

	// ReopenCheckIn overwrites a completed day with a new check-in cycle.
	// Conditional on the record still being completed.
	ReopenCheckIn(ctx context.Context, att Attendance) error

	// CompleteCheckOut sets the checkout fields in place. Conditional on the
	// record still being checked-in-but-not-out.
	CompleteCheckOut(ctx context.Context, employeeID string, date string, companyID string, eventTime string) error

	// ListByEmployeeBetween returns the employee's records with dates in the
	// inclusive [startDate, endDate] range, oldest first.
	ListByEmployeeBetween(ctx context.Context, employeeID string, startDate string, endDate string) ([]Attendance, error)
}
