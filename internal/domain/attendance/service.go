package attendance

import (
	"context"
)

// AttendanceService defines business logic for the daily attendance lifecycle
type AttendanceService interface {
	// MarkAttendance applies a check-in or check-out intent against today's
	// record, enforcing the daily singleton and ordering rules
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (message string, err error)

	// GetTodayAttendance returns the employee's record for the current day
	GetTodayAttendance(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// GetHistory returns records in a date range plus worked hours per weekday
	GetHistory(ctx context.Context, filter HistoryFilter) (HistoryResponse, error)
}
