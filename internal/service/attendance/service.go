package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

const (
	MsgCheckInMarked  = "Check-in marked successfully"
	MsgCheckOutMarked = "Check-out marked successfully"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService.
//
// The transition table, in evaluation order:
//
//	check-in,  state checkedIn            -> ErrAlreadyCheckedIn
//	check-in,  state absent or completed  -> new check-in cycle (completed days re-open)
//	check-out, state absent               -> ErrNoPriorCheckIn
//	check-out, state completed            -> ErrAlreadyCheckedOut
//	check-out, state checkedIn            -> checkout fields set in place
//	neither flag                          -> validation error
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return "", err
	}
	if emp.CompanyID != req.CompanyID {
		return "", employee.ErrEmployeeNotFound
	}

	today := attendance.Today()
	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today, req.CompanyID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch today's attendance: %w", err)
	}

	if *req.IsCheckedIn {
		if existing != nil && existing.IsCheckedIn && !existing.IsCheckedOut {
			return "", attendance.ErrAlreadyCheckedIn
		}

		now := time.Now().UTC()
		record := attendance.Attendance{
			ID:             attendance.DailyID(req.EmployeeID, today),
			EmployeeID:     req.EmployeeID,
			CompanyID:      req.CompanyID,
			Date:           today,
			Time:           req.Time,
			IsCheckedIn:    true,
			IsCheckedOut:   false,
			IsWorkFromHome: *req.IsWorkFromHome,
			CheckInAt:      &now,
		}

		if existing == nil {
			err = s.AttendanceRepository.CreateCheckIn(ctx, record)
		} else {
			// Completed day: a fresh check-in starts another cycle on the
			// same deterministic id.
			err = s.AttendanceRepository.ReopenCheckIn(ctx, record)
		}
		if err != nil {
			return "", err
		}
		return MsgCheckInMarked, nil
	}

	if *req.IsCheckedOut {
		if existing == nil || !existing.IsCheckedIn {
			return "", attendance.ErrNoPriorCheckIn
		}
		if existing.IsCheckedOut {
			return "", attendance.ErrAlreadyCheckedOut
		}

		if err := s.AttendanceRepository.CompleteCheckOut(ctx, req.EmployeeID, today, req.CompanyID, req.Time); err != nil {
			return "", err
		}
		return MsgCheckOutMarked, nil
	}

	return "", validator.ValidationErrors{{
		Field:   "is_checked_in",
		Message: "either is_checked_in or is_checked_out must be true",
	}}
}

// GetTodayAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayAttendance(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, attendance.Today(), emp.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to fetch today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.ToResponse(*record), nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, filter.EmployeeID, filter.StartDate, filter.EndDate)
	if err != nil {
		return attendance.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := attendance.HistoryResponse{
		Details: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Details = append(resp.Details, attendance.ToResponse(rec))

		if rec.CheckInAt == nil || rec.CheckOutAt == nil {
			continue
		}
		hours := roundHours(rec.CheckOutAt.Sub(*rec.CheckInAt).Hours())
		switch rec.CheckInAt.UTC().Weekday() {
		case time.Monday:
			resp.Mon += hours
		case time.Tuesday:
			resp.Tue += hours
		case time.Wednesday:
			resp.Wed += hours
		case time.Thursday:
			resp.Thu += hours
		case time.Friday:
			resp.Fri += hours
		}
	}

	return resp, nil
}

func roundHours(h float64) float64 {
	return math.Round(math.Abs(h)*100) / 100
}
