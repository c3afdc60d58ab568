package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, to_char(date, 'YYYY-MM-DD'), event_time,
	is_checked_in, is_checked_out, is_work_from_home,
	check_in_at, check_out_at, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CompanyID, &att.Date, &att.Time,
		&att.IsCheckedIn, &att.IsCheckedOut, &att.IsWorkFromHome,
		&att.CheckInAt, &att.CheckOutAt, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2::date
		  AND company_id = $3
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for the day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", database.ClassifyError(err))
	}

	return &att, nil
}

// CreateCheckIn implements attendance.AttendanceRepository. The primary key
// is the deterministic employeeID+date composite, so a racing creator shows
// up as a unique violation rather than a duplicate row.
func (a *attendanceRepository) CreateCheckIn(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, company_id, date, event_time,
			is_checked_in, is_checked_out, is_work_from_home, check_in_at
		) VALUES (
			$1, $2, $3, $4::date, $5, TRUE, FALSE, $6, $7
		)
	`

	_, err := q.Exec(ctx, query,
		att.ID,
		att.EmployeeID,
		att.CompanyID,
		att.Date,
		att.Time,
		att.IsWorkFromHome,
		att.CheckInAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ErrConcurrentModification
		}
		return fmt.Errorf("failed to create check-in: %w", database.ClassifyError(err))
	}

	return nil
}

// ReopenCheckIn implements attendance.AttendanceRepository. Conditional on
// the row still being a completed day; zero rows affected means someone else
// got there first.
func (a *attendanceRepository) ReopenCheckIn(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET event_time = $1,
			is_checked_in = TRUE,
			is_checked_out = FALSE,
			is_work_from_home = $2,
			check_in_at = $3,
			check_out_at = NULL,
			updated_at = NOW()
		WHERE id = $4
		  AND company_id = $5
		  AND is_checked_out = TRUE
	`

	tag, err := q.Exec(ctx, query, att.Time, att.IsWorkFromHome, att.CheckInAt, att.ID, att.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to reopen check-in: %w", database.ClassifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrConcurrentModification
	}

	return nil
}

// CompleteCheckOut implements attendance.AttendanceRepository. Conditional on
// the row still being checked in and not yet out.
func (a *attendanceRepository) CompleteCheckOut(ctx context.Context, employeeID string, date string, companyID string, eventTime string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET is_checked_out = TRUE,
			event_time = $1,
			check_out_at = NOW(),
			updated_at = NOW()
		WHERE employee_id = $2
		  AND date = $3::date
		  AND company_id = $4
		  AND is_checked_in = TRUE
		  AND is_checked_out = FALSE
	`

	tag, err := q.Exec(ctx, query, eventTime, employeeID, date, companyID)
	if err != nil {
		return fmt.Errorf("failed to complete check-out: %w", database.ClassifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrConcurrentModification
	}

	return nil
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, startDate string, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", database.ClassifyError(err))
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", database.ClassifyError(err))
	}

	return records, nil
}
