package attendance

import "time"

// Attendance is one employee's office check-in/check-out state for one
// calendar day. The ID is the deterministic composite employeeID+date, which
// is what makes the daily singleton hold: a second check-in for the same day
// lands on the same row instead of creating a sibling.
type Attendance struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	Date           string // YYYY-MM-DD in the employee's request timezone
	Time           string // last event timestamp as supplied by the client
	IsCheckedIn    bool
	IsCheckedOut   bool
	IsWorkFromHome bool

	// Server-side event instants (UTC). The client-supplied Time string is
	// opaque and overwritten on check-out, so worked-hours reporting needs
	// both ends of the day recorded here.
	CheckInAt  *time.Time
	CheckOutAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DailyID derives the deterministic record id for an employee's day.
func DailyID(employeeID, date string) string {
	return employeeID + date
}

// Today returns the current date in the layout used for attendance keys.
func Today() string {
	return time.Now().Format("2006-01-02")
}
