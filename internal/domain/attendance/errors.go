package attendance

import "errors"

// Attendance domain errors. Every rejected transition gets its own sentinel
// so handlers can render a message distinct from every other rejection.
var (
	ErrAlreadyCheckedIn  = errors.New("you are already checked in")
	ErrAlreadyCheckedOut = errors.New("you are already checked out")
	ErrNoPriorCheckIn    = errors.New("cannot mark check-out without a previous check-in for the day")

	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrConcurrentModification is returned when a conditional write loses a
	// race: the record's state changed between the read and the write.
	ErrConcurrentModification = errors.New("attendance record was modified concurrently")
)
