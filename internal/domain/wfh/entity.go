package wfh

import "time"

// Status is the approval axis of a work-from-home request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Stage tracks whether the requested day has additionally been physically
// realized. It is independent of Status: the two axes are not cross-validated.
type Stage string

const (
	StageRequest   Stage = "request"
	StageCheckIn   Stage = "checkIn"
	StageCompleted Stage = "completed"
)

// Request is a work-from-home request. Unlike office attendance it has a
// generated id: the natural key (employee, date) is still protected by a
// unique index, but requests are addressed by id once created.
type Request struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       string // requested day, YYYY-MM-DD
	Status     Status
	Stage      Stage
	ReqTime    time.Time // when the request was lodged
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ValidStatuses() []string {
	return []string{string(StatusPending), string(StatusAccepted), string(StatusRejected)}
}

func ValidDecisions() []string {
	return []string{string(StatusAccepted), string(StatusRejected)}
}
