package employee

import "time"

// Employee is the directory profile the attendance flows need: company
// membership for the precondition check and the display fields merged into
// enriched WFH listings.
type Employee struct {
	ID        string
	CompanyID string
	BranchID  *string
	FirstName string
	LastName  string
	Email     string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
