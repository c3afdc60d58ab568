package employee

import "context"

// EmployeeRepository is the identity & directory collaborator. Attendance
// only reads from it; employee CRUD belongs to the surrounding system.
type EmployeeRepository interface {
	// GetByID returns the employee profile, or ErrEmployeeNotFound.
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// GetByIDs returns profiles for the given ids, keyed by employee id.
	// Missing ids are simply absent from the map.
	GetByIDs(ctx context.Context, employeeIDs []string) (map[string]Employee, error)
}
