package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("could not find employee with provided employee_id")
)
