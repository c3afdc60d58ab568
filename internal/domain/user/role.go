package user

import "errors"

// Role is the coarse access level carried in the JWT claims. Authorization is
// a plain role-membership check; fine-grained permissions live with the
// identity provider, not here.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

var (
	ErrAccessDenied = errors.New("role is not allowed to access this resource")
	ErrInvalidToken = errors.New("invalid or missing access token")
)
