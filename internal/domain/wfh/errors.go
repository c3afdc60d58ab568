package wfh

import "errors"

// WFH domain errors
var (
	ErrDuplicateRequest = errors.New("a work-from-home request already exists for this date")
	ErrRequestNotFound  = errors.New("work-from-home request not found")
)
