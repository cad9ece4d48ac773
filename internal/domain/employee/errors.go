package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrCarryForwardConflict = errors.New("carry-forward balance was updated concurrently")
)
