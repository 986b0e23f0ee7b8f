package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrNoStoreLocation   = errors.New("employee has no registered work location")
	ErrEmployeeNotLinked = errors.New("no employee record linked to this user")
)
