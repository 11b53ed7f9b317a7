package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNIDExists        = errors.New("employee number already registered")
	ErrEmailExists      = errors.New("email already registered")
)
