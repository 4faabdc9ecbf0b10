package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrAdministratorRequired   = errors.New("administrator role required")
	ErrInsufficientPermissions = errors.New("role not authorized for this action")
)
