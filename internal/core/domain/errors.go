package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")
var ErrNotFound = errors.New("not found")
var ErrInvalidTransition = errors.New("invalid status transition")
