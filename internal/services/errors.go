package services

import "errors"

// Failure taxonomy shared by all services. Handlers map these onto status
// codes: ErrNotFound -> 404, ErrValidation -> 400, anything else -> 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)
