package models

// Error kinds surfaced by the services. The helper package maps each
// kind to its HTTP status: validation 400, forbidden 403, not found
// 404, invalid state 409.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorInvalidState struct {
	Message string
}

func (e ErrorInvalidState) Error() string { return e.Message }
