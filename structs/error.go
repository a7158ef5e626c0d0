package structs

import (
	"net/http"

	"kitchenbook-go-server/enums"
)

// AppError is the caller-visible outcome for every failed operation.
// Services return it through the plain error interface, controllers map
// Kind to an HTTP status.
type AppError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewAppError(kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Status() int {
	switch e.Kind {
	case enums.ErrorAuthenticationRequired:
		return http.StatusUnauthorized
	case enums.ErrorPermissionDenied:
		return http.StatusForbidden
	case enums.ErrorNotFound:
		return http.StatusNotFound
	case enums.ErrorValidationFailed:
		return http.StatusBadRequest
	case enums.ErrorIntegrityConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
