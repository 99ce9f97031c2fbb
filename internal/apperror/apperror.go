package apperror

import "net/http"

// ApiError is an error carrying the HTTP status it should be reported with.
// Services return these; the response package translates them at the boundary.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

// New creates an ApiError with an explicit status code
func New(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *ApiError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *ApiError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *ApiError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *ApiError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *ApiError {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *ApiError {
	return New(http.StatusTooManyRequests, message)
}
