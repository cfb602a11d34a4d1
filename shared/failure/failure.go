package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes. Codes reuse the standard HTTP status values
// as a small, well known set of error kinds.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	RestaurantNotFound   = &Failure{Code: http.StatusNotFound, Message: "restaurant not found"}
	RestaurantMissing    = &Failure{Code: http.StatusBadRequest, Message: "restaurant is required"}
	TableIndexOutOfRange = &Failure{Code: http.StatusBadRequest, Message: "table index out of range"}
	InvalidTableCount    = &Failure{Code: http.StatusBadRequest, Message: "table count must not be negative"}
	TableAlreadyBooked   = &Failure{Code: http.StatusConflict, Message: "table already booked for date"}
)

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Is matches failures of the same code and message, so wrapped copies still compare
// equal to the predefined kinds.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
