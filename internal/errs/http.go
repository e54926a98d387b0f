package errs

import "net/http"

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 with the given message, e.g. "Missing name".
func NewBadRequestError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotJSONError is the 400 returned when a body does not decode to a JSON object.
func NewNotJSONError() *HTTPError {
	return NewBadRequestError("Not a JSON")
}

// NewMissingFieldError is the 400 returned when a required attribute is absent.
func NewMissingFieldError(field string) *HTTPError {
	return NewBadRequestError("Missing " + field)
}

// NewNotFoundError creates the 404 used for unknown ids and routes.
func NewNotFoundError() *HTTPError {
	return newHTTPError(http.StatusNotFound, "Not found")
}

// NewInternalServerError hides the real cause from the client; log it instead.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
