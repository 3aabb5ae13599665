package api

import (
	"fmt"
	"net/http"

	"github.com/librivault/librivault-cli/internal/common"
)

// APIError is a non-2xx response from the server. It wraps one of the
// common sentinel errors so call sites can match with errors.Is while still
// seeing the status and the server-supplied message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrForbidden
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return common.ErrValidation
	default:
		return common.ErrUnavailable
	}
}

// errorEnvelope is the server's error body: {"message": "..."}.
type errorEnvelope struct {
	Message string `json:"message"`
}
