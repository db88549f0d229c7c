package tasksdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int

	// Status is the envelope status, "fail" or "error"
	Status string

	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("taskboard: %d %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns an error response into an APIError. Bodies that
// are not an envelope (such as the plain text 404) become the message.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
	}

	msg := string(body)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	status := "fail"
	if resp.StatusCode >= 500 {
		status = "error"
	}
	return &APIError{StatusCode: resp.StatusCode, Status: status, Message: msg}
}
