package meta

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the error object of a failed Graph API call.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
	Subcode    int    `json:"error_subcode"`
	TraceID    string `json:"fbtrace_id"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("graph api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("graph api: %s (type=%s code=%d subcode=%d status=%d)",
		e.Message, e.Type, e.Code, e.Subcode, e.StatusCode)
}

func decodeError(status int, body []byte) error {
	var env struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return &APIError{StatusCode: status, Message: http.StatusText(status)}
	}
	env.Error.StatusCode = status
	return env.Error
}
