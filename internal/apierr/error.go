// Package apierr decodes the structured error envelope that DoorPasses
// API endpoints return on non-2xx responses.
package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is an error response from the DoorPasses API.
type Error struct {
	StatusCode int    // HTTP status of the response
	Code       string // Machine-readable error code, e.g. "card_template_not_found"
	Message    string // Human-readable description
	RequestID  string // X-Request-ID the failing request was sent with
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "doorpasses: api error: status=%d", e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " code=%s", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, " message=%q", e.Message)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " request_id=%s", e.RequestID)
	}
	return b.String()
}

// Parse builds an [*Error] from a non-2xx response. Bodies are
// expected to carry the API's error envelope:
//
//	{"code": "...", "message": "..."}
//
// Anything else degrades to a code derived from the status text, with
// the raw body as the message.
func Parse(status int, requestID string, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		RequestID:  requestID,
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && (envelope.Code != "" || envelope.Message != "") {
		e.Code = envelope.Code
		e.Message = envelope.Message
		return e
	}

	e.Code = strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	e.Message = strings.TrimSpace(string(body))
	return e
}
