package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/gophmedia/pkg/api"
)

var (
	// ErrUnauthorized is returned when the session is gone and could not be refreshed
	ErrUnauthorized = errors.New("not authenticated")
	// ErrRangeNotSatisfiable is returned when the server rejects a Range header
	ErrRangeNotSatisfiable = errors.New("range not satisfiable")
)

// StatusError describes a non-2xx server response
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match 401 and 416 against the sentinels
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrRangeNotSatisfiable:
		return e.StatusCode == http.StatusRequestedRangeNotSatisfiable
	}
	return false
}

// StatusCode extracts the HTTP status from err, 0 if there is none
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func newStatusError(code int, body []byte) *StatusError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &StatusError{StatusCode: code, Message: msg}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &StatusError{StatusCode: code, Message: msg}
}
