package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrConnection covers every transport-level failure (no connectivity,
// timeout, DNS). Callers show a single "connection error" message for all
// of them.
var ErrConnection = errors.New("connection error")

// Error is a non-2xx HTTP response. Body carries the raw error payload
// for caller-specific interpretation.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

// UserMessage maps an operation error to the small set of user-facing
// strings the screens display.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *Error
	if errors.As(err, &httpErr) {
		switch httpErr.Status {
		case http.StatusUnauthorized:
			return "unauthorized"
		case http.StatusForbidden:
			return "forbidden"
		case http.StatusNotFound:
			return "not found"
		case http.StatusInternalServerError:
			return "server error"
		default:
			return fmt.Sprintf("HTTP %d", httpErr.Status)
		}
	}
	if errors.Is(err, ErrConnection) {
		return "connection error"
	}
	return err.Error()
}
