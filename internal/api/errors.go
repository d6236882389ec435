package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnavailable is returned without touching the network while the circuit
// breaker is open.
var ErrUnavailable = errors.New("store api unavailable")

// StatusError is a non-2xx response from the store API.
type StatusError struct {
	Method  string
	URL     string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, e.Message)
}

// IsStatus reports whether err is a *StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// errorMessage picks the most useful text out of an error body: a JSON
// "message" or "error" field, else the raw body, else the status text.
func errorMessage(code int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error"} {
			if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
				return v.String()
			}
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(code)
}
