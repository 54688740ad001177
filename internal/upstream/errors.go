package upstream

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// StatusError reports an upstream response with a non-success HTTP status.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, string(e.Body))
}

// messageFields are the keys third-party APIs use for a human-readable failure reason.
var messageFields = []string{"error", "msg", "message", "errorMessage"}

// ExtractMessage returns the first non-empty error message field of a JSON body.
func ExtractMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range messageFields {
		if v := gjson.GetBytes(body, key); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}
