package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the wire shape of every 4xx/5xx response.
type ErrorEnvelope struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
} // @name ErrorEnvelope

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded — use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the standard error envelope with the given machine code
// and human-readable description.
func JSONError(w http.ResponseWriter, status int, code, description string) {
	JSON(w, status, ErrorEnvelope{Error: code, ErrorDescription: description})
}
