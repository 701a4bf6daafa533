package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Canonical failure messages surfaced in [Result.Message] when the backend
// does not supply a better one. The timeout and network strings are part of
// the client contract and displayed to users verbatim.
const (
	MsgTimeout    = "Request timeout - server not responding"
	MsgNetwork    = "Network error - cannot connect to server"
	MsgValidation = "Validation error - please check the submitted fields"
	MsgFallback   = "Request failed - please try again"
)

// emptyObject is the Data payload of results that never reached the server.
var emptyObject = json.RawMessage(`{}`)

// Result is the uniform outcome of a single backend request. Exactly one of
// the two shapes is produced per call:
//
//   - success: OK=true, Status is the 2xx code, Data is the parsed body,
//     Message is empty;
//   - failure: OK=false, Status is the HTTP code (0 if no response was
//     obtained), Message is a human-readable reason, Data is the parsed
//     body or "{}".
//
// Data is always valid JSON. When a response body cannot be parsed, a body
// of the form {"detail":"HTTP <status>: <statusText>"} is synthesized so
// downstream code always has a detail-shaped object to inspect.
type Result struct {
	OK      bool
	Status  int
	Data    json.RawMessage
	Message string
}

// Decode unmarshals the result body into v.
func (r Result) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// newResult classifies an obtained HTTP response into a [Result].
func newResult(statusCode int, body []byte) Result {
	data := json.RawMessage(bytes.TrimSpace(body))
	if len(data) == 0 || !json.Valid(data) {
		detail, _ := json.Marshal(map[string]string{
			"detail": fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
		})
		data = detail
	}

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return Result{OK: true, Status: statusCode, Data: data}
	}

	return Result{Status: statusCode, Data: data, Message: failureMessage(data)}
}

// failureMessage extracts a human-readable error from a backend failure
// body. Precedence: detail, then message, then error, then the validation
// fallback when the body carries field-level validation data, then the
// generic fallback. The backend is not uniform here; plain FastAPI errors
// use {"detail": "..."}, the structured error middleware uses
// {"error": {"code", "message"}}, and request validation produces either a
// "fields" map or an array-valued "detail".
func failureMessage(data json.RawMessage) string {
	var probe struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
		Fields  json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return MsgFallback
	}

	if s := rawString(probe.Detail); s != "" {
		return s
	}
	if probe.Message != "" {
		return probe.Message
	}
	if s := rawString(probe.Error); s != "" {
		return s
	}

	var wrapped struct {
		Message string `json:"message"`
	}
	if len(probe.Error) > 0 && json.Unmarshal(probe.Error, &wrapped) == nil && wrapped.Message != "" {
		return wrapped.Message
	}

	if len(probe.Fields) > 0 || bytes.HasPrefix(bytes.TrimSpace(probe.Detail), []byte("[")) {
		return MsgValidation
	}

	return MsgFallback
}

// rawString returns raw's value when it holds a JSON string, else "".
func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
