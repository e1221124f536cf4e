package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeError means the model returned text that is not parseable JSON after
// fence stripping. It carries the raw text so a human can diagnose prompt or
// schema drift. Always terminal for the request; never retried.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode model output: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StripFences removes a markdown code-fence wrapper (```json ... ``` or
// ``` ... ```) if present and returns the inner text trimmed.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		// single-line fence, e.g. "```json{...}```"
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeJSON strips fences and unmarshals the remainder into v.
func DecodeJSON(raw string, v any) error {
	stripped := StripFences(raw)
	if err := json.Unmarshal([]byte(stripped), v); err != nil {
		return &DecodeError{Raw: raw, Err: err}
	}
	return nil
}
