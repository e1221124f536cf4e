package vision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                        `{"a":1}`,
		"```json\n{\"a\":1}\n```":          `{"a":1}`,
		"```\n{\"a\":1}\n```":              `{"a":1}`,
		"```json{\"a\":1}```":              `{"a":1}`,
		"  ```json\n{\"a\": 1}\n```  ":     `{"a": 1}`,
		"```json\n{\n  \"a\": [1,2]\n}\n```": "{\n  \"a\": [1,2]\n}",
	}
	for input, want := range cases {
		assert.Equal(t, want, StripFences(input), "input %q", input)
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON("```json\n{\"name\":\"Eagles\"}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "Eagles", out.Name)
}

func TestDecodeJSONError(t *testing.T) {
	var out map[string]any
	raw := "Sure! Here is the JSON you asked for: {\"a\": 1}"
	err := DecodeJSON(raw, &out)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, raw, decodeErr.Raw)
	assert.Contains(t, err.Error(), "decode model output")
}
