package vision

import (
	"context"
	"fmt"
)

// ImageInput describes the document handed to a vision provider.
type ImageInput struct {
	SourceType string `json:"source_type"` // "url" | "base64"
	Data       string `json:"data"`        // URL or base64 payload
	MediaType  string `json:"media_type"`  // required for base64 sources
}

// Options are per-request overrides; zero values fall back to client config.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Response is the provider-normalized result of one vision call.
type Response struct {
	Content          string `json:"content"`
	Usage            Usage  `json:"usage"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
}

// Client is the provider-agnostic capability boundary. Concrete adapters do
// request/response shaping only; no retries, no caching.
type Client interface {
	Extract(ctx context.Context, img ImageInput, prompt string, opts Options) (Response, error)
}

// RequestError is a terminal provider/transport failure. Callers surface it
// as an upload failure and never retry automatically.
type RequestError struct {
	Provider  string
	Status    int
	Message   string
	ElapsedMS int64
}

func (e *RequestError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s request failed: status %d: %s (%dms)", e.Provider, e.Status, e.Message, e.ElapsedMS)
	}
	return fmt.Sprintf("%s request failed: %s (%dms)", e.Provider, e.Message, e.ElapsedMS)
}
