package vision

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const anthropicVersion = "2023-06-01"

// AnthropicConfig configures the Anthropic messages-API adapter.
type AnthropicConfig struct {
	APIKey      string // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL     string // default https://api.anthropic.com/v1
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

type AnthropicClient struct {
	cfg    AnthropicConfig
	http   *http.Client
	logger *slog.Logger
}

func NewAnthropicClient(cfg AnthropicConfig, logger *slog.Logger) *AnthropicClient {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8192
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 90 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnthropicClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *AnthropicClient) Extract(ctx context.Context, img ImageInput, prompt string, opts Options) (Response, error) {
	start := time.Now()

	model := c.cfg.Model
	if opts.Model != "" {
		model = opts.Model
	}
	maxTokens := c.cfg.MaxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}
	temperature := c.cfg.Temperature
	if opts.Temperature > 0 {
		temperature = opts.Temperature
	}

	// PDFs go through the document block type, images through image.
	blockType := "image"
	if img.MediaType == "application/pdf" {
		blockType = "document"
	}
	var source map[string]any
	switch img.SourceType {
	case "url":
		source = map[string]any{"type": "url", "url": img.Data}
	default:
		source = map[string]any{"type": "base64", "media_type": img.MediaType, "data": img.Data}
	}

	body := map[string]any{
		"model":       model,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": blockType, "source": source},
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages"
	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": anthropicVersion,
	}

	raw, status, err := SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return Response{}, &RequestError{
			Provider:  "anthropic",
			Status:    status,
			Message:   errMessage(err, raw),
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		Usage struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Response{}, &RequestError{
			Provider:  "anthropic",
			Status:    status,
			Message:   "decode response: " + err.Error(),
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return Response{}, &RequestError{
			Provider:  "anthropic",
			Status:    status,
			Message:   "no text content in response",
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	elapsed := time.Since(start).Milliseconds()
	c.logger.Info("vision.anthropic.ok",
		"model", model,
		"input_tokens", msg.Usage.InputTokens,
		"output_tokens", msg.Usage.OutputTokens,
		"elapsed_ms", elapsed,
	)
	return Response{
		Content: text.String(),
		Usage: Usage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
		ProcessingTimeMS: elapsed,
	}, nil
}

// errMessage prefers the provider's error body over the transport error text.
func errMessage(err error, raw []byte) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return err.Error()
}
