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

// OpenAIConfig configures the OpenAI chat/completions vision adapter.
type OpenAIConfig struct {
	APIKey      string // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string // default https://api.openai.com/v1
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

type OpenAIClient struct {
	cfg    OpenAIConfig
	http   *http.Client
	logger *slog.Logger
}

func NewOpenAIClient(cfg OpenAIConfig, logger *slog.Logger) *OpenAIClient {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
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
	return &OpenAIClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *OpenAIClient) Extract(ctx context.Context, img ImageInput, prompt string, opts Options) (Response, error) {
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

	imageURL := img.Data
	if img.SourceType != "url" {
		imageURL = "data:" + img.MediaType + ";base64," + img.Data
	}

	body := map[string]any{
		"model":       model,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]any{"url": imageURL}},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{
		"Authorization": "Bearer " + c.cfg.APIKey,
	}

	raw, status, err := SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		return Response{}, &RequestError{
			Provider:  "openai",
			Status:    status,
			Message:   errMessage(err, raw),
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return Response{}, &RequestError{
			Provider:  "openai",
			Status:    status,
			Message:   "decode response: " + err.Error(),
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}
	if len(cc.Choices) == 0 {
		return Response{}, &RequestError{
			Provider:  "openai",
			Status:    status,
			Message:   "no choices in response",
			ElapsedMS: time.Since(start).Milliseconds(),
		}
	}

	elapsed := time.Since(start).Milliseconds()
	c.logger.Info("vision.openai.ok",
		"model", model,
		"input_tokens", cc.Usage.PromptTokens,
		"output_tokens", cc.Usage.CompletionTokens,
		"elapsed_ms", elapsed,
	)
	return Response{
		Content: strings.TrimSpace(cc.Choices[0].Message.Content),
		Usage: Usage{
			InputTokens:  cc.Usage.PromptTokens,
			OutputTokens: cc.Usage.CompletionTokens,
		},
		ProcessingTimeMS: elapsed,
	}, nil
}
