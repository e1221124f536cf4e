package extraction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prepsportshq/preps-extract/internal/common"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

// runExtract is the shared model-call half of every extractor: one provider
// call, fence-strip + decode, and a local schema check. Transport and decode
// failures come back as a failed Result plus the error; validation is the
// caller's job. No retries anywhere — a failed request is terminal and the
// user re-uploads.
func runExtract[T any](ctx context.Context, client vision.Client, logger *slog.Logger, kind string, img vision.ImageInput, prompt string, schema map[string]any, opts vision.Options) (Result[T], error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	logger.Info("extract."+kind+".start",
		"req_id", rid,
		"source_type", img.SourceType,
		"media_type", img.MediaType,
	)

	resp, err := client.Extract(ctx, img, prompt, opts)
	if err != nil {
		logger.Error("extract."+kind+".request_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result[T]{
			Success:          false,
			Issues:           []ValidationIssue{errorIssue(CodeExtractionFailed, err.Error(), "")},
			ProcessingTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	var data T
	if err := vision.DecodeJSON(resp.Content, &data); err != nil {
		logger.Error("extract."+kind+".decode_failed",
			"req_id", rid, "error", err, "raw_bytes", len(resp.Content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result[T]{
			Success:          false,
			Issues:           []ValidationIssue{errorIssue(CodeDecodeFailed, err.Error(), "")},
			Raw:              resp.Content,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	result := Result[T]{
		Data:             &data,
		Raw:              resp.Content,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}

	// The schema is the contract we sent the model; drift after a clean JSON
	// parse is reported but not blocking, since the domain validators own
	// the hard checks.
	stripped := vision.StripFences(resp.Content)
	if err := vision.ValidateJSONAgainstSchema(schema, []byte(stripped)); err != nil {
		logger.Warn("extract."+kind+".schema_mismatch", "req_id", rid, "error", err)
		result.Issues = append(result.Issues, warningIssue(CodeSchemaMismatch, err.Error(), ""))
	}

	logger.Info("extract."+kind+".decoded",
		"req_id", rid,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"elapsed_ms", result.ProcessingTimeMS,
	)
	return result, nil
}
