package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/prepsportshq/preps-extract/gen/proto/extraction/v1"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	"github.com/prepsportshq/preps-extract/internal/vision"
)

type fakeVisionClient struct {
	content string
	err     error
}

func (f *fakeVisionClient) Extract(_ context.Context, _ vision.ImageInput, _ string, _ vision.Options) (vision.Response, error) {
	if f.err != nil {
		return vision.Response{}, f.err
	}
	return vision.Response{Content: f.content}, nil
}

func newTestExtractionService(client vision.Client) *ExtractionService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExtractionService(
		extraction.NewScorebookExtractor(client, logger),
		extraction.NewRosterExtractor(client, logger),
		extraction.NewScheduleExtractor(client, logger),
		logger,
	)
}

func pbImage() *v1.ImageInput {
	return &v1.ImageInput{SourceType: "base64", Data: "aGk=", MediaType: "image/jpeg"}
}

func TestExtractScorebookDecodeFailureReturnsRaw(t *testing.T) {
	const prose = "I could not read the image, sorry."
	svc := newTestExtractionService(&fakeVisionClient{content: prose})

	resp, err := svc.ExtractScorebook(context.Background(), &v1.ExtractScorebookRequest{Image: pbImage()})
	require.NoError(t, err)

	result := resp.GetResult()
	require.NotNil(t, result)
	assert.False(t, result.GetSuccess())
	assert.Empty(t, result.GetDataJson())
	// The unparseable model text must reach the caller for diagnosis.
	assert.Equal(t, prose, result.GetRaw())

	require.Len(t, result.GetIssues(), 1)
	assert.Equal(t, extraction.CodeDecodeFailed, result.GetIssues()[0].GetCode())
}

func TestExtractRosterRequestFailureReturnsResult(t *testing.T) {
	svc := newTestExtractionService(&fakeVisionClient{err: &vision.RequestError{Provider: "anthropic", Status: 429}})

	resp, err := svc.ExtractRoster(context.Background(), &v1.ExtractRosterRequest{Image: pbImage()})
	require.NoError(t, err)

	result := resp.GetResult()
	require.NotNil(t, result)
	assert.False(t, result.GetSuccess())
	assert.Empty(t, result.GetRaw())

	require.Len(t, result.GetIssues(), 1)
	assert.Equal(t, extraction.CodeExtractionFailed, result.GetIssues()[0].GetCode())
}

func TestExtractScorebookRejectsBadImageInput(t *testing.T) {
	svc := newTestExtractionService(&fakeVisionClient{content: "{}"})

	_, err := svc.ExtractScorebook(context.Background(), &v1.ExtractScorebookRequest{
		Image: &v1.ImageInput{SourceType: "ftp", Data: "aGk="},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
