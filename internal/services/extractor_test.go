package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/models"
)

type fakeExtractor struct {
	method string
	result *models.ExtractionResult
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(context.Context, string) (*models.ExtractionResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeExtractor) Method() string { return f.method }

func tempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))
	return path
}

func TestFallbackExtractorUsesPreferredWhenItSucceeds(t *testing.T) {
	preferred := &fakeExtractor{method: "remote", result: &models.ExtractionResult{Method: "remote"}}
	alternate := &fakeExtractor{method: "local"}

	extractor := NewFallbackExtractor(preferred, alternate)
	result, err := extractor.Extract(context.Background(), tempPDF(t))

	require.NoError(t, err)
	assert.Equal(t, "remote", result.Method)
	assert.Equal(t, 1, preferred.calls)
	assert.Equal(t, 0, alternate.calls)
}

func TestFallbackExtractorTriesAlternateExactlyOnce(t *testing.T) {
	preferred := &fakeExtractor{method: "remote", err: errors.New("service unavailable")}
	alternate := &fakeExtractor{method: "local", result: &models.ExtractionResult{Method: "local"}}

	extractor := NewFallbackExtractor(preferred, alternate)
	result, err := extractor.Extract(context.Background(), tempPDF(t))

	require.NoError(t, err)
	assert.Equal(t, "local", result.Method)
	assert.Equal(t, 1, preferred.calls)
	assert.Equal(t, 1, alternate.calls)
}

func TestFallbackExtractorAggregatesBothFailures(t *testing.T) {
	preferred := &fakeExtractor{method: "remote", err: errors.New("service unavailable")}
	alternate := &fakeExtractor{method: "local", err: errors.New("no text content")}

	extractor := NewFallbackExtractor(preferred, alternate)
	result, err := extractor.Extract(context.Background(), tempPDF(t))

	assert.Nil(t, result)

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	// The aggregated error names both failure causes.
	assert.Contains(t, err.Error(), "service unavailable")
	assert.Contains(t, err.Error(), "no text content")
	assert.Equal(t, 1, preferred.calls)
	assert.Equal(t, 1, alternate.calls)
}

func TestFallbackExtractorMissingFile(t *testing.T) {
	preferred := &fakeExtractor{method: "remote"}
	alternate := &fakeExtractor{method: "local"}

	extractor := NewFallbackExtractor(preferred, alternate)
	_, err := extractor.Extract(context.Background(), "/nonexistent/resume.pdf")

	var extractionErr *models.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	// Neither method runs for an unreadable file.
	assert.Equal(t, 0, preferred.calls)
	assert.Equal(t, 0, alternate.calls)
}
