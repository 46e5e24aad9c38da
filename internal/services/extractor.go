package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/models"
)

// Extractor is one way of turning a PDF file into an ordered paragraph
// sequence. Two interchangeable implementations exist: the remote Document
// Intelligence service and the local PDF parser.
type Extractor interface {
	Extract(ctx context.Context, pdfPath string) (*models.ExtractionResult, error)
	Method() string
}

// fallbackExtractor tries the preferred method first and the alternate
// exactly once on failure. This is not a resilience-critical path, so there
// are no retries beyond the single fallback.
type fallbackExtractor struct {
	preferred Extractor
	alternate Extractor
}

func NewFallbackExtractor(preferred, alternate Extractor) Extractor {
	return &fallbackExtractor{preferred: preferred, alternate: alternate}
}

func (f *fallbackExtractor) Method() string {
	return fmt.Sprintf("%s+%s", f.preferred.Method(), f.alternate.Method())
}

func (f *fallbackExtractor) Extract(ctx context.Context, pdfPath string) (*models.ExtractionResult, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, &models.ExtractionError{Path: pdfPath, PrimaryErr: err}
	}

	result, primaryErr := f.preferred.Extract(ctx, pdfPath)
	if primaryErr == nil {
		return result, nil
	}

	log.Printf("⚠️  %s extraction failed: %v. Falling back to %s method",
		f.preferred.Method(), primaryErr, f.alternate.Method())

	result, fallbackErr := f.alternate.Extract(ctx, pdfPath)
	if fallbackErr == nil {
		return result, nil
	}

	return nil, &models.ExtractionError{
		Path:        pdfPath,
		PrimaryErr:  fmt.Errorf("%s: %w", f.preferred.Method(), primaryErr),
		FallbackErr: fmt.Errorf("%s: %w", f.alternate.Method(), fallbackErr),
	}
}

// NewExtractor builds the extraction pipeline from configuration: the
// preferred method wrapped so the alternate is tried once when it fails.
func NewExtractor(cfg *config.Config) Extractor {
	remote := NewDocumentIntelligenceExtractor(
		cfg.DocumentIntelligence.Endpoint,
		cfg.DocumentIntelligence.Key,
	)
	local := NewPDFParserService()

	if cfg.Extraction.Method == config.MethodLocal {
		return NewFallbackExtractor(local, remote)
	}
	return NewFallbackExtractor(remote, local)
}
