package services

import (
	"context"
	"log"

	"resume-analyzer/internal/models"
)

// Pipeline runs the full analysis for one resume: extract text, assemble the
// structured document string, evaluate it against the target role. One linear
// request/response sequence per invocation, no state across calls.
type Pipeline interface {
	AnalyzeResume(ctx context.Context, pdfPath, targetRole string) (*models.ResumeAnalysis, error)
}

type pipeline struct {
	extractor Extractor
	analyzer  Analyzer
}

func NewPipeline(extractor Extractor, analyzer Analyzer) Pipeline {
	return &pipeline{
		extractor: extractor,
		analyzer:  analyzer,
	}
}

// AnalyzeResume implements Pipeline.
func (p *pipeline) AnalyzeResume(ctx context.Context, pdfPath, targetRole string) (*models.ResumeAnalysis, error) {
	log.Printf("📄 Extracting text from %s...", pdfPath)
	extraction, err := p.extractor.Extract(ctx, pdfPath)
	if err != nil {
		return nil, err
	}

	assembled := AssembleContent(extraction)
	log.Printf("✅ Extracted %d paragraphs (%d characters) using %s method",
		len(extraction.Paragraphs), len(assembled), extraction.Method)

	log.Printf("🤖 Analyzing resume for role: %s", targetRole)
	analysis, err := p.analyzer.Analyze(ctx, assembled, targetRole)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Analysis completed: match score %.2f, %d skills", analysis.RoleMatchScore, len(analysis.Skills))
	return analysis, nil
}
