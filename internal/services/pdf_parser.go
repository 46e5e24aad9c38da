package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-analyzer/internal/models"
)

// sectionKeywords are common resume section titles. A line containing one of
// them is treated as a section heading.
var sectionKeywords = []string{
	"work experience", "experience", "employment", "professional experience",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies", "expertise",
	"projects", "key projects", "notable projects",
	"certifications", "certificates", "achievements",
	"summary", "profile", "objective", "about",
	"contact", "personal information",
}

// PDFParserService is the local extraction method: no network, ledongthuc/pdf
// for page text, keyword and line-shape heuristics for section detection.
type PDFParserService struct{}

func NewPDFParserService() *PDFParserService {
	return &PDFParserService{}
}

func (p *PDFParserService) Method() string { return "local" }

func (p *PDFParserService) Extract(_ context.Context, pdfPath string) (*models.ExtractionResult, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPages := r.NumPage()
	extraction := &models.ExtractionResult{
		PageCount: totalPages,
		Method:    "local",
	}

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		paragraphs := paragraphsFromLines(strings.Split(text, "\n"), pageIndex)
		extraction.Paragraphs = append(extraction.Paragraphs, paragraphs...)
	}

	if len(extraction.Paragraphs) == 0 {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return extraction, nil
}

// paragraphsFromLines classifies each line as a section heading or body text
// and merges consecutive body lines into paragraphs. A paragraph closes on a
// blank line, a heading, a sentence or label terminator, or after four lines.
func paragraphsFromLines(lines []string, page int) []models.Paragraph {
	var paragraphs []models.Paragraph
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, models.Paragraph{
			Content:    strings.Join(current, " "),
			Role:       models.RoleBody,
			Confidence: 1.0,
			Page:       page,
		})
		current = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		if isSectionHeading(line) {
			flush()
			paragraphs = append(paragraphs, models.Paragraph{
				Content:    line,
				Role:       models.RoleSectionHeading,
				Confidence: 1.0,
				Page:       page,
			})
			continue
		}

		current = append(current, line)

		if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ":") || len(current) > 3 {
			flush()
		}
	}
	flush()

	return paragraphs
}

// isSectionHeading reports whether a line starts a resume section: either it
// contains a known section keyword, or it is shaped like a header (at most
// four words, no sentence terminator, not a bullet).
func isSectionHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range sectionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return len(strings.Fields(line)) <= 4 &&
		!strings.HasSuffix(line, ".") &&
		!strings.HasPrefix(line, "•") &&
		!strings.HasPrefix(line, "-")
}
