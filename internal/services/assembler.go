package services

import (
	"fmt"
	"strings"

	"resume-analyzer/internal/models"
)

// AssembleContent reconstructs an ordered document string from an extraction
// result: exactly one heading marker per heading-tagged paragraph, body text
// concatenated in document order, page furniture dropped. Deterministic for
// a given input.
func AssembleContent(extraction *models.ExtractionResult) string {
	var b strings.Builder

	for _, paragraph := range extraction.Paragraphs {
		text := strings.TrimSpace(paragraph.Content)
		if text == "" || paragraph.Role.IsFurniture() {
			continue
		}

		if paragraph.Role.IsHeading() {
			b.WriteString(fmt.Sprintf("\n\n=== %s ===\n", strings.ToUpper(text)))
			continue
		}

		b.WriteString(text)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
