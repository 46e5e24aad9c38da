package models

// ParagraphRole tags the structural role a paragraph plays in the source document.
type ParagraphRole string

const (
	RoleTitle          ParagraphRole = "title"
	RoleSectionHeading ParagraphRole = "sectionHeading"
	RoleBody           ParagraphRole = "body"
	RolePageHeader     ParagraphRole = "pageHeader"
	RolePageFooter     ParagraphRole = "pageFooter"
	RolePageNumber     ParagraphRole = "pageNumber"
)

// IsHeading reports whether the role marks the start of a document section.
func (r ParagraphRole) IsHeading() bool {
	return r == RoleTitle || r == RoleSectionHeading
}

// IsFurniture reports whether the role is page decoration that carries no resume content.
func (r ParagraphRole) IsFurniture() bool {
	return r == RolePageHeader || r == RolePageFooter || r == RolePageNumber
}

type Paragraph struct {
	Content    string        `json:"content"`
	Role       ParagraphRole `json:"role"`
	Confidence float64       `json:"confidence"`
	Page       int           `json:"page,omitempty"`
	// BoundingBox holds the source polygon as flat x,y pairs when the
	// extraction backend provides one.
	BoundingBox []float64 `json:"bounding_box,omitempty"`
}

// ExtractionResult is the ordered paragraph sequence produced once per PDF.
// It is never mutated after the extractor returns it.
type ExtractionResult struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	PageCount  int         `json:"page_count"`
	Method     string      `json:"method"`
}
