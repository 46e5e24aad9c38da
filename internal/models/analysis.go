package models

import "strings"

type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
)

type SkillMatch struct {
	Skill          string        `json:"skill" validate:"required"`
	RelevanceScore float64       `json:"relevance_score" validate:"gte=0,lte=1"`
	Category       SkillCategory `json:"category" validate:"oneof=technical soft domain"`
}

// ResumeAnalysis is the fixed evaluation record produced once per analysis
// call. List fields are always non-nil and scores are always inside [0,1]
// after Normalize.
type ResumeAnalysis struct {
	ExtractedText   string       `json:"extracted_text"`
	Skills          []SkillMatch `json:"skills" validate:"dive"`
	RoleMatchScore  float64      `json:"role_match_score" validate:"gte=0,lte=1"`
	Strengths       []string     `json:"strengths"`
	Gaps            []string     `json:"gaps"`
	Recommendations []string     `json:"recommendations"`
	Summary         string       `json:"summary"`
}

// ClampScore coerces a model-provided score into [0,1]. Models occasionally
// answer on a 0-100 or 1-5 scale despite the prompt: values up to 5 clamp to
// 1, values up to 100 are read as percentages, anything beyond clamps to 1.
func ClampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v <= 1:
		return v
	case v <= 5:
		return 1
	case v <= 100:
		return v / 100
	default:
		return 1
	}
}

// NormalizeCategory coerces free-form category text to one of the three
// enumerated values. Unknown categories land in domain, the catch-all for
// industry knowledge, rather than passing through raw.
func NormalizeCategory(raw string) SkillCategory {
	c := strings.ToLower(strings.TrimSpace(raw))
	// The prompt shows the enum as "technical/soft/domain"; some models echo
	// a slashed pair back. Keep the first recognizable token.
	if i := strings.IndexByte(c, '/'); i > 0 {
		c = c[:i]
	}
	switch {
	case strings.HasPrefix(c, "tech"), strings.Contains(c, "programming"), strings.Contains(c, "hard"):
		return CategoryTechnical
	case strings.HasPrefix(c, "soft"), strings.Contains(c, "interpersonal"), strings.Contains(c, "leadership"):
		return CategorySoft
	default:
		return CategoryDomain
	}
}

// Normalize enforces the record invariants in place: scores clamped to
// [0,1], categories coerced to the enum, nil lists replaced by empty slices.
func (a *ResumeAnalysis) Normalize() {
	a.RoleMatchScore = ClampScore(a.RoleMatchScore)

	for i := range a.Skills {
		a.Skills[i].RelevanceScore = ClampScore(a.Skills[i].RelevanceScore)
		a.Skills[i].Category = NormalizeCategory(string(a.Skills[i].Category))
	}

	if a.Skills == nil {
		a.Skills = []SkillMatch{}
	}
	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	if a.Gaps == nil {
		a.Gaps = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
}

// SkillsByCategory groups skills for rendering, preserving relative order
// inside each category.
func (a *ResumeAnalysis) SkillsByCategory() map[SkillCategory][]SkillMatch {
	grouped := make(map[SkillCategory][]SkillMatch)
	for _, s := range a.Skills {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}
