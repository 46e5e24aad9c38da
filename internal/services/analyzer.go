package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"resume-analyzer/internal/models"
)

const analysisTemperature = 0.3

// Analyzer turns assembled resume text plus a target role into a structured
// evaluation by invoking the hosted chat model once.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, targetRole string) (*models.ResumeAnalysis, error)
}

type analyzerService struct {
	chat          ChatClient
	promptBuilder *PromptBuilder
	validate      *validator.Validate
}

func NewAnalyzerService(chat ChatClient) Analyzer {
	return &analyzerService{
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
		validate:      validator.New(),
	}
}

// analysisPayload mirrors the JSON schema the prompt asks for. The score is
// a pointer so a present-but-zero score can be told apart from an absent one.
type analysisPayload struct {
	Skills []struct {
		Skill          string  `json:"skill"`
		RelevanceScore float64 `json:"relevance_score"`
		Category       string  `json:"category"`
	} `json:"skills"`
	RoleMatchScore  *float64 `json:"role_match_score"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// complete reports whether the payload carries enough of the schema to stand
// as an analysis: a role match score and a non-empty summary. Anything less
// is treated as a parse failure rather than returned half-filled.
func (p *analysisPayload) complete() bool {
	return p != nil && p.RoleMatchScore != nil && strings.TrimSpace(p.Summary) != ""
}

func (a *analyzerService) Analyze(ctx context.Context, resumeText, targetRole string) (*models.ResumeAnalysis, error) {
	userPrompt := a.promptBuilder.BuildAnalysisPrompt(resumeText, targetRole)

	response, err := a.chat.Complete(ctx, a.promptBuilder.SystemPrompt(), userPrompt, analysisTemperature)
	if err != nil {
		return nil, &models.AnalysisError{Reason: "model call failed", Err: err}
	}

	log.Printf("🔍 Model response received: %d characters", len(response))

	payload, err := parseAnalysisResponse(response)
	if err != nil {
		return nil, err
	}

	analysis := payload.toAnalysis(resumeText)
	analysis.Normalize()

	if err := a.validate.Struct(analysis); err != nil {
		return nil, &models.AnalysisError{
			Reason:      "model response failed schema validation",
			RawResponse: response,
			Err:         err,
		}
	}

	return analysis, nil
}

func (p *analysisPayload) toAnalysis(resumeText string) *models.ResumeAnalysis {
	analysis := &models.ResumeAnalysis{
		ExtractedText:   resumeText,
		Strengths:       p.Strengths,
		Gaps:            p.Gaps,
		Recommendations: p.Recommendations,
		Summary:         strings.TrimSpace(p.Summary),
	}
	if p.RoleMatchScore != nil {
		analysis.RoleMatchScore = *p.RoleMatchScore
	}
	for _, s := range p.Skills {
		if strings.TrimSpace(s.Skill) == "" {
			continue
		}
		analysis.Skills = append(analysis.Skills, models.SkillMatch{
			Skill:          strings.TrimSpace(s.Skill),
			RelevanceScore: s.RelevanceScore,
			Category:       models.SkillCategory(s.Category),
		})
	}
	return analysis
}

// parseAnalysisResponse applies the fallback strategies in order: direct
// JSON, fence-stripped JSON, brace-delimited substring, then per-field regex
// extraction. Each result must pass the completeness threshold.
func parseAnalysisResponse(response string) (*analysisPayload, error) {
	if payload := decodePayload(response); payload.complete() {
		return payload, nil
	}

	stripped := stripCodeFences(response)
	if payload := decodePayload(stripped); payload.complete() {
		return payload, nil
	}

	if start, end := strings.Index(stripped, "{"), strings.LastIndex(stripped, "}"); start != -1 && end > start {
		if payload := decodePayload(stripped[start : end+1]); payload.complete() {
			return payload, nil
		}
	}

	if payload := extractFields(response); payload.complete() {
		log.Println("⚠️  Model response parsed field-by-field; skill list unavailable")
		return payload, nil
	}

	return nil, &models.AnalysisError{
		Reason:      "unparsable model response after all fallback strategies",
		RawResponse: response,
	}
}

func decodePayload(text string) *analysisPayload {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return nil
	}
	return &payload
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

var (
	scorePattern   = regexp.MustCompile(`"role_match_score"\s*:\s*(-?[0-9]+(?:\.[0-9]+)?)`)
	summaryPattern = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	listPatterns   = map[string]*regexp.Regexp{
		"strengths":       regexp.MustCompile(`"strengths"\s*:\s*\[([^\]]*)\]`),
		"gaps":            regexp.MustCompile(`"gaps"\s*:\s*\[([^\]]*)\]`),
		"recommendations": regexp.MustCompile(`"recommendations"\s*:\s*\[([^\]]*)\]`),
	}
	quotedString = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
)

// extractFields regex-extracts known fields individually from a response
// that is not valid JSON in any form. The skills list is too nested to
// recover reliably this way and is left empty.
func extractFields(response string) *analysisPayload {
	payload := &analysisPayload{}

	if m := scorePattern.FindStringSubmatch(response); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			payload.RoleMatchScore = &score
		}
	}

	if m := summaryPattern.FindStringSubmatch(response); m != nil {
		payload.Summary = unquote(m[1])
	}

	lists := map[string]*[]string{
		"strengths":       &payload.Strengths,
		"gaps":            &payload.Gaps,
		"recommendations": &payload.Recommendations,
	}
	for field, target := range lists {
		m := listPatterns[field].FindStringSubmatch(response)
		if m == nil {
			continue
		}
		for _, token := range quotedString.FindAllString(m[1], -1) {
			var item string
			if err := json.Unmarshal([]byte(token), &item); err == nil && item != "" {
				*target = append(*target, item)
			}
		}
	}

	return payload
}

// unquote decodes the JSON escape sequences a capture group carries.
func unquote(escaped string) string {
	var s string
	if err := json.Unmarshal([]byte(`"`+escaped+`"`), &s); err != nil {
		return escaped
	}
	return s
}
