package services

import (
	"fmt"
	"unicode/utf8"
)

// maxResumeChars bounds the resume text embedded in the prompt so long
// documents stay inside the model's context window.
const maxResumeChars = 24000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemPrompt fixes the analyst persona and the JSON schema the model must
// answer with.
func (pb *PromptBuilder) SystemPrompt() string {
	return `You are an expert HR analyst and technical recruiter. Analyze the provided resume text and extract relevant information for the specified role.

Return your analysis as a JSON object with the following structure:
{
    "skills": [
        {
            "skill": "skill name",
            "relevance_score": 0.0-1.0,
            "category": "technical/soft/domain"
        }
    ],
    "role_match_score": 0.0-1.0,
    "strengths": ["strength 1", "strength 2"],
    "gaps": ["gap 1", "gap 2"],
    "recommendations": ["recommendation 1", "recommendation 2"],
    "summary": "Brief summary of candidate fit"
}

Focus on:
1. Technical skills, programming languages, frameworks, tools
2. Soft skills and leadership qualities
3. Domain expertise and industry knowledge
4. How well the candidate matches the target role
5. Specific gaps and improvement areas
6. Actionable recommendations`
}

// BuildAnalysisPrompt embeds the resume text and target role into the user
// message, truncating the resume to the prompt budget.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, targetRole string) string {
	if len(resumeText) > maxResumeChars {
		// Back off to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxResumeChars
		for cut > 0 && !utf8.RuneStart(resumeText[cut]) {
			cut--
		}
		resumeText = resumeText[:cut]
	}

	return fmt.Sprintf(`Target Role: %s

Resume Text:
%s

Please analyze this resume for the specified role and provide detailed insights.`,
		targetRole, resumeText)
}
