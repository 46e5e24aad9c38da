package services

import (
	"fmt"
	"sort"
	"strings"

	"resume-analyzer/internal/models"
)

// categoryOrder fixes rendering order so reports are deterministic.
var categoryOrder = []models.SkillCategory{
	models.CategoryTechnical,
	models.CategorySoft,
	models.CategoryDomain,
}

const (
	maxListedStrengths   = 5
	maxListedGaps        = 5
	maxSkillsPerCategory = 8
)

// FormatMarkdownReport renders an analysis as the chat message shown in the
// web UI.
func FormatMarkdownReport(analysis *models.ResumeAnalysis, targetRole string) string {
	var b strings.Builder

	scorePercent := int(analysis.RoleMatchScore * 100)
	scoreBar := strings.Repeat("🟩", scorePercent/10) + strings.Repeat("⬜", 10-scorePercent/10)

	fmt.Fprintf(&b, "# 🎯 Resume Analysis Results\n\n")
	fmt.Fprintf(&b, "## 📊 Overall Match Score for **%s**\n%s **%d%%**\n\n", targetRole, scoreBar, scorePercent)
	fmt.Fprintf(&b, "## 📝 Executive Summary\n%s\n\n", analysis.Summary)

	b.WriteString("## 💪 Key Strengths\n")
	for _, strength := range capList(analysis.Strengths, maxListedStrengths) {
		fmt.Fprintf(&b, "✅ %s\n", strength)
	}

	b.WriteString("\n## ⚠️ Areas for Improvement\n")
	for _, gap := range capList(analysis.Gaps, maxListedGaps) {
		fmt.Fprintf(&b, "❌ %s\n", gap)
	}

	if len(analysis.Skills) > 0 {
		b.WriteString("\n## 🛠️ Skills Analysis\n")
		grouped := analysis.SkillsByCategory()
		for _, category := range categoryOrder {
			skills := grouped[category]
			if len(skills) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n### %s Skills\n", titleCase(string(category)))
			for _, skill := range topSkills(skills, maxSkillsPerCategory) {
				percent := int(skill.RelevanceScore * 100)
				bar := strings.Repeat("🟦", percent/20) + strings.Repeat("⬜", 5-percent/20)
				fmt.Fprintf(&b, "- **%s** %s %d%%\n", skill.Skill, bar, percent)
			}
		}
	}

	if len(analysis.Recommendations) > 0 {
		b.WriteString("\n## 💡 Personalized Recommendations\n")
		for i, rec := range analysis.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

// FormatTextReport renders an analysis for the terminal.
func FormatTextReport(analysis *models.ResumeAnalysis, targetRole string) string {
	var b strings.Builder

	divider := strings.Repeat("=", 80)
	fmt.Fprintf(&b, "%s\n🎯 RESUME ANALYSIS FOR: %s\n%s\n", divider, strings.ToUpper(targetRole), divider)
	fmt.Fprintf(&b, "\n📊 OVERALL ROLE MATCH SCORE: %.1f%%\n", analysis.RoleMatchScore*100)
	fmt.Fprintf(&b, "\n📝 SUMMARY:\n   %s\n", analysis.Summary)

	b.WriteString("\n💪 STRENGTHS:\n")
	for _, strength := range analysis.Strengths {
		fmt.Fprintf(&b, "   ✅ %s\n", strength)
	}

	b.WriteString("\n⚠️  GAPS TO ADDRESS:\n")
	for _, gap := range analysis.Gaps {
		fmt.Fprintf(&b, "   ❌ %s\n", gap)
	}

	b.WriteString("\n🎯 RECOMMENDATIONS:\n")
	for _, rec := range analysis.Recommendations {
		fmt.Fprintf(&b, "   💡 %s\n", rec)
	}

	if len(analysis.Skills) > 0 {
		b.WriteString("\n🛠️  EXTRACTED SKILLS:\n")
		grouped := analysis.SkillsByCategory()
		for _, category := range categoryOrder {
			skills := grouped[category]
			if len(skills) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n   %s SKILLS:\n", strings.ToUpper(string(category)))
			for _, skill := range topSkills(skills, len(skills)) {
				filled := int(skill.RelevanceScore * 10)
				bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
				fmt.Fprintf(&b, "     %-25s [%s] %.1f%%\n", skill.Skill, bar, skill.RelevanceScore*100)
			}
		}
	}

	return b.String()
}

// topSkills returns up to n skills sorted by relevance, highest first.
func topSkills(skills []models.SkillMatch, n int) []models.SkillMatch {
	sorted := make([]models.SkillMatch, len(skills))
	copy(sorted, skills)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RelevanceScore > sorted[j].RelevanceScore
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
