package handlers

import "strings"

var rolePrefixes = []string{
	"analyze this resume for",
	"analyze for",
	"evaluate for",
	"check for",
	"how well does this fit",
	"analyze this for",
}

var roleSuffixes = []string{
	"position",
	"role",
	"job",
	"candidate",
}

// ExtractTargetRole pulls a job role out of a free-form chat message like
// "analyze this resume for a Senior Backend Engineer position". A short or
// empty message yields "".
func ExtractTargetRole(message string) string {
	cleaned := strings.TrimSpace(message)
	if len(cleaned) < 3 {
		return ""
	}

	lower := strings.ToLower(cleaned)
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}

	lower = strings.ToLower(cleaned)
	for _, suffix := range roleSuffixes {
		if strings.HasSuffix(lower, suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
			break
		}
	}

	cleaned = strings.Trim(cleaned, " .!?")
	cleaned = strings.TrimPrefix(cleaned, "a ")
	cleaned = strings.TrimPrefix(cleaned, "an ")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) <= 2 {
		return ""
	}
	return cleaned
}
