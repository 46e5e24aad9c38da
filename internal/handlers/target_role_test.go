package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTargetRole(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "plain role",
			message: "Senior Backend Engineer",
			want:    "Senior Backend Engineer",
		},
		{
			name:    "analyze prefix and position suffix",
			message: "analyze this resume for a Senior Backend Engineer position",
			want:    "Senior Backend Engineer",
		},
		{
			name:    "evaluate prefix",
			message: "evaluate for DevOps Engineer",
			want:    "DevOps Engineer",
		},
		{
			name:    "role suffix",
			message: "Data Scientist role",
			want:    "Data Scientist",
		},
		{
			name:    "trailing punctuation",
			message: "Product Manager!",
			want:    "Product Manager",
		},
		{
			name:    "empty",
			message: "",
			want:    "",
		},
		{
			name:    "too short",
			message: "ok",
			want:    "",
		},
		{
			name:    "whitespace only",
			message: "    ",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTargetRole(tt.message))
		})
	}
}
