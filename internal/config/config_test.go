package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DocumentIntelligence: DocumentIntelligenceConfig{
			Endpoint: "https://example.cognitiveservices.azure.com",
			Key:      "di-key",
		},
		OpenAI: OpenAIConfig{
			APIKey:         "openai-key",
			Endpoint:       "https://example.openai.azure.com",
			APIVersion:     "2024-02-15-preview",
			DeploymentName: "gpt-4o",
		},
		Extraction: ExtractionConfig{Method: MethodRemote},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		variable string
	}{
		{
			name:     "missing openai key",
			mutate:   func(c *Config) { c.OpenAI.APIKey = "" },
			variable: "AZURE_OPENAI_API_KEY",
		},
		{
			name:     "missing openai endpoint",
			mutate:   func(c *Config) { c.OpenAI.Endpoint = "" },
			variable: "AZURE_OPENAI_ENDPOINT",
		},
		{
			name:     "missing DI endpoint with remote method",
			mutate:   func(c *Config) { c.DocumentIntelligence.Endpoint = "" },
			variable: "DI_ENDPOINT",
		},
		{
			name:     "missing DI key with remote method",
			mutate:   func(c *Config) { c.DocumentIntelligence.Key = "" },
			variable: "DI_KEY",
		},
		{
			name:     "unknown extraction method",
			mutate:   func(c *Config) { c.Extraction.Method = "carrier-pigeon" },
			variable: "EXTRACTION_METHOD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.variable, cfgErr.Variable)
		})
	}
}

func TestValidateLocalMethodNeedsNoDICredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Extraction.Method = MethodLocal
	cfg.DocumentIntelligence = DocumentIntelligenceConfig{}

	assert.NoError(t, cfg.Validate())
}
