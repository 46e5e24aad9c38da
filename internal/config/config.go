package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	MethodRemote = "remote"
	MethodLocal  = "local"
)

type Config struct {
	Server               ServerConfig
	DocumentIntelligence DocumentIntelligenceConfig
	OpenAI               OpenAIConfig
	Extraction           ExtractionConfig
	Storage              StorageConfig
	CLI                  CLIConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DocumentIntelligenceConfig struct {
	Endpoint string
	Key      string
}

type OpenAIConfig struct {
	APIKey         string
	Endpoint       string
	APIVersion     string
	DeploymentName string
}

type ExtractionConfig struct {
	// Method is the preferred extraction method, "remote" or "local".
	// The alternate is tried once when the preferred one fails.
	Method string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type CLIConfig struct {
	ResumePath string
	TargetRole string
}

// ConfigurationError reports a required credential or endpoint missing at
// startup.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Variable)
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		DocumentIntelligence: DocumentIntelligenceConfig{
			Endpoint: strings.TrimRight(getEnv("DI_ENDPOINT", ""), "/"),
			Key:      getEnv("DI_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("AZURE_OPENAI_API_KEY", ""),
			Endpoint:       getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIVersion:     getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
			DeploymentName: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o"),
		},
		Extraction: ExtractionConfig{
			Method: getEnv("EXTRACTION_METHOD", MethodRemote),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		CLI: CLIConfig{
			ResumePath: getEnv("RESUME_PATH", ""),
			TargetRole: getEnv("TARGET_ROLE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return &ConfigurationError{Variable: "AZURE_OPENAI_API_KEY"}
	}
	if c.OpenAI.Endpoint == "" {
		return &ConfigurationError{Variable: "AZURE_OPENAI_ENDPOINT"}
	}

	switch c.Extraction.Method {
	case MethodRemote, MethodLocal:
	default:
		return &ConfigurationError{Variable: "EXTRACTION_METHOD"}
	}

	// The local method needs no credentials, so the Document Intelligence
	// pair is only required when the remote method is preferred.
	if c.Extraction.Method == MethodRemote {
		if c.DocumentIntelligence.Endpoint == "" {
			return &ConfigurationError{Variable: "DI_ENDPOINT"}
		}
		if c.DocumentIntelligence.Key == "" {
			return &ConfigurationError{Variable: "DI_KEY"}
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
