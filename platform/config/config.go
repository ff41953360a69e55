// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	IsSwaggerEnabled() bool
	IsMetricsEnabled() bool
}

// AIConfig provides settings for the intent classification provider.
type AIConfig interface {
	GetAIProvider() string
	GetAITimeout() time.Duration
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetMoonshotAPIKey() string
	GetMoonshotModel() string
	GetMoonshotBaseURL() string
}

// ScoringConfig provides settings for the rule scorer.
type ScoringConfig interface {
	GetVocabularyFile() string
}

// IngestConfig provides settings for lead uploads.
type IngestConfig interface {
	GetUploadMaxBytes() int64
	GetMinioBucketLeadUploads() string
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	IsMinIOEnabled() bool
}

const (
	// ProviderGemini selects the Google Gemini backend.
	ProviderGemini = "gemini"
	// ProviderMoonshot selects the Moonshot (Kimi) backend.
	ProviderMoonshot = "moonshot"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string

	CORSAllowAll   bool
	CORSOrigins    []string
	SwaggerEnabled bool
	MetricsEnabled bool

	AIProvider      string
	AITimeout       time.Duration
	GeminiAPIKey    string
	GeminiModel     string
	MoonshotAPIKey  string
	MoonshotModel   string
	MoonshotBaseURL string

	VocabularyFile string
	UploadMaxBytes int64

	MinIOEndpoint          string
	MinIOAccessKey         string
	MinIOSecretKey         string
	MinIOUseSSL            bool
	MinIOMaxFileSize       int64
	MinioBucketLeadUploads string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) IsSwaggerEnabled() bool   { return c.SwaggerEnabled }
func (c *Config) IsMetricsEnabled() bool   { return c.MetricsEnabled }

// AIConfig implementation
func (c *Config) GetAIProvider() string       { return c.AIProvider }
func (c *Config) GetAITimeout() time.Duration { return c.AITimeout }
func (c *Config) GetGeminiAPIKey() string     { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string      { return c.GeminiModel }
func (c *Config) GetMoonshotAPIKey() string   { return c.MoonshotAPIKey }
func (c *Config) GetMoonshotModel() string    { return c.MoonshotModel }
func (c *Config) GetMoonshotBaseURL() string  { return c.MoonshotBaseURL }

// ScoringConfig implementation
func (c *Config) GetVocabularyFile() string { return c.VocabularyFile }

// IngestConfig implementation
func (c *Config) GetUploadMaxBytes() int64          { return c.UploadMaxBytes }
func (c *Config) GetMinioBucketLeadUploads() string { return c.MinioBucketLeadUploads }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string   { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string  { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string  { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool       { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64 { return c.MinIOMaxFileSize }
func (c *Config) IsMinIOEnabled() bool       { return c.MinIOEndpoint != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		CORSAllowAll:           corsAllowAll,
		CORSOrigins:            corsOrigins,
		SwaggerEnabled:         strings.EqualFold(getEnv("SWAGGER_ENABLED", "true"), "true"),
		MetricsEnabled:         strings.EqualFold(getEnv("METRICS_ENABLED", "true"), "true"),
		AIProvider:             strings.ToLower(strings.TrimSpace(getEnv("AI_PROVIDER", ProviderGemini))),
		AITimeout:              mustDuration(getEnv("AI_TIMEOUT", "0s")),
		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MoonshotAPIKey:         getEnv("MOONSHOT_API_KEY", ""),
		MoonshotModel:          getEnv("MOONSHOT_MODEL", "kimi-k2-turbo-preview"),
		MoonshotBaseURL:        getEnv("MOONSHOT_BASE_URL", ""),
		VocabularyFile:         getEnv("VOCABULARY_FILE", ""),
		UploadMaxBytes:         mustInt64(getEnv("UPLOAD_MAX_BYTES", "10485760")),
		MinIOEndpoint:          getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:         getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:         getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:            strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:       mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "10485760")),
		MinioBucketLeadUploads: getEnv("MINIO_BUCKET_LEAD_UPLOADS", "lead-uploads"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required settings and cross-field constraints.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	switch c.AIProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER is %q", ProviderGemini)
		}
	case ProviderMoonshot:
		if c.MoonshotAPIKey == "" {
			return fmt.Errorf("MOONSHOT_API_KEY is required when AI_PROVIDER is %q", ProviderMoonshot)
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AIProvider)
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.AITimeout < 0 {
		return fmt.Errorf("AI_TIMEOUT must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
