package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the quote matching service
type Config struct {
	Server   ServerConfig
	Match    MatchConfig
	Metadata MetadataConfig
	Storage  StorageConfig
}

// ServerConfig holds HTTP transport configuration
type ServerConfig struct {
	Port           string
	CORSOrigin     string
	MaxUploadBytes int64
}

// MatchConfig holds the tunables of the matching core
type MatchConfig struct {
	Threshold     float64
	WindowRadius  int
	MaxPageChars  int
	MaxQueryChars int
	Language      string
	Stemming      bool
	Locator       string
}

// MetadataConfig holds citation metadata resolution configuration
type MetadataConfig struct {
	CrossRefEnabled bool
	CrossRefBaseURL string
	CrossRefTimeout time.Duration
}

// StorageConfig holds uploaded document storage configuration
type StorageConfig struct {
	UploadDir string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           GetStringEnv("SERVER_PORT", "8080"),
			CORSOrigin:     GetStringEnv("SERVER_CORS_ORIGIN", "*"),
			MaxUploadBytes: int64(GetIntEnv("SERVER_MAX_UPLOAD_BYTES", 32<<20)),
		},
		Match: MatchConfig{
			Threshold:     GetFloatEnv("MATCH_THRESHOLD", 0.3),
			WindowRadius:  GetIntEnv("MATCH_WINDOW_RADIUS", 1),
			MaxPageChars:  GetIntEnv("MATCH_MAX_PAGE_CHARS", 200000),
			MaxQueryChars: GetIntEnv("MATCH_MAX_QUERY_CHARS", 2000),
			Language:      GetStringEnv("MATCH_LANGUAGE", "english"),
			Stemming:      GetBoolEnv("MATCH_STEMMING", false),
			Locator:       GetStringEnv("MATCH_LOCATOR", "regex"),
		},
		Metadata: MetadataConfig{
			CrossRefEnabled: GetBoolEnv("METADATA_CROSSREF_ENABLED", false),
			CrossRefBaseURL: GetStringEnv("METADATA_CROSSREF_BASE_URL", "https://api.crossref.org"),
			CrossRefTimeout: GetDurationEnv("METADATA_CROSSREF_TIMEOUT", 5*time.Second),
		},
		Storage: StorageConfig{
			UploadDir: GetStringEnv("STORAGE_UPLOAD_DIR", "./uploads"),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
