package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel         OTelConfig
	WorkOS       WorkOSConfig
	ArangoDB     ArangoDBConfig
	Transform    TransformConfig
	OpenAI       OpenAIConfig
	Guest        GuestConfig
	Storage      StorageConfig
	Search       SearchConfig
	Secrets      SecretsConfig
	Env          string
	Port         string
	StudioURL    string
	ShareBaseURL string
}

type WorkOSConfig struct {
	APIKey      string
	ClientID    string
	RedirectURI string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type ArangoDBConfig struct {
	URL      string
	Username string
	Password string
	Database string
}

type TransformConfig struct {
	RedisURL       string
	RedisStream    string
	RedisGroup     string
	RedisDLQStream string
	RedisConsumer  string
}

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type GuestConfig struct {
	// TokenSecret signs the short-lived guest session tokens issued
	// when a guest opens an event link.
	TokenSecret string
}

// StorageConfig holds the OAuth client for the external storage provider
// that receives guest captures. Scopes is a comma-separated list.
type StorageConfig struct {
	Provider     string
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RevokeURL    string
	RedirectURI  string
	Scopes       string
}

type SearchConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type SecretsConfig struct {
	// Key is a base64-encoded 32-byte AES key used to seal provider
	// tokens before they are written to the database.
	Key string
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeWorker ServiceType = "worker"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the API server
//   - .env.worker for the background worker
//
// Falls back to .env if service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("EMCEE_ENV", "development") == "development" {
		// Try service-specific env file first, fall back to .env
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:          getEnv("EMCEE_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		StudioURL:    getEnv("STUDIO_URL", "http://localhost:3000"),
		ShareBaseURL: getEnv("SHARE_BASE_URL", "http://localhost:3000"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "emcee"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		WorkOS: WorkOSConfig{
			APIKey:      getEnv("WORKOS_API_KEY", ""),
			ClientID:    getEnv("WORKOS_CLIENT_ID", ""),
			RedirectURI: getEnv("WORKOS_REDIRECT_URI", "http://localhost:8080/auth/callback"),
		},
		ArangoDB: ArangoDBConfig{
			URL:      getEnv("ARANGO_URL", "http://localhost:8529"),
			Username: getEnv("ARANGO_USERNAME", "root"),
			Password: getEnv("ARANGO_PASSWORD", ""),
			Database: getEnv("ARANGO_DATABASE", "emcee"),
		},
		Transform: TransformConfig{
			RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
			RedisStream:    getEnv("REDIS_STREAM", "emcee_transforms"),
			RedisGroup:     getEnv("REDIS_CONSUMER_GROUP", "emcee_transform_group"),
			RedisDLQStream: getEnv("REDIS_DLQ_STREAM", "emcee_transforms_dlq"),
			RedisConsumer:  getEnv("REDIS_CONSUMER_NAME", "api-server"),
		},
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", ""),
			Model:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("OPENAI_MAX_TOKENS", 4096),
		},
		Guest: GuestConfig{
			TokenSecret: getEnv("GUEST_TOKEN_SECRET", ""),
		},
		Storage: StorageConfig{
			Provider:     getEnv("STORAGE_PROVIDER", "dropbox"),
			ClientID:     getEnv("STORAGE_CLIENT_ID", ""),
			ClientSecret: getEnv("STORAGE_CLIENT_SECRET", ""),
			AuthURL:      getEnv("STORAGE_AUTH_URL", ""),
			TokenURL:     getEnv("STORAGE_TOKEN_URL", ""),
			RevokeURL:    getEnv("STORAGE_REVOKE_URL", ""),
			RedirectURI:  getEnv("STORAGE_REDIRECT_URI", "http://localhost:8080/auth/integrations/storage/callback"),
			Scopes:       getEnv("STORAGE_SCOPES", "files.content.write,files.content.read"),
		},
		Search: SearchConfig{
			URL:        getEnv("TYPESENSE_URL", ""),
			APIKey:     getEnv("TYPESENSE_API_KEY", ""),
			Collection: getEnv("TYPESENSE_COLLECTION", "emcee_content"),
		},
		Secrets: SecretsConfig{
			Key: getEnv("SECRETS_KEY", ""),
		},
	}

	if cfg.WorkOS.APIKey == "" || cfg.WorkOS.ClientID == "" {
		return Config{}, fmt.Errorf("WORKOS_API_KEY and WORKOS_CLIENT_ID are required")
	}

	if cfg.Guest.TokenSecret == "" {
		return Config{}, fmt.Errorf("GUEST_TOKEN_SECRET is required")
	}

	if !cfg.ArangoDB.Enabled() {
		return Config{}, fmt.Errorf("ARANGO_URL and ARANGO_DATABASE are required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c WorkOSConfig) Enabled() bool {
	return c.APIKey != "" && c.ClientID != ""
}

func (c ArangoDBConfig) Enabled() bool {
	return c.URL != "" && c.Username != "" && c.Database != ""
}

func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c StorageConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.AuthURL != "" && c.TokenURL != ""
}

func (c SearchConfig) Enabled() bool {
	return c.URL != "" && c.APIKey != ""
}

func (c SecretsConfig) Enabled() bool {
	return c.Key != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
