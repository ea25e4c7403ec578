package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage backends
const (
	StorageFilesystem = "filesystem"
	StorageMinIO      = "minio"
	StoragePostgres   = "postgres"
)

// Cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Transcription backends
const (
	TranscriberAuto       = "auto"
	TranscriberWhisper    = "whisper"
	TranscriberAssemblyAI = "assemblyai"
	TranscriberGemini     = "gemini"
)

// Listing orders
const (
	OrderByID      = "id"
	OrderByCreated = "created"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Paths      PathsConfig
	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Transcribe TranscribeConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Redis      RedisConfig
	Listing    ListingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"5001"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxUploadSize   string        `envconfig:"MAX_UPLOAD_SIZE" default:"500M"`
}

// PathsConfig holds the local directories used by the pipeline
type PathsConfig struct {
	UploadDir    string `envconfig:"UPLOAD_DIR" default:"uploads"`
	ProcessedDir string `envconfig:"PROCESSED_DIR" default:"processed"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey  string `envconfig:"GOOGLE_API_KEY"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// OpenAIConfig holds OpenAI configuration
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
}

// TranscribeConfig holds speech-to-text configuration
type TranscribeConfig struct {
	Backend          string `envconfig:"TRANSCRIBER" default:"auto"`
	WhisperModel     string `envconfig:"WHISPER_MODEL" default:"whisper-1"`
	AssemblyAIAPIKey string `envconfig:"ASSEMBLYAI_API_KEY"`
}

// StorageConfig holds meeting storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"filesystem"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-scribe"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	Prefix          string `envconfig:"STORAGE_PREFIX" default:"processed/"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_scribe"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// CacheConfig selects the meeting record cache
type CacheConfig struct {
	Type string        `envconfig:"CACHE_TYPE" default:"none"`
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"10m"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// ListingConfig controls how the meeting list is ordered
type ListingConfig struct {
	Order string `envconfig:"LISTING_ORDER" default:"id"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	cfg := &Config{}
	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &cfg.Server},
		{"paths", &cfg.Paths},
		{"gemini", &cfg.Gemini},
		{"openai", &cfg.OpenAI},
		{"transcribe", &cfg.Transcribe},
		{"storage", &cfg.Storage},
		{"database", &cfg.Database},
		{"cache", &cfg.Cache},
		{"redis", &cfg.Redis},
		{"listing", &cfg.Listing},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageFilesystem, StorageMinIO, StoragePostgres:
	default:
		return fmt.Errorf("STORAGE_TYPE must be one of filesystem, minio, postgres (got %q)", c.Storage.Type)
	}
	switch c.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("CACHE_TYPE must be one of none, memory, redis (got %q)", c.Cache.Type)
	}
	switch c.Transcribe.Backend {
	case TranscriberAuto, TranscriberWhisper, TranscriberAssemblyAI, TranscriberGemini:
	default:
		return fmt.Errorf("TRANSCRIBER must be one of auto, whisper, assemblyai, gemini (got %q)", c.Transcribe.Backend)
	}
	switch c.Listing.Order {
	case OrderByID, OrderByCreated:
	default:
		return fmt.Errorf("LISTING_ORDER must be one of id, created (got %q)", c.Listing.Order)
	}
	if c.Paths.UploadDir == "" || c.Paths.ProcessedDir == "" {
		return fmt.Errorf("UPLOAD_DIR and PROCESSED_DIR are required")
	}
	return nil
}

// TranscriberBackend resolves TRANSCRIBER=auto to the first back-end that has
// a credential: whisper, then gemini, then assemblyai. It returns whisper when
// none is configured so the startup warning names a concrete back-end.
func (c *Config) TranscriberBackend() string {
	if c.Transcribe.Backend != TranscriberAuto && c.Transcribe.Backend != "" {
		return c.Transcribe.Backend
	}
	switch {
	case c.OpenAI.APIKey != "":
		return TranscriberWhisper
	case c.Gemini.APIKey != "":
		return TranscriberGemini
	case c.Transcribe.AssemblyAIAPIKey != "":
		return TranscriberAssemblyAI
	}
	return TranscriberWhisper
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
