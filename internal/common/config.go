package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	DocAI   DocAIConfig
	Storage StorageConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxUploadBytes  int64
}

// DocAIConfig holds Document AI processor configuration
type DocAIConfig struct {
	ProjectID   string
	Location    string
	ProcessorID string
	Endpoint    string // optional override; derived from Location when empty
	Timeout     time.Duration
}

// StorageConfig holds upload storage configuration
type StorageConfig struct {
	UploadDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 32<<20),
		},
		DocAI: DocAIConfig{
			ProjectID:   getEnv("DOCAI_PROJECT_ID", ""),
			Location:    getEnv("DOCAI_LOCATION", ""),
			ProcessorID: getEnv("DOCAI_PROCESSOR_ID", ""),
			Endpoint:    getEnv("DOCAI_ENDPOINT", ""),
			Timeout:     getEnvAsDuration("DOCAI_TIMEOUT", 2*time.Minute),
		},
		Storage: StorageConfig{
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.DocAI.ProjectID == "" {
		return NewAppError("CONFIG_ERROR", "DOCAI_PROJECT_ID is required", ErrInvalidInput)
	}
	if c.DocAI.Location == "" {
		return NewAppError("CONFIG_ERROR", "DOCAI_LOCATION is required", ErrInvalidInput)
	}
	if c.DocAI.ProcessorID == "" {
		return NewAppError("CONFIG_ERROR", "DOCAI_PROCESSOR_ID is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.UploadDir == "" {
		return NewAppError("CONFIG_ERROR", "UPLOAD_DIR is required", ErrInvalidInput)
	}
	return nil
}
