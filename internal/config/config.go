package config

import (
	"os"
	"strconv"

	"payslip-processor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	UploadPath    string
	OutputPath    string
	MaxFileSize   int64
	LogLevel      string
	OCRLanguage   string
	OCRTimeoutSec int
	TesseractPath string
	WorkerCount   int
	QueueSize     int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud platforms provide the listening port via PORT; keep
		// SERVER_PORT for local/dev compatibility.
		ServerPort:    getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:    getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		OutputPath:    getEnvOrDefault("OUTPUT_PATH", "./output"),
		MaxFileSize:   getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		OCRLanguage:   getEnvOrDefault("OCR_LANGUAGE", "fra"),
		OCRTimeoutSec: getEnvIntOrDefault("OCR_TIMEOUT_SEC", 60),
		TesseractPath: getEnvOrDefault("TESSERACT_PATH", "tesseract"),
		WorkerCount:   getEnvIntOrDefault("WORKER_COUNT", 2),
		QueueSize:     getEnvIntOrDefault("QUEUE_SIZE", 16),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetOutputPath returns the root directory for organized results
func (c *AppConfig) GetOutputPath() string {
	return c.OutputPath
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetOCRLanguage returns the language hint passed to text recognition
func (c *AppConfig) GetOCRLanguage() string {
	return c.OCRLanguage
}

// GetOCRTimeoutSec returns the per-call recognition timeout in seconds
func (c *AppConfig) GetOCRTimeoutSec() int {
	return c.OCRTimeoutSec
}

// GetTesseractPath returns the tesseract binary name or path
func (c *AppConfig) GetTesseractPath() string {
	return c.TesseractPath
}

// GetWorkerCount returns the number of concurrent task workers
func (c *AppConfig) GetWorkerCount() int {
	return c.WorkerCount
}

// GetQueueSize returns the task queue depth
func (c *AppConfig) GetQueueSize() int {
	return c.QueueSize
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
