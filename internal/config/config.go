package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel string

	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	OpenAITimeoutSeconds int

	TesseractBin string
	OCRLang      string

	MaxUploadBytes int64
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present, matching local
// development setups; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:         mustEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        mustEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:          mustEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
		OpenAITimeoutSeconds: mustEnvInt("OPENAI_TIMEOUT_SECONDS", 60),

		TesseractBin: mustEnv("OCR_TESSERACT_BIN", "tesseract"),
		OCRLang:      mustEnv("OCR_LANG", "eng"),

		MaxUploadBytes: int64(mustEnvInt("MAX_UPLOAD_MB", 20)) << 20,
	}
}

// OpenAIConfigured reports whether an API key is present. Health
// endpoints expose this so deploys with a missing key are visible.
func (c Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
