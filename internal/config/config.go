package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ErrorLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	ErrorTopic         string // In-process topic for captured exceptions
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI        string
	OpenAIBaseURL string
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string // e.g. "gpt-4o-mini", "llama3"
	Temperature   float64
	MaxTokens     int
	OllamaBaseURL string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ErrorLogFilePath:   getEnv("ERROR_LOG_FILE_PATH", "logs/errors.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			ErrorTopic:         getEnv("ERROR_TRACKER_TOPIC", "CAPTURED_EXCEPTIONS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:        getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o-mini"),
			Temperature:   getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 2000),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
