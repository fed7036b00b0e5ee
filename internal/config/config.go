package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Ai  AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AIConfig struct {
	// Remote backend (OpenAI-compatible chat completion API)
	RemoteProvider string // "huggingface"
	RemoteBaseURL  string
	RemoteModel    string
	RemoteAPIKey   string

	// Local backend (Ollama)
	OllamaBaseURL string
	OllamaModel   string

	ProbeTimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Ai: AIConfig{
			RemoteProvider:      getEnv("REMOTE_LLM_PROVIDER", "huggingface"),
			RemoteBaseURL:       getEnv("REMOTE_LLM_BASE_URL", "https://router.huggingface.co/v1"),
			RemoteModel:         getEnv("REMOTE_LLM_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
			RemoteAPIKey:        getEnv("REMOTE_LLM_API_KEY", ""),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:         getEnv("OLLAMA_MODEL", "llama3.2:3b-instruct-q4_K_M"),
			ProbeTimeoutSeconds: getEnvAsInt("REMOTE_PROBE_TIMEOUT_SECONDS", 3),
		},
	}
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
