package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Pipeline  PipelineConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LLMConfig struct {
	// Provider selects the generation backend: "gigachat" or "openai".
	Provider           string
	GigaChatAPIKey     string
	GigaChatScope      string
	InsecureSkipVerify bool
	OpenAIAPIKey       string
	OpenAIModel        string
	RequestTimeout     time.Duration
}

type PipelineConfig struct {
	// SimilarityThreshold is the minimum cosine score for a corpus match to be
	// used as generation context. Observed production values range 0.1-0.2.
	SimilarityThreshold float64
	// LearnedAnswerCutoff suppresses learning for queries that already match
	// existing content almost exactly.
	LearnedAnswerCutoff float64
	DataDir             string
}

type RateLimitConfig struct {
	GlobalMaxRequests int
	GlobalWindow      time.Duration
	QueryMaxRequests  int
	QueryWindow       time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// If no .env file was found, environment variables are used directly
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_REQUEST_TIMEOUT", "10"))
	similarityThreshold, _ := strconv.ParseFloat(getEnv("SIMILARITY_THRESHOLD", "0.2"), 64)
	learnedCutoff, _ := strconv.ParseFloat(getEnv("LEARNED_ANSWER_CUTOFF", "0.95"), 64)
	globalMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_GLOBAL_MAX", "50"))
	globalWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_GLOBAL_WINDOW_MS", "60000"))
	queryMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_QUERY_MAX", "20"))
	queryWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_QUERY_WINDOW_MS", "60000"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "campuschat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		LLM: LLMConfig{
			Provider:           getEnv("LLM_PROVIDER", "gigachat"),
			GigaChatAPIKey:     getEnv("GIGACHAT_API_KEY", ""),
			GigaChatScope:      getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
			OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			RequestTimeout:     time.Duration(llmTimeout) * time.Second,
		},
		Pipeline: PipelineConfig{
			SimilarityThreshold: similarityThreshold,
			LearnedAnswerCutoff: learnedCutoff,
			DataDir:             getEnv("KNOWLEDGE_DATA_DIR", "data"),
		},
		RateLimit: RateLimitConfig{
			GlobalMaxRequests: globalMax,
			GlobalWindow:      time.Duration(globalWindow) * time.Millisecond,
			QueryMaxRequests:  queryMax,
			QueryWindow:       time.Duration(queryWindow) * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
