// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings. Nothing here is strictly required: missing
// keys or database URLs degrade the relevant feature instead of aborting.
type Config struct {
	DatabaseURL         string
	GeminiAPIKey        string
	XAIAPIKey           string
	OpenRouterAPIKey    string
	LLMProvider         string
	LLMModel            string
	VisionModel         string
	SpeechModel         string
	EmbeddingModel      string
	SessionID           string
	TopK                int
	SimilarityThreshold float64
	HistoryLimit        int
}

// Load reads env vars and applies defaults.
func Load() Config {
	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		XAIAPIKey:        os.Getenv("XAI_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		LLMProvider:      os.Getenv("LLM_PROVIDER"),
		LLMModel:         os.Getenv("LLM_MODEL"),
		VisionModel:      os.Getenv("VISION_MODEL"),
		SpeechModel:      os.Getenv("SPEECH_MODEL"),
		EmbeddingModel:   os.Getenv("EMBEDDING_MODEL"),
		SessionID:        os.Getenv("SESSION_ID"),
	}

	cfg.TopK = getEnvInt("TOP_K", 5)
	cfg.SimilarityThreshold = getEnvFloat("SIMILARITY_THRESHOLD", 0.7)
	cfg.HistoryLimit = getEnvInt("HISTORY_LIMIT", 10)

	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gemini-2.5-flash"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "gemini-2.5-flash"
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = "gemini-2.5-flash-preview-tts"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-004"
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
