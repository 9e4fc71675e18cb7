package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds application configuration.
type Config struct {
	LogLevel string

	OpenAIAPIKey string
	GeminiAPIKey string

	ChatModel      string
	DetectionModel string
	EnhanceModel   string

	TTSModel     string
	TTSVoice     string
	TTSSpeed     float64
	WhisperModel string

	SampleRateHz  int
	HistoryWindow int

	// Optional Bedrock fallback provider.
	BedrockModelID string
	AWSRegion      string
}

// ErrMissingAPIKey is the fatal startup condition: without the OpenAI
// credential no component can be constructed.
var ErrMissingAPIKey = errors.New("config: OPENAI_API_KEY environment variable not set")

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		ChatModel:      getEnv("CHAT_MODEL", "gpt-4o-mini"),
		DetectionModel: getEnv("DETECTION_MODEL", "gpt-4o-mini"),
		EnhanceModel:   getEnv("ENHANCE_MODEL", "gpt-4o-mini"),
		TTSModel:       getEnv("TTS_MODEL", "tts-1-hd"),
		TTSVoice:       getEnv("TTS_VOICE", "nova"),
		TTSSpeed:       getEnvAsFloat("TTS_SPEED", 0.9),
		WhisperModel:   getEnv("WHISPER_MODEL", "whisper-1"),
		SampleRateHz:   getEnvAsInt("SAMPLE_RATE_HZ", 16000),
		HistoryWindow:  getEnvAsInt("HISTORY_WINDOW", 10),
		BedrockModelID: getEnv("BEDROCK_MODEL_ID", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
	}
}

// Validate checks the required credential. Called before any component is
// constructed; a failure here must abort startup.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}
