// Package bootstrap assembles provider clients from configuration. It is
// the only place that knows which concrete providers exist.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/config"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/conversation"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
)

// NewLLMClient builds the inference client for one capability: OpenAI as
// the primary provider, wrapped with Gemini or Bedrock as the fallback
// when either is configured. An unconfigured fallback is not an error; the
// client simply has no second provider.
func NewLLMClient(ctx context.Context, cfg *config.Config, model string, logger *logging.Logger) (conversation.LLMClient, error) {
	primary, err := conversation.NewOpenAILLMClient(cfg.OpenAIAPIKey, model)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: openai client: %w", err)
	}

	fallback, err := newFallbackProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if fallback == nil {
		logger.Info("no fallback LLM provider configured")
	}

	return conversation.NewFallbackLLMClient(primary, fallback, logger), nil
}

func newFallbackProvider(ctx context.Context, cfg *config.Config, logger *logging.Logger) (conversation.LLMClient, error) {
	if cfg.GeminiAPIKey != "" {
		client, err := conversation.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("bootstrap: gemini fallback client: %w", err)
		}
		logger.Info("gemini fallback provider configured")
		return client, nil
	}

	if cfg.BedrockModelID != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("bootstrap: loading aws config: %w", err)
		}
		client, err := conversation.NewBedrockLLMClient(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: bedrock fallback client: %w", err)
		}
		logger.Info("bedrock fallback provider configured", "model_id", cfg.BedrockModelID)
		return client, nil
	}

	return nil, nil
}
