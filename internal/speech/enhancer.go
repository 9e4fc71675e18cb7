package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/conversation"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/observability/metrics"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
	"go.opentelemetry.io/otel"
)

var enhancerTracer = otel.Tracer("codemix.internal.speech.enhancer")

const enhancementSystemPrompt = "You are a linguistic expert in South Indian languages and code-mixing. Help optimize text for TTS while preserving natural speech patterns."

const enhancementPromptTemplate = `Convert this code-mixed %s text to be more TTS-friendly while preserving the natural code-mixing:

Original: %q

Instructions:
1. Keep the natural code-mixing as is
2. Add phonetic hints for non-English words in parentheses if needed
3. Adjust spelling of regional words to help English TTS pronounce better
4. Keep the conversational tone intact
5. Don't over-modify - maintain authenticity

Enhanced text for TTS:`

// Enhancer rewrites code-mixed text for clearer synthesis. It is strictly
// best-effort: any failure returns the original text unchanged.
type Enhancer struct {
	client  conversation.LLMClient
	logger  *logging.Logger
	metrics *metrics.PipelineMetrics
}

// NewEnhancer creates a pronunciation enhancer over an LLM client.
func NewEnhancer(client conversation.LLMClient, logger *logging.Logger, m *metrics.PipelineMetrics) *Enhancer {
	if client == nil {
		panic("speech: enhancer llm client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Enhancer{client: client, logger: logger, metrics: m}
}

// Enhance returns a TTS-friendly rendering of the phrase text. On any
// failure the original text is returned byte-for-byte, so callers never
// need an error path.
func (e *Enhancer) Enhance(ctx context.Context, phrase Phrase) string {
	ctx, span := enhancerTracer.Start(ctx, "speech.enhance")
	defer span.End()

	resp, err := e.client.Complete(ctx, conversation.LLMRequest{
		System: []string{enhancementSystemPrompt},
		Messages: []conversation.ChatMessage{
			{
				Role:    conversation.ChatRoleUser,
				Content: fmt.Sprintf(enhancementPromptTemplate, phrase.Primary, phrase.Text),
			},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		span.RecordError(err)
		e.logger.Warn("speech enhancement failed, using original text",
			"language", string(phrase.Primary),
			"error", err,
		)
		e.metrics.ObserveEnhancementFallback()
		return phrase.Text
	}

	enhanced := cleanEnhancedText(resp.Text)
	if enhanced == "" {
		e.logger.Warn("speech enhancement returned empty text, using original",
			"language", string(phrase.Primary),
		)
		e.metrics.ObserveEnhancementFallback()
		return phrase.Text
	}
	return enhanced
}

// cleanEnhancedText strips quoting and prompt boilerplate the model tends to
// echo back.
func cleanEnhancedText(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "Enhanced text for TTS:", "")
	return strings.TrimSpace(s)
}
