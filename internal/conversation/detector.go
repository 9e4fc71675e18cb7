package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/observability/metrics"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var detectorTracer = otel.Tracer("codemix.internal.conversation.detector")

const detectionSystemPrompt = "You are a South Indian language expert. Respond only with valid JSON."

const detectionPromptTemplate = `Analyze the following text for language detection and code-mixing:

Text: %q

Respond with ONLY a JSON object (no other text):
{
    "primary_language": "tamil/telugu/kannada/malayalam/english",
    "secondary_language": "tamil/telugu/kannada/malayalam/english or null",
    "confidence": 0.95,
    "is_code_mixed": true/false,
    "mix_ratio": 0.4,
    "reasoning": "brief explanation"
}

Guidelines:
- primary_language: The dominant language in the text
- secondary_language: The secondary language if code-mixed, null if pure
- confidence: How confident you are (0.0 to 1.0)
- is_code_mixed: true if mixing multiple languages
- mix_ratio: 0.0 = pure primary, 1.0 = pure secondary, 0.5 = equal mix`

// Detector estimates the language mix of an utterance by delegating
// classification to the inference capability.
type Detector struct {
	client  LLMClient
	logger  *logging.Logger
	metrics *metrics.PipelineMetrics
}

// NewDetector creates a language-mix detector. The metrics sink may be nil.
func NewDetector(client LLMClient, logger *logging.Logger, m *metrics.PipelineMetrics) *Detector {
	if client == nil {
		panic("conversation: detector llm client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Detector{client: client, logger: logger, metrics: m}
}

// Detect classifies text against the closed language set. It never fails:
// transport errors, unparseable output, and invariant violations all resolve
// to the default record with a warning. There is no retry.
func (d *Detector) Detect(ctx context.Context, text string) language.Detection {
	ctx, span := detectorTracer.Start(ctx, "conversation.detect")
	defer span.End()

	det, err := d.detect(ctx, text)
	if err != nil {
		span.RecordError(err)
		d.logger.Warn("language detection failed, using default estimate", "error", err)
		d.metrics.ObserveDetectionFallback()
		return language.DefaultDetection()
	}

	span.SetAttributes(
		attribute.String("codemix.primary_language", string(det.Primary)),
		attribute.Bool("codemix.code_mixed", det.CodeMixed),
		attribute.Float64("codemix.confidence", det.Confidence),
	)
	return det
}

func (d *Detector) detect(ctx context.Context, text string) (language.Detection, error) {
	resp, err := d.client.Complete(ctx, LLMRequest{
		System: []string{detectionSystemPrompt},
		Messages: []ChatMessage{
			{Role: ChatRoleUser, Content: fmt.Sprintf(detectionPromptTemplate, text)},
		},
		Temperature: 0.1,
		MaxTokens:   200,
	})
	if err != nil {
		return language.Detection{}, err
	}
	return parseDetection(resp.Text)
}

// parseDetection decodes and validates the model's structured output. Any
// failure past the transport boundary wraps language.ErrDetectionData so
// callers can tell data errors from call failures.
func parseDetection(raw string) (language.Detection, error) {
	content := extractJSONObject(raw)
	if content == "" {
		return language.Detection{}, fmt.Errorf("%w: no JSON object in response", language.ErrDetectionData)
	}

	var decoded struct {
		PrimaryLanguage   string  `json:"primary_language"`
		SecondaryLanguage string  `json:"secondary_language"`
		Confidence        float64 `json:"confidence"`
		IsCodeMixed       bool    `json:"is_code_mixed"`
		MixRatio          float64 `json:"mix_ratio"`
	}
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		return language.Detection{}, fmt.Errorf("%w: %v", language.ErrDetectionData, err)
	}

	primary, ok := language.Parse(decoded.PrimaryLanguage)
	if !ok {
		return language.Detection{}, fmt.Errorf("%w: unknown primary language %q", language.ErrDetectionData, decoded.PrimaryLanguage)
	}

	secondary := language.None
	if s := strings.TrimSpace(decoded.SecondaryLanguage); s != "" && !strings.EqualFold(s, "null") && !strings.EqualFold(s, "none") {
		secondary, ok = language.Parse(s)
		if !ok {
			return language.Detection{}, fmt.Errorf("%w: unknown secondary language %q", language.ErrDetectionData, decoded.SecondaryLanguage)
		}
	}

	det := language.Detection{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: decoded.Confidence,
		CodeMixed:  decoded.IsCodeMixed,
		MixRatio:   decoded.MixRatio,
	}.Normalize()

	if err := det.Validate(); err != nil {
		return language.Detection{}, err
	}
	return det, nil
}

// extractJSONObject pulls the first {...} span out of a response; models
// sometimes wrap the object in prose or code fences.
func extractJSONObject(content string) string {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}
