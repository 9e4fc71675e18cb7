package conversation

import (
	"context"
	"time"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/culture"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/observability/metrics"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var sessionTracer = otel.Tracer("codemix.internal.conversation.session")

// ReplyFallbackText is returned verbatim when the generation capability
// fails. Detection results from the same turn are still reported.
const ReplyFallbackText = "Sorry, I'm having trouble right now. Please try again!"

// DefaultHistoryWindow bounds the number of turns sent to the generator.
const DefaultHistoryWindow = 10

// ChatResponse is the result of one conversation turn.
type ChatResponse struct {
	Text             string
	Detection        language.Detection
	ResponseLanguage language.Language
	ProcessingTime   time.Duration
}

// Session holds the ordered dialogue of one conversation and produces
// replies. The full history is unbounded; only a bounded window of recent
// turns is exposed to the generation capability. Not safe for concurrent
// Reply calls.
type Session struct {
	id       string
	client   LLMClient
	detector *Detector
	registry *culture.Registry
	window   int
	logger   *logging.Logger
	metrics  *metrics.PipelineMetrics
	history  []ChatMessage
}

// NewSession creates a conversation session. A non-positive window falls
// back to DefaultHistoryWindow.
func NewSession(client LLMClient, detector *Detector, registry *culture.Registry, window int, logger *logging.Logger, m *metrics.PipelineMetrics) *Session {
	if client == nil {
		panic("conversation: session llm client cannot be nil")
	}
	if detector == nil {
		panic("conversation: session detector cannot be nil")
	}
	if registry == nil {
		registry = culture.NewRegistry()
	}
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{
		id:       uuid.NewString(),
		client:   client,
		detector: detector,
		registry: registry,
		window:   window,
		logger:   logger,
		metrics:  m,
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// History returns a copy of the full dialogue history.
func (s *Session) History() []ChatMessage {
	out := make([]ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Reply runs one conversation turn: detect the language mix, build the
// matching directive, and generate a reply over the recent history window.
//
// The user turn is committed to history before generation. On generation
// failure the assistant turn is not committed, the fixed fallback text is
// returned, and the response language is forced to English; the detection
// record is still the one computed this turn, since detection and generation
// fail independently.
func (s *Session) Reply(ctx context.Context, userInput string) ChatResponse {
	start := time.Now()
	ctx, span := sessionTracer.Start(ctx, "conversation.reply")
	defer span.End()
	span.SetAttributes(attribute.String("codemix.session_id", s.id))

	s.history = append(s.history, ChatMessage{Role: ChatRoleUser, Content: userInput})

	det := s.detector.Detect(ctx, userInput)
	directive := BuildDirective(det, s.registry)

	resp, err := s.client.Complete(ctx, LLMRequest{
		System:      []string{directive},
		Messages:    s.recentWindow(),
		Temperature: 0.7,
		MaxTokens:   300,
	})
	elapsed := time.Since(start)
	s.metrics.ObserveTurnLatency(elapsed.Seconds())

	if err != nil {
		span.RecordError(err)
		s.logger.Warn("response generation failed, using fallback reply",
			"session_id", s.id,
			"error", err,
		)
		s.metrics.ObserveGenerationFailure()
		return ChatResponse{
			Text:             ReplyFallbackText,
			Detection:        det,
			ResponseLanguage: language.English,
			ProcessingTime:   elapsed,
		}
	}

	s.history = append(s.history, ChatMessage{Role: ChatRoleAssistant, Content: resp.Text})

	return ChatResponse{
		Text:             resp.Text,
		Detection:        det,
		ResponseLanguage: det.Primary,
		ProcessingTime:   elapsed,
	}
}

// recentWindow returns the most recent turns, in original order. The stored
// history is never truncated; windowing applies only to what the generator
// sees.
func (s *Session) recentWindow() []ChatMessage {
	if len(s.history) <= s.window {
		return s.history
	}
	return s.history[len(s.history)-s.window:]
}
