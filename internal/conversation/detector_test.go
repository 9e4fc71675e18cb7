package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDetectorLLMClient scripts one response or error for the detector.
type mockDetectorLLMClient struct {
	response string
	err      error
	requests []LLMRequest
}

func (m *mockDetectorLLMClient) Complete(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return LLMResponse{}, m.err
	}
	return LLMResponse{Text: m.response}, nil
}

func quietLogger() *logging.Logger {
	return logging.NewWithWriter(&strings.Builder{}, "error")
}

func TestDetectorDetect(t *testing.T) {
	tests := []struct {
		name        string
		llmResponse string
		llmErr      error
		want        language.Detection
	}{
		{
			name:        "valid code-mixed tamil",
			llmResponse: `{"primary_language": "tamil", "secondary_language": "english", "confidence": 0.92, "is_code_mixed": true, "mix_ratio": 0.5, "reasoning": "tamil verbs with english nouns"}`,
			want: language.Detection{
				Primary:    language.Tamil,
				Secondary:  language.English,
				Confidence: 0.92,
				CodeMixed:  true,
				MixRatio:   0.5,
			},
		},
		{
			name:        "pure english with null secondary",
			llmResponse: `{"primary_language": "english", "secondary_language": null, "confidence": 0.99, "is_code_mixed": false, "mix_ratio": 0.0}`,
			want: language.Detection{
				Primary:    language.English,
				Confidence: 0.99,
			},
		},
		{
			name:        "json wrapped in prose is still extracted",
			llmResponse: "Here is my analysis:\n```json\n{\"primary_language\": \"telugu\", \"secondary_language\": \"english\", \"confidence\": 0.8, \"is_code_mixed\": true, \"mix_ratio\": 0.4}\n```\nHope that helps!",
			want: language.Detection{
				Primary:    language.Telugu,
				Secondary:  language.English,
				Confidence: 0.8,
				CodeMixed:  true,
				MixRatio:   0.4,
			},
		},
		{
			name:        "non-mixed record with stray secondary is normalized",
			llmResponse: `{"primary_language": "kannada", "secondary_language": "english", "confidence": 0.7, "is_code_mixed": false, "mix_ratio": 0.2}`,
			want: language.Detection{
				Primary:    language.Kannada,
				Confidence: 0.7,
			},
		},
		{
			name:   "transport error falls back to default",
			llmErr: errors.New("connection refused"),
			want:   language.DefaultDetection(),
		},
		{
			name:        "malformed json falls back to default",
			llmResponse: "I could not classify that text.",
			want:        language.DefaultDetection(),
		},
		{
			name:        "truncated json falls back to default",
			llmResponse: `{"primary_language": "tamil", "confidence":`,
			want:        language.DefaultDetection(),
		},
		{
			name:        "unknown primary language falls back to default",
			llmResponse: `{"primary_language": "hindi", "confidence": 0.9, "is_code_mixed": false, "mix_ratio": 0.0}`,
			want:        language.DefaultDetection(),
		},
		{
			name:        "secondary equal to primary falls back to default",
			llmResponse: `{"primary_language": "tamil", "secondary_language": "tamil", "confidence": 0.9, "is_code_mixed": true, "mix_ratio": 0.5}`,
			want:        language.DefaultDetection(),
		},
		{
			name:        "confidence out of range falls back to default",
			llmResponse: `{"primary_language": "tamil", "secondary_language": "english", "confidence": 1.4, "is_code_mixed": true, "mix_ratio": 0.5}`,
			want:        language.DefaultDetection(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockDetectorLLMClient{response: tt.llmResponse, err: tt.llmErr}
			detector := NewDetector(client, quietLogger(), nil)

			got := detector.Detect(context.Background(), "Office-la meeting irukku but I'll be late")
			assert.Equal(t, tt.want, got)
			require.NoError(t, got.Validate())
		})
	}
}

func TestDetectorFallbackIsIdempotent(t *testing.T) {
	client := &mockDetectorLLMClient{err: errors.New("always down")}
	detector := NewDetector(client, quietLogger(), nil)

	first := detector.Detect(context.Background(), "enna da")
	for i := 0; i < 5; i++ {
		got := detector.Detect(context.Background(), "enna da")
		require.Equal(t, first, got)
	}
	assert.Equal(t, language.DefaultDetection(), first)
}

func TestDetectorRequestShape(t *testing.T) {
	client := &mockDetectorLLMClient{response: `{"primary_language": "english", "confidence": 0.9, "is_code_mixed": false, "mix_ratio": 0}`}
	detector := NewDetector(client, quietLogger(), nil)

	detector.Detect(context.Background(), "hello there")

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, float32(0.1), req.Temperature)
	assert.Equal(t, int32(200), req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, `"hello there"`)
	require.Len(t, req.System, 1)
	assert.Contains(t, req.System[0], "South Indian language expert")
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"prefix {\"a\": 1} suffix", `{"a": 1}`},
		{"no braces here", ""},
		{"}{", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractJSONObject(tt.in); got != tt.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
