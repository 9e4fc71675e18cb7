package speech

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/conversation"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLMClient struct {
	resp     conversation.LLMResponse
	err      error
	requests []conversation.LLMRequest
}

func (s *stubLLMClient) Complete(ctx context.Context, req conversation.LLMRequest) (conversation.LLMResponse, error) {
	s.requests = append(s.requests, req)
	return s.resp, s.err
}

func quietLogger() *logging.Logger {
	return logging.NewWithWriter(&strings.Builder{}, "error")
}

func tamilPhrase() Phrase {
	return Phrase{
		Text:        "Office-la meeting irukku, but naan late-aa vandhuruven. Sorry",
		Primary:     language.Tamil,
		MixRatio:    0.6,
		Description: "Tamil-English work context",
	}
}

func TestEnhanceSuccess(t *testing.T) {
	client := &stubLLMClient{
		resp: conversation.LLMResponse{Text: "Office-la meeting irukku (ih-ruk-koo), but naan late-aa vandhuruven. Sorry"},
	}
	enhancer := NewEnhancer(client, quietLogger(), nil)

	got := enhancer.Enhance(context.Background(), tamilPhrase())

	assert.Contains(t, got, "ih-ruk-koo")
}

func TestEnhanceStripsBoilerplate(t *testing.T) {
	client := &stubLLMClient{
		resp: conversation.LLMResponse{Text: "Enhanced text for TTS:\n\"Vanakkam anna! How are you?\"\n"},
	}
	enhancer := NewEnhancer(client, quietLogger(), nil)

	got := enhancer.Enhance(context.Background(), tamilPhrase())

	assert.Equal(t, "Vanakkam anna! How are you?", got)
}

func TestEnhanceFallsBackOnError(t *testing.T) {
	client := &stubLLMClient{err: errors.New("rate limited")}
	enhancer := NewEnhancer(client, quietLogger(), nil)

	phrase := tamilPhrase()
	got := enhancer.Enhance(context.Background(), phrase)

	assert.Equal(t, phrase.Text, got, "fallback must return the original text unchanged")
}

func TestEnhanceFallsBackOnEmptyResponse(t *testing.T) {
	client := &stubLLMClient{resp: conversation.LLMResponse{Text: "  \"\"  "}}
	enhancer := NewEnhancer(client, quietLogger(), nil)

	phrase := tamilPhrase()
	got := enhancer.Enhance(context.Background(), phrase)

	assert.Equal(t, phrase.Text, got)
}

func TestEnhanceRequestShape(t *testing.T) {
	client := &stubLLMClient{resp: conversation.LLMResponse{Text: "ok"}}
	enhancer := NewEnhancer(client, quietLogger(), nil)

	enhancer.Enhance(context.Background(), tamilPhrase())

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, float32(0.3), req.Temperature)
	assert.Equal(t, int32(200), req.MaxTokens)
	require.Len(t, req.System, 1)
	assert.Contains(t, req.System[0], "linguistic expert")
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "code-mixed tamil text")
	assert.Contains(t, req.Messages[0].Content, tamilPhrase().Text)
}
