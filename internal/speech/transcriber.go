package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type transcriptionCreator interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Transcript is the text recovered from one recording, along with the
// language Whisper believes it heard. Whisper reports a single dominant
// language; code-mix analysis happens downstream on the text.
type Transcript struct {
	Text     string
	Language string
	Duration float64
}

// Transcriber converts WAV recordings to text via the Whisper API.
type Transcriber struct {
	client transcriptionCreator
	model  string
}

// NewTranscriber creates a Whisper-backed transcriber.
func NewTranscriber(apiKey, model string) (*Transcriber, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("speech: openai api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = openai.Whisper1
	}
	return &Transcriber{client: openai.NewClient(apiKey), model: model}, nil
}

// newTranscriberWith injects a transcription API, for tests.
func newTranscriberWith(client transcriptionCreator, model string) *Transcriber {
	return &Transcriber{client: client, model: model}
}

// Transcribe sends a WAV recording to Whisper and returns the transcript.
// The verbose response format carries Whisper's own language guess.
func (t *Transcriber) Transcribe(ctx context.Context, wav []byte) (Transcript, error) {
	if len(wav) == 0 {
		return Transcript{}, errors.New("speech: empty recording")
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: "recording.wav",
		Reader:   bytes.NewReader(wav),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("speech: transcription failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Transcript{}, errors.New("speech: transcription returned no text")
	}

	return Transcript{
		Text:     text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}
