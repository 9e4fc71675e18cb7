package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SynthesizedSampleRate is the fixed rate of PCM audio returned by the
// OpenAI speech endpoint: 24kHz signed 16-bit little-endian mono.
const SynthesizedSampleRate = 24000

// Voices available for synthesis, in menu order.
var Voices = []string{
	string(openai.VoiceAlloy),
	string(openai.VoiceEcho),
	string(openai.VoiceFable),
	string(openai.VoiceOnyx),
	string(openai.VoiceNova),
	string(openai.VoiceShimmer),
}

type speechCreator interface {
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// Synthesizer turns text into raw PCM audio via the OpenAI TTS API.
type Synthesizer struct {
	client speechCreator
	model  openai.SpeechModel
	voice  openai.SpeechVoice
	speed  float64
}

// NewSynthesizer creates a TTS client. Defaults: tts-1-hd, the nova voice,
// and 0.9 speed, which renders code-mixed text a little more clearly.
func NewSynthesizer(apiKey, model, voice string, speed float64) (*Synthesizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("speech: openai api key is required")
	}
	s := &Synthesizer{
		client: openai.NewClient(apiKey),
		model:  openai.SpeechModel(model),
		voice:  openai.SpeechVoice(voice),
		speed:  speed,
	}
	applySynthesizerDefaults(s)
	return s, nil
}

// newSynthesizerWith injects a speech API, for tests.
func newSynthesizerWith(client speechCreator) *Synthesizer {
	s := &Synthesizer{client: client}
	applySynthesizerDefaults(s)
	return s
}

func applySynthesizerDefaults(s *Synthesizer) {
	if s.model == "" {
		s.model = openai.TTSModel1HD
	}
	if s.voice == "" {
		s.voice = openai.VoiceNova
	}
	if s.speed <= 0 {
		s.speed = 0.9
	}
}

// Synthesize renders text with the configured voice.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.SynthesizeWithVoice(ctx, text, string(s.voice))
}

// SynthesizeWithVoice renders text with an explicit voice, used by the voice
// comparison flow. The PCM response format keeps playback free of any codec:
// the bytes go straight to the audio server.
func (s *Synthesizer) SynthesizeWithVoice(ctx context.Context, text, voice string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("speech: nothing to synthesize")
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
		Speed:          s.speed,
	})
	if err != nil {
		return nil, fmt.Errorf("speech: synthesis failed: %w", err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("speech: reading synthesized audio: %w", err)
	}
	if len(pcm) == 0 {
		return nil, errors.New("speech: synthesis returned no audio")
	}
	return pcm, nil
}
