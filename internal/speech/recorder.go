package speech

import (
	"fmt"
	"io"
	"sync"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// DefaultRecordSampleRate matches what Whisper expects from speech input.
const DefaultRecordSampleRate = 16000

// Recorder captures mono s16 PCM from the default Pulse source. One
// recorder handles one recording: Start, then Stop to collect the buffer.
type Recorder struct {
	sampleRate int

	client *pulse.Client
	stream *pulse.RecordStream

	mu      sync.Mutex
	pcm     []byte
	stopped bool
}

// NewRecorder connects to the Pulse server and prepares a capture stream on
// the default input source.
func NewRecorder(sampleRate int) (*Recorder, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultRecordSampleRate
	}

	client, err := pulse.NewClient(
		pulse.ClientApplicationName("codemix"),
		pulse.ClientApplicationIconName("audio-input-microphone"),
	)
	if err != nil {
		return nil, fmt.Errorf("speech: connect pulse server: %w", err)
	}

	r := &Recorder{sampleRate: sampleRate, client: client}

	writer := pulse.NewWriter(writerFunc(r.onPCM), pulseproto.FormatInt16LE)
	stream, err := client.NewRecord(
		writer,
		pulse.RecordMono,
		pulse.RecordSampleRate(sampleRate),
		pulse.RecordMediaName("codemix recording"),
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("speech: create pulse record stream: %w", err)
	}
	r.stream = stream

	return r, nil
}

// SampleRate reports the configured capture rate.
func (r *Recorder) SampleRate() int {
	return r.sampleRate
}

// Start begins capturing. PCM accumulates until Stop.
func (r *Recorder) Start() {
	r.stream.Start()
}

// Stop halts capture and returns everything recorded so far as raw mono
// s16le PCM. Safe to call more than once; later calls return nil.
func (r *Recorder) Stop() []byte {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	r.mu.Unlock()

	r.stream.Stop()
	r.stream.Close()
	r.client.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	pcm := r.pcm
	r.pcm = nil
	return pcm
}

// onPCM receives raw frames from the Pulse record stream.
func (r *Recorder) onPCM(buffer []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return 0, io.EOF
	}
	r.pcm = append(r.pcm, buffer...)
	return len(buffer), nil
}

// writerFunc adapts a function to io.Writer for pulse.NewWriter.
type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) {
	return f(b)
}
