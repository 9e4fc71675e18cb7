package speech

import (
	"encoding/binary"
	"fmt"

	"github.com/jfreymuth/pulse"
)

// PlayPCM plays raw mono s16le PCM through the default Pulse sink and
// blocks until playback drains.
func PlayPCM(pcm []byte, sampleRate int) error {
	if len(pcm) == 0 {
		return nil
	}
	samples := decodeSamples(pcm)

	client, err := pulse.NewClient(
		pulse.ClientApplicationName("codemix"),
		pulse.ClientApplicationIconName("audio-speakers"),
	)
	if err != nil {
		return fmt.Errorf("speech: connect pulse server: %w", err)
	}
	defer client.Close()

	cursor := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if cursor >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[cursor:])
		cursor += n
		if cursor >= len(samples) {
			return n, pulse.EndOfData
		}
		return n, nil
	})

	stream, err := client.NewPlayback(
		reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackMediaName("codemix speech"),
	)
	if err != nil {
		return fmt.Errorf("speech: create pulse playback stream: %w", err)
	}
	defer stream.Close()

	stream.Start()
	stream.Drain()
	if err := stream.Error(); err != nil {
		return fmt.Errorf("speech: playback failed: %w", err)
	}
	return nil
}

// decodeSamples converts little-endian byte pairs to int16 samples. A
// trailing odd byte is dropped.
func decodeSamples(pcm []byte) []int16 {
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	return samples
}
