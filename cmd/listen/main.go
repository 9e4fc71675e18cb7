package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/app/bootstrap"
	appconfig "github.com/Giri-dharan-14/POC-Multilingual/internal/config"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/conversation"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/observability/metrics"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/speech"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		fmt.Println("Error:", err)
		fmt.Println("Please create a .env file with your OpenAI API key:")
		fmt.Println("OPENAI_API_KEY=your_api_key_here")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipelineMetrics := metrics.NewPipelineMetrics(nil)

	detectionClient, err := bootstrap.NewLLMClient(ctx, cfg, cfg.DetectionModel, logger)
	if err != nil {
		logger.Error("failed to build detection client", "error", err)
		os.Exit(1)
	}
	detector := conversation.NewDetector(detectionClient, logger, pipelineMetrics)

	transcriber, err := speech.NewTranscriber(cfg.OpenAIAPIKey, cfg.WhisperModel)
	if err != nil {
		logger.Error("failed to build transcriber", "error", err)
		os.Exit(1)
	}

	fmt.Println("Spoken Language Detection")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for ctx.Err() == nil {
		fmt.Println("\n" + strings.Repeat("-", 50))
		fmt.Println("Options:")
		fmt.Println("1. Record and detect language")
		fmt.Println("2. Exit")

		fmt.Print("\nEnter your choice (1-2): ")
		if !scanner.Scan() {
			break
		}
		choice := strings.TrimSpace(scanner.Text())

		switch choice {
		case "1":
			// Errors in one round keep the loop alive.
			runDetection(ctx, scanner, cfg, detector, transcriber)
		case "2":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please enter 1 or 2.")
		}
	}
}

func runDetection(ctx context.Context, scanner *bufio.Scanner, cfg *appconfig.Config, detector *conversation.Detector, transcriber *speech.Transcriber) {
	recorder, err := speech.NewRecorder(cfg.SampleRateHz)
	if err != nil {
		fmt.Println("Recording failed:", err)
		return
	}

	recorder.Start()
	fmt.Println("Recording... Press ENTER to stop")
	scanner.Scan()

	fmt.Println("Stopping recording...")
	pcm := recorder.Stop()
	if len(pcm) == 0 {
		fmt.Println("Nothing recorded")
		return
	}

	wav := speech.EncodeWAV(pcm, recorder.SampleRate(), 1)

	fmt.Println("Transcribing audio...")
	transcript, err := transcriber.Transcribe(ctx, wav)
	if err != nil {
		fmt.Println("Transcription failed:", err)
		return
	}

	fmt.Println("Analyzing language...")
	det := detector.Detect(ctx, transcript.Text)

	printResults(transcript, det)
}

func printResults(transcript speech.Transcript, det language.Detection) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("LANGUAGE DETECTION RESULTS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Transcription:", transcript.Text)
	fmt.Println("Whisper language:", transcript.Language)
	fmt.Println("Detected Language:", det.Primary.Display())
	if det.Secondary != language.None {
		fmt.Println("Secondary Language:", det.Secondary.Display())
	}
	if det.CodeMixed {
		fmt.Printf("Code-Mixed: yes (%.0f%% secondary)\n", det.MixRatio*100)
	} else {
		fmt.Println("Code-Mixed: no")
	}
	fmt.Printf("Confidence: %.0f%%\n", det.Confidence*100)
	fmt.Println(strings.Repeat("=", 60))
}
