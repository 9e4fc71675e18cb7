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
	"github.com/Giri-dharan-14/POC-Multilingual/internal/culture"
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

	chatClient, err := bootstrap.NewLLMClient(ctx, cfg, cfg.ChatModel, logger)
	if err != nil {
		logger.Error("failed to build chat client", "error", err)
		os.Exit(1)
	}
	detectionClient, err := bootstrap.NewLLMClient(ctx, cfg, cfg.DetectionModel, logger)
	if err != nil {
		logger.Error("failed to build detection client", "error", err)
		os.Exit(1)
	}

	detector := conversation.NewDetector(detectionClient, logger, pipelineMetrics)
	session := conversation.NewSession(chatClient, detector, culture.NewRegistry(), cfg.HistoryWindow, logger, pipelineMetrics)
	logger.Info("chat session started", "session_id", session.ID())

	fmt.Println("Code-Mixed South Indian Language Chat")
	fmt.Println(strings.Repeat("=", 60))
	printSamplePhrases()
	fmt.Println("\nStart chatting! Type 'quit' to exit, 'samples' to see examples.")
	fmt.Println(strings.Repeat("-", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Bye! Come back soon!")
			return
		case "samples":
			printSamplePhrases()
			continue
		}

		resp := session.Reply(ctx, input)

		printLanguageInfo(resp.Detection)
		fmt.Printf("\nAssistant: %s\n", resp.Text)
		fmt.Printf("(responded in %s, %.2fs)\n", resp.ResponseLanguage.Display(), resp.ProcessingTime.Seconds())
	}
}

func printLanguageInfo(det language.Detection) {
	fmt.Println("Language Analysis:")
	fmt.Printf("  Language: %s", det.Primary.Display())
	if det.Secondary != language.None {
		fmt.Printf(" + %s", det.Secondary.Display())
	}
	fmt.Println()
	if det.CodeMixed {
		fmt.Printf("  Code-mixed: yes (%.0f%% secondary)\n", det.MixRatio*100)
	} else {
		fmt.Println("  Code-mixed: no")
	}
	fmt.Printf("  Confidence: %.0f%%\n", det.Confidence*100)
}

func printSamplePhrases() {
	fmt.Println("\nSample phrases to try:")
	fmt.Println(strings.Repeat("=", 50))
	for _, lang := range language.Regional() {
		fmt.Printf("\n%s-English:\n", lang.Display())
		for i, phrase := range speech.SamplePhrases(lang) {
			fmt.Printf("   %d. %s\n", i+1, phrase.Text)
		}
	}
}
