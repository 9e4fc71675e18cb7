package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Giri-dharan-14/POC-Multilingual/internal/app/bootstrap"
	appconfig "github.com/Giri-dharan-14/POC-Multilingual/internal/config"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/language"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/observability/metrics"
	"github.com/Giri-dharan-14/POC-Multilingual/internal/speech"
	"github.com/Giri-dharan-14/POC-Multilingual/pkg/logging"
)

// comparisonVoices is the subset used by the voice comparison flow.
var comparisonVoices = []string{"alloy", "nova", "shimmer"}

const comparisonSample = "Vanakkam! How are you? Naan nalla irukken, thanks!"

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

	enhanceClient, err := bootstrap.NewLLMClient(ctx, cfg, cfg.EnhanceModel, logger)
	if err != nil {
		logger.Error("failed to build enhancement client", "error", err)
		os.Exit(1)
	}
	enhancer := speech.NewEnhancer(enhanceClient, logger, pipelineMetrics)

	synth, err := speech.NewSynthesizer(cfg.OpenAIAPIKey, cfg.TTSModel, cfg.TTSVoice, cfg.TTSSpeed)
	if err != nil {
		logger.Error("failed to build synthesizer", "error", err)
		os.Exit(1)
	}

	fmt.Println("Code-Mixed South Indian TTS")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for ctx.Err() == nil {
		fmt.Println("\n" + strings.Repeat("-", 50))
		fmt.Println("Language Options:")
		fmt.Println("1. Tamil")
		fmt.Println("2. Telugu")
		fmt.Println("3. Kannada")
		fmt.Println("4. Malayalam")
		fmt.Println("5. Custom text input")
		fmt.Println("6. Voice comparison")
		fmt.Println("7. Exit")

		choice := prompt(scanner, "\nSelect option (1-7): ")

		switch choice {
		case "1", "2", "3", "4":
			lang := language.Regional()[mustAtoi(choice)-1]
			runCatalog(ctx, scanner, lang, enhancer, synth)
		case "5":
			runCustom(ctx, scanner, enhancer, synth)
		case "6":
			runVoiceComparison(ctx, scanner, synth)
		case "7":
			fmt.Println("Goodbye!")
			return
		case "":
			return
		default:
			fmt.Println("Invalid choice. Please enter 1-7.")
		}
	}
}

func runCatalog(ctx context.Context, scanner *bufio.Scanner, lang language.Language, enhancer *speech.Enhancer, synth *speech.Synthesizer) {
	phrases := speech.SamplePhrases(lang)

	fmt.Printf("\nSample %s phrases:\n", lang.Display())
	for i, p := range phrases {
		fmt.Printf("%d. %s\n", i+1, p.Text)
	}

	choice := prompt(scanner, fmt.Sprintf("\nSelect phrase (1-%d): ", len(phrases)))
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(phrases) {
		fmt.Println("Invalid phrase number")
		return
	}

	speakPhrase(ctx, phrases[idx-1], enhancer, synth)
}

func runCustom(ctx context.Context, scanner *bufio.Scanner, enhancer *speech.Enhancer, synth *speech.Synthesizer) {
	fmt.Println("\nCustom Text Input")
	text := prompt(scanner, "Enter your code-mixed text: ")
	if text == "" {
		fmt.Println("No text entered")
		return
	}

	fmt.Println("\nSelect primary language:")
	fmt.Println("1. Tamil  2. Telugu  3. Kannada  4. Malayalam")
	choice := prompt(scanner, "Choice (1-4): ")
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > 4 {
		fmt.Println("Invalid language choice")
		return
	}

	phrase := speech.CustomPhrase(text, language.Regional()[idx-1])
	speakPhrase(ctx, phrase, enhancer, synth)
}

func runVoiceComparison(ctx context.Context, scanner *bufio.Scanner, synth *speech.Synthesizer) {
	fmt.Println("\nVoice Comparison")
	for _, voice := range comparisonVoices {
		fmt.Printf("\nPlaying with %s voice...\n", voice)
		pcm, err := synth.SynthesizeWithVoice(ctx, comparisonSample, voice)
		if err != nil {
			fmt.Println("Synthesis failed:", err)
			continue
		}
		if err := speech.PlayPCM(pcm, speech.SynthesizedSampleRate); err != nil {
			fmt.Println("Playback failed:", err)
			continue
		}
		prompt(scanner, "Press Enter for next voice...")
	}
	fmt.Println("Voice comparison complete!")
}

func speakPhrase(ctx context.Context, phrase speech.Phrase, enhancer *speech.Enhancer, synth *speech.Synthesizer) {
	printPhraseInfo(phrase)

	fmt.Println("Generating speech...")
	text := enhancer.Enhance(ctx, phrase)
	if text != phrase.Text {
		fmt.Println("Enhanced text:", text)
	}

	pcm, err := synth.Synthesize(ctx, text)
	if err != nil {
		fmt.Println("Speech generation failed:", err)
		return
	}

	fmt.Println("Playing audio...")
	if err := speech.PlayPCM(pcm, speech.SynthesizedSampleRate); err != nil {
		fmt.Println("Audio playback failed:", err)
		return
	}
	fmt.Println("Playback complete!")
}

func printPhraseInfo(phrase speech.Phrase) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("Text:", phrase.Text)
	fmt.Println("Primary Language:", phrase.Primary.Display())
	fmt.Printf("Mix Ratio: %.0f%% English mixing\n", phrase.MixRatio*100)
	fmt.Println("Description:", phrase.Description)
	fmt.Println(strings.Repeat("=", 60))
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
