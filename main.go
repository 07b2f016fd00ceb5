package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okranta/property-brief/config"
	"github.com/okranta/property-brief/internal/brief"
	"github.com/okranta/property-brief/internal/llm"
)

const logFileName = "property-brief.log"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Try to load existing .env file
	config.LoadEnvFile()

	// Check if required config is missing
	if missing := checkRequiredConfig(); len(missing) > 0 {
		if isInteractiveTerminal() {
			// Interactive terminal - run setup wizard
			if !runSetupWizard() {
				os.Exit(1)
			}
		} else {
			// Non-interactive (CI, cron, etc.) - fail with clear error
			fatal("missing required config: %s", strings.Join(missing, ", "))
		}
	}

	// Log to both stderr and file
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fatal("failed to open log file: %v", err)
	}
	defer logFile.Close()

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	fileWriter := zerolog.ConsoleWriter{Out: logFile, NoColor: true}
	log.Logger = log.Output(io.MultiWriter(consoleWriter, fileWriter))

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	completer, err := newCompleter(ctx)
	if err != nil {
		fatal("failed to initialize completion client: %v", err)
	}

	generator := brief.NewGenerator(completer)

	images := []brief.ImageInput{
		{
			ImageID:      "img_1",
			URL:          "https://example.com/living.jpg",
			RoomTypeHint: strPtr("living_room"),
		},
		{
			ImageID:      "img_2",
			URL:          "https://example.com/kitchen.jpg",
			RoomTypeHint: strPtr("kitchen"),
		},
	}
	style := "Modern Neutral"
	listingDescription := "Bright open layout, renovated kitchen, large windows, good natural light."
	zipcode := "95112"

	result, err := generator.Generate(ctx, images, style, listingDescription, zipcode)
	if err != nil {
		fatal("failed to generate property brief: %v", err)
	}

	fmt.Println(result.Brief.NarrativeMarkdown)
	fmt.Println("\n---")

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fatal("failed to marshal result: %v", err)
	}
	fmt.Println(string(out))
}

// newCompleter selects the completion provider. OpenAI is the default; set
// BRIEF_LLM=gemini to use Gemini instead.
func newCompleter(ctx context.Context) (llm.Completer, error) {
	if os.Getenv("BRIEF_LLM") == "gemini" {
		return llm.NewGeminiCompleter(ctx)
	}
	return llm.NewOpenAICompleter()
}

// checkRequiredConfig returns the names of required environment variables
// that are not set for the selected provider.
func checkRequiredConfig() []string {
	if os.Getenv("BRIEF_LLM") == "gemini" {
		if os.Getenv("GEMINI_API_KEY") == "" {
			return []string{"GEMINI_API_KEY"}
		}
		return nil
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		return []string{"OPENAI_API_KEY"}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

func fatal(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
	os.Exit(1)
}
