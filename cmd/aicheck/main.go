// Command aicheck verifies that the configured Gemini key and model can
// answer a trivial prompt.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"resume-maker/internal/config"
	"resume-maker/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	masked := cfg.GeminiAPIKey
	if len(masked) > 4 {
		masked = "****" + masked[len(masked)-4:]
	}
	fmt.Printf("Using key: %s\n", masked)
	fmt.Printf("Using model: %s\n", cfg.GeminiModel)

	client, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	text, err := client.GenerateContent(ctx, "Tell me a fun fact about space.")
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Response: %s\n", text)
}
