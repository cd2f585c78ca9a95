// File: cmd/diagnostic/llm_diagnostic.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"lifeboard/internal/services/ai"
)

// Quick connectivity check for the configured completion endpoint, useful
// when the assistant unexpectedly drops into fallback mode.
func main() {
	fmt.Println("Testing completion provider...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		log.Fatal("AI_API_KEY not set in environment")
	}

	config := ai.DefaultConfig()
	config.APIKey = apiKey
	config.BaseURL = os.Getenv("AI_BASE_URL")
	if model := os.Getenv("AI_MODEL"); model != "" {
		config.Model = model
	}

	provider := ai.NewOpenAIProvider(config)
	reply, err := provider.CreateCompletion(context.Background(), ai.CompletionRequest{
		Turns: []ai.Turn{
			{Role: "user", Content: "Reply with the single word: ok"},
		},
		MaxTokens: 10,
	})
	if err != nil {
		log.Fatalf("Completion failed: %v", err)
	}

	fmt.Printf("Response: %s\n", reply)
}
