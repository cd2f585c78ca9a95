// File: internal/services/assistant/config.go
package assistant

import "fmt"

type Config struct {
	// HistoryWindow is the number of prior messages forwarded to the
	// provider as conversation context. Older history is dropped, never
	// reordered.
	HistoryWindow int

	// MaxTokens is the response token budget passed to the provider.
	MaxTokens int
}

func (c *Config) Validate() error {
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history_window must be positive")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		HistoryWindow: 10,
		MaxTokens:     2000,
	}
}
