package llm

import (
	"context"
	"fmt"

	"studyforge/internal/config"
	"studyforge/internal/domain"
)

// Supported provider names for config.LLM.Provider.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// NewCompleter builds the configured provider. Provider "none" returns a
// nil completer, which forces the rule-based generation engine.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (domain.Completer, error) {
	switch cfg.Provider {
	case ProviderOllama:
		return NewOllamaCompleter(cfg)
	case ProviderOpenAI:
		return NewOpenAICompleter(cfg)
	case ProviderGemini:
		return NewGeminiCompleter(ctx, cfg)
	case ProviderNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
