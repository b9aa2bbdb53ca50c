package llm

import (
	"context"
	"fmt"
	"time"

	"studyforge/internal/config"
	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// openaiCompleter implements domain.Completer over the OpenAI chat API.
type openaiCompleter struct {
	llmClient *openai.LLM
	timeout   time.Duration
}

func NewOpenAICompleter(cfg config.LLMConfig) (domain.Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai provider requires an api key")
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &openaiCompleter{llmClient: client, timeout: cfg.Timeout}, nil
}

func (c *openaiCompleter) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.llmClient.Call(ctx, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		if err == context.DeadlineExceeded {
			logger.Get().Error("LLM request timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		logger.Get().Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	return response, nil
}
