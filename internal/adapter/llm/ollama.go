package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"studyforge/internal/config"
	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// ollamaCompleter implements domain.Completer against a local Ollama server.
type ollamaCompleter struct {
	llmClient *ollama.LLM
	timeout   time.Duration
}

func NewOllamaCompleter(cfg config.LLMConfig) (domain.Completer, error) {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}
	client, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return &ollamaCompleter{llmClient: client, timeout: cfg.Timeout}, nil
}

func (c *ollamaCompleter) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
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
