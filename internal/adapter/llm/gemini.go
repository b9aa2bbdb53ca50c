package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studyforge/internal/config"
	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// geminiCompleter implements domain.Completer over the Gemini API.
type geminiCompleter struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

func NewGeminiCompleter(ctx context.Context, cfg config.LLMConfig) (domain.Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini provider requires an api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiCompleter{
		client:    client,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
	}, nil
}

func (c *geminiCompleter) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Model handles are cheap; a fresh one per call keeps per-request
	// generation settings from racing.
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(float32(temperature))
	model.SetMaxOutputTokens(int32(maxTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Get().Error("Gemini request failed", zap.Error(err))
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return text, nil
}

func (c *geminiCompleter) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
