package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"studyforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResearch_ReturnsPassage(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, researchMaxTokens, researchTemperature).
		Return("Photosynthesis converts light energy into chemical energy stored in glucose.", nil)

	r := NewResearcher(completer)
	topic := domain.Topic{Label: "Photosynthesis"}

	passage := r.Research(context.Background(), topic, domain.DifficultyMedium)

	assert.Contains(t, passage, "Photosynthesis converts")
	completer.AssertExpectations(t)
}

func TestResearch_FallbackOnError(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	r := NewResearcher(completer)
	topic := domain.Topic{Label: "Osmosis"}

	passage := r.Research(context.Background(), topic, domain.DifficultyEasy)

	assert.NotEmpty(t, passage)
	assert.Contains(t, passage, "Osmosis")
}

func TestResearch_FallbackOnEmptyResponse(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("   \n ", nil)

	r := NewResearcher(completer)
	topic := domain.Topic{Label: "Diffusion"}

	passage := r.Research(context.Background(), topic, domain.DifficultyHard)

	assert.Equal(t, fallbackPassage(topic), passage)
}

func TestResearch_PromptCarriesDifficultyEmphasis(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Cell Membrane") &&
			strings.Contains(prompt, researchEmphasis[domain.DifficultyHard])
	}), mock.Anything, mock.Anything).Return("A passage.", nil)

	r := NewResearcher(completer)
	r.Research(context.Background(), domain.Topic{Label: "Cell Membrane"}, domain.DifficultyHard)

	completer.AssertExpectations(t)
}
