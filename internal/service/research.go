package service

import (
	"context"
	"fmt"
	"strings"

	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"go.uber.org/zap"
)

const (
	researchTemperature = 0.6
	researchMaxTokens   = 1200
)

// researchEmphasis holds the per-tier instruction fragment embedded in the
// research prompt.
var researchEmphasis = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "Focus on clear definitions, simple analogies, and the core facts a beginner must know.",
	domain.DifficultyMedium: "Focus on applications, comparisons between related concepts, and practical reasoning.",
	domain.DifficultyHard:   "Focus on edge cases, optimization trade-offs, and synthesis across related concepts.",
}

// Researcher produces a grounding passage for a topic by querying the
// completion service. It never fails: when the service is unavailable the
// passage degrades to a deterministic placeholder so downstream synthesis
// always receives non-empty input.
type Researcher struct {
	completer domain.Completer
}

func NewResearcher(completer domain.Completer) *Researcher {
	return &Researcher{completer: completer}
}

// Research returns a 400-800 word explanatory passage for the topic,
// tailored to the difficulty tier.
func (r *Researcher) Research(ctx context.Context, topic domain.Topic, difficulty domain.Difficulty) string {
	emphasis, ok := researchEmphasis[difficulty]
	if !ok {
		emphasis = researchEmphasis[domain.DifficultyMedium]
	}

	prompt := fmt.Sprintf(`You are a subject-matter expert preparing study material.
Write a structured explanatory passage of 400-800 words about the topic: "%s".

%s

Organize the passage into short paragraphs covering: what it is, why it matters,
how it works, and common misconceptions. Respond with the passage text only.`,
		topic.Label, emphasis)

	response, err := r.completer.Complete(ctx, prompt, researchMaxTokens, researchTemperature)
	if err != nil || strings.TrimSpace(response) == "" {
		logger.Get().Warn("Research stage falling back to placeholder passage",
			zap.String("topic", topic.Label),
			zap.Error(err))
		return fallbackPassage(topic)
	}

	return strings.TrimSpace(response)
}

// fallbackPassage is the deterministic one-sentence substitute used when the
// completion service fails or returns nothing.
func fallbackPassage(topic domain.Topic) string {
	return fmt.Sprintf("%s is a key concept from the study material; review its definition, purpose, and how it relates to the surrounding content.", topic.Label)
}
