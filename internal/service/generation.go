package service

import (
	"context"
	"math/rand"
	"time"

	"studyforge/internal/config"
	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"go.uber.org/zap"
)

// Engine modes. Fast is fully rule-based with no external calls; LLM runs
// the research/synthesis pipeline and degrades to deterministic fallbacks
// stage by stage.
const (
	EngineLLM  = "llm"
	EngineFast = "fast"
)

// GenerationService is the entry point of the document-to-artifact
// pipeline. Generation never fails: a batch is always non-empty, though it
// may be shorter than requested when topics under-produce.
type GenerationService interface {
	GenerateQuiz(ctx context.Context, text string, count int, difficulty domain.Difficulty) []domain.QuizItem
	GenerateFlashcards(ctx context.Context, text string, count int) []domain.FlashcardItem
}

// generationService holds per-construction configuration; it has no mutable
// state and is safe for concurrent requests.
type generationService struct {
	researcher *Researcher
	synth      *Synthesizer
	engine     string
	delay      time.Duration
	newRand    func() *rand.Rand
}

// NewGenerationService wires the pipeline. When completer is nil the engine
// falls back to fast mode regardless of configuration.
func NewGenerationService(completer domain.Completer, genCfg config.GenerationConfig) GenerationService {
	engine := genCfg.Engine
	if completer == nil {
		engine = EngineFast
	}
	return &generationService{
		researcher: NewResearcher(completer),
		synth:      NewSynthesizer(completer),
		engine:     engine,
		delay:      genCfg.InterCallDelay,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// newGenerationServiceForTest allows tests to pin the random source and
// remove the inter-call delay.
func newGenerationServiceForTest(completer domain.Completer, engine string, newRand func() *rand.Rand) *generationService {
	return &generationService{
		researcher: NewResearcher(completer),
		synth:      NewSynthesizer(completer),
		engine:     engine,
		delay:      0,
		newRand:    newRand,
	}
}

// GenerateQuiz produces at most count quiz items from the text. Topics are
// processed strictly in extraction order; the first count%topics topics
// receive one extra item, and a fixed delay separates external calls to
// respect provider rate limits.
func (s *generationService) GenerateQuiz(ctx context.Context, text string, count int, difficulty domain.Difficulty) []domain.QuizItem {
	if count < 1 {
		count = 1
	}
	text = NormalizeText(text)

	if s.engine == EngineFast {
		return FastQuiz(text, count, s.newRand())
	}

	topics := ExtractTopics(text)
	if len(topics) == 0 {
		logger.Get().Warn("No topics extracted, returning sentinel quiz item")
		return []domain.QuizItem{sentinelQuizItem()}
	}

	base := count / len(topics)
	if base < 1 {
		base = 1
	}
	remainder := count % len(topics)

	var items []domain.QuizItem
	for i, topic := range topics {
		allotment := base
		if i < remainder {
			allotment++
		}

		passage := s.researcher.Research(ctx, topic, difficulty)
		items = append(items, s.synth.SynthesizeQuizItems(ctx, topic, passage, allotment, difficulty)...)

		if len(items) >= count {
			break
		}
		if s.delay > 0 && i < len(topics)-1 {
			time.Sleep(s.delay)
		}
	}

	if len(items) > count {
		items = items[:count]
	}
	if len(items) < count {
		// Accepted limitation: topics can under-produce when external
		// failures exceed the one-fallback-item-per-topic guarantee.
		logger.Get().Warn("Quiz batch under-produced",
			zap.Int("requested", count),
			zap.Int("produced", len(items)))
	}
	return items
}

// GenerateFlashcards produces at most count flashcards from the text.
// Research for flashcards always uses the medium tier; difficulty only
// shapes quiz generation.
func (s *generationService) GenerateFlashcards(ctx context.Context, text string, count int) []domain.FlashcardItem {
	if count < 1 {
		count = 1
	}
	text = NormalizeText(text)

	if s.engine == EngineFast {
		return FastFlashcards(text, count, s.newRand())
	}

	topics := ExtractTopics(text)
	if len(topics) == 0 {
		logger.Get().Warn("No topics extracted, returning sentinel flashcard")
		return []domain.FlashcardItem{sentinelFlashcard()}
	}

	base := count / len(topics)
	if base < 1 {
		base = 1
	}
	remainder := count % len(topics)

	var cards []domain.FlashcardItem
	for i, topic := range topics {
		allotment := base
		if i < remainder {
			allotment++
		}

		passage := s.researcher.Research(ctx, topic, domain.DifficultyMedium)
		cards = append(cards, s.synth.SynthesizeFlashcards(ctx, topic, passage, allotment)...)

		if len(cards) >= count {
			break
		}
		if s.delay > 0 && i < len(topics)-1 {
			time.Sleep(s.delay)
		}
	}

	if len(cards) > count {
		cards = cards[:count]
	}
	if len(cards) < count {
		logger.Get().Warn("Flashcard batch under-produced",
			zap.Int("requested", count),
			zap.Int("produced", len(cards)))
	}
	return cards
}

// sentinelQuizItem is returned when topic extraction finds nothing. The
// batch contract requires a non-empty result, never an error.
func sentinelQuizItem() domain.QuizItem {
	return domain.QuizItem{
		Question: "What does the document discuss?",
		Options: []string{
			"The content requires review",
			"Unable to extract clear information",
			"Text was too short",
			"OCR quality was poor",
		},
		CorrectAnswer: 0,
		Explanation:   "No topics could be extracted from the document.",
		Topic:         "Error",
	}
}

func sentinelFlashcard() domain.FlashcardItem {
	return domain.FlashcardItem{
		Front:    "Study the material",
		Back:     "No topics could be extracted from the document; review it directly for key concepts.",
		Question: "What should you do?",
		Answer:   "Carefully review the text",
		Topic:    "Error",
	}
}
