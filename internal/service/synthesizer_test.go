package service

import (
	"context"
	"errors"
	"testing"

	"studyforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testTopic = domain.Topic{Label: "Photosynthesis"}

func quizJSON() string {
	return `[
		{"question": "What does photosynthesis produce?",
		 "options": ["Glucose", "Iron", "Salt", "Plastic"],
		 "correct_answer": 0,
		 "explanation": "Light energy is converted into glucose."}
	]`
}

func TestSynthesizeQuizItems_ParsesValidResponse(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(quizJSON(), nil)

	s := NewSynthesizer(completer)
	items := s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 1, domain.DifficultyMedium)

	assert.Len(t, items, 1)
	assert.Equal(t, "What does photosynthesis produce?", items[0].Question)
	assert.Equal(t, 0, items[0].CorrectAnswer)
	assert.Equal(t, "Photosynthesis", items[0].Topic)
}

func TestSynthesizeQuizItems_UsesDifficultyTemperature(t *testing.T) {
	for _, tc := range []struct {
		difficulty domain.Difficulty
		temp       float64
	}{
		{domain.DifficultyEasy, 0.5},
		{domain.DifficultyMedium, 0.7},
		{domain.DifficultyHard, 0.8},
	} {
		completer := new(MockCompleter)
		completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, tc.temp).
			Return(quizJSON(), nil)

		s := NewSynthesizer(completer)
		s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 1, tc.difficulty)
		completer.AssertExpectations(t)
	}
}

func TestSynthesizeQuizItems_FallbackOnCallError(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("timeout"))

	s := NewSynthesizer(completer)
	items := s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 5, domain.DifficultyMedium)

	// Total failure yields exactly one fallback item, never zero or count.
	assert.Len(t, items, 1)
	assert.Equal(t, "Photosynthesis", items[0].Topic)
	assert.Len(t, items[0].Options, domain.OptionsPerQuestion)
	assert.Equal(t, 0, items[0].CorrectAnswer)
}

func TestSynthesizeQuizItems_FallbackOnMalformedJSON(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("I could not produce the requested output, sorry!", nil)

	s := NewSynthesizer(completer)
	items := s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 3, domain.DifficultyMedium)

	assert.Len(t, items, 1)
}

func TestSynthesizeQuizItems_StripsCodeFencesAndThinkBlocks(t *testing.T) {
	response := "<think>Let me craft a question about this.</think>\n```json\n" + quizJSON() + "\n```"
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(response, nil)

	s := NewSynthesizer(completer)
	items := s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 1, domain.DifficultyMedium)

	assert.Len(t, items, 1)
	assert.Equal(t, "Glucose", items[0].Options[0])
}

func TestSynthesizeQuizItems_TruncatesToCount(t *testing.T) {
	response := `[
		{"question": "Q1?", "options": ["A","B","C","D"], "correct_answer": 0, "explanation": "E1"},
		{"question": "Q2?", "options": ["A","B","C","D"], "correct_answer": 1, "explanation": "E2"},
		{"question": "Q3?", "options": ["A","B","C","D"], "correct_answer": 2, "explanation": "E3"}
	]`
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(response, nil)

	s := NewSynthesizer(completer)
	items := s.SynthesizeQuizItems(context.Background(), testTopic, "passage", 2, domain.DifficultyMedium)

	assert.Len(t, items, 2)
}

func TestValidateQuizItem_RepairsOptionCount(t *testing.T) {
	// Too few options: padded with placeholders.
	item, ok := validateQuizItem(rawQuizItem{
		Question:      "Q?",
		Options:       []string{"A", "B"},
		CorrectAnswer: float64(1),
		Explanation:   "E",
	}, testTopic)
	assert.True(t, ok)
	assert.Len(t, item.Options, 4)
	assert.Equal(t, "Additional option 3", item.Options[2])
	assert.Equal(t, "Additional option 4", item.Options[3])

	// Too many options: truncated.
	item, ok = validateQuizItem(rawQuizItem{
		Question:      "Q?",
		Options:       []string{"A", "B", "C", "D", "E", "F"},
		CorrectAnswer: float64(0),
	}, testTopic)
	assert.True(t, ok)
	assert.Len(t, item.Options, 4)
}

func TestValidateQuizItem_DiscardRules(t *testing.T) {
	base := rawQuizItem{
		Question: "Q?",
		Options:  []string{"A", "B", "C", "D"},
	}

	// Out-of-range index.
	bad := base
	bad.CorrectAnswer = float64(7)
	_, ok := validateQuizItem(bad, testTopic)
	assert.False(t, ok)

	// Negative index.
	bad.CorrectAnswer = float64(-1)
	_, ok = validateQuizItem(bad, testTopic)
	assert.False(t, ok)

	// Non-integral number.
	bad.CorrectAnswer = 1.5
	_, ok = validateQuizItem(bad, testTopic)
	assert.False(t, ok)

	// Unresolvable type.
	bad.CorrectAnswer = []interface{}{1}
	_, ok = validateQuizItem(bad, testTopic)
	assert.False(t, ok)

	// Missing question text.
	bad = base
	bad.Question = "  "
	bad.CorrectAnswer = float64(0)
	_, ok = validateQuizItem(bad, testTopic)
	assert.False(t, ok)
}

func TestValidateQuizItem_LiteralAnswerText(t *testing.T) {
	item, ok := validateQuizItem(rawQuizItem{
		Question:      "Q?",
		Options:       []string{"Alpha", "Beta", "Gamma", "Delta"},
		CorrectAnswer: "beta",
	}, testTopic)
	assert.True(t, ok)
	assert.Equal(t, 1, item.CorrectAnswer)

	// Literal answer not among the options defaults to index 0.
	item, ok = validateQuizItem(rawQuizItem{
		Question:      "Q?",
		Options:       []string{"Alpha", "Beta", "Gamma", "Delta"},
		CorrectAnswer: "Epsilon",
	}, testTopic)
	assert.True(t, ok)
	assert.Equal(t, 0, item.CorrectAnswer)
}

func TestSynthesizeFlashcards_MirrorsQuestionAnswer(t *testing.T) {
	response := `[
		{"front": "What is chlorophyll?", "back": "The green pigment that absorbs light."},
		{"front": "", "back": "Orphaned back side"},
		{"front": "Front only", "back": ""}
	]`
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, flashcardTemperature).
		Return(response, nil)

	s := NewSynthesizer(completer)
	cards := s.SynthesizeFlashcards(context.Background(), testTopic, "passage", 3)

	// Cards missing either side are dropped; question/answer mirror front/back.
	assert.Len(t, cards, 1)
	assert.Equal(t, "What is chlorophyll?", cards[0].Question)
	assert.Equal(t, "The green pigment that absorbs light.", cards[0].Answer)
}

func TestSynthesizeFlashcards_FallbackOnError(t *testing.T) {
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("unavailable"))

	s := NewSynthesizer(completer)
	cards := s.SynthesizeFlashcards(context.Background(), testTopic, "passage", 4)

	assert.Len(t, cards, 1)
	assert.NotEmpty(t, cards[0].Front)
	assert.NotEmpty(t, cards[0].Back)
}

func TestExtractJSONArray(t *testing.T) {
	payload, ok := extractJSONArray(`prefix [1, 2, 3] suffix`)
	assert.True(t, ok)
	assert.Equal(t, "[1, 2, 3]", payload)

	// Brackets inside strings must not end the array early.
	payload, ok = extractJSONArray(`[{"q": "what is arr[0]?"}]`)
	assert.True(t, ok)
	assert.Equal(t, `[{"q": "what is arr[0]?"}]`, payload)

	_, ok = extractJSONArray("no array here")
	assert.False(t, ok)

	_, ok = extractJSONArray("[1, 2")
	assert.False(t, ok)
}

func TestSynthesisBudget(t *testing.T) {
	assert.Equal(t, 512, synthesisBudget(1))
	assert.Equal(t, 520, synthesisBudget(2))
	assert.Equal(t, 2600, synthesisBudget(10))
}
