package domain

import "strings"

// Difficulty tunes both research depth and quiz sampling temperature.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a request string onto a difficulty tier.
// Unknown or empty values default to medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// QuizTemperature returns the sampling temperature used for quiz synthesis
// at this difficulty tier.
func (d Difficulty) QuizTemperature() float64 {
	switch d {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 0.8
	default:
		return 0.7
	}
}

// OptionsPerQuestion is the fixed option count every quiz item is
// normalized to.
const OptionsPerQuestion = 4

// Topic is a short label identifying a subject extracted from source text.
// It is the unit of research and generation.
type Topic struct {
	Label   string
	Ordinal int
}

// Key returns the case-insensitive, trimmed form used for deduplication.
func (t Topic) Key() string {
	return strings.ToLower(strings.TrimSpace(t.Label))
}

// QuizItem is a single multiple-choice question. Options always has exactly
// OptionsPerQuestion entries and CorrectAnswer is an index into it.
type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
}

// FlashcardItem is a single two-sided study card. Question and Answer
// mirror Front and Back when the generated output omits them.
type FlashcardItem struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Topic    string `json:"topic"`
}

// TermDefinition is a (term, definition) pair captured from defining
// sentences in source text by the rule-based generator.
type TermDefinition struct {
	Term       string
	Definition string
	Kind       string
}
