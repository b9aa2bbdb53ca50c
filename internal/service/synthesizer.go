package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"go.uber.org/zap"
)

const (
	flashcardTemperature  = 0.7
	synthesisTokensPerItem = 260
	synthesisTokenFloor    = 512
)

// Synthesizer turns a research passage into a fixed-size batch of structured
// study items via prompted generation. Model output is treated as untrusted
// text: it is parsed, validated, and repaired, and a total failure is
// replaced by exactly one deterministic fallback item so every topic
// contributes at least one item.
type Synthesizer struct {
	completer domain.Completer
}

func NewSynthesizer(completer domain.Completer) *Synthesizer {
	return &Synthesizer{completer: completer}
}

// rawQuizItem mirrors the structure requested from the model. CorrectAnswer
// is left loosely typed because models return either an index or the literal
// option text.
type rawQuizItem struct {
	Question      string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer interface{} `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
}

type rawFlashcard struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SynthesizeQuizItems generates count multiple-choice questions grounded in
// the passage. The returned slice has at most count items; a topic whose
// response is unusable yields exactly one fallback item.
func (s *Synthesizer) SynthesizeQuizItems(ctx context.Context, topic domain.Topic, passage string, count int, difficulty domain.Difficulty) []domain.QuizItem {
	prompt := fmt.Sprintf(`You are an expert quiz author. Using ONLY the passage below, create exactly %d multiple-choice questions at %s difficulty.

Passage about "%s":
%s

Respond with a single JSON array of exactly %d objects. Each object must have:
1. "question": the question text.
2. "options": an array of exactly 4 answer strings.
3. "correct_answer": the integer index (0-3) of the correct option.
4. "explanation": one or two sentences explaining the correct answer.

Return the JSON array only, with no surrounding prose.`,
		count, difficulty, topic.Label, passage, count)

	response, err := s.completer.Complete(ctx, prompt, synthesisBudget(count), difficulty.QuizTemperature())
	if err != nil {
		logger.Get().Warn("Quiz synthesis call failed, using fallback item",
			zap.String("topic", topic.Label),
			zap.Error(err))
		return []domain.QuizItem{fallbackQuizItem(topic)}
	}

	payload, ok := extractJSONArray(response)
	if !ok {
		logger.Get().Warn("Quiz synthesis returned no parseable JSON array, using fallback item",
			zap.String("topic", topic.Label))
		return []domain.QuizItem{fallbackQuizItem(topic)}
	}

	var raw []rawQuizItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logger.Get().Warn("Quiz synthesis payload failed to unmarshal, using fallback item",
			zap.String("topic", topic.Label),
			zap.Error(err))
		return []domain.QuizItem{fallbackQuizItem(topic)}
	}

	var items []domain.QuizItem
	for _, r := range raw {
		item, ok := validateQuizItem(r, topic)
		if !ok {
			continue
		}
		items = append(items, item)
		if len(items) >= count {
			break
		}
	}

	if len(items) == 0 {
		return []domain.QuizItem{fallbackQuizItem(topic)}
	}
	return items
}

// validateQuizItem applies the repair-or-discard rules: options are padded
// or truncated to exactly four (repair), while a correct_answer that cannot
// be resolved to an integer in [0,3] discards the item (strict gate).
func validateQuizItem(r rawQuizItem, topic domain.Topic) (domain.QuizItem, bool) {
	if strings.TrimSpace(r.Question) == "" || len(r.Options) == 0 || r.CorrectAnswer == nil {
		return domain.QuizItem{}, false
	}

	options := normalizeOptions(r.Options)

	idx, ok := resolveCorrectAnswer(r.CorrectAnswer, options)
	if !ok {
		return domain.QuizItem{}, false
	}

	explanation := strings.TrimSpace(r.Explanation)
	if explanation == "" {
		explanation = fmt.Sprintf("This follows from the study material on %s.", topic.Label)
	}

	return domain.QuizItem{
		Question:      strings.TrimSpace(r.Question),
		Options:       options,
		CorrectAnswer: idx,
		Explanation:   explanation,
		Topic:         topic.Label,
	}, true
}

// normalizeOptions forces the options list to exactly OptionsPerQuestion
// entries, truncating overlong lists and padding short ones with synthetic
// placeholders.
func normalizeOptions(options []string) []string {
	if len(options) > domain.OptionsPerQuestion {
		options = options[:domain.OptionsPerQuestion]
	}
	normalized := make([]string, 0, domain.OptionsPerQuestion)
	normalized = append(normalized, options...)
	for len(normalized) < domain.OptionsPerQuestion {
		normalized = append(normalized, fmt.Sprintf("Additional option %d", len(normalized)+1))
	}
	return normalized
}

// resolveCorrectAnswer converts the loosely typed correct_answer field into
// an option index. Numeric answers must already be integral and in range;
// a literal answer text is looked up among the options and defaults to 0
// when absent.
func resolveCorrectAnswer(v interface{}, options []string) (int, bool) {
	switch answer := v.(type) {
	case float64:
		idx := int(answer)
		if float64(idx) != answer || idx < 0 || idx >= domain.OptionsPerQuestion {
			return 0, false
		}
		return idx, true
	case string:
		for i, opt := range options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(answer)) {
				return i, true
			}
		}
		return 0, true
	default:
		return 0, false
	}
}

// SynthesizeFlashcards generates count flashcards grounded in the passage.
// The validity gate only requires front and back; question/answer mirror
// them when absent from the generated output.
func (s *Synthesizer) SynthesizeFlashcards(ctx context.Context, topic domain.Topic, passage string, count int) []domain.FlashcardItem {
	prompt := fmt.Sprintf(`You are an expert flashcard author. Using ONLY the passage below, create exactly %d study flashcards.

Passage about "%s":
%s

Respond with a single JSON array of exactly %d objects. Each object must have:
1. "front": the prompt side of the card.
2. "back": the answer side of the card.
3. "question": a question form of the front (optional).
4. "answer": the answer to that question (optional).

Return the JSON array only, with no surrounding prose.`,
		count, topic.Label, passage, count)

	response, err := s.completer.Complete(ctx, prompt, synthesisBudget(count), flashcardTemperature)
	if err != nil {
		logger.Get().Warn("Flashcard synthesis call failed, using fallback item",
			zap.String("topic", topic.Label),
			zap.Error(err))
		return []domain.FlashcardItem{fallbackFlashcard(topic)}
	}

	payload, ok := extractJSONArray(response)
	if !ok {
		logger.Get().Warn("Flashcard synthesis returned no parseable JSON array, using fallback item",
			zap.String("topic", topic.Label))
		return []domain.FlashcardItem{fallbackFlashcard(topic)}
	}

	var raw []rawFlashcard
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logger.Get().Warn("Flashcard synthesis payload failed to unmarshal, using fallback item",
			zap.String("topic", topic.Label),
			zap.Error(err))
		return []domain.FlashcardItem{fallbackFlashcard(topic)}
	}

	var cards []domain.FlashcardItem
	for _, r := range raw {
		front := strings.TrimSpace(r.Front)
		back := strings.TrimSpace(r.Back)
		if front == "" || back == "" {
			continue
		}
		question := strings.TrimSpace(r.Question)
		if question == "" {
			question = front
		}
		answer := strings.TrimSpace(r.Answer)
		if answer == "" {
			answer = back
		}
		cards = append(cards, domain.FlashcardItem{
			Front:    front,
			Back:     back,
			Question: question,
			Answer:   answer,
			Topic:    topic.Label,
		})
		if len(cards) >= count {
			break
		}
	}

	if len(cards) == 0 {
		return []domain.FlashcardItem{fallbackFlashcard(topic)}
	}
	return cards
}

func synthesisBudget(count int) int {
	budget := count * synthesisTokensPerItem
	if budget < synthesisTokenFloor {
		budget = synthesisTokenFloor
	}
	return budget
}

// extractJSONArray locates the first well-formed top-level JSON array in a
// model response. Markdown fences and reasoning tags are stripped first;
// bracket matching is string-aware so option text containing brackets does
// not truncate the payload.
func extractJSONArray(response string) (string, bool) {
	cleaned := strings.TrimSpace(response)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 {
			cleaned = cleaned[thinkEnd+len("</think>"):]
		}
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		ch := cleaned[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return cleaned[start : i+1], true
			}
		}
	}
	return "", false
}

// fallbackQuizItem is the deterministic item substituted when quiz synthesis
// fails entirely for a topic.
func fallbackQuizItem(topic domain.Topic) domain.QuizItem {
	return domain.QuizItem{
		Question: fmt.Sprintf("Which of the following best relates to %s?", topic.Label),
		Options: []string{
			fmt.Sprintf("%s is a concept covered in the study material", topic.Label),
			"It is not mentioned in the material",
			"It only appears in the appendix",
			"None of the above",
		},
		CorrectAnswer: 0,
		Explanation:   fmt.Sprintf("The study material covers %s; review the relevant section.", topic.Label),
		Topic:         topic.Label,
	}
}

// fallbackFlashcard is the deterministic card substituted when flashcard
// synthesis fails entirely for a topic.
func fallbackFlashcard(topic domain.Topic) domain.FlashcardItem {
	front := fmt.Sprintf("What is %s?", topic.Label)
	back := fmt.Sprintf("Review the study material for the definition and role of %s.", topic.Label)
	return domain.FlashcardItem{
		Front:    front,
		Back:     back,
		Question: front,
		Answer:   back,
		Topic:    topic.Label,
	}
}
