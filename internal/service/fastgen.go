package service

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"studyforge/internal/domain"
)

// The fast engine builds study items directly from the text with no
// external calls. Randomness comes from the injected *rand.Rand so tests
// can pin a seed; production callers seed from the clock per invocation.

var (
	sentenceTerminators = regexp.MustCompile(`[.!?]+`)

	// Defining-sentence patterns, applied case-insensitively. Captures are
	// (term, definition).
	definitionPatterns = []struct {
		re   *regexp.Regexp
		kind string
	}{
		{regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})\s+is\s+(.+?)(?:[.;]|$)`), "definition"},
		{regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3})\s+(?:means|refers to|describes)\s+(.+?)(?:[.;]|$)`), "definition"},
		{regexp.MustCompile(`(?i)The\s+([^.;]+?)\s+is\s+(.+?)(?:[.;]|$)`), "concept"},
		{regexp.MustCompile(`(?i)([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3}):\s+(.+?)(?:[.;]|$)`), "description"},
	}

	blankStopWords = map[string]bool{
		"which": true, "where": true, "there": true, "these": true,
		"those": true, "their": true, "would": true, "could": true,
		"should": true, "about": true,
	}

	genericDistractors = []string{
		"Not mentioned in the text",
		"None of the above",
		"Insufficient information",
		"All of the above",
	}
)

// ExtractKeySentences splits text on sentence terminators and keeps
// sentences long enough to carry a fact: at least 30 characters, 5 words,
// and one letter.
func ExtractKeySentences(text string) []string {
	var sentences []string
	for _, sent := range sentenceTerminators.Split(text, -1) {
		sent = strings.TrimSpace(sent)
		if len(sent) >= 30 && len(strings.Fields(sent)) >= 5 && containsAlpha(sent) {
			sentences = append(sentences, sent)
		}
	}
	return sentences
}

// ExtractKeyTerms captures (term, definition) pairs from defining sentences.
// Terms must be 3-49 characters and definitions 11-299 characters.
func ExtractKeyTerms(text string) []domain.TermDefinition {
	var terms []domain.TermDefinition
	for _, p := range definitionPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			term := strings.TrimSpace(m[1])
			definition := strings.TrimSpace(m[2])
			if len(term) > 2 && len(term) < 50 && len(definition) > 10 && len(definition) < 300 {
				terms = append(terms, domain.TermDefinition{
					Term:       term,
					Definition: definition,
					Kind:       p.kind,
				})
			}
		}
	}
	return terms
}

// FastQuiz generates count quiz items from the text using three strategies
// in order: definition-based MCQs, fill-in-the-blank MCQs, and comprehension
// MCQs. A used-content set keeps any source term or sentence from feeding
// two questions.
func FastQuiz(text string, count int, rng *rand.Rand) []domain.QuizItem {
	sentences := ExtractKeySentences(text)
	terms := ExtractKeyTerms(text)

	if len(sentences) == 0 && len(terms) == 0 {
		return []domain.QuizItem{placeholderQuizItem()}
	}

	rng.Shuffle(len(sentences), func(i, j int) { sentences[i], sentences[j] = sentences[j], sentences[i] })
	rng.Shuffle(len(terms), func(i, j int) { terms[i], terms[j] = terms[j], terms[i] })

	var questions []domain.QuizItem
	used := make(map[string]bool)

	// Strategy 1: definition-based questions.
	for _, td := range terms {
		if len(questions) >= count {
			break
		}
		key := strings.ToLower(td.Term)
		if used[key] {
			continue
		}
		used[key] = true

		distractors := sampleOtherTerms(terms, td.Term, rng)
		options := append([]string{td.Term}, distractors...)
		rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
		correctIdx := indexOf(options, td.Term)

		questionText := fmt.Sprintf("What is described as: %q?", td.Definition)
		if len(td.Definition) > 100 {
			questionText = fmt.Sprintf("Which term best describes: %q?", td.Definition[:100]+"...")
		}

		questions = append(questions, domain.QuizItem{
			Question:      questionText,
			Options:       options,
			CorrectAnswer: correctIdx,
			Explanation:   fmt.Sprintf("'%s' is defined as: %s", td.Term, td.Definition),
			Topic:         td.Term,
		})
	}

	// Strategy 2: fill-in-the-blank questions.
	for _, sentence := range sentences {
		if len(questions) >= count {
			break
		}
		key := sentenceKey(sentence)
		if used[key] {
			continue
		}
		used[key] = true

		blankable := contentWords(sentence)
		if len(blankable) == 0 {
			continue
		}
		answer := blankable[rng.Intn(len(blankable))]
		questionText := strings.Replace(sentence, answer, "_____", 1)

		distractors := blankDistractors(sentences, sentence, answer, rng)
		options := append([]string{answer}, distractors...)
		rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
		correctIdx := indexOf(options, answer)

		questions = append(questions, domain.QuizItem{
			Question:      "Fill in the blank: " + questionText,
			Options:       options,
			CorrectAnswer: correctIdx,
			Explanation:   fmt.Sprintf("The correct word is '%s' based on the text.", answer),
			Topic:         "General",
		})
	}

	// Strategy 3: comprehension questions.
	attempts := 0
	for len(questions) < count && len(sentences) > 0 && attempts < 30 {
		attempts++
		sentence := sentences[rng.Intn(len(sentences))]
		key := sentenceKey(sentence)
		if used[key] {
			continue
		}
		used[key] = true

		statement := sentence
		if len(statement) >= 100 {
			statement = statement[:97] + "..."
		}
		questions = append(questions, domain.QuizItem{
			Question: "According to the text, which statement is accurate?",
			Options: []string{
				statement,
				"The text does not discuss this topic",
				"The opposite of this is stated",
				"This information is not provided",
			},
			CorrectAnswer: 0,
			Explanation:   "This statement is directly from the source material.",
			Topic:         "General",
		})
	}

	if len(questions) == 0 {
		questions = append(questions, placeholderQuizItem())
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions
}

// FastFlashcards generates count flashcards from the text: term-definition
// cards first, then sentence-based cards, then generic key-concept cards
// until the count is satisfied or the sentence pool is exhausted.
func FastFlashcards(text string, count int, rng *rand.Rand) []domain.FlashcardItem {
	sentences := ExtractKeySentences(text)
	terms := ExtractKeyTerms(text)

	rng.Shuffle(len(sentences), func(i, j int) { sentences[i], sentences[j] = sentences[j], sentences[i] })
	rng.Shuffle(len(terms), func(i, j int) { terms[i], terms[j] = terms[j], terms[i] })

	var cards []domain.FlashcardItem
	used := make(map[string]bool)

	// Strategy 1: term-definition cards.
	for _, td := range terms {
		if len(cards) >= count {
			break
		}
		key := strings.ToLower(td.Term)
		if used[key] {
			continue
		}
		used[key] = true

		cards = append(cards, domain.FlashcardItem{
			Front:    fmt.Sprintf("What is %s?", td.Term),
			Back:     td.Definition,
			Question: fmt.Sprintf("Define: %s", td.Term),
			Answer:   td.Definition,
			Topic:    td.Term,
		})
	}

	// Strategy 2: sentence-based cards. Long sentences are split in half as
	// completion cards; short ones become whole-sentence recall cards.
	for _, sentence := range sentences {
		if len(cards) >= count {
			break
		}
		key := sentenceKey(sentence)
		if used[key] {
			continue
		}
		used[key] = true

		words := strings.Fields(sentence)
		if len(words) > 12 {
			split := len(words) / 2
			front := strings.Join(words[:split], " ")
			back := strings.Join(words[split:], " ")
			cards = append(cards, domain.FlashcardItem{
				Front:    "Complete: " + front + "...",
				Back:     back,
				Question: front + "...",
				Answer:   back,
				Topic:    "General",
			})
		} else {
			cards = append(cards, domain.FlashcardItem{
				Front:    "Key fact:",
				Back:     sentence,
				Question: "What does the text state?",
				Answer:   sentence,
				Topic:    "General",
			})
		}
	}

	// Strategy 3: fill remaining slots with key-concept cards.
	attempts := 0
	for len(cards) < count && len(sentences) > 0 && attempts < 20 {
		attempts++
		sentence := sentences[rng.Intn(len(sentences))]
		key := sentenceKey(sentence)
		if used[key] {
			continue
		}
		used[key] = true

		cards = append(cards, domain.FlashcardItem{
			Front:    "Important concept:",
			Back:     sentence,
			Question: "What is mentioned?",
			Answer:   sentence,
			Topic:    "General",
		})
	}

	if len(cards) == 0 {
		cards = append(cards, placeholderFlashcard())
	}
	if len(cards) > count {
		cards = cards[:count]
	}
	return cards
}

// sentenceKey dedups sentences by their lowercased first 30 characters.
func sentenceKey(sentence string) string {
	if len(sentence) > 30 {
		sentence = sentence[:30]
	}
	return strings.ToLower(sentence)
}

// contentWords returns the words in a sentence worth blanking out: longer
// than 4 characters, purely alphabetic, and not a function word.
func contentWords(sentence string) []string {
	var words []string
	for _, w := range strings.Fields(sentence) {
		if len(w) > 4 && isAlphaWord(w) && !blankStopWords[strings.ToLower(w)] {
			words = append(words, w)
		}
	}
	return words
}

func isAlphaWord(w string) bool {
	for _, r := range w {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return len(w) > 0
}

// sampleOtherTerms picks three distractor terms, topping up with generic
// options when the text defined fewer than four terms.
func sampleOtherTerms(terms []domain.TermDefinition, exclude string, rng *rand.Rand) []string {
	var others []string
	for _, t := range terms {
		if t.Term != exclude {
			others = append(others, t.Term)
		}
	}
	if len(others) >= 3 {
		rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
		return others[:3]
	}

	distractors := append([]string{}, others...)
	for len(distractors) < 3 {
		candidate := genericDistractors[rng.Intn(len(genericDistractors))]
		if !contains(distractors, candidate) {
			distractors = append(distractors, candidate)
		}
	}
	return distractors
}

// blankDistractors draws wrong answers from content words of other
// sentences, pads with case/pluralization variants of the answer, and
// finally with generic fillers.
func blankDistractors(sentences []string, current, answer string, rng *rand.Rand) []string {
	var distractors []string
	for _, other := range sentences {
		if other == current {
			continue
		}
		candidates := contentWords(other)
		if len(candidates) == 0 {
			continue
		}
		candidate := candidates[rng.Intn(len(candidates))]
		if !strings.EqualFold(candidate, answer) && !contains(distractors, candidate) {
			distractors = append(distractors, candidate)
			if len(distractors) >= 3 {
				return distractors
			}
		}
	}

	variations := []string{
		flipCase(answer),
		pluralVariant(answer),
		"Not " + answer,
	}
	for _, v := range variations {
		if len(distractors) >= 3 {
			break
		}
		if v != answer && !contains(distractors, v) {
			distractors = append(distractors, v)
		}
	}
	for len(distractors) < 3 {
		distractors = append(distractors, fmt.Sprintf("Option %d", len(distractors)+1))
	}
	return distractors
}

func flipCase(w string) string {
	upper := strings.ToUpper(w)
	if w != upper {
		return upper
	}
	return strings.ToLower(w)
}

func pluralVariant(w string) string {
	if strings.HasSuffix(w, "s") {
		return w[:len(w)-1]
	}
	return w + "s"
}

func indexOf(options []string, target string) int {
	for i, o := range options {
		if o == target {
			return i
		}
	}
	return 0
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

// placeholderQuizItem is returned when the text has no extractable content.
func placeholderQuizItem() domain.QuizItem {
	return domain.QuizItem{
		Question: "What does the document discuss?",
		Options: []string{
			"The content requires review",
			"Unable to extract clear information",
			"Text was too short",
			"OCR quality was poor",
		},
		CorrectAnswer: 0,
		Explanation:   "The document did not contain sufficient extractable content.",
		Topic:         "General",
	}
}

// placeholderFlashcard is returned when the text has no extractable content.
func placeholderFlashcard() domain.FlashcardItem {
	return domain.FlashcardItem{
		Front:    "Study the material",
		Back:     "Review the document for key concepts",
		Question: "What should you do?",
		Answer:   "Carefully review the text",
		Topic:    "General",
	}
}
