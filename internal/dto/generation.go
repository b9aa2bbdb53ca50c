package dto

import "studyforge/internal/domain"

// GenerateRequest is the body for text-based generation endpoints.
// @Description Request body for generating study items from raw text
type GenerateRequest struct {
	Text       string `json:"text"`
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty,omitempty"`
}

// QuizItemResponse represents a single generated question.
type QuizItemResponse struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
}

// QuizResponse is the batch shape for quiz generation.
// @Description Generated quiz questions
type QuizResponse struct {
	Questions []QuizItemResponse `json:"questions"`
}

// FlashcardItemResponse represents a single generated flashcard.
type FlashcardItemResponse struct {
	ID        int    `json:"id"`
	Front     string `json:"front"`
	Back      string `json:"back"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Topic     string `json:"topic"`
	CardOrder int    `json:"card_order"`
}

// FlashcardResponse is the batch shape for flashcard generation.
// @Description Generated flashcards
type FlashcardResponse struct {
	Flashcards []FlashcardItemResponse `json:"flashcards"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToQuizResponse converts domain quiz items into the response batch,
// assigning positional ids.
func ToQuizResponse(items []domain.QuizItem) *QuizResponse {
	resp := &QuizResponse{Questions: make([]QuizItemResponse, 0, len(items))}
	for i, item := range items {
		resp.Questions = append(resp.Questions, QuizItemResponse{
			ID:            i,
			Question:      item.Question,
			Options:       item.Options,
			CorrectAnswer: item.CorrectAnswer,
			Explanation:   item.Explanation,
			Topic:         item.Topic,
		})
	}
	return resp
}

// ToFlashcardResponse converts domain flashcards into the response batch,
// assigning positional ids and card order.
func ToFlashcardResponse(cards []domain.FlashcardItem) *FlashcardResponse {
	resp := &FlashcardResponse{Flashcards: make([]FlashcardItemResponse, 0, len(cards))}
	for i, card := range cards {
		resp.Flashcards = append(resp.Flashcards, FlashcardItemResponse{
			ID:        i,
			Front:     card.Front,
			Back:      card.Back,
			Question:  card.Question,
			Answer:    card.Answer,
			Topic:     card.Topic,
			CardOrder: i,
		})
	}
	return resp
}
