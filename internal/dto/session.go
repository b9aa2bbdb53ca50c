package dto

import "time"

// UploadResponse is returned by the upload-and-generate endpoint.
// ExtractedText carries only a preview of the document text.
// @Description Generated study session for an uploaded document
type UploadResponse struct {
	SessionID     string             `json:"session_id"`
	ExtractedText string             `json:"extracted_text"`
	Quiz          QuizSessionData    `json:"quiz"`
	Flashcards    FlashcardSessionData `json:"flashcards"`
}

// QuizSessionData is the quiz half of a stored study session.
type QuizSessionData struct {
	TotalQuestions int                `json:"total_questions"`
	Questions      []QuizItemResponse `json:"questions"`
	CreatedAt      time.Time          `json:"created_at,omitempty"`
}

// FlashcardSessionData is the flashcard half of a stored study session.
type FlashcardSessionData struct {
	TotalCards int                     `json:"total_cards"`
	Cards      []FlashcardItemResponse `json:"cards"`
	CreatedAt  time.Time               `json:"created_at,omitempty"`
}

// QuizSessionResponse wraps a stored quiz session for retrieval.
type QuizSessionResponse struct {
	SessionID string          `json:"session_id"`
	Quiz      QuizSessionData `json:"quiz"`
}

// FlashcardSessionResponse wraps a stored flashcard session for retrieval.
type FlashcardSessionResponse struct {
	SessionID  string               `json:"session_id"`
	Flashcards FlashcardSessionData `json:"flashcards"`
	Progress   map[string]CardProgress `json:"progress,omitempty"`
}

// CardProgress records one card's study state.
type CardProgress struct {
	IsKnown   bool      `json:"is_known"`
	StudiedAt time.Time `json:"studied_at"`
}

// ProgressRequest marks a flashcard as known or unknown.
type ProgressRequest struct {
	CardID  int  `json:"card_id"`
	IsKnown bool `json:"is_known"`
}

// QuestionAnswer is one answered question inside an attempt submission.
type QuestionAnswer struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// AttemptRequest submits a completed quiz run.
// @Description Request body for submitting a quiz attempt
type AttemptRequest struct {
	SessionID      string           `json:"session_id"`
	Answers        []QuestionAnswer `json:"answers"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
}

// AttemptResponse acknowledges a stored attempt.
type AttemptResponse struct {
	AttemptID      string           `json:"attempt_id"`
	SessionID      string           `json:"session_id,omitempty"`
	Answers        []QuestionAnswer `json:"answers,omitempty"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	Accuracy       float64          `json:"accuracy"`
	SubmittedAt    time.Time        `json:"submitted_at,omitempty"`
	Message        string           `json:"message,omitempty"`
}
