package domain

import "time"

// AttemptAnswer records a single answered question within an attempt.
type AttemptAnswer struct {
	QuestionID    int    `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// QuizAttempt stores one submitted quiz run against a session.
type QuizAttempt struct {
	ID             string
	SessionID      string
	Answers        []AttemptAnswer
	Score          int
	TotalQuestions int
	Accuracy       float64
	SubmittedAt    time.Time
	CreatedAt      time.Time
}

// NewQuizAttempt builds an attempt and derives its accuracy percentage.
func NewQuizAttempt(sessionID string, answers []AttemptAnswer, score, totalQuestions int) *QuizAttempt {
	accuracy := 0.0
	if totalQuestions > 0 {
		accuracy = float64(score) / float64(totalQuestions) * 100
	}
	now := time.Now()
	return &QuizAttempt{
		SessionID:      sessionID,
		Answers:        answers,
		Score:          score,
		TotalQuestions: totalQuestions,
		Accuracy:       accuracy,
		SubmittedAt:    now,
		CreatedAt:      now,
	}
}

// Validate checks attempt invariants before persistence.
func (a *QuizAttempt) Validate() error {
	var errs ValidationErrors
	if a.SessionID == "" {
		errs = append(errs, NewMissingFieldError("session_id"))
	}
	if a.TotalQuestions <= 0 {
		errs = append(errs, NewOutOfRangeError("total_questions", a.TotalQuestions, 1, 1000))
	}
	if a.Score < 0 || a.Score > a.TotalQuestions {
		errs = append(errs, NewOutOfRangeError("score", a.Score, 0, a.TotalQuestions))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
