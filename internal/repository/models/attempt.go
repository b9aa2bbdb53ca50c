package models

import (
	"database/sql"
	"time"
)

// QuizAttempt is the database row for a submitted quiz attempt. Answers are
// stored as a JSON document in a CLOB column.
type QuizAttempt struct {
	ID             string          `db:"ID"`
	SessionID      string          `db:"SESSION_ID"`
	AnswersJSON    sql.NullString  `db:"ANSWERS_JSON"`
	Score          int             `db:"SCORE"`
	TotalQuestions int             `db:"TOTAL_QUESTIONS"`
	Accuracy       sql.NullFloat64 `db:"ACCURACY"`
	SubmittedAt    time.Time       `db:"SUBMITTED_AT"`
	CreatedAt      time.Time       `db:"CREATED_AT"`
}
