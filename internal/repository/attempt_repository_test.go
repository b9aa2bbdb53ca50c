package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"studyforge/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func attemptColumns() []string {
	return []string{"ID", "SESSION_ID", "ANSWERS_JSON", "SCORE", "TOTAL_QUESTIONS", "ACCURACY", "SUBMITTED_AT", "CREATED_AT"}
}

func TestSaveAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	attempt := &domain.QuizAttempt{
		ID:        "01HZATTEMPT00000000000000A",
		SessionID: "01HZSESSION00000000000000A",
		Answers: []domain.AttemptAnswer{
			{QuestionID: 0, Question: "Q?", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
		},
		Score:          1,
		TotalQuestions: 1,
		Accuracy:       100,
		SubmittedAt:    time.Now(),
		CreatedAt:      time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_attempts")).
		WithArgs(
			attempt.ID,
			attempt.SessionID,
			sqlmock.AnyArg(), // serialized answers
			attempt.Score,
			attempt.TotalQuestions,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveAttempt(context.Background(), attempt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttempt_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_attempts")).
		WillReturnError(assert.AnError)

	err := repo.SaveAttempt(context.Background(), &domain.QuizAttempt{ID: "x", SessionID: "y"})

	assert.Error(t, err)
}

func TestGetAttemptByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	now := time.Now()
	answersJSON := `[{"question_id":0,"question":"Q?","user_answer":"A","correct_answer":"A","is_correct":true}]`

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, SESSION_ID, ANSWERS_JSON, SCORE, TOTAL_QUESTIONS, ACCURACY, SUBMITTED_AT, CREATED_AT")).
		WithArgs("01HZATTEMPT00000000000000A").
		WillReturnRows(sqlmock.NewRows(attemptColumns()).
			AddRow("01HZATTEMPT00000000000000A", "01HZSESSION00000000000000A", answersJSON, 1, 1, 100.0, now, now))

	attempt, err := repo.GetAttemptByID(context.Background(), "01HZATTEMPT00000000000000A")

	assert.NoError(t, err)
	assert.Equal(t, "01HZSESSION00000000000000A", attempt.SessionID)
	assert.Len(t, attempt.Answers, 1)
	assert.True(t, attempt.Answers[0].IsCorrect)
	assert.Equal(t, 100.0, attempt.Accuracy)
}

func TestGetAttemptByID_NoRowsReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(attemptColumns()))

	attempt, err := repo.GetAttemptByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestGetAttemptsBySessionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM quiz_attempts WHERE SESSION_ID")).
		WithArgs("01HZSESSION00000000000000A").
		WillReturnRows(sqlmock.NewRows(attemptColumns()).
			AddRow("a1", "01HZSESSION00000000000000A", "[]", 2, 2, 100.0, now, now).
			AddRow("a2", "01HZSESSION00000000000000A", "[]", 1, 2, 50.0, now.Add(-time.Hour), now.Add(-time.Hour)))

	attempts, err := repo.GetAttemptsBySessionID(context.Background(), "01HZSESSION00000000000000A")

	assert.NoError(t, err)
	assert.Len(t, attempts, 2)
	assert.Equal(t, "a1", attempts[0].ID)
	assert.Equal(t, 50.0, attempts[1].Accuracy)
}

func TestGetAttemptByID_CorruptAnswersJSON(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("bad").
		WillReturnRows(sqlmock.NewRows(attemptColumns()).
			AddRow("bad", "s", "{not json", 0, 1, 0.0, now, now))

	_, err := repo.GetAttemptByID(context.Background(), "bad")

	assert.Error(t, err)
}
