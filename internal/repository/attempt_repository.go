package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"studyforge/internal/domain"
	"studyforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx
// against Oracle. Queries use positional bind parameters (:1, :2, ...).
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) (*domain.QuizAttempt, error) {
	if m == nil {
		return nil, nil
	}

	var answers []domain.AttemptAnswer
	if m.AnswersJSON.Valid && m.AnswersJSON.String != "" {
		if err := json.Unmarshal([]byte(m.AnswersJSON.String), &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attempt answers: %w", err)
		}
	}

	return &domain.QuizAttempt{
		ID:             m.ID,
		SessionID:      m.SessionID,
		Answers:        answers,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Accuracy:       m.Accuracy.Float64,
		SubmittedAt:    m.SubmittedAt,
		CreatedAt:      m.CreatedAt,
	}, nil
}

func fromDomainAttempt(a *domain.QuizAttempt) (*models.QuizAttempt, error) {
	if a == nil {
		return nil, nil
	}

	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attempt answers: %w", err)
	}

	return &models.QuizAttempt{
		ID:             a.ID,
		SessionID:      a.SessionID,
		AnswersJSON:    sql.NullString{String: string(answersJSON), Valid: true},
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Accuracy:       sql.NullFloat64{Float64: a.Accuracy, Valid: true},
		SubmittedAt:    a.SubmittedAt,
		CreatedAt:      a.CreatedAt,
	}, nil
}

// SaveAttempt inserts a new quiz attempt row.
func (r *sqlxAttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m, err := fromDomainAttempt(attempt)
	if err != nil {
		return err
	}

	if m.SubmittedAt.IsZero() {
		m.SubmittedAt = time.Now()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO quiz_attempts (ID, SESSION_ID, ANSWERS_JSON, SCORE, TOTAL_QUESTIONS, ACCURACY, SUBMITTED_AT, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err = r.db.ExecContext(ctx, query,
		m.ID,
		m.SessionID,
		m.AnswersJSON,
		m.Score,
		m.TotalQuestions,
		m.Accuracy,
		m.SubmittedAt,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return nil
}

// GetAttemptByID returns the attempt with the given id, or nil when absent.
func (r *sqlxAttemptRepository) GetAttemptByID(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	query := `SELECT ID, SESSION_ID, ANSWERS_JSON, SCORE, TOTAL_QUESTIONS, ACCURACY, SUBMITTED_AT, CREATED_AT
	          FROM quiz_attempts WHERE ID = :1`

	var m models.QuizAttempt
	err := r.db.GetContext(ctx, &m, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz attempt %s: %w", id, err)
	}

	return toDomainAttempt(&m)
}

// GetAttemptsBySessionID returns all attempts for a session, most recent first.
func (r *sqlxAttemptRepository) GetAttemptsBySessionID(ctx context.Context, sessionID string) ([]domain.QuizAttempt, error) {
	query := `SELECT ID, SESSION_ID, ANSWERS_JSON, SCORE, TOTAL_QUESTIONS, ACCURACY, SUBMITTED_AT, CREATED_AT
	          FROM quiz_attempts WHERE SESSION_ID = :1 ORDER BY SUBMITTED_AT DESC`

	var rows []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get attempts for session %s: %w", sessionID, err)
	}

	attempts := make([]domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		a, err := toDomainAttempt(&rows[i])
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, nil
}
