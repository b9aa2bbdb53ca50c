package service

import (
	"context"

	"studyforge/internal/domain"
	"studyforge/internal/dto"
	"studyforge/internal/logger"
	"studyforge/internal/util"

	"go.uber.org/zap"
)

// AttemptService records and retrieves submitted quiz attempts.
type AttemptService interface {
	SubmitAttempt(ctx context.Context, req *dto.AttemptRequest) (*dto.AttemptResponse, error)
	GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponse, error)
	ListAttempts(ctx context.Context, sessionID string) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	repo domain.AttemptRepository
}

func NewAttemptService(repo domain.AttemptRepository) AttemptService {
	return &attemptService{repo: repo}
}

// SubmitAttempt validates and persists a quiz attempt, deriving accuracy.
func (s *attemptService) SubmitAttempt(ctx context.Context, req *dto.AttemptRequest) (*dto.AttemptResponse, error) {
	answers := make([]domain.AttemptAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.AttemptAnswer{
			QuestionID:    a.QuestionID,
			Question:      a.Question,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
		})
	}

	attempt := domain.NewQuizAttempt(req.SessionID, answers, req.Score, req.TotalQuestions)
	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	attempt.ID = util.NewULID()

	if err := s.repo.SaveAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz attempt", err)
	}

	logger.Get().Info("Quiz attempt saved",
		zap.String("attempt_id", attempt.ID),
		zap.String("session_id", attempt.SessionID),
		zap.Int("score", attempt.Score),
		zap.Float64("accuracy", attempt.Accuracy))

	return &dto.AttemptResponse{
		AttemptID:      attempt.ID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Accuracy:       attempt.Accuracy,
		Message:        "Quiz attempt saved successfully",
	}, nil
}

// GetAttempt fetches a stored attempt by id.
func (s *attemptService) GetAttempt(ctx context.Context, attemptID string) (*dto.AttemptResponse, error) {
	attempt, err := s.repo.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewAttemptNotFoundError(attemptID)
	}

	answers := make([]dto.QuestionAnswer, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		answers = append(answers, dto.QuestionAnswer{
			QuestionID:    a.QuestionID,
			Question:      a.Question,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			IsCorrect:     a.IsCorrect,
		})
	}

	return &dto.AttemptResponse{
		AttemptID:      attempt.ID,
		SessionID:      attempt.SessionID,
		Answers:        answers,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Accuracy:       attempt.Accuracy,
		SubmittedAt:    attempt.SubmittedAt,
	}, nil
}

// ListAttempts returns the attempt history for a session, most recent first.
func (s *attemptService) ListAttempts(ctx context.Context, sessionID string) ([]dto.AttemptResponse, error) {
	attempts, err := s.repo.GetAttemptsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz attempts", err)
	}

	responses := make([]dto.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		responses = append(responses, dto.AttemptResponse{
			AttemptID:      a.ID,
			SessionID:      a.SessionID,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			Accuracy:       a.Accuracy,
			SubmittedAt:    a.SubmittedAt,
		})
	}
	return responses, nil
}
