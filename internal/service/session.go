package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"studyforge/internal/cache"
	"studyforge/internal/domain"
	"studyforge/internal/dto"
	"studyforge/internal/logger"

	"go.uber.org/zap"
)

const sessionServiceName = "session"

// SessionService stores generation results under a session identifier so a
// client can fetch the quiz, flip through flashcards, and record progress.
type SessionService interface {
	SaveSession(ctx context.Context, sessionID string, quiz *dto.QuizSessionData, cards *dto.FlashcardSessionData) error
	GetQuizSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error)
	GetFlashcardSession(ctx context.Context, sessionID string) (*dto.FlashcardSessionResponse, error)
	SaveFlashcardProgress(ctx context.Context, sessionID string, cardID int, isKnown bool) error
}

type sessionService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionService creates a session service backed by the given cache.
func NewSessionService(cacheAdapter domain.Cache, ttl time.Duration) SessionService {
	return &sessionService{cache: cacheAdapter, ttl: ttl}
}

func quizSessionKey(sessionID string) string {
	return cache.GenerateCacheKey(sessionServiceName, "quiz", sessionID)
}

func flashcardSessionKey(sessionID string) string {
	return cache.GenerateCacheKey(sessionServiceName, "flashcards", sessionID)
}

func progressKey(sessionID string) string {
	return cache.GenerateCacheKey(sessionServiceName, "progress", sessionID)
}

// SaveSession stores both halves of a study session under the same id.
func (s *sessionService) SaveSession(ctx context.Context, sessionID string, quiz *dto.QuizSessionData, cards *dto.FlashcardSessionData) error {
	quizPayload, err := json.Marshal(quiz)
	if err != nil {
		return domain.NewInternalError("Failed to encode quiz session", err)
	}
	if err := s.cache.Set(ctx, quizSessionKey(sessionID), string(quizPayload), s.ttl); err != nil {
		return domain.NewInternalError("Failed to store quiz session", err)
	}

	cardPayload, err := json.Marshal(cards)
	if err != nil {
		return domain.NewInternalError("Failed to encode flashcard session", err)
	}
	if err := s.cache.Set(ctx, flashcardSessionKey(sessionID), string(cardPayload), s.ttl); err != nil {
		return domain.NewInternalError("Failed to store flashcard session", err)
	}

	logger.Get().Info("Study session stored",
		zap.String("session_id", sessionID),
		zap.Int("questions", quiz.TotalQuestions),
		zap.Int("cards", cards.TotalCards))
	return nil
}

// GetQuizSession retrieves the quiz half of a session.
func (s *sessionService) GetQuizSession(ctx context.Context, sessionID string) (*dto.QuizSessionResponse, error) {
	payload, err := s.cache.Get(ctx, quizSessionKey(sessionID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("Failed to read quiz session", err)
	}

	var quiz dto.QuizSessionData
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		return nil, domain.NewInternalError("Failed to decode quiz session", err)
	}
	return &dto.QuizSessionResponse{SessionID: sessionID, Quiz: quiz}, nil
}

// GetFlashcardSession retrieves the flashcard half of a session together
// with any recorded progress.
func (s *sessionService) GetFlashcardSession(ctx context.Context, sessionID string) (*dto.FlashcardSessionResponse, error) {
	payload, err := s.cache.Get(ctx, flashcardSessionKey(sessionID))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, domain.NewInternalError("Failed to read flashcard session", err)
	}

	var cards dto.FlashcardSessionData
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		return nil, domain.NewInternalError("Failed to decode flashcard session", err)
	}

	resp := &dto.FlashcardSessionResponse{SessionID: sessionID, Flashcards: cards}

	fields, err := s.cache.HGetAll(ctx, progressKey(sessionID))
	if err != nil && err != domain.ErrCacheMiss {
		logger.Get().Warn("Failed to read flashcard progress",
			zap.Error(err),
			zap.String("session_id", sessionID))
		return resp, nil
	}
	if len(fields) > 0 {
		resp.Progress = make(map[string]dto.CardProgress, len(fields))
		for cardID, raw := range fields {
			var p dto.CardProgress
			if err := json.Unmarshal([]byte(raw), &p); err != nil {
				continue
			}
			resp.Progress[cardID] = p
		}
	}
	return resp, nil
}

// SaveFlashcardProgress records one card's study state as a hash field so
// individual cards can be updated without rewriting the session.
func (s *sessionService) SaveFlashcardProgress(ctx context.Context, sessionID string, cardID int, isKnown bool) error {
	// Progress only makes sense for an existing session.
	if _, err := s.cache.Get(ctx, flashcardSessionKey(sessionID)); err != nil {
		if err == domain.ErrCacheMiss {
			return domain.NewSessionNotFoundError(sessionID)
		}
		return domain.NewInternalError("Failed to read flashcard session", err)
	}

	progress := dto.CardProgress{IsKnown: isKnown, StudiedAt: time.Now()}
	payload, err := json.Marshal(progress)
	if err != nil {
		return domain.NewInternalError("Failed to encode card progress", err)
	}

	key := progressKey(sessionID)
	if err := s.cache.HSet(ctx, key, strconv.Itoa(cardID), string(payload)); err != nil {
		return domain.NewInternalError(fmt.Sprintf("Failed to store progress for card %d", cardID), err)
	}
	if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
		logger.Get().Warn("Failed to refresh progress TTL",
			zap.Error(err),
			zap.String("session_id", sessionID))
	}
	return nil
}
