package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"studyforge/internal/domain"
	"studyforge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSessionID = "01HZXCVBNM0123456789ABCDEF"

func testQuizData() *dto.QuizSessionData {
	return &dto.QuizSessionData{
		TotalQuestions: 1,
		Questions: []dto.QuizItemResponse{
			{ID: 0, Question: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: 0},
		},
	}
}

func testCardData() *dto.FlashcardSessionData {
	return &dto.FlashcardSessionData{
		TotalCards: 1,
		Cards: []dto.FlashcardItemResponse{
			{ID: 0, Front: "F", Back: "B", Question: "Q", Answer: "A"},
		},
	}
}

func TestSaveSession_StoresBothHalves(t *testing.T) {
	cache := new(MockCache)
	cache.On("Set", mock.Anything, quizSessionKey(testSessionID), mock.Anything, time.Hour).Return(nil)
	cache.On("Set", mock.Anything, flashcardSessionKey(testSessionID), mock.Anything, time.Hour).Return(nil)

	svc := NewSessionService(cache, time.Hour)
	err := svc.SaveSession(context.Background(), testSessionID, testQuizData(), testCardData())

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestSaveSession_PropagatesCacheFailure(t *testing.T) {
	cache := new(MockCache)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	svc := NewSessionService(cache, time.Hour)
	err := svc.SaveSession(context.Background(), testSessionID, testQuizData(), testCardData())

	assert.Error(t, err)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestGetQuizSession_ReturnsStoredQuiz(t *testing.T) {
	payload, _ := json.Marshal(testQuizData())

	cache := new(MockCache)
	cache.On("Get", mock.Anything, quizSessionKey(testSessionID)).Return(string(payload), nil)

	svc := NewSessionService(cache, time.Hour)
	resp, err := svc.GetQuizSession(context.Background(), testSessionID)

	assert.NoError(t, err)
	assert.Equal(t, testSessionID, resp.SessionID)
	assert.Equal(t, 1, resp.Quiz.TotalQuestions)
	assert.Equal(t, "Q?", resp.Quiz.Questions[0].Question)
}

func TestGetQuizSession_MissMapsToSessionNotFound(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)

	svc := NewSessionService(cache, time.Hour)
	_, err := svc.GetQuizSession(context.Background(), testSessionID)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestGetFlashcardSession_IncludesProgress(t *testing.T) {
	payload, _ := json.Marshal(testCardData())
	progressPayload, _ := json.Marshal(dto.CardProgress{IsKnown: true, StudiedAt: time.Now()})

	cache := new(MockCache)
	cache.On("Get", mock.Anything, flashcardSessionKey(testSessionID)).Return(string(payload), nil)
	cache.On("HGetAll", mock.Anything, progressKey(testSessionID)).
		Return(map[string]string{"0": string(progressPayload)}, nil)

	svc := NewSessionService(cache, time.Hour)
	resp, err := svc.GetFlashcardSession(context.Background(), testSessionID)

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Flashcards.TotalCards)
	assert.True(t, resp.Progress["0"].IsKnown)
}

func TestGetFlashcardSession_ProgressFailureIsNonFatal(t *testing.T) {
	payload, _ := json.Marshal(testCardData())

	cache := new(MockCache)
	cache.On("Get", mock.Anything, flashcardSessionKey(testSessionID)).Return(string(payload), nil)
	cache.On("HGetAll", mock.Anything, mock.Anything).Return(nil, errors.New("hgetall failed"))

	svc := NewSessionService(cache, time.Hour)
	resp, err := svc.GetFlashcardSession(context.Background(), testSessionID)

	assert.NoError(t, err)
	assert.Empty(t, resp.Progress)
}

func TestSaveFlashcardProgress_WritesHashFieldAndRefreshesTTL(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, flashcardSessionKey(testSessionID)).Return("{}", nil)
	cache.On("HSet", mock.Anything, progressKey(testSessionID), "3", mock.MatchedBy(func(v string) bool {
		var p dto.CardProgress
		return json.Unmarshal([]byte(v), &p) == nil && p.IsKnown
	})).Return(nil)
	cache.On("Expire", mock.Anything, progressKey(testSessionID), time.Hour).Return(nil)

	svc := NewSessionService(cache, time.Hour)
	err := svc.SaveFlashcardProgress(context.Background(), testSessionID, 3, true)

	assert.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestSaveFlashcardProgress_UnknownSession(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)

	svc := NewSessionService(cache, time.Hour)
	err := svc.SaveFlashcardProgress(context.Background(), testSessionID, 0, false)

	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
	cache.AssertNotCalled(t, "HSet")
}
