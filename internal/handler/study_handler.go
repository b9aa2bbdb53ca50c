package handler

import (
	"io"
	"strconv"
	"strings"

	"studyforge/internal/adapter/extract"
	"studyforge/internal/domain"
	"studyforge/internal/dto"
	"studyforge/internal/logger"
	"studyforge/internal/service"
	"studyforge/internal/util"
	"studyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler handles document upload, generation, session retrieval, and
// attempt submission.
type StudyHandler struct {
	extractor    domain.TextExtractor
	generation   service.GenerationService
	sessions     service.SessionService
	attempts     service.AttemptService
	validator    *validation.Validator
	defaultCount int
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(
	extractor domain.TextExtractor,
	generation service.GenerationService,
	sessions service.SessionService,
	attempts service.AttemptService,
	validator *validation.Validator,
	defaultCount int,
) *StudyHandler {
	if defaultCount < 1 {
		defaultCount = 10
	}
	return &StudyHandler{
		extractor:    extractor,
		generation:   generation,
		sessions:     sessions,
		attempts:     attempts,
		validator:    validator,
		defaultCount: defaultCount,
	}
}

// UploadDocument godoc
// @Summary Upload a document and generate a study session
// @Description Extracts text from the uploaded file, generates a quiz and flashcards, and stores them under a new session
// @Tags study
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to study (pdf, docx, txt)"
// @Param num_questions formData int false "Number of quiz questions"
// @Param num_flashcards formData int false "Number of flashcards"
// @Param difficulty formData string false "easy, medium, or hard"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /upload [post]
func (h *StudyHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("A file upload is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	text, err := h.extractor.ExtractText(data, fileHeader.Filename)
	if err != nil {
		logger.Get().Warn("Text extraction failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		return domain.NewExtractionFailedError(fileHeader.Filename, 0)
	}
	if trimmed := strings.TrimSpace(text); len(trimmed) < extract.MinTextLength {
		return domain.NewExtractionFailedError(fileHeader.Filename, len(trimmed))
	}

	numQuestions := h.parseCount(c.FormValue("num_questions"))
	numFlashcards := h.parseCount(c.FormValue("num_flashcards"))
	difficulty := domain.ParseDifficulty(c.FormValue("difficulty"))

	quizItems := h.generation.GenerateQuiz(c.Context(), text, numQuestions, difficulty)
	flashcards := h.generation.GenerateFlashcards(c.Context(), text, numFlashcards)

	quizData := dto.QuizSessionData{
		TotalQuestions: len(quizItems),
		Questions:      dto.ToQuizResponse(quizItems).Questions,
	}
	cardData := dto.FlashcardSessionData{
		TotalCards: len(flashcards),
		Cards:      dto.ToFlashcardResponse(flashcards).Flashcards,
	}

	sessionID := util.NewULID()
	if err := h.sessions.SaveSession(c.Context(), sessionID, &quizData, &cardData); err != nil {
		return err
	}

	return c.JSON(dto.UploadResponse{
		SessionID:     sessionID,
		ExtractedText: textPreview(text),
		Quiz:          quizData,
		Flashcards:    cardData,
	})
}

func (h *StudyHandler) parseCount(raw string) int {
	count, _ := strconv.Atoi(raw)
	if count < 1 || count > validation.MaxGenerationCount {
		return h.defaultCount
	}
	return count
}

// textPreview truncates the extracted text to the first 500 runes for the
// upload response; the full text is never returned to the client.
func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= 500 {
		return text
	}
	return string(runes[:500])
}

// GenerateQuiz godoc
// @Summary Generate quiz questions from raw text
// @Tags study
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Study text and options"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/quiz [post]
func (h *StudyHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	count := req.Count
	if count < 1 {
		count = h.defaultCount
	}
	difficulty := domain.ParseDifficulty(req.Difficulty)

	items := h.generation.GenerateQuiz(c.Context(), req.Text, count, difficulty)
	return c.JSON(dto.ToQuizResponse(items))
}

// GenerateFlashcards godoc
// @Summary Generate flashcards from raw text
// @Tags study
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Study text and options"
// @Success 200 {object} dto.FlashcardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /generate/flashcards [post]
func (h *StudyHandler) GenerateFlashcards(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	count := req.Count
	if count < 1 {
		count = h.defaultCount
	}

	cards := h.generation.GenerateFlashcards(c.Context(), req.Text, count)
	return c.JSON(dto.ToFlashcardResponse(cards))
}

// GetQuizSession godoc
// @Summary Get the quiz half of a stored session
// @Tags study
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{session_id} [get]
func (h *StudyHandler) GetQuizSession(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.sessions.GetQuizSession(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetFlashcardSession godoc
// @Summary Get the flashcard half of a stored session, with progress
// @Tags study
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.FlashcardSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /flashcards/{session_id} [get]
func (h *StudyHandler) GetFlashcardSession(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.sessions.GetFlashcardSession(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SaveFlashcardProgress godoc
// @Summary Mark a flashcard as known or unknown
// @Tags study
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body dto.ProgressRequest true "Card progress"
// @Success 200 {object} map[string]string
// @Failure 404 {object} middleware.ErrorResponse
// @Router /flashcards/{session_id}/progress [post]
func (h *StudyHandler) SaveFlashcardProgress(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	var req dto.ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateProgressRequest(&req); len(errs) > 0 {
		return errs
	}

	if err := h.sessions.SaveFlashcardProgress(c.Context(), sessionID, req.CardID, req.IsKnown); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// SubmitAttempt godoc
// @Summary Submit a completed quiz run
// @Tags study
// @Accept json
// @Produce json
// @Param request body dto.AttemptRequest true "Attempt details"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/attempt [post]
func (h *StudyHandler) SubmitAttempt(c *fiber.Ctx) error {
	var req dto.AttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateAttemptRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.attempts.SubmitAttempt(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAttempt godoc
// @Summary Get a stored quiz attempt
// @Tags study
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/attempt/{attempt_id} [get]
func (h *StudyHandler) GetAttempt(c *fiber.Ctx) error {
	attemptID := c.Params("attempt_id")
	if strings.TrimSpace(attemptID) == "" {
		return domain.NewInvalidInputError("attempt_id is required")
	}

	resp, err := h.attempts.GetAttempt(c.Context(), attemptID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListAttempts godoc
// @Summary List quiz attempts for a session
// @Tags study
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.AttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/attempts/{session_id} [get]
func (h *StudyHandler) ListAttempts(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.attempts.ListAttempts(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
