package validation

import (
	"regexp"
	"strings"

	"studyforge/internal/domain"
	"studyforge/internal/dto"
)

// MaxGenerationCount bounds how many items a single request may ask for.
const MaxGenerationCount = 50

// MaxTextLength bounds the raw study text accepted per request.
const MaxTextLength = 200000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates a text-based generation request.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(req.Text) > MaxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(req.Text), 1, MaxTextLength))
	}

	if req.Count < 0 || req.Count > MaxGenerationCount {
		errors = append(errors, domain.NewOutOfRangeError("count", req.Count, 0, MaxGenerationCount))
	}

	if req.Difficulty != "" {
		switch strings.ToLower(req.Difficulty) {
		case "easy", "medium", "hard":
		default:
			errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
		}
	}

	return errors
}

// ValidateSessionID validates a session identifier path parameter.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateAttemptRequest validates a quiz attempt submission.
func (v *Validator) ValidateAttemptRequest(req *dto.AttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if sessionErrors := v.ValidateSessionID(req.SessionID); len(sessionErrors) > 0 {
		errors = append(errors, sessionErrors...)
	}

	if req.TotalQuestions <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", req.TotalQuestions, 1, MaxGenerationCount))
	}

	if req.Score < 0 || (req.TotalQuestions > 0 && req.Score > req.TotalQuestions) {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, req.TotalQuestions))
	}

	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	return errors
}

// ValidateProgressRequest validates a flashcard progress update.
func (v *Validator) ValidateProgressRequest(req *dto.ProgressRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.CardID < 0 {
		errors = append(errors, domain.NewOutOfRangeError("card_id", req.CardID, 0, MaxGenerationCount))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
