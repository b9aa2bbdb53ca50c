package validation

import (
	"strings"
	"testing"

	"studyforge/internal/dto"

	"github.com/stretchr/testify/assert"
)

const validSessionID = "01HZXCVBNM0123456789ABCDEF"

func TestValidateGenerateRequest(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateGenerateRequest(&dto.GenerateRequest{Text: "enough study text", Count: 5})
	assert.Empty(t, errs)

	errs = v.ValidateGenerateRequest(&dto.GenerateRequest{Text: "   "})
	assert.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)

	errs = v.ValidateGenerateRequest(&dto.GenerateRequest{Text: "ok text", Count: 999})
	assert.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Field)

	errs = v.ValidateGenerateRequest(&dto.GenerateRequest{Text: strings.Repeat("a", MaxTextLength+1)})
	assert.Len(t, errs, 1)

	errs = v.ValidateGenerateRequest(&dto.GenerateRequest{Text: "ok text", Difficulty: "impossible"})
	assert.Len(t, errs, 1)
	assert.Equal(t, "difficulty", errs[0].Field)

	errs = v.ValidateGenerateRequest(&dto.GenerateRequest{Text: "ok text", Difficulty: "HARD"})
	assert.Empty(t, errs)
}

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID(validSessionID))
	assert.Len(t, v.ValidateSessionID(""), 1)
	assert.Len(t, v.ValidateSessionID("short"), 1)
	// Correct length but contains characters outside Crockford's Base32.
	assert.Len(t, v.ValidateSessionID("OIL0000000000000000000000U"), 1)
}

func TestValidateAttemptRequest(t *testing.T) {
	v := NewValidator()

	valid := &dto.AttemptRequest{
		SessionID:      validSessionID,
		Answers:        []dto.QuestionAnswer{{QuestionID: 0}},
		Score:          1,
		TotalQuestions: 1,
	}
	assert.Empty(t, v.ValidateAttemptRequest(valid))

	bad := *valid
	bad.Score = 5
	errs := v.ValidateAttemptRequest(&bad)
	assert.Len(t, errs, 1)
	assert.Equal(t, "score", errs[0].Field)

	bad = *valid
	bad.TotalQuestions = 0
	assert.NotEmpty(t, v.ValidateAttemptRequest(&bad))

	bad = *valid
	bad.Answers = nil
	assert.NotEmpty(t, v.ValidateAttemptRequest(&bad))
}

func TestValidateProgressRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateProgressRequest(&dto.ProgressRequest{CardID: 3, IsKnown: true}))
	assert.Len(t, v.ValidateProgressRequest(&dto.ProgressRequest{CardID: -1}), 1)
}
