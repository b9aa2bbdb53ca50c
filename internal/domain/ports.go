package domain

import "context"

// Completer is the port to the generative language-model service.
// A failed or empty completion must never propagate past the research or
// synthesis stages; callers absorb it into fallback output.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// TextExtractor is the port to raw text extraction backends.
// It returns best-effort text; implementations signal failure with an error
// or an empty string.
type TextExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
}

// AttemptRepository persists quiz attempts.
type AttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *QuizAttempt) error
	GetAttemptByID(ctx context.Context, id string) (*QuizAttempt, error)
	GetAttemptsBySessionID(ctx context.Context, sessionID string) ([]QuizAttempt, error)
}
