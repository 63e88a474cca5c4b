package domain

import "strings"

// Difficulty bounds for trivia questions.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question is a trivia question belonging to exactly one Category.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion creates a Question and validates it.
// The ID is assigned by the store on insert.
func NewQuestion(question, answer string, category int64, difficulty int) (*Question, error) {
	q := &Question{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Category:   category,
		Difficulty: difficulty,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewValidationError("question", "is required", ErrEmptyContent)
	}
	if q.Answer == "" {
		return NewValidationError("answer", "is required", ErrEmptyContent)
	}
	if q.Category <= 0 {
		return NewValidationError("category", "is required", ErrInvalidID)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewValidationError("difficulty", "must be between 1 and 5", nil)
	}
	return nil
}
