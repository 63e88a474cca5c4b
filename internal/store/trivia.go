package store

import (
	"context"

	"github.com/phrazzld/crudsuite/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// Categories are seeded by migrations and never modified through the API.
type CategoryStore interface {
	// List returns all categories ordered by id.
	List(ctx context.Context) ([]domain.Category, error)

	// GetByID retrieves a category by its id.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

// QuestionStore defines the interface for trivia question persistence.
// Every list is ordered by id.
type QuestionStore interface {
	// List returns the requested page of questions and the total number of
	// questions. The zero Page returns every question.
	List(ctx context.Context, page domain.Page) ([]domain.Question, int64, error)

	// ListByCategory returns every question of the given category.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error)

	// Search returns the questions whose text contains term, ignoring case.
	Search(ctx context.Context, term string) ([]domain.Question, error)

	// GetByID retrieves a question by its id.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// Create inserts the question and assigns its ID.
	// Returns ErrUnknownCategory if the category does not exist.
	Create(ctx context.Context, question *domain.Question) error

	// Delete removes a question.
	// Returns ErrQuestionNotFound if the question does not exist.
	Delete(ctx context.Context, id int64) error
}
