package memstore

import (
	"context"
	"strings"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/store"
)

// CategoryStore implements store.CategoryStore.
type CategoryStore struct{ db *DB }

// NewCategoryStore returns a CategoryStore backed by db.
func NewCategoryStore(db *DB) *CategoryStore { return &CategoryStore{db: db} }

var _ store.CategoryStore = (*CategoryStore)(nil)

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return sortedValues(s.db.categories, func(c domain.Category) int64 { return c.ID }), nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	c, ok := s.db.categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return &c, nil
}

// QuestionStore implements store.QuestionStore.
type QuestionStore struct{ db *DB }

// NewQuestionStore returns a QuestionStore backed by db.
func NewQuestionStore(db *DB) *QuestionStore { return &QuestionStore{db: db} }

var _ store.QuestionStore = (*QuestionStore)(nil)

func (s *QuestionStore) List(ctx context.Context, page domain.Page) ([]domain.Question, int64, error) {
	all := s.filter(func(domain.Question) bool { return true })
	return domain.Slice(all, page), int64(len(all)), nil
}

func (s *QuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	return s.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

func (s *QuestionStore) Search(ctx context.Context, term string) ([]domain.Question, error) {
	needle := strings.ToLower(term)
	return s.filter(func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (s *QuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	q, ok := s.db.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	return &q, nil
}

func (s *QuestionStore) Create(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.categories[question.Category]; !ok {
		return store.ErrUnknownCategory
	}
	question.ID = s.db.nextID("questions")
	s.db.questions[question.ID] = *question
	return nil
}

func (s *QuestionStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.questions[id]; !ok {
		return store.ErrQuestionNotFound
	}
	delete(s.db.questions, id)
	return nil
}

func (s *QuestionStore) filter(keep func(domain.Question) bool) []domain.Question {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []domain.Question{}
	for _, q := range sortedValues(s.db.questions, func(q domain.Question) int64 { return q.ID }) {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
