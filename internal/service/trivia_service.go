package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
)

// QuizWildcardType is the category type the quiz client sends for "all".
const QuizWildcardType = "click"

// QuestionPage is one page of the question list with its context.
type QuestionPage struct {
	Questions  []domain.Question
	Total      int64
	Categories []domain.Category
}

// QuizCategory selects the pool of quiz questions. ID 0 or the wildcard
// type means every category.
type QuizCategory struct {
	ID   int64
	Type string
}

// IsWildcard reports whether the category selects every question.
func (c QuizCategory) IsWildcard() bool {
	return c.ID == 0 || strings.EqualFold(c.Type, QuizWildcardType)
}

// CreateQuestionInput carries the fields of a new question.
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// TriviaService provides the trivia question and quiz operations.
type TriviaService interface {
	// ListQuestions returns a page of questions and every category.
	// Returns ErrNoResults when the page or the category list is empty.
	ListQuestions(ctx context.Context, page domain.Page) (*QuestionPage, error)

	// ListCategories returns every category, or ErrNoResults if there are none.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// DeleteQuestion removes a question and returns it as it was.
	DeleteQuestion(ctx context.Context, id int64) (*domain.Question, error)

	// CreateQuestion validates and stores a new question.
	CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)

	// QuestionsByCategory returns the category and its questions.
	// Returns ErrNoResults when the category has no questions.
	QuestionsByCategory(ctx context.Context, categoryID int64) (*domain.Category, []domain.Question, error)

	// SearchQuestions returns the questions containing term, ignoring case.
	// Returns ErrNoResults when nothing matches.
	SearchQuestions(ctx context.Context, term string) ([]domain.Question, error)

	// NextQuizQuestion picks a random question of the category that is not in
	// previousIDs. It returns (nil, nil) when every candidate was asked.
	NextQuizQuestion(ctx context.Context, previousIDs []int64, category QuizCategory) (*domain.Question, error)
}

// TriviaOption customizes a TriviaService.
type TriviaOption func(*triviaServiceImpl)

// WithRand makes quiz selection use r, which allows deterministic tests.
func WithRand(r *rand.Rand) TriviaOption {
	return func(s *triviaServiceImpl) {
		s.rng = r
	}
}

type triviaServiceImpl struct {
	categories store.CategoryStore
	questions  store.QuestionStore
	logger     *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewTriviaService creates a new TriviaService.
// It returns an error if any of the required dependencies are nil.
func NewTriviaService(
	categories store.CategoryStore,
	questions store.QuestionStore,
	logger *slog.Logger,
	opts ...TriviaOption,
) (TriviaService, error) {
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if questions == nil {
		return nil, domain.NewValidationError("questions", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &triviaServiceImpl{
		categories: categories,
		questions:  questions,
		logger:     logger.With(slog.String("component", "trivia_service")),
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *triviaServiceImpl) ListQuestions(ctx context.Context, page domain.Page) (*QuestionPage, error) {
	questions, total, err := s.questions.List(ctx, page)
	if err != nil {
		return nil, wrapStoreError("list_questions", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoResults
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: questions, Total: total, Categories: categories}, nil
}

func (s *triviaServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, wrapStoreError("list_categories", err)
	}
	if len(categories) == 0 {
		return nil, ErrNoResults
	}
	return categories, nil
}

func (s *triviaServiceImpl) DeleteQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError("get_question", err)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return nil, wrapStoreError("delete_question", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("question deleted", slog.Int64("question_id", id))
	return question, nil
}

func (s *triviaServiceImpl) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	question, err := domain.NewQuestion(input.Question, input.Answer, input.Category, input.Difficulty)
	if err != nil {
		return nil, err
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, wrapStoreError("create_question", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("question created",
		slog.Int64("question_id", question.ID),
		slog.Int64("category", question.Category))
	return question, nil
}

func (s *triviaServiceImpl) QuestionsByCategory(
	ctx context.Context,
	categoryID int64,
) (*domain.Category, []domain.Question, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, wrapStoreError("get_category", err)
	}
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, wrapStoreError("list_questions_by_category", err)
	}
	if len(questions) == 0 {
		return nil, nil, ErrNoResults
	}
	return category, questions, nil
}

func (s *triviaServiceImpl) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	questions, err := s.questions.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, wrapStoreError("search_questions", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoResults
	}
	return questions, nil
}

func (s *triviaServiceImpl) NextQuizQuestion(
	ctx context.Context,
	previousIDs []int64,
	category QuizCategory,
) (*domain.Question, error) {
	var pool []domain.Question
	var err error
	if category.IsWildcard() {
		pool, _, err = s.questions.List(ctx, domain.Page{})
	} else {
		if _, err = s.categories.GetByID(ctx, category.ID); err == nil {
			pool, err = s.questions.ListByCategory(ctx, category.ID)
		}
	}
	if err != nil {
		return nil, wrapStoreError("next_quiz_question", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoResults
	}

	asked := make(map[int64]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		asked[id] = struct{}{}
	}
	candidates := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, seen := asked[q.ID]; !seen {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		logger.FromContextOrDefault(ctx, s.logger).Debug("quiz exhausted",
			slog.Int64("category", category.ID),
			slog.Int("asked", len(previousIDs)))
		return nil, nil
	}

	s.rngMu.Lock()
	pick := candidates[s.rng.IntN(len(candidates))]
	s.rngMu.Unlock()
	return &pick, nil
}

// IsNoResults reports whether err means an empty result the API reports as 404.
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}
