package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/store"
	"gorm.io/gorm"
)

// PostgresQuestionStore implements store.QuestionStore.
type PostgresQuestionStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db *gorm.DB, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// List implements store.QuestionStore.List
func (s *PostgresQuestionStore) List(ctx context.Context, page domain.Page) ([]domain.Question, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&questionRow{}).Count(&total).Error; err != nil {
		log.Error("failed to count questions", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	var rows []questionRow
	err := db.Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&rows).Error
	if err != nil {
		log.Error("failed to list questions",
			slog.Int("page", page.Number),
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	return questionsToDomain(rows), total, nil
}

// ListByCategory implements store.QuestionStore.ListByCategory
func (s *PostgresQuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	var rows []questionRow
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err)
	}
	return questionsToDomain(rows), nil
}

// Search implements store.QuestionStore.Search
func (s *PostgresQuestionStore) Search(ctx context.Context, term string) ([]domain.Question, error) {
	var rows []questionRow
	err := s.db.WithContext(ctx).
		Where("question ILIKE ?", "%"+escapeLike(term)+"%").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err)
	}
	return questionsToDomain(rows), nil
}

// GetByID implements store.QuestionStore.GetByID
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row questionRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapNotFound(err, store.ErrQuestionNotFound)
	}
	q := row.toDomain()
	return &q, nil
}

// Create implements store.QuestionStore.Create
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		return err
	}

	row := newQuestionRow(question)
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrUnknownCategory
		}
		log.Error("failed to create question", slog.String("error", err.Error()))
		return MapError(err)
	}

	question.ID = row.ID
	log.Debug("question created", slog.Int64("question_id", row.ID))
	return nil
}

// Delete implements store.QuestionStore.Delete
func (s *PostgresQuestionStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&questionRow{}, id)
	if err := checkRowsAffected(res, store.ErrQuestionNotFound); err != nil {
		if !errors.Is(err, store.ErrQuestionNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete question",
				slog.Int64("question_id", id),
				slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

func questionsToDomain(rows []questionRow) []domain.Question {
	questions := make([]domain.Question, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, r.toDomain())
	}
	return questions
}
