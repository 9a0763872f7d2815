package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"triviaapi/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// QuestionFilter narrows ListQuestions. Zero values disable a criterion.
// A non-nil empty SearchTerm still excludes questions without text.
type QuestionFilter struct {
	Category   *int
	SearchTerm *string
	ExcludeIDs []uint
}

// TriviaStore is the persistence surface the trivia service depends on.
type TriviaStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id uint) (*models.Question, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type triviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) TriviaStore {
	return &triviaRepository{db: db}
}

func (r *triviaRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *triviaRepository) ListQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error) {
	query := r.db.WithContext(ctx).Model(&models.Question{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.SearchTerm != nil {
		clause, pattern := searchClause(r.db.Dialector.Name(), *filter.SearchTerm)
		query = query.Where(clause, pattern)
	}
	// NOT IN with an empty list renders as NOT IN (NULL), which matches nothing
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	questions := []models.Question{}
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (r *triviaRepository) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	return r.ListQuestions(ctx, QuestionFilter{SearchTerm: &term})
}

func (r *triviaRepository) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (r *triviaRepository) CreateQuestion(ctx context.Context, question *models.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

// DeleteQuestion removes the question inside a transaction. The transaction
// is committed before DeleteQuestion returns and rolled back on any error.
func (r *triviaRepository) DeleteQuestion(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question models.Question
		err := tx.Where("id = ?", id).First(&question).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("find question %d: %w", id, err)
		}

		result := tx.Delete(&question)
		if result.Error != nil {
			return fmt.Errorf("delete question %d: %w", id, result.Error)
		}
		// a concurrent delete won the race
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *triviaRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// searchClause returns a case-insensitive substring condition on the
// question text and its bound pattern. Postgres gets ILIKE; other dialects
// compare against the lowercased column. NULL text never matches.
func searchClause(dialect, term string) (string, string) {
	if dialect == "postgres" {
		return `question ILIKE ? ESCAPE '\'`, containsPattern(term)
	}
	return `LOWER(question) LIKE ? ESCAPE '\'`, containsPattern(strings.ToLower(term))
}

// containsPattern builds a LIKE pattern matching term anywhere, with LIKE
// wildcards in term taken literally.
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}
