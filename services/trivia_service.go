package services

import (
	"context"
	"errors"

	"triviaapi/models"
	"triviaapi/repository"
)

type TriviaService struct {
	store  repository.TriviaStore
	picker Picker
}

// NewTriviaService builds the service. A nil picker selects uniformly at
// random.
func NewTriviaService(store repository.TriviaStore, picker Picker) *TriviaService {
	if picker == nil {
		picker = NewRandomPicker()
	}
	return &TriviaService{
		store:  store,
		picker: picker,
	}
}

// CreateQuestionRequest mirrors the front-end's add form. Every field is
// optional; absent fields are persisted as NULL.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

type SearchRequest struct {
	SearchTerm *string `json:"search_term" binding:"required"`
}

type PlayRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

// QuizCategory is the category picked on the play screen. ID 0 means all
// categories.
type QuizCategory struct {
	ID   *int   `json:"id" binding:"required"`
	Type string `json:"type"`
}

// QuestionPage is one page of questions along with the size of the full
// result set it was cut from.
type QuestionPage struct {
	Questions      []models.Question
	TotalQuestions int64
}

type QuestionList struct {
	QuestionPage
	Categories []models.Category
}

func (s *TriviaService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, Unprocessable(err)
	}
	return categories, nil
}

// ListQuestions returns a page of all questions plus every category. An
// empty page is ErrNotFound.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionList, error) {
	questions, err := s.store.ListQuestions(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, Unprocessable(err)
	}

	current := Paginate(questions, page)
	if len(current) == 0 {
		return nil, ErrNotFound
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionList{
		QuestionPage: QuestionPage{
			Questions:      current,
			TotalQuestions: int64(len(questions)),
		},
		Categories: categories,
	}, nil
}

func (s *TriviaService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	question, err := s.store.GetQuestion(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, Unprocessable(err)
	}
	return question, nil
}

// DeleteQuestion removes the question and returns the requested page of
// what remains. The deletion is committed before the page is read.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint, page int) (*QuestionPage, error) {
	err := s.store.DeleteQuestion(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, Unprocessable(err)
	}
	return s.currentPage(ctx, page)
}

// CreateQuestion stores a new question and returns its id together with
// the requested page of all questions.
func (s *TriviaService) CreateQuestion(ctx context.Context, req *CreateQuestionRequest, page int) (uint, *QuestionPage, error) {
	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := s.store.CreateQuestion(ctx, &question); err != nil {
		return 0, nil, Unprocessable(err)
	}

	current, err := s.currentPage(ctx, page)
	if err != nil {
		return 0, nil, err
	}
	return question.ID, current, nil
}

// SearchQuestions matches term case-insensitively anywhere in the question
// text. No match is a valid, empty result.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	matches, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, Unprocessable(err)
	}
	return &QuestionPage{
		Questions:      Paginate(matches, page),
		TotalQuestions: int64(len(matches)),
	}, nil
}

// QuestionsByCategory pages through the questions of one category. The
// category itself is not looked up; an empty page is ErrNotFound.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int, page int) (*QuestionPage, error) {
	matches, err := s.store.ListQuestions(ctx, repository.QuestionFilter{Category: &categoryID})
	if err != nil {
		return nil, Unprocessable(err)
	}

	current := Paginate(matches, page)
	if len(current) == 0 {
		return nil, ErrNotFound
	}
	return &QuestionPage{
		Questions:      current,
		TotalQuestions: int64(len(matches)),
	}, nil
}

// NextQuizQuestion picks one question the player has not seen yet from the
// chosen category. A nil question with a nil error means the quiz is over.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req *PlayRequest) (*models.Question, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, ErrUnprocessable
	}

	filter := repository.QuestionFilter{ExcludeIDs: req.PreviousQuestions}
	if categoryID := *req.QuizCategory.ID; categoryID != 0 {
		filter.Category = &categoryID
	}

	candidates, err := s.store.ListQuestions(ctx, filter)
	if err != nil {
		return nil, Unprocessable(err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[s.picker.Pick(len(candidates))]
	return &question, nil
}

func (s *TriviaService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *TriviaService) currentPage(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, Unprocessable(err)
	}
	return &QuestionPage{
		Questions:      Paginate(questions, page),
		TotalQuestions: int64(len(questions)),
	}, nil
}
