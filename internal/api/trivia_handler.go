package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/domain"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
	"github.com/phrazzld/crudsuite/internal/service"
)

// firstPage is used when GET /questions has no page parameter.
var firstPage = domain.Page{Number: 1, Size: domain.PageSize}

// TriviaHandler handles the trivia question and quiz requests.
type TriviaHandler struct {
	triviaService service.TriviaService
	logger        *slog.Logger
}

// NewTriviaHandler creates a new TriviaHandler
func NewTriviaHandler(triviaService service.TriviaService, logger *slog.Logger) *TriviaHandler {
	if triviaService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("triviaService cannot be nil for TriviaHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TriviaHandler{
		triviaService: triviaService,
		logger:        logger.With(slog.String("component", "trivia_handler")),
	}
}

// ListQuestions handles GET /questions?page=N.
func (h *TriviaHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := getPage(r, firstPage)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.triviaService.ListQuestions(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionListResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// ListCategories handles GET /categories.
func (h *TriviaHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.triviaService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      categoryMap(categories),
		TotalCategories: len(categories),
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *TriviaHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	question, err := h.triviaService.DeleteQuestion(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteQuestionResponse{
		Success:  true,
		Deleted:  id,
		Question: *question,
	})
}

// CreateQuestion handles POST /questions.
func (h *TriviaHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	question, err := h.triviaService.CreateQuestion(r.Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatedResponse{Success: true, Created: question.ID})
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *TriviaHandler) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	category, questions, err := h.triviaService.QuestionsByCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: &category.Type,
	})
}

// SearchQuestions handles POST /questions/search.
func (h *TriviaHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchQuestionsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	questions, err := h.triviaService.SearchQuestions(r.Context(), req.SearchTerm)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	})
}

// NextQuizQuestion handles POST /quizzes.
func (h *TriviaHandler) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	question, err := h.triviaService.NextQuizQuestion(r.Context(), req.PreviousQuestions, service.QuizCategory{
		ID:   int64(req.QuizCategory.ID),
		Type: req.QuizCategory.Type,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if question == nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("quiz finished",
			slog.Int("previous_questions", len(req.PreviousQuestions)))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{Success: true, Question: question})
}
