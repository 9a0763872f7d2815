package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"triviaapi/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type TriviaHandler struct {
	triviaService *services.TriviaService
	logger        *zap.Logger
}

func NewTriviaHandler(triviaService *services.TriviaService, logger *zap.Logger) *TriviaHandler {
	return &TriviaHandler{
		triviaService: triviaService,
		logger:        logger,
	}
}

func (h *TriviaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hello World",
	})
}

func (h *TriviaHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.triviaService.Ping(ctx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *TriviaHandler) GetCategories(c *gin.Context) {
	categories, err := h.triviaService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"categories":       categories,
		"current_category": nil,
	})
}

func (h *TriviaHandler) GetQuestions(c *gin.Context) {
	list, err := h.triviaService.ListQuestions(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        list.Questions,
		"total_questions":  list.TotalQuestions,
		"categories":       list.Categories,
		"current_category": nil,
	})
}

func (h *TriviaHandler) GetQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	question, err := h.triviaService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       question.ID,
		"question": question.Question,
		"answer":   question.Answer,
	})
}

func (h *TriviaHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	remaining, err := h.triviaService.DeleteQuestion(c.Request.Context(), questionID, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted_id":      questionID,
		"questions":       remaining.Questions,
		"total_questions": remaining.TotalQuestions,
	})
}

func (h *TriviaHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, services.Unprocessable(err))
		return
	}

	createdID, current, err := h.triviaService.CreateQuestion(c.Request.Context(), &req, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created_id":      createdID,
		"questions":       current.Questions,
		"total_questions": current.TotalQuestions,
	})
}

func (h *TriviaHandler) SearchQuestions(c *gin.Context) {
	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, services.Unprocessable(err))
		return
	}

	matches, err := h.triviaService.SearchQuestions(c.Request.Context(), *req.SearchTerm, pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       matches.Questions,
		"total_questions": matches.TotalQuestions,
	})
}

func (h *TriviaHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		NotFound(c)
		return
	}

	matches, err := h.triviaService.QuestionsByCategory(c.Request.Context(), int(categoryID), pageParam(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"current_category": categoryID,
		"questions":        matches.Questions,
		"total_questions":  matches.TotalQuestions,
	})
}

func (h *TriviaHandler) PlayQuiz(c *gin.Context) {
	var req services.PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, services.Unprocessable(err))
		return
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}

// pageParam reads the 1-based page query parameter. Missing or
// non-numeric values mean the first page. Numbers too large for an int
// clamp to a page past the end in the direction of their sign.
func pageParam(c *gin.Context) int {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return 0
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
