package routes

import (
	"triviaapi/handlers"
	"triviaapi/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the full middleware chain and the
// trivia routes. Unknown paths answer 404 and known paths called with the
// wrong verb answer 405, both in the JSON error envelope.
func NewRouter(logger *zap.Logger, triviaHandler *handlers.TriviaHandler, metrics *middleware.Metrics) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
		metrics.Middleware(),
		middleware.CORS(),
	)

	SetupRoutes(router, triviaHandler, metrics)

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	return router
}

func SetupRoutes(router *gin.Engine, triviaHandler *handlers.TriviaHandler, metrics *middleware.Metrics) {
	router.GET("/", triviaHandler.Index)

	categories := router.Group("/categories")
	{
		categories.GET("", triviaHandler.GetCategories)
		categories.GET("/:id/questions", triviaHandler.GetQuestionsByCategory)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", triviaHandler.GetQuestions)
		questions.POST("", triviaHandler.CreateQuestion)
		questions.POST("/search", triviaHandler.SearchQuestions)
		questions.GET("/:id", triviaHandler.GetQuestion)
		questions.DELETE("/:id", triviaHandler.DeleteQuestion)
	}

	router.POST("/play", triviaHandler.PlayQuiz)

	// Health check endpoint
	router.GET("/health", triviaHandler.Health)
	router.GET("/metrics", metrics.Handler())
}
