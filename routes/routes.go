package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dearfam/family-server/controllers"
	"github.com/dearfam/family-server/middleware"
)

func SetupRoutes(r *gin.Engine, dailyCtl *controllers.DailyController, quizCtl *controllers.QuizController) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/google/login", controllers.GoogleLogin)
		}
		api.GET("/me", middleware.AuthJWT(), controllers.Me)
		api.POST("/family/regenerate-code", middleware.AuthJWT(), middleware.RequireParent(), controllers.RegenerateFamilyCode)

		daily := api.Group("/daily")
		daily.Use(middleware.AuthJWT())
		{
			daily.GET("/next", dailyCtl.NextQuestion)
			daily.POST("/answers", middleware.RateLimitSubmit(), dailyCtl.SubmitAnswer)
			daily.GET("/progress", dailyCtl.Progress)
		}

		quiz := api.Group("/quiz")
		{
			quiz.GET("/next", middleware.AuthJWT(), quizCtl.NextQuiz)
			quiz.POST("/answers", middleware.AuthJWT(), middleware.RateLimitSubmit(), quizCtl.SubmitQuiz)
			quiz.POST("/share", middleware.AuthJWT(), quizCtl.ShareQuiz)
			// 공유 링크는 로그인 없이 접근 가능
			quiz.GET("/share/:shareURL", quizCtl.GetSharedQuiz)
			quiz.POST("/share/:shareURL/answers", middleware.RateLimitGuestAnswer(), quizCtl.GuestAnswer)
			quiz.GET("/share/:shareURL/results", middleware.OptionalAuth(), quizCtl.ShareResults)
		}

		records := api.Group("/records")
		records.Use(middleware.AuthJWT())
		{
			records.GET("", controllers.ListRecords)
			records.GET("/answer-rate", controllers.AnswerRate)
			records.GET("/parent-report/:parentId", controllers.ParentReport)
			records.POST("/export", controllers.CreateExport)
		}
		api.GET("/exports/:job_id", middleware.AuthJWT(), controllers.GetExport)

		events := api.Group("/events")
		events.Use(middleware.AuthJWT())
		{
			events.POST("", controllers.CreateEvent)
			events.GET("", controllers.ListEvents)
			events.PUT("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		photos := api.Group("/photos")
		photos.Use(middleware.AuthJWT())
		{
			photos.POST("", controllers.UploadPhoto)
			photos.GET("", controllers.ListPhotos)
			photos.DELETE("/:id", controllers.DeletePhoto)
		}

		api.POST("/feedback", middleware.OptionalAuth(), controllers.CreateFeedback)
	}
}
