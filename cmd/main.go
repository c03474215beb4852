package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/controllers"
	"github.com/dearfam/family-server/daily"
	"github.com/dearfam/family-server/questionbank"
	"github.com/dearfam/family-server/routes"
	"github.com/dearfam/family-server/storage"
)

func main() {
	// .env는 로컬 개발 편의용, 없어도 무방
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// DB 연결 + AutoMigrate
	config.ConnectDB()

	svc := daily.NewService(storage.NewGormStore(config.DB), questionbank.Default(), config.DailyQuota())
	dailyCtl := controllers.NewDailyController(svc)
	quizCtl := controllers.NewQuizController(svc)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "http://localhost:5173" || origin == "https://app.dearfam.kr"
		},
		AllowMethods:           []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Type", "Authorization", "X-Quiz-Token"},
		ExposeHeaders:          []string{"Content-Length"},
		AllowCredentials:       true,
		MaxAge:                 12 * time.Hour,
		AllowWildcard:          true,
		AllowBrowserExtensions: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Family server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r, dailyCtl, quizCtl)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	zap.L().Info("server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
