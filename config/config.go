package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dearfam/family-server/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB는 PostgreSQL에 연결하고 테이블을 마이그레이션한다.
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Seoul",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.FamilyMember{},
		&models.QuestionRecord{},
		&models.DailyPool{},
		&models.QuizShare{},
		&models.QuizGuestAnswer{},
		&models.CalendarEvent{},
		&models.Photo{},
		&models.ExportJob{},
		&models.Feedback{},
	)
	if err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	DB = db
	zap.L().Info("connected to PostgreSQL & migrated")
}

// DailyQuota: 하루 질문 할당량(기본 5, 10까지 운영에서 쓴다)
func DailyQuota() int {
	if v := os.Getenv("DAILY_QUOTA"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 5
}
