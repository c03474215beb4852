package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
)

type FeedbackReq struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// POST /api/feedback — 로그인 여부와 무관하게 받는다
func CreateFeedback(c *gin.Context) {
	var req FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	fb := models.Feedback{Content: req.Content}
	if m, ok := middleware.CurrentMember(c); ok {
		fb.MemberID = &m.ID
	}

	if err := config.DB.Create(&fb).Error; err != nil {
		zap.L().Error("create feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "의견을 저장할 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "소중한 의견 감사합니다"})
}
