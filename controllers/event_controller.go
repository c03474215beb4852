package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
)

type EventReq struct {
	Title       string `json:"title" binding:"required,max=255"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time"`                    // HH:MM
	Description string `json:"description"`
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// POST /api/events — 가족 캘린더 일정 등록
func CreateEvent(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "날짜는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	ev := models.CalendarEvent{
		MemberID:    m.ID,
		FamilyCode:  m.FamilyCode,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	}
	if err := config.DB.Create(&ev).Error; err != nil {
		zap.L().Error("create event failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "일정을 저장할 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// GET /api/events?month=YYYY-MM — 같은 가족의 일정만 보인다
func ListEvents(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	query := config.DB.Where("family_code = ?", m.FamilyCode)
	if month := c.Query("month"); month != "" {
		query = query.Where("date LIKE ?", month+"%")
	}

	var events []models.CalendarEvent
	if err := query.Order("date ASC, time ASC").Find(&events).Error; err != nil {
		zap.L().Error("list events failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "일정을 불러올 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// PUT /api/events/:id — 작성자만 수정
func UpdateEvent(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 ID입니다"})
		return
	}

	var ev models.CalendarEvent
	if err := config.DB.First(&ev, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "일정을 찾을 수 없습니다"})
		return
	}
	if ev.MemberID != m.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "내가 만든 일정만 수정할 수 있습니다"})
		return
	}

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "날짜는 YYYY-MM-DD 형식이어야 합니다"})
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"date":        req.Date,
		"time":        req.Time,
		"description": req.Description,
	}
	if err := config.DB.Model(&ev).Updates(updates).Error; err != nil {
		zap.L().Error("update event failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "일정을 수정할 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, ev)
}

// DELETE /api/events/:id
func DeleteEvent(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 ID입니다"})
		return
	}

	var ev models.CalendarEvent
	if err := config.DB.First(&ev, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "일정을 찾을 수 없습니다"})
		return
	}
	if ev.MemberID != m.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "내가 만든 일정만 삭제할 수 있습니다"})
		return
	}

	if err := config.DB.Delete(&ev).Error; err != nil {
		zap.L().Error("delete event failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "일정을 삭제할 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "삭제되었습니다"})
}
