package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/daily"
	"github.com/dearfam/family-server/middleware"
)

// DailyController는 일일 질문 코어를 HTTP로 노출한다. 로직은 전부 daily 패키지에 있다.
type DailyController struct {
	svc *daily.Service
}

func NewDailyController(svc *daily.Service) *DailyController {
	return &DailyController{svc: svc}
}

func parseCategory(c *gin.Context) (daily.Category, bool) {
	cat := daily.Category(c.Query("category"))
	if !cat.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category는 parent 또는 family여야 합니다"})
		return "", false
	}
	return cat, true
}

// GET /api/daily/next?category=parent|family
func (ctl *DailyController) NextQuestion(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}
	cat, ok := parseCategory(c)
	if !ok {
		return
	}

	q, err := ctl.svc.NextQuestion(m.ID, cat)
	if err != nil {
		if errors.Is(err, daily.ErrEmptyBank) {
			c.JSON(http.StatusNotFound, gin.H{"message": "보여줄 질문이 없습니다"})
			return
		}
		zap.L().Error("next question failed", zap.Uint("member_id", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "질문을 불러올 수 없습니다"})
		return
	}

	resp := gin.H{"text": q.Text}
	if q.Role != nil {
		resp["role"] = *q.Role
	}
	c.JSON(http.StatusOK, resp)
}

type SubmitAnswerReq struct {
	Category string `json:"category" binding:"required,oneof=parent family"`
	Question string `json:"question" binding:"required"` // 치환이 끝난 원문
	Answer   string `json:"answer" binding:"required"`
	ParentID *uint  `json:"parent_id"`
	Role     string `json:"role" binding:"omitempty,oneof=mother father"`
}

// POST /api/daily/answers
func (ctl *DailyController) SubmitAnswer(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var req SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	in := daily.SubmitInput{
		Question: req.Question,
		Answer:   req.Answer,
		ParentID: req.ParentID,
	}
	if req.Role != "" {
		role := daily.Role(req.Role)
		in.Role = &role
	}

	rec, err := ctl.svc.Submit(m.ID, daily.Category(req.Category), in)
	if err != nil {
		switch {
		case errors.Is(err, daily.ErrDuplicateAnswer):
			// 오늘 이미 답한 질문. 클라이언트는 다음 질문을 다시 뽑으면 된다.
			c.JSON(http.StatusConflict, gin.H{"accepted": false, "reason": "duplicate"})
		case errors.Is(err, daily.ErrEmptyAnswer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "답변을 입력해주세요"})
		default:
			zap.L().Error("submit answer failed", zap.Uint("member_id", m.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "답변을 저장할 수 없습니다"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"accepted": true, "record": rec})
}

// GET /api/daily/progress?category=parent|family
func (ctl *DailyController) Progress(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}
	cat, ok := parseCategory(c)
	if !ok {
		return
	}

	p, err := ctl.svc.Progress(m.ID, cat)
	if err != nil {
		zap.L().Error("progress failed", zap.Uint("member_id", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "진행 상태를 불러올 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answered": p.Answered,
		"quota":    p.Quota,
		"complete": p.Complete,
		"label":    p.Label(),
	})
}
