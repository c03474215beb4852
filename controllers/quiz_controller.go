package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/daily"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
	"github.com/dearfam/family-server/utils"
)

// QuizController: 이구동성 퀴즈. 문항 추첨은 코어가, 공유/게스트 답변은 여기서 처리한다.
type QuizController struct {
	svc *daily.Service
}

func NewQuizController(svc *daily.Service) *QuizController {
	return &QuizController{svc: svc}
}

// GET /api/quiz/next
func (ctl *QuizController) NextQuiz(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	q, err := ctl.svc.NextQuiz(m.ID)
	if err != nil {
		if errors.Is(err, daily.ErrEmptyBank) {
			c.JSON(http.StatusNotFound, gin.H{"message": "보여줄 퀴즈가 없습니다"})
			return
		}
		zap.L().Error("next quiz failed", zap.Uint("member_id", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "퀴즈를 불러올 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, q)
}

type SubmitQuizReq struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Extra    string `json:"extra"` // 직접 입력 보충 답변
}

// POST /api/quiz/answers — 퀴즈 답변도 같은 원장에 type=quiz로 쌓인다
func (ctl *QuizController) SubmitQuiz(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var req SubmitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	answer := req.Answer
	if req.Extra != "" {
		answer = fmt.Sprintf("%s - %s", req.Answer, req.Extra)
	}

	rec, err := ctl.svc.Submit(m.ID, daily.CategoryFamily, daily.SubmitInput{
		Question: req.Question,
		Answer:   answer,
		Type:     daily.TypeQuiz,
	})
	if err != nil {
		if errors.Is(err, daily.ErrDuplicateAnswer) {
			c.JSON(http.StatusConflict, gin.H{"accepted": false, "reason": "duplicate"})
			return
		}
		zap.L().Error("submit quiz failed", zap.Uint("member_id", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "답변을 저장할 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"accepted": true, "record": rec})
}

type ShareQuizReq struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options"`
}

// POST /api/quiz/share — 공유 링크 생성. 게스트 토큰 원문은 이 응답에만 내려간다.
func (ctl *QuizController) ShareQuiz(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var req ShareQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	token, err := utils.GenerateShareToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "토큰을 만들 수 없습니다"})
		return
	}
	tokenHash, err := utils.HashShareToken(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "토큰을 만들 수 없습니다"})
		return
	}

	opts, _ := json.Marshal(req.Options)
	share := models.QuizShare{
		MemberID:       m.ID,
		Question:       req.Question,
		OptionsJSON:    string(opts),
		ShareURL:       uuid.NewString(),
		GuestTokenHash: tokenHash,
	}
	if err := config.DB.Create(&share).Error; err != nil {
		zap.L().Error("create quiz share failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "공유 링크를 만들 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"share_url":   share.ShareURL,
		"guest_token": token,
	})
}

// GET /api/quiz/share/:shareURL — 게스트용 공개 조회
func (ctl *QuizController) GetSharedQuiz(c *gin.Context) {
	var share models.QuizShare
	if err := config.DB.
		Where("share_url = ? AND status = 'active'", c.Param("shareURL")).
		First(&share).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "퀴즈를 찾을 수 없습니다"})
		return
	}

	var options []string
	_ = json.Unmarshal([]byte(share.OptionsJSON), &options)

	c.JSON(http.StatusOK, gin.H{
		"question": share.Question,
		"options":  options,
	})
}

type GuestAnswerReq struct {
	Nickname string `json:"nickname" binding:"required,min=1,max=50"`
	Answer   string `json:"answer" binding:"required"`
	Extra    string `json:"extra"`
}

// POST /api/quiz/share/:shareURL/answers — 비로그인 게스트 답변
func (ctl *QuizController) GuestAnswer(c *gin.Context) {
	var share models.QuizShare
	if err := config.DB.
		Where("share_url = ? AND status = 'active'", c.Param("shareURL")).
		First(&share).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "퀴즈를 찾을 수 없습니다"})
		return
	}

	var req GuestAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	// 닉네임당 한 번만
	var count int64
	config.DB.Model(&models.QuizGuestAnswer{}).
		Where("quiz_share_id = ? AND nickname = ?", share.ID, req.Nickname).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"accepted": false, "reason": "duplicate"})
		return
	}

	ga := models.QuizGuestAnswer{
		QuizShareID: share.ID,
		Nickname:    req.Nickname,
		Answer:      req.Answer,
		Extra:       req.Extra,
	}
	if err := config.DB.Create(&ga).Error; err != nil {
		zap.L().Error("guest answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "답변을 저장할 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"accepted": true})
}

// GET /api/quiz/share/:shareURL/results — 만든 사람이 토큰으로 결과를 본다
func (ctl *QuizController) ShareResults(c *gin.Context) {
	var share models.QuizShare
	if err := config.DB.
		Where("share_url = ?", c.Param("shareURL")).
		First(&share).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "퀴즈를 찾을 수 없습니다"})
		return
	}

	// 소유자(JWT) 또는 게스트 토큰
	authorized := false
	if m, ok := middleware.CurrentMember(c); ok && m.ID == share.MemberID {
		authorized = true
	}
	if !authorized && utils.VerifyShareToken(share.GuestTokenHash, c.GetHeader("X-Quiz-Token")) {
		authorized = true
	}
	if !authorized {
		c.JSON(http.StatusForbidden, gin.H{"message": "결과를 볼 권한이 없습니다"})
		return
	}

	var answers []models.QuizGuestAnswer
	config.DB.Where("quiz_share_id = ?", share.ID).Order("created_at ASC").Find(&answers)

	resp := make([]gin.H, 0, len(answers))
	for _, a := range answers {
		resp = append(resp, gin.H{
			"nickname": a.Nickname,
			"answer":   a.Answer,
			"extra":    a.Extra,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"question": share.Question,
		"answers":  resp,
	})
}
