package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/daily"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
	"github.com/dearfam/family-server/questionbank"
)

// 답변률 계산에서 제외하는 회피성 답변
var nonAnswers = []string{"잘 모르겠어요", "기억이 안나요"}

func isValidAnswer(answer string) bool {
	for _, na := range nonAnswers {
		if strings.Contains(answer, na) {
			return false
		}
	}
	return true
}

// GET /api/records?category=&type=&page=&limit=
func ListRecords(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.QuestionRecord{}).Where("member_id = ?", m.ID)
	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	if typ := c.Query("type"); typ != "" {
		query = query.Where("type = ?", typ)
	}

	var total int64
	query.Count(&total)

	var records []models.QuestionRecord
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error; err != nil {
		zap.L().Error("list records failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "기록을 불러올 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":    page,
		"limit":   limit,
		"total":   total,
		"records": records,
	})
}

// GET /api/records/answer-rate — "잘 모르겠어요" 류를 뺀 유효 답변률
func AnswerRate(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var records []models.QuestionRecord
	if err := config.DB.
		Where("member_id = ?", m.ID).
		Find(&records).Error; err != nil {
		zap.L().Error("answer rate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "기록을 불러올 수 없습니다"})
		return
	}

	valid := 0
	for _, r := range records {
		if isValidAnswer(r.Answer) {
			valid++
		}
	}

	rate := 0.0
	if len(records) > 0 {
		rate = float64(valid) * 100 / float64(len(records))
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(records),
		"valid": valid,
		"rate":  rate,
	})
}

// GET /api/records/parent-report/:parentId — 부모님 한 분에 대한 리포트.
// 답변 수, 쌓인 기억, 아직 안 물어본 질문 제안(역할 호칭으로 치환해서 최대 3개).
func ParentReport(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	parentID, err := strconv.Atoi(c.Param("parentId"))
	if err != nil || parentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 ID입니다"})
		return
	}

	var parent models.FamilyMember
	if err := config.DB.
		Where("id = ? AND family_code = ?", parentID, m.FamilyCode).
		First(&parent).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "부모님 정보를 찾을 수 없습니다"})
		return
	}

	role := c.DefaultQuery("role", string(daily.RoleMother))
	if role != string(daily.RoleMother) && role != string(daily.RoleFather) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "role은 mother 또는 father여야 합니다"})
		return
	}

	var records []models.QuestionRecord
	if err := config.DB.
		Where("member_id = ? AND parent_id = ? AND category = ? AND type = ? AND selected_role = ?",
			m.ID, parentID, "parent", "daily", role).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		zap.L().Error("parent report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "리포트를 만들 수 없습니다"})
		return
	}

	answered := make(map[string]bool, len(records))
	for _, r := range records {
		answered[r.Question] = true
	}

	// 아직 안 물어본 질문을 역할 호칭으로 치환해서 제안한다
	var suggestions []string
	for _, tpl := range questionbank.Default().ForCategory(daily.CategoryParent) {
		resolved := daily.ResolveRole(tpl, daily.Role(role))
		if !answered[resolved] {
			suggestions = append(suggestions, resolved)
		}
		if len(suggestions) == 3 {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"parent":         gin.H{"id": parent.ID, "name": parent.Name},
		"total_answered": len(records),
		"moments":        records,
		"suggestions":    suggestions,
	})
}
