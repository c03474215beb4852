package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/models"
	"github.com/dearfam/family-server/utils"
)

const (
	CtxMember = "member"
)

// AuthJWT는 Authorization: Bearer <token>을 검증하고 멤버를 컨텍스트에 넣는다.
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization 헤더가 없거나 잘못되었습니다"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "유효하지 않은 토큰입니다"})
			return
		}

		mid, err := strconv.ParseUint(claims.MemberID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "잘못된 subject"})
			return
		}

		var member models.FamilyMember
		if err := config.DB.First(&member, mid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "멤버를 찾을 수 없습니다"})
			return
		}

		c.Set(CtxMember, member)
		c.Next()
	}
}

// OptionalAuth: 토큰이 있으면 멤버를 싣고, 없어도 통과시킨다(게스트 허용 라우트).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.Next()
			return
		}
		claims, err := utils.VerifyToken(strings.TrimSpace(authHeader[7:]))
		if err != nil {
			c.Next()
			return
		}
		if mid, err := strconv.ParseUint(claims.MemberID, 10, 64); err == nil {
			var member models.FamilyMember
			if err := config.DB.First(&member, mid).Error; err == nil {
				c.Set(CtxMember, member)
			}
		}
		c.Next()
	}
}

// RequireParent는 부모 역할 전용 라우트를 막는다(가족 코드 재발급 등).
func RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxMember)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
			return
		}
		m := v.(models.FamilyMember)
		if m.Role != "parent" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "부모 계정만 사용할 수 있습니다"})
			return
		}
		c.Next()
	}
}

// CurrentMember: 컨트롤러에서 쓰는 헬퍼
func CurrentMember(c *gin.Context) (models.FamilyMember, bool) {
	v, ok := c.Get(CtxMember)
	if !ok {
		return models.FamilyMember{}, false
	}
	m, ok := v.(models.FamilyMember)
	return m, ok
}
