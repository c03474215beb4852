package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
	"github.com/dearfam/family-server/utils"
)

type RegisterReq struct {
	Name       string `json:"name" binding:"required,min=1"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=parent child"`
	FamilyCode string `json:"family_code"` // 비어 있으면 새 가족 코드를 만든다
}

func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.FamilyMember{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "이미 가입된 이메일입니다"})
		return
	}

	code := req.FamilyCode
	if code == "" {
		generated, err := utils.GenerateFamilyCode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "가족 코드를 만들 수 없습니다"})
			return
		}
		code = generated
	} else {
		// 기존 가족에 합류: 코드가 실제로 존재해야 한다
		var members int64
		config.DB.Model(&models.FamilyMember{}).Where("family_code = ?", code).Count(&members)
		if members == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "존재하지 않는 가족 코드입니다"})
			return
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "비밀번호를 암호화할 수 없습니다"})
		return
	}

	m := models.FamilyMember{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FamilyCode:   code,
	}
	if err := config.DB.Create(&m).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "계정을 만들 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": memberJSON(m)})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	var m models.FamilyMember
	if err := config.DB.Where("email = ?", req.Email).First(&m).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "이메일 또는 비밀번호가 올바르지 않습니다"})
		return
	}
	if !utils.CheckPassword(m.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "이메일 또는 비밀번호가 올바르지 않습니다"})
		return
	}

	token, err := utils.GenerateToken(fmt.Sprintf("%d", m.ID), m.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "토큰을 발급할 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "member": memberJSON(m)})
}

type GoogleLoginReq struct {
	IDToken    string `json:"id_token" binding:"required"`
	Role       string `json:"role"`        // 최초 가입 시에만 사용
	FamilyCode string `json:"family_code"` // 최초 가입 시에만 사용
}

// GoogleLogin은 구글 ID 토큰을 검증하고, 처음 보는 이메일이면 가입까지 처리한다.
func GoogleLogin(c *gin.Context) {
	var req GoogleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "구글 토큰 검증에 실패했습니다"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "이메일 정보가 없는 토큰입니다"})
		return
	}

	var m models.FamilyMember
	err = config.DB.Where("email = ?", email).First(&m).Error
	if err != nil {
		// 최초 로그인 → 가입
		role := req.Role
		if role != "parent" {
			role = "child"
		}
		code := req.FamilyCode
		if code == "" {
			code, err = utils.GenerateFamilyCode()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "가족 코드를 만들 수 없습니다"})
				return
			}
		}
		if name == "" {
			name = email
		}
		m = models.FamilyMember{Name: name, Email: email, Role: role, FamilyCode: code}
		if err := config.DB.Create(&m).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "계정을 만들 수 없습니다"})
			return
		}
	}

	token, err := utils.GenerateToken(fmt.Sprintf("%d", m.ID), m.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "토큰을 발급할 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "member": memberJSON(m)})
}

// Me: 내 정보 + 같은 가족 코드의 구성원 목록
func Me(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var family []models.FamilyMember
	config.DB.Where("family_code = ?", m.FamilyCode).Order("joined_at ASC").Find(&family)

	members := make([]gin.H, 0, len(family))
	for _, f := range family {
		members = append(members, memberJSON(f))
	}

	c.JSON(http.StatusOK, gin.H{"member": memberJSON(m), "family": members})
}

// RegenerateFamilyCode는 가족 코드를 새로 발급한다. 부모 계정 전용.
// 같은 코드를 쓰던 구성원 전원이 새 코드로 옮겨간다.
func RegenerateFamilyCode(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	code, err := utils.GenerateFamilyCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "가족 코드를 만들 수 없습니다"})
		return
	}

	err = config.DB.Model(&models.FamilyMember{}).
		Where("family_code = ?", m.FamilyCode).
		Update("family_code", code).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "가족 코드를 바꿀 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"family_code": code})
}

func memberJSON(m models.FamilyMember) gin.H {
	return gin.H{
		"id":          m.ID,
		"name":        m.Name,
		"email":       m.Email,
		"role":        m.Role,
		"family_code": m.FamilyCode,
		"joined_at":   m.JoinedAt,
	}
}
