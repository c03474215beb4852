package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
	"github.com/dearfam/family-server/utils"
)

const maxPhotoSize = 10 << 20 // 10MB

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// POST /api/photos (multipart) — gallery: family | parent-<id>
func UploadPhoto(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "파일을 받지 못했습니다"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "파일이 너무 큽니다 (최대 10MB)"})
		return
	}

	// 앞 512바이트로 실제 타입을 확인한다
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "파일을 열 수 없습니다"})
		return
	}
	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	f.Close()
	contentType := http.DetectContentType(buf[:n])
	if !allowedPhotoTypes[contentType] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"message": "이미지 파일만 올릴 수 있습니다"})
		return
	}

	gallery := c.DefaultPostForm("gallery", "family")
	title := c.DefaultPostForm("title", "새로운 사진")

	fileID := fmt.Sprintf("%d_%d", m.ID, time.Now().UnixNano())
	publicURL, err := utils.UploadToSupabase(fileHeader, fileHeader.Filename, fileID, gallery, contentType)
	if err != nil {
		zap.L().Error("photo upload failed", zap.Uint("member_id", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "업로드에 실패했습니다"})
		return
	}

	photo := models.Photo{
		MemberID: m.ID,
		Gallery:  gallery,
		URL:      publicURL,
		Title:    title,
		Date:     time.Now().Format("2006-01-02"),
	}
	if err := config.DB.Create(&photo).Error; err != nil {
		zap.L().Error("photo save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "사진 정보를 저장할 수 없습니다"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// GET /api/photos?gallery=family — 최신순
func ListPhotos(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	gallery := c.DefaultQuery("gallery", "family")

	// 같은 가족 구성원이 올린 사진만
	var photos []models.Photo
	err := config.DB.
		Joins("JOIN family_members ON family_members.id = photos.member_id").
		Where("family_members.family_code = ? AND photos.gallery = ?", m.FamilyCode, gallery).
		Order("photos.created_at DESC").
		Find(&photos).Error
	if err != nil {
		zap.L().Error("list photos failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "사진을 불러올 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// DELETE /api/photos/:id — 올린 사람만
func DeletePhoto(c *gin.Context) {
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

	var photo models.Photo
	if err := config.DB.First(&photo, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "사진을 찾을 수 없습니다"})
		return
	}
	if photo.MemberID != m.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "내가 올린 사진만 삭제할 수 있습니다"})
		return
	}

	if err := config.DB.Delete(&photo).Error; err != nil {
		zap.L().Error("delete photo failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "사진을 삭제할 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "삭제되었습니다"})
}
