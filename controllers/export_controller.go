package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dearfam/family-server/config"
	"github.com/dearfam/family-server/middleware"
	"github.com/dearfam/family-server/models"
)

type ExportRequest struct {
	Category *string `json:"category,omitempty"` // parent | family, 없으면 전체
	Format   string  `json:"format"`             // csv | xlsx
}

var recordHeader = []string{"record_id", "question", "answer", "category", "date", "type", "selected_role"}

// POST /api/records/export — 내 답변 기록을 비동기로 내보낸다
func CreateExport(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "잘못된 요청입니다"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" && req.Format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "format은 csv 또는 xlsx여야 합니다"})
		return
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:    jobID,
		MemberID: m.ID,
		Category: req.Category,
		Format:   req.Format,
		Status:   "queued",
	}
	config.DB.Create(&job)

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/exports/:job_id
func GetExport(c *gin.Context) {
	m, ok := middleware.CurrentMember(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "로그인이 필요합니다"})
		return
	}

	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", c.Param("job_id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "작업을 찾을 수 없습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "DB 오류"})
		return
	}
	if job.MemberID != m.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "다른 사람의 내보내기입니다"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	fail := func(err error) {
		em := err.Error()
		zap.L().Error("export job failed", zap.String("job_id", jobID), zap.Error(err))
		config.DB.Model(&job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
	}

	q := config.DB.Where("member_id = ?", job.MemberID)
	if job.Category != nil {
		q = q.Where("category = ?", *job.Category)
	}
	var records []models.QuestionRecord
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		fail(err)
		return
	}

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)
	outPath := path.Join(outDir, fmt.Sprintf("records_%s.%s", job.JobID, job.Format))

	var err error
	if job.Format == "xlsx" {
		err = writeXLSX(outPath, records)
	} else {
		err = writeCSV(outPath, records)
	}
	if err != nil {
		fail(err)
		return
	}

	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": outPath})
}

func recordRow(r models.QuestionRecord) []string {
	role := ""
	if r.SelectedRole != nil {
		role = *r.SelectedRole
	}
	return []string{r.ID, r.Question, r.Answer, r.Category, r.Date, r.Type, role}
}

func writeCSV(outPath string, records []models.QuestionRecord) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(recordHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeXLSX(outPath string, records []models.QuestionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Records"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range recordHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, r := range records {
		for colIdx, v := range recordRow(r) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// 생성 시각 메모
	f.SetCellValue(sheet, fmt.Sprintf("A%d", len(records)+3),
		fmt.Sprintf("exported at %s", time.Now().Format(time.RFC3339)))

	return f.SaveAs(outPath)
}
