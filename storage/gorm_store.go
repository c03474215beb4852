// Package storage는 daily.Store 포트의 GORM/PostgreSQL 구현이다.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dearfam/family-server/daily"
	"github.com/dearfam/family-server/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadPool(memberID uint, category daily.Category, date string) ([]string, bool, error) {
	var pool models.DailyPool
	err := s.db.
		Where("member_id = ? AND category = ? AND date = ?", memberID, string(category), date).
		First(&pool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []string
	if err := json.Unmarshal([]byte(pool.ItemsJSON), &items); err != nil {
		return nil, false, fmt.Errorf("broken pool items for member %d: %w", memberID, err)
	}
	return items, true, nil
}

func (s *GormStore) SavePool(memberID uint, category daily.Category, date string, items []string) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	pool := models.DailyPool{
		MemberID:  memberID,
		Category:  string(category),
		Date:      date,
		ItemsJSON: string(raw),
	}
	return s.db.Create(&pool).Error
}

func (s *GormStore) AppendRecord(rec *daily.Record) error {
	row := toModel(rec)
	if err := s.db.Create(&row).Error; err != nil {
		// 유니크 인덱스 위반 → 중복 답변. 동시 쓰기에서도 불변식이 지켜진다.
		if isUniqueViolation(err) {
			return daily.ErrDuplicateAnswer
		}
		return err
	}
	return nil
}

func (s *GormStore) ListRecordsForDay(memberID uint, category daily.Category, date string) ([]daily.Record, error) {
	var rows []models.QuestionRecord
	err := s.db.
		Where("member_id = ? AND category = ? AND date = ?", memberID, string(category), date).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return fromModels(rows), nil
}

func (s *GormStore) ListRecords(memberID uint, category daily.Category) ([]daily.Record, error) {
	q := s.db.Where("member_id = ?", memberID)
	if category != "" {
		q = q.Where("category = ?", string(category))
	}
	var rows []models.QuestionRecord
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromModels(rows), nil
}

func toModel(rec *daily.Record) models.QuestionRecord {
	row := models.QuestionRecord{
		ID:       rec.ID,
		MemberID: rec.MemberID,
		Question: rec.Question,
		Answer:   rec.Answer,
		Category: string(rec.Category),
		Date:     rec.Date,
		Type:     string(rec.Type),
		ParentID: rec.ParentID,
	}
	if rec.SelectedRole != nil {
		role := string(*rec.SelectedRole)
		row.SelectedRole = &role
	}
	return row
}

func fromModels(rows []models.QuestionRecord) []daily.Record {
	out := make([]daily.Record, 0, len(rows))
	for _, row := range rows {
		rec := daily.Record{
			ID:        row.ID,
			MemberID:  row.MemberID,
			Question:  row.Question,
			Answer:    row.Answer,
			Category:  daily.Category(row.Category),
			Date:      row.Date,
			Type:      daily.RecordType(row.Type),
			ParentID:  row.ParentID,
			CreatedAt: row.CreatedAt,
		}
		if row.SelectedRole != nil {
			role := daily.Role(*row.SelectedRole)
			rec.SelectedRole = &role
		}
		out = append(out, rec)
	}
	return out
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx는 SQLSTATE 23505를 메시지에 남긴다
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
