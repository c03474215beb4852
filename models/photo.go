package models

import "time"

// Photo: 갤러리 사진 메타데이터. 파일 본체는 Supabase 버킷에 있다.
type Photo struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	Gallery   string    `gorm:"size:50;not null;index" json:"gallery"` // family | parent-<id>
	URL       string    `gorm:"type:text;not null" json:"url"`
	Title     string    `gorm:"size:255" json:"title"`
	Date      string    `gorm:"size:10" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Photo) TableName() string {
	return "photos"
}
