package models

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  *uint     `json:"member_id,omitempty"` // 비로그인 피드백 허용
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
