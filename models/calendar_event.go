package models

import "time"

type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID    uint      `gorm:"not null;index" json:"member_id"`
	FamilyCode  string    `gorm:"size:6;index;not null" json:"family_code"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Date        string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time        string    `gorm:"size:5" json:"time"`                 // HH:MM
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
