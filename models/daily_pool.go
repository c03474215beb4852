package models

import "time"

// DailyPool은 하루 동안 고정되는 질문 부분집합. 날짜가 넘어가면 새로 뽑는다.
type DailyPool struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  uint      `gorm:"not null;uniqueIndex:idx_member_pool_day" json:"member_id"`
	Category  string    `gorm:"size:10;not null;uniqueIndex:idx_member_pool_day" json:"category"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_member_pool_day" json:"date"`
	ItemsJSON string    `gorm:"column:items_json;type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyPool) TableName() string {
	return "daily_pools"
}
