package models

import "time"

// QuizShare: 이구동성 퀴즈 공유 링크. 게스트는 share_url로 접근하고
// guest_token_hash로 검증한다(해시만 저장).
type QuizShare struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID       uint      `gorm:"not null" json:"member_id"`
	Question       string    `gorm:"type:text;not null" json:"question"`
	OptionsJSON    string    `gorm:"column:options_json;type:text" json:"-"`
	ShareURL       string    `gorm:"size:64;uniqueIndex;not null" json:"share_url"`
	GuestTokenHash string    `gorm:"type:text" json:"-"`
	Status         string    `gorm:"size:20;default:'active'" json:"status"` // active | closed
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	GuestAnswers []QuizGuestAnswer `gorm:"foreignKey:QuizShareID" json:"-"`
}

func (QuizShare) TableName() string {
	return "quiz_shares"
}

type QuizGuestAnswer struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizShareID uint      `gorm:"not null;index" json:"quiz_share_id"`
	Nickname    string    `gorm:"size:50;not null" json:"nickname"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	Extra       string    `gorm:"type:text" json:"extra"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizGuestAnswer) TableName() string {
	return "quiz_guest_answers"
}
