package models

import "time"

// QuestionRecord는 답변 원장의 한 줄. 생성 후 수정하지 않는다.
// (member_id, category, date, question) 유니크 인덱스가 하루 한 번 답변 불변식을
// 저장소 수준에서 지켜준다. 동시에 쓰여도 두 번째 insert는 실패한다.
type QuestionRecord struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID     uint      `gorm:"not null;uniqueIndex:idx_member_question_day" json:"member_id"`
	Question     string    `gorm:"type:text;not null;uniqueIndex:idx_member_question_day" json:"question"`
	Answer       string    `gorm:"type:text;not null" json:"answer"`
	Category     string    `gorm:"size:10;not null;uniqueIndex:idx_member_question_day" json:"category"` // parent | family
	Date         string    `gorm:"size:10;not null;uniqueIndex:idx_member_question_day" json:"date"`     // YYYY-MM-DD
	Type         string    `gorm:"size:10;not null;default:'daily'" json:"type"`                         // daily | quiz
	ParentID     *uint     `gorm:"column:parent_id" json:"parent_id,omitempty"`
	SelectedRole *string   `gorm:"size:10" json:"selected_role,omitempty"` // mother | father
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuestionRecord) TableName() string {
	return "question_records"
}
