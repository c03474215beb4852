package models

import "time"

type FamilyMember struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // 구글 로그인 계정은 비어 있을 수 있음
	Role         string    `gorm:"size:10;not null;default:'child'" json:"role"` // parent | child
	FamilyCode   string    `gorm:"size:6;index;not null" json:"family_code"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Records []QuestionRecord `gorm:"foreignKey:MemberID" json:"-"`
	Photos  []Photo          `gorm:"foreignKey:MemberID" json:"-"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}
