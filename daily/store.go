package daily

import "time"

// Category: 질문 은행 구분
type Category string

const (
	CategoryParent Category = "parent"
	CategoryFamily Category = "family"
)

func (c Category) Valid() bool {
	return c == CategoryParent || c == CategoryFamily
}

// RecordType: 일일 질문 / 이구동성 퀴즈
type RecordType string

const (
	TypeDaily RecordType = "daily"
	TypeQuiz  RecordType = "quiz"
)

// Role: 부모님 질문의 역할 치환 대상
type Role string

const (
	RoleMother Role = "mother"
	RoleFather Role = "father"
)

// Record는 원장에 쌓이는 답변 한 건. 생성 이후 수정하지 않는다.
type Record struct {
	ID           string
	MemberID     uint
	Question     string // 치환이 끝난 질문 원문
	Answer       string
	Category     Category
	Date         string // YYYY-MM-DD
	Type         RecordType
	ParentID     *uint
	SelectedRole *Role
	CreatedAt    time.Time
}

// Store는 코어가 의존하는 영속성 포트. 컨트롤러/테스트가 구현을 주입한다.
type Store interface {
	// LoadPool은 해당 날짜의 풀을 돌려준다. 없으면 found=false (에러 아님).
	LoadPool(memberID uint, category Category, date string) (items []string, found bool, err error)
	SavePool(memberID uint, category Category, date string, items []string) error

	// AppendRecord는 중복이면 ErrDuplicateAnswer를 돌려줘야 한다(저장소 유니크 제약 백업).
	AppendRecord(rec *Record) error
	// ListRecordsForDay: 해당 날짜 기록, 최신순
	ListRecordsForDay(memberID uint, category Category, date string) ([]Record, error)
	// ListRecords: 전체 기록(히스토리 화면용), category가 빈 값이면 전체, 최신순
	ListRecords(memberID uint, category Category) ([]Record, error)
}
