// Package daily는 일일 질문 로테이션과 답변 원장을 담당한다.
// 하루 단위 풀 선택 → 미답변 질문 추첨 → 답변 기록(중복 거부) → 진행률 계산.
// 저장소는 Store 포트로 주입받는다.
package daily

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BankProvider는 정적 질문 은행을 제공한다.
type BankProvider interface {
	ForCategory(c Category) []string
	QuizQuestions() []QuizQuestion
}

// QuizQuestion: 이구동성 퀴즈 한 문항(고정 선택지 포함)
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Question은 화면에 보여줄 다음 질문. parent 카테고리면 역할이 함께 결정된다.
type Question struct {
	Text string `json:"text"`
	Role *Role  `json:"role,omitempty"`
}

// Progress는 오늘 답변 개수와 할당량으로만 계산되는 읽기 전용 투영이다.
type Progress struct {
	Answered int  `json:"answered"`
	Quota    int  `json:"quota"`
	Complete bool `json:"complete"`
}

// Label은 "(답변/할당량)" 형식 문자열
func (p Progress) Label() string {
	return fmt.Sprintf("(%d/%d)", p.Answered, p.Quota)
}

// SubmitInput: 답변 등록 요청. Question은 치환이 끝난 원문이어야 한다.
type SubmitInput struct {
	Question string
	Answer   string
	Type     RecordType // 비어 있으면 daily
	ParentID *uint
	Role     *Role
}

// Service가 코어 전체(선택기/추첨기/원장/진행률)를 묶는다.
type Service struct {
	store Store
	banks BankProvider
	quota int
	now   func() time.Time
}

func NewService(store Store, banks BankProvider, quota int) *Service {
	if quota <= 0 {
		quota = 5
	}
	return &Service{
		store: store,
		banks: banks,
		quota: quota,
		now:   time.Now,
	}
}

func (s *Service) Quota() int { return s.quota }

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

// todayPool은 오늘 날짜로 저장된 풀이 있으면 그대로, 없으면 은행을 섞어
// quota개를 뽑아 저장한 뒤 돌려준다. 같은 날 안에서는 항상 같은 풀.
func (s *Service) todayPool(memberID uint, category Category, bank []string) ([]string, error) {
	date := s.today()

	items, found, err := s.store.LoadPool(memberID, category, date)
	if err != nil {
		return nil, persistErr("load pool", err)
	}
	if found {
		return items, nil
	}

	shuffled := make([]string, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > s.quota {
		shuffled = shuffled[:s.quota]
	}

	if err := s.store.SavePool(memberID, category, date, shuffled); err != nil {
		return nil, persistErr("save pool", err)
	}
	return shuffled, nil
}

// answeredMatch: 풀 항목이 이미 답변됐는지 비교. 기록에는 치환된 원문이 들어가므로
// 템플릿 원문과 양쪽 역할 치환 결과를 모두 대조한다.
func answeredMatch(item string, answered map[string]bool) bool {
	if answered[item] {
		return true
	}
	return answered[ResolveRole(item, RoleMother)] || answered[ResolveRole(item, RoleFather)]
}

// NextQuestion은 오늘 풀에서 아직 답하지 않은 질문을 무작위로 고른다.
// 풀이 소진되면 전체 풀에서 다시 뽑는다(원장이 중복 등록은 막는다).
func (s *Service) NextQuestion(memberID uint, category Category) (Question, error) {
	bank := s.banks.ForCategory(category)
	if len(bank) == 0 {
		return Question{}, ErrEmptyBank
	}

	pool, err := s.todayPool(memberID, category, bank)
	if err != nil {
		return Question{}, err
	}
	if len(pool) == 0 {
		return Question{}, ErrEmptyBank
	}

	recs, err := s.store.ListRecordsForDay(memberID, category, s.today())
	if err != nil {
		return Question{}, persistErr("list records", err)
	}
	answered := make(map[string]bool, len(recs))
	for _, r := range recs {
		if r.Type == TypeDaily {
			answered[r.Question] = true
		}
	}

	available := make([]string, 0, len(pool))
	for _, item := range pool {
		if !answeredMatch(item, answered) {
			available = append(available, item)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	picked := available[rand.Intn(len(available))]

	if category == CategoryParent {
		role := RoleMother
		if rand.Intn(2) == 1 {
			role = RoleFather
		}
		return Question{Text: ResolveRole(picked, role), Role: &role}, nil
	}
	return Question{Text: picked}, nil
}

// Submit은 답변 한 건을 원장에 기록한다. 같은 (카테고리, 날짜, 질문) 기록이
// 이미 있으면 ErrDuplicateAnswer. "잘 모르겠어요"도 보통 답변과 똑같이 다룬다.
func (s *Service) Submit(memberID uint, category Category, in SubmitInput) (*Record, error) {
	if strings.TrimSpace(in.Answer) == "" {
		return nil, ErrEmptyAnswer
	}
	typ := in.Type
	if typ == "" {
		typ = TypeDaily
	}
	date := s.today()

	recs, err := s.store.ListRecordsForDay(memberID, category, date)
	if err != nil {
		return nil, persistErr("list records", err)
	}
	for _, r := range recs {
		if r.Question == in.Question {
			return nil, ErrDuplicateAnswer
		}
	}

	rec := &Record{
		ID:           uuid.NewString(),
		MemberID:     memberID,
		Question:     in.Question,
		Answer:       in.Answer,
		Category:     category,
		Date:         date,
		Type:         typ,
		ParentID:     in.ParentID,
		SelectedRole: in.Role,
		CreatedAt:    s.now(),
	}
	if err := s.store.AppendRecord(rec); err != nil {
		if errors.Is(err, ErrDuplicateAnswer) {
			// 저장소 유니크 제약에 걸린 경우(동시 쓰기 백업)
			return nil, ErrDuplicateAnswer
		}
		return nil, persistErr("append record", err)
	}
	return rec, nil
}

// Progress는 원장만 보고 오늘 진행 상태를 계산한다. 캐시 없음.
func (s *Service) Progress(memberID uint, category Category) (Progress, error) {
	recs, err := s.store.ListRecordsForDay(memberID, category, s.today())
	if err != nil {
		return Progress{}, persistErr("list records", err)
	}
	n := 0
	for _, r := range recs {
		if r.Type == TypeDaily {
			n++
		}
	}
	return Progress{Answered: n, Quota: s.quota, Complete: n >= s.quota}, nil
}

// NextQuiz는 아직 답하지 않은 이구동성 퀴즈를 무작위로 고른다.
// 퀴즈는 날짜 풀 없이 전체 기록 기준으로 제외하고, 소진되면 전체에서 다시 뽑는다.
func (s *Service) NextQuiz(memberID uint) (QuizQuestion, error) {
	quizzes := s.banks.QuizQuestions()
	if len(quizzes) == 0 {
		return QuizQuestion{}, ErrEmptyBank
	}

	recs, err := s.store.ListRecords(memberID, "")
	if err != nil {
		return QuizQuestion{}, persistErr("list records", err)
	}
	answered := make(map[string]bool)
	for _, r := range recs {
		if r.Type == TypeQuiz {
			answered[r.Question] = true
		}
	}

	available := make([]QuizQuestion, 0, len(quizzes))
	for _, q := range quizzes {
		if !answered[q.Question] {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = quizzes
	}
	return available[rand.Intn(len(available))], nil
}
