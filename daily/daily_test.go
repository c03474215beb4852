package daily

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore는 테스트용 인메모리 Store. 유니크 제약까지 흉내낸다.
type memStore struct {
	pools   map[string][]string
	records []Record

	failAll bool // 모든 호출 실패(영속성 오류 시나리오)
}

func newMemStore() *memStore {
	return &memStore{pools: make(map[string][]string)}
}

func poolKey(memberID uint, c Category, date string) string {
	return fmt.Sprintf("%d|%s|%s", memberID, c, date)
}

func (m *memStore) LoadPool(memberID uint, c Category, date string) ([]string, bool, error) {
	if m.failAll {
		return nil, false, errors.New("storage down")
	}
	items, ok := m.pools[poolKey(memberID, c, date)]
	return items, ok, nil
}

func (m *memStore) SavePool(memberID uint, c Category, date string, items []string) error {
	if m.failAll {
		return errors.New("storage down")
	}
	m.pools[poolKey(memberID, c, date)] = items
	return nil
}

func (m *memStore) AppendRecord(rec *Record) error {
	if m.failAll {
		return errors.New("storage down")
	}
	for _, r := range m.records {
		if r.MemberID == rec.MemberID && r.Category == rec.Category &&
			r.Date == rec.Date && r.Question == rec.Question {
			return ErrDuplicateAnswer
		}
	}
	// 최신순 유지
	m.records = append([]Record{*rec}, m.records...)
	return nil
}

func (m *memStore) ListRecordsForDay(memberID uint, c Category, date string) ([]Record, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	var out []Record
	for _, r := range m.records {
		if r.MemberID == memberID && r.Category == c && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) ListRecords(memberID uint, c Category) ([]Record, error) {
	if m.failAll {
		return nil, errors.New("storage down")
	}
	var out []Record
	for _, r := range m.records {
		if r.MemberID != memberID {
			continue
		}
		if c != "" && r.Category != c {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fixedBank struct {
	parent []string
	family []string
	quiz   []QuizQuestion
}

func (b fixedBank) ForCategory(c Category) []string {
	if c == CategoryParent {
		return b.parent
	}
	return b.family
}

func (b fixedBank) QuizQuestions() []QuizQuestion { return b.quiz }

func familyBank(n int) fixedBank {
	qs := make([]string, n)
	for i := range qs {
		qs[i] = fmt.Sprintf("가족 질문 %d", i+1)
	}
	return fixedBank{family: qs}
}

func newTestService(store Store, bank BankProvider, quota int, day string) *Service {
	s := NewService(store, bank, quota)
	t, _ := time.Parse("2006-01-02", day)
	s.now = func() time.Time { return t }
	return s
}

const member = uint(1)

func TestTodayPoolStableWithinDay(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(20), 5, "2025-03-01")

	first, err := s.todayPool(member, CategoryFamily, s.banks.ForCategory(CategoryFamily))
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := s.todayPool(member, CategoryFamily, s.banks.ForCategory(CategoryFamily))
	require.NoError(t, err)
	assert.Equal(t, first, second, "같은 날짜에는 풀이 바뀌면 안 된다")
}

func TestTodayPoolBound(t *testing.T) {
	for n := 0; n <= 12; n++ {
		store := newMemStore()
		s := newTestService(store, familyBank(n), 5, "2025-03-01")

		pool, err := s.todayPool(member, CategoryFamily, s.banks.ForCategory(CategoryFamily))
		require.NoError(t, err)

		want := n
		if want > 5 {
			want = 5
		}
		assert.Len(t, pool, want, "bank size %d", n)
	}
}

func TestTodayPoolRedrawnOnNewDay(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(20), 5, "2025-03-01")

	_, err := s.todayPool(member, CategoryFamily, s.banks.ForCategory(CategoryFamily))
	require.NoError(t, err)

	// 날짜가 넘어가면 첫 접근 때 새 풀을 뽑는다
	next, _ := time.Parse("2006-01-02", "2025-03-02")
	s.now = func() time.Time { return next }

	_, err = s.todayPool(member, CategoryFamily, s.banks.ForCategory(CategoryFamily))
	require.NoError(t, err)

	_, found, err := store.LoadPool(member, CategoryFamily, "2025-03-02")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNextQuestionNoRepeatUntilExhausted(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		q, err := s.NextQuestion(member, CategoryFamily)
		require.NoError(t, err)
		assert.False(t, seen[q.Text], "풀 소진 전에 같은 질문이 다시 나왔다: %s", q.Text)
		seen[q.Text] = true

		_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: q.Text, Answer: "답변"})
		require.NoError(t, err)
	}

	// 풀 소진 후에는 전체 풀에서 다시 뽑는다(답변은 중복으로 거부됨)
	q, err := s.NextQuestion(member, CategoryFamily)
	require.NoError(t, err)
	assert.True(t, seen[q.Text], "소진 후에는 이미 답한 질문 중 하나여야 한다")

	_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: q.Text, Answer: "또 답변"})
	assert.ErrorIs(t, err, ErrDuplicateAnswer)
}

func TestSubmitDuplicateRejected(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	_, err := s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "첫 답"})
	require.NoError(t, err)

	before := len(store.records)
	_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "둘째 답"})
	assert.ErrorIs(t, err, ErrDuplicateAnswer)
	assert.Equal(t, before, len(store.records), "중복 거부 시 원장 크기가 늘면 안 된다")
}

func TestSubmitEmptyAnswer(t *testing.T) {
	s := newTestService(newMemStore(), familyBank(5), 5, "2025-03-01")

	_, err := s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "   "})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestSubmitDontKnowIsOrdinaryAnswer(t *testing.T) {
	s := newTestService(newMemStore(), familyBank(5), 5, "2025-03-01")

	rec, err := s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "잘 모르겠어요"})
	require.NoError(t, err)
	assert.Equal(t, "잘 모르겠어요", rec.Answer)
}

func TestRecordsMostRecentFirst(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	for i := 1; i <= 3; i++ {
		_, err := s.Submit(member, CategoryFamily, SubmitInput{
			Question: fmt.Sprintf("가족 질문 %d", i),
			Answer:   "답",
		})
		require.NoError(t, err)
	}

	recs, err := store.ListRecords(member, CategoryFamily)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "가족 질문 3", recs[0].Question)
	assert.Equal(t, "가족 질문 1", recs[2].Question)
}

func TestProgressMonotonic(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(10), 5, "2025-03-01")

	for i := 0; i < 5; i++ {
		p, err := s.Progress(member, CategoryFamily)
		require.NoError(t, err)
		assert.Equal(t, i, p.Answered)
		assert.False(t, p.Complete, "답변 %d개에서 완료로 표시되면 안 된다", i)

		_, err = s.Submit(member, CategoryFamily, SubmitInput{
			Question: fmt.Sprintf("가족 질문 %d", i+1),
			Answer:   "답",
		})
		require.NoError(t, err)
	}

	p, err := s.Progress(member, CategoryFamily)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Answered)
	assert.True(t, p.Complete)
	assert.Equal(t, "(5/5)", p.Label())
}

func TestProgressCountsDailyOnly(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(10), 5, "2025-03-01")

	_, err := s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "답"})
	require.NoError(t, err)
	_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: "퀴즈 질문", Answer: "답", Type: TypeQuiz})
	require.NoError(t, err)

	p, err := s.Progress(member, CategoryFamily)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Answered, "퀴즈 기록은 일일 진행률에 들어가지 않는다")
}

func TestNextQuestionParentRoleResolved(t *testing.T) {
	bank := fixedBank{parent: []string{
		"{어머님}이 좋아하시는 음식, 혹시 떠오르나요?",
		"{아버님}의 취미는 무엇이었나요?",
		"부모님께 고마웠던 순간, 기억나는 게 있나요?",
	}}
	s := newTestService(newMemStore(), bank, 5, "2025-03-01")

	for i := 0; i < 20; i++ {
		q, err := s.NextQuestion(member, CategoryParent)
		require.NoError(t, err)
		require.NotNil(t, q.Role)
		assert.Contains(t, []Role{RoleMother, RoleFather}, *q.Role)
		assert.NotContains(t, q.Text, "{어머님}")
		assert.NotContains(t, q.Text, "{아버님}")
	}
}

func TestNextQuestionEmptyBank(t *testing.T) {
	s := newTestService(newMemStore(), fixedBank{}, 5, "2025-03-01")

	_, err := s.NextQuestion(member, CategoryFamily)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestPersistenceErrorSurfaced(t *testing.T) {
	store := newMemStore()
	store.failAll = true
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	_, err := s.NextQuestion(member, CategoryFamily)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)

	_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "답"})
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, store.records, "저장 실패가 메모리 상태를 망치면 안 된다")
}

// 하루 전체 흐름: 5문항 은행, 할당량 5
func TestEndToEndFamilyDay(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	var lastQuestion string
	for i := 0; i < 5; i++ {
		q, err := s.NextQuestion(member, CategoryFamily)
		require.NoError(t, err)
		_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: q.Text, Answer: "x"})
		require.NoError(t, err)
		lastQuestion = q.Text
	}

	p, err := s.Progress(member, CategoryFamily)
	require.NoError(t, err)
	assert.Equal(t, Progress{Answered: 5, Quota: 5, Complete: true}, p)

	_, err = s.Submit(member, CategoryFamily, SubmitInput{Question: lastQuestion, Answer: "x"})
	assert.ErrorIs(t, err, ErrDuplicateAnswer)
}

func TestNextQuizExcludesAnswered(t *testing.T) {
	quiz := []QuizQuestion{
		{Question: "퀴즈 1", Options: []string{"a", "b"}},
		{Question: "퀴즈 2", Options: []string{"a", "b"}},
		{Question: "퀴즈 3", Options: []string{"a", "b"}},
	}
	store := newMemStore()
	s := newTestService(store, fixedBank{quiz: quiz}, 5, "2025-03-01")

	answered := make(map[string]bool)
	for i := 0; i < 3; i++ {
		q, err := s.NextQuiz(member)
		require.NoError(t, err)
		assert.False(t, answered[q.Question])
		answered[q.Question] = true

		_, err = s.Submit(member, CategoryParent, SubmitInput{Question: q.Question, Answer: "a", Type: TypeQuiz})
		require.NoError(t, err)
	}

	// 전부 답하면 전체에서 다시 뽑는다
	q, err := s.NextQuiz(member)
	require.NoError(t, err)
	assert.True(t, answered[q.Question])
}

func TestSubmitDefaultsToDailyType(t *testing.T) {
	store := newMemStore()
	s := newTestService(store, familyBank(5), 5, "2025-03-01")

	rec, err := s.Submit(member, CategoryFamily, SubmitInput{Question: "가족 질문 1", Answer: "답"})
	require.NoError(t, err)
	assert.Equal(t, TypeDaily, rec.Type)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2025-03-01", rec.Date)
	assert.False(t, strings.Contains(rec.ID, " "))
}
