// Package questionbank는 정적 질문 은행을 제공한다. 질문 데이터는 data.go에 있다.
package questionbank

import "github.com/dearfam/family-server/daily"

// Bank는 daily.BankProvider 구현. 내용은 불변이므로 복사본을 돌려준다.
type Bank struct {
	parent []string
	family []string
	quiz   []daily.QuizQuestion
}

// Default는 내장 질문 은행을 돌려준다.
func Default() *Bank {
	return &Bank{
		parent: parentQuestions,
		family: familyQuestions,
		quiz:   unisonQuizQuestions,
	}
}

func (b *Bank) ForCategory(c daily.Category) []string {
	var src []string
	switch c {
	case daily.CategoryParent:
		src = b.parent
	case daily.CategoryFamily:
		src = b.family
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func (b *Bank) QuizQuestions() []daily.QuizQuestion {
	out := make([]daily.QuizQuestion, len(b.quiz))
	copy(out, b.quiz)
	return out
}
