package daily

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAnswer: 같은 날 같은 질문에 이미 답변이 있음. 호출측은 다른 질문을 다시 뽑으면 된다.
	ErrDuplicateAnswer = errors.New("duplicate answer for question")
	// ErrEmptyBank: 해당 카테고리의 질문 은행이 비어 있음
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrEmptyAnswer: 빈 답변은 기록하지 않는다
	ErrEmptyAnswer = errors.New("answer must not be empty")
)

// PersistenceError는 저장소 호출 실패를 감싼다. 코어는 재시도하지 않고 호출측에 그대로 알린다.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("daily: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
