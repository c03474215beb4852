package questionbank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dearfam/family-server/daily"
)

func TestBankNotEmpty(t *testing.T) {
	b := Default()
	require.NotEmpty(t, b.ForCategory(daily.CategoryParent))
	require.NotEmpty(t, b.ForCategory(daily.CategoryFamily))
	require.NotEmpty(t, b.QuizQuestions())
}

func TestUnknownCategoryReturnsNil(t *testing.T) {
	b := Default()
	assert.Nil(t, b.ForCategory(daily.Category("pet")))
}

func TestForCategoryReturnsCopy(t *testing.T) {
	b := Default()
	first := b.ForCategory(daily.CategoryFamily)
	first[0] = "변조된 질문"
	assert.NotEqual(t, "변조된 질문", b.ForCategory(daily.CategoryFamily)[0])
}

// 부모 질문 은행에는 역할 자리표시자가 들어 있어야 표시할 때 치환할 수 있다.
func TestParentQuestionsCarryPlaceholders(t *testing.T) {
	b := Default()
	found := false
	for _, q := range b.ForCategory(daily.CategoryParent) {
		if strings.Contains(q, "{어머님}") || strings.Contains(q, "{아버님}") {
			found = true
			break
		}
	}
	assert.True(t, found, "부모 질문에 자리표시자가 하나도 없다")
}

func TestFamilyQuestionsHaveNoPlaceholders(t *testing.T) {
	b := Default()
	for _, q := range b.ForCategory(daily.CategoryFamily) {
		assert.NotContains(t, q, "{어머님}")
		assert.NotContains(t, q, "{아버님}")
	}
}

func TestQuizQuestionsHaveOptions(t *testing.T) {
	for _, q := range Default().QuizQuestions() {
		assert.NotEmpty(t, q.Question)
		assert.GreaterOrEqual(t, len(q.Options), 2)
	}
}
