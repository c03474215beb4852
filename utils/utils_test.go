package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTokenRoundTrip(t *testing.T) {
	token, err := GenerateShareToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	hash, err := HashShareToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, hash)

	assert.True(t, VerifyShareToken(hash, token))
	assert.False(t, VerifyShareToken(hash, token+"x"))
	assert.False(t, VerifyShareToken(hash, ""))
	assert.False(t, VerifyShareToken("", token))
}

func TestHashShareTokenRejectsEmpty(t *testing.T) {
	_, err := HashShareToken("")
	assert.Error(t, err)
}

func TestGenerateFamilyCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateFamilyCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, ch), "코드에 허용되지 않은 문자: %c", ch)
		}
		seen[code] = true
	}
	// 50회 생성에서 전부 같은 코드가 나올 확률은 사실상 0
	assert.Greater(t, len(seen), 1)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret-pw-1")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "secret-pw-1"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("42", "parent")
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.MemberID)
	assert.Equal(t, "parent", claims.Role)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := VerifyToken("not.a.jwt")
	assert.Error(t, err)
}
