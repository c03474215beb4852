package utils

import "crypto/rand"

// 헷갈리는 문자(0/O, 1/I)를 뺀 코드 알파벳
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateFamilyCode는 가족 초대용 6자리 코드를 만든다.
func GenerateFamilyCode() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}
