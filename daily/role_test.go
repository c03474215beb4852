package daily

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		template string
		role     Role
		want     string
	}{
		{
			name:     "어머니 치환",
			template: "{어머님}이 좋아하시는 음식, 혹시 떠오르나요?",
			role:     RoleMother,
			want:     "어머님이 좋아하시는 음식, 혹시 떠오르나요?",
		},
		{
			name:     "아버지 플레이스홀더에 어머니 역할",
			template: "{아버님}의 취미는 무엇이었나요?",
			role:     RoleMother,
			want:     "어머님의 취미는 무엇이었나요?",
		},
		{
			name:     "아버지 치환",
			template: "{어머님}이 좋아하는 색깔, 어떤 색이었나요?",
			role:     RoleFather,
			want:     "아버님이 좋아하는 색깔, 어떤 색이었나요?",
		},
		{
			name:     "플레이스홀더 없는 템플릿은 그대로",
			template: "부모님께 고마웠던 순간, 기억나는 게 있나요?",
			role:     RoleFather,
			want:     "부모님께 고마웠던 순간, 기억나는 게 있나요?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRole(tt.template, tt.role))
		})
	}
}

func TestRoleDisplayName(t *testing.T) {
	assert.Equal(t, "어머님", RoleMother.DisplayName())
	assert.Equal(t, "아버님", RoleFather.DisplayName())
}
