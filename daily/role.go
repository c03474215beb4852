package daily

import "strings"

// 질문 템플릿 안의 역할 플레이스홀더. 선택된 역할의 호칭으로 모두 치환된다.
const (
	placeholderMother = "{어머님}"
	placeholderFather = "{아버님}"
)

// DisplayName은 역할의 표시 호칭을 돌려준다.
func (r Role) DisplayName() string {
	if r == RoleFather {
		return "아버님"
	}
	return "어머님"
}

// ResolveRole은 템플릿의 역할 플레이스홀더를 호칭으로 치환한다. 렌더링과 무관한 순수 함수.
func ResolveRole(template string, role Role) string {
	name := role.DisplayName()
	return strings.NewReplacer(
		placeholderMother, name,
		placeholderFather, name,
	).Replace(template)
}
