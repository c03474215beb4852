package questionbank

import "github.com/dearfam/family-server/daily"

// 부모님 질문 템플릿. {어머님}/{아버님}은 선택된 역할의 호칭으로 치환된다.
var parentQuestions = []string{
	"부모님께 고마웠던 순간, 기억나는 게 있나요?",
	"{어머님}이 좋아하시는 음식, 혹시 떠오르나요?",
	"{아버님} 생신은 언제인지 기억하고 계신가요?",
	"{어머님}이 좋아하는 색깔, 어떤 색이었나요?",
	"{아버님}은 어떤 일을 하고 계셨나요?",
	"{어머님}이 좋아하는 계절은 언제인가요?",
	"{아버님}의 취미는 무엇이었나요?",
	"{어머님}이 즐겨 보셨던 영화가 있다면요?",
	"{아버님}은 어떤 꿈을 가지고 계셨나요?",
	"{어머님}이 가장 좋아하시는 장소는 어디인가요?",
	"{아버님}에게 가장 소중했던 추억은 무엇일까요?",
	"{어머님}이 자주 들으셨던 노래가 있다면요?",
	"요즘 {아버님}이 가장 걱정하고 계신 일은 뭘까요?",
	"{어머님}이 좋아하시는 꽃, 기억나시나요?",
	"{아버님}이 자랑스러워했던 일이 있다면요?",
	"{어머님}이 즐겨 하시던 운동은 어떤 거였나요?",
	"{아버님}의 바람 중 하나, 떠오르는 게 있나요?",
	"{어머님}이 좋아하셨던 책이 있다면요?",
	"{아버님}이 이뤄내셨던 일 중 가장 자랑스러운 건 뭘까요?",
	"{어머님}이 자주 드시던 음료가 있다면요?",
	"요즘 {아버님}이 가장 고민하고 계신 건 뭘까요?",
	"{어머님}이 좋아하시는 동물이 있다면요?",
	"{아버님}을 정말 기쁘게 했던 일이 무엇이었을까요?",
	"{어머님}이 좋아하는 과일, 기억나시나요?",
	"{아버님}이 눈물을 보이셨던 일이 있다면요?",
	"{어머님}이 자주 만들어주시던 요리, 뭐가 떠오르세요?",
	"{아버님}이 품고 계신 희망이 있다면 어떤 걸까요?",
	"{어머님}이 빠지지 않고 챙겨보셨던 드라마가 있다면요?",
	"{아버님}이 최근에 고마워하셨던 일이 있다면요?",
	"{어머님}이 가보고 싶어 하셨던 여행지는 어디인가요?",
}

// 가족 추억 질문
var familyQuestions = []string{
	"가족과 처음으로 여행 갔던 기억, 혹시 나시나요?",
	"어릴 때 가족끼리 자주 갔던 장소가 있나요?",
	"가족과 함께 웃었던 일 중 가장 기억에 남는 건 뭐예요?",
	"어릴 때 가족이랑 함께한 생일 중 가장 특별했던 날은 언제였나요?",
	"가족과 함께한 명절 중 유난히 따뜻했던 순간이 있었나요?",
	"처음으로 가족과 영화관에 갔던 기억, 혹시 기억나세요?",
	"비 오는 날 가족과 함께 했던 기억이 있다면요?",
	"밤에 가족들과 도란도란 이야기 나눴던 적이 있나요?",
	"어릴 때 부모님이 자주 해주신 말 중에 아직도 기억나는 게 있나요?",
	"가족과 함께 만든 음식 중 가장 맛있었던 건 뭐였나요?",
	"가족끼리 처음으로 찍은 사진, 언제였나요?",
	"가족과 함께 밤하늘을 본 기억이 있다면요?",
	"처음으로 가족끼리 캠핑이나 피크닉 갔던 날 기억나요?",
	"어릴 적 가족에게 편지를 써 본 적이 있나요?",
	"가족과 함께 웃다가 눈물 날 뻔했던 순간이 있었나요?",
	"가족과 함께한 하루 중 '그 날은 참 좋았다' 싶은 날이 있다면요?",
	"가족에게 고맙다고 말했던 마지막 순간, 언제였을까요?",
	"가족 모두가 같이 걱정했던 일이 지나가고 웃을 수 있었던 적이 있었나요?",
	"가족과 함께했던 특별한 계절이 있다면 언제인가요?",
	"지금도 떠올리면 마음 따뜻해지는 가족과의 순간이 있나요?",
}

// 이구동성 퀴즈. 가족 전원이 같은 문항을 받고 동시에 답을 맞춘다.
var unisonQuizQuestions = []daily.QuizQuestion{
	{Question: "가족끼리 여행 간다면, 어디로 가장 가고 싶을까요?", Options: []string{"바다 🌊", "산 🏞️", "놀이공원 🎢", "해외 ✈️"}},
	{Question: "가족이 모이면 꼭 함께 먹는 음식은 뭐예요?", Options: []string{"피자 🍕", "치킨 🍗", "스테이크 🥩", "샐러드 🥗"}},
	{Question: "가족이 함께 하면 가장 즐거운 활동은 뭐라고 생각하세요?", Options: []string{"영화 보기 🎬", "게임하기 🎮", "산책하기 🚶‍♀️", "요리하기 👩‍🍳"}},
	{Question: "우리 가족의 가장 큰 자랑은 뭐라고 생각해요?", Options: []string{"사랑 ❤️", "건강 💪", "성공 🏆", "화목 🫶"}},
	{Question: "가족 모두가 좋아하는 계절은 언제인가요?", Options: []string{"봄 🌸", "여름 ☀️", "가을 🍂", "겨울 ❄️"}},
	{Question: "가족이 함께 듣기 좋은 음악 장르는 뭘까요?", Options: []string{"팝 🎶", "클래식 🎻", "재즈 🎷", "락 🎸"}},
	{Question: "가족이 가장 좋아하는 색깔은 무엇일까요?", Options: []string{"파랑 💙", "빨강 ❤️", "초록 💚", "노랑 💛"}},
	{Question: "가족이 함께 키우고 싶어 하는 동물은 무엇인가요?", Options: []string{"강아지 🐶", "고양이 🐱", "새 🐦", "물고기 🐠"}},
	{Question: "가족이 가장 좋아하는 꽃은 어떤 걸까요?", Options: []string{"장미 🌹", "튤립 🌷", "해바라기 🌻", "라벤더 💜"}},
	{Question: "가족 모두가 좋아하는 과일은 뭘까요?", Options: []string{"사과 🍎", "바나나 🍌", "오렌지 🍊", "포도 🍇"}},
}
