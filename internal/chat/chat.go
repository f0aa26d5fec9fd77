package chat

import "strings"

// The widget is rule based: the first topic whose keyword appears in the
// visitor's message wins, so topic order matters (e.g. "상담" before the
// generic product words would change answers).

type QuickReply struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

type Response struct {
	Topic        string       `json:"topic"`
	Content      string       `json:"content"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

type topic struct {
	name     string
	keywords []string
}

var topics = []topic{
	{"greetings", []string{"안녕", "하이", "hi", "hello", "반갑", "처음"}},
	{"minOrder", []string{"최소", "주문량", "몇개", "몇 개", "수량", "moq"}},
	{"price", []string{"가격", "비용", "얼마", "견적", "금액", "단가"}},
	{"time", []string{"기간", "얼마나", "시간", "언제", "납기", "소요"}},
	{"sample", []string{"샘플", "견본", "테스트"}},
	{"product", []string{"스킨케어", "메이크업", "립스틱", "크림", "세럼", "화장품", "제품", "뭐", "어떤"}},
	{"consult", []string{"상담", "문의", "연락", "전화"}},
	{"process", []string{"과정", "절차", "프로세스", "어떻게"}},
	{"license", []string{"인허가", "허가", "신고", "등록", "인증"}},
}

var responses = map[string]string{
	"greetings": "안녕하세요! REDMEDICOS입니다.\n\n화장품 브랜드 런칭에 관심이 있으시군요!\n무엇이 궁금하신가요?",
	"minOrder":  "저희는 **최소 100개**부터 생산이 가능합니다.\n\n초기 브랜드라면 소량으로 시작해서 시장 반응을 먼저 확인해보시는 것을 추천드려요.\n\n수량별 단가가 궁금하시다면 무료 상담을 신청해주세요!",
	"price":     "제품 종류와 수량에 따라 가격이 달라집니다.\n\n**대략적인 범위:**\n• 스킨케어: 개당 3,000원~\n• 메이크업: 개당 5,000원~\n• 클렌징: 개당 2,500원~\n\n정확한 견적은 무료 상담을 통해 안내드릴게요!",
	"time":      "제형 개발부터 생산까지 보통 **4~8주** 정도 소요됩니다.\n\n• 기존 제형 사용 시: 2~4주\n• 신규 제형 개발 시: 6~8주\n\n급하신 경우 말씀해주시면 일정을 조율해드릴게요!",
	"sample":    "네, 샘플 제작 가능합니다.\n\n본 생산 전 샘플로 텍스처, 향, 색상 등을 직접 확인하실 수 있어요.\n\n**좋은 소식:** 본 계약 시 샘플 비용은 전액 차감됩니다!",
	"product":   "저희가 제조 가능한 제품 카테고리입니다:\n\n**스킨케어** - 토너, 세럼, 크림, 앰플\n**메이크업** - 립스틱, 틴트, 파운데이션\n**클렌징** - 클렌징오일, 폼, 워터\n**선케어** - 선크림, 선스틱\n**바디케어** - 바디로션, 핸드크림\n**헤어케어** - 샴푸, 트리트먼트\n\n어떤 제품에 관심 있으신가요?",
	"consult":   "무료 상담을 도와드릴게요!\n\n**연락처:**\n• 전화: 02-1234-5678\n• 이메일: contact@redmedicos.kr\n• 운영시간: 평일 09:00-18:00\n\n또는 아래 버튼으로 바로 상담 신청하실 수 있어요!",
	"process":   "화장품 제작 과정을 안내해드릴게요!\n\n**1단계: 무료 상담**\n원하시는 컨셉과 예산 논의\n\n**2단계: 제형 개발**\n전문 연구원이 맞춤 제형 개발\n\n**3단계: 샘플 확인**\n샘플 테스트 및 피드백 반영\n\n**4단계: 생산 & 납품**\n대량 생산 후 안전 포장 배송",
	"license":   "화장품 인허가 대행 서비스를 제공합니다.\n\n**대행해드리는 업무:**\n• 화장품책임판매업 등록\n• 제품 신고\n• 전성분 표시 검토\n• 기타 법적 절차\n\n복잡한 인허가 걱정 없이 시작하실 수 있어요!",
	"default":   "좋은 질문이에요!\n\n더 자세한 상담이 필요하시다면:\n\n전화: 02-1234-5678\n이메일: contact@redmedicos.kr\n\n또는 무료 상담 신청 버튼을 눌러주세요!",
}

// ActionTexts echoes a quick-reply button back as the visitor's message.
var ActionTexts = map[string]string{
	"minOrder": "최소 주문량이 궁금해요",
	"price":    "가격이 얼마인가요?",
	"time":     "제작 기간이 얼마나 걸려요?",
	"consult":  "상담 받고 싶어요",
	"sample":   "샘플 만들 수 있나요?",
	"product":  "어떤 제품을 만들 수 있나요?",
	"process":  "제작 과정이 어떻게 되나요?",
	"license":  "인허가는 어떻게 하나요?",
}

func findTopic(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.name
			}
		}
	}
	return "default"
}

func quickReplies(topicName string) []QuickReply {
	switch topicName {
	case "minOrder", "price":
		return []QuickReply{
			{Text: "샘플 제작", Action: "sample"},
			{Text: "제작 과정", Action: "process"},
			{Text: "상담 신청", Action: "consult"},
		}
	case "consult":
		return []QuickReply{
			{Text: "상담 폼으로 이동", Action: "goToForm"},
		}
	case "default":
		return []QuickReply{
			{Text: "제품 종류", Action: "product"},
			{Text: "제작 과정", Action: "process"},
			{Text: "상담 신청", Action: "consult"},
		}
	}
	return nil
}

// Reply answers a free-form visitor message.
func Reply(message string) Response {
	t := findTopic(message)
	return Response{
		Topic:        t,
		Content:      responses[t],
		QuickReplies: quickReplies(t),
	}
}

// ReplyAction answers a quick-reply button press directly by action name.
func ReplyAction(action string) Response {
	content, ok := responses[action]
	if !ok {
		content = responses["default"]
		action = "default"
	}
	return Response{
		Topic:        action,
		Content:      content,
		QuickReplies: quickReplies(action),
	}
}

// Greeting is the widget's opening message.
func Greeting() Response {
	return Response{
		Topic:   "greetings",
		Content: responses["greetings"],
		QuickReplies: []QuickReply{
			{Text: "최소 주문량", Action: "minOrder"},
			{Text: "제작 비용", Action: "price"},
			{Text: "제작 기간", Action: "time"},
			{Text: "상담 신청", Action: "consult"},
		},
	}
}
