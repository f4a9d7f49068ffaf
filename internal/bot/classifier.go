package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/qlanfr/chat-bot/pkg/llm"
)

type Intent int

const (
	IntentStockDetail Intent = iota + 1
	IntentNews
	IntentRelatedStocks
	IntentGeneric
)

// Classifier maps a message to one routing intent. Implementations must
// absorb malformed oracle output and degrade to a safe default; only an
// unreachable oracle may surface as an error.
type Classifier interface {
	Classify(text string) (Intent, error)
}

const (
	ModeFlags = "flags"
	ModeCode  = "code"
)

// NewClassifier selects a classification strategy by name. Unknown modes
// fall back to the code strategy.
func NewClassifier(mode string, completer llm.Completer) Classifier {
	if mode == ModeFlags {
		return &FlagClassifier{llm: completer}
	}
	return &CodeClassifier{llm: completer}
}

const flagPrompt = `다음 문장이 '관련 주식', '이슈 알려줘', '자세하게 알려줘' 중 어느 카테고리에 해당하는지 판단해 주세요. 각 카테고리에 대해 'True' 또는 'False'로 대답해 주세요. 예: 관련 주식: True, 이슈: False, 자세한: False
문장: %s`

// FlagClassifier asks the oracle for a True/False answer per category and
// parses each category independently.
type FlagClassifier struct {
	llm llm.Completer
}

func (c *FlagClassifier) Classify(text string) (Intent, error) {
	out, err := c.llm.Complete(fmt.Sprintf(flagPrompt, text))
	if err != nil {
		return IntentGeneric, err
	}
	return parseFlags(out).intent(), nil
}

type categoryFlags struct {
	related bool
	news    bool
	detail  bool
}

var (
	relatedPattern = regexp.MustCompile(`(?i)관련 주식:\s*(True|False)`)
	newsPattern    = regexp.MustCompile(`(?i)이슈:\s*(True|False)`)
	detailPattern  = regexp.MustCompile(`(?i)자세한:\s*(True|False)`)
)

// parseFlags reads the per-category answers out of free text. A category
// whose pattern is absent stays false; nothing here can fail.
func parseFlags(s string) categoryFlags {
	return categoryFlags{
		related: flagValue(relatedPattern, s),
		news:    flagValue(newsPattern, s),
		detail:  flagValue(detailPattern, s),
	}
}

func flagValue(pattern *regexp.Regexp, s string) bool {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(m[1]), "true")
}

func (f categoryFlags) intent() Intent {
	switch {
	case f.related:
		return IntentRelatedStocks
	case f.news:
		return IntentNews
	case f.detail:
		return IntentStockDetail
	default:
		return IntentGeneric
	}
}

const codePrompt = `사용자의 주식 관련 질문을 아래 유형 중 하나로 분류해 주세요.
1. 주식 상세 정보 요청 (특정 회사의 상세 정보 요청)
2. 주식 뉴스 요청
3. 관련 주식 추천 요청
4. 일반 대화
질문: %s
답변은 1, 2, 3, 4 중 하나의 숫자만 출력해 주세요.`

// CodeClassifier asks the oracle for a single category number.
type CodeClassifier struct {
	llm llm.Completer
}

func (c *CodeClassifier) Classify(text string) (Intent, error) {
	out, err := c.llm.Complete(fmt.Sprintf(codePrompt, text))
	if err != nil {
		return IntentGeneric, err
	}
	return intentFromCode(out), nil
}

// intentFromCode parses the single-digit answer. Anything that is not a
// known code is generic conversation; no retry is attempted.
func intentFromCode(s string) Intent {
	code, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return IntentGeneric
	}

	switch code {
	case 1:
		return IntentStockDetail
	case 2:
		return IntentNews
	case 3:
		return IntentRelatedStocks
	default:
		return IntentGeneric
	}
}
