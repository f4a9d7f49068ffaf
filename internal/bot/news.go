package bot

import (
	"fmt"
	"strings"

	"github.com/qlanfr/chat-bot/pkg/llm"
	"github.com/qlanfr/chat-bot/pkg/search"
)

const noNewsReply = "관련 뉴스를 찾을 수 없습니다."

const filterPrompt = `다음 뉴스 기사 목록에서, 최근 이슈이면서 중요하다고 판단되는 기사 1~2개의 링크만 선별하여 간결하게 출력해 주세요.

%s`

const analysisPrompt = `다음은 선별된 뉴스 기사입니다.

%s

위 뉴스 기사들을 바탕으로, 해당 이슈들이 주식 시장에 미치는 영향과 주요 포인트에 대해 간략하게 분석해 주세요.`

// NewsBrief runs the two-stage news pipeline: pick out the significant
// items, then analyze the market impact of exactly those items. Result
// order from the search provider is preserved in the serialized block.
type NewsBrief struct {
	searcher search.Searcher
	llm      llm.Completer
}

func NewNewsBrief(searcher search.Searcher, completer llm.Completer) *NewsBrief {
	return &NewsBrief{searcher: searcher, llm: completer}
}

func (n *NewsBrief) Summarize(ticker string) (string, error) {
	items, err := n.searcher.Search(ticker + " 주식 뉴스")
	if err != nil {
		return "", fmt.Errorf("searching news: %w", err)
	}

	if len(items) == 0 {
		return noNewsReply, nil
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(item.Title)
		sb.WriteString("\n")
		sb.WriteString(item.Link)
	}

	filtered, err := n.llm.Complete(fmt.Sprintf(filterPrompt, sb.String()))
	if err != nil {
		return "", err
	}

	analysis, err := n.llm.Complete(fmt.Sprintf(analysisPrompt, filtered))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n\n[추가 분석]\n%s", filtered, analysis), nil
}
