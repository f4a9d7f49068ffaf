package bot

import (
	"fmt"
	"strings"

	"github.com/qlanfr/chat-bot/pkg/llm"
)

// tickerAliases short-circuits well-known names so the oracle cannot
// hallucinate a symbol for them. Matching is case-insensitive substring.
var tickerAliases = []struct {
	names  []string
	symbol string
}{
	{[]string{"구글", "google"}, "GOOGL"},
	{[]string{"애플", "apple"}, "AAPL"},
	{[]string{"테슬라", "tesla"}, "TSLA"},
	{[]string{"마이크로소프트", "microsoft"}, "MSFT"},
	{[]string{"엔비디아", "nvidia"}, "NVDA"},
	{[]string{"아마존", "amazon"}, "AMZN"},
}

const tickerPrompt = `다음 회사의 주식 티커 심볼을 알려주세요. 가능한 경우 표준 티커 심볼만 대문자 한 단어로 출력해 주세요:
회사명: %s`

type TickerResolver struct {
	llm llm.Completer
}

func NewTickerResolver(completer llm.Completer) *TickerResolver {
	return &TickerResolver{llm: completer}
}

// Resolve maps a free-text company reference to a ticker symbol. The
// result is not validated against an exchange listing; the market-data
// provider reports "no data" for symbols it does not know.
func (r *TickerResolver) Resolve(reference string) (string, error) {
	lower := strings.ToLower(reference)
	for _, alias := range tickerAliases {
		for _, name := range alias.names {
			if strings.Contains(lower, name) {
				return alias.symbol, nil
			}
		}
	}

	out, err := r.llm.Complete(fmt.Sprintf(tickerPrompt, reference))
	if err != nil {
		return "", err
	}

	return strings.ToUpper(strings.TrimSpace(out)), nil
}
