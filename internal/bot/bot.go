package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/qlanfr/chat-bot/pkg/llm"
	"github.com/qlanfr/chat-bot/pkg/market"
	"github.com/qlanfr/chat-bot/pkg/search"
)

const apologyReply = "죄송합니다 다시 한번 질문 해주세요."

// sectorPeers is a fixed screener stand-in: a handful of large caps per
// sector the bot knows about.
var sectorPeers = map[string][]string{
	"Technology":         {"AAPL", "MSFT", "GOOGL", "FB", "IBM"},
	"Healthcare":         {"JNJ", "PFE", "MRK", "ABBV", "TMO"},
	"Financial Services": {"JPM", "BAC", "WFC", "C", "GS"},
}

// Bot routes each message through the corpus match and, failing that,
// classified intent. All collaborators are injected; the bot itself
// holds no mutable state, so one instance serves concurrent requests.
type Bot struct {
	matcher    *CorpusMatcher
	classifier Classifier
	resolver   *TickerResolver
	brief      *NewsBrief
	market     market.DataClient
	llm        llm.Completer
}

func New(store CorpusStore, embedder llm.Embedder, completer llm.Completer, classifier Classifier, data market.DataClient, searcher search.Searcher) *Bot {
	return &Bot{
		matcher:    NewCorpusMatcher(store, embedder),
		classifier: classifier,
		resolver:   NewTickerResolver(completer),
		brief:      NewNewsBrief(searcher, completer),
		market:     data,
		llm:        completer,
	}
}

// Handle produces exactly one reply for an incoming message. Errors never
// escape: anything unrecoverable becomes the fixed apology reply.
func (b *Bot) Handle(text string) string {
	reply, err := b.reply(strings.TrimSpace(text))
	if err != nil {
		slog.Error("request failed", "error", err)
		return apologyReply
	}
	return reply
}

func (b *Bot) reply(text string) (string, error) {
	// A stored answer always wins over classified routing.
	answer, distance, err := b.matcher.BestAnswer(text)
	if err == nil {
		slog.Info("corpus match", "distance", distance)
		return answer, nil
	}
	if !errors.Is(err, ErrNoMatch) {
		return "", err
	}

	intent, err := b.classifier.Classify(text)
	if err != nil {
		return "", err
	}

	switch intent {
	case IntentStockDetail:
		return b.stockDetail(text)
	case IntentNews:
		ticker, err := b.resolver.Resolve(text)
		if err != nil {
			return "", err
		}
		return b.brief.Summarize(ticker)
	case IntentRelatedStocks:
		return b.relatedStocks(text)
	default:
		return b.llm.Complete(text)
	}
}

func (b *Bot) stockDetail(text string) (string, error) {
	ticker, err := b.resolver.Resolve(text)
	if err != nil {
		return "", err
	}

	snap, err := b.market.Snapshot(ticker)
	if errors.Is(err, market.ErrNotFound) {
		return fmt.Sprintf("%s의 주식 정보를 찾을 수 없습니다.", ticker), nil
	}
	if err != nil {
		return "", err
	}

	return renderSnapshot(snap), nil
}

func (b *Bot) relatedStocks(text string) (string, error) {
	ticker, err := b.resolver.Resolve(text)
	if err != nil {
		return "", err
	}

	sector, err := b.market.Sector(ticker)
	if errors.Is(err, market.ErrNotFound) {
		return fmt.Sprintf("%s의 섹터 정보를 찾을 수 없습니다.", ticker), nil
	}
	if err != nil {
		return "", err
	}

	peers, ok := sectorPeers[sector]
	if !ok {
		return fmt.Sprintf("%s의 섹터(%s)에 해당하는 관련 주식을 찾을 수 없습니다.", ticker, sector), nil
	}

	return fmt.Sprintf("%s의 섹터(%s)에 해당하는 관련 주식: %s", ticker, sector, strings.Join(peers, ", ")), nil
}

func renderSnapshot(s *market.Snapshot) string {
	return fmt.Sprintf("📈 %s 정보:\nPBR: %s\nPER: %s\nROE: %s\n시가총액: %s",
		s.Ticker,
		ratioField(s.PriceToBook),
		ratioField(s.TrailingPE),
		ratioField(s.ReturnOnEquity),
		capField(s.MarketCap))
}

func ratioField(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func capField(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return FormatMarketCap(strconv.FormatInt(*v, 10))
}
