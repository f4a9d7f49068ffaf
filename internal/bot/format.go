package bot

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	joBand  = 1_000_000_000_000
	eokBand = 100_000_000
	manBand = 10_000
)

var capPrinter = message.NewPrinter(language.Korean)

// FormatMarketCap renders a market cap in 조/억/만 bands with a trailing
// 달러 marker. Zero-valued bands are omitted; zero itself renders as a
// bare remainder. Input that does not parse as a non-negative integer is
// passed through unchanged.
func FormatMarketCap(value string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n < 0 {
		return value
	}

	var parts []string
	if jo := n / joBand; jo > 0 {
		parts = append(parts, capPrinter.Sprintf("%d조", jo))
	}
	remainder := n % joBand

	if eok := remainder / eokBand; eok > 0 {
		parts = append(parts, capPrinter.Sprintf("%d억", eok))
	}
	remainder %= eokBand

	if man := remainder / manBand; man > 0 {
		parts = append(parts, capPrinter.Sprintf("%d만", man))
	}
	remainder %= manBand

	if remainder > 0 {
		parts = append(parts, capPrinter.Sprintf("%d", remainder))
	}

	if len(parts) == 0 {
		parts = append(parts, "0")
	}

	return strings.Join(parts, " ") + " 달러"
}
