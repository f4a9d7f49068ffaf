package market

import "errors"

// ErrNotFound reports that the provider has no data for the symbol. An
// invalid ticker surfaces here, not at resolution time.
var ErrNotFound = errors.New("no market data")

// Snapshot holds the fundamentals shown in a stock-detail reply. Every
// field the provider may omit is a pointer; absent values render as N/A.
type Snapshot struct {
	Ticker         string
	PriceToBook    *float64
	TrailingPE     *float64
	ReturnOnEquity *float64
	MarketCap      *int64
}

type DataClient interface {
	Snapshot(ticker string) (*Snapshot, error)
	Sector(ticker string) (string, error)
}
