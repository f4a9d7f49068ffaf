package market

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Snapshot(ticker string) (*Snapshot, error) {
	profile, _, err := c.client.CompanyProfile2(context.Background()).Symbol(ticker).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub profile: %w", err)
	}

	// Finnhub answers unknown symbols with an empty profile.
	if profile.Ticker == nil || *profile.Ticker == "" {
		return nil, ErrNotFound
	}

	snap := &Snapshot{Ticker: ticker}

	if profile.MarketCapitalization != nil {
		// Profile market cap is reported in millions.
		capValue := int64(float64(*profile.MarketCapitalization) * 1e6)
		snap.MarketCap = &capValue
	}

	financials, _, err := c.client.CompanyBasicFinancials(context.Background()).Symbol(ticker).Metric("all").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub financials: %w", err)
	}

	if financials.Metric != nil {
		metrics := *financials.Metric
		snap.PriceToBook = metricValue(metrics, "pbAnnual")
		snap.TrailingPE = metricValue(metrics, "peTTM")
		snap.ReturnOnEquity = metricValue(metrics, "roeTTM")
	}

	return snap, nil
}

func (c *FinnHubClient) Sector(ticker string) (string, error) {
	profile, _, err := c.client.CompanyProfile2(context.Background()).Symbol(ticker).Execute()
	if err != nil {
		return "", fmt.Errorf("finnhub profile: %w", err)
	}

	if profile.FinnhubIndustry == nil || *profile.FinnhubIndustry == "" {
		return "", ErrNotFound
	}

	return *profile.FinnhubIndustry, nil
}

func metricValue(metrics map[string]interface{}, key string) *float64 {
	v, ok := metrics[key].(float64)
	if !ok {
		return nil
	}
	return &v
}
