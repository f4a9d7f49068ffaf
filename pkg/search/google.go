package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultLimit = 5

// GoogleClient queries the Google Custom Search JSON API.
type GoogleClient struct {
	apiKey     string
	cseID      string
	limit      int
	httpClient *http.Client
}

func NewGoogleClient(apiKey, cseID string, limit int) *GoogleClient {
	if limit < 1 || limit > 10 {
		limit = defaultLimit
	}
	return &GoogleClient{
		apiKey:     apiKey,
		cseID:      cseID,
		limit:      limit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GoogleClient) Search(query string) ([]NewsItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("cx", c.cseID)
	params.Set("num", strconv.Itoa(c.limit))

	resp, err := c.httpClient.Get("https://www.googleapis.com/customsearch/v1?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("google search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google search: status %d", resp.StatusCode)
	}

	var raw googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("google search decode: %w", err)
	}

	items := make([]NewsItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		if len(items) >= c.limit {
			break
		}
		items = append(items, NewsItem{
			Title: item.Title,
			Link:  item.Link,
		})
	}

	return items, nil
}

type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}
