package search

// NewsItem is one search result. Order follows the provider's relevance
// ranking and is preserved downstream.
type NewsItem struct {
	Title string
	Link  string
}

type Searcher interface {
	Search(query string) ([]NewsItem, error)
}
