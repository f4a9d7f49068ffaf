package model

// CorpusRecord is one stored question/answer pair with the question's
// embedding. Records are read-only once loaded; the only write path is
// the offline indexer.
type CorpusRecord struct {
	ID        int64
	Question  string
	Answer    string
	Embedding []float64
}
