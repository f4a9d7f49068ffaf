package bot

import (
	"errors"
	"fmt"
	"math"

	"github.com/qlanfr/chat-bot/internal/model"
	"github.com/qlanfr/chat-bot/pkg/llm"
)

// ErrNoMatch reports an empty corpus. An unreachable embedding oracle is
// a different failure and never maps to this.
var ErrNoMatch = errors.New("no corpus match")

type CorpusStore interface {
	ListAll() ([]model.CorpusRecord, error)
}

type CorpusMatcher struct {
	store    CorpusStore
	embedder llm.Embedder
}

func NewCorpusMatcher(store CorpusStore, embedder llm.Embedder) *CorpusMatcher {
	return &CorpusMatcher{store: store, embedder: embedder}
}

// BestAnswer returns the stored answer whose embedding is closest to the
// query by cosine distance, along with that distance. No similarity
// threshold is applied: a non-empty corpus always yields its argmin, and
// the distance comes back with it so callers can layer a cutoff later.
// Ties keep the first record in store order.
func (m *CorpusMatcher) BestAnswer(text string) (string, float64, error) {
	queryEmbedding, err := m.embedder.Embed(text)
	if err != nil {
		return "", 0, fmt.Errorf("embedding query: %w", err)
	}

	records, err := m.store.ListAll()
	if err != nil {
		return "", 0, fmt.Errorf("listing corpus: %w", err)
	}

	if len(records) == 0 {
		return "", 0, ErrNoMatch
	}

	best := math.Inf(1)
	answer := ""
	for _, rec := range records {
		distance, err := cosineDistance(queryEmbedding, rec.Embedding)
		if err != nil {
			return "", 0, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		if distance < best {
			best = distance
			answer = rec.Answer
		}
	}

	return answer, best, nil
}

// cosineDistance is 1 - cosine similarity: 0 is identical direction, 2 is
// opposite. Mismatched dimensions are a data error, not a poor match.
func cosineDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 1, nil
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)), nil
}
