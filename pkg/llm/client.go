package llm

import "errors"

// ErrUnavailable marks any provider transport or API failure so callers
// can tell an unreachable oracle apart from an empty or unusable answer.
var ErrUnavailable = errors.New("oracle unavailable")

// Completer produces a free-text completion for a prompt.
type Completer interface {
	Complete(prompt string) (string, error)
}

// Embedder produces a fixed-dimension vector for a text.
type Embedder interface {
	Embed(text string) ([]float64, error)
}
