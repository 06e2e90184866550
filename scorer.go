package movierec

import (
	"errors"
	"fmt"
	"sync"
)

// Names of the available scorers.
const (
	ScorerEmbeddings  = "embeddings"
	ScorerLevenshtein = "levenshtein"
)

var (
	ErrUnknownScorer = errors.New("unknown scorer")
	ErrNoEmbeddings  = errors.New("no embeddings")
)

// Scorer computes how similar a candidate is to a query. Higher scores
// mean more similar. Scores are not assumed to be symmetric.
type Scorer interface {
	Score(query, candidate string) (float32, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(query, candidate string) (float32, error)

// Score calls f(query, candidate).
func (f ScorerFunc) Score(query, candidate string) (float32, error) {
	return f(query, candidate)
}

// NewScorer returns the scorer with the given name. embeds may be nil
// for scorers that do not use embeddings.
func NewScorer(name string, embeds *Embeddings) (Scorer, error) {
	switch name {
	case ScorerEmbeddings:
		return NewEmbeddingScorer(embeds)
	case ScorerLevenshtein:
		return EditScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScorer, name)
	}
}

// EmbeddingScorer scores texts by the cosine similarity of their
// averaged word embeddings. The embedding of the most recent query is
// kept, so that scoring many candidates against one query embeds the
// query once. It is safe for concurrent use.
type EmbeddingScorer struct {
	embeds *Embeddings

	mu       sync.Mutex
	query    string
	queryVec Vector
}

// NewEmbeddingScorer creates a scorer that uses the given embeddings.
// The embeddings must not be modified while the scorer is in use.
func NewEmbeddingScorer(embeds *Embeddings) (*EmbeddingScorer, error) {
	if embeds == nil {
		return nil, ErrNoEmbeddings
	}

	return &EmbeddingScorer{embeds: embeds}, nil
}

// Score returns the cosine similarity of the query and candidate
// embeddings. Texts without known words score 0.
func (s *EmbeddingScorer) Score(query, candidate string) (float32, error) {
	return Cosine(s.queryVector(query), s.embeds.Embed(candidate)), nil
}

func (s *EmbeddingScorer) queryVector(query string) Vector {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queryVec == nil || s.query != query {
		s.query = query
		s.queryVec = s.embeds.Embed(query)
	}

	return s.queryVec
}
