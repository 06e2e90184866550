package movierec

import (
	"errors"
	"sync"
	"testing"
)

func TestNewScorer(t *testing.T) {
	embeds := fruitEmbeddingsOrFail(t)

	if s, err := NewScorer(ScorerEmbeddings, embeds); err != nil {
		t.Errorf("Embedding scorer error should be nil, was: %s", err)
	} else if _, ok := s.(*EmbeddingScorer); !ok {
		t.Errorf("Scorer should be *EmbeddingScorer, was %T", s)
	}

	if _, err := NewScorer(ScorerEmbeddings, nil); !errors.Is(err, ErrNoEmbeddings) {
		t.Errorf("Error should be ErrNoEmbeddings, was: %v", err)
	}

	if s, err := NewScorer(ScorerLevenshtein, nil); err != nil {
		t.Errorf("Edit scorer error should be nil, was: %s", err)
	} else if _, ok := s.(EditScorer); !ok {
		t.Errorf("Scorer should be EditScorer, was %T", s)
	}

	if _, err := NewScorer("spacy", embeds); !errors.Is(err, ErrUnknownScorer) {
		t.Errorf("Error should be ErrUnknownScorer, was: %v", err)
	}
}

func TestEmbeddingScorer(t *testing.T) {
	scorer, err := NewEmbeddingScorer(fruitEmbeddingsOrFail(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		query     string
		candidate string
		want      float32
	}{
		{"same word", "apple", "an apple", 1},
		{"related words", "apple", "pear", 0.8},
		{"unrelated words", "apple", "banana", 0},
		{"unknown candidate", "apple", "kiwi", 0},
		{"empty query", "", "pear", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scorer.Score(tt.query, tt.candidate)
			if err != nil {
				t.Fatalf("Score error should be nil, was: %s", err)
			}

			if !approxEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestEmbeddingScorerConcurrentQueries(t *testing.T) {
	scorer, err := NewEmbeddingScorer(fruitEmbeddingsOrFail(t))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 200)

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if s, _ := scorer.Score("apple", "pear"); !approxEqual(s, 0.8) {
				errs <- "apple/pear"
			}
		}()
		go func() {
			defer wg.Done()
			if s, _ := scorer.Score("banana", "pear"); !approxEqual(s, 0.6) {
				errs <- "banana/pear"
			}
		}()
	}

	wg.Wait()
	close(errs)

	for pair := range errs {
		t.Errorf("Wrong score for %s when queries alternate", pair)
	}
}

func TestEditScorer(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float32
	}{
		{"both empty", "", "", 1},
		{"empty query", "", "Thor", 0},
		{"empty candidate", "Thor", "", 0},
		{"identical", "Thor: Ragnarok", "Thor: Ragnarok", 1},
		{"one substitution", "Hulk", "Bulk", 0.75},
		{"different lengths", "kitten", "sitting", 1 - 3.0/7.0},
		{"runes", "Österreich", "Osterreich", 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EditScorer{}.Score(tt.query, tt.candidate)
			if err != nil {
				t.Fatalf("Score error should be nil, was: %s", err)
			}

			if !approxEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}
