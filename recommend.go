package movierec

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Recommendation is the candidate that is most similar to a query.
type Recommendation struct {
	// Index of the description in the candidates.
	Index       int
	Description string
	Score       float32
}

// Recommender finds the candidate description that is most similar to a
// query description.
type Recommender struct {
	scorer  Scorer
	workers int
	logger  zerolog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithWorkers sets the number of candidates that are scored
// concurrently. Values smaller than 2 score candidates one by one.
func WithWorkers(n int) Option {
	return func(r *Recommender) {
		r.workers = n
	}
}

// WithLogger sets the logger used to report scores and skipped
// candidates.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Recommender) {
		r.logger = logger
	}
}

// NewRecommender creates a recommender that compares descriptions with
// scorer.
func NewRecommender(scorer Scorer, opts ...Option) *Recommender {
	r := &Recommender{
		scorer:  scorer,
		workers: 1,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type scored struct {
	score float32
	ok    bool
}

// Recommend returns the candidate with the highest score against query.
// ok is false when there is no recommendation.
//
// The best score starts at 0 and a candidate only replaces the best
// candidate when its score is strictly higher. So the first of equally
// scored candidates wins, and when no candidate scores above 0 there is
// no recommendation, even if candidates were given. Candidates for which
// the scorer fails are skipped.
//
// With more than one worker the order in which candidates are scored is
// unspecified, but the result is the same as with one worker.
func (r *Recommender) Recommend(ctx context.Context, query string, candidates []string) (rec Recommendation, ok bool, err error) {
	var scores []scored
	if r.workers > 1 {
		scores, err = r.scoreConcurrently(ctx, query, candidates)
	} else {
		scores, err = r.scoreSequentially(ctx, query, candidates)
	}
	if err != nil {
		return Recommendation{}, false, err
	}

	highest := float32(0)
	for idx, s := range scores {
		if s.ok && s.score > highest {
			highest = s.score
			rec = Recommendation{
				Index:       idx,
				Description: candidates[idx],
				Score:       s.score,
			}
			ok = true
		}
	}

	return rec, ok, nil
}

func (r *Recommender) scoreSequentially(ctx context.Context, query string, candidates []string) ([]scored, error) {
	scores := make([]scored, len(candidates))

	for idx, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		scores[idx] = r.score(idx, query, candidate)
	}

	return scores, nil
}

func (r *Recommender) scoreConcurrently(ctx context.Context, query string, candidates []string) ([]scored, error) {
	scores := make([]scored, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for idx, candidate := range candidates {
		if gctx.Err() != nil {
			break
		}

		idx, candidate := idx, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			scores[idx] = r.score(idx, query, candidate)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

func (r *Recommender) score(idx int, query, candidate string) scored {
	s, err := r.scorer.Score(query, candidate)
	if err != nil {
		r.logger.Warn().Err(err).Int("index", idx).Msg("skipping candidate")
		return scored{}
	}

	r.logger.Debug().Int("index", idx).Float32("score", s).Msg("scored candidate")

	return scored{score: s, ok: true}
}
