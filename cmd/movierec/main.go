// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danieldk/movierec"
	"github.com/danieldk/movierec/cmd/common"
	"github.com/danieldk/movierec/internal/config"
)

func main() {
	cfg, err := config.Load()
	common.ExitIfError(common.NewLogger("info"), "Cannot load configuration", err)

	flag.StringVar(&cfg.CorpusPath, "corpus", cfg.CorpusPath, "movie descriptions, one per line")
	flag.StringVar(&cfg.EmbeddingsPath, "embeddings", cfg.EmbeddingsPath, "word2vec embeddings (.bin, .txt or .vec)")
	flag.BoolVar(&cfg.Normalize, "normalize", cfg.Normalize, "normalize word vectors to unit length")
	flag.StringVar(&cfg.Query, "query", cfg.Query, "description of a movie you liked")
	flag.StringVar(&cfg.QueryLabel, "label", cfg.QueryLabel, "name of the movie you liked")
	flag.StringVar(&cfg.Scorer, "scorer", cfg.Scorer, "similarity scorer: embeddings or levenshtein")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of descriptions scored concurrently")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Usage: movierec [flags] [movies.txt]")
		os.Exit(1)
	}

	if flag.NArg() == 1 {
		cfg.CorpusPath = flag.Arg(0)
	}

	logger := common.NewLogger(cfg.LogLevel)
	common.ExitIfError(logger, "Invalid configuration", cfg.Validate())

	var embeds *movierec.Embeddings
	if cfg.Scorer == movierec.ScorerEmbeddings {
		embeds, err = movierec.LoadEmbeddings(cfg.EmbeddingsPath, cfg.Normalize)
		common.ExitIfError(logger, "Cannot read embeddings", err)

		logger.Info().
			Str("path", cfg.EmbeddingsPath).
			Int("words", embeds.Size()).
			Int("dims", embeds.VectorSize()).
			Msg("Embeddings loaded")
	}

	scorer, err := movierec.NewScorer(cfg.Scorer, embeds)
	common.ExitIfError(logger, "Cannot create scorer", err)

	movies, err := movierec.LoadCorpus(cfg.CorpusPath)
	common.ExitIfError(logger, "Cannot read movie descriptions", err)

	logger.Debug().Str("path", cfg.CorpusPath).Int("movies", len(movies)).Msg("Corpus loaded")

	recommender := movierec.NewRecommender(scorer,
		movierec.WithWorkers(cfg.Workers),
		movierec.WithLogger(logger))

	rec, ok, err := recommender.Recommend(context.Background(), cfg.Query, movies)
	common.ExitIfError(logger, "Cannot recommend a movie", err)

	if !ok {
		fmt.Printf("No recommendation found for '%s'.\n", cfg.QueryLabel)
		return
	}

	logger.Debug().Int("index", rec.Index).Float32("score", rec.Score).Msg("Recommendation")

	fmt.Printf("If you liked '%s', you might also enjoy: %s\n",
		cfg.QueryLabel, strings.TrimRight(rec.Description, "\r\n"))
}
