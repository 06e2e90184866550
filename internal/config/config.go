// Package config loads the movierec configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danieldk/movierec"
)

const (
	DefaultLabel = "Planet Hulk"
	DefaultQuery = "Will he save their world or destroy it? When the Hulk becomes too " +
		"dangerous for the Earth, the Illuminati trick Hulk into a shuttle " +
		"and launch him into space to a planet where the Hulk can live in " +
		"peace. Unfortunately, Hulk lands on the planet Sakaar where he is " +
		"sold into slavery and trained as a gladiator."
)

type Config struct {
	CorpusPath     string
	EmbeddingsPath string
	Normalize      bool
	Query          string
	QueryLabel     string
	Scorer         string
	Workers        int
	LogLevel       string
}

// Load reads the configuration from the environment. Variables in a .env
// file in the working directory are used when they are not set already.
func Load() (*Config, error) {
	const (
		defaultCorpus    = "movies.txt"
		defaultWorkers   = 1
		defaultLogLevel  = "info"
		defaultNormalize = true
	)

	_ = godotenv.Load()

	workers, err := getEnvInt("MOVIEREC_WORKERS", defaultWorkers)
	if err != nil {
		return nil, err
	}

	normalize, err := getEnvBool("MOVIEREC_NORMALIZE", defaultNormalize)
	if err != nil {
		return nil, err
	}

	return &Config{
		CorpusPath:     getEnv("MOVIEREC_CORPUS", defaultCorpus),
		EmbeddingsPath: getEnv("MOVIEREC_EMBEDDINGS", ""),
		Normalize:      normalize,
		Query:          getEnv("MOVIEREC_QUERY", DefaultQuery),
		QueryLabel:     getEnv("MOVIEREC_LABEL", DefaultLabel),
		Scorer:         getEnv("MOVIEREC_SCORER", movierec.ScorerEmbeddings),
		Workers:        workers,
		LogLevel:       getEnv("MOVIEREC_LOG_LEVEL", defaultLogLevel),
	}, nil
}

func (c *Config) Validate() error {
	if c.CorpusPath == "" {
		return errors.New("a corpus path is required")
	}

	switch c.Scorer {
	case movierec.ScorerEmbeddings:
		if c.EmbeddingsPath == "" {
			return fmt.Errorf("scorer %s requires an embeddings file (MOVIEREC_EMBEDDINGS)", c.Scorer)
		}
	case movierec.ScorerLevenshtein:
	default:
		return fmt.Errorf("%w: %s", movierec.ErrUnknownScorer, c.Scorer)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, was %d", c.Workers)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}

	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}

	return boolValue, nil
}
