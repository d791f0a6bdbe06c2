package service

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// ConditionClassifier decides whether a study belongs in the dataset
// based on its condition tags. A study stays when at least one tag is
// not on the exclusion list AND fuzzy-matches the inclusion vocabulary.
// Exclusion is an exact case-insensitive match; inclusion is fuzzy so
// misspelled registry tags still land.
type ConditionClassifier struct {
	include    []string
	exclude    map[string]struct{}
	threshold  int
	scoreCache *lru.Cache[string, int]
	log        *logrus.Logger
}

// NewConditionClassifier creates a classifier from the configured
// vocabularies
func NewConditionClassifier(cfg *domain.ClassifierConfig, logger *logrus.Logger) (*ConditionClassifier, error) {
	exclude := make(map[string]struct{}, len(cfg.ExcludeConditions))
	for _, cond := range cfg.ExcludeConditions {
		exclude[strings.ToLower(cond)] = struct{}{}
	}

	threshold := cfg.MatchThreshold
	if threshold == 0 {
		threshold = 75
	}
	cacheSize := cfg.ScoreCacheSize
	if cacheSize == 0 {
		cacheSize = 4096
	}

	// The registry repeats the same handful of condition strings across
	// thousands of studies, so memoizing per-tag scores pays off.
	scoreCache, err := lru.New[string, int](cacheSize)
	if err != nil {
		return nil, err
	}

	return &ConditionClassifier{
		include:    cfg.IncludeConditions,
		exclude:    exclude,
		threshold:  threshold,
		scoreCache: scoreCache,
		log:        logger,
	}, nil
}

// Accept reports whether a study with the given condition tags belongs
// in the dataset. Studies with no tags at all are rejected.
func (c *ConditionClassifier) Accept(conditions []string) bool {
	for _, cond := range conditions {
		lower := strings.ToLower(strings.TrimSpace(cond))
		if lower == "" {
			continue
		}
		if _, excluded := c.exclude[lower]; excluded {
			continue
		}
		if c.bestScore(lower) >= c.threshold {
			return true
		}
	}
	return false
}

// bestScore returns the best token-set similarity between the tag and
// the inclusion vocabulary.
func (c *ConditionClassifier) bestScore(condition string) int {
	if score, ok := c.scoreCache.Get(condition); ok {
		return score
	}

	best := 0
	for _, inc := range c.include {
		score := fuzzy.TokenSetRatio(condition, strings.ToLower(inc))
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}

	c.scoreCache.Add(condition, best)
	return best
}
