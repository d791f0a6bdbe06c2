package service

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsftd-research/datasync/internal/domain"
)

func testClassifier(t *testing.T) *ConditionClassifier {
	t.Helper()
	classifier, err := NewConditionClassifier(&domain.ClassifierConfig{
		IncludeConditions: []string{
			"ALS", "Amyotrophic Lateral Sclerosis", "Motor Neuron Disease",
			"Frontotemporal Dementia", "FTD", "FTLD",
		},
		ExcludeConditions: []string{
			"Spinal Muscular Atrophy", "SMA", "Primary Progressive Aphasia",
			"Alzheimer's Disease",
		},
		MatchThreshold: 75,
		ScoreCacheSize: 64,
	}, logrus.New())
	require.NoError(t, err)
	return classifier
}

func TestConditionClassifier_Accept(t *testing.T) {
	classifier := testClassifier(t)

	tests := []struct {
		name       string
		conditions []string
		accepted   bool
	}{
		{
			name:       "exact inclusion match",
			conditions: []string{"Amyotrophic Lateral Sclerosis"},
			accepted:   true,
		},
		{
			name:       "misspelled condition still matches fuzzily",
			conditions: []string{"Amyotrophic Lateral Scerosis"},
			accepted:   true,
		},
		{
			name:       "excluded condition rejected despite token overlap",
			conditions: []string{"spinal muscular atrophy"},
			accepted:   false,
		},
		{
			name:       "mixed tags accepted when one relevant tag survives",
			conditions: []string{"Spinal Muscular Atrophy", "Amyotrophic Lateral Sclerosis"},
			accepted:   true,
		},
		{
			name:       "unrelated condition rejected",
			conditions: []string{"Type 2 Diabetes"},
			accepted:   false,
		},
		{
			name:       "no conditions rejected",
			conditions: nil,
			accepted:   false,
		},
		{
			name:       "blank tags ignored",
			conditions: []string{"", "   "},
			accepted:   false,
		},
		{
			name:       "exclusion is exact so variants fall through to fuzzy check",
			conditions: []string{"Frontotemporal Dementia (FTD)"},
			accepted:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.accepted, classifier.Accept(tt.conditions))
		})
	}
}

func TestConditionClassifier_ScoreCaching(t *testing.T) {
	classifier := testClassifier(t)

	first := classifier.bestScore("amyotrophic lateral sclerosis")
	second := classifier.bestScore("amyotrophic lateral sclerosis")

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 75)

	cached, ok := classifier.scoreCache.Get("amyotrophic lateral sclerosis")
	require.True(t, ok)
	assert.Equal(t, first, cached)
}
