// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pattern-scan/internal/detector"
)

func sampleMatches() []detector.Match {
	return []detector.Match{
		{Type: "CREDIT_CARD", Confidence: 95, Filename: "a.txt", LineNumber: 1},
		{Type: "KR_RRN", Confidence: 75, Filename: "b.txt", LineNumber: 2},
		{Type: "US_ZIPCODE", Confidence: 40, Filename: "c.txt", LineNumber: 3},
	}
}

func TestFilterMatchesByConfidence(t *testing.T) {
	matches := sampleMatches()

	tests := []struct {
		name     string
		levels   map[string]bool
		expected []string
	}{
		{"high only", map[string]bool{"high": true}, []string{"CREDIT_CARD"}},
		{"medium only", map[string]bool{"medium": true}, []string{"KR_RRN"}},
		{"low only", map[string]bool{"low": true}, []string{"US_ZIPCODE"}},
		{"high and medium", map[string]bool{"high": true, "medium": true}, []string{"CREDIT_CARD", "KR_RRN"}},
		{"all", map[string]bool{"high": true, "medium": true, "low": true}, []string{"CREDIT_CARD", "KR_RRN", "US_ZIPCODE"}},
		{"none", map[string]bool{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterMatchesByConfidence(matches, FormatterOptions{ConfidenceLevel: tt.levels})
			var types []string
			for _, m := range filtered {
				types = append(types, m.Type)
			}
			assert.Equal(t, tt.expected, types)
		})
	}
}

func TestFilterBoundaries(t *testing.T) {
	matches := []detector.Match{
		{Type: "AT_90", Confidence: 90},
		{Type: "AT_60", Confidence: 60},
		{Type: "BELOW_60", Confidence: 59.9},
	}

	high := FilterMatchesByConfidence(matches, FormatterOptions{ConfidenceLevel: map[string]bool{"high": true}})
	assert.Len(t, high, 1)
	assert.Equal(t, "AT_90", high[0].Type)

	medium := FilterMatchesByConfidence(matches, FormatterOptions{ConfidenceLevel: map[string]bool{"medium": true}})
	assert.Len(t, medium, 1)
	assert.Equal(t, "AT_60", medium[0].Type)
}

func TestConfidenceLevelName(t *testing.T) {
	assert.Equal(t, "HIGH", ConfidenceLevelName(95))
	assert.Equal(t, "HIGH", ConfidenceLevelName(90))
	assert.Equal(t, "MEDIUM", ConfidenceLevelName(89.9))
	assert.Equal(t, "MEDIUM", ConfidenceLevelName(60))
	assert.Equal(t, "LOW", ConfidenceLevelName(59.9))
	assert.Equal(t, "LOW", ConfidenceLevelName(0))
}

type stubFormatter struct{ name string }

func (s *stubFormatter) Name() string          { return s.name }
func (s *stubFormatter) Description() string   { return "stub" }
func (s *stubFormatter) FileExtension() string { return ".stub" }
func (s *stubFormatter) Format(matches []detector.Match, options FormatterOptions) (string, error) {
	return s.name, nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFormatter{name: "zeta"})
	r.Register(&stubFormatter{name: "alpha"})

	got, exists := r.Get("alpha")
	assert.True(t, exists)
	assert.Equal(t, "alpha", got.Name())

	_, exists = r.Get("missing")
	assert.False(t, exists)

	assert.Equal(t, []string{"alpha", "zeta"}, r.List())
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export("no-such-format", nil, FormatterOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
