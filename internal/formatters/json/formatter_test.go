// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	gojson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/formatters"
)

func allLevels() map[string]bool {
	return map[string]bool{"high": true, "medium": true, "low": true}
}

func TestFormatEmpty(t *testing.T) {
	f := NewFormatter()
	out, err := f.Format(nil, formatters.FormatterOptions{ConfidenceLevel: allLevels()})
	require.NoError(t, err)

	var resp response
	require.NoError(t, gojson.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Findings)
}

func TestFormatRedactsByDefault(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{
			Text:       "4532015112830366",
			LineNumber: 12,
			Type:       "CREDIT_CARD",
			Confidence: 90,
			Filename:   "cards.txt",
			Validator:  "financial",
			Metadata:   map[string]any{"verification": "credit_card_bin_valid"},
		},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{ConfidenceLevel: allLevels()})
	require.NoError(t, err)

	var resp response
	require.NoError(t, gojson.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Findings, 1)

	fnd := resp.Findings[0]
	assert.Equal(t, "cards.txt", fnd.File)
	assert.Equal(t, 12, fnd.Line)
	assert.Equal(t, "CREDIT_CARD", fnd.Type)
	assert.Equal(t, "financial", fnd.Namespace)
	assert.Equal(t, "HIGH", fnd.Level)
	assert.Equal(t, "credit_card_bin_valid", fnd.Verification)
	assert.Empty(t, fnd.Match)
	assert.Nil(t, fnd.Metadata)
}

func TestFormatShowMatch(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{Text: "900101-1234568", Type: "KR_RRN", Confidence: 90, Validator: "national_id_asia"},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{
		ConfidenceLevel: allLevels(),
		ShowMatch:       true,
	})
	require.NoError(t, err)

	var resp response
	require.NoError(t, gojson.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "900101-1234568", resp.Findings[0].Match)
}

func TestFormatVerboseIncludesMetadata(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{
			Text:       "NL91ABNA0417164300",
			Type:       "IBAN",
			Confidence: 90,
			Validator:  "financial",
			Metadata:   map[string]any{"pattern_id": "iban", "verification": "iban_mod97"},
		},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{
		ConfidenceLevel: allLevels(),
		Verbose:         true,
	})
	require.NoError(t, err)

	var resp response
	require.NoError(t, gojson.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "NL91ABNA0417164300", resp.Findings[0].Match)
	assert.Equal(t, "iban", resp.Findings[0].Metadata["pattern_id"])
}

func TestFormatFiltersLevels(t *testing.T) {
	f := NewFormatter()
	matches := []detector.Match{
		{Type: "HIGH_ONE", Confidence: 95},
		{Type: "LOW_ONE", Confidence: 40},
	}

	out, err := f.Format(matches, formatters.FormatterOptions{
		ConfidenceLevel: map[string]bool{"high": true},
	})
	require.NoError(t, err)

	var resp response
	require.NoError(t, gojson.Unmarshal([]byte(out), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "HIGH_ONE", resp.Findings[0].Type)
}
