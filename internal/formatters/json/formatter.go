// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/formatters"
)

// finding is the JSON shape of a single detection.
type finding struct {
	File         string            `json:"file"`
	Line         int               `json:"line"`
	Type         string            `json:"type"`
	Namespace    string            `json:"namespace"`
	Confidence   float64           `json:"confidence"`
	Level        string            `json:"level"`
	Match        string         `json:"match,omitempty"`
	Verification string         `json:"verification,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

type response struct {
	Findings []finding `json:"findings"`
	Total    int       `json:"total"`
}

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterMatchesByConfidence(matches, options)

	findings := make([]finding, 0, len(filtered))
	for _, match := range filtered {
		fnd := finding{
			File:       match.Filename,
			Line:       match.LineNumber,
			Type:       match.Type,
			Namespace:  match.Validator,
			Confidence: match.Confidence,
			Level:      formatters.ConfidenceLevelName(match.Confidence),
		}
		if options.ShowMatch || options.Verbose {
			fnd.Match = match.Text
		}
		if v, ok := match.Metadata["verification"].(string); ok {
			fnd.Verification = v
		}
		if options.Verbose && len(match.Metadata) > 0 {
			fnd.Metadata = match.Metadata
		}
		findings = append(findings, fnd)
	}

	resp := response{
		Findings: findings,
		Total:    len(findings),
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
