// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/formatters"

	"gopkg.in/yaml.v3"
)

// finding mirrors the JSON formatter's shape so the two outputs stay
// structurally interchangeable.
type finding struct {
	File         string         `yaml:"file"`
	Line         int            `yaml:"line"`
	Type         string         `yaml:"type"`
	Namespace    string         `yaml:"namespace"`
	Confidence   float64        `yaml:"confidence"`
	Level        string         `yaml:"level"`
	Match        string         `yaml:"match,omitempty"`
	Verification string         `yaml:"verification,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty"`
}

type response struct {
	Findings []finding `yaml:"findings"`
	Total    int       `yaml:"total"`
}

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, structurally identical to the JSON format"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
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

	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to encode findings: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
