// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scanner runs the compiled pattern catalog over preprocessed text
// content. Each regex candidate is confirmed by its verification function
// before keyword context adjusts the confidence score.
package scanner

import (
	"fmt"
	"strings"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/observability"
	"pattern-scan/internal/patterns"
	"pattern-scan/internal/verification"
)

// Default base confidence for catalog entries that do not declare one.
const defaultBaseConfidence = 50.0

// Number of characters of surrounding context captured with each match.
const contextChars = 50

// CatalogValidator implements detector.Validator for a set of catalog files.
// Verification names are resolved against the registry at construction, so a
// catalog typo surfaces as a configuration error rather than a silent miss.
type CatalogValidator struct {
	files     []*patterns.File
	verifiers map[string]verification.Func

	observer *observability.StandardObserver
}

// NewCatalogValidator builds a validator from loaded catalog files.
func NewCatalogValidator(files []*patterns.File, registry *verification.Registry) (*CatalogValidator, error) {
	if err := patterns.ResolveVerification(files, registry); err != nil {
		return nil, err
	}

	verifiers := make(map[string]verification.Func)
	for _, file := range files {
		for i := range file.Patterns {
			p := &file.Patterns[i]
			if p.Verification == "" {
				continue
			}
			fn, err := registry.Resolve(p.Verification)
			if err != nil {
				return nil, fmt.Errorf("pattern %s/%s: %w", file.Namespace, p.ID, err)
			}
			verifiers[p.Verification] = fn
		}
	}

	return &CatalogValidator{
		files:     files,
		verifiers: verifiers,
	}, nil
}

// SetObserver sets the observability component
func (v *CatalogValidator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Namespaces returns the catalog namespaces this validator covers.
func (v *CatalogValidator) Namespaces() []string {
	names := make([]string, 0, len(v.files))
	for _, file := range v.files {
		names = append(names, file.Namespace)
	}
	return names
}

// ValidateContent implements the detector.Validator interface.
func (v *CatalogValidator) ValidateContent(content string, originalPath string) ([]detector.Match, error) {
	var finishTiming func(bool, map[string]interface{})
	if v.observer != nil {
		finishTiming = v.observer.StartTiming("catalog_validator", "validate_content", originalPath)
	}

	var matches []detector.Match
	lines := strings.Split(content, "\n")

	for lineNum, line := range lines {
		for _, file := range v.files {
			for i := range file.Patterns {
				p := &file.Patterns[i]

				for _, loc := range p.Regexp().FindAllStringIndex(line, -1) {
					text := line[loc[0]:loc[1]]

					// A failed verification means the candidate merely looks
					// like the pattern; drop it without a trace.
					if p.Verification != "" && !v.verifiers[p.Verification](text) {
						continue
					}

					contextInfo := v.buildContextInfo(line, loc[0], loc[1], p)
					confidence := defaultBaseConfidence
					if p.Confidence > 0 {
						confidence = p.Confidence * 100
					}
					confidence += contextInfo.ConfidenceImpact

					if confidence > 100 {
						confidence = 100
					}
					if confidence <= 0 {
						continue
					}

					matches = append(matches, detector.Match{
						Text:       text,
						LineNumber: lineNum + 1,
						Type:       strings.ToUpper(p.ID),
						Confidence: confidence,
						Filename:   originalPath,
						Validator:  file.Namespace,
						Context:    contextInfo,
						Metadata: map[string]any{
							"pattern_id":     p.ID,
							"category":       p.Category,
							"verification":   p.Verification,
							"context_impact": contextInfo.ConfidenceImpact,
							"original_file":  originalPath,
						},
					})
				}
			}
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"match_count":     len(matches),
			"lines_processed": len(lines),
			"content_length":  len(content),
		})
	}

	return matches, nil
}

// buildContextInfo captures surrounding text and scores the keyword context.
// A negative keyword anywhere on the line outweighs any positive signal; a
// positive keyword counts once to avoid over-boosting.
func (v *CatalogValidator) buildContextInfo(line string, start, end int, p *patterns.Pattern) detector.ContextInfo {
	info := detector.ContextInfo{FullLine: line}

	beforeStart := start - contextChars
	if beforeStart < 0 {
		beforeStart = 0
	}
	afterEnd := end + contextChars
	if afterEnd > len(line) {
		afterEnd = len(line)
	}
	info.BeforeText = line[beforeStart:start]
	info.AfterText = line[end:afterEnd]

	lowerLine := strings.ToLower(line)
	for _, keyword := range p.Keywords.Negative {
		if strings.Contains(lowerLine, strings.ToLower(keyword)) {
			info.NegativeKeywords = append(info.NegativeKeywords, keyword)
		}
	}
	if len(info.NegativeKeywords) > 0 {
		info.ConfidenceImpact = -100
		return info
	}

	for _, keyword := range p.Keywords.Positive {
		if strings.Contains(lowerLine, strings.ToLower(keyword)) {
			info.PositiveKeywords = append(info.PositiveKeywords, keyword)
		}
	}
	if len(info.PositiveKeywords) > 0 {
		info.ConfidenceImpact = 15
	}

	return info
}
