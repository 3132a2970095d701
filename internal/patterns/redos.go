// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"fmt"
	"regexp"
)

// Lint severity levels.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Issue is a single lint finding against a catalog pattern.
type Issue struct {
	Namespace string
	PatternID string
	Severity  string
	Message   string
	Fragment  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s/%s: %s (%q)", i.Severity, i.Namespace, i.PatternID, i.Message, i.Fragment)
}

// redosCheck is one structural hazard to look for in a pattern source.
// The catalog is shared with scanners built on backtracking regex engines,
// where these constructs can take exponential time on crafted input. Go's
// own RE2 engine is immune, so this is a portability lint, not a runtime
// safety check.
type redosCheck struct {
	detect   *regexp.Regexp
	severity string
	message  string
}

var redosChecks = []redosCheck{
	{
		detect:   regexp.MustCompile(`\([^()]*[*+]\)[*+]`),
		severity: SeverityHigh,
		message:  "quantified group containing a quantifier (nested repetition)",
	},
	{
		detect:   regexp.MustCompile(`\([^()]*[*+]\)\{\d+,\d*\}`),
		severity: SeverityHigh,
		message:  "bounded repetition of a group containing a quantifier",
	},
	{
		detect:   regexp.MustCompile(`\([^()]*\|[^()]*\)[*+]`),
		severity: SeverityMedium,
		message:  "quantified alternation; branches with shared prefixes backtrack heavily",
	},
	{
		detect:   regexp.MustCompile(`\.\*\.\*|\.\+\.\+`),
		severity: SeverityMedium,
		message:  "adjacent unbounded wildcards compete for the same input",
	},
	{
		detect:   regexp.MustCompile(`\\[sdw][*+]\\[sdw][*+]`),
		severity: SeverityMedium,
		message:  "adjacent quantified character classes with overlapping alphabets",
	},
}

// Lint inspects a single pattern source for backtracking hazards.
func Lint(namespace, id, pattern string) []Issue {
	var issues []Issue
	for _, check := range redosChecks {
		if loc := check.detect.FindString(pattern); loc != "" {
			issues = append(issues, Issue{
				Namespace: namespace,
				PatternID: id,
				Severity:  check.severity,
				Message:   check.message,
				Fragment:  loc,
			})
		}
	}
	return issues
}

// LintFiles runs the lint over every pattern in the given catalog files.
func LintFiles(files []*File) []Issue {
	var issues []Issue
	for _, file := range files {
		for i := range file.Patterns {
			p := &file.Patterns[i]
			issues = append(issues, Lint(file.Namespace, p.ID, p.Pattern)...)
		}
	}
	return issues
}
