// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintNestedQuantifier(t *testing.T) {
	issues := Lint("test", "nested", `(a+)+b`)
	require.NotEmpty(t, issues)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "nested repetition")
}

func TestLintBoundedRepetitionOfQuantifiedGroup(t *testing.T) {
	issues := Lint("test", "bounded", `(\d+){1,10}`)
	require.NotEmpty(t, issues)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
}

func TestLintQuantifiedAlternation(t *testing.T) {
	issues := Lint("test", "alt", `(ab|ba)+c`)
	require.NotEmpty(t, issues)
	assert.Equal(t, SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "alternation")
}

func TestLintAdjacentWildcards(t *testing.T) {
	issues := Lint("test", "wild", `.*.*=value`)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Message, "wildcards")
}

func TestLintOverlappingClasses(t *testing.T) {
	issues := Lint("test", "classes", `\s+\s+x`)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Message, "overlapping")
}

func TestLintCleanPatterns(t *testing.T) {
	clean := []string{
		`\b\d{16}\b`,
		`\b[A-Z]{2}\d{2}[A-Z0-9]{10,30}\b`,
		`\b(?:\d{1,3}\.){3}\d{1,3}\b`,
		`\b\d{3}-\d{2}-\d{4}\b`,
	}
	for _, pattern := range clean {
		assert.Empty(t, Lint("test", "clean", pattern), "pattern %q", pattern)
	}
}

func TestIssueString(t *testing.T) {
	issue := Issue{
		Namespace: "financial",
		PatternID: "card",
		Severity:  SeverityHigh,
		Message:   "nested repetition",
		Fragment:  "(a+)+",
	}
	s := issue.String()
	assert.Contains(t, s, "financial/card")
	assert.Contains(t, s, "high")
}
