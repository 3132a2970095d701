// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// ContextInfo stores contextual information about a match
type ContextInfo struct {
	// Text before and after the match
	BeforeText string
	AfterText  string

	// Line containing the match
	FullLine string

	// Contextual keywords found near the match
	PositiveKeywords []string // Keywords that increase confidence
	NegativeKeywords []string // Keywords that decrease confidence

	// Impact on confidence score
	ConfidenceImpact float64
}

// Validator interface defines methods for validating sensitive data
type Validator interface {
	// ValidateContent scans preprocessed content and returns all matches
	ValidateContent(content string, originalPath string) ([]Match, error)
}

// Match represents a detected sensitive data match
type Match struct {
	Text       string
	LineNumber int
	Type       string
	Confidence float64
	Metadata   map[string]any
	Filename   string // Path to the file where the match was found
	Validator  string // Name of the validator that created this match

	Context ContextInfo
}

// Clear wipes the matched text and its context from a retained Match
func (m *Match) Clear() {
	m.Text = ""
	m.Context.BeforeText = ""
	m.Context.AfterText = ""
	m.Context.FullLine = ""
}
