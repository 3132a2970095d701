// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns scan targets into plain text the catalog
// scanner can work on: plaintext files pass through, PDFs have their text
// extracted, and images contribute EXIF metadata lines.
package preprocessors

import (
	"path/filepath"

	"pattern-scan/internal/observability"
)

// ProcessedContent represents content that has been processed by a preprocessor
type ProcessedContent struct {
	// Original file information
	OriginalPath string
	Filename     string

	// Extracted content
	Text string

	// Content metadata
	Format    string
	PageCount int
	WordCount int
	CharCount int
	LineCount int

	// Processing information
	ProcessorType string
	Success       bool
	Error         error

	Metadata map[string]interface{}
}

// Preprocessor interface defines methods for preprocessing files
type Preprocessor interface {
	// CanProcess checks if this preprocessor can handle the given file
	CanProcess(filePath string) bool

	// Process extracts content from the file
	Process(filePath string) (*ProcessedContent, error)

	// GetName returns the name of this preprocessor
	GetName() string

	// GetSupportedExtensions returns the file extensions this preprocessor supports
	GetSupportedExtensions() []string

	// SetObserver sets the observability component
	SetObserver(observer *observability.StandardObserver)
}

// Manager routes files to the first preprocessor that claims them.
type Manager struct {
	preprocessors []Preprocessor
}

// NewManager creates a new preprocessor manager
func NewManager() *Manager {
	return &Manager{
		preprocessors: make([]Preprocessor, 0),
	}
}

// Register adds a preprocessor to the manager
func (m *Manager) Register(p Preprocessor) {
	m.preprocessors = append(m.preprocessors, p)
}

// GetPreprocessor returns the appropriate preprocessor for a file, or nil if none found
func (m *Manager) GetPreprocessor(filePath string) Preprocessor {
	for _, p := range m.preprocessors {
		if p.CanProcess(filePath) {
			return p
		}
	}
	return nil
}

// ProcessFile processes a file with the first preprocessor that succeeds.
func (m *Manager) ProcessFile(filePath string) (*ProcessedContent, error) {
	var available []Preprocessor
	for _, p := range m.preprocessors {
		if p.CanProcess(filePath) {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		return &ProcessedContent{
			OriginalPath:  filePath,
			Filename:      filepath.Base(filePath),
			ProcessorType: "none",
			Success:       false,
		}, nil
	}

	var lastError error
	for _, preprocessor := range available {
		result, err := preprocessor.Process(filePath)
		if err == nil && result != nil && result.Success {
			return result, nil
		}
		lastError = err
	}

	return &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		ProcessorType: "failed",
		Success:       false,
		Error:         lastError,
	}, lastError
}

// GetAvailablePreprocessors returns all registered preprocessors
func (m *Manager) GetAvailablePreprocessors() []Preprocessor {
	return m.preprocessors
}

// countContent fills in the word, character and line counts.
func (pc *ProcessedContent) countContent() {
	pc.CharCount = len(pc.Text)
	pc.LineCount = 1
	inWord := false
	for i := 0; i < len(pc.Text); i++ {
		switch pc.Text[i] {
		case '\n':
			pc.LineCount++
			inWord = false
		case ' ', '\t', '\r':
			inWord = false
		default:
			if !inWord {
				pc.WordCount++
				inWord = true
			}
		}
	}
}
