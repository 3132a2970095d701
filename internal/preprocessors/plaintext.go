// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"pattern-scan/internal/observability"
)

// Maximum plaintext file size accepted for scanning.
const maxPlaintextSize = 50 * 1024 * 1024

// PlaintextPreprocessor passes text files through unchanged after checking
// they really are text.
type PlaintextPreprocessor struct {
	extensions map[string]bool
	observer   *observability.StandardObserver
}

// NewPlaintextPreprocessor creates a preprocessor for common text formats.
func NewPlaintextPreprocessor() *PlaintextPreprocessor {
	exts := []string{
		".txt", ".md", ".csv", ".tsv", ".log",
		".json", ".yaml", ".yml", ".xml", ".html", ".htm",
		".ini", ".cfg", ".conf", ".toml", ".env", ".properties",
		".go", ".py", ".js", ".ts", ".java", ".rb", ".sh", ".sql",
	}
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		m[ext] = true
	}
	return &PlaintextPreprocessor{extensions: m}
}

func (p *PlaintextPreprocessor) GetName() string {
	return "plaintext"
}

func (p *PlaintextPreprocessor) GetSupportedExtensions() []string {
	exts := make([]string, 0, len(p.extensions))
	for ext := range p.extensions {
		exts = append(exts, ext)
	}
	return exts
}

// SetObserver sets the observability component
func (p *PlaintextPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

func (p *PlaintextPreprocessor) CanProcess(filePath string) bool {
	return p.extensions[strings.ToLower(filepath.Ext(filePath))]
}

func (p *PlaintextPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("plaintext_preprocessor", "process", filePath)
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "text",
		ProcessorType: p.GetName(),
	}

	info, err := os.Stat(filePath)
	if err != nil {
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, err
	}
	if info.Size() > maxPlaintextSize {
		err := fmt.Errorf("file %s exceeds size limit (%d bytes)", filePath, info.Size())
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, err
	}

	// A NUL byte or invalid UTF-8 means a binary file wearing a text
	// extension; scanning it line by line would be meaningless.
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		err := fmt.Errorf("file %s is not valid UTF-8 text", filePath)
		content.Error = err
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, err
	}

	content.Text = string(data)
	content.Success = true
	content.countContent()

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"content_length": content.CharCount,
			"line_count":     content.LineCount,
		})
	}
	return content, nil
}
