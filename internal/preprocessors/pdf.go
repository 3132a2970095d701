// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"pattern-scan/internal/observability"

	"github.com/ledongthuc/pdf"
)

// Page limit keeps pathological documents from dominating a scan.
const maxPDFPages = 50

// PDFPreprocessor extracts text content from PDF documents.
type PDFPreprocessor struct {
	observer *observability.StandardObserver
}

// NewPDFPreprocessor creates a PDF text extraction preprocessor.
func NewPDFPreprocessor() *PDFPreprocessor {
	return &PDFPreprocessor{}
}

func (p *PDFPreprocessor) GetName() string {
	return "pdf"
}

func (p *PDFPreprocessor) GetSupportedExtensions() []string {
	return []string{".pdf"}
}

// SetObserver sets the observability component
func (p *PDFPreprocessor) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

func (p *PDFPreprocessor) CanProcess(filePath string) bool {
	return strings.EqualFold(filepath.Ext(filePath), ".pdf")
}

func (p *PDFPreprocessor) Process(filePath string) (*ProcessedContent, error) {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("pdf_preprocessor", "process", filePath)
	}

	content := &ProcessedContent{
		OriginalPath:  filePath,
		Filename:      filepath.Base(filePath),
		Format:        "pdf",
		ProcessorType: p.GetName(),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		content.Error = fmt.Errorf("failed to open PDF %s: %w", filePath, err)
		if finishTiming != nil {
			finishTiming(false, nil)
		}
		return content, content.Error
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}
	content.PageCount = pageCount

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageText(page)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	content.Text = normalizeExtractedText(buf.String())
	content.Success = true
	content.countContent()

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"page_count":     content.PageCount,
			"content_length": content.CharCount,
		})
	}
	return content, nil
}

// extractPageText prefers row-based extraction, which reconstructs reading
// order and inter-word spacing from glyph coordinates, and falls back to the
// library's plain text stream when row data is unavailable.
func extractPageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return page.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := joinRowText(row.Content)
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// joinRowText assembles one visual row left to right, inserting a space where
// the horizontal gap between glyph runs exceeds a fraction of the font size.
func joinRowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (element.X + element.W)
		fontSize := element.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// normalizeExtractedText trims blank lines and collapses runs of spaces so
// line-oriented scanning sees stable input.
func normalizeExtractedText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
