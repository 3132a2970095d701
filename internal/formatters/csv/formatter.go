// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/json"
	"fmt"
	"strings"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterMatchesByConfidence(matches, options)

	headers := []string{"Filename", "Namespace", "Type", "Confidence Level", "Confidence %", "Line Number", "Text"}
	if options.Verbose {
		headers = append(headers, "Metadata")
	}

	csvRows := []string{strings.Join(headers, ",")}

	for _, match := range filtered {
		csvRows = append(csvRows, f.createCSVRow(match, options))
	}

	return strings.Join(csvRows, "\n"), nil
}

// createCSVRow creates a CSV row for a match
func (f *Formatter) createCSVRow(match detector.Match, options formatters.FormatterOptions) string {
	displayText := "[REDACTED]"
	if options.ShowMatch || options.Verbose {
		displayText = match.Text
	}

	row := []string{
		f.escapeCSVField(match.Filename),
		f.escapeCSVField(match.Validator),
		f.escapeCSVField(match.Type),
		f.escapeCSVField(formatters.ConfidenceLevelName(match.Confidence)),
		fmt.Sprintf("%.1f", match.Confidence),
		fmt.Sprintf("%d", match.LineNumber),
		f.escapeCSVField(displayText),
	}

	if options.Verbose && match.Metadata != nil {
		metadataJSON, err := json.Marshal(match.Metadata)
		if err != nil {
			row = append(row, f.escapeCSVField("Error serializing metadata"))
		} else {
			row = append(row, f.escapeCSVField(string(metadataJSON)))
		}
	}

	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
