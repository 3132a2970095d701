// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"pattern-scan/internal/detector"
	"pattern-scan/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"blue":    color.New(color.FgBlue),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors and tables"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(matches []detector.Match, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	if len(matches) == 0 {
		return "No matches found.", nil
	}

	filtered := formatters.FilterMatchesByConfidence(matches, options)
	if len(filtered) == 0 {
		return "No matches found at the specified confidence levels.", nil
	}

	return f.formatText(filtered, options), nil
}

func (f *Formatter) formatText(matches []detector.Match, options formatters.FormatterOptions) string {
	var builder strings.Builder

	f.sortMatches(matches)

	if !options.Verbose {
		f.appendHeaders(&builder, matches, options)
	}

	for _, match := range matches {
		confidenceLevel := formatters.ConfidenceLevelName(match.Confidence)
		if !options.Verbose {
			f.appendSummaryLine(&builder, match, confidenceLevel, matches, options)
			continue
		}
		f.appendDetailedMatch(&builder, match, confidenceLevel, options)
	}

	return builder.String()
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder, matches []detector.Match, options formatters.FormatterOptions) {
	matchWidth := f.calculateMatchColumnWidth(matches, options)
	headerStr := fmt.Sprintf("%-8s %-18s %-24s %-8s %-10s %-*s %s\n",
		"LEVEL", "NAMESPACE", "TYPE", "CONF%", "LINE", matchWidth, "MATCH", "FILE")
	if !options.NoColor {
		headerStr = f.colors["white"].Sprintf("%-8s %-18s %-24s %-8s %-10s %-*s %s\n",
			"LEVEL", "NAMESPACE", "TYPE", "CONF%", "LINE", matchWidth, "MATCH", "FILE")
	}
	builder.WriteString(headerStr)

	totalWidth := 8 + 1 + 18 + 1 + 24 + 1 + 8 + 1 + 10 + 1 + matchWidth + 1 + 10
	separator := strings.Repeat("-", totalWidth) + "\n"
	if !options.NoColor {
		separator = f.colors["white"].Sprint(strings.Repeat("-", totalWidth) + "\n")
	}
	builder.WriteString(separator)
}

// calculateMatchColumnWidth calculates the optimal width for the match column
func (f *Formatter) calculateMatchColumnWidth(matches []detector.Match, options formatters.FormatterOptions) int {
	maxWidth := 10 // Minimum width for "[REDACTED]"
	for _, match := range matches {
		if options.ShowMatch || options.Verbose {
			matchText := strings.ReplaceAll(match.Text, "\n", " ")
			matchText = strings.ReplaceAll(matchText, "\t", " ")
			runeCount := len([]rune(matchText))
			if runeCount > maxWidth {
				maxWidth = runeCount
			}
		}
	}
	// Cap at 30 characters for readability
	if maxWidth > 30 {
		maxWidth = 30
	}
	return maxWidth
}

// appendSummaryLine adds a single line summary to the string builder
func (f *Formatter) appendSummaryLine(builder *strings.Builder, match detector.Match, confidenceLevel string, allMatches []detector.Match, options formatters.FormatterOptions) {
	var levelColor *color.Color
	switch confidenceLevel {
	case "HIGH":
		levelColor = f.colors["red"]
	case "MEDIUM":
		levelColor = f.colors["yellow"]
	default:
		levelColor = f.colors["green"]
	}

	levelStr := fmt.Sprintf("[%-6s]", confidenceLevel)
	if !options.NoColor {
		levelStr = levelColor.Sprintf("[%-6s]", confidenceLevel)
	}

	namespace := match.Validator
	if len(namespace) > 18 {
		namespace = namespace[:15] + "..."
	}
	namespaceStr := fmt.Sprintf("%-18s", namespace)
	if !options.NoColor {
		namespaceStr = f.colors["green"].Sprintf("%-18s", namespace)
	}

	typeDisplay := match.Type
	if len(typeDisplay) > 24 {
		typeDisplay = typeDisplay[:21] + "..."
	}
	typeStr := fmt.Sprintf("%-24s", typeDisplay)
	if !options.NoColor {
		typeStr = f.colors["cyan"].Sprintf("%-24s", typeDisplay)
	}

	confidenceStr := fmt.Sprintf("%7.2f%%", match.Confidence)
	if !options.NoColor {
		confidenceStr = f.colors["blue"].Sprintf("%7.2f%%", match.Confidence)
	}

	lineStr := fmt.Sprintf("line %5d", match.LineNumber)
	if !options.NoColor {
		lineStr = f.colors["magenta"].Sprintf("line %5d", match.LineNumber)
	}

	var matchText string
	targetWidth := f.calculateMatchColumnWidth(allMatches, options)
	if options.ShowMatch || options.Verbose {
		matchText = strings.ReplaceAll(match.Text, "\n", " ")
		matchText = strings.ReplaceAll(matchText, "\t", " ")
		runes := []rune(matchText)
		if len(runes) > targetWidth {
			matchText = string(runes[:targetWidth-3]) + "..."
		}
	} else {
		matchText = "[REDACTED]"
	}
	if padding := targetWidth - len([]rune(matchText)); padding > 0 {
		matchText += strings.Repeat(" ", padding)
	}

	filename := f.getSmartFilename(match.Filename, allMatches)
	filenameStr := filename
	if !options.NoColor {
		filenameStr = f.colors["white"].Sprint(filename)
	}

	fmt.Fprintf(builder, "%s %s %s %s %s %s %s\n",
		levelStr,
		namespaceStr,
		typeStr,
		confidenceStr,
		lineStr,
		matchText,
		filenameStr)
}

// appendDetailedMatch adds detailed match information to the string builder
func (f *Formatter) appendDetailedMatch(builder *strings.Builder, match detector.Match, confidenceLevel string, options formatters.FormatterOptions) {
	if !options.NoColor {
		f.colors["white"].Fprintf(builder, "=== Match Details ===\n")
	} else {
		fmt.Fprintf(builder, "=== Match Details ===\n")
	}

	if !options.NoColor {
		f.colors["cyan"].Fprintf(builder, "Match found in ")
		f.colors["white"].Fprintf(builder, "%s", match.Filename)
		f.colors["cyan"].Fprintf(builder, " on ")
		f.colors["magenta"].Fprintf(builder, "line %d", match.LineNumber)
		f.colors["cyan"].Fprintf(builder, ": %s\n", match.Text)
	} else {
		fmt.Fprintf(builder, "Match found in %s on line %d: %s\n", match.Filename, match.LineNumber, match.Text)
	}

	if !options.NoColor {
		f.colors["cyan"].Fprintf(builder, "Type: ")
		f.colors["white"].Fprintf(builder, "%s\n", match.Type)
	} else {
		fmt.Fprintf(builder, "Type: %s\n", match.Type)
	}

	if verificationName, ok := match.Metadata["verification"].(string); ok && verificationName != "" {
		if !options.NoColor {
			f.colors["cyan"].Fprintf(builder, "Verification: ")
			f.colors["white"].Fprintf(builder, "%s\n", verificationName)
		} else {
			fmt.Fprintf(builder, "Verification: %s\n", verificationName)
		}
	}

	var levelColor *color.Color
	switch confidenceLevel {
	case "HIGH":
		levelColor = f.colors["red"]
	case "MEDIUM":
		levelColor = f.colors["yellow"]
	default:
		levelColor = f.colors["green"]
	}

	if !options.NoColor {
		f.colors["cyan"].Fprintf(builder, "Confidence level: ")
		f.colors["white"].Fprintf(builder, "%.2f%% ", match.Confidence)
		levelColor.Fprintf(builder, "(%s)\n", confidenceLevel)
	} else {
		fmt.Fprintf(builder, "Confidence level: %.2f%% (%s)\n", match.Confidence, confidenceLevel)
	}

	if impact, ok := match.Metadata["context_impact"].(float64); ok && impact != 0 {
		if !options.NoColor {
			f.colors["cyan"].Fprintf(builder, "Context impact: ")
			if impact > 0 {
				f.colors["green"].Fprintf(builder, "+%.2f%%\n", impact)
			} else {
				f.colors["red"].Fprintf(builder, "%.2f%%\n", impact)
			}
		} else {
			if impact > 0 {
				fmt.Fprintf(builder, "Context impact: +%.2f%%\n", impact)
			} else {
				fmt.Fprintf(builder, "Context impact: %.2f%%\n", impact)
			}
		}
	}

	if len(match.Context.PositiveKeywords) > 0 || len(match.Context.NegativeKeywords) > 0 {
		if !options.NoColor {
			f.colors["cyan"].Fprintf(builder, "Context analysis:\n")
		} else {
			fmt.Fprintf(builder, "Context analysis:\n")
		}

		if len(match.Context.PositiveKeywords) > 0 {
			if !options.NoColor {
				fmt.Fprintf(builder, "- Supporting keywords: ")
				f.colors["green"].Fprintf(builder, "%s\n", strings.Join(match.Context.PositiveKeywords, ", "))
			} else {
				fmt.Fprintf(builder, "- Supporting keywords: %s\n", strings.Join(match.Context.PositiveKeywords, ", "))
			}
		}

		if len(match.Context.NegativeKeywords) > 0 {
			if !options.NoColor {
				fmt.Fprintf(builder, "- Contradicting keywords: ")
				f.colors["red"].Fprintf(builder, "%s\n", strings.Join(match.Context.NegativeKeywords, ", "))
			} else {
				fmt.Fprintf(builder, "- Contradicting keywords: %s\n", strings.Join(match.Context.NegativeKeywords, ", "))
			}
		}
	}

	if options.Verbose && (match.Context.BeforeText != "" || match.Context.AfterText != "") {
		if !options.NoColor {
			f.colors["cyan"].Fprintf(builder, "Context snippet:\n")
			if match.Context.BeforeText != "" {
				fmt.Fprintf(builder, "... %s", match.Context.BeforeText)
			}
			f.colors["yellow"].Fprintf(builder, "[%s]", match.Text)
			if match.Context.AfterText != "" {
				fmt.Fprintf(builder, "%s ...\n", match.Context.AfterText)
			} else {
				fmt.Fprintln(builder)
			}
		} else {
			fmt.Fprintf(builder, "Context snippet:\n")
			fmt.Fprintf(builder, "... %s[%s]%s ...\n",
				match.Context.BeforeText,
				match.Text,
				match.Context.AfterText)
		}
	}

	fmt.Fprintln(builder)
}

// sortMatches sorts matches by confidence level (HIGH, MEDIUM, LOW) and then by confidence score
func (f *Formatter) sortMatches(matches []detector.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
}

// getSmartFilename returns the basename when it is unambiguous, falling back
// to parent/basename when two scanned files share a name.
func (f *Formatter) getSmartFilename(fullPath string, allMatches []detector.Match) string {
	if !strings.Contains(fullPath, "/") {
		return fullPath
	}

	parts := strings.Split(fullPath, "/")
	basename := parts[len(parts)-1]

	conflicts := false
	for _, match := range allMatches {
		if match.Filename != fullPath && strings.Contains(match.Filename, "/") {
			otherParts := strings.Split(match.Filename, "/")
			if basename == otherParts[len(otherParts)-1] {
				conflicts = true
				break
			}
		}
	}

	if !conflicts {
		return basename
	}
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "/" + basename
	}
	return basename
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
