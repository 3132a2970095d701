// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pattern-scan/internal/config"
	"pattern-scan/internal/detector"
	"pattern-scan/internal/observability"
	"pattern-scan/internal/patterns"
	"pattern-scan/internal/preprocessors"
	"pattern-scan/internal/scanner"
	"pattern-scan/internal/verification"
	"pattern-scan/internal/version"

	"pattern-scan/internal/formatters"
	_ "pattern-scan/internal/formatters/csv"
	_ "pattern-scan/internal/formatters/json"
	_ "pattern-scan/internal/formatters/text"
	_ "pattern-scan/internal/formatters/yaml"

	"golang.org/x/term"
)

const maxScanFileSize = 100 * 1024 * 1024 // 100MB

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat        string
	confidenceLevels    string
	checksToRun         string
	patternsDir         string
	verbose             bool
	debug               bool
	noColor             bool
	recursive           bool
	enablePreprocessors bool
	showMatch           bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format              string
	confidenceLevels    string
	checksToRun         string
	patternsDir         string
	verbose             bool
	debug               bool
	noColor             bool
	recursive           bool
	enablePreprocessors bool
	showMatch           bool
	excludePatterns     []string
}

// resolveConfiguration resolves final configuration values from config file,
// profile, and command line flags. Precedence is flags over profile over
// config file over built-in defaults.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text"
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Confidence levels
	final.confidenceLevels = "all"
	if cfg != nil && cfg.Defaults.ConfidenceLevels != "" {
		final.confidenceLevels = cfg.Defaults.ConfidenceLevels
	}
	if activeProfile != nil && activeProfile.ConfidenceLevels != "" {
		final.confidenceLevels = activeProfile.ConfidenceLevels
	}
	if isFlagSet("confidence") && flags.confidenceLevels != "" {
		final.confidenceLevels = flags.confidenceLevels
	}

	// Checks to run
	final.checksToRun = "all"
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checksToRun = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checksToRun = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checksToRun = flags.checksToRun
	}

	// Pattern catalog directory
	final.patternsDir = "patterns"
	if cfg != nil && cfg.Defaults.PatternsDir != "" {
		final.patternsDir = cfg.Defaults.PatternsDir
	}
	if activeProfile != nil && activeProfile.PatternsDir != "" {
		final.patternsDir = activeProfile.PatternsDir
	}
	if isFlagSet("patterns") && flags.patternsDir != "" {
		final.patternsDir = flags.patternsDir
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Recursive
	if cfg != nil {
		final.recursive = cfg.Defaults.Recursive
	}
	if activeProfile != nil {
		final.recursive = activeProfile.Recursive
	}
	if isFlagSet("recursive") {
		final.recursive = flags.recursive
	}

	// Enable preprocessors
	final.enablePreprocessors = true
	if cfg != nil {
		final.enablePreprocessors = cfg.Defaults.EnablePreprocessors
	}
	if activeProfile != nil {
		final.enablePreprocessors = activeProfile.EnablePreprocessors
	}
	if isFlagSet("enable-preprocessors") {
		final.enablePreprocessors = flags.enablePreprocessors
	}

	// Show match
	if isFlagSet("show-match") {
		final.showMatch = flags.showMatch
	}

	// Exclude patterns
	if cfg != nil {
		final.excludePatterns = cfg.Defaults.ExcludePatterns
	}
	if activeProfile != nil && len(activeProfile.ExcludePatterns) > 0 {
		final.excludePatterns = activeProfile.ExcludePatterns
	}

	return final
}

func main() {
	inputFile := flag.String("file", "", "Path to the input file, directory, or glob pattern (e.g., *.pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	confidenceLevels := flag.String("confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	checksToRun := flag.String("checks", "", "Catalog namespaces to scan: financial, secrets, or combinations like 'financial,secrets' (default: all)")
	patternsDir := flag.String("patterns", "", "Directory containing the YAML pattern catalog (default: patterns)")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	debug := flag.Bool("debug", false, "Enable debug logging to show preprocessing and validation flow")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showVersion := flag.Bool("version", false, "Show version information")
	showMatch := flag.Bool("show-match", false, "Display the actual matched text in findings")
	recursive := flag.Bool("recursive", false, "Recursively scan directories")
	enablePreprocessors := flag.Bool("enable-preprocessors", true, "Enable text extraction from PDF documents and image metadata (use --enable-preprocessors=false to disable)")
	listChecks := flag.Bool("list-checks", false, "List catalog namespaces, their patterns, and registered verification functions")
	lintPatterns := flag.Bool("lint-patterns", false, "Lint the pattern catalog for hazardous regex constructs and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Create debug observer early for configuration logging
	var mainDebugObs *observability.DebugObserver
	if *debug {
		mainDebugObs = observability.NewDebugObserver(os.Stderr)
		mainDebugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	cfg := loadConfiguration(*configFile)

	if *listProfiles {
		printProfiles(cfg)
		return
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: profile '%s' not found. Available profiles: %s\n",
				*profileName, strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(1)
		}
	}

	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		outputFormat:        *outputFormat,
		confidenceLevels:    *confidenceLevels,
		checksToRun:         *checksToRun,
		patternsDir:         *patternsDir,
		verbose:             *verbose,
		debug:               *debug,
		noColor:             *noColor,
		recursive:           *recursive,
		enablePreprocessors: *enablePreprocessors,
		showMatch:           *showMatch,
	})

	if finalConfig.debug && mainDebugObs == nil {
		mainDebugObs = observability.NewDebugObserver(os.Stderr)
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stdout) || os.Getenv("CI") != "" {
		finalConfig.noColor = true
	}

	catalog, err := patterns.LoadDir(finalConfig.patternsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load pattern catalog: %v\n", err)
		os.Exit(1)
	}

	if *listChecks {
		printChecks(catalog)
		return
	}

	if *lintPatterns {
		issues := patterns.LintFiles(catalog)
		if len(issues) == 0 {
			fmt.Printf("No lint findings in %d catalog files\n", len(catalog))
			return
		}
		for _, issue := range issues {
			fmt.Println(issue.String())
		}
		fmt.Fprintf(os.Stderr, "%d lint findings\n", len(issues))
		os.Exit(1)
	}

	selected, err := filterCatalogByChecks(catalog, finalConfig.checksToRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	catalogValidator, err := scanner.NewCatalogValidator(selected, verification.DefaultRegistry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid pattern catalog: %v\n", err)
		os.Exit(1)
	}

	var observer *observability.StandardObserver
	if finalConfig.debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
		observer.DebugObserver = mainDebugObs
		catalogValidator.SetObserver(observer)
	}

	manager := buildPreprocessorManager(finalConfig.enablePreprocessors, observer)

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: no input specified. Use --file to point at a file, directory, or glob pattern.\n")
		flag.Usage()
		os.Exit(1)
	}

	filesToScan, err := getFilesToProcess(*inputFile, finalConfig.recursive, finalConfig.excludePatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(filesToScan) == 0 {
		fmt.Fprintf(os.Stderr, "No files to scan\n")
		return
	}

	var allMatches []detector.Match
	for _, filePath := range filesToScan {
		matches, err := scanFile(manager, catalogValidator, filePath, mainDebugObs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", filePath, err)
			continue
		}
		allMatches = append(allMatches, matches...)
	}

	output, err := formatters.Export(finalConfig.format, allMatches, formatters.FormatterOptions{
		ConfidenceLevel: parseConfidenceLevels(finalConfig.confidenceLevels),
		Verbose:         finalConfig.verbose,
		NoColor:         finalConfig.noColor,
		ShowMatch:       finalConfig.showMatch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(output)
}

// buildPreprocessorManager wires up the preprocessing chain. Plaintext is
// always available; document and image extraction are optional.
func buildPreprocessorManager(enablePreprocessors bool, observer *observability.StandardObserver) *preprocessors.Manager {
	manager := preprocessors.NewManager()
	manager.Register(preprocessors.NewPlaintextPreprocessor())
	if enablePreprocessors {
		manager.Register(preprocessors.NewPDFPreprocessor())
		manager.Register(preprocessors.NewExifPreprocessor())
	}
	if observer != nil {
		for _, p := range manager.GetAvailablePreprocessors() {
			p.SetObserver(observer)
		}
	}
	return manager
}

// scanFile preprocesses a single file and runs the catalog over it.
func scanFile(manager *preprocessors.Manager, validator *scanner.CatalogValidator, filePath string, debugObs *observability.DebugObserver) ([]detector.Match, error) {
	processed, err := manager.ProcessFile(filePath)
	if err != nil {
		return nil, err
	}
	if !processed.Success {
		if debugObs != nil {
			debugObs.LogDetail("main", fmt.Sprintf("No preprocessor for %s, skipping", filePath))
		}
		return nil, nil
	}
	return validator.ValidateContent(processed.Text, filePath)
}

// filterCatalogByChecks narrows the catalog to the requested namespaces.
func filterCatalogByChecks(catalog []*patterns.File, checks string) ([]*patterns.File, error) {
	if checks == "" || checks == "all" {
		return catalog, nil
	}

	available := make(map[string]*patterns.File)
	for _, file := range catalog {
		available[file.Namespace] = file
	}

	var selected []*patterns.File
	for _, check := range strings.Split(checks, ",") {
		name := strings.ToLower(strings.TrimSpace(check))
		if name == "" {
			continue
		}
		file, ok := available[name]
		if !ok {
			names := make([]string, 0, len(available))
			for ns := range available {
				names = append(names, ns)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("unknown check '%s'. Available checks: %s", name, strings.Join(names, ", "))
		}
		selected = append(selected, file)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no checks selected")
	}
	return selected, nil
}

// printChecks lists the catalog namespaces with their patterns, then the
// registered verification functions.
func printChecks(catalog []*patterns.File) {
	fmt.Println("Available checks (catalog namespaces):")
	for _, file := range catalog {
		fmt.Printf("  %s - %s\n", file.Namespace, file.Description)
		for i := range file.Patterns {
			p := &file.Patterns[i]
			if p.Verification != "" {
				fmt.Printf("    %s (verification: %s)\n", p.ID, p.Verification)
			} else {
				fmt.Printf("    %s\n", p.ID)
			}
		}
	}

	fmt.Println()
	fmt.Println("Registered verification functions:")
	for _, name := range verification.Names() {
		fmt.Printf("  %s\n", name)
	}
}

// printProfiles lists the profiles available in the loaded configuration.
func printProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Println("No profiles defined")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range names {
		profile := cfg.GetProfile(name)
		if profile != nil && profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

// getFilesToProcess returns a list of files to scan based on the input path.
// Supports glob patterns like *.pdf, files, and directories.
func getFilesToProcess(inputPath string, recursive bool, excludePatterns []string) ([]string, error) {
	// Validate input path before any file operations
	if strings.Contains(inputPath, "..") {
		return nil, fmt.Errorf("path traversal not allowed: %s", inputPath)
	}

	// Check if the path exists as-is before treating it as a glob pattern
	if info, err := os.Stat(inputPath); err == nil {
		if info.Mode().IsRegular() {
			if info.Size() > maxScanFileSize {
				fmt.Fprintf(os.Stderr, "Warning: Skipping %s: file too large (> 100MB)\n", inputPath)
				return nil, nil
			}
			return []string{filepath.Clean(inputPath)}, nil
		}
		if info.IsDir() {
			return collectDirectoryFiles(filepath.Clean(inputPath), recursive, excludePatterns)
		}
		return nil, fmt.Errorf("path is neither a regular file nor a directory")
	}

	if strings.ContainsAny(inputPath, "*?[") {
		globMatches, err := filepath.Glob(inputPath)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", err)
		}
		if len(globMatches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", inputPath)
		}

		var files []string
		for _, match := range globMatches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if info.Size() > maxScanFileSize {
				fmt.Fprintf(os.Stderr, "Warning: Skipping %s: file too large (> 100MB)\n", match)
				continue
			}
			if isExcluded(match, excludePatterns) {
				continue
			}
			files = append(files, filepath.Clean(match))
		}
		return files, nil
	}

	return nil, fmt.Errorf("path does not exist or is not accessible: %s", inputPath)
}

// collectDirectoryFiles walks a directory collecting regular files to scan.
func collectDirectoryFiles(dir string, recursive bool, excludePatterns []string) ([]string, error) {
	var files []string
	skipped := 0

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
			skipped++
			return nil
		}

		if info.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			if path != dir && isExcluded(path, excludePatterns) {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}
		if isExcluded(path, excludePatterns) {
			return nil
		}
		if info.Size() > maxScanFileSize {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: file too large (> 100MB)\n", path)
			skipped++
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}

	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped %d files or directories due to errors\n", skipped)
	}
	return files, nil
}

// isExcluded reports whether a path matches any of the exclusion patterns.
// Patterns are matched against the base name and, as a fallback, as a path
// substring so directory names like "vendor" work without glob syntax.
func isExcluded(path string, excludePatterns []string) bool {
	base := filepath.Base(path)
	for _, pattern := range excludePatterns {
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// parseConfidenceLevels converts a comma-separated list of confidence levels
// into the filter map the formatters consume.
func parseConfidenceLevels(levels string) map[string]bool {
	result := map[string]bool{
		"high":   false,
		"medium": false,
		"low":    false,
	}

	if levels == "all" || levels == "" {
		result["high"] = true
		result["medium"] = true
		result["low"] = true
		return result
	}

	for _, level := range strings.Split(levels, ",") {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "high", "medium", "low":
			result[strings.ToLower(strings.TrimSpace(level))] = true
		}
	}

	return result
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
