// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns loads and validates the declarative YAML pattern catalog.
// A catalog file declares a namespace of regex patterns, each optionally
// naming a verification function that confirms candidate matches. Schema
// problems, regex compile failures and unresolved verification names are all
// configuration errors reported before any scanning begins.
package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"pattern-scan/internal/verification"

	"gopkg.in/yaml.v3"
)

// Keywords hold contextual terms that raise or lower confidence when found
// near a match.
type Keywords struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Examples carry per-pattern test data: strings the pattern must detect and
// strings it must not report (either because the regex misses them or because
// the verification function rejects them).
type Examples struct {
	Match   []string `yaml:"match"`
	NoMatch []string `yaml:"nomatch"`
}

// Pattern is a single catalog entry.
type Pattern struct {
	ID           string   `yaml:"id"`
	Location     string   `yaml:"location"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Pattern      string   `yaml:"pattern"`
	Flags        []string `yaml:"flags,omitempty"`
	Verification string   `yaml:"verification,omitempty"`
	Confidence   float64  `yaml:"confidence,omitempty"`
	Keywords     Keywords `yaml:"keywords,omitempty"`
	Examples     Examples `yaml:"examples,omitempty"`

	regex *regexp.Regexp
}

// File is one YAML catalog file.
type File struct {
	Namespace   string    `yaml:"namespace"`
	Description string    `yaml:"description"`
	Patterns    []Pattern `yaml:"patterns"`

	// Path records where the file was loaded from, for error messages.
	Path string `yaml:"-"`
}

// patternIDFormat is the naming convention for pattern IDs.
var patternIDFormat = regexp.MustCompile(`^[a-z0-9_\-]+$`)

// LoadFile reads and validates a single catalog file, compiling every regex.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}
	file.Path = path

	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadDir loads every .yml/.yaml file under dir, recursively. Files are
// returned in path order so catalog loading is deterministic.
func LoadDir(dir string) ([]*File, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yml" || ext == ".yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pattern directory %s: %w", dir, err)
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no pattern files found in %s", dir)
	}

	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// validate checks the schema and compiles every pattern regex.
func (f *File) validate() error {
	if f.Namespace == "" {
		return fmt.Errorf("pattern file %s: missing namespace", f.Path)
	}
	if f.Description == "" {
		return fmt.Errorf("pattern file %s: missing description", f.Path)
	}
	if len(f.Patterns) == 0 {
		return fmt.Errorf("pattern file %s: no patterns declared", f.Path)
	}

	seen := make(map[string]bool)
	for i := range f.Patterns {
		p := &f.Patterns[i]
		if p.ID == "" {
			return fmt.Errorf("pattern file %s: pattern %d has no id", f.Path, i)
		}
		if !patternIDFormat.MatchString(p.ID) {
			return fmt.Errorf("pattern file %s: id %q must be lowercase alphanumeric with underscore/dash", f.Path, p.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("pattern file %s: duplicate pattern id %q", f.Path, p.ID)
		}
		seen[p.ID] = true

		for _, field := range []struct{ name, value string }{
			{"location", p.Location},
			{"category", p.Category},
			{"description", p.Description},
			{"pattern", p.Pattern},
		} {
			if field.value == "" {
				return fmt.Errorf("pattern file %s: pattern %q missing %s", f.Path, p.ID, field.name)
			}
		}

		if err := p.Compile(); err != nil {
			return fmt.Errorf("pattern file %s: pattern %q: %w", f.Path, p.ID, err)
		}
	}
	return nil
}

// Compile builds the regex with the declared flags. Go's regexp package is
// RE2, which matches in guaranteed linear time; catalogs that compile here
// meet the engine's safety requirement by construction. LoadFile and LoadDir
// compile every pattern; Compile is exported for callers that construct
// Pattern values directly.
func (p *Pattern) Compile() error {
	var prefix strings.Builder
	for _, flag := range p.Flags {
		switch strings.ToUpper(flag) {
		case "IGNORECASE", "I":
			prefix.WriteString("(?i)")
		case "MULTILINE", "M":
			prefix.WriteString("(?m)")
		case "DOTALL", "S":
			prefix.WriteString("(?s)")
		default:
			return fmt.Errorf("unsupported regex flag %q", flag)
		}
	}

	regex, err := regexp.Compile(prefix.String() + p.Pattern)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	p.regex = regex
	return nil
}

// Regexp returns the compiled regex. Patterns obtained through LoadFile or
// LoadDir are always compiled.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.regex
}

// ResolveVerification checks that every verification name declared in the
// catalog resolves in the registry. A missing name is a catalog defect (a
// typo or an unimplemented validator) and must stop the scan before it
// starts, rather than being treated as "no match".
func ResolveVerification(files []*File, registry *verification.Registry) error {
	var missing []string
	for _, file := range files {
		for i := range file.Patterns {
			p := &file.Patterns[i]
			if p.Verification == "" {
				continue
			}
			if !registry.Has(p.Verification) {
				missing = append(missing, fmt.Sprintf("%s/%s -> %s", file.Namespace, p.ID, p.Verification))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unresolved verification functions: %s", strings.Join(missing, ", "))
	}
	return nil
}
