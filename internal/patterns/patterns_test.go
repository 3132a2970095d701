// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"pattern-scan/internal/verification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatternFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileValid(t *testing.T) {
	path := writePatternFile(t, `
namespace: test
description: Test patterns
patterns:
  - id: card_number
    location: body
    category: financial
    description: A card number
    pattern: '\b\d{16}\b'
    verification: luhn
    confidence: 0.9
`)
	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test", file.Namespace)
	require.Len(t, file.Patterns, 1)

	p := &file.Patterns[0]
	assert.Equal(t, "card_number", p.ID)
	require.NotNil(t, p.Regexp())
	assert.True(t, p.Regexp().MatchString("4532015112830366"))
}

func TestLoadFileFlags(t *testing.T) {
	path := writePatternFile(t, `
namespace: test
description: Test patterns
patterns:
  - id: keyword
    location: body
    category: misc
    description: Case-insensitive keyword
    pattern: 'secret'
    flags: [IGNORECASE]
`)
	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, file.Patterns[0].Regexp().MatchString("SECRET value"))
}

func TestLoadFileSchemaErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "missing namespace",
			content: "description: x\npatterns:\n  - id: a\n",
			errText: "missing namespace",
		},
		{
			name:    "missing description",
			content: "namespace: x\npatterns:\n  - id: a\n",
			errText: "missing description",
		},
		{
			name:    "no patterns",
			content: "namespace: x\ndescription: y\n",
			errText: "no patterns",
		},
		{
			name: "uppercase id",
			content: `
namespace: x
description: y
patterns:
  - id: BadID
    location: body
    category: c
    description: d
    pattern: 'a'
`,
			errText: "lowercase",
		},
		{
			name: "duplicate id",
			content: `
namespace: x
description: y
patterns:
  - id: dup
    location: body
    category: c
    description: d
    pattern: 'a'
  - id: dup
    location: body
    category: c
    description: d
    pattern: 'b'
`,
			errText: "duplicate pattern id",
		},
		{
			name: "missing pattern field",
			content: `
namespace: x
description: y
patterns:
  - id: nopattern
    location: body
    category: c
    description: d
`,
			errText: "missing pattern",
		},
		{
			name: "invalid regex",
			content: `
namespace: x
description: y
patterns:
  - id: badregex
    location: body
    category: c
    description: d
    pattern: '(unclosed'
`,
			errText: "invalid regex",
		},
		{
			name: "unsupported flag",
			content: `
namespace: x
description: y
patterns:
  - id: badflag
    location: body
    category: c
    description: d
    pattern: 'a'
    flags: [VERBOSE]
`,
			errText: "unsupported regex flag",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePatternFile(t, tc.content)
			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
		})
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pattern files")
}

func TestResolveVerification(t *testing.T) {
	path := writePatternFile(t, `
namespace: test
description: Test patterns
patterns:
  - id: known
    location: body
    category: c
    description: d
    pattern: '\d+'
    verification: luhn
  - id: unknown
    location: body
    category: c
    description: d
    pattern: '\d+'
    verification: no_such_function
`)
	file, err := LoadFile(path)
	require.NoError(t, err)

	err = ResolveVerification([]*File{file}, verification.DefaultRegistry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_function")
	assert.Contains(t, err.Error(), "test/unknown")

	file.Patterns = file.Patterns[:1]
	assert.NoError(t, ResolveVerification([]*File{file}, verification.DefaultRegistry))
}

// TestShippedCatalog loads the real pattern catalog and checks every declared
// example against its pattern and verification function.
func TestShippedCatalog(t *testing.T) {
	files, err := LoadDir(filepath.Join("..", "..", "patterns"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	require.NoError(t, ResolveVerification(files, verification.DefaultRegistry))

	detects := func(p *Pattern, candidate string) bool {
		found := p.Regexp().FindString(candidate)
		if found == "" {
			return false
		}
		if p.Verification == "" {
			return true
		}
		fn, err := verification.DefaultRegistry.Resolve(p.Verification)
		require.NoError(t, err)
		return fn(found)
	}

	for _, file := range files {
		for i := range file.Patterns {
			p := &file.Patterns[i]
			t.Run(file.Namespace+"/"+p.ID, func(t *testing.T) {
				for _, example := range p.Examples.Match {
					assert.True(t, detects(p, example), "expected detection: %q", example)
				}
				for _, example := range p.Examples.NoMatch {
					assert.False(t, detects(p, example), "unexpected detection: %q", example)
				}
			})
		}
	}
}

func TestShippedCatalogHasNoLintFindings(t *testing.T) {
	files, err := LoadDir(filepath.Join("..", "..", "patterns"))
	require.NoError(t, err)
	assert.Empty(t, LintFiles(files))
}
