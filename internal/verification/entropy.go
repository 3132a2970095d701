// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import (
	"math"
	"strings"
)

const (
	// minTokenLength is the shortest candidate considered a secret. Anything
	// shorter cannot carry enough entropy to distinguish from prose.
	minTokenLength = 20

	// minTokenEntropy is the Shannon entropy threshold in bits per character.
	// Random base64 sits around 5-5.5, random hex around 3.5-4; 4.0 catches
	// both while typical prose and repetitive strings score well below it.
	minTokenEntropy = 4.0
)

// tokenAlphabet covers base64url and hex tokens, plus the '+', '/', '.' and
// '=' characters so that standard base64 and dotted JWTs qualify.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-+/.="

// shannonEntropy measures the unpredictability of the candidate's observed
// character distribution, in bits per character.
func shannonEntropy(value string) float64 {
	if value == "" {
		return 0
	}
	counts := make(map[rune]int)
	total := 0
	for _, r := range value {
		counts[r]++
		total++
	}
	entropy := 0.0
	n := float64(total)
	for _, count := range counts {
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// HighEntropyToken reports whether the candidate looks like a randomly
// generated secret (API key, access token, JWT). Requires minimum length, no
// whitespace, a token-safe alphabet, a mix of letters and digits, and Shannon
// entropy at or above the threshold. Structured low-entropy text fails.
func HighEntropyToken(value string) bool {
	if len(value) < minTokenLength {
		return false
	}
	if strings.ContainsAny(value, " \t\n\r") {
		return false
	}

	hasLetter := false
	hasDigit := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		if !strings.ContainsRune(tokenAlphabet, rune(c)) {
			return false
		}
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return false
	}

	return shannonEntropy(value) >= minTokenEntropy
}
