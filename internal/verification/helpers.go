// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// digitsOnly strips everything except ASCII digits from a candidate so that
// formatted identifiers ("110-123-456789", "4111 1111 1111 1111") validate the
// same as their compact forms.
func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// isDigits reports whether s is non-empty and consists solely of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// allSameChar reports whether s consists of a single repeated character.
func allSameChar(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// sequentialDigits reports whether every digit in s is exactly step away from
// its predecessor (step 1 for ascending runs, -1 for descending). s must be
// all digits; the comparison does not wrap around.
func sequentialDigits(s string, step int) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if int(s[i])-int(s[i-1]) != step {
			return false
		}
	}
	return true
}

// atoiDigits converts an all-digit string to an int64. It must only be called
// on strings short enough not to overflow (callers bound length first).
func atoiDigits(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n
}
