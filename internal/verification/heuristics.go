// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// Timestamp windows. 10-digit Unix seconds cover Sep 2001 through Nov 2286,
// 13-digit values the same range in milliseconds. Anything in those windows is
// far more likely to be a timestamp than an account or ID number.
const (
	unixSecondsMin = 1_000_000_000
	unixSecondsMax = 9_999_999_999
	unixMillisMin  = 1_000_000_000_000
	unixMillisMax  = 9_999_999_999_999
)

// looksLikeCompactDatetime reports whether the first 14 digits parse as a
// plausible YYYYMMDDHHMMSS stamp.
func looksLikeCompactDatetime(digits string) bool {
	if len(digits) < 14 {
		return false
	}
	year := atoiDigits(digits[0:4])
	month := atoiDigits(digits[4:6])
	day := atoiDigits(digits[6:8])
	hour := atoiDigits(digits[8:10])
	minute := atoiDigits(digits[10:12])
	second := atoiDigits(digits[12:14])
	return year >= 1900 && year <= 2099 &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31 &&
		hour <= 23 && minute <= 59 && second <= 59
}

// looksLikeCompactDate reports whether the first 8 digits parse as YYYYMMDD.
func looksLikeCompactDate(digits string) bool {
	if len(digits) < 8 {
		return false
	}
	year := atoiDigits(digits[0:4])
	month := atoiDigits(digits[4:6])
	day := atoiDigits(digits[6:8])
	return year >= 1900 && year <= 2099 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// NotTimestamp rejects numeric candidates that fall inside plausible
// Unix-epoch or compact-datetime windows. True means the candidate is safe to
// classify as an identifier; false means it is likely a timestamp.
func NotTimestamp(value string) bool {
	digits := digitsOnly(value)
	if digits == "" {
		return true
	}

	switch len(digits) {
	case 10:
		n := atoiDigits(digits)
		if n >= unixSecondsMin && n <= unixSecondsMax {
			return false
		}
	case 13:
		n := atoiDigits(digits)
		if n >= unixMillisMin && n <= unixMillisMax {
			return false
		}
	case 14:
		if looksLikeCompactDatetime(digits) {
			return false
		}
	}
	return true
}

// GenericNumberNotTimestamp is the lenient variant used for generic numeric
// patterns. Separators make a candidate look like a formatted account number
// rather than a timestamp, so separated values are only rejected when their
// digits form a compact datetime.
func GenericNumberNotTimestamp(value string) bool {
	hasSeparator := strings.ContainsAny(value, "- /")
	digits := digitsOnly(value)
	if digits == "" {
		return true
	}

	if hasSeparator {
		if len(digits) >= 14 && looksLikeCompactDate(digits) {
			return false
		}
		return true
	}

	switch {
	case len(digits) == 10:
		n := atoiDigits(digits)
		if n >= unixSecondsMin && n <= unixSecondsMax {
			return false
		}
	case len(digits) == 13:
		n := atoiDigits(digits)
		if n >= unixMillisMin && n <= unixMillisMax {
			return false
		}
	case len(digits) >= 14:
		if looksLikeCompactDate(digits) {
			return false
		}
	}
	return true
}

// NotRepeatingPattern rejects candidates with a shape real identifiers almost
// never have: a single repeated character, a short repeating group covering
// the whole string ("123123123123", "ABABABAB"), or a full ascending or
// descending digit run. Everything else passes.
func NotRepeatingPattern(value string) bool {
	if value == "" {
		return false
	}
	if allSameChar(value) {
		return false
	}
	if isDigits(value) && (sequentialDigits(value, 1) || sequentialDigits(value, -1)) {
		return false
	}

	// Repeating group of period 2..4 that tiles the entire string.
	for period := 2; period <= 4 && period*2 <= len(value); period++ {
		if len(value)%period != 0 {
			continue
		}
		repeats := true
		for i := period; i < len(value); i++ {
			if value[i] != value[i-period] {
				repeats = false
				break
			}
		}
		if repeats {
			return false
		}
	}
	return true
}

// ContainsLetter reports whether the candidate holds at least one ASCII
// letter. Used to separate mixed alphanumeric identifier formats from
// pure-numeric look-alikes.
func ContainsLetter(value string) bool {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}
