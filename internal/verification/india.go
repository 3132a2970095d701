// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// IndiaAadhaar validates a 12-digit Aadhaar number. UIDAI numbers never start
// with 0 or 1 and carry a Verhoeff check digit in the last position.
func IndiaAadhaar(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 12 || allSameChar(digits) {
		return false
	}
	if digits[0] == '0' || digits[0] == '1' {
		return false
	}
	return verhoeffValid(digits)
}

// panEntityTypes are the valid fourth characters of a PAN, identifying the
// holder category (P person, C company, H HUF, F firm, A AOP, T trust,
// B body of individuals, L local authority, J artificial juridical person,
// G government, K krish, E LLP).
const panEntityTypes = "PCHFATBLJGKE"

// IndiaPAN validates a Permanent Account Number structurally: five uppercase
// letters, four digits and a final letter, with a recognized entity-type
// character in the fourth position. PAN has no published checksum, so obvious
// placeholder prefixes are rejected instead.
func IndiaPAN(value string) bool {
	pan := strings.TrimSpace(value)
	if len(pan) != 10 {
		return false
	}
	for i := 0; i < 5; i++ {
		if pan[i] < 'A' || pan[i] > 'Z' {
			return false
		}
	}
	for i := 5; i < 9; i++ {
		if pan[i] < '0' || pan[i] > '9' {
			return false
		}
	}
	if pan[9] < 'A' || pan[9] > 'Z' {
		return false
	}

	if !strings.ContainsRune(panEntityTypes, rune(pan[3])) {
		return false
	}

	// Placeholder prefixes seen in documentation and test data.
	if allSameChar(pan[:5]) || pan[:5] == "ABCDE" {
		return false
	}
	return true
}
