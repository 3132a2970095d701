// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// USSocialSecurity validates a US Social Security Number against the Social
// Security Administration's structural rules: area 000, 666 and 900-999 are
// never issued, group 00 and serial 0000 are invalid.
func USSocialSecurity(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 9 {
		return false
	}

	area := atoiDigits(digits[0:3])
	group := atoiDigits(digits[3:5])
	serial := atoiDigits(digits[5:9])

	if area == 0 || area == 666 || area >= 900 {
		return false
	}
	if group == 0 {
		return false
	}
	return serial != 0
}

// USZipcode validates a 5-digit ZIP or 9-digit ZIP+4 code heuristically. The
// base ZIP must not be a sequential run, a single repeated digit or an overly
// round number.
func USZipcode(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 5 && len(digits) != 9 {
		return false
	}
	return plausibleZipBase(digits[:5])
}
