// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// BelgiumRRN validates a Belgian national register number (rijksregister-
// nummer): YYMMDD, a three-digit serial and a two-digit check equal to 97
// minus the first nine digits modulo 97. Births from 2000 onward are checked
// with a 2 prefixed to the number, per the National Register specification.
func BelgiumRRN(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 11 {
		return false
	}

	month := atoiDigits(digits[2:4])
	day := atoiDigits(digits[4:6])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	check := atoiDigits(digits[9:11])
	base := atoiDigits(digits[:9])
	if 97-base%97 == check {
		return true
	}
	// Retry for births in 2000 and later.
	return 97-(2_000_000_000+base)%97 == check
}
