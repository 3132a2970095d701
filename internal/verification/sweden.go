// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// SwedenPersonnummer validates a Swedish personal identity number. Accepts
// the 10-digit YYMMDD-NNNC form (with or without separator) and the 12-digit
// form with a full four-digit year, which is reduced to 10 digits before the
// Luhn check mandated by the Tax Agency.
func SwedenPersonnummer(value string) bool {
	digits := digitsOnly(value)
	if len(digits) == 12 {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return false
	}

	month := atoiDigits(digits[2:4])
	day := atoiDigits(digits[4:6])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	return Luhn(digits)
}
