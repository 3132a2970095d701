// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// NetherlandsBSN validates a burgerservicenummer with the 11-proof: digits
// weighted 9 down to 2 with the last digit weighted -1 must sum to a multiple
// of 11. Eight-digit numbers are padded with a leading zero, and the all-zero
// number is rejected.
func NetherlandsBSN(value string) bool {
	digits := digitsOnly(value)
	if len(digits) == 8 {
		digits = "0" + digits
	}
	if len(digits) != 9 || digits == "000000000" {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * (9 - i)
	}
	sum -= int(digits[8] - '0')
	return sum%11 == 0
}
