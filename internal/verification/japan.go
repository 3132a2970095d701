// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// JapaneseMyNumber validates a 12-digit Individual Number (マイナンバー). Per
// the Cabinet Order checksum, the first 11 digits P_n (numbered from the
// right) are weighted Q_n = n+1 for n in 1..6 and n-5 for n in 7..11; the
// check digit is 11 - (sum mod 11), taken as 0 when the remainder is 0 or 1.
func JapaneseMyNumber(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 12 {
		return false
	}

	sum := 0
	for n := 1; n <= 11; n++ {
		p := int(digits[11-n] - '0')
		q := n + 1
		if n >= 7 {
			q = n - 5
		}
		sum += p * q
	}

	remainder := sum % 11
	check := 0
	if remainder > 1 {
		check = 11 - remainder
	}
	return check == int(digits[11]-'0')
}
