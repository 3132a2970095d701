// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// twLetterValues maps the region letter of a Taiwan National ID to its
// two-digit numeric value per the Household Registration Office scheme. The
// assignment is not alphabetical: I, O and W were added late and carry the
// values 34, 35 and 32.
var twLetterValues = map[byte]int{
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16, 'H': 17,
	'I': 34, 'J': 18, 'K': 19, 'L': 20, 'M': 21, 'N': 22, 'O': 35, 'P': 23,
	'Q': 24, 'R': 25, 'S': 26, 'T': 27, 'U': 28, 'V': 29, 'W': 32, 'X': 30,
	'Y': 31, 'Z': 33,
}

// TaiwanNationalID validates a national identification number: one region
// letter followed by nine digits. The letter's value contributes tens*1 +
// units*9, the next eight digits are weighted 8 down to 1, and the total plus
// the check digit must be divisible by 10. The letters I, O and W are not
// issued for personal IDs, and the first digit encodes gender (1 or 2).
func TaiwanNationalID(value string) bool {
	id := strings.ToUpper(strings.TrimSpace(value))
	if len(id) != 10 {
		return false
	}

	letter := id[0]
	if letter == 'I' || letter == 'O' || letter == 'W' {
		return false
	}
	letterValue, ok := twLetterValues[letter]
	if !ok {
		return false
	}
	if !isDigits(id[1:]) {
		return false
	}
	if id[1] != '1' && id[1] != '2' {
		return false
	}

	sum := letterValue/10 + (letterValue%10)*9
	for i := 1; i <= 8; i++ {
		sum += int(id[i]-'0') * (9 - i)
	}
	sum += int(id[9] - '0')
	return sum%10 == 0
}
