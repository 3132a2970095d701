// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// peselWeights is the published weight vector for the first ten PESEL digits.
var peselWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// PolandPESEL validates an 11-digit PESEL number. The month field encodes the
// century by offset (+20 for 2000s, +40 for 2100s, +60 for 2200s, +80 for
// 1800s), and the check digit is (10 - weighted sum mod 10) mod 10.
func PolandPESEL(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 11 || allSameChar(digits) {
		return false
	}

	month := int(atoiDigits(digits[2:4]))
	day := int(atoiDigits(digits[4:6]))
	monthOfYear := month % 20
	if monthOfYear < 1 || monthOfYear > 12 || month > 92 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	sum := 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * peselWeights[i]
	}
	check := (10 - sum%10) % 10
	return check == int(digits[10]-'0')
}
