// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

// FranceINSEE validates a numéro de sécurité sociale (NIR): 13 significant
// digits plus a two-digit key equal to 97 minus the number modulo 97. The
// leading digit encodes sex and must be 1 or 2.
func FranceINSEE(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 15 {
		return false
	}
	if digits[0] != '1' && digits[0] != '2' {
		return false
	}

	remainder := 0
	for i := 0; i < 13; i++ {
		remainder = (remainder*10 + int(digits[i]-'0')) % 97
	}
	key := 97 - remainder
	return int64(key) == atoiDigits(digits[13:15])
}
