// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// hetuCheckChars maps the individual number modulo 31 to the HETU control
// character. The alphabet skips G, I, O, Q and Z to avoid transcription
// ambiguity.
const hetuCheckChars = "0123456789ABCDEFHJKLMNPRSTUVWXY"

// FinlandHETU validates a Finnish personal identity code: DDMMYY, a century
// sign (+ for the 1800s, - for the 1900s, A for the 2000s), a three-digit
// individual number and a control character derived from the nine digits
// modulo 31.
func FinlandHETU(value string) bool {
	hetu := strings.ToUpper(strings.TrimSpace(value))
	if len(hetu) != 11 {
		return false
	}

	datePart := hetu[0:6]
	sign := hetu[6]
	individual := hetu[7:10]
	check := hetu[10]

	if !isDigits(datePart) || !isDigits(individual) {
		return false
	}
	if sign != '+' && sign != '-' && sign != 'A' {
		return false
	}

	day := atoiDigits(datePart[0:2])
	month := atoiDigits(datePart[2:4])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}

	n := atoiDigits(datePart + individual)
	return hetuCheckChars[n%31] == check
}
