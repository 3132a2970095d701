// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// dniCheckLetters maps a DNI/NIE number mod 23 to its control letter, per the
// Spanish Interior Ministry's published table.
const dniCheckLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// SpainDNI validates a Documento Nacional de Identidad: eight digits followed
// by the control letter derived from the number mod 23.
func SpainDNI(value string) bool {
	dni := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", ""))
	if len(dni) != 9 {
		return false
	}
	if !isDigits(dni[:8]) {
		return false
	}
	number := atoiDigits(dni[:8])
	return dniCheckLetters[number%23] == dni[8]
}

// SpainNIE validates a Número de Identidad de Extranjero: the leading X, Y or
// Z is replaced by 0, 1 or 2 and the result is checked like a DNI.
func SpainNIE(value string) bool {
	nie := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", ""))
	if len(nie) != 9 {
		return false
	}

	var prefix byte
	switch nie[0] {
	case 'X':
		prefix = '0'
	case 'Y':
		prefix = '1'
	case 'Z':
		prefix = '2'
	default:
		return false
	}
	if !isDigits(nie[1:8]) {
		return false
	}
	number := atoiDigits(string(prefix) + nie[1:8])
	return dniCheckLetters[number%23] == nie[8]
}
