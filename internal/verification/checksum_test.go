// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhn(t *testing.T) {
	valid := []string{
		"4532015112830366",
		"4111111111111111",
		"5500000000000004",
		"378282246310005",
		"6011111111111117",
		"4111-1111-1111-1111",
		"4111 1111 1111 1111",
	}
	for _, number := range valid {
		assert.True(t, Luhn(number), "expected %s to pass", number)
	}

	invalid := []string{
		"4111111111111112",
		"5500000000000005",
		"1234567890123456",
		"",
		"abcd",
		"- -",
	}
	for _, number := range invalid {
		assert.False(t, Luhn(number), "expected %s to fail", number)
	}
}

func TestIBANMod97(t *testing.T) {
	valid := []string{
		"GB82WEST12345698765432",
		"GB82 WEST 1234 5698 7654 32",
		"DE89370400440532013000",
		"FR1420041010050500013M02606",
		"IT60X0542811101000000123456",
		"ES9121000418450200051332",
	}
	for _, iban := range valid {
		assert.True(t, IBANMod97(iban), "expected %s to validate", iban)
	}

	invalid := []string{
		"GB82WEST12345698765433", // corrupted final digit
		"DE89370400440532013001",
		"GB82@WEST12345698765432",
		"GB82 WEST 1234 5698 7654 3!",
		"",
		"GB82",
	}
	for _, iban := range invalid {
		assert.False(t, IBANMod97(iban), "expected %s to be rejected", iban)
	}
}

func TestCreditCardBIN(t *testing.T) {
	assert.True(t, CreditCardBIN("4111111111111111"), "Visa")
	assert.True(t, CreditCardBIN("5500000000000004"), "MasterCard")
	assert.True(t, CreditCardBIN("378282246310005"), "American Express")

	assert.False(t, CreditCardBIN("9111111111111111"), "unknown issuer prefix")
	assert.False(t, CreditCardBIN("4111111111111112"), "Luhn failure")
	assert.False(t, CreditCardBIN("41111111"), "too short")
	assert.False(t, CreditCardBIN(""))
}

func TestVerhoeffTables(t *testing.T) {
	// 236 is the canonical Verhoeff example: its check digit is 3.
	assert.True(t, verhoeffValid("2363"))
	assert.False(t, verhoeffValid("2369"))
	assert.False(t, verhoeffValid(""))
}
