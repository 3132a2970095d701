// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// Luhn validates the mod-10 checksum used by payment cards and several
// national identifiers. Digits are processed right to left; every second
// digit starting from the second-to-last is doubled, with 9 subtracted when
// the doubled value exceeds 9. The candidate passes when the digit sum is
// congruent to 0 modulo 10. Non-digit characters are ignored, so formatted
// numbers ("4111-1111-1111-1111") are accepted.
func Luhn(value string) bool {
	digits := digitsOnly(value)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IBANMod97 validates an International Bank Account Number. The first four
// characters (country code and check digits) move to the end, letters are
// replaced by their numeric values (A=10 .. Z=35), and the resulting numeral
// must leave remainder 1 modulo 97. The modulus is computed by streaming
// reduction, so arbitrarily long inputs never overflow.
func IBANMod97(value string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if len(iban) < 5 {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			remainder = (remainder*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			// Two-digit letter value 10..35.
			remainder = (remainder*100 + int(c-'A') + 10) % 97
		default:
			return false
		}
	}
	return remainder == 1
}

// binRange is an inclusive range of six-digit issuer identification numbers.
type binRange struct {
	start int
	end   int
}

// Issuer identification ranges for the major card networks: Visa, MasterCard
// (including the 2-series), American Express, Discover, JCB, Diners Club,
// UnionPay and Maestro.
var cardBINRanges = []binRange{
	{400000, 499999}, // Visa
	{510000, 559999}, // MasterCard
	{222100, 272099}, // MasterCard 2-series
	{340000, 349999}, // American Express
	{370000, 379999}, // American Express
	{601100, 601199}, // Discover
	{644000, 649999}, // Discover
	{650000, 659999}, // Discover
	{350000, 359999}, // JCB
	{300000, 309999}, // Diners Club
	{360000, 369999}, // Diners Club
	{380000, 389999}, // Diners Club
	{620000, 629999}, // UnionPay
	{500000, 509999}, // Maestro
	{560000, 589999}, // Maestro
}

// CreditCardBIN validates a payment-card number: correct length, a known
// issuer identification prefix, and a passing Luhn checksum.
func CreditCardBIN(value string) bool {
	digits := digitsOnly(value)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	bin := int(atoiDigits(digits[:6]))
	known := false
	for _, r := range cardBINRanges {
		if bin >= r.start && bin <= r.end {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	return Luhn(digits)
}

// Verhoeff dihedral-group tables. The multiplication table d composes two
// digits in D5, the permutation table p is applied by position, and inv maps
// a digit to its inverse.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}
)

// verhoeffValid reports whether an all-digit string carries a valid Verhoeff
// check digit in its last position.
func verhoeffValid(digits string) bool {
	if digits == "" {
		return false
	}
	c := 0
	for i := 0; i < len(digits); i++ {
		// Process right to left; position 0 is the check digit itself.
		d := int(digits[len(digits)-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][d]]
	}
	return c == 0
}

// weightedSumMod computes the positional weighted sum of an all-digit string
// reduced by the given modulus. Weights cycle when shorter than the input.
func weightedSumMod(digits string, weights []int, modulus int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i%len(weights)]
	}
	return sum % modulus
}
