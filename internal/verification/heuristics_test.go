// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotTimestamp(t *testing.T) {
	timestamps := []string{
		"1700000000",     // Unix seconds, Nov 2023
		"1609459200",     // 2021-01-01
		"1735689600",     // 2025-01-01
		"1234567890",     // 2009-02-13
		"1609459200000",  // Unix milliseconds
		"1735689600000",  // Unix milliseconds
		"20210101120000", // compact datetime
		"20251231235959",
	}
	for _, ts := range timestamps {
		assert.False(t, NotTimestamp(ts), "expected %s to be treated as a timestamp", ts)
	}

	identifiers := []string{
		"123456789",       // 9 digits
		"12345678",        // 8 digits
		"123456789012",    // 12 digits, outside timestamp lengths
		"123456789012345", // too large for any plausible timestamp window
		"abc123",
		"not-a-number",
		"",
	}
	for _, id := range identifiers {
		assert.True(t, NotTimestamp(id), "expected %s to pass", id)
	}
}

func TestGenericNumberNotTimestamp(t *testing.T) {
	// Separators mark formatted account numbers; timestamps are bare.
	assert.True(t, GenericNumberNotTimestamp("123-456-789"))
	assert.True(t, GenericNumberNotTimestamp("123 456 789"))
	assert.True(t, GenericNumberNotTimestamp("123/456/789"))

	assert.False(t, GenericNumberNotTimestamp("1609459200"))
	assert.False(t, GenericNumberNotTimestamp("1735689600000"))
	assert.False(t, GenericNumberNotTimestamp("20210101120000"))

	// Even with separators a compact datetime is still a datetime.
	assert.False(t, GenericNumberNotTimestamp("2021-01-01-120000"))
}

func TestNotRepeatingPattern(t *testing.T) {
	passing := []string{
		"135792468024",
		"RandomString",
		"Test-Value-123",
		"1029384756",
	}
	for _, value := range passing {
		assert.True(t, NotRepeatingPattern(value), "expected %s to pass", value)
	}

	rejected := []string{
		"11111111",
		"1111111111",
		"AAAAAAAA",
		"12345678",
		"87654321",
		"12121212",
		"ABABABAB",
		"123123123123",
		"",
	}
	for _, value := range rejected {
		assert.False(t, NotRepeatingPattern(value), "expected %s to be rejected", value)
	}
}

func TestContainsLetter(t *testing.T) {
	assert.True(t, ContainsLetter("abc123"))
	assert.True(t, ContainsLetter("hello"))
	assert.True(t, ContainsLetter("123a456"))
	assert.True(t, ContainsLetter("A"))

	assert.False(t, ContainsLetter("123456"))
	assert.False(t, ContainsLetter("!@#$%"))
	assert.False(t, ContainsLetter("123-456-789"))
	assert.False(t, ContainsLetter(""))
}

func TestKoreanZipcode(t *testing.T) {
	valid := []string{"06234", "13579", "24680", "03158"}
	for _, code := range valid {
		assert.True(t, KoreanZipcode(code), "expected %s to be plausible", code)
	}

	invalid := []string{
		"12345", "54321", // sequential
		"00000", "11111", "99999", // repeated digit
		"10000", "50000", "90000", // too round
		"1234", "123456", // wrong length
	}
	for _, code := range invalid {
		assert.False(t, KoreanZipcode(code), "expected %s to be rejected", code)
	}
}

func TestUSZipcode(t *testing.T) {
	valid := []string{"10001", "90210", "60601", "10001-1234", "902101234", "60601-5678"}
	for _, code := range valid {
		assert.True(t, USZipcode(code), "expected %s to be plausible", code)
	}

	invalid := []string{"12345", "54321", "00000", "11111", "99999", "1234", "123456"}
	for _, code := range invalid {
		assert.False(t, USZipcode(code), "expected %s to be rejected", code)
	}
}

func TestKoreanBankAccount(t *testing.T) {
	valid := []string{
		"110-123-456789",  // Kookmin
		"1002-123-456789", // Woori
		"301-1234-5678",   // Nonghyup
		"3333-12-3456789", // Kakao Bank
		"987-654-321012",  // no known prefix but clearly not a timestamp
	}
	for _, account := range valid {
		assert.True(t, KoreanBankAccount(account), "expected %s to be accepted", account)
	}

	invalid := []string{
		"1609459200",     // Unix seconds
		"1735689600000",  // Unix milliseconds
		"20210101120000", // compact datetime
		"",
	}
	for _, account := range invalid {
		assert.False(t, KoreanBankAccount(account), "expected %s to be rejected", account)
	}
}
