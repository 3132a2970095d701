// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// rrnWeights is the positional weight vector of the Korean resident
// registration number checksum (주민등록번호), per the Resident Registration Act
// numbering scheme.
var rrnWeights = []int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5}

// rrnDateValid checks the YYMMDD prefix shared by Korean personal numbers.
func rrnDateValid(digits string) bool {
	month := atoiDigits(digits[2:4])
	day := atoiDigits(digits[4:6])
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// KoreanRRN validates a resident registration number: 13 digits, a plausible
// birth date, a citizen century/gender digit (1-4) and a valid mod-11 check
// digit over the weighted first 12 digits.
func KoreanRRN(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 || allSameChar(digits) {
		return false
	}
	if !rrnDateValid(digits) {
		return false
	}

	// Seventh digit encodes century and gender; 1-4 are citizens, 5-8 are
	// reserved for registered foreigners.
	gender := digits[6] - '0'
	if gender < 1 || gender > 4 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(digits[i]-'0') * rrnWeights[i]
	}
	check := (11 - sum%11) % 10
	return check == int(digits[12]-'0')
}

// KoreanAlienRegistration validates an alien registration number
// (외국인등록번호): same 13-digit date-prefixed shape as the RRN but with a
// foreigner century/gender digit (5-8). Numbers issued since October 2020 no
// longer carry a verifiable check digit, so validation is structural.
func KoreanAlienRegistration(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 || allSameChar(digits) {
		return false
	}
	if !rrnDateValid(digits) {
		return false
	}
	gender := digits[6] - '0'
	return gender >= 5 && gender <= 8
}

// KoreanCorporateRegistration validates a corporate registration number
// (법인등록번호): 13 digits where the first 12 are weighted 1,2,1,2,... with
// Luhn-style digit reduction and the check digit is (10 - sum mod 10) mod 10.
func KoreanCorporateRegistration(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 13 || allSameChar(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := int(digits[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	check := (10 - sum%10) % 10
	return check == int(digits[12]-'0')
}

// businessRegWeights is the weight vector of the Korean business registration
// number (사업자등록번호) published by the National Tax Service.
var businessRegWeights = []int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// KoreanBusinessRegistration validates a 10-digit business registration
// number. The ninth digit contributes an extra floor(d*5/10) term before the
// mod-10 reduction.
func KoreanBusinessRegistration(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 10 || allSameChar(digits) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * businessRegWeights[i]
	}
	sum += int(digits[8]-'0') * 5 / 10
	check := (10 - sum%10) % 10
	return check == int(digits[9]-'0')
}

// koreanBankPrefixes are account-number prefixes of the major Korean banks:
// Kookmin, Woori, Nonghyup, Kakao Bank and K Bank/Toss among them. A known
// prefix is strong evidence the candidate is a real account number.
var koreanBankPrefixes = []string{"110", "120", "150", "190", "830", "1002", "301", "3333", "100"}

// KoreanBankAccount decides whether a numeric candidate is plausibly a Korean
// bank account rather than a timestamp or other incidental number. Candidates
// with a known bank prefix are accepted unless they sit squarely in the
// current-era Unix timestamp window; unprefixed candidates face the full
// timestamp and sequential-run checks.
func KoreanBankAccount(value string) bool {
	digits := digitsOnly(value)
	if digits == "" {
		return false
	}

	hasKnownPrefix := false
	for _, prefix := range koreanBankPrefixes {
		if strings.HasPrefix(digits, prefix) {
			hasKnownPrefix = true
			break
		}
	}

	if hasKnownPrefix {
		if len(digits) == 10 {
			n := atoiDigits(digits)
			// Only the 2020s-era window; older timestamps collide with too
			// many real account numbers.
			if n >= 1_600_000_000 && n <= 1_800_000_000 {
				return false
			}
		}
		return true
	}

	switch {
	case len(digits) == 10:
		n := atoiDigits(digits)
		if n >= unixSecondsMin && n <= unixSecondsMax {
			return false
		}
	case len(digits) == 13:
		n := atoiDigits(digits)
		if n >= unixMillisMin && n <= unixMillisMax {
			return false
		}
	case len(digits) == 14:
		if looksLikeCompactDate(digits) {
			return false
		}
	}

	// Six or more consecutive ascending digits is a counting sequence, not an
	// account number.
	if len(digits) >= 10 {
		run := 0
		for i := 1; i < len(digits); i++ {
			if int(digits[i])-int(digits[i-1]) == 1 {
				run++
				if run >= 6 {
					return false
				}
			} else {
				run = 0
			}
		}
	}
	return true
}

// KoreanZipcode validates a 5-digit Korean postal code heuristically:
// sequential runs, single repeated digits and overly round numbers are
// rejected as statistically implausible.
func KoreanZipcode(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != 5 {
		return false
	}
	return plausibleZipBase(digits)
}

// plausibleZipBase applies the shared postal-code heuristics to a 5-digit
// base: no ascending or descending sequence, not a single repeated digit and
// not a multiple of 10000.
func plausibleZipBase(base string) bool {
	if sequentialDigits(base, 1) || sequentialDigits(base, -1) {
		return false
	}
	if allSameChar(base) {
		return false
	}
	return atoiDigits(base)%10000 != 0
}
