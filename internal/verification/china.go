// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import "strings"

// cnIDWeights and cnIDCheckChars implement the GB 11643 citizen ID checksum:
// the first 17 digits are weighted, summed and reduced mod 11, indexing into
// the check-character table.
var (
	cnIDWeights    = []int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	cnIDCheckChars = "10X98765432"
)

// cnProvinceCodes are the two-digit administrative division prefixes assigned
// to provinces, municipalities, autonomous regions, Taiwan, Hong Kong and
// Macau.
var cnProvinceCodes = map[string]bool{
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"21": true, "22": true, "23": true,
	"31": true, "32": true, "33": true, "34": true, "35": true, "36": true, "37": true,
	"41": true, "42": true, "43": true, "44": true, "45": true, "46": true,
	"50": true, "51": true, "52": true, "53": true, "54": true,
	"61": true, "62": true, "63": true, "64": true, "65": true,
	"71": true, "81": true, "82": true,
}

// ChineseNationalID validates an 18-character resident identity card number:
// a known province prefix, a plausible YYYYMMDD birth date and the GB 11643
// mod-11 check character (which may be the letter X).
func ChineseNationalID(value string) bool {
	id := strings.ToUpper(strings.TrimSpace(value))
	if len(id) != 18 {
		return false
	}
	for i := 0; i < 17; i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	last := id[17]
	if last != 'X' && (last < '0' || last > '9') {
		return false
	}

	if !cnProvinceCodes[id[:2]] {
		return false
	}

	year := atoiDigits(id[6:10])
	month := atoiDigits(id[10:12])
	day := atoiDigits(id[12:14])
	if year < 1900 || year > 2099 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	sum := 0
	for i := 0; i < 17; i++ {
		sum += int(id[i]-'0') * cnIDWeights[i]
	}
	return cnIDCheckChars[sum%11] == last
}
