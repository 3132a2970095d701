// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// luhnCheckDigit derives the digit that makes payload+digit pass the Luhn
// check.
func luhnCheckDigit(payload string) byte {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

func TestLuhnProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	payloadGen := gen.SliceOfN(15, gen.IntRange(0, 9))

	properties.Property("constructed numbers pass", prop.ForAll(
		func(digits []int) bool {
			payload := make([]byte, len(digits))
			for i, d := range digits {
				payload[i] = byte('0' + d)
			}
			number := string(payload) + string(luhnCheckDigit(string(payload)))
			return Luhn(number)
		},
		payloadGen,
	))

	// Single-digit substitutions must almost always flip the verdict: for
	// every position, at least 9 of the 10 candidate digits (the original
	// plus nine substitutes) may leave a passing checksum only once.
	properties.Property("single-digit mutations fail", prop.ForAll(
		func(digits []int) bool {
			payload := make([]byte, len(digits))
			for i, d := range digits {
				payload[i] = byte('0' + d)
			}
			number := []byte(string(payload) + string(luhnCheckDigit(string(payload))))

			for pos := range number {
				failures := 0
				mutations := 0
				for d := byte('0'); d <= '9'; d++ {
					if d == number[pos] {
						continue
					}
					mutations++
					mutated := make([]byte, len(number))
					copy(mutated, number)
					mutated[pos] = d
					if !Luhn(string(mutated)) {
						failures++
					}
				}
				if failures*10 < mutations*9 {
					return false
				}
			}
			return true
		},
		payloadGen,
	))

	properties.TestingRun(t)
}
