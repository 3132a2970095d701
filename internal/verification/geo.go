// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package verification

import (
	"net/netip"
	"regexp"
	"strconv"
)

// dmsPattern matches degree-minute-second coordinates such as 37°46′29.7″N.
var dmsPattern = regexp.MustCompile(`(?i)^(\d{1,3})°\s*(\d{1,2})′\s*(\d{1,2}(?:\.\d+)?)″\s*([NSEW])`)

// DMSCoordinate validates a degree-minute-second coordinate string. Degrees
// are bounded by the hemisphere letter (90 for latitude, 180 for longitude),
// minutes by 59 and seconds strictly below 60. No checksum is involved; this
// is pure structural and range validation.
func DMSCoordinate(value string) bool {
	m := dmsPattern.FindStringSubmatch(value)
	if m == nil {
		return false
	}

	degrees, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return false
	}

	if minutes > 59 || seconds >= 60 {
		return false
	}

	switch m[4] {
	case "N", "S", "n", "s":
		return degrees <= 90
	case "E", "W", "e", "w":
		return degrees <= 180
	}
	return false
}

// IPv4Public reports whether the candidate is a routable public IPv4 address.
// Private ranges, loopback, link-local, multicast, the unspecified address,
// the limited-broadcast address and the 240/4 reserved block are all rejected,
// since leaking those rarely discloses anything sensitive.
func IPv4Public(value string) bool {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is4() {
		return false
	}
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() ||
		addr.IsMulticast() || addr.IsUnspecified() {
		return false
	}
	octets := addr.As4()
	if octets[0] >= 240 {
		// 240/4 reserved, including 255.255.255.255.
		return false
	}
	return true
}
