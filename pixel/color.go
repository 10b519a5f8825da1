// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pixel

// ValidColor - true for exactly "#RRGGBB" with hex digits of either case
func ValidColor(s string) bool {
	if 7 != len(s) || '#' != s[0] {
		return false
	}
	for i := 1; i < len(s); i += 1 {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
