// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "strings"

// CleanTitle drops every byte that is not an ASCII letter, ASCII digit or
// space, then lowercases what is left. Punctuation is deleted rather than
// replaced, so "Se7en: Redux" becomes "se7en redux". Non-ASCII letters are
// dropped too. Whitespace other than U+0020 is removed.
func CleanTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for i := 0; i < len(title); i++ {
		c := title[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == ' ':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}
