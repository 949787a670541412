// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names normalizes and compares author name strings. The same
// equivalence rules drive the exact-author filter on fetched publications
// and the profile-link resolution against the author-search endpoint.
package names

import (
	"regexp"
	"strings"
)

var (
	periodRun = regexp.MustCompile(`\s*\.\s*`)
	spaceRun  = regexp.MustCompile(`\s+`)
)

// Normalize returns the canonical comparison form of a name: trimmed,
// lowercased, with periods and their surrounding padding collapsed to a
// single space. "J . Smith", "J.Smith" and "j smith" all normalize to
// the same string.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = periodRun.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchesExactly reports whether two names identify the same author under
// exact comparison. A raw string match wins first so that normalization can
// never reject names that are already identical.
func MatchesExactly(a, b string) bool {
	if a == b || strings.EqualFold(a, b) {
		return true
	}
	return Normalize(a) == Normalize(b)
}

// MatchesByInitials reports whether two names identify the same author under
// the looser initials equivalence: equal surnames (last token) and equal
// sequences of given-name initials. Token counts before the surname need not
// match ("J R Smith" matches "John Robert Smith"), but a shorter initial
// sequence does not match a longer one ("J Smith" does not match
// "John Robert Smith"); partial-initials ambiguity is rejected.
func MatchesByInitials(a, b string) bool {
	partsA := strings.Fields(Normalize(a))
	partsB := strings.Fields(Normalize(b))
	if len(partsA) == 0 || len(partsB) == 0 {
		return false
	}
	if partsA[len(partsA)-1] != partsB[len(partsB)-1] {
		return false
	}
	return initials(partsA[:len(partsA)-1]) == initials(partsB[:len(partsB)-1])
}

// initials concatenates the first letter of each token.
func initials(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		r := []rune(t)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}
