// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"regexp"
	"strings"
)

// Highlighter wraps occurrences of a search name inside rendered text with
// Open/Close markers. The zero value performs no marking.
type Highlighter struct {
	Open  string
	Close string
}

// Highlight marks occurrences of query in text. A query without initial
// tokens (no token ending in a period) is matched as a word-boundary-anchored
// case-insensitive literal. When any token ends with a period the query is
// treated as an initials form: "J. Smith" matches "J Smith", "J. Smith", and
// "J.Smith". Regex metacharacters in the query are escaped; an unmatchable
// query returns text unchanged.
func (h Highlighter) Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if query == "" || (h.Open == "" && h.Close == "") {
		return text
	}

	re, err := regexp.Compile(queryPattern(query))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return h.Open + m + h.Close
	})
}

// queryPattern builds the case-insensitive match pattern for a search name.
func queryPattern(query string) string {
	tokens := strings.Fields(query)

	hasInitial := false
	for _, tok := range tokens {
		if strings.HasSuffix(tok, ".") {
			hasInitial = true
			break
		}
	}
	if !hasInitial {
		return `(?i)\b(` + regexp.QuoteMeta(query) + `)\b`
	}

	// Initials form: each "J." becomes the letter, an optional period, and
	// optional whitespace; full words keep their word boundaries.
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if strings.HasSuffix(tok, ".") {
			parts[i] = regexp.QuoteMeta(strings.TrimSuffix(tok, ".")) + `\.?\s*`
		} else {
			parts[i] = `\b` + regexp.QuoteMeta(tok) + `\b`
		}
	}
	return `(?i)` + strings.Join(parts, `\s*`)
}
