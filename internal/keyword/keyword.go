// Package keyword implements free-text search over record fields.
package keyword

import "strings"

const hashtag = "#"

// Tokens splits query on whitespace and lowercases every token.
func Tokens(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// Matches reports whether every token of query is found as a substring of
// the joined fields. Case is ignored. A "#tag" token also matches "tag",
// because stored skills may or may not keep the hash. A blank query matches
// everything.
func Matches(query string, fields ...string) bool {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return true
	}

	text := strings.ToLower(strings.Join(fields, " "))
	for _, token := range tokens {
		if !containsToken(text, token) {
			return false
		}
	}
	return true
}

func containsToken(text, token string) bool {
	if strings.Contains(text, token) {
		return true
	}

	bare := strings.TrimPrefix(token, hashtag)
	if bare == token || bare == "" {
		return false
	}
	return strings.Contains(text, bare)
}
