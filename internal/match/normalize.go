package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a type name for fuzzy comparison: case is dropped,
// word separators are removed and nesting separators ('.' and '$') become '.'.
//
//	"com.acme.HTTPClient"  -> "com.acme.httpclient"
//	"com.acme.Outer$Inner" -> "com.acme.outer.inner"
//	"com.acme.mem_store"   -> "com.acme.memstore"
func NormalizeName(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		switch {
		case isNesting(r):
			sb.WriteByte('.')
		case isSeparator(r):
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// SimpleName returns the last segment of a dotted or nested name.
func SimpleName(s string) string {
	if i := strings.LastIndexFunc(s, isNesting); i >= 0 {
		return s[i+1:]
	}

	return s
}

// TokenizeName splits a name into lowercase words: on nesting and word
// separators, and on camel case boundaries.
//
//	"com.acme.HTTPClient" -> ["com", "acme", "http", "client"]
func TokenizeName(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)

	for i, r := range runes {
		if isNesting(r) || isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isNesting(r rune) bool {
	return r == '.' || r == '$'
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports a camel case boundary before runes[i]: lower to upper
// ("memStore"), or the last capital of an acronym ("HTTPClient").
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return !isNesting(prev) && !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
