package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a mapper, filter or hook name for fuzzy comparison.
// "toInt", "to_int", "TO-INT" and "to int" all normalize to "toint".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, tok := range Tokenize(s) {
		b.WriteString(tok)
	}

	return b.String()
}

// Tokenize splits a name on separators and camel case boundaries and
// lowercases every token.
// Examples:
//   - "before_normalize" -> ["before", "normalize"]
//   - "PersonMapper" -> ["person", "mapper"]
//   - "XMLPerson" -> ["xml", "person"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ' ', '.', '/', ':':
		return true
	default:
		return false
	}
}

// startsToken reports whether runes[i] opens a camel case word: a lower to
// upper transition, or the last capital of an acronym followed by lowercase.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
