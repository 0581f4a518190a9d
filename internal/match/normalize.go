package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeIdent normalizes an identifier into the key used to compare
// property names: "firstName", "FirstName" and "first_name" all map to "firstname".
func NormalizeIdent(s string) string {
	// First expand CamelCase before lowercasing
	tokens := tokenizeCamelCase(s)

	// Join, lowercase, and strip separators
	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)
	joined = stripSeparators(joined)

	return joined
}

// accessorPrefixes are the getter prefixes recognized by AccessorProperty.
var accessorPrefixes = []string{"get", "is"}

// AccessorProperty returns the property name exposed by a getter-style method
// name such as "getName" or "isEnabled". The character following the prefix
// must be upper case, so "getaway" and "island" are not accessors. A leading
// acronym is lower-cased as a whole: "getURL" exposes "url" and "getURLPath"
// exposes "urlPath".
func AccessorProperty(method string) (string, bool) {
	for _, prefix := range accessorPrefixes {
		rest, ok := strings.CutPrefix(method, prefix)
		if !ok || rest == "" {
			continue
		}

		first, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(first) {
			continue
		}

		return lowerLeading(rest), true
	}

	return "", false
}

// lowerLeading lower-cases the leading upper-case run of s. When the run is
// followed by more text, its last rune starts the next word and stays upper.
func lowerLeading(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLetter(runes[n]) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "PointID" -> ["Point", "ID"]
//   - "firstName" -> ["first", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "withHTTPHeader" -> ["with", "HTTP", "Header"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// lower -> upper: "pointID" splits before 'I'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// end of acronym: "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
