package util

import (
	"errors"
	"regexp"
	"strings"
)

// CompileNamePatterns compiles a list of variable name patterns into a single regular expression that matches a
// name if any pattern matches it. In a pattern, '*' matches any run of characters, '?' matches a single character,
// and '\' escapes the next character. A nil regexp is returned for an empty list.
func CompileNamePatterns(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var pattern strings.Builder
	pattern.WriteString("^(?:")
	for i, p := range patterns {
		if i > 0 {
			pattern.WriteRune('|')
		}
		pattern.WriteRune('(')
		runes := []rune(p)
		for i := 0; i < len(runes); i++ {
			switch r := runes[i]; r {
			case '\\':
				if i == len(runes)-1 {
					return nil, errors.New("invalid escape sequence")
				}
				i++
				pattern.WriteString(regexp.QuoteMeta(string(runes[i])))
			case '*':
				pattern.WriteString(".*")
			case '?':
				pattern.WriteByte('.')
			default:
				pattern.WriteString(regexp.QuoteMeta(string(r)))
			}
		}
		pattern.WriteRune(')')
	}
	pattern.WriteString(")$")

	return regexp.Compile(pattern.String())
}
