// Package normalize provides the text normalization applied to SQL before
// its clauses are located, plus helpers for splitting scripts into
// statements.
package normalize

import (
	"strings"
	"unicode"
)

// Whitespace collapses every whitespace run outside single-quoted literals
// to one space and trims leading and trailing whitespace. Literal content is
// copied verbatim up to the next quote.
func Whitespace(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	pendingSpace := false
	inString := false
	for _, ch := range s {
		if inString {
			result.WriteRune(ch)
			if ch == '\'' {
				inString = false
			}
			continue
		}
		if unicode.IsSpace(ch) || ch == '\uFEFF' {
			pendingSpace = true
			continue
		}
		if pendingSpace && result.Len() > 0 {
			result.WriteByte(' ')
		}
		pendingSpace = false
		if ch == '\'' {
			inString = true
		}
		result.WriteRune(ch)
	}
	return result.String()
}

// Statement prepares one statement for parsing: whitespace is folded and
// trailing semicolons are removed.
func Statement(s string) string {
	s = Whitespace(s)
	for strings.HasSuffix(s, ";") {
		s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	}
	return s
}

// StripComments removes SQL comments that are outside of string literals.
// It handles:
//   - Line comments: -- to end of line
//   - Block comments: /* ... */ with nesting support
func StripComments(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		// Check for line comment: --
		if i+1 < len(s) && s[i] == '-' && s[i+1] == '-' {
			for i < len(s) && s[i] != '\n' {
				i++
			}
			continue
		}

		// Check for block comment: /* ... */
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			depth := 1
			i += 2
			for i < len(s) && depth > 0 {
				if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
					depth++
					i += 2
				} else if i+1 < len(s) && s[i] == '*' && s[i+1] == '/' {
					depth--
					i += 2
				} else {
					i++
				}
			}
			result.WriteByte(' ')
			continue
		}

		if s[i] == '\'' {
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				result.WriteString(s[i:])
				break
			}
			result.WriteString(s[i : i+end+2])
			i += end + 2
			continue
		}

		result.WriteByte(s[i])
		i++
	}

	return result.String()
}

// SplitStatements splits a script on semicolons outside string literals.
// Comments are removed first and empty statements are dropped.
func SplitStatements(s string) []string {
	s = StripComments(s)
	var out []string
	start := 0
	inString := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\'':
			inString = !inString
		case s[i] == ';' && !inString:
			if stmt := Whitespace(s[start:i]); stmt != "" {
				out = append(out, stmt)
			}
			start = i + 1
		}
	}
	if stmt := Whitespace(s[start:]); stmt != "" {
		out = append(out, stmt)
	}
	return out
}
