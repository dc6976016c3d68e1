// Package token defines constants representing the lexical tokens of the
// SELECT dialect understood by sqlselect.
package token

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	// Literals
	IDENT  // identifiers, possibly dotted (a.b.c, t.*)
	NUMBER // integer literals
	STRING // single-quoted string literals

	// Operators
	PLUS       // +
	MINUS      // -
	ASTERISK   // *
	SLASH      // /
	PERCENT    // %
	EQ         // =
	NEQ        // != or <>
	LT         // <
	GT         // >
	LTE        // <=
	GTE        // >=
	CONCAT     // ||
	AMPERSAND  // &
	PIPE       // |
	CARET      // ^
	SHL        // <<
	SHR        // >>
	TILDE      // ~
	BANG       // !
	COLONCOLON // ::

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;

	// Keywords
	keyword_beg
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CAST
	CROSS
	DESC
	DISTINCT
	DISTINCTROW
	ELSE
	END
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	IS
	JOIN
	LEFT
	LIKE
	LIMIT
	NATURAL
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	RIGHT
	SELECT
	THEN
	UNION
	WHEN
	WHERE
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:       "+",
	MINUS:      "-",
	ASTERISK:   "*",
	SLASH:      "/",
	PERCENT:    "%",
	EQ:         "=",
	NEQ:        "<>",
	LT:         "<",
	GT:         ">",
	LTE:        "<=",
	GTE:        ">=",
	CONCAT:     "||",
	AMPERSAND:  "&",
	PIPE:       "|",
	CARET:      "^",
	SHL:        "<<",
	SHR:        ">>",
	TILDE:      "~",
	BANG:       "!",
	COLONCOLON: "::",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	SEMICOLON: ";",

	ALL:         "ALL",
	AND:         "AND",
	AS:          "AS",
	ASC:         "ASC",
	BETWEEN:     "BETWEEN",
	BY:          "BY",
	CASE:        "CASE",
	CAST:        "CAST",
	CROSS:       "CROSS",
	DESC:        "DESC",
	DISTINCT:    "DISTINCT",
	DISTINCTROW: "DISTINCTROW",
	ELSE:        "ELSE",
	END:         "END",
	FROM:        "FROM",
	FULL:        "FULL",
	GROUP:       "GROUP",
	HAVING:      "HAVING",
	IN:          "IN",
	INNER:       "INNER",
	IS:          "IS",
	JOIN:        "JOIN",
	LEFT:        "LEFT",
	LIKE:        "LIKE",
	LIMIT:       "LIMIT",
	NATURAL:     "NATURAL",
	NOT:         "NOT",
	NULL:        "NULL",
	OFFSET:      "OFFSET",
	ON:          "ON",
	OR:          "OR",
	ORDER:       "ORDER",
	OUTER:       "OUTER",
	RIGHT:       "RIGHT",
	SELECT:      "SELECT",
	THEN:        "THEN",
	UNION:       "UNION",
	WHEN:        "WHEN",
	WHERE:       "WHERE",
}

// reserved lists the keywords that can never be used as an identifier or
// alias. The clause words are here because the statement is split on them
// before any expression is read. The remaining keywords (ALL, ASC, NULL,
// LEFT, ...) only carry meaning in a fixed position and otherwise lex as
// plain names.
var reserved = map[Token]bool{
	SELECT:  true,
	FROM:    true,
	WHERE:   true,
	GROUP:   true,
	HAVING:  true,
	ORDER:   true,
	BY:      true,
	LIMIT:   true,
	OFFSET:  true,
	UNION:   true,
	AS:      true,
	AND:     true,
	OR:      true,
	CASE:    true,
	WHEN:    true,
	THEN:    true,
	ELSE:    true,
	END:     true,
	CAST:    true,
	LIKE:    true,
	NOT:     true,
	BETWEEN: true,
	IN:      true,
	IS:      true,
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// Keywords maps keyword strings to their token types.
var Keywords map[string]Token

func init() {
	Keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
}

// Lookup returns the token type for an upper-cased word.
// If the word is a keyword, it returns the keyword token.
// Otherwise, it returns IDENT.
func Lookup(ident string) Token {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsReserved reports whether the keyword is excluded from identifier
// matching.
func (tok Token) IsReserved() bool {
	return reserved[tok]
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset into the normalized statement text
}
