// Package lexer implements a lexer for the clause spans of a SELECT
// statement.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sqlc-dev/sqlselect/token"
)

// Lexer tokenizes a span of SQL text.
type Lexer struct {
	reader *bufio.Reader
	ch     rune // current character
	pos    token.Position
	next   int // offset of the byte following ch
	eof    bool
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token token.Token
	Value string
	Pos   token.Position
}

// New creates a new Lexer from an io.Reader.
func New(r io.Reader) *Lexer {
	return NewAt(r, 0)
}

// NewAt creates a new Lexer whose positions start at base. The parser lexes
// clause spans independently and uses base to keep offsets relative to the
// whole statement.
func NewAt(r io.Reader, base int) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(r),
		next:   base,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.eof {
		l.ch = 0
		return
	}

	r, size, err := l.reader.ReadRune()
	l.pos.Offset = l.next
	if err != nil {
		l.ch = 0
		l.eof = true
		return
	}
	l.next += size
	l.ch = r
}

func (l *Lexer) peekChar() rune {
	if l.eof {
		return 0
	}
	bytes, err := l.reader.Peek(utf8.UTFMax)
	if len(bytes) == 0 && err != nil {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch) || l.ch == '\uFEFF' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF, Value: "", Pos: pos}
	}

	switch l.ch {
	case '+':
		l.readChar()
		return Item{Token: token.PLUS, Value: "+", Pos: pos}
	case '-':
		l.readChar()
		return Item{Token: token.MINUS, Value: "-", Pos: pos}
	case '*':
		l.readChar()
		return Item{Token: token.ASTERISK, Value: "*", Pos: pos}
	case '/':
		l.readChar()
		return Item{Token: token.SLASH, Value: "/", Pos: pos}
	case '%':
		l.readChar()
		return Item{Token: token.PERCENT, Value: "%", Pos: pos}
	case '=':
		l.readChar()
		return Item{Token: token.EQ, Value: "=", Pos: pos}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "!=", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.BANG, Value: "!", Pos: pos}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return Item{Token: token.LTE, Value: "<=", Pos: pos}
		case '>':
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "<>", Pos: pos}
		case '<':
			l.readChar()
			l.readChar()
			return Item{Token: token.SHL, Value: "<<", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.LT, Value: "<", Pos: pos}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return Item{Token: token.GTE, Value: ">=", Pos: pos}
		case '>':
			l.readChar()
			l.readChar()
			return Item{Token: token.SHR, Value: ">>", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.GT, Value: ">", Pos: pos}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return Item{Token: token.CONCAT, Value: "||", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.PIPE, Value: "|", Pos: pos}
	case '&':
		l.readChar()
		return Item{Token: token.AMPERSAND, Value: "&", Pos: pos}
	case '^':
		l.readChar()
		return Item{Token: token.CARET, Value: "^", Pos: pos}
	case '~':
		l.readChar()
		return Item{Token: token.TILDE, Value: "~", Pos: pos}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			l.readChar()
			return Item{Token: token.COLONCOLON, Value: "::", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.ILLEGAL, Value: ":", Pos: pos}
	case '(':
		l.readChar()
		return Item{Token: token.LPAREN, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Item{Token: token.RPAREN, Value: ")", Pos: pos}
	case '[':
		l.readChar()
		return Item{Token: token.LBRACKET, Value: "[", Pos: pos}
	case ']':
		l.readChar()
		return Item{Token: token.RBRACKET, Value: "]", Pos: pos}
	case ',':
		l.readChar()
		return Item{Token: token.COMMA, Value: ",", Pos: pos}
	case ';':
		l.readChar()
		return Item{Token: token.SEMICOLON, Value: ";", Pos: pos}
	case '\'':
		return l.readString()
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		ch := l.ch
		l.readChar()
		return Item{Token: token.ILLEGAL, Value: string(ch), Pos: pos}
	}
}

// readString reads a single-quoted literal. The content is the raw run of
// characters up to the next quote; there is no escape processing.
func (l *Lexer) readString() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof && l.ch != '\'' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.eof {
		return Item{Token: token.ILLEGAL, Value: "'" + sb.String(), Pos: pos}
	}
	l.readChar() // skip closing quote
	return Item{Token: token.STRING, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readNumber() Item {
	pos := l.pos
	var sb strings.Builder
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if isIdentStart(l.ch) {
		// 1abc is neither a number nor a name.
		for isIdentChar(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
	}
	return Item{Token: token.NUMBER, Value: sb.String(), Pos: pos}
}

// readIdentifier reads a name with optional dotted qualifiers. A qualified
// name may end in .* (t.*). Undotted names are looked up in the keyword
// table; a qualified name is never a keyword.
func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	var sb strings.Builder

	for isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	dotted := false
	for l.ch == '.' {
		p := l.peekChar()
		if p == '*' {
			l.readChar()
			l.readChar()
			sb.WriteString(".*")
			dotted = true
			break
		}
		if !isIdentStart(p) {
			break
		}
		l.readChar() // skip dot
		sb.WriteByte('.')
		for isIdentChar(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		dotted = true
	}

	ident := sb.String()
	if dotted {
		return Item{Token: token.IDENT, Value: ident, Pos: pos}
	}
	tok := token.Lookup(strings.ToUpper(ident))
	return Item{Token: tok, Value: ident, Pos: pos}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentChar(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || isDigit(ch)
}
