package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sqlselect/token"
)

// tokenize returns all tokens from the reader, EOF included.
func tokenize(r io.Reader) []Item {
	l := New(r)
	var items []Item
	for {
		item := l.NextToken()
		items = append(items, item)
		if item.Token == token.EOF {
			return items
		}
	}
}

func tokensOf(items []Item) []token.Token {
	out := make([]token.Token, 0, len(items))
	for _, it := range items {
		out = append(out, it.Token)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "comparison operators",
			input: "a <> b != c <= d >= e < f > g = h",
			want: []token.Token{
				token.IDENT, token.NEQ, token.IDENT, token.NEQ, token.IDENT, token.LTE, token.IDENT,
				token.GTE, token.IDENT, token.LT, token.IDENT, token.GT, token.IDENT, token.EQ, token.IDENT, token.EOF,
			},
		},
		{
			name:  "bitwise operators",
			input: "1 & 2 | 3 ^ 4 << 5 >> ~6",
			want: []token.Token{
				token.NUMBER, token.AMPERSAND, token.NUMBER, token.PIPE, token.NUMBER, token.CARET, token.NUMBER,
				token.SHL, token.NUMBER, token.SHR, token.TILDE, token.NUMBER, token.EOF,
			},
		},
		{
			name:  "keywords are case insensitive",
			input: "select Distinct x from",
			want:  []token.Token{token.SELECT, token.DISTINCT, token.IDENT, token.FROM, token.EOF},
		},
		{
			name:  "cast operator and array suffix",
			input: "x::int[]",
			want:  []token.Token{token.IDENT, token.COLONCOLON, token.IDENT, token.LBRACKET, token.RBRACKET, token.EOF},
		},
		{
			name:  "concat and bang",
			input: "!a || 'b'",
			want:  []token.Token{token.BANG, token.IDENT, token.CONCAT, token.STRING, token.EOF},
		},
		{
			name:  "digits followed by letters",
			input: "1abc 2_x 3",
			want:  []token.Token{token.ILLEGAL, token.ILLEGAL, token.NUMBER, token.EOF},
		},
		{
			name:  "CROSS and NATURAL",
			input: "cross natural",
			want:  []token.Token{token.CROSS, token.NATURAL, token.EOF},
		},
		{
			name:  "unterminated string",
			input: "'abc",
			want:  []token.Token{token.ILLEGAL, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tokensOf(tokenize(strings.NewReader(tt.input))))
		})
	}
}

func TestDottedIdentifiers(t *testing.T) {
	items := tokenize(strings.NewReader("u.name s.* db.t.col order.id"))
	require.Equal(t, "u.name", items[0].Value)
	require.Equal(t, token.IDENT, items[0].Token)
	require.Equal(t, "s.*", items[1].Value)
	require.Equal(t, "db.t.col", items[2].Value)
	// A qualified name never lexes as a keyword.
	require.Equal(t, token.IDENT, items[3].Token)
	require.Equal(t, "order.id", items[3].Value)
}

func TestStringHasNoEscapes(t *testing.T) {
	items := tokenize(strings.NewReader(`'a\nb' 'c'`))
	require.Equal(t, token.STRING, items[0].Token)
	require.Equal(t, `a\nb`, items[0].Value)
	require.Equal(t, "c", items[1].Value)
}

func TestPositionsUseBase(t *testing.T) {
	l := NewAt(strings.NewReader("ab  cd"), 10)
	first := l.NextToken()
	second := l.NextToken()
	eof := l.NextToken()
	require.Equal(t, 10, first.Pos.Offset)
	require.Equal(t, 14, second.Pos.Offset)
	require.Equal(t, 16, eof.Pos.Offset)
	require.Equal(t, token.EOF, eof.Token)
}

func TestGluedNumberValue(t *testing.T) {
	items := tokenize(strings.NewReader("12ab3 c"))
	require.Equal(t, token.ILLEGAL, items[0].Token)
	require.Equal(t, "12ab3", items[0].Value)
	require.Equal(t, "c", items[1].Value)
	require.Equal(t, 6, items[1].Pos.Offset)
}
