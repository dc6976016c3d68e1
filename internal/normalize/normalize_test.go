package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapse runs", "SELECT  a,\n\tb   FROM t", "SELECT a, b FROM t"},
		{"trim", "  \n SELECT 1 \n", "SELECT 1"},
		{"literal kept verbatim", "SELECT 'a   b\n' FROM t", "SELECT 'a   b\n' FROM t"},
		{"spaces after literal", "WHERE x = 'y'   AND z", "WHERE x = 'y' AND z"},
		{"empty", " \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Whitespace(tt.input))
		})
	}
}

func TestStatement(t *testing.T) {
	require.Equal(t, "SELECT 1", Statement("SELECT 1;"))
	require.Equal(t, "SELECT 1", Statement("SELECT 1 ; ;\n"))
	require.Equal(t, "SELECT ';'", Statement("SELECT ';'"))
}

func TestStripComments(t *testing.T) {
	require.Equal(t, "SELECT 1 \nFROM t", StripComments("SELECT 1 -- one\nFROM t"))
	require.Equal(t, "SELECT   1", StripComments("SELECT /* a /* nested */ b */ 1"))
	require.Equal(t, "SELECT '--x' FROM t", StripComments("SELECT '--x' FROM t"))
}

func TestSplitStatements(t *testing.T) {
	script := `
-- first
SELECT a FROM t;
SELECT ';' FROM u;;
/* trailing */ SELECT 1
`
	require.Equal(t, []string{
		"SELECT a FROM t",
		"SELECT ';' FROM u",
		"SELECT 1",
	}, SplitStatements(script))
}
