package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sqlselect/parser"
)

func TestMultiStatementParsing(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected int
	}{
		{
			name:     "two selects with semicolon",
			sql:      "SELECT 1; SELECT 2;",
			expected: 2,
		},
		{
			name:     "three selects",
			sql:      "SELECT 1; SELECT 2; SELECT 3;",
			expected: 3,
		},
		{
			name:     "no trailing semicolon",
			sql:      "SELECT 1; SELECT 2",
			expected: 2,
		},
		{
			name:     "multiple semicolons between statements",
			sql:      "SELECT 1;; SELECT 2;;; SELECT 3",
			expected: 3,
		},
		{
			name:     "newlines between statements",
			sql:      "SELECT 1;\nSELECT 2;\nSELECT 3;",
			expected: 3,
		},
		{
			name:     "single statement",
			sql:      "SELECT 1;",
			expected: 1,
		},
		{
			name:     "semicolon inside literal",
			sql:      "SELECT 'a;b' FROM t; SELECT 2",
			expected: 2,
		},
		{
			name:     "comments",
			sql:      "-- first\nSELECT a FROM t; /* second; */ SELECT b FROM u",
			expected: 2,
		},
		{
			name:     "complex multi-statement",
			sql:      "SELECT a, b FROM t1 WHERE x > 10; SELECT * FROM t3 ORDER BY id UNION SELECT * FROM t4;",
			expected: 2,
		},
		{
			name:     "empty input",
			sql:      "  ;  ",
			expected: 0,
		},
	}

	p := parser.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := p.ParseStatements(context.Background(), strings.NewReader(tt.sql))
			require.NoError(t, err)
			require.Len(t, stmts, tt.expected)
		})
	}
}

func TestParseStatementsError(t *testing.T) {
	sql := "SELECT 1; SELECT a FROM t JOIN u; SELECT 3"
	stmts, err := parser.New().ParseStatements(context.Background(), strings.NewReader(sql))
	require.Error(t, err)
	require.Contains(t, err.Error(), "statement 2")
	require.Len(t, stmts, 1)

	pe, ok := parser.AsParseError(err)
	require.True(t, ok)
	require.Equal(t, parser.CauseStructural, pe.Cause)
}

func TestFormatStatements(t *testing.T) {
	sql := "select a from t where b = 1;\nselect c from u"
	stmts, err := parser.New().ParseStatements(context.Background(), strings.NewReader(sql))
	require.NoError(t, err)
	require.Equal(t, "SELECT a FROM t WHERE (b = 1);\nSELECT c FROM u;", parser.Format(stmts))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT a\n  FROM t\n  WHERE a = 1;\n"), 0o644))

	stmt, err := parser.ParseFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, "SELECT a FROM t WHERE (a = 1)", parser.Generate(stmt))
}

func TestParseFileNotFound(t *testing.T) {
	_, err := parser.ParseFile(context.Background(), "/nonexistent/path/file.sql")
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}
