package parser_test

import (
	"testing"

	aftership "github.com/AfterShip/clickhouse-sql-parser/parser"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sqlselect/parser"
)

// TestAfterShipParser feeds generated SQL to an independent parser to check
// that the output is plain SQL other tools accept. Only constructs both
// dialects share are listed: no bare UNION, bitwise operators or :: casts.
func TestAfterShipParser(t *testing.T) {
	queries := []string{
		"SELECT id, name FROM users u WHERE id > 10 ORDER BY name DESC LIMIT 5",
		"SELECT u.id, count(*) AS n FROM users u LEFT JOIN orders o ON u.id = o.user_id GROUP BY u.id HAVING count(*) > 1",
		"SELECT * FROM t WHERE price BETWEEN 100 AND 200",
		"SELECT * FROM t WHERE id IN (1, 2, 3)",
		"SELECT (a + b) * 2 FROM t",
		"SELECT id FROM t1 UNION ALL SELECT id FROM t2",
		"SELECT CASE WHEN a > 1 THEN 'big' ELSE 'small' END AS size FROM t",
		"SELECT * FROM (SELECT a FROM t WHERE a = 1) s",
		"SELECT a FROM t WHERE a IS NULL OR b = 'x'",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			stmt, ok := parser.Parse(query)
			require.True(t, ok)
			generated := parser.Generate(stmt)

			stmts, parseErr, panicked := tryParseWithAfterShip(generated)
			require.False(t, panicked, "AfterShip parser panicked\nQuery: %s", generated)
			require.NoError(t, parseErr, "Query: %s", generated)
			require.Len(t, stmts, 1, "Query: %s", generated)
		})
	}
}

// tryParseWithAfterShip attempts to parse a query with AfterShip parser, recovering from panics.
func tryParseWithAfterShip(query string) (stmts []aftership.Expr, parseErr error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			parseErr = nil
			stmts = nil
		}
	}()
	p := aftership.NewParser(query)
	stmts, parseErr = p.ParseStmts()
	return stmts, parseErr, false
}
