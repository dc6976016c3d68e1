package explain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/sqlselect/internal/explain"
	"github.com/sqlc-dev/sqlselect/parser"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "table alias",
			sql:  "SELECT id FROM users u",
			want: `SelectStatement (children 2)
 ExpressionList (children 1)
  Identifier id
 Table users (alias u)
`,
		},
		{
			name: "union chain",
			sql:  "SELECT id FROM t1 UNION ALL SELECT id FROM t2 UNION SELECT id FROM t3",
			want: `SelectStatement (children 3)
 ExpressionList (children 1)
  Identifier id
 Table t1
 Union ALL (children 1)
  SelectStatement (children 3)
   ExpressionList (children 1)
    Identifier id
   Table t2
   Union (children 1)
    SelectStatement (children 2)
     ExpressionList (children 1)
      Identifier id
     Table t3
`,
		},
		{
			name: "clauses",
			sql:  "SELECT DISTINCT a + 1 AS b FROM t LEFT JOIN u ON t.id = u.id WHERE NOT c ORDER BY b DESC LIMIT 5",
			want: `SelectStatement DISTINCT (children 6)
 ExpressionList (children 1)
  BinaryExpr + (alias b) (children 2)
   Identifier a
   Literal 1
 Table t
 Join LEFT (children 2)
  Table u
  BinaryExpr = (children 2)
   Identifier t.id
   Identifier u.id
 Where (children 1)
  UnaryExpr NOT (children 1)
   Identifier c
 OrderBy (children 1)
  OrderByElement b DESC
 Limit (children 1)
  Literal 5
`,
		},
		{
			name: "expressions",
			sql:  "SELECT CAST(x AS INT), f('s'), CASE WHEN a THEN 1 ELSE 2 END, x NOT BETWEEN 1 AND 2, y IN (3)",
			want: `SelectStatement (children 1)
 ExpressionList (children 5)
  Cast INT (children 1)
   Identifier x
  Function f (children 1)
   Literal 's'
  Case (children 2)
   When (children 2)
    Identifier a
    Literal 1
   Else (children 1)
    Literal 2
  NotBetween (children 3)
   Identifier x
   Literal 1
   Literal 2
  In (children 2)
   Identifier y
   Literal 3
`,
		},
		{
			name: "subquery",
			sql:  "SELECT * FROM (SELECT 1) s",
			want: `SelectStatement (children 2)
 ExpressionList (children 1)
  Identifier *
 Subquery (alias s) (children 1)
  SelectStatement (children 1)
   ExpressionList (children 1)
    Literal 1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.ParseString(context.Background(), tt.sql)
			require.NoError(t, err)
			require.Equal(t, tt.want, explain.Explain(stmt))
			require.Equal(t, tt.want, parser.Explain(stmt))
		})
	}
}

func TestExplainNil(t *testing.T) {
	require.Equal(t, "", explain.Explain(nil))
	require.Equal(t, "", parser.Explain(nil))
	require.Equal(t, parser.Generate(nil), parser.Explain(nil))
}
