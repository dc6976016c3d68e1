package format

import (
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// Statement formats a SELECT statement and the rest of its UNION chain.
func Statement(sb *strings.Builder, q *ast.SelectStatement) {
	if q == nil {
		return
	}

	sb.WriteString("SELECT ")
	if q.Quantifier != ast.QuantifierNone {
		sb.WriteString(q.Quantifier.String())
		sb.WriteString(" ")
	}

	for i, col := range q.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, col.Expr)
		if col.Alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(col.Alias)
		}
	}

	if q.From != nil {
		sb.WriteString(" FROM ")
		formatTableReference(sb, q.From)
	}

	for _, j := range q.Joins {
		sb.WriteString(" ")
		sb.WriteString(string(j.Type))
		sb.WriteString(" JOIN ")
		formatTableReference(sb, j.Table)
		sb.WriteString(" ON ")
		Expression(sb, j.On)
	}

	if q.Where != nil {
		sb.WriteString(" WHERE ")
		Expression(sb, q.Where)
	}

	if len(q.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		formatExpressionList(sb, q.GroupBy)
	}

	if q.Having != nil {
		sb.WriteString(" HAVING ")
		Expression(sb, q.Having)
	}

	if len(q.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, o := range q.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.Column)
			if o.Desc {
				sb.WriteString(" DESC")
			}
		}
	}

	if q.Limit != nil {
		sb.WriteString(" LIMIT ")
		Expression(sb, q.Limit)
	}

	if q.Offset != nil {
		sb.WriteString(" OFFSET ")
		Expression(sb, q.Offset)
	}

	for _, u := range q.Unions {
		sb.WriteString(" ")
		sb.WriteString(string(u.Op))
		sb.WriteString(" ")
		Statement(sb, u.Select)
	}
}

// formatTableReference formats a table or subquery. Aliases are written
// without AS.
func formatTableReference(sb *strings.Builder, t ast.TableReference) {
	switch t := t.(type) {
	case *ast.Table:
		sb.WriteString(t.Name)
		formatTableAlias(sb, t.Alias)
	case *ast.Subquery:
		sb.WriteString("(")
		Statement(sb, t.Select)
		sb.WriteString(")")
		formatTableAlias(sb, t.Alias)
	}
}

func formatTableAlias(sb *strings.Builder, alias string) {
	if alias != "" {
		sb.WriteString(" ")
		sb.WriteString(alias)
	}
}
