package explain

import (
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

func explainSelectStatement(sb *strings.Builder, s *ast.SelectStatement, depth int) {
	if s == nil {
		return
	}
	children := 1 + len(s.Joins) + len(s.Unions)
	for _, present := range []bool{
		s.From != nil, s.Where != nil, len(s.GroupBy) > 0, s.Having != nil,
		len(s.OrderBy) > 0, s.Limit != nil, s.Offset != nil,
	} {
		if present {
			children++
		}
	}

	label := "SelectStatement"
	if s.Quantifier != ast.QuantifierNone {
		label += " " + s.Quantifier.String()
	}
	writeLine(sb, depth, label, "", children)

	writeLine(sb, depth+1, "ExpressionList", "", len(s.Columns))
	for _, col := range s.Columns {
		Expression(sb, col.Expr, col.Alias, depth+2)
	}
	if s.From != nil {
		Node(sb, s.From, depth+1)
	}
	for _, j := range s.Joins {
		Node(sb, j, depth+1)
	}
	explainClause(sb, "Where", depth+1, s.Where)
	explainClause(sb, "GroupBy", depth+1, s.GroupBy...)
	explainClause(sb, "Having", depth+1, s.Having)
	if len(s.OrderBy) > 0 {
		writeLine(sb, depth+1, "OrderBy", "", len(s.OrderBy))
		for _, o := range s.OrderBy {
			Node(sb, o, depth+2)
		}
	}
	explainClause(sb, "Limit", depth+1, s.Limit)
	explainClause(sb, "Offset", depth+1, s.Offset)
	for _, u := range s.Unions {
		Node(sb, u, depth+1)
	}
}

// explainClause writes a clause header followed by its expressions. Nothing
// is written for an absent clause.
func explainClause(sb *strings.Builder, name string, depth int, exprs ...ast.Expression) {
	var present []ast.Expression
	for _, e := range exprs {
		if e != nil {
			present = append(present, e)
		}
	}
	if len(present) == 0 {
		return
	}
	writeLine(sb, depth, name, "", len(present))
	for _, e := range present {
		Expression(sb, e, "", depth+1)
	}
}
