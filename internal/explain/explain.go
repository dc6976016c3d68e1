// Package explain renders an AST as an indented tree for diagnostics.
//
// Each node is written on its own line, indented one space per level:
//
//	SelectStatement (children 2)
//	 ExpressionList (children 1)
//	  Identifier id
//	 Table users (alias u)
package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// Explain returns the tree dump of a statement.
func Explain(stmt *ast.SelectStatement) string {
	var sb strings.Builder
	Node(&sb, stmt, 0)
	return sb.String()
}

// Node writes the dump of an AST node at the given depth.
func Node(sb *strings.Builder, node ast.Node, depth int) {
	switch n := node.(type) {
	case *ast.SelectStatement:
		explainSelectStatement(sb, n, depth)
	case *ast.Table:
		writeLine(sb, depth, "Table "+n.Name, n.Alias, 0)
	case *ast.Subquery:
		writeLine(sb, depth, "Subquery", n.Alias, 1)
		Node(sb, n.Select, depth+1)
	case *ast.Join:
		writeLine(sb, depth, "Join "+string(n.Type), "", 2)
		Node(sb, n.Table, depth+1)
		Expression(sb, n.On, "", depth+1)
	case *ast.UnionClause:
		label := "Union"
		if n.Op == ast.UnionAll {
			label = "Union ALL"
		}
		writeLine(sb, depth, label, "", 1)
		Node(sb, n.Select, depth+1)
	case *ast.OrderByElement:
		label := "OrderByElement " + n.Column
		if n.Desc {
			label += " DESC"
		}
		writeLine(sb, depth, label, "", 0)
	case ast.Expression:
		Expression(sb, n, "", depth)
	default:
		writeLine(sb, depth, fmt.Sprintf("%T", node), "", 0)
	}
}

// writeLine writes one node line. children is omitted when zero.
func writeLine(sb *strings.Builder, depth int, label, alias string, children int) {
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteString(label)
	if alias != "" {
		fmt.Fprintf(sb, " (alias %s)", alias)
	}
	if children > 0 {
		fmt.Fprintf(sb, " (children %d)", children)
	}
	sb.WriteString("\n")
}
