// Package format renders SELECT statement ASTs as canonical SQL.
package format

import (
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// Format returns the SQL string representation of the statements, one per
// line, each terminated by a semicolon.
func Format(stmts []*ast.SelectStatement) string {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteString("\n")
		}
		Statement(&sb, stmt)
		sb.WriteString(";")
	}
	return sb.String()
}

// Generate returns the canonical SQL text of a single statement.
func Generate(stmt *ast.SelectStatement) string {
	var sb strings.Builder
	Statement(&sb, stmt)
	return sb.String()
}
