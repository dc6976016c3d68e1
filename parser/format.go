package parser

import (
	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/internal/format"
)

// Generate returns the canonical SQL text of a statement. It never fails.
func Generate(stmt *ast.SelectStatement) string {
	return format.Generate(stmt)
}

// Format returns the SQL string representation of the statements.
func Format(stmts []*ast.SelectStatement) string {
	return format.Format(stmts)
}
