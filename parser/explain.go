package parser

import (
	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/internal/explain"
)

// Explain returns an indented tree dump of a statement.
func Explain(stmt *ast.SelectStatement) string {
	return explain.Explain(stmt)
}
