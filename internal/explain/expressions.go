package explain

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// Expression writes the dump of an expression. alias is the result column
// alias, if any.
func Expression(sb *strings.Builder, expr ast.Expression, alias string, depth int) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		writeLine(sb, depth, "Literal "+strconv.FormatInt(e.Value, 10), alias, 0)
	case *ast.StringLiteral:
		writeLine(sb, depth, "Literal '"+e.Value+"'", alias, 0)
	case *ast.Identifier:
		writeLine(sb, depth, "Identifier "+e.Name, alias, 0)
	case *ast.BinaryExpr:
		writeLine(sb, depth, "BinaryExpr "+string(e.Op), alias, 2)
		Expression(sb, e.Left, "", depth+1)
		Expression(sb, e.Right, "", depth+1)
	case *ast.UnaryExpr:
		writeLine(sb, depth, "UnaryExpr "+string(e.Op), alias, 1)
		Expression(sb, e.Operand, "", depth+1)
	case *ast.CastExpr:
		writeLine(sb, depth, "Cast "+e.Type, alias, 1)
		Expression(sb, e.Expr, "", depth+1)
	case *ast.FunctionCall:
		writeLine(sb, depth, "Function "+e.Name, alias, len(e.Arguments))
		for _, arg := range e.Arguments {
			Expression(sb, arg, "", depth+1)
		}
	case *ast.CaseExpr:
		explainCaseExpr(sb, e, alias, depth)
	case *ast.BetweenExpr:
		label := "Between"
		if e.Not {
			label = "NotBetween"
		}
		writeLine(sb, depth, label, alias, 3)
		Expression(sb, e.Expr, "", depth+1)
		Expression(sb, e.Low, "", depth+1)
		Expression(sb, e.High, "", depth+1)
	case *ast.InExpr:
		label := "In"
		if e.Not {
			label = "NotIn"
		}
		writeLine(sb, depth, label, alias, 1+len(e.List))
		Expression(sb, e.Expr, "", depth+1)
		for _, v := range e.List {
			Expression(sb, v, "", depth+1)
		}
	}
}

func explainCaseExpr(sb *strings.Builder, e *ast.CaseExpr, alias string, depth int) {
	children := len(e.Whens)
	if e.Operand != nil {
		children++
	}
	if e.Else != nil {
		children++
	}
	writeLine(sb, depth, "Case", alias, children)
	if e.Operand != nil {
		Expression(sb, e.Operand, "", depth+1)
	}
	for _, w := range e.Whens {
		writeLine(sb, depth+1, "When", "", 2)
		Expression(sb, w.Condition, "", depth+2)
		Expression(sb, w.Result, "", depth+2)
	}
	if e.Else != nil {
		writeLine(sb, depth+1, "Else", "", 1)
		Expression(sb, e.Else, "", depth+2)
	}
}
