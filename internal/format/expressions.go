package format

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// Expression formats an expression. Every operator application is wrapped
// in parentheses so the output never depends on precedence.
func Expression(sb *strings.Builder, expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		if e.Value < 0 {
			// Written the way a negated literal parses; a bare minus could
			// follow another one and open a comment.
			sb.WriteString("(-")
			sb.WriteString(strconv.FormatUint(uint64(-e.Value), 10))
			sb.WriteByte(')')
			break
		}
		sb.WriteString(strconv.FormatInt(e.Value, 10))
	case *ast.StringLiteral:
		// No escaping: literals never contain a quote.
		sb.WriteString("'")
		sb.WriteString(e.Value)
		sb.WriteString("'")
	case *ast.Identifier:
		sb.WriteString(e.Name)
	case *ast.BinaryExpr:
		formatBinaryExpr(sb, e)
	case *ast.UnaryExpr:
		formatUnaryExpr(sb, e)
	case *ast.CastExpr:
		formatCastExpr(sb, e)
	case *ast.FunctionCall:
		formatFunctionCall(sb, e)
	case *ast.CaseExpr:
		formatCaseExpr(sb, e)
	case *ast.BetweenExpr:
		formatBetweenExpr(sb, e)
	case *ast.InExpr:
		formatInExpr(sb, e)
	}
}

func formatExpressionList(sb *strings.Builder, exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, e)
	}
}

// formatBinaryExpr formats a binary expression.
func formatBinaryExpr(sb *strings.Builder, e *ast.BinaryExpr) {
	sb.WriteString("(")
	Expression(sb, e.Left)
	sb.WriteString(" ")
	sb.WriteString(string(e.Op))
	sb.WriteString(" ")
	Expression(sb, e.Right)
	sb.WriteString(")")
}

// formatUnaryExpr formats a prefix operator or an IS [NOT] NULL suffix.
func formatUnaryExpr(sb *strings.Builder, e *ast.UnaryExpr) {
	sb.WriteString("(")
	if e.Op.Postfix() {
		Expression(sb, e.Operand)
		sb.WriteString(" ")
		sb.WriteString(string(e.Op))
		sb.WriteString(")")
		return
	}
	sb.WriteString(string(e.Op))
	if e.Op == ast.OpNot {
		sb.WriteString(" ")
	}
	Expression(sb, e.Operand)
	sb.WriteString(")")
}

func formatCastExpr(sb *strings.Builder, e *ast.CastExpr) {
	sb.WriteString("CAST(")
	Expression(sb, e.Expr)
	sb.WriteString(" AS ")
	sb.WriteString(e.Type)
	sb.WriteString(")")
}

func formatFunctionCall(sb *strings.Builder, e *ast.FunctionCall) {
	sb.WriteString(e.Name)
	sb.WriteString("(")
	formatExpressionList(sb, e.Arguments)
	sb.WriteString(")")
}

func formatCaseExpr(sb *strings.Builder, e *ast.CaseExpr) {
	sb.WriteString("CASE")
	if e.Operand != nil {
		sb.WriteString(" ")
		Expression(sb, e.Operand)
	}
	for _, w := range e.Whens {
		sb.WriteString(" WHEN ")
		Expression(sb, w.Condition)
		sb.WriteString(" THEN ")
		Expression(sb, w.Result)
	}
	if e.Else != nil {
		sb.WriteString(" ELSE ")
		Expression(sb, e.Else)
	}
	sb.WriteString(" END")
}

func formatBetweenExpr(sb *strings.Builder, e *ast.BetweenExpr) {
	sb.WriteString("(")
	Expression(sb, e.Expr)
	if e.Not {
		sb.WriteString(" NOT")
	}
	sb.WriteString(" BETWEEN ")
	Expression(sb, e.Low)
	sb.WriteString(" AND ")
	Expression(sb, e.High)
	sb.WriteString(")")
}

func formatInExpr(sb *strings.Builder, e *ast.InExpr) {
	sb.WriteString("(")
	Expression(sb, e.Expr)
	if e.Not {
		sb.WriteString(" NOT")
	}
	sb.WriteString(" IN (")
	formatExpressionList(sb, e.List)
	sb.WriteString("))")
}
