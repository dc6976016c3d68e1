// Package ast defines the abstract syntax tree for SELECT statements.
package ast

import (
	"github.com/sqlc-dev/sqlselect/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// TableReference is the interface implemented by the two kinds of table
// source: *Table and *Subquery.
type TableReference interface {
	Node
	tableNode()
}

// -----------------------------------------------------------------------------
// Statements

// Quantifier is the optional keyword following SELECT.
type Quantifier int

const (
	QuantifierNone Quantifier = iota
	QuantifierAll
	QuantifierDistinct
	QuantifierDistinctRow
)

func (q Quantifier) String() string {
	switch q {
	case QuantifierAll:
		return "ALL"
	case QuantifierDistinct:
		return "DISTINCT"
	case QuantifierDistinctRow:
		return "DISTINCTROW"
	}
	return ""
}

// SelectStatement represents a SELECT statement. A statement combined with
// others by UNION holds a single UnionClause whose Select carries the rest of
// the chain, so a chain of N unions nests N levels deep.
type SelectStatement struct {
	Position   token.Position    `json:"-"`
	Quantifier Quantifier        `json:"quantifier,omitempty"`
	Columns    []*ResultColumn   `json:"columns"`
	From       TableReference    `json:"from,omitempty"`
	Joins      []*Join           `json:"joins,omitempty"`
	Where      Expression        `json:"where,omitempty"`
	GroupBy    []Expression      `json:"group_by,omitempty"`
	Having     Expression        `json:"having,omitempty"`
	OrderBy    []*OrderByElement `json:"order_by,omitempty"`
	Limit      Expression        `json:"limit,omitempty"`
	Offset     Expression        `json:"offset,omitempty"`
	Unions     []*UnionClause    `json:"unions,omitempty"`
}

func (s *SelectStatement) Pos() token.Position { return s.Position }
func (s *SelectStatement) End() token.Position { return s.Position }

// ResultColumn is one entry of the select list.
type ResultColumn struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Alias    string         `json:"alias,omitempty"`
}

func (r *ResultColumn) Pos() token.Position { return r.Position }
func (r *ResultColumn) End() token.Position { return r.Position }

// Table represents a named table reference.
type Table struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
	Alias    string         `json:"alias,omitempty"`
}

func (t *Table) Pos() token.Position { return t.Position }
func (t *Table) End() token.Position { return t.Position }
func (t *Table) tableNode()          {}

// Subquery represents a parenthesized SELECT used as a table source.
type Subquery struct {
	Position token.Position   `json:"-"`
	Select   *SelectStatement `json:"select"`
	Alias    string           `json:"alias,omitempty"`
}

func (s *Subquery) Pos() token.Position { return s.Position }
func (s *Subquery) End() token.Position { return s.Position }
func (s *Subquery) tableNode()          {}

// JoinType represents the type of a join.
type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
)

// Join represents one JOIN ... ON ... element following the FROM table.
type Join struct {
	Position token.Position `json:"-"`
	Type     JoinType       `json:"type"`
	Table    TableReference `json:"table"`
	On       Expression     `json:"on"`
}

func (j *Join) Pos() token.Position { return j.Position }
func (j *Join) End() token.Position { return j.Position }

// OrderByElement represents an element in ORDER BY.
type OrderByElement struct {
	Position token.Position `json:"-"`
	Column   string         `json:"column"`
	Desc     bool           `json:"desc,omitempty"`
}

func (o *OrderByElement) Pos() token.Position { return o.Position }
func (o *OrderByElement) End() token.Position { return o.Position }

// SetOp is the set operation of a UnionClause.
type SetOp string

const (
	Union    SetOp = "UNION"
	UnionAll SetOp = "UNION ALL"
)

// UnionClause links a statement to the next member of its UNION chain.
type UnionClause struct {
	Position token.Position   `json:"-"`
	Op       SetOp            `json:"op"`
	Select   *SelectStatement `json:"select"`
}

func (u *UnionClause) Pos() token.Position { return u.Position }
func (u *UnionClause) End() token.Position { return u.Position }

// -----------------------------------------------------------------------------
// Expressions

// IntegerLiteral represents an integer constant.
type IntegerLiteral struct {
	Position token.Position `json:"-"`
	Value    int64          `json:"value"`
}

func (l *IntegerLiteral) Pos() token.Position { return l.Position }
func (l *IntegerLiteral) End() token.Position { return l.Position }
func (l *IntegerLiteral) expressionNode()     {}

// StringLiteral represents a single-quoted string constant.
type StringLiteral struct {
	Position token.Position `json:"-"`
	Value    string         `json:"value"`
}

func (l *StringLiteral) Pos() token.Position { return l.Position }
func (l *StringLiteral) End() token.Position { return l.Position }
func (l *StringLiteral) expressionNode()     {}

// Identifier represents a possibly qualified name stored as written
// (name, t.name, db.t.name). The wildcard forms * and t.* are identifiers
// too.
type Identifier struct {
	Position token.Position `json:"-"`
	Name     string         `json:"name"`
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) End() token.Position { return i.Position }
func (i *Identifier) expressionNode()     {}

// BinaryOp is the operator of a BinaryExpr.
type BinaryOp string

const (
	OpOr     BinaryOp = "OR"
	OpAnd    BinaryOp = "AND"
	OpEq     BinaryOp = "="
	OpNotEq  BinaryOp = "<>"
	OpLt     BinaryOp = "<"
	OpGt     BinaryOp = ">"
	OpLtEq   BinaryOp = "<="
	OpGtEq   BinaryOp = ">="
	OpLike   BinaryOp = "LIKE"
	OpBitAnd BinaryOp = "&"
	OpBitOr  BinaryOp = "|"
	OpBitXor BinaryOp = "^"
	OpShl    BinaryOp = "<<"
	OpShr    BinaryOp = ">>"
	OpAdd    BinaryOp = "+"
	OpSub    BinaryOp = "-"
	OpConcat BinaryOp = "||"
	OpMul    BinaryOp = "*"
	OpDiv    BinaryOp = "/"
	OpMod    BinaryOp = "%"
)

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	Position token.Position `json:"-"`
	Left     Expression     `json:"left"`
	Op       BinaryOp       `json:"op"`
	Right    Expression     `json:"right"`
}

func (b *BinaryExpr) Pos() token.Position { return b.Position }
func (b *BinaryExpr) End() token.Position { return b.Position }
func (b *BinaryExpr) expressionNode()     {}

// UnaryOp is the operator of a UnaryExpr.
type UnaryOp string

const (
	OpNot       UnaryOp = "NOT"
	OpNeg       UnaryOp = "-"
	OpBitNot    UnaryOp = "~"
	OpIsNull    UnaryOp = "IS NULL"
	OpIsNotNull UnaryOp = "IS NOT NULL"
)

// Postfix reports whether the operator follows its operand.
func (op UnaryOp) Postfix() bool {
	return op == OpIsNull || op == OpIsNotNull
}

// UnaryExpr represents a prefix operator, or the IS [NOT] NULL suffix.
type UnaryExpr struct {
	Position token.Position `json:"-"`
	Op       UnaryOp        `json:"op"`
	Operand  Expression     `json:"operand"`
}

func (u *UnaryExpr) Pos() token.Position { return u.Position }
func (u *UnaryExpr) End() token.Position { return u.Position }
func (u *UnaryExpr) expressionNode()     {}

// CastExpr represents CAST(expr AS type) or expr::type.
type CastExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Type     string         `json:"type"`
}

func (c *CastExpr) Pos() token.Position { return c.Position }
func (c *CastExpr) End() token.Position { return c.Position }
func (c *CastExpr) expressionNode()     {}

// FunctionCall represents a function call.
type FunctionCall struct {
	Position  token.Position `json:"-"`
	Name      string         `json:"name"`
	Arguments []Expression   `json:"arguments,omitempty"`
}

func (f *FunctionCall) Pos() token.Position { return f.Position }
func (f *FunctionCall) End() token.Position { return f.Position }
func (f *FunctionCall) expressionNode()     {}

// CaseExpr represents a CASE expression. Operand is nil for the searched
// form.
type CaseExpr struct {
	Position token.Position `json:"-"`
	Operand  Expression     `json:"operand,omitempty"`
	Whens    []*WhenClause  `json:"whens"`
	Else     Expression     `json:"else,omitempty"`
}

func (c *CaseExpr) Pos() token.Position { return c.Position }
func (c *CaseExpr) End() token.Position { return c.Position }
func (c *CaseExpr) expressionNode()     {}

// WhenClause represents a WHEN ... THEN ... pair.
type WhenClause struct {
	Position  token.Position `json:"-"`
	Condition Expression     `json:"condition"`
	Result    Expression     `json:"result"`
}

func (w *WhenClause) Pos() token.Position { return w.Position }
func (w *WhenClause) End() token.Position { return w.Position }

// BetweenExpr represents expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	Low      Expression     `json:"low"`
	High     Expression     `json:"high"`
}

func (b *BetweenExpr) Pos() token.Position { return b.Position }
func (b *BetweenExpr) End() token.Position { return b.Position }
func (b *BetweenExpr) expressionNode()     {}

// InExpr represents expr [NOT] IN (values).
type InExpr struct {
	Position token.Position `json:"-"`
	Expr     Expression     `json:"expr"`
	Not      bool           `json:"not,omitempty"`
	List     []Expression   `json:"list"`
}

func (i *InExpr) Pos() token.Position { return i.Position }
func (i *InExpr) End() token.Position { return i.Position }
func (i *InExpr) expressionNode()     {}
