package ast

// Clone returns a deep copy of the statement, including every member of its
// UNION chain. The copy shares no nodes with s.
func (s *SelectStatement) Clone() *SelectStatement {
	if s == nil {
		return nil
	}
	out := &SelectStatement{
		Position:   s.Position,
		Quantifier: s.Quantifier,
		From:       CloneTableReference(s.From),
		Where:      CloneExpression(s.Where),
		GroupBy:    cloneExpressions(s.GroupBy),
		Having:     CloneExpression(s.Having),
		Limit:      CloneExpression(s.Limit),
		Offset:     CloneExpression(s.Offset),
	}
	if s.Columns != nil {
		out.Columns = make([]*ResultColumn, len(s.Columns))
		for i, c := range s.Columns {
			out.Columns[i] = &ResultColumn{Position: c.Position, Expr: CloneExpression(c.Expr), Alias: c.Alias}
		}
	}
	if s.Joins != nil {
		out.Joins = make([]*Join, len(s.Joins))
		for i, j := range s.Joins {
			out.Joins[i] = &Join{
				Position: j.Position,
				Type:     j.Type,
				Table:    CloneTableReference(j.Table),
				On:       CloneExpression(j.On),
			}
		}
	}
	if s.OrderBy != nil {
		out.OrderBy = make([]*OrderByElement, len(s.OrderBy))
		for i, o := range s.OrderBy {
			cp := *o
			out.OrderBy[i] = &cp
		}
	}
	if s.Unions != nil {
		out.Unions = make([]*UnionClause, len(s.Unions))
		for i, u := range s.Unions {
			out.Unions[i] = &UnionClause{Position: u.Position, Op: u.Op, Select: u.Select.Clone()}
		}
	}
	return out
}

// CloneTableReference returns a deep copy of a table reference.
func CloneTableReference(t TableReference) TableReference {
	switch t := t.(type) {
	case nil:
		return nil
	case *Table:
		cp := *t
		return &cp
	case *Subquery:
		return &Subquery{Position: t.Position, Select: t.Select.Clone(), Alias: t.Alias}
	}
	return t
}

// CloneExpression returns a deep copy of an expression tree.
func CloneExpression(e Expression) Expression {
	switch e := e.(type) {
	case nil:
		return nil
	case *IntegerLiteral:
		cp := *e
		return &cp
	case *StringLiteral:
		cp := *e
		return &cp
	case *Identifier:
		cp := *e
		return &cp
	case *BinaryExpr:
		return &BinaryExpr{Position: e.Position, Left: CloneExpression(e.Left), Op: e.Op, Right: CloneExpression(e.Right)}
	case *UnaryExpr:
		return &UnaryExpr{Position: e.Position, Op: e.Op, Operand: CloneExpression(e.Operand)}
	case *CastExpr:
		return &CastExpr{Position: e.Position, Expr: CloneExpression(e.Expr), Type: e.Type}
	case *FunctionCall:
		return &FunctionCall{Position: e.Position, Name: e.Name, Arguments: cloneExpressions(e.Arguments)}
	case *CaseExpr:
		out := &CaseExpr{Position: e.Position, Operand: CloneExpression(e.Operand), Else: CloneExpression(e.Else)}
		if e.Whens != nil {
			out.Whens = make([]*WhenClause, len(e.Whens))
			for i, w := range e.Whens {
				out.Whens[i] = &WhenClause{
					Position:  w.Position,
					Condition: CloneExpression(w.Condition),
					Result:    CloneExpression(w.Result),
				}
			}
		}
		return out
	case *BetweenExpr:
		return &BetweenExpr{
			Position: e.Position,
			Expr:     CloneExpression(e.Expr),
			Not:      e.Not,
			Low:      CloneExpression(e.Low),
			High:     CloneExpression(e.High),
		}
	case *InExpr:
		return &InExpr{Position: e.Position, Expr: CloneExpression(e.Expr), Not: e.Not, List: cloneExpressions(e.List)}
	}
	return e
}

func cloneExpressions(list []Expression) []Expression {
	if list == nil {
		return nil
	}
	out := make([]Expression, len(list))
	for i, e := range list {
		out[i] = CloneExpression(e)
	}
	return out
}
