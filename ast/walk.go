package ast

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node before its children. If f returns false the children of that
// node are skipped. Nil children are not visited.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *SelectStatement:
		for _, c := range n.Columns {
			Inspect(c, f)
		}
		if n.From != nil {
			Inspect(n.From, f)
		}
		for _, j := range n.Joins {
			Inspect(j, f)
		}
		inspectExpr(n.Where, f)
		for _, e := range n.GroupBy {
			inspectExpr(e, f)
		}
		inspectExpr(n.Having, f)
		for _, o := range n.OrderBy {
			Inspect(o, f)
		}
		inspectExpr(n.Limit, f)
		inspectExpr(n.Offset, f)
		for _, u := range n.Unions {
			Inspect(u, f)
		}
	case *ResultColumn:
		inspectExpr(n.Expr, f)
	case *Subquery:
		if n.Select != nil {
			Inspect(n.Select, f)
		}
	case *Join:
		if n.Table != nil {
			Inspect(n.Table, f)
		}
		inspectExpr(n.On, f)
	case *UnionClause:
		if n.Select != nil {
			Inspect(n.Select, f)
		}
	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *UnaryExpr:
		inspectExpr(n.Operand, f)
	case *CastExpr:
		inspectExpr(n.Expr, f)
	case *FunctionCall:
		for _, a := range n.Arguments {
			inspectExpr(a, f)
		}
	case *CaseExpr:
		inspectExpr(n.Operand, f)
		for _, w := range n.Whens {
			Inspect(w, f)
		}
		inspectExpr(n.Else, f)
	case *WhenClause:
		inspectExpr(n.Condition, f)
		inspectExpr(n.Result, f)
	case *BetweenExpr:
		inspectExpr(n.Expr, f)
		inspectExpr(n.Low, f)
		inspectExpr(n.High, f)
	case *InExpr:
		inspectExpr(n.Expr, f)
		for _, e := range n.List {
			inspectExpr(e, f)
		}
	}
}

func inspectExpr(e Expression, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}
