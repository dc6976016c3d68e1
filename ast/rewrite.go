package ast

import (
	"github.com/pingcap/errors"
)

// ErrColumnCount is returned when two members of a UNION chain have a
// different number of result columns.
var ErrColumnCount = errors.New("UNION column-count mismatch")

// Chain returns the members of the UNION chain starting at s, s first.
func (s *SelectStatement) Chain() []*SelectStatement {
	var out []*SelectStatement
	for cur := s; cur != nil; {
		out = append(out, cur)
		if len(cur.Unions) == 0 {
			break
		}
		cur = cur.Unions[len(cur.Unions)-1].Select
	}
	return out
}

// Last returns the final member of the UNION chain starting at s. For a
// statement without unions it returns s.
func (s *SelectStatement) Last() *SelectStatement {
	chain := s.Chain()
	return chain[len(chain)-1]
}

// AppendUnion attaches a copy of other to the end of the chain. The copy
// keeps its own unions, so appending a chain splices the whole of it.
func (s *SelectStatement) AppendUnion(other *SelectStatement, op SetOp) error {
	last := s.Last()
	if len(last.Columns) != len(other.Columns) {
		return errors.Annotatef(ErrColumnCount, "%d vs %d", len(last.Columns), len(other.Columns))
	}
	last.Unions = append(last.Unions, &UnionClause{Op: op, Select: other.Clone()})
	return nil
}

// AddWhere ANDs pred onto the statement's WHERE clause. The predicate is
// attached as given; callers that reuse it must pass a copy.
func (s *SelectStatement) AddWhere(pred Expression) {
	if s.Where == nil {
		s.Where = pred
		return
	}
	s.Where = &BinaryExpr{Position: s.Where.Pos(), Left: s.Where, Op: OpAnd, Right: pred}
}

// AddWhereAll ANDs a copy of pred onto the WHERE clause of every member of
// the UNION chain.
func (s *SelectStatement) AddWhereAll(pred Expression) {
	for _, member := range s.Chain() {
		member.AddWhere(CloneExpression(pred))
	}
}
