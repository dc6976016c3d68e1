package parser

import (
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
)

// The scanning helpers in this file work on whitespace-normalized text, so
// every keyword is looked up with exactly one space on each side.

// indexTopLevel returns the offset of the first case-insensitive occurrence
// of kw in s[from:to] that starts at parenthesis depth zero, or -1. Text
// inside single-quoted literals is skipped. The match must end by to.
func indexTopLevel(s, kw string, from, to int) int {
	depth := 0
	for i := from; i < to; i++ {
		switch s[i] {
		case '\'':
			end := strings.IndexByte(s[i+1:to], '\'')
			if end < 0 {
				return -1
			}
			i += end + 1
			continue
		case '(':
			depth++
			continue
		case ')':
			depth--
			continue
		}
		if depth == 0 && i+len(kw) <= to && strings.EqualFold(s[i:i+len(kw)], kw) {
			return i
		}
	}
	return -1
}

// checkBalanced verifies that parentheses in s[from:to] pair up. It returns
// the offset of the first unmatched parenthesis, or -1.
func checkBalanced(s string, from, to int) int {
	var open []int
	for i := from; i < to; i++ {
		switch s[i] {
		case '\'':
			end := strings.IndexByte(s[i+1:to], '\'')
			if end < 0 {
				return -1 // the lexer reports the unterminated literal
			}
			i += end + 1
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return i
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return open[0]
	}
	return -1
}

// matchingParen returns the offset of the parenthesis closing the one at
// s[open], or -1.
func matchingParen(s string, open, to int) int {
	depth := 0
	for i := open; i < to; i++ {
		switch s[i] {
		case '\'':
			end := strings.IndexByte(s[i+1:to], '\'')
			if end < 0 {
				return -1
			}
			i += end + 1
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// trimSpan narrows s[from:to] to exclude surrounding spaces.
func trimSpan(s string, from, to int) (int, int) {
	for from < to && s[from] == ' ' {
		from++
	}
	for to > from && s[to-1] == ' ' {
		to--
	}
	return from, to
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// -----------------------------------------------------------------------------
// Clauses

type clauseKind int

const (
	clauseFrom clauseKind = iota
	clauseWhere
	clauseGroupBy
	clauseHaving
	clauseOrderBy
	clauseLimit
	clauseOffset
	numClauses
)

// clauseKeywords lists the clause keywords in the order the clauses must
// appear.
var clauseKeywords = [numClauses]string{
	clauseFrom:    " FROM ",
	clauseWhere:   " WHERE ",
	clauseGroupBy: " GROUP BY ",
	clauseHaving:  " HAVING ",
	clauseOrderBy: " ORDER BY ",
	clauseLimit:   " LIMIT ",
	clauseOffset:  " OFFSET ",
}

// span is a half-open byte range of the statement text.
type span struct {
	start, end int
}

func (sp span) empty() bool { return sp.start >= sp.end }

// clauseSpan records where a clause keyword was found and the content that
// follows it. kw is -1 when the clause is absent.
type clauseSpan struct {
	kw int
	span
}

// segments holds the result of splitting a single SELECT into clauses.
type segments struct {
	header  span // between SELECT and the first clause
	clauses [numClauses]clauseSpan
}

func (sg *segments) has(k clauseKind) bool { return sg.clauses[k].kw >= 0 }

// segment locates the top-level clause keywords of the statement in
// s[from:to], where from is just past SELECT. Clauses must appear in
// canonical order; each clause runs until the next one found.
func segment(s string, from, to int) (*segments, error) {
	sg := &segments{}
	prev, prevKind := -1, clauseKind(-1)
	for k := clauseFrom; k < numClauses; k++ {
		at := indexTopLevel(s, clauseKeywords[k], from, to)
		sg.clauses[k] = clauseSpan{kw: at}
		if at < 0 {
			continue
		}
		if at < prev {
			return nil, errorf(CauseStructural, at, "%s must come after %s",
				strings.TrimSpace(clauseKeywords[k]), strings.TrimSpace(clauseKeywords[prevKind]))
		}
		prev, prevKind = at, k
	}

	end := to
	for k := numClauses - 1; k >= clauseFrom; k-- {
		c := &sg.clauses[k]
		if c.kw < 0 {
			continue
		}
		c.span = makeSpan(c.kw+len(clauseKeywords[k]), end)
		end = c.kw
	}
	sg.header = span{start: from, end: end}
	return sg, nil
}

// -----------------------------------------------------------------------------
// Unions and joins

// findUnion returns the leftmost top-level UNION in s[from:to], the set
// operation, and the offset where the right-hand statement starts. at is -1
// when there is none.
func findUnion(s string, from, to int) (at int, op ast.SetOp, rest int) {
	const kw = " UNION "
	at = indexTopLevel(s, kw, from, to)
	if at < 0 {
		return -1, "", 0
	}
	rest = at + len(kw)
	if hasPrefixFold(s[rest:to], "ALL ") {
		return at, ast.UnionAll, rest + len("ALL ")
	}
	return at, ast.Union, rest
}

var joinKeywords = []struct {
	kw  string
	typ ast.JoinType
}{
	{" LEFT OUTER JOIN ", ast.JoinLeft},
	{" RIGHT OUTER JOIN ", ast.JoinRight},
	{" FULL OUTER JOIN ", ast.JoinFull},
	{" LEFT JOIN ", ast.JoinLeft},
	{" RIGHT JOIN ", ast.JoinRight},
	{" FULL JOIN ", ast.JoinFull},
	{" INNER JOIN ", ast.JoinInner},
	{" JOIN ", ast.JoinInner},
}

// findJoin returns the earliest top-level join keyword in s[from:to], its
// join type and the offset just past it. at is -1 when there is none.
func findJoin(s string, from, to int) (at int, typ ast.JoinType, next int) {
	at = -1
	for _, j := range joinKeywords {
		i := indexTopLevel(s, j.kw, from, to)
		if i >= 0 && (at < 0 || i < at) {
			at, typ, next = i, j.typ, i+len(j.kw)
		}
	}
	return at, typ, next
}
