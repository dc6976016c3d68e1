// Package parser implements a parser for SQL SELECT statements.
//
// Parsing runs in two tiers. A depth-aware scan over the normalized text
// splits a statement at its top-level UNION, clause and JOIN keywords; the
// content of each resulting span is then parsed by a token-based
// precedence-climbing expression parser.
package parser

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/internal/normalize"
	"github.com/sqlc-dev/sqlselect/lexer"
	"github.com/sqlc-dev/sqlselect/token"
)

// Parser parses SELECT statements. A Parser holds only configuration and is
// safe for concurrent use.
type Parser struct {
	logger   *zap.Logger
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMaxDepth limits nesting: every subquery, UNION link and parenthesized
// expression counts one level. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// New creates a new Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses text as a SELECT statement or a UNION chain of them. It
// reports failure only through the boolean; use ParseString for the cause.
func Parse(sql string) (*ast.SelectStatement, bool) {
	stmt, err := defaultParser.Parse(context.Background(), sql)
	return stmt, err == nil
}

// ParseString parses one statement with the default Parser.
func ParseString(ctx context.Context, sql string) (*ast.SelectStatement, error) {
	return defaultParser.Parse(ctx, sql)
}

// ParseReader reads r to the end and parses it as one statement.
func ParseReader(ctx context.Context, r io.Reader) (*ast.SelectStatement, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return defaultParser.Parse(ctx, string(b))
}

// ParseFile parses the statement stored in the named file.
func ParseFile(ctx context.Context, path string) (*ast.SelectStatement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	return ParseReader(ctx, f)
}

// Parse parses one statement. A trailing semicolon is allowed. On failure
// the returned error wraps a *ParseError; see AsParseError.
func (p *Parser) Parse(ctx context.Context, sql string) (*ast.SelectStatement, error) {
	s := &state{
		ctx:      ctx,
		sql:      normalize.Statement(sql),
		log:      p.logger,
		maxDepth: p.maxDepth,
	}
	stmt, err := s.parseStatement(span{start: 0, end: len(s.sql)})
	if err != nil {
		fields := []zap.Field{zap.String("sql", s.sql), zap.Error(err)}
		if pe, ok := AsParseError(err); ok {
			fields = append(fields, zap.Stringer("cause", pe.Cause), zap.Int("offset", pe.Offset))
		}
		p.logger.Debug("parse failed", fields...)
		return nil, err
	}
	return stmt, nil
}

// ParseStatements parses a script of semicolon-separated statements.
// Comments are ignored.
func (p *Parser) ParseStatements(ctx context.Context, r io.Reader) ([]*ast.SelectStatement, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var statements []*ast.SelectStatement
	for i, sql := range normalize.SplitStatements(string(b)) {
		select {
		case <-ctx.Done():
			return statements, errors.Trace(ctx.Err())
		default:
		}

		stmt, err := p.Parse(ctx, sql)
		if err != nil {
			return statements, errors.Annotatef(err, "statement %d", i+1)
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// state is the per-call parse state. sql is the normalized statement; every
// span and error offset refers to it.
type state struct {
	ctx      context.Context
	sql      string
	log      *zap.Logger
	maxDepth int
	depth    int
}

func (s *state) enter(offset int) error {
	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		s.depth--
		return errorf(CauseLimit, offset, "nesting deeper than %d levels", s.maxDepth)
	}
	return nil
}

func (s *state) leave() { s.depth-- }

func makeSpan(start, end int) span {
	if start > end {
		start = end
	}
	return span{start: start, end: end}
}

// parseStatement parses a statement that may carry UNION links. The chain is
// split at its leftmost UNION; the right side is parsed recursively, so each
// statement holds at most one UnionClause.
func (s *state) parseStatement(sp span) (*ast.SelectStatement, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	sp.start, sp.end = trimSpan(s.sql, sp.start, sp.end)

	at, op, rest := findUnion(s.sql, sp.start, sp.end)
	if at < 0 {
		return s.parseSelect(sp)
	}
	s.log.Debug("split union", zap.Int("offset", at), zap.String("op", string(op)))

	left, err := s.parseSelect(span{start: sp.start, end: at})
	if err != nil {
		return nil, err
	}
	if err := s.enter(rest); err != nil {
		return nil, err
	}
	right, err := s.parseStatement(span{start: rest, end: sp.end})
	s.leave()
	if err != nil {
		return nil, err
	}
	if len(left.Columns) != len(right.Columns) {
		return nil, errorf(CauseUnionArity, at, "UNION column-count mismatch: %d vs %d",
			len(left.Columns), len(right.Columns))
	}
	left.Unions = append(left.Unions, &ast.UnionClause{
		Position: token.Position{Offset: at},
		Op:       op,
		Select:   right,
	})
	return left, nil
}

// parseSelect parses a single SELECT without top-level UNION. The result is
// built in a fresh value that is only returned once every clause parsed.
func (s *state) parseSelect(sp span) (*ast.SelectStatement, error) {
	sp.start, sp.end = trimSpan(s.sql, sp.start, sp.end)
	if off := checkBalanced(s.sql, sp.start, sp.end); off >= 0 {
		return nil, errorf(CauseWellFormedness, off, "unbalanced parenthesis")
	}

	text := s.sql[sp.start:sp.end]
	if !hasPrefixFold(text, "SELECT") || (len(text) > len("SELECT") && isWordByte(text[len("SELECT")])) {
		return nil, errorf(CauseStructural, sp.start, "expected SELECT")
	}

	sg, err := segment(s.sql, sp.start+len("SELECT"), sp.end)
	if err != nil {
		return nil, err
	}
	if !sg.has(clauseFrom) {
		for k := clauseWhere; k < numClauses; k++ {
			if sg.has(k) {
				return nil, errorf(CauseStructural, sg.clauses[k].kw, "expected FROM before %s", trimKeyword(k))
			}
		}
	}

	stmt := &ast.SelectStatement{Position: token.Position{Offset: sp.start}}
	if err := s.parseSelectList(stmt, sg.header); err != nil {
		return nil, err
	}
	if sg.has(clauseFrom) {
		if err := s.parseFrom(stmt, sg.clauses[clauseFrom].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseWhere) {
		if stmt.Where, err = s.parseSingleExpression(sg.clauses[clauseWhere].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseGroupBy) {
		if stmt.GroupBy, err = s.parseExpressionList(sg.clauses[clauseGroupBy].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseHaving) {
		if stmt.Having, err = s.parseSingleExpression(sg.clauses[clauseHaving].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseOrderBy) {
		if stmt.OrderBy, err = s.parseOrderBy(sg.clauses[clauseOrderBy].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseLimit) {
		if stmt.Limit, err = s.parseSingleExpression(sg.clauses[clauseLimit].span); err != nil {
			return nil, err
		}
	}
	if sg.has(clauseOffset) {
		if stmt.Offset, err = s.parseSingleExpression(sg.clauses[clauseOffset].span); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func trimKeyword(k clauseKind) string {
	kw := clauseKeywords[k]
	return kw[1 : len(kw)-1]
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// canStartExpression reports whether an expression can begin with the item.
// It decides whether ALL or DISTINCT after SELECT is a quantifier or a
// column name.
func canStartExpression(it lexer.Item) bool {
	switch it.Token {
	case token.NUMBER, token.STRING, token.LPAREN, token.ASTERISK,
		token.NOT, token.BANG, token.MINUS, token.TILDE, token.CASE, token.CAST:
		return true
	}
	return isName(it)
}

var quantifiers = map[token.Token]ast.Quantifier{
	token.ALL:         ast.QuantifierAll,
	token.DISTINCT:    ast.QuantifierDistinct,
	token.DISTINCTROW: ast.QuantifierDistinctRow,
}

// parseSelectList parses the optional quantifier and the result columns.
func (s *state) parseSelectList(stmt *ast.SelectStatement, sp span) error {
	p := s.newExprParser(sp)
	if q, ok := quantifiers[p.current.Token]; ok && canStartExpression(p.peek) {
		stmt.Quantifier = q
		p.nextToken()
	}

	for {
		col := &ast.ResultColumn{Position: p.current.Pos}
		if col.Expr = p.parseExpression(LOWEST); col.Expr == nil {
			break
		}
		col.Alias = p.parseAlias()
		if p.err != nil {
			break
		}
		stmt.Columns = append(stmt.Columns, col)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	return p.finish()
}

// parseSingleExpression parses a span holding exactly one expression.
func (s *state) parseSingleExpression(sp span) (ast.Expression, error) {
	p := s.newExprParser(sp)
	expr := p.parseExpression(LOWEST)
	if err := p.finish(); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseExpressionList parses a span holding a comma-separated expression
// list.
func (s *state) parseExpressionList(sp span) ([]ast.Expression, error) {
	p := s.newExprParser(sp)
	exprs := p.parseExpressionList()
	if err := p.finish(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// parseOrderBy parses a comma-separated list of column names or ordinals,
// each with an optional ASC or DESC.
func (s *state) parseOrderBy(sp span) ([]*ast.OrderByElement, error) {
	p := s.newExprParser(sp)
	var elems []*ast.OrderByElement
	for {
		ok := p.currentIs(token.NUMBER) ||
			(isName(p.current) && !aliasStopWords[p.current.Token] && !strings.HasSuffix(p.current.Value, "*"))
		if !ok {
			p.fail(CauseGrammar, "expected column in ORDER BY, got %s", describe(p.current))
			break
		}
		elem := &ast.OrderByElement{Position: p.current.Pos, Column: p.current.Value}
		p.nextToken()
		if p.currentIs(token.ASC) {
			p.nextToken()
		} else if p.currentIs(token.DESC) {
			elem.Desc = true
			p.nextToken()
		}
		elems = append(elems, elem)
		if !p.currentIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return elems, nil
}
