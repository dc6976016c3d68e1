package parser

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/lexer"
	"github.com/sqlc-dev/sqlselect/token"
)

// Operator precedence levels
const (
	LOWEST   = iota
	OR_PREC  // OR
	AND_PREC // AND
	COMPARE  // =, <>, <, >, <=, >=, LIKE
	POSTFIX  // IS [NOT] NULL, [NOT] BETWEEN, [NOT] IN
	BITWISE  // &, |, ^, <<, >>
	ADD_PREC // +, -, ||
	MUL_PREC // *, /, %
	UNARY    // NOT x, !x, -x, ~x
	CALL     // ::
)

var binaryOps = map[token.Token]ast.BinaryOp{
	token.OR:        ast.OpOr,
	token.AND:       ast.OpAnd,
	token.EQ:        ast.OpEq,
	token.NEQ:       ast.OpNotEq,
	token.LT:        ast.OpLt,
	token.GT:        ast.OpGt,
	token.LTE:       ast.OpLtEq,
	token.GTE:       ast.OpGtEq,
	token.LIKE:      ast.OpLike,
	token.AMPERSAND: ast.OpBitAnd,
	token.PIPE:      ast.OpBitOr,
	token.CARET:     ast.OpBitXor,
	token.SHL:       ast.OpShl,
	token.SHR:       ast.OpShr,
	token.PLUS:      ast.OpAdd,
	token.MINUS:     ast.OpSub,
	token.CONCAT:    ast.OpConcat,
	token.ASTERISK:  ast.OpMul,
	token.SLASH:     ast.OpDiv,
	token.PERCENT:   ast.OpMod,
}

var unaryOps = map[token.Token]ast.UnaryOp{
	token.NOT:   ast.OpNot,
	token.BANG:  ast.OpNot,
	token.MINUS: ast.OpNeg,
	token.TILDE: ast.OpBitNot,
}

// typeContinuations are the words that extend a type name past its first
// word, as in DOUBLE PRECISION or TIME WITH TIME ZONE. Any other word ends
// the type so that an implicit alias after a :: cast is not swallowed.
var typeContinuations = map[string]bool{
	"PRECISION": true,
	"VARYING":   true,
	"WITH":      true,
	"WITHOUT":   true,
	"TIME":      true,
	"ZONE":      true,
	"TO":        true,
	"YEAR":      true,
	"MONTH":     true,
	"DAY":       true,
	"HOUR":      true,
	"MINUTE":    true,
	"SECOND":    true,
	"UNSIGNED":  true,
}

// exprParser parses the expression content of one clause span.
type exprParser struct {
	st      *state
	lexer   *lexer.Lexer
	current lexer.Item
	peek    lexer.Item
	err     error
}

func (s *state) newExprParser(sp span) *exprParser {
	p := &exprParser{
		st:    s,
		lexer: lexer.NewAt(strings.NewReader(s.sql[sp.start:sp.end]), sp.start),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

func (p *exprParser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *exprParser) currentIs(t token.Token) bool {
	return p.current.Token == t
}

func (p *exprParser) peekIs(t token.Token) bool {
	return p.peek.Token == t
}

// fail records the first error of the span and returns nil so callers can
// bail out with a single statement.
func (p *exprParser) fail(cause Cause, format string, args ...interface{}) ast.Expression {
	if p.err == nil {
		p.err = errorf(cause, p.current.Pos.Offset, format, args...)
	}
	return nil
}

func (p *exprParser) expect(t token.Token) bool {
	if p.currentIs(t) {
		p.nextToken()
		return true
	}
	p.fail(CauseStructural, "expected %s, got %s", t, describe(p.current))
	return false
}

// finish reports the span's error, or an error if the span was not fully
// consumed.
func (p *exprParser) finish() error {
	if p.err == nil && !p.currentIs(token.EOF) {
		cause := CauseWellFormedness
		if p.currentIs(token.ILLEGAL) {
			cause = CauseGrammar
		}
		p.fail(cause, "unexpected %s", describe(p.current))
	}
	return p.err
}

// enter guards one level of parenthesized nesting.
func (p *exprParser) enter() bool {
	if err := p.st.enter(p.current.Pos.Offset); err != nil {
		if p.err == nil {
			p.err = err
		}
		return false
	}
	return true
}

func (p *exprParser) leave() { p.st.leave() }

func describe(it lexer.Item) string {
	switch it.Token {
	case token.EOF:
		return "end of input"
	case token.ILLEGAL:
		return "illegal text " + strconv.Quote(it.Value)
	}
	return strconv.Quote(it.Value)
}

// isName reports whether the item can be read as a plain name.
func isName(it lexer.Item) bool {
	if it.Token == token.IDENT {
		return true
	}
	return it.Token.IsKeyword() && !it.Token.IsReserved()
}

func (p *exprParser) precedence(tok token.Token) int {
	switch tok {
	case token.OR:
		return OR_PREC
	case token.AND:
		return AND_PREC
	case token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE, token.LIKE:
		return COMPARE
	case token.IS, token.BETWEEN, token.IN:
		return POSTFIX
	case token.AMPERSAND, token.PIPE, token.CARET, token.SHL, token.SHR:
		return BITWISE
	case token.PLUS, token.MINUS, token.CONCAT:
		return ADD_PREC
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return MUL_PREC
	case token.COLONCOLON:
		return CALL
	default:
		return LOWEST
	}
}

// precedenceForCurrent returns the precedence for the current token. NOT is
// only an infix operator as part of NOT BETWEEN and NOT IN.
func (p *exprParser) precedenceForCurrent() int {
	if p.currentIs(token.NOT) {
		if p.peekIs(token.BETWEEN) || p.peekIs(token.IN) {
			return POSTFIX
		}
		return LOWEST
	}
	return p.precedence(p.current.Token)
}

func (p *exprParser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefixExpression()
	if left == nil {
		return nil
	}

	// The expression built so far only feeds operators that bind no tighter
	// than the last one applied, so a predicate never becomes an arithmetic
	// operand.
	ceiling := CALL
	for !p.currentIs(token.EOF) {
		prec := p.precedenceForCurrent()
		if prec <= precedence || prec > ceiling {
			break
		}
		left = p.parseInfixExpression(left)
		if left == nil {
			return nil
		}
		ceiling = prec
	}

	return left
}

// parseExpressionList parses a comma-separated list of expressions.
func (p *exprParser) parseExpressionList() []ast.Expression {
	var exprs []ast.Expression
	for {
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)
		if !p.currentIs(token.COMMA) {
			return exprs
		}
		p.nextToken()
	}
}

func (p *exprParser) parsePrefixExpression() ast.Expression {
	switch p.current.Token {
	case token.NUMBER:
		return p.parseNumber()
	case token.CAST:
		return p.parseCast()
	case token.CASE:
		return p.parseCase()
	case token.STRING:
		return p.parseString()
	case token.ASTERISK:
		return p.parseAsterisk()
	case token.LPAREN:
		return p.parseGrouped()
	case token.NOT, token.BANG, token.MINUS, token.TILDE:
		return p.parseUnary()
	case token.EOF:
		return p.fail(CauseGrammar, "expected expression, got end of input")
	default:
		if isName(p.current) {
			return p.parseIdentifierOrFunction()
		}
		return p.fail(CauseGrammar, "unexpected %s", describe(p.current))
	}
}

func (p *exprParser) parseInfixExpression(left ast.Expression) ast.Expression {
	switch p.current.Token {
	case token.IS:
		return p.parseIsExpression(left)
	case token.BETWEEN:
		return p.parseBetweenExpression(left, false)
	case token.IN:
		return p.parseInExpression(left, false)
	case token.NOT:
		p.nextToken() // skip NOT
		if p.currentIs(token.BETWEEN) {
			return p.parseBetweenExpression(left, true)
		}
		return p.parseInExpression(left, true)
	case token.COLONCOLON:
		return p.parseCastOperator(left)
	default:
		return p.parseBinaryExpression(left)
	}
}

func (p *exprParser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpr{
		Position: p.current.Pos,
		Left:     left,
		Op:       binaryOps[p.current.Token],
	}

	precedence := p.precedenceForCurrent()
	p.nextToken()

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *exprParser) parseNumber() ast.Expression {
	pos := p.current.Pos
	value, err := strconv.ParseInt(p.current.Value, 10, 64)
	if err != nil {
		return p.fail(CauseGrammar, "integer %s out of range", p.current.Value)
	}
	p.nextToken()
	return &ast.IntegerLiteral{Position: pos, Value: value}
}

func (p *exprParser) parseString() ast.Expression {
	lit := &ast.StringLiteral{Position: p.current.Pos, Value: p.current.Value}
	p.nextToken()
	return lit
}

func (p *exprParser) parseAsterisk() ast.Expression {
	id := &ast.Identifier{Position: p.current.Pos, Name: "*"}
	p.nextToken()
	return id
}

func (p *exprParser) parseUnary() ast.Expression {
	expr := &ast.UnaryExpr{
		Position: p.current.Pos,
		Op:       unaryOps[p.current.Token],
	}
	p.nextToken()

	expr.Operand = p.parseExpression(UNARY)
	if expr.Operand == nil {
		return nil
	}
	return expr
}

func (p *exprParser) parseGrouped() ast.Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()
	p.nextToken() // skip (

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *exprParser) parseIdentifierOrFunction() ast.Expression {
	pos := p.current.Pos
	name := p.current.Value
	p.nextToken()

	if p.currentIs(token.LPAREN) && !strings.HasSuffix(name, "*") {
		return p.parseFunctionCall(name, pos)
	}
	return &ast.Identifier{Position: pos, Name: name}
}

func (p *exprParser) parseFunctionCall(name string, pos token.Position) ast.Expression {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	fn := &ast.FunctionCall{Position: pos, Name: name}
	p.nextToken() // skip (

	if p.currentIs(token.RPAREN) {
		p.nextToken()
		return fn
	}
	fn.Arguments = p.parseExpressionList()
	if fn.Arguments == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return fn
}

func (p *exprParser) parseCase() ast.Expression {
	expr := &ast.CaseExpr{
		Position: p.current.Pos,
	}
	p.nextToken() // skip CASE

	// Check for CASE operand (simple CASE)
	if !p.currentIs(token.WHEN) {
		expr.Operand = p.parseExpression(LOWEST)
		if expr.Operand == nil {
			return nil
		}
	}

	for p.currentIs(token.WHEN) {
		when := &ast.WhenClause{
			Position: p.current.Pos,
		}
		p.nextToken() // skip WHEN

		if when.Condition = p.parseExpression(LOWEST); when.Condition == nil {
			return nil
		}
		if !p.expect(token.THEN) {
			return nil
		}
		if when.Result = p.parseExpression(LOWEST); when.Result == nil {
			return nil
		}
		expr.Whens = append(expr.Whens, when)
	}
	if len(expr.Whens) == 0 {
		return p.fail(CauseStructural, "expected WHEN, got %s", describe(p.current))
	}

	if p.currentIs(token.ELSE) {
		p.nextToken()
		if expr.Else = p.parseExpression(LOWEST); expr.Else == nil {
			return nil
		}
	}

	if !p.expect(token.END) {
		return nil
	}
	return expr
}

func (p *exprParser) parseCast() ast.Expression {
	expr := &ast.CastExpr{
		Position: p.current.Pos,
	}
	p.nextToken() // skip CAST

	if !p.expect(token.LPAREN) {
		return nil
	}
	if expr.Expr = p.parseExpression(LOWEST); expr.Expr == nil {
		return nil
	}
	if !p.expect(token.AS) {
		return nil
	}
	typ, ok := p.parseTypeName()
	if !ok {
		return nil
	}
	expr.Type = typ
	if !p.expect(token.RPAREN) {
		return nil
	}
	return expr
}

// parseCastOperator handles the postfix form expr::type.
func (p *exprParser) parseCastOperator(left ast.Expression) ast.Expression {
	pos := p.current.Pos
	p.nextToken() // skip ::

	typ, ok := p.parseTypeName()
	if !ok {
		return nil
	}
	return &ast.CastExpr{Position: pos, Expr: left, Type: typ}
}

// parseTypeName reads a type such as INT, VARCHAR(255), NUMERIC(10, 2),
// DOUBLE PRECISION, TIMESTAMP(3) WITH TIME ZONE or INT[].
func (p *exprParser) parseTypeName() (string, bool) {
	if !isName(p.current) || strings.Contains(p.current.Value, ".") {
		p.fail(CauseGrammar, "expected type name, got %s", describe(p.current))
		return "", false
	}
	var sb strings.Builder
	sb.WriteString(p.current.Value)
	p.nextToken()
	p.readTypeWords(&sb)

	if p.currentIs(token.LPAREN) {
		p.nextToken()
		sb.WriteByte('(')
		for {
			if !p.currentIs(token.NUMBER) {
				p.fail(CauseGrammar, "expected type parameter, got %s", describe(p.current))
				return "", false
			}
			sb.WriteString(p.current.Value)
			p.nextToken()
			if !p.currentIs(token.COMMA) {
				break
			}
			sb.WriteString(", ")
			p.nextToken()
		}
		if !p.expect(token.RPAREN) {
			return "", false
		}
		sb.WriteByte(')')
		p.readTypeWords(&sb)
	}

	for p.currentIs(token.LBRACKET) && p.peekIs(token.RBRACKET) {
		p.nextToken()
		p.nextToken()
		sb.WriteString("[]")
	}
	return sb.String(), true
}

func (p *exprParser) readTypeWords(sb *strings.Builder) {
	for p.currentIs(token.IDENT) && typeContinuations[strings.ToUpper(p.current.Value)] {
		sb.WriteByte(' ')
		sb.WriteString(p.current.Value)
		p.nextToken()
	}
}

func (p *exprParser) parseIsExpression(left ast.Expression) ast.Expression {
	pos := p.current.Pos
	p.nextToken() // skip IS

	op := ast.OpIsNull
	if p.currentIs(token.NOT) {
		op = ast.OpIsNotNull
		p.nextToken()
	}
	if !p.expect(token.NULL) {
		return nil
	}
	return &ast.UnaryExpr{Position: pos, Op: op, Operand: left}
}

func (p *exprParser) parseBetweenExpression(left ast.Expression, not bool) ast.Expression {
	expr := &ast.BetweenExpr{
		Position: p.current.Pos,
		Expr:     left,
		Not:      not,
	}

	p.nextToken() // skip BETWEEN

	// Bounds bind tighter than any predicate so the AND is left for us.
	if expr.Low = p.parseExpression(POSTFIX); expr.Low == nil {
		return nil
	}
	if !p.expect(token.AND) {
		return nil
	}
	if expr.High = p.parseExpression(POSTFIX); expr.High == nil {
		return nil
	}
	return expr
}

func (p *exprParser) parseInExpression(left ast.Expression, not bool) ast.Expression {
	expr := &ast.InExpr{
		Position: p.current.Pos,
		Expr:     left,
		Not:      not,
	}

	p.nextToken() // skip IN

	if !p.currentIs(token.LPAREN) {
		return p.fail(CauseStructural, "expected ( after IN, got %s", describe(p.current))
	}
	if !p.enter() {
		return nil
	}
	defer p.leave()
	p.nextToken() // skip (

	if p.currentIs(token.RPAREN) {
		return p.fail(CauseGrammar, "empty IN list")
	}
	if expr.List = p.parseExpressionList(); expr.List == nil {
		return nil
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return expr
}
