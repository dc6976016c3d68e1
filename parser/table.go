package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/lexer"
	"github.com/sqlc-dev/sqlselect/token"
)

// aliasStopWords are non-reserved keywords that still cannot name an alias
// because they start the next element of a FROM clause or select list.
var aliasStopWords = map[token.Token]bool{
	token.ALL:         true,
	token.DISTINCT:    true,
	token.DISTINCTROW: true,
	token.ASC:         true,
	token.DESC:        true,
	token.NULL:        true,
	token.JOIN:        true,
	token.INNER:       true,
	token.LEFT:        true,
	token.RIGHT:       true,
	token.FULL:        true,
	token.OUTER:       true,
	token.CROSS:       true,
	token.NATURAL:     true,
	token.ON:          true,
}

// isAliasName reports whether the item can be used as an alias: an
// unqualified name that is neither reserved nor a clause word.
func isAliasName(it lexer.Item) bool {
	return isName(it) && !aliasStopWords[it.Token] && !strings.ContainsAny(it.Value, ".*")
}

// parseAlias reads an optional alias, written either as AS name or as a bare
// name.
func (p *exprParser) parseAlias() string {
	if p.currentIs(token.AS) {
		p.nextToken()
		if !isAliasName(p.current) {
			p.fail(CauseGrammar, "expected alias after AS, got %s", describe(p.current))
			return ""
		}
	} else if !isAliasName(p.current) {
		return ""
	}
	alias := p.current.Value
	p.nextToken()
	return alias
}

// parseFrom parses the FROM clause: the primary table reference followed by
// any number of JOIN ... ON ... elements.
func (s *state) parseFrom(stmt *ast.SelectStatement, sp span) error {
	at, typ, next := findJoin(s.sql, sp.start, sp.end)
	end := sp.end
	if at >= 0 {
		end = at
	}
	from, err := s.parseTableReference(span{start: sp.start, end: end})
	if err != nil {
		return err
	}
	stmt.From = from

	for at >= 0 {
		following, followingTyp, followingNext := findJoin(s.sql, next, sp.end)
		on := indexTopLevel(s.sql, " ON ", next, sp.end)
		if on < 0 || (following >= 0 && on > following) {
			return errorf(CauseStructural, at, "expected ON after %s JOIN", typ)
		}
		exprEnd := sp.end
		if following >= 0 {
			exprEnd = following
		}

		table, err := s.parseTableReference(span{start: next, end: on})
		if err != nil {
			return err
		}
		cond, err := s.parseSingleExpression(makeSpan(on+len(" ON "), exprEnd))
		if err != nil {
			return err
		}
		stmt.Joins = append(stmt.Joins, &ast.Join{
			Position: token.Position{Offset: at},
			Type:     typ,
			Table:    table,
			On:       cond,
		})
		at, typ, next = following, followingTyp, followingNext
	}
	return nil
}

// parseTableReference resolves a table name or a parenthesized subquery,
// each with an optional alias. The whole span must be consumed.
func (s *state) parseTableReference(sp span) (ast.TableReference, error) {
	sp.start, sp.end = trimSpan(s.sql, sp.start, sp.end)

	if !sp.empty() && s.sql[sp.start] == '(' {
		closing := matchingParen(s.sql, sp.start, sp.end)
		if closing < 0 {
			return nil, errorf(CauseWellFormedness, sp.start, "unbalanced parenthesis in table reference")
		}
		if err := s.enter(sp.start); err != nil {
			return nil, err
		}
		s.log.Debug("parse subquery", zap.Int("offset", sp.start), zap.Int("depth", s.depth))
		sel, err := s.parseStatement(span{start: sp.start + 1, end: closing})
		s.leave()
		if err != nil {
			return nil, err
		}

		p := s.newExprParser(span{start: closing + 1, end: sp.end})
		sub := &ast.Subquery{
			Position: token.Position{Offset: sp.start},
			Select:   sel,
			Alias:    p.parseAlias(),
		}
		if err := p.finish(); err != nil {
			return nil, err
		}
		return sub, nil
	}

	p := s.newExprParser(sp)
	if !(p.currentIs(token.IDENT) && !strings.HasSuffix(p.current.Value, "*")) && !isAliasName(p.current) {
		p.fail(CauseGrammar, "expected table name, got %s", describe(p.current))
		return nil, p.err
	}
	t := &ast.Table{Position: p.current.Pos, Name: p.current.Value}
	p.nextToken()
	t.Alias = p.parseAlias()
	if err := p.finish(); err != nil {
		return nil, err
	}
	return t, nil
}
