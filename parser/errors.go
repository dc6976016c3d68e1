package parser

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Cause classifies why a parse failed.
type Cause int

const (
	// CauseStructural means a mandatory keyword or delimiter is missing:
	// ON after a join, AND inside BETWEEN, END for CASE, a closing
	// parenthesis, or a clause out of place.
	CauseStructural Cause = iota + 1
	// CauseGrammar means no expression alternative matches at the offset.
	CauseGrammar
	// CauseUnionArity means two adjacent UNION members have a different
	// number of result columns.
	CauseUnionArity
	// CauseWellFormedness covers unbalanced parentheses and text left over
	// after a complete table reference or expression.
	CauseWellFormedness
	// CauseLimit means the nesting limit configured with WithMaxDepth was
	// exceeded.
	CauseLimit
)

func (c Cause) String() string {
	switch c {
	case CauseStructural:
		return "structural"
	case CauseGrammar:
		return "grammar"
	case CauseUnionArity:
		return "union arity"
	case CauseWellFormedness:
		return "well-formedness"
	case CauseLimit:
		return "limit"
	}
	return fmt.Sprintf("Cause(%d)", int(c))
}

// ParseError describes a failed parse. Offset is a byte offset into the
// statement after whitespace normalization.
type ParseError struct {
	Cause  Cause
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s error at offset %d: %s", e.Cause, e.Offset, e.Msg)
}

// errorf returns a ParseError annotated with a stack trace.
func errorf(cause Cause, offset int, format string, args ...interface{}) error {
	return errors.Trace(&ParseError{
		Cause:  cause,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	})
}

// AsParseError returns the ParseError underlying err, if any.
func AsParseError(err error) (*ParseError, bool) {
	pe, ok := errors.Cause(err).(*ParseError)
	return pe, ok
}
