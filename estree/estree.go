// Package estree describes syntax trees as ESTree records, the JSON shape
// most JavaScript tooling exchanges.
package estree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/t14raptor/go-ratel/ast"
)

// ErrSentinel is reported for error nodes, which have no ESTree form.
var ErrSentinel = errors.New("estree: error node")

// Record is one ESTree node. Every record carries type, start and end.
type Record map[string]any

// Describe converts n into ESTree records. Nodes that cannot be described
// are replaced by nil and reported in the returned error; the rest of the
// description is still returned.
func Describe(n ast.Visitable) (any, error) {
	d := &describer{}
	var v any
	switch n := n.(type) {
	case *ast.Module:
		v = d.program(n)
	case ast.StatementList:
		v = d.statements(n)
	case ast.StatementNode:
		v = d.stmt(n)
	case ast.ExpressionNode:
		v = d.expr(n)
	case ast.PatternNode:
		v = d.pattern(n)
	default:
		return nil, fmt.Errorf("estree: cannot describe %T", n)
	}
	return v, errors.Join(d.errs...)
}

// Marshal describes n and encodes the result as JSON.
func Marshal(n ast.Visitable) ([]byte, error) {
	v, err := Describe(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

type describer struct {
	errs []error
}

func (d *describer) fail(err error) {
	d.errs = append(d.errs, err)
}

func (d *describer) sentinel(what string, span ast.Span) {
	d.fail(fmt.Errorf("%w: %s at %d-%d", ErrSentinel, what, span.Start, span.End))
}

func record(typ string, span ast.Span) Record {
	return Record{"type": typ, "start": span.Start, "end": span.End}
}

func (d *describer) program(m *ast.Module) Record {
	var span ast.Span
	if n := m.Body.Len(); n > 0 {
		span = ast.Span{Start: m.Body.At(0).Span().Start, End: m.Body.At(n - 1).Span().End}
	}
	r := record("Program", span)
	r["sourceType"] = "module"
	r["body"] = d.statements(m.Body)
	return r
}

func identifier(id ast.IdentifierNode) any {
	loc := id.Get()
	if loc == nil {
		return nil
	}
	r := record("Identifier", loc.Span())
	r["name"] = string(loc.Item)
	return r
}
