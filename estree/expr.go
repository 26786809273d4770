package estree

import (
	"fmt"
	"math"
	"strconv"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

func (d *describer) exprs(l ast.ExpressionList) []any {
	out := make([]any, 0, l.Len())
	for e := range l.Values() {
		out = append(out, d.expr(e))
	}
	return out
}

func (d *describer) expr(n ast.ExpressionNode) any {
	if n.IsNil() {
		return nil
	}
	span := n.Span()
	var r Record
	switch e := n.Item().Expr.(type) {
	case *ast.ErrorExpression:
		d.sentinel("expression", span)
		return nil
	case nil, *ast.VoidExpression:
		return nil
	case *ast.ThisExpression:
		r = record("ThisExpression", span)
	case *ast.IdentifierExpression:
		r = record("Identifier", span)
		r["name"] = string(e.Name)
	case *ast.Literal:
		return d.literal(e, span)
	case *ast.SequenceExpression:
		r = record("SequenceExpression", span)
		r["expressions"] = d.exprs(e.Body)
	case *ast.ArrayExpression:
		r = record("ArrayExpression", span)
		r["elements"] = d.exprs(e.Body)
	case *ast.MemberExpression:
		r = record("MemberExpression", span)
		r["object"] = d.expr(e.Object)
		r["property"] = identifier(e.Property)
		r["computed"] = false
		r["optional"] = false
	case *ast.ComputedMemberExpression:
		r = record("MemberExpression", span)
		r["object"] = d.expr(e.Object)
		r["property"] = d.expr(e.Property)
		r["computed"] = true
		r["optional"] = false
	case *ast.CallExpression:
		r = record("CallExpression", span)
		r["callee"] = d.expr(e.Callee)
		r["arguments"] = d.exprs(e.Arguments)
		r["optional"] = false
	case *ast.BinaryExpression:
		r = record(binaryType(e.Operator), span)
		r["operator"] = e.Operator.String()
		r["left"] = d.expr(e.Left)
		r["right"] = d.expr(e.Right)
	case *ast.PrefixExpression:
		r = d.prefix(e, span)
	case *ast.PostfixExpression:
		r = record("UpdateExpression", span)
		r["operator"] = e.Operator.String()
		r["prefix"] = false
		r["argument"] = d.expr(e.Operand)
	case *ast.ConditionalExpression:
		r = record("ConditionalExpression", span)
		r["test"] = d.expr(e.Test)
		r["consequent"] = d.expr(e.Consequent)
		r["alternate"] = d.expr(e.Alternate)
	case *ast.TemplateExpression:
		r = d.template(e, span)
	case *ast.SpreadExpression:
		r = record("SpreadElement", span)
		r["argument"] = d.expr(e.Argument)
	case *ast.ArrowExpression:
		r = record("ArrowFunctionExpression", span)
		r["id"] = nil
		r["params"] = d.patterns(e.Params)
		r["async"] = false
		r["generator"] = false
		if e.Body.IsBlock() {
			r["body"] = d.block(e.Body.Block)
			r["expression"] = false
		} else {
			r["body"] = d.expr(e.Body.Expression)
			r["expression"] = true
		}
	case *ast.ObjectExpression:
		r = record("ObjectExpression", span)
		props := make([]any, 0, e.Body.Len())
		for p := range e.Body.Values() {
			props = append(props, d.property(p))
		}
		r["properties"] = props
	case *ast.FunctionExpression:
		r = d.function("FunctionExpression", span, e.Name.Ident, e.Params, e.Body, e.Async, e.Generator)
	case *ast.ClassExpression:
		r = d.class("ClassExpression", span, e.Name.Ident, e.Extends, e.Body)
	}
	return r
}

func binaryType(op token.Token) string {
	switch {
	case op.IsAssign():
		return "AssignmentExpression"
	case op == token.LogicalAnd || op == token.LogicalOr || op == token.Coalesce:
		return "LogicalExpression"
	}
	return "BinaryExpression"
}

func (d *describer) prefix(e *ast.PrefixExpression, span ast.Span) Record {
	switch e.Operator {
	case token.Increment, token.Decrement:
		r := record("UpdateExpression", span)
		r["operator"] = e.Operator.String()
		r["prefix"] = true
		r["argument"] = d.expr(e.Operand)
		return r
	case token.New:
		r := record("NewExpression", span)
		if call, ok := exprOf(e.Operand).(*ast.CallExpression); ok {
			r["callee"] = d.expr(call.Callee)
			r["arguments"] = d.exprs(call.Arguments)
		} else {
			r["callee"] = d.expr(e.Operand)
			r["arguments"] = []any{}
		}
		return r
	}
	r := record("UnaryExpression", span)
	r["operator"] = e.Operator.String()
	r["prefix"] = true
	r["argument"] = d.expr(e.Operand)
	return r
}

func exprOf(n ast.ExpressionNode) ast.Expr {
	if n.IsNil() {
		return nil
	}
	return n.Item().Expr
}

func (d *describer) template(e *ast.TemplateExpression, span ast.Span) Record {
	quasis := make([]any, 0, e.Quasis.Len())
	for q := range e.Elements() {
		el := record("TemplateElement", q.Span())
		el["value"] = Record{"raw": q.Item, "cooked": q.Item}
		el["tail"] = q.Tail
		quasis = append(quasis, el)
	}
	lit := record("TemplateLiteral", span)
	lit["quasis"] = quasis
	lit["expressions"] = d.exprs(e.Expressions)
	if err := e.Validate(); err != nil {
		d.fail(fmt.Errorf("estree: template at %d-%d: %w", span.Start, span.End, err))
	}
	if e.Tag.IsNil() {
		return lit
	}
	r := record("TaggedTemplateExpression", span)
	r["tag"] = d.expr(e.Tag)
	r["quasi"] = lit
	return r
}

func (d *describer) literal(l *ast.Literal, span ast.Span) any {
	r := record("Literal", span)
	r["raw"] = l.Raw
	switch l.Kind {
	case ast.LiteralUndefined:
		r = record("Identifier", span)
		r["name"] = "undefined"
	case ast.LiteralNull:
		r["value"] = nil
	case ast.LiteralTrue:
		r["value"] = true
	case ast.LiteralFalse:
		r["value"] = false
	case ast.LiteralNumber, ast.LiteralBinary:
		v, err := l.Number()
		if err != nil {
			d.fail(err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			// JSON has no infinities; raw keeps the text.
			r["value"] = nil
		} else {
			r["value"] = v
		}
	case ast.LiteralString:
		r["value"] = l.Unquote()
	case ast.LiteralTemplate:
		raw := l.Unquote()
		el := record("TemplateElement", span)
		el["value"] = Record{"raw": raw, "cooked": raw}
		el["tail"] = true
		r = record("TemplateLiteral", span)
		r["quasis"] = []any{el}
		r["expressions"] = []any{}
	case ast.LiteralRegExp:
		re, err := l.RegExp()
		if err != nil {
			d.fail(err)
			return nil
		}
		r["value"] = nil
		r["regex"] = Record{"pattern": re.Pattern, "flags": re.Flags}
	}
	return r
}

func isComputed(k ast.PropertyKeyNode) bool {
	if k.IsNil() {
		return false
	}
	_, ok := k.Item().Key.(*ast.ComputedKey)
	return ok
}

func (d *describer) key(n ast.PropertyKeyNode) any {
	if n.IsNil() {
		return nil
	}
	span := n.Span()
	switch k := n.Item().Key.(type) {
	case *ast.ComputedKey:
		return d.expr(k.Expression)
	case *ast.LiteralKey:
		if ast.IsIdentifierName(k.Name) {
			r := record("Identifier", span)
			r["name"] = k.Name
			return r
		}
		r := record("Literal", span)
		r["value"] = k.Name
		r["raw"] = strconv.Quote(k.Name)
		return r
	case *ast.BinaryKey:
		return d.literal(&ast.Literal{Kind: ast.LiteralNumber, Raw: k.Raw}, span)
	}
	return nil
}

func (d *describer) property(n ast.PropertyNode) any {
	span := n.Span()
	r := record("Property", span)
	r["kind"] = "init"
	switch p := n.Item().Prop.(type) {
	case *ast.ShorthandProperty:
		id := record("Identifier", span)
		id["name"] = string(p.Name)
		r["key"] = id
		r["value"] = id
		r["computed"] = false
		r["method"] = false
		r["shorthand"] = true
	case *ast.LiteralProperty:
		r["key"] = d.key(p.Key)
		r["value"] = d.expr(p.Value)
		r["computed"] = isComputed(p.Key)
		r["method"] = false
		r["shorthand"] = false
	case *ast.MethodProperty:
		r["key"] = d.key(p.Key)
		r["value"] = d.method(span, p.Value.Get())
		r["computed"] = isComputed(p.Key)
		r["method"] = true
		r["shorthand"] = false
	}
	return r
}

func (d *describer) patterns(l ast.PatternList) []any {
	out := make([]any, 0, l.Len())
	for p := range l.Values() {
		out = append(out, d.pattern(p))
	}
	return out
}

func (d *describer) pattern(n ast.PatternNode) any {
	if n.IsNil() {
		return nil
	}
	span := n.Span()
	var r Record
	switch p := n.Item().Pat.(type) {
	case nil, *ast.VoidPattern:
		return nil
	case *ast.IdentifierPattern:
		r = record("Identifier", span)
		r["name"] = string(p.Name)
	case *ast.ObjectPattern:
		r = record("ObjectPattern", span)
		props := make([]any, 0, p.Properties.Len())
		for prop := range p.Properties.Values() {
			if !prop.Value.IsNil() && prop.Value.Item().Kind() == ast.PatRest {
				props = append(props, d.pattern(prop.Value))
				continue
			}
			pr := record("Property", span)
			if !prop.Value.IsNil() {
				pr = record("Property", prop.Value.Span())
			}
			pr["kind"] = "init"
			pr["method"] = false
			pr["shorthand"] = prop.Shorthand
			pr["computed"] = isComputed(prop.Key)
			pr["key"] = d.key(prop.Key)
			pr["value"] = d.pattern(prop.Value)
			props = append(props, pr)
		}
		r["properties"] = props
	case *ast.ArrayPattern:
		r = record("ArrayPattern", span)
		r["elements"] = d.patterns(p.Elements)
	case *ast.RestElement:
		r = record("RestElement", span)
		r["argument"] = d.pattern(p.Argument)
	case *ast.AssignmentPattern:
		r = record("AssignmentPattern", span)
		r["left"] = d.pattern(p.Left)
		r["right"] = d.expr(p.Right)
	}
	return r
}
