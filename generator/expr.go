package generator

import (
	"strings"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

func (s *state) arrow(n *ast.ArrowExpression) {
	if n.Params.Len() == 1 && n.Params.At(0).Item().Kind() == ast.PatIdentifier {
		s.pattern(n.Params.At(0))
	} else {
		s.params(n.Params)
	}
	s.write(" => ")
	if n.Body.IsBlock() {
		s.body(n.Body.Block)
		return
	}
	_, isObject := leftmost(n.Body.Expression).Expr.(*ast.ObjectExpression)
	s.exprWrapped(n.Body.Expression, assignPower, isObject)
}

func (s *state) object(n *ast.ObjectExpression) {
	if n.Body.Len() == 0 {
		s.write("{}")
		return
	}
	s.write("{")
	for i, p := range n.Body.All() {
		if i > 0 {
			s.write(",")
		}
		s.write(" ")
		switch p := p.Item().Prop.(type) {
		case *ast.ShorthandProperty:
			s.write(string(p.Name))
		case *ast.LiteralProperty:
			s.key(p.Key)
			s.write(": ")
			s.expr(p.Value, assignPower)
		case *ast.MethodProperty:
			s.method(p.Key, p.Value.Get())
		}
	}
	s.write(" }")
}

func exprOf(n ast.ExpressionNode) ast.Expr {
	if n.IsNil() {
		return nil
	}
	return n.Item().Expr
}

// leftmost returns the expression that would be printed first when n is
// printed without parentheses.
func leftmost(n ast.ExpressionNode) ast.Expression {
	for {
		if n.IsNil() {
			return ast.Expression{}
		}
		e := n.Item()
		var next ast.ExpressionNode
		switch x := e.Expr.(type) {
		case *ast.BinaryExpression:
			next = x.Left
		case *ast.CallExpression:
			next = x.Callee
		case *ast.MemberExpression:
			next = x.Object
		case *ast.ComputedMemberExpression:
			next = x.Object
		case *ast.PostfixExpression:
			next = x.Operand
		case *ast.ConditionalExpression:
			next = x.Test
		case *ast.TemplateExpression:
			next = x.Tag
		case *ast.SequenceExpression:
			if x.Body.Len() > 0 {
				next = x.Body.At(0)
			}
		}
		if next.IsNil() {
			return e
		}
		n = next
	}
}

// isBareInteger reports whether n is a decimal integer literal, whose
// member access would otherwise read as a fraction: (1).toString.
func isBareInteger(n ast.ExpressionNode) bool {
	lit, ok := exprOf(n).(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralNumber {
		return false
	}
	return !strings.ContainsAny(lit.Raw, ".eExXoObB")
}

// mixesCoalesce reports whether operand is a logical expression that cannot
// appear unparenthesized next to op: ?? never mixes with && and ||.
func mixesCoalesce(op token.Token, operand ast.ExpressionNode) bool {
	b, ok := exprOf(operand).(*ast.BinaryExpression)
	if !ok {
		return false
	}
	switch op {
	case token.Coalesce:
		return b.Operator == token.LogicalOr || b.Operator == token.LogicalAnd
	case token.LogicalOr, token.LogicalAnd:
		return b.Operator == token.Coalesce
	}
	return false
}

// sharesExponentLevel reports whether operand is a multiplicative
// expression on the right of **. The two share a binding power, so right
// associativity alone would print a ** b * c for a ** (b * c).
func sharesExponentLevel(op token.Token, operand ast.ExpressionNode) bool {
	b, ok := exprOf(operand).(*ast.BinaryExpression)
	return ok && op == token.Exponent && b.Operator != token.Exponent &&
		b.Operator.BindingPower() == op.BindingPower()
}

// repeatsSign reports whether printing operand right after op would fuse
// into a different token, as in - -x or + ++x.
func repeatsSign(op token.Token, operand ast.ExpressionNode) bool {
	x, ok := exprOf(operand).(*ast.PrefixExpression)
	if !ok {
		return false
	}
	switch op {
	case token.Minus:
		return x.Operator == token.Minus || x.Operator == token.Decrement
	case token.Plus:
		return x.Operator == token.Plus || x.Operator == token.Increment
	}
	return false
}
