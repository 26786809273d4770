package ast

import (
	"testing"

	"github.com/t14raptor/go-ratel/token"
)

func TestBindingPower(t *testing.T) {
	b := NewBuilder(NewArena())
	x, y := b.Ident("x"), b.Ident("y")

	tests := []struct {
		name string
		expr ExpressionNode
		want uint8
	}{
		{"member", b.Member(x, "y"), 18},
		{"arrow", b.Arrow(nil, x), 18},
		{"call", b.Call(x), 17},
		{"prefix", b.Prefix(token.Not, x), 15},
		{"typeof", b.Prefix(token.Typeof, x), 15},
		{"postfix", b.Postfix(token.Increment, x), 16},
		{"multiply", b.Binary(token.Multiply, x, y), 14},
		{"add", b.Binary(token.Plus, x, y), 13},
		{"shift", b.Binary(token.ShiftLeft, x, y), 12},
		{"instanceof", b.Binary(token.InstanceOf, x, y), 11},
		{"strict equal", b.Binary(token.StrictEqual, x, y), 10},
		{"bitwise and", b.Binary(token.And, x, y), 9},
		{"logical and", b.Binary(token.LogicalAnd, x, y), 6},
		{"coalesce", b.Binary(token.Coalesce, x, y), 5},
		{"assign", b.Binary(token.Assign, x, y), 3},
		{"conditional", b.Conditional(x, y, x), 4},
		{"sequence", b.Sequence(x, y), 0},
		{"identifier", x, 100},
		{"this", b.This(), 100},
		{"literal", b.Number("1"), 100},
		{"computed member", b.ComputedMember(x, y), 100},
		{"object", b.Object(), 100},
		{"function", b.FunctionExpr("", nil), 100},
		{"error", b.ErrorExpr(), 100},
		{"void", b.VoidExpr(), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.expr.Item()
			got := e.BindingPower()
			if got != tt.want {
				t.Errorf("BindingPower() = %d, want %d", got, tt.want)
			}
			if again := e.BindingPower(); again != got {
				t.Errorf("BindingPower() changed between calls: %d then %d", got, again)
			}
		})
	}
}

func TestBindingPowerIgnoresOperands(t *testing.T) {
	b := NewBuilder(NewArena())
	flat := b.Binary(token.Plus, b.Ident("a"), b.Ident("b"))
	deep := b.Binary(token.Plus, b.Sequence(b.Ident("a"), b.Ident("b")), b.Call(b.Ident("c")))

	if flat.Item().BindingPower() != deep.Item().BindingPower() {
		t.Error("binding power depends on operands")
	}
}

func TestIsAllowedAsBareStatement(t *testing.T) {
	b := NewBuilder(NewArena())
	x := b.Ident("x")
	tmpl, err := b.Template(ExpressionNode{}, []string{"a"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		expr ExpressionNode
		want bool
	}{
		{b.ErrorExpr(), true},
		{b.VoidExpr(), true},
		{b.This(), true},
		{x, true},
		{b.Number("1"), true},
		{b.Sequence(x, x), true},
		{b.Array(x), true},
		{b.Member(x, "y"), true},
		{b.ComputedMember(x, x), true},
		{b.Call(x), true},
		{b.Binary(token.Plus, x, x), true},
		{b.Prefix(token.Minus, x), true},
		{b.Postfix(token.Decrement, x), true},
		{b.Conditional(x, x, x), true},
		{tmpl, true},
		{b.Spread(x), true},
		{b.Arrow(nil, x), true},
		{b.Object(), false},
		{b.FunctionExpr("f", nil), false},
		{b.ClassExpr("", ExpressionNode{}), false},
	}

	seen := map[ExprKind]bool{}
	for _, tt := range tests {
		e := tt.expr.Item()
		seen[e.Kind()] = true
		t.Run(e.Kind().String(), func(t *testing.T) {
			if got := e.IsAllowedAsBareStatement(); got != tt.want {
				t.Errorf("IsAllowedAsBareStatement() = %v, want %v", got, tt.want)
			}
		})
	}
	if len(seen) != int(exprKindCount) {
		t.Errorf("covered %d expression kinds, want %d", len(seen), exprKindCount)
	}
}
