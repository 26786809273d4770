package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

func TestEval(t *testing.T) {
	num := func(b ast.Builder, raw string) ast.ExpressionNode { return b.Number(raw) }
	tests := []struct {
		name     string
		build    func(b ast.Builder) ast.ExpressionNode
		kind     Kind
		expected string
	}{
		{"addition", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Plus, num(b, "1"), num(b, "2"))
		}, KindNumber, "3"},
		{"concatenation", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Plus, b.Str(`"a"`), num(b, "1"))
		}, KindString, "a1"},
		{"float sum", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Plus, num(b, "0.1"), num(b, "0.2"))
		}, KindNumber, "0.30000000000000004"},
		{"division by zero", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Slash, num(b, "1"), num(b, "0"))
		}, KindNumber, "Infinity"},
		{"zero by zero", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Slash, num(b, "0"), num(b, "0"))
		}, KindNumber, "NaN"},
		{"remainder sign", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Remainder, b.Prefix(token.Minus, num(b, "7")), num(b, "3"))
		}, KindNumber, "-1"},
		{"exponent", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Exponent, num(b, "2"), num(b, "10"))
		}, KindNumber, "1024"},
		{"large exponent form", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Multiply, num(b, "1e20"), num(b, "10"))
		}, KindNumber, "1e+21"},
		{"small exponent form", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Slash, num(b, "1"), num(b, "1e7"))
		}, KindNumber, "1e-7"},
		{"shift masks count", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.ShiftLeft, num(b, "1"), num(b, "33"))
		}, KindNumber, "2"},
		{"unsigned shift", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.UnsignedShiftRight, b.Prefix(token.Minus, num(b, "1")), num(b, "0"))
		}, KindNumber, "4294967295"},
		{"int32 wraps large numbers", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Or, num(b, "1e20"), num(b, "0"))
		}, KindNumber, "1661992960"},
		{"int32 sign bit", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Or, num(b, "2147483648"), num(b, "0"))
		}, KindNumber, "-2147483648"},
		{"uint32 of negative fraction", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.UnsignedShiftRight, b.Prefix(token.Minus, num(b, "4294967297.5")), num(b, "0"))
		}, KindNumber, "4294967295"},
		{"escaped quotes compare equal", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.StrictEqual, b.Str(`"it\'s"`), b.Str(`'it\'s'`))
		}, KindBoolean, "true"},
		{"nul escape is truthy", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Not, b.Str(`"\0"`))
		}, KindBoolean, "false"},
		{"braced unicode escape length", func(b ast.Builder) ast.ExpressionNode {
			return b.Member(b.Str(`"\u{1F600}"`), "length")
		}, KindNumber, "2"},
		{"bitwise not", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.BitwiseNot, num(b, "5"))
		}, KindNumber, "-6"},
		{"hex literal", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Or, b.Lit(ast.LiteralBinary, "0xff"), num(b, "0"))
		}, KindNumber, "255"},
		{"string to number", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Multiply, b.Str(`" 42 "`), num(b, "1"))
		}, KindNumber, "42"},
		{"hex string to number", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Minus, b.Str(`"0x1F"`), num(b, "0"))
		}, KindNumber, "31"},
		{"bad string to number", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Multiply, b.Str(`"abc"`), num(b, "1"))
		}, KindNumber, "NaN"},
		{"empty string to number", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Plus, b.Str(`""`))
		}, KindNumber, "0"},
		{"or picks operand", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.LogicalOr, num(b, "0"), b.Str(`"x"`))
		}, KindString, "x"},
		{"and short circuits", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.LogicalAnd, num(b, "0"), b.Ident("unknown"))
		}, KindNumber, "0"},
		{"coalesce", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Coalesce, b.Lit(ast.LiteralNull, "null"), num(b, "5"))
		}, KindNumber, "5"},
		{"coalesce keeps zero", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Coalesce, num(b, "0"), num(b, "5"))
		}, KindNumber, "0"},
		{"not empty string", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Not, b.Str(`''`))
		}, KindBoolean, "true"},
		{"void", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Void, b.Ident("unknown"))
		}, KindUndefined, "undefined"},
		{"typeof null", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Typeof, b.Lit(ast.LiteralNull, "null"))
		}, KindString, "object"},
		{"typeof function", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Typeof, b.FunctionExpr("", nil))
		}, KindString, "function"},
		{"typeof number", func(b ast.Builder) ast.ExpressionNode {
			return b.Prefix(token.Typeof, num(b, "1"))
		}, KindString, "number"},
		{"string length", func(b ast.Builder) ast.ExpressionNode {
			return b.Member(b.Str(`"héllo"`), "length")
		}, KindNumber, "5"},
		{"astral length", func(b ast.Builder) ast.ExpressionNode {
			return b.Member(b.Str(`"😀"`), "length")
		}, KindNumber, "2"},
		{"template", func(b ast.Builder) ast.ExpressionNode {
			n, _ := b.Template(ast.ExpressionNode{}, []string{"a", "b"}, b.Binary(token.Plus, num(b, "1"), num(b, "1")))
			return n
		}, KindString, "a2b"},
		{"conditional", func(b ast.Builder) ast.ExpressionNode {
			return b.Conditional(b.Lit(ast.LiteralTrue, "true"), num(b, "1"), b.Ident("x"))
		}, KindNumber, "1"},
		{"sequence", func(b ast.Builder) ast.ExpressionNode {
			return b.Sequence(b.Ident("x"), num(b, "2"))
		}, KindNumber, "2"},
		{"undefined identifier", func(b ast.Builder) ast.ExpressionNode {
			return b.Ident("undefined")
		}, KindUndefined, "undefined"},
		{"strict equality of NaN", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.StrictEqual, b.Ident("NaN"), b.Ident("NaN"))
		}, KindBoolean, "false"},
		{"strict equality across kinds", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.StrictNotEqual, b.Str(`"1"`), num(b, "1"))
		}, KindBoolean, "true"},
		{"string comparison", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Less, b.Str(`"a"`), b.Str(`"b"`))
		}, KindBoolean, "true"},
		{"comparison with NaN", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.GreaterOrEqual, num(b, "1"), b.Ident("NaN"))
		}, KindBoolean, "false"},
		{"array of constants", func(b ast.Builder) ast.ExpressionNode {
			return b.Array(num(b, "1"), b.VoidExpr(), num(b, "2"))
		}, KindObject, "[object]"},
		{"object of constants", func(b ast.Builder) ast.ExpressionNode {
			return b.Object(b.KeyValue(b.Key("a"), num(b, "1")), b.Method(b.Key("m"), nil))
		}, KindObject, "[object]"},
		{"regexp", func(b ast.Builder) ast.ExpressionNode {
			return b.Lit(ast.LiteralRegExp, "/a/")
		}, KindObject, "[object]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ast.NewArena()
			defer a.Release()
			v, ok := Eval(tt.build(ast.NewBuilder(a)))
			require.True(t, ok)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestEvalUnknown(t *testing.T) {
	tests := []struct {
		name  string
		build func(b ast.Builder) ast.ExpressionNode
	}{
		{"identifier", func(b ast.Builder) ast.ExpressionNode { return b.Ident("x") }},
		{"call", func(b ast.Builder) ast.ExpressionNode { return b.Call(b.Ident("f")) }},
		{"and with unknown right", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.LogicalAnd, b.Number("1"), b.Ident("x"))
		}},
		{"array with unknown", func(b ast.Builder) ast.ExpressionNode { return b.Array(b.Number("1"), b.Ident("x")) }},
		{"shorthand property", func(b ast.Builder) ast.ExpressionNode { return b.Object(b.Shorthand("a")) }},
		{"tagged template", func(b ast.Builder) ast.ExpressionNode {
			n, _ := b.Template(b.Ident("tag"), []string{"a"})
			return n
		}},
		{"object arithmetic", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Plus, b.Array(), b.Number("1"))
		}},
		{"typeof object", func(b ast.Builder) ast.ExpressionNode { return b.Prefix(token.Typeof, b.Object()) }},
		{"loose equality", func(b ast.Builder) ast.ExpressionNode {
			return b.Binary(token.Equal, b.Number("1"), b.Number("1"))
		}},
		{"empty sequence", func(b ast.Builder) ast.ExpressionNode { return b.Sequence() }},
		{"nil", func(b ast.Builder) ast.ExpressionNode { return ast.ExpressionNode{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ast.NewArena()
			defer a.Release()
			_, ok := Eval(tt.build(ast.NewBuilder(a)))
			assert.False(t, ok)
		})
	}
}

func TestTruthy(t *testing.T) {
	b := ast.NewBuilder(ast.NewArena())
	defer b.Arena().Release()

	for _, tc := range []struct {
		expr ast.ExpressionNode
		want bool
	}{
		{b.Number("0"), false},
		{b.Ident("NaN"), false},
		{b.Str(`"0"`), true},
		{b.Object(), true},
		{b.Arrow(nil, b.Number("1")), true},
		{b.Lit(ast.LiteralNull, "null"), false},
	} {
		got, ok := Truthy(tc.expr)
		require.True(t, ok)
		assert.Equal(t, tc.want, got)
	}

	_, ok := Truthy(b.Ident("x"))
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 0.0, parseNumber("  "))
	assert.Equal(t, 1.5, parseNumber("1.5"))
	assert.Equal(t, 10.0, parseNumber("0b1010"))
	assert.True(t, math.IsInf(parseNumber("-Infinity"), -1))
	assert.True(t, math.IsNaN(parseNumber("1_0")))
	assert.True(t, math.IsNaN(parseNumber("inf")))
	assert.True(t, math.IsNaN(parseNumber("0x1p3")))
}
