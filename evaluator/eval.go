// Package evaluator folds expressions whose value is known without running
// the program.
package evaluator

import (
	"math"
	"strings"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

// Eval folds n to a constant. ok is false when the value depends on
// anything that is not known statically.
func Eval(n ast.ExpressionNode) (Value, bool) {
	if n.IsNil() {
		return Value{}, false
	}
	switch expr := n.Item().Expr.(type) {
	case *ast.Literal:
		return literal(expr)
	case *ast.IdentifierExpression:
		switch expr.Name {
		case "undefined":
			return undefinedValue, true
		case "NaN":
			return float64Value(math.NaN()), true
		case "Infinity":
			return float64Value(math.Inf(1)), true
		}
	case *ast.SequenceExpression:
		if expr.Body.Len() == 0 {
			return Value{}, false
		}
		return Eval(expr.Body.At(expr.Body.Len() - 1))
	case *ast.ConditionalExpression:
		test, ok := Eval(expr.Test)
		if !ok {
			return Value{}, false
		}
		if test.Truthy() {
			return Eval(expr.Consequent)
		}
		return Eval(expr.Alternate)
	case *ast.MemberExpression:
		obj, ok := Eval(expr.Object)
		if ok && obj.kind == KindString && string(expr.Property.Get().Item) == "length" {
			return float64Value(float64(utf16Len(obj.str))), true
		}
	case *ast.PrefixExpression:
		return prefix(expr)
	case *ast.TemplateExpression:
		if !expr.Tag.IsNil() {
			return Value{}, false
		}
		var sb strings.Builder
		i := 0
		for q := range expr.Elements() {
			sb.WriteString(q.Item)
			if q.Tail || i >= expr.Expressions.Len() {
				continue
			}
			v, ok := Eval(expr.Expressions.At(i))
			if !ok || v.kind == KindObject {
				return Value{}, false
			}
			sb.WriteString(v.String())
			i++
		}
		return stringValue(sb.String()), true
	case *ast.ArrayExpression:
		for elem := range expr.Body.Values() {
			if elem.Item().Kind() == ast.ExprVoid {
				continue
			}
			if _, ok := Eval(elem); !ok {
				return Value{}, false
			}
		}
		return objectValue, true
	case *ast.ObjectExpression:
		for prop := range expr.Body.Values() {
			switch p := prop.Item().Prop.(type) {
			case *ast.LiteralProperty:
				if k, ok := p.Key.Item().Key.(*ast.ComputedKey); ok {
					if _, ok := Eval(k.Expression); !ok {
						return Value{}, false
					}
				}
				if _, ok := Eval(p.Value); !ok {
					return Value{}, false
				}
			case *ast.MethodProperty:
			default:
				return Value{}, false
			}
		}
		return objectValue, true
	case *ast.FunctionExpression, *ast.ArrowExpression, *ast.ClassExpression:
		return objectValue, true
	case *ast.BinaryExpression:
		return binary(expr)
	}
	return Value{}, false
}

// Truthy folds n and reports its truthiness.
func Truthy(n ast.ExpressionNode) (truthy bool, ok bool) {
	v, ok := Eval(n)
	if !ok {
		return false, false
	}
	return v.Truthy(), true
}

func literal(l *ast.Literal) (Value, bool) {
	switch l.Kind {
	case ast.LiteralUndefined:
		return undefinedValue, true
	case ast.LiteralNull:
		return nullValue, true
	case ast.LiteralTrue:
		return boolValue(true), true
	case ast.LiteralFalse:
		return boolValue(false), true
	case ast.LiteralNumber, ast.LiteralBinary:
		f, err := l.Number()
		if err != nil {
			return Value{}, false
		}
		return float64Value(f), true
	case ast.LiteralString, ast.LiteralTemplate:
		return stringValue(l.Unquote()), true
	case ast.LiteralRegExp:
		return objectValue, true
	}
	return Value{}, false
}

func prefix(expr *ast.PrefixExpression) (Value, bool) {
	if expr.Operator == token.Void {
		return undefinedValue, true
	}
	arg, ok := Eval(expr.Operand)
	if !ok {
		return Value{}, false
	}
	switch expr.Operator {
	case token.Not:
		return boolValue(!arg.Truthy()), true
	case token.Minus:
		return float64Value(-arg.Number()), true
	case token.Plus:
		return float64Value(arg.Number()), true
	case token.BitwiseNot:
		return float64Value(float64(^toInt32(arg))), true
	case token.Typeof:
		switch arg.kind {
		case KindObject:
			if isCallable(expr.Operand) {
				return stringValue("function"), true
			}
			return Value{}, false
		case KindNull:
			return stringValue("object"), true
		}
		return stringValue(arg.kind.String()), true
	}
	return Value{}, false
}

func isCallable(n ast.ExpressionNode) bool {
	switch n.Item().Kind() {
	case ast.ExprFunction, ast.ExprArrow, ast.ExprClass:
		return true
	}
	return false
}

func binary(expr *ast.BinaryExpression) (Value, bool) {
	left, ok := Eval(expr.Left)
	if !ok {
		return Value{}, false
	}
	switch expr.Operator {
	case token.LogicalAnd:
		if !left.Truthy() {
			return left, true
		}
		return Eval(expr.Right)
	case token.LogicalOr:
		if left.Truthy() {
			return left, true
		}
		return Eval(expr.Right)
	case token.Coalesce:
		if !left.isNullish() {
			return left, true
		}
		return Eval(expr.Right)
	}
	right, ok := Eval(expr.Right)
	if !ok || left.kind == KindObject || right.kind == KindObject {
		return Value{}, false
	}
	return calculateBinaryExpression(expr.Operator, left, right)
}

func calculateBinaryExpression(operator token.Token, left Value, right Value) (Value, bool) {
	switch operator {
	// Additive
	case token.Plus:
		if left.kind == KindString || right.kind == KindString {
			return stringValue(left.String() + right.String()), true
		}
		return float64Value(left.Number() + right.Number()), true
	case token.Minus:
		return float64Value(left.Number() - right.Number()), true

	// Multiplicative
	case token.Multiply:
		return float64Value(left.Number() * right.Number()), true
	case token.Slash:
		return float64Value(left.Number() / right.Number()), true
	case token.Remainder:
		return float64Value(math.Mod(left.Number(), right.Number())), true
	case token.Exponent:
		return float64Value(math.Pow(left.Number(), right.Number())), true

	// Bitwise
	case token.And:
		return float64Value(float64(toInt32(left) & toInt32(right))), true
	case token.Or:
		return float64Value(float64(toInt32(left) | toInt32(right))), true
	case token.ExclusiveOr:
		return float64Value(float64(toInt32(left) ^ toInt32(right))), true

	// Shift
	// (Masking of 0x1f is to restrict the shift to a maximum of 31 places)
	case token.ShiftLeft:
		return float64Value(float64(toInt32(left) << (toUint32(right) & 0x1f))), true
	case token.ShiftRight:
		return float64Value(float64(toInt32(left) >> (toUint32(right) & 0x1f))), true
	case token.UnsignedShiftRight:
		// Shifting an unsigned integer is a logical shift
		return float64Value(float64(toUint32(left) >> (toUint32(right) & 0x1f))), true

	// Equality
	case token.StrictEqual:
		return boolValue(strictEqual(left, right)), true
	case token.StrictNotEqual:
		return boolValue(!strictEqual(left, right)), true

	// Relational
	case token.Less, token.Greater, token.LessOrEqual, token.GreaterOrEqual:
		return compare(operator, left, right), true
	}
	return Value{}, false
}

func strictEqual(left, right Value) bool {
	if left.kind != right.kind {
		return false
	}
	switch left.kind {
	case KindNumber:
		return left.num == right.num
	case KindString:
		return left.str == right.str
	case KindBoolean:
		return left.b == right.b
	}
	return true
}

func compare(operator token.Token, left, right Value) Value {
	var c int
	if left.kind == KindString && right.kind == KindString {
		c = strings.Compare(left.str, right.str)
	} else {
		l, r := left.Number(), right.Number()
		if math.IsNaN(l) || math.IsNaN(r) {
			return boolValue(false)
		}
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	}
	switch operator {
	case token.Less:
		return boolValue(c < 0)
	case token.Greater:
		return boolValue(c > 0)
	case token.LessOrEqual:
		return boolValue(c <= 0)
	}
	return boolValue(c >= 0)
}
