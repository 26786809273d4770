package token

import (
	"strconv"
)

// Token is the set of operators an expression node can carry.
type Token int

// String returns the source spelling of the operator.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// bindingPower maps each operator to its binding power. Zero means the
// token is not an operator.
var bindingPower [count]uint8

func init() {
	for _, t := range []Token{Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign,
		QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign, ShiftLeftAssign,
		ShiftRightAssign, UnsignedShiftRightAssign, LogicalAndAssign, LogicalOrAssign, CoalesceAssign} {
		bindingPower[t] = 3
	}
	bindingPower[LogicalOr] = 5
	bindingPower[Coalesce] = 5
	bindingPower[LogicalAnd] = 6
	bindingPower[Or] = 7
	bindingPower[ExclusiveOr] = 8
	bindingPower[And] = 9
	for _, t := range []Token{Equal, StrictEqual, NotEqual, StrictNotEqual} {
		bindingPower[t] = 10
	}
	for _, t := range []Token{Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf, In} {
		bindingPower[t] = 11
	}
	bindingPower[ShiftLeft] = 12
	bindingPower[ShiftRight] = 12
	bindingPower[UnsignedShiftRight] = 12
	bindingPower[Plus] = 13
	bindingPower[Minus] = 13
	bindingPower[Multiply] = 14
	bindingPower[Slash] = 14
	bindingPower[Remainder] = 14
	bindingPower[Exponent] = 14
	for _, t := range []Token{Not, BitwiseNot, Typeof, Void, Delete} {
		bindingPower[t] = 15
	}
	bindingPower[Increment] = 16
	bindingPower[Decrement] = 16
	bindingPower[New] = 17
}

// BindingPower returns the precedence level of the operator. Higher binds
// tighter; 0 is returned for anything that is not an operator.
//
// Unary + and - share their token with the binary forms; a prefix
// expression takes its binding power from the expression kind instead.
func (t Token) BindingPower() uint8 {
	if t <= Undetermined || t >= count {
		return 0
	}
	return bindingPower[t]
}

// IsAssign reports whether the token is = or a compound assignment.
func (t Token) IsAssign() bool {
	return t.BindingPower() == 3
}

// IsRightAssociative reports whether a chain of the operator groups to the right.
func (t Token) IsRightAssociative() bool {
	return t == Exponent || t.IsAssign()
}

// IsPrefix reports whether the token can appear as a prefix operator.
func (t Token) IsPrefix() bool {
	switch t {
	case Not, BitwiseNot, Typeof, Void, Delete, Plus, Minus, Increment, Decrement, New:
		return true
	}
	return false
}

// IsPostfix reports whether the token can appear as a postfix operator.
func (t Token) IsPostfix() bool {
	return t == Increment || t == Decrement
}

// IsBinary reports whether the token can join two operands.
func (t Token) IsBinary() bool {
	bp := t.BindingPower()
	return bp >= 3 && bp <= 14
}

// IsWord reports whether the operator is spelled as a keyword.
func (t Token) IsWord() bool {
	switch t {
	case In, New, Void, Typeof, Delete, InstanceOf:
		return true
	}
	return false
}
