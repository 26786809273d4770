package ast

// Binding powers of the expression kinds that do not carry an operator.
// Primary expressions never need parentheses.
const (
	BindingPowerSequence    uint8 = 0
	BindingPowerConditional uint8 = 4
	BindingPowerPrefix      uint8 = 15
	BindingPowerCall        uint8 = 17
	BindingPowerMember      uint8 = 18
	BindingPowerPrimary     uint8 = 100
)

// BindingPower returns the precedence level of the expression. It depends
// only on the variant and, for binary and postfix expressions, on the
// operator; never on the operands.
func (e Expression) BindingPower() uint8 {
	switch n := e.Expr.(type) {
	case *MemberExpression, *ArrowExpression:
		return BindingPowerMember
	case *CallExpression:
		return BindingPowerCall
	case *PrefixExpression:
		return BindingPowerPrefix
	case *BinaryExpression:
		return n.Operator.BindingPower()
	case *PostfixExpression:
		return n.Operator.BindingPower()
	case *ConditionalExpression:
		return BindingPowerConditional
	case *SequenceExpression:
		return BindingPowerSequence
	}
	return BindingPowerPrimary
}

// IsAllowedAsBareStatement reports whether the expression can start an
// expression statement without parentheses. Object literals, function and
// class expressions would be read as a block or a declaration.
func (e Expression) IsAllowedAsBareStatement() bool {
	switch e.Expr.(type) {
	case *ObjectExpression, *FunctionExpression, *ClassExpression:
		return false
	}
	return true
}
