package ast

import (
	"iter"

	"github.com/t14raptor/go-ratel/token"
)

// ExprKind is the discriminant of an Expression.
type ExprKind uint8

const (
	ExprError ExprKind = iota
	ExprVoid
	ExprThis
	ExprIdentifier
	ExprLiteral
	ExprSequence
	ExprArray
	ExprMember
	ExprComputedMember
	ExprCall
	ExprBinary
	ExprPrefix
	ExprPostfix
	ExprConditional
	ExprTemplate
	ExprSpread
	ExprArrow
	ExprObject
	ExprFunction
	ExprClass

	exprKindCount
)

var exprKindNames = [...]string{
	ExprError:          "Error",
	ExprVoid:           "Void",
	ExprThis:           "This",
	ExprIdentifier:     "Identifier",
	ExprLiteral:        "Literal",
	ExprSequence:       "Sequence",
	ExprArray:          "Array",
	ExprMember:         "Member",
	ExprComputedMember: "ComputedMember",
	ExprCall:           "Call",
	ExprBinary:         "Binary",
	ExprPrefix:         "Prefix",
	ExprPostfix:        "Postfix",
	ExprConditional:    "Conditional",
	ExprTemplate:       "Template",
	ExprSpread:         "Spread",
	ExprArrow:          "Arrow",
	ExprObject:         "Object",
	ExprFunction:       "Function",
	ExprClass:          "Class",
}

func (k ExprKind) String() string {
	if k < exprKindCount {
		return exprKindNames[k]
	}
	return "ExprKind(?)"
}

type (
	// Identifier is a name as it appears in source.
	Identifier string

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr
	}

	// All expression payloads implement the Expr interface.
	Expr interface {
		exprKind() ExprKind
	}

	// ErrorExpression marks a syntactically broken expression.
	ErrorExpression struct{}

	// VoidExpression marks an elided expression, e.g. a hole in [a, , b].
	VoidExpression struct{}

	ThisExpression struct{}

	IdentifierExpression struct {
		Name Identifier
	}

	SequenceExpression struct {
		Body ExpressionList
	}

	ArrayExpression struct {
		Body ExpressionList
	}

	// MemberExpression is a dotted access: object.property.
	MemberExpression struct {
		Object   ExpressionNode
		Property IdentifierNode
	}

	// ComputedMemberExpression is a bracket access: object[property].
	ComputedMemberExpression struct {
		Object   ExpressionNode
		Property ExpressionNode
	}

	CallExpression struct {
		Callee    ExpressionNode
		Arguments ExpressionList
	}

	BinaryExpression struct {
		Operator token.Token
		Left     ExpressionNode
		Right    ExpressionNode
	}

	PrefixExpression struct {
		Operator token.Token
		Operand  ExpressionNode
	}

	PostfixExpression struct {
		Operator token.Token
		Operand  ExpressionNode
	}

	ConditionalExpression struct {
		Test       ExpressionNode
		Consequent ExpressionNode
		Alternate  ExpressionNode
	}

	// TemplateExpression is a template literal, tagged when Tag is set.
	// Quasis always hold one more element than Expressions.
	TemplateExpression struct {
		Tag         ExpressionNode
		Expressions ExpressionList
		Quasis      List[Loc[string]]
	}

	SpreadExpression struct {
		Argument ExpressionNode
	}

	// ArrowBody holds exactly one of Expression and Block.
	ArrowBody struct {
		Expression ExpressionNode
		Block      StatementBlock
	}

	ArrowExpression struct {
		Params PatternList
		Body   ArrowBody
	}

	ObjectExpression struct {
		Body PropertyList
	}

	FunctionExpression struct {
		Function[OptionalName]
	}

	ClassExpression struct {
		Class[OptionalName]
	}
)

// Kind returns the discriminant. A zero Expression is Void.
func (e Expression) Kind() ExprKind {
	if e.Expr == nil {
		return ExprVoid
	}
	return e.Expr.exprKind()
}

// IsBlock reports whether the arrow has a statement body.
func (b ArrowBody) IsBlock() bool { return !b.Block.IsNil() }

// TemplateElement is a quasi of a template literal together with its
// position among the quasis.
type TemplateElement struct {
	Loc[string]
	Tail bool
}

// Elements iterates over the quasis; only the last one is the tail.
func (t *TemplateExpression) Elements() iter.Seq[TemplateElement] {
	return func(yield func(TemplateElement) bool) {
		n := t.Quasis.Len()
		for i, q := range t.Quasis.All() {
			if !yield(TemplateElement{Loc: q, Tail: i == n-1}) {
				return
			}
		}
	}
}

// Validate checks that quasis and substitutions interleave.
func (t *TemplateExpression) Validate() error {
	if t.Quasis.Len() != t.Expressions.Len()+1 {
		return ErrTemplateShape
	}
	return nil
}

func (*ErrorExpression) exprKind() ExprKind          { return ExprError }
func (*VoidExpression) exprKind() ExprKind           { return ExprVoid }
func (*ThisExpression) exprKind() ExprKind           { return ExprThis }
func (*IdentifierExpression) exprKind() ExprKind     { return ExprIdentifier }
func (*Literal) exprKind() ExprKind                  { return ExprLiteral }
func (*SequenceExpression) exprKind() ExprKind       { return ExprSequence }
func (*ArrayExpression) exprKind() ExprKind          { return ExprArray }
func (*MemberExpression) exprKind() ExprKind         { return ExprMember }
func (*ComputedMemberExpression) exprKind() ExprKind { return ExprComputedMember }
func (*CallExpression) exprKind() ExprKind           { return ExprCall }
func (*BinaryExpression) exprKind() ExprKind         { return ExprBinary }
func (*PrefixExpression) exprKind() ExprKind         { return ExprPrefix }
func (*PostfixExpression) exprKind() ExprKind        { return ExprPostfix }
func (*ConditionalExpression) exprKind() ExprKind    { return ExprConditional }
func (*TemplateExpression) exprKind() ExprKind       { return ExprTemplate }
func (*SpreadExpression) exprKind() ExprKind         { return ExprSpread }
func (*ArrowExpression) exprKind() ExprKind          { return ExprArrow }
func (*ObjectExpression) exprKind() ExprKind         { return ExprObject }
func (*FunctionExpression) exprKind() ExprKind       { return ExprFunction }
func (*ClassExpression) exprKind() ExprKind          { return ExprClass }
