package ast

type (
	// Name is the set of name slots a function or class can have. Methods
	// have none, expressions may have one, declarations must have one.
	Name interface {
		EmptyName | OptionalName | MandatoryName
	}

	EmptyName struct{}

	// OptionalName holds a nil Ident when the expression is anonymous.
	OptionalName struct {
		Ident IdentifierNode
	}

	MandatoryName struct {
		Ident IdentifierNode
	}

	// Block is a braced list of nodes.
	Block[T any] struct {
		Body NodeList[T]
	}

	StatementBlock = Ptr[Loc[Block[Statement]]]
	ClassBody      = Ptr[Loc[Block[ClassMember]]]

	Function[N Name] struct {
		Name      N
		Generator bool
		Async     bool
		Params    PatternList
		Body      StatementBlock
	}

	Class[N Name] struct {
		Name    N
		Extends ExpressionNode
		Body    ClassBody
	}

	MethodKind uint8

	ClassMember struct {
		Member
	}

	Member interface {
		_classMember()
	}

	// ErrorMember marks a class member that failed to parse.
	ErrorMember struct{}

	MethodMember struct {
		Static bool
		Kind   MethodKind
		Key    PropertyKeyNode
		Value  Ptr[Function[EmptyName]]
	}

	// ValueMember is a class field: key = value.
	ValueMember struct {
		Static bool
		Key    PropertyKeyNode
		Value  ExpressionNode
	}
)

const (
	MethodConstructor MethodKind = iota
	MethodMethod
	MethodGet
	MethodSet
)

func (*ErrorMember) _classMember()  {}
func (*MethodMember) _classMember() {}
func (*ValueMember) _classMember()  {}

// NameOf returns the identifier held by a name slot, or a nil handle.
func NameOf[N Name](n N) IdentifierNode {
	switch n := any(n).(type) {
	case OptionalName:
		return n.Ident
	case MandatoryName:
		return n.Ident
	}
	return IdentifierNode{}
}
