package ast

type (
	// Property is a member of an object literal.
	Property struct {
		Prop
	}

	Prop interface {
		_property()
	}

	// ShorthandProperty is { name }.
	ShorthandProperty struct {
		Name Identifier
	}

	// LiteralProperty is { key: value }.
	LiteralProperty struct {
		Key   PropertyKeyNode
		Value ExpressionNode
	}

	// MethodProperty is { key() {} }.
	MethodProperty struct {
		Key   PropertyKeyNode
		Value Ptr[Function[EmptyName]]
	}

	PropertyKey struct {
		Key
	}

	Key interface {
		_propertyKey()
	}

	// ComputedKey is [expression].
	ComputedKey struct {
		Expression ExpressionNode
	}

	// LiteralKey is a name or string key.
	LiteralKey struct {
		Name string
	}

	// BinaryKey is a numeric key, kept as written.
	BinaryKey struct {
		Raw string
	}
)

func (*ShorthandProperty) _property() {}
func (*LiteralProperty) _property()   {}
func (*MethodProperty) _property()    {}

func (*ComputedKey) _propertyKey() {}
func (*LiteralKey) _propertyKey()  {}
func (*BinaryKey) _propertyKey()   {}
