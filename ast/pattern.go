package ast

type PatKind uint8

const (
	PatVoid PatKind = iota
	PatIdentifier
	PatObject
	PatArray
	PatRest
	PatAssignment
)

type (
	// Pattern is a destructuring or binding target.
	Pattern struct {
		Pat
	}

	Pat interface {
		patKind() PatKind
	}

	// VoidPattern marks an elided or broken binding target.
	VoidPattern struct{}

	IdentifierPattern struct {
		Name Identifier
	}

	ObjectPattern struct {
		Properties List[PatternProperty]
	}

	// PatternProperty is one entry of an object pattern. A shorthand entry
	// ({ a }) has an identifier Value named after its key.
	PatternProperty struct {
		Key       PropertyKeyNode
		Value     PatternNode
		Shorthand bool
	}

	ArrayPattern struct {
		Elements PatternList
	}

	RestElement struct {
		Argument PatternNode
	}

	// AssignmentPattern is a target with a default value: left = right.
	AssignmentPattern struct {
		Left  PatternNode
		Right ExpressionNode
	}
)

// Kind returns the discriminant. A zero Pattern is Void.
func (p Pattern) Kind() PatKind {
	if p.Pat == nil {
		return PatVoid
	}
	return p.Pat.patKind()
}

func (*VoidPattern) patKind() PatKind       { return PatVoid }
func (*IdentifierPattern) patKind() PatKind { return PatIdentifier }
func (*ObjectPattern) patKind() PatKind     { return PatObject }
func (*ArrayPattern) patKind() PatKind      { return PatArray }
func (*RestElement) patKind() PatKind       { return PatRest }
func (*AssignmentPattern) patKind() PatKind { return PatAssignment }
