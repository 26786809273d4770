package ast

import (
	"errors"

	"github.com/t14raptor/go-ratel/token"
)

// ErrTemplateShape is returned when a template literal does not have exactly
// one more quasi than substitutions.
var ErrTemplateShape = errors.New("ast: template needs one more quasi than expressions")

var (
	errorExpression = &ErrorExpression{}
	voidExpression  = &VoidExpression{}
	thisExpression  = &ThisExpression{}
	errorStatement  = &ErrorStatement{}
	emptyStatement  = &EmptyStatement{}
	voidPattern     = &VoidPattern{}
	errorMember     = &ErrorMember{}
)

// Builder creates nodes in an arena. Every node it creates gets the
// builder's current range; At returns a builder positioned elsewhere.
// Builder is a small value and is meant to be copied.
type Builder struct {
	a          *Arena
	start, end Idx
}

// NewBuilder returns a builder allocating in a.
func NewBuilder(a *Arena) Builder {
	return Builder{a: a}
}

// Arena returns the arena nodes are allocated in.
func (b Builder) Arena() *Arena { return b.a }

// At returns a copy of the builder that locates new nodes at [start, end).
func (b Builder) At(start, end Idx) Builder {
	b.start, b.end = start, end
	return b
}

func (b Builder) expr(e Expr) ExpressionNode {
	return NewNode(b.a, b.start, b.end, Expression{e})
}

func (b Builder) stmt(s Stmt) StatementNode {
	return NewNode(b.a, b.start, b.end, Statement{s})
}

func (b Builder) pat(p Pat) PatternNode {
	return NewNode(b.a, b.start, b.end, Pattern{p})
}

// Name returns a located identifier, or the nil handle for "".
func (b Builder) Name(name string) IdentifierNode {
	if name == "" {
		return IdentifierNode{}
	}
	return Alloc(b.a, Loc[Identifier]{Start: b.start, End: b.end, Item: Identifier(name)})
}

func (b Builder) Expressions(items ...ExpressionNode) ExpressionList {
	return AllocNodes(b.a, items...)
}

func (b Builder) Statements(items ...StatementNode) StatementList {
	return AllocNodes(b.a, items...)
}

func (b Builder) Patterns(items ...PatternNode) PatternList {
	return AllocNodes(b.a, items...)
}

// Body returns a braced statement list.
func (b Builder) Body(stmts ...StatementNode) StatementBlock {
	return Alloc(b.a, Loc[Block[Statement]]{Start: b.start, End: b.end, Item: Block[Statement]{Body: b.Statements(stmts...)}})
}

// Module returns a module owning the builder's arena.
func (b Builder) Module(stmts ...StatementNode) *Module {
	return NewModule(b.a, b.Statements(stmts...))
}

// Expressions.

func (b Builder) ErrorExpr() ExpressionNode { return b.expr(errorExpression) }
func (b Builder) VoidExpr() ExpressionNode  { return b.expr(voidExpression) }
func (b Builder) This() ExpressionNode      { return b.expr(thisExpression) }

func (b Builder) Ident(name string) ExpressionNode {
	return b.expr(place(b.a, IdentifierExpression{Name: Identifier(name)}))
}

func (b Builder) Lit(kind LiteralKind, raw string) ExpressionNode {
	return b.expr(place(b.a, Literal{Kind: kind, Raw: raw}))
}

func (b Builder) Number(raw string) ExpressionNode { return b.Lit(LiteralNumber, raw) }
func (b Builder) Str(raw string) ExpressionNode    { return b.Lit(LiteralString, raw) }

func (b Builder) Sequence(items ...ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, SequenceExpression{Body: b.Expressions(items...)}))
}

func (b Builder) Array(items ...ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, ArrayExpression{Body: b.Expressions(items...)}))
}

func (b Builder) Member(object ExpressionNode, property string) ExpressionNode {
	return b.expr(place(b.a, MemberExpression{Object: object, Property: b.Name(property)}))
}

func (b Builder) ComputedMember(object, property ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, ComputedMemberExpression{Object: object, Property: property}))
}

func (b Builder) Call(callee ExpressionNode, args ...ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, CallExpression{Callee: callee, Arguments: b.Expressions(args...)}))
}

func (b Builder) Binary(op token.Token, left, right ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, BinaryExpression{Operator: op, Left: left, Right: right}))
}

func (b Builder) Prefix(op token.Token, operand ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, PrefixExpression{Operator: op, Operand: operand}))
}

func (b Builder) Postfix(op token.Token, operand ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, PostfixExpression{Operator: op, Operand: operand}))
}

func (b Builder) Conditional(test, consequent, alternate ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}))
}

// Template returns a template literal, tagged unless tag is nil. The quasis
// are the cooked string segments around the substitutions.
func (b Builder) Template(tag ExpressionNode, quasis []string, exprs ...ExpressionNode) (ExpressionNode, error) {
	if len(quasis) != len(exprs)+1 {
		return ExpressionNode{}, ErrTemplateShape
	}
	locs := make([]Loc[string], len(quasis))
	for i, q := range quasis {
		locs[i] = Loc[string]{Start: b.start, End: b.end, Item: q}
	}
	return b.expr(place(b.a, TemplateExpression{
		Tag:         tag,
		Expressions: b.Expressions(exprs...),
		Quasis:      AllocList(b.a, locs...),
	})), nil
}

func (b Builder) Spread(argument ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, SpreadExpression{Argument: argument}))
}

// Arrow returns an arrow function with an expression body.
func (b Builder) Arrow(params []PatternNode, body ExpressionNode) ExpressionNode {
	return b.expr(place(b.a, ArrowExpression{Params: b.Patterns(params...), Body: ArrowBody{Expression: body}}))
}

// ArrowBlock returns an arrow function with a statement body.
func (b Builder) ArrowBlock(params []PatternNode, body ...StatementNode) ExpressionNode {
	return b.expr(place(b.a, ArrowExpression{Params: b.Patterns(params...), Body: ArrowBody{Block: b.Body(body...)}}))
}

func (b Builder) Object(props ...PropertyNode) ExpressionNode {
	return b.expr(place(b.a, ObjectExpression{Body: AllocNodes(b.a, props...)}))
}

// FunctionExpr returns a function expression; name may be empty.
func (b Builder) FunctionExpr(name string, params []PatternNode, body ...StatementNode) ExpressionNode {
	return b.expr(place(b.a, FunctionExpression{Function[OptionalName]{
		Name:   OptionalName{Ident: b.Name(name)},
		Params: b.Patterns(params...),
		Body:   b.Body(body...),
	}}))
}

// ClassExpr returns a class expression; name may be empty and extends nil.
func (b Builder) ClassExpr(name string, extends ExpressionNode, members ...ClassMemberNode) ExpressionNode {
	return b.expr(place(b.a, ClassExpression{Class[OptionalName]{
		Name:    OptionalName{Ident: b.Name(name)},
		Extends: extends,
		Body:    b.classBody(members),
	}}))
}

// Properties and keys.

func (b Builder) Shorthand(name string) PropertyNode {
	return NewNode(b.a, b.start, b.end, Property{place(b.a, ShorthandProperty{Name: Identifier(name)})})
}

func (b Builder) KeyValue(key PropertyKeyNode, value ExpressionNode) PropertyNode {
	return NewNode(b.a, b.start, b.end, Property{place(b.a, LiteralProperty{Key: key, Value: value})})
}

func (b Builder) Method(key PropertyKeyNode, params []PatternNode, body ...StatementNode) PropertyNode {
	return NewNode(b.a, b.start, b.end, Property{place(b.a, MethodProperty{Key: key, Value: b.method(params, body)})})
}

func (b Builder) Key(name string) PropertyKeyNode {
	return NewNode(b.a, b.start, b.end, PropertyKey{place(b.a, LiteralKey{Name: name})})
}

func (b Builder) NumericKey(raw string) PropertyKeyNode {
	return NewNode(b.a, b.start, b.end, PropertyKey{place(b.a, BinaryKey{Raw: raw})})
}

func (b Builder) ComputedKey(e ExpressionNode) PropertyKeyNode {
	return NewNode(b.a, b.start, b.end, PropertyKey{place(b.a, ComputedKey{Expression: e})})
}

func (b Builder) method(params []PatternNode, body []StatementNode) Ptr[Function[EmptyName]] {
	return Alloc(b.a, Function[EmptyName]{Params: b.Patterns(params...), Body: b.Body(body...)})
}

// Patterns.

func (b Builder) VoidPat() PatternNode { return b.pat(voidPattern) }

func (b Builder) IdentPat(name string) PatternNode {
	return b.pat(place(b.a, IdentifierPattern{Name: Identifier(name)}))
}

func (b Builder) ObjectPat(props ...PatternProperty) PatternNode {
	return b.pat(place(b.a, ObjectPattern{Properties: AllocList(b.a, props...)}))
}

// PatProp returns the object pattern entry key: value.
func (b Builder) PatProp(key PropertyKeyNode, value PatternNode) PatternProperty {
	return PatternProperty{Key: key, Value: value}
}

// ShorthandPat returns the object pattern entry { name }.
func (b Builder) ShorthandPat(name string) PatternProperty {
	return PatternProperty{Key: b.Key(name), Value: b.IdentPat(name), Shorthand: true}
}

func (b Builder) ArrayPat(elements ...PatternNode) PatternNode {
	return b.pat(place(b.a, ArrayPattern{Elements: b.Patterns(elements...)}))
}

func (b Builder) Rest(argument PatternNode) PatternNode {
	return b.pat(place(b.a, RestElement{Argument: argument}))
}

func (b Builder) Default(left PatternNode, right ExpressionNode) PatternNode {
	return b.pat(place(b.a, AssignmentPattern{Left: left, Right: right}))
}

// Statements.

func (b Builder) ErrorStmt() StatementNode { return b.stmt(errorStatement) }
func (b Builder) Empty() StatementNode     { return b.stmt(emptyStatement) }

func (b Builder) ExprStmt(e ExpressionNode) StatementNode {
	return b.stmt(place(b.a, ExpressionStatement{Expression: e}))
}

func (b Builder) Declare(kind DeclarationKind, decls ...DeclaratorNode) StatementNode {
	return b.stmt(place(b.a, DeclarationStatement{Kind: kind, Declarators: AllocNodes(b.a, decls...)}))
}

func (b Builder) Declarator(id PatternNode, init ExpressionNode) DeclaratorNode {
	return NewNode(b.a, b.start, b.end, Declarator{ID: id, Init: init})
}

// Var declares a single name: kind name = init. init may be nil.
func (b Builder) Var(kind DeclarationKind, name string, init ExpressionNode) StatementNode {
	return b.Declare(kind, b.Declarator(b.IdentPat(name), init))
}

func (b Builder) Return(value ExpressionNode) StatementNode {
	return b.stmt(place(b.a, ReturnStatement{Value: value}))
}

func (b Builder) Break(label string) StatementNode {
	return b.stmt(place(b.a, BreakStatement{Label: b.Name(label)}))
}

func (b Builder) Continue(label string) StatementNode {
	return b.stmt(place(b.a, ContinueStatement{Label: b.Name(label)}))
}

func (b Builder) Throw(value ExpressionNode) StatementNode {
	return b.stmt(place(b.a, ThrowStatement{Value: value}))
}

func (b Builder) If(test ExpressionNode, consequent, alternate StatementNode) StatementNode {
	return b.stmt(place(b.a, IfStatement{Test: test, Consequent: consequent, Alternate: alternate}))
}

func (b Builder) While(test ExpressionNode, body StatementNode) StatementNode {
	return b.stmt(place(b.a, WhileStatement{Test: test, Body: body}))
}

func (b Builder) Do(body StatementNode, test ExpressionNode) StatementNode {
	return b.stmt(place(b.a, DoStatement{Body: body, Test: test}))
}

func (b Builder) For(init StatementNode, test, update ExpressionNode, body StatementNode) StatementNode {
	return b.stmt(place(b.a, ForStatement{Init: init, Test: test, Update: update, Body: body}))
}

func (b Builder) ForIn(left StatementNode, right ExpressionNode, body StatementNode) StatementNode {
	return b.stmt(place(b.a, ForInStatement{Left: left, Right: right, Body: body}))
}

func (b Builder) ForOf(left StatementNode, right ExpressionNode, body StatementNode) StatementNode {
	return b.stmt(place(b.a, ForOfStatement{Left: left, Right: right, Body: body}))
}

// Try returns a try statement. handler and finalizer may be nil, but not
// both.
func (b Builder) Try(block StatementBlock, handler Ptr[Loc[CatchClause]], finalizer StatementBlock) StatementNode {
	return b.stmt(place(b.a, TryStatement{Block: block, Handler: handler, Finalizer: finalizer}))
}

// Catch returns a catch clause; param may be nil.
func (b Builder) Catch(param PatternNode, body ...StatementNode) Ptr[Loc[CatchClause]] {
	return Alloc(b.a, Loc[CatchClause]{Start: b.start, End: b.end, Item: CatchClause{Param: param, Body: b.Body(body...)}})
}

func (b Builder) Block(stmts ...StatementNode) StatementNode {
	return b.stmt(place(b.a, BlockStatement{Body: b.Statements(stmts...)}))
}

func (b Builder) Labeled(label string, body StatementNode) StatementNode {
	return b.stmt(place(b.a, LabeledStatement{Label: b.Name(label), Body: body}))
}

func (b Builder) Switch(discriminant ExpressionNode, cases ...SwitchCaseNode) StatementNode {
	return b.stmt(place(b.a, SwitchStatement{Discriminant: discriminant, Cases: AllocNodes(b.a, cases...)}))
}

// Case returns a switch case; a nil test makes it the default clause.
func (b Builder) Case(test ExpressionNode, consequent ...StatementNode) SwitchCaseNode {
	return NewNode(b.a, b.start, b.end, SwitchCase{Test: test, Consequent: b.Statements(consequent...)})
}

func (b Builder) FunctionDecl(name string, params []PatternNode, body ...StatementNode) StatementNode {
	return b.stmt(place(b.a, FunctionStatement{Function[MandatoryName]{
		Name:   MandatoryName{Ident: b.Name(name)},
		Params: b.Patterns(params...),
		Body:   b.Body(body...),
	}}))
}

func (b Builder) ClassDecl(name string, extends ExpressionNode, members ...ClassMemberNode) StatementNode {
	return b.stmt(place(b.a, ClassStatement{Class[MandatoryName]{
		Name:    MandatoryName{Ident: b.Name(name)},
		Extends: extends,
		Body:    b.classBody(members),
	}}))
}

// Class members.

func (b Builder) classBody(members []ClassMemberNode) ClassBody {
	return Alloc(b.a, Loc[Block[ClassMember]]{Start: b.start, End: b.end, Item: Block[ClassMember]{Body: AllocNodes(b.a, members...)}})
}

func (b Builder) ErrorMember() ClassMemberNode {
	return NewNode(b.a, b.start, b.end, ClassMember{errorMember})
}

func (b Builder) MethodMember(static bool, kind MethodKind, key PropertyKeyNode, params []PatternNode, body ...StatementNode) ClassMemberNode {
	return NewNode(b.a, b.start, b.end, ClassMember{place(b.a, MethodMember{Static: static, Kind: kind, Key: key, Value: b.method(params, body)})})
}

func (b Builder) Field(static bool, key PropertyKeyNode, value ExpressionNode) ClassMemberNode {
	return NewNode(b.a, b.start, b.end, ClassMember{place(b.a, ValueMember{Static: static, Key: key, Value: value})})
}
