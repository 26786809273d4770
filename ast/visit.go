package ast

// ScopeKind tags the lexical scope a construct introduces.
type ScopeKind uint8

const (
	ScopeFunction ScopeKind = iota
	ScopeBlock
)

func (k ScopeKind) String() string {
	if k == ScopeFunction {
		return "Function"
	}
	return "Block"
}

// Visitor receives callbacks from Traverse. Every callback gets the node's
// payload, its source range and the traversal context. A node's callback
// runs before any of its children are visited.
//
// Callbacks cannot stop the walk. A visitor that wants to stop records it in
// ctx and ignores the remaining callbacks.
type Visitor[C any] interface {
	// OnStatementList runs when a statement sequence is entered: the module
	// body, a block body, a function body or a switch case.
	OnStatementList(list StatementList, ctx *C)
	OnEnterScope(kind ScopeKind, ctx *C)
	OnLeaveScope(ctx *C)
	OnReferenceUse(name Identifier, span Span, ctx *C)
	OnReferenceDeclaration(name Identifier, span Span, ctx *C)

	OnThisExpression(n *ThisExpression, span Span, ctx *C)
	OnIdentifierExpression(n *IdentifierExpression, span Span, ctx *C)
	OnLiteralExpression(n *Literal, span Span, ctx *C)
	OnSequenceExpression(n *SequenceExpression, span Span, ctx *C)
	OnArrayExpression(n *ArrayExpression, span Span, ctx *C)
	OnMemberExpression(n *MemberExpression, span Span, ctx *C)
	OnComputedMemberExpression(n *ComputedMemberExpression, span Span, ctx *C)
	OnCallExpression(n *CallExpression, span Span, ctx *C)
	OnBinaryExpression(n *BinaryExpression, span Span, ctx *C)
	OnPrefixExpression(n *PrefixExpression, span Span, ctx *C)
	OnPostfixExpression(n *PostfixExpression, span Span, ctx *C)
	OnConditionalExpression(n *ConditionalExpression, span Span, ctx *C)
	OnTemplateLiteral(n *TemplateExpression, span Span, ctx *C)
	OnTaggedTemplateExpression(n *TemplateExpression, span Span, ctx *C)
	OnSpreadExpression(n *SpreadExpression, span Span, ctx *C)
	OnArrowExpression(n *ArrowExpression, span Span, ctx *C)
	OnObjectExpression(n *ObjectExpression, span Span, ctx *C)
	OnFunctionExpression(n *FunctionExpression, span Span, ctx *C)
	OnClassExpression(n *ClassExpression, span Span, ctx *C)

	OnEmptyStatement(n *EmptyStatement, span Span, ctx *C)
	OnExpressionStatement(n *ExpressionStatement, span Span, ctx *C)
	OnDeclarationStatement(n *DeclarationStatement, span Span, ctx *C)
	OnReturnStatement(n *ReturnStatement, span Span, ctx *C)
	OnBreakStatement(n *BreakStatement, span Span, ctx *C)
	OnContinueStatement(n *ContinueStatement, span Span, ctx *C)
	OnThrowStatement(n *ThrowStatement, span Span, ctx *C)
	OnIfStatement(n *IfStatement, span Span, ctx *C)
	OnWhileStatement(n *WhileStatement, span Span, ctx *C)
	OnDoStatement(n *DoStatement, span Span, ctx *C)
	OnForStatement(n *ForStatement, span Span, ctx *C)
	OnForInStatement(n *ForInStatement, span Span, ctx *C)
	OnForOfStatement(n *ForOfStatement, span Span, ctx *C)
	OnTryStatement(n *TryStatement, span Span, ctx *C)
	OnBlockStatement(n *BlockStatement, span Span, ctx *C)
	OnLabeledStatement(n *LabeledStatement, span Span, ctx *C)
	OnSwitchStatement(n *SwitchStatement, span Span, ctx *C)
	OnFunctionStatement(n *FunctionStatement, span Span, ctx *C)
	OnClassStatement(n *ClassStatement, span Span, ctx *C)
}

// NoopVisitor implements every callback as a no-op. Embed it and override
// the callbacks of interest.
type NoopVisitor[C any] struct{}

func (NoopVisitor[C]) OnStatementList(StatementList, *C)              {}
func (NoopVisitor[C]) OnEnterScope(ScopeKind, *C)                     {}
func (NoopVisitor[C]) OnLeaveScope(*C)                                {}
func (NoopVisitor[C]) OnReferenceUse(Identifier, Span, *C)            {}
func (NoopVisitor[C]) OnReferenceDeclaration(Identifier, Span, *C)    {}
func (NoopVisitor[C]) OnThisExpression(*ThisExpression, Span, *C)     {}
func (NoopVisitor[C]) OnLiteralExpression(*Literal, Span, *C)         {}
func (NoopVisitor[C]) OnArrayExpression(*ArrayExpression, Span, *C)   {}
func (NoopVisitor[C]) OnCallExpression(*CallExpression, Span, *C)     {}
func (NoopVisitor[C]) OnSpreadExpression(*SpreadExpression, Span, *C) {}
func (NoopVisitor[C]) OnArrowExpression(*ArrowExpression, Span, *C)   {}
func (NoopVisitor[C]) OnClassExpression(*ClassExpression, Span, *C)   {}

func (NoopVisitor[C]) OnIdentifierExpression(*IdentifierExpression, Span, *C)         {}
func (NoopVisitor[C]) OnSequenceExpression(*SequenceExpression, Span, *C)             {}
func (NoopVisitor[C]) OnMemberExpression(*MemberExpression, Span, *C)                 {}
func (NoopVisitor[C]) OnComputedMemberExpression(*ComputedMemberExpression, Span, *C) {}
func (NoopVisitor[C]) OnBinaryExpression(*BinaryExpression, Span, *C)                 {}
func (NoopVisitor[C]) OnPrefixExpression(*PrefixExpression, Span, *C)                 {}
func (NoopVisitor[C]) OnPostfixExpression(*PostfixExpression, Span, *C)               {}
func (NoopVisitor[C]) OnConditionalExpression(*ConditionalExpression, Span, *C)       {}
func (NoopVisitor[C]) OnTemplateLiteral(*TemplateExpression, Span, *C)                {}
func (NoopVisitor[C]) OnTaggedTemplateExpression(*TemplateExpression, Span, *C)       {}
func (NoopVisitor[C]) OnObjectExpression(*ObjectExpression, Span, *C)                 {}
func (NoopVisitor[C]) OnFunctionExpression(*FunctionExpression, Span, *C)             {}

func (NoopVisitor[C]) OnEmptyStatement(*EmptyStatement, Span, *C)             {}
func (NoopVisitor[C]) OnExpressionStatement(*ExpressionStatement, Span, *C)   {}
func (NoopVisitor[C]) OnDeclarationStatement(*DeclarationStatement, Span, *C) {}
func (NoopVisitor[C]) OnReturnStatement(*ReturnStatement, Span, *C)           {}
func (NoopVisitor[C]) OnBreakStatement(*BreakStatement, Span, *C)             {}
func (NoopVisitor[C]) OnContinueStatement(*ContinueStatement, Span, *C)       {}
func (NoopVisitor[C]) OnThrowStatement(*ThrowStatement, Span, *C)             {}
func (NoopVisitor[C]) OnIfStatement(*IfStatement, Span, *C)                   {}
func (NoopVisitor[C]) OnWhileStatement(*WhileStatement, Span, *C)             {}
func (NoopVisitor[C]) OnDoStatement(*DoStatement, Span, *C)                   {}
func (NoopVisitor[C]) OnForStatement(*ForStatement, Span, *C)                 {}
func (NoopVisitor[C]) OnForInStatement(*ForInStatement, Span, *C)             {}
func (NoopVisitor[C]) OnForOfStatement(*ForOfStatement, Span, *C)             {}
func (NoopVisitor[C]) OnTryStatement(*TryStatement, Span, *C)                 {}
func (NoopVisitor[C]) OnBlockStatement(*BlockStatement, Span, *C)             {}
func (NoopVisitor[C]) OnLabeledStatement(*LabeledStatement, Span, *C)         {}
func (NoopVisitor[C]) OnSwitchStatement(*SwitchStatement, Span, *C)           {}
func (NoopVisitor[C]) OnFunctionStatement(*FunctionStatement, Span, *C)       {}
func (NoopVisitor[C]) OnClassStatement(*ClassStatement, Span, *C)             {}
