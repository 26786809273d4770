package ast

type (
	// ExprHandler handles every expression of the kind it was registered
	// for. Tagged and untagged templates are both ExprTemplate.
	ExprHandler[C any] func(e Expression, span Span, ctx *C)

	StmtHandler[C any] func(s Statement, span Span, ctx *C)

	ReferenceHandler[C any] func(name Identifier, span Span, ctx *C)
)

// Registrar contributes handlers to a DynamicVisitor.
type Registrar[C any] interface {
	Register(d *DynamicVisitor[C])
}

// DynamicVisitor is a Visitor assembled at run time from handler tables
// keyed by node kind. Several handlers may be registered for one kind; they
// run in registration order. Unregistered kinds and events are no-ops.
//
// Since DynamicVisitor is itself a Visitor, Traverse walks it exactly like a
// static visitor.
type DynamicVisitor[C any] struct {
	exprs [exprKindCount][]ExprHandler[C]
	stmts [stmtKindCount][]StmtHandler[C]

	lists []func(list StatementList, ctx *C)
	enter []func(kind ScopeKind, ctx *C)
	leave []func(ctx *C)
	uses  []ReferenceHandler[C]
	decls []ReferenceHandler[C]
}

// NewDynamicVisitor returns an empty visitor with every registrar applied.
func NewDynamicVisitor[C any](rs ...Registrar[C]) *DynamicVisitor[C] {
	d := &DynamicVisitor[C]{}
	d.Use(rs...)
	return d
}

// Use lets each registrar add its handlers.
func (d *DynamicVisitor[C]) Use(rs ...Registrar[C]) {
	for _, r := range rs {
		r.Register(d)
	}
}

func (d *DynamicVisitor[C]) HandleExpression(kind ExprKind, h ExprHandler[C]) {
	d.exprs[kind] = append(d.exprs[kind], h)
}

func (d *DynamicVisitor[C]) HandleStatement(kind StmtKind, h StmtHandler[C]) {
	d.stmts[kind] = append(d.stmts[kind], h)
}

func (d *DynamicVisitor[C]) HandleStatementList(h func(list StatementList, ctx *C)) {
	d.lists = append(d.lists, h)
}

func (d *DynamicVisitor[C]) HandleEnterScope(h func(kind ScopeKind, ctx *C)) {
	d.enter = append(d.enter, h)
}

func (d *DynamicVisitor[C]) HandleLeaveScope(h func(ctx *C)) {
	d.leave = append(d.leave, h)
}

func (d *DynamicVisitor[C]) HandleReferenceUse(h ReferenceHandler[C]) {
	d.uses = append(d.uses, h)
}

func (d *DynamicVisitor[C]) HandleReferenceDeclaration(h ReferenceHandler[C]) {
	d.decls = append(d.decls, h)
}

// Kinds returns the expression kinds that have at least one handler, in
// kind order.
func (d *DynamicVisitor[C]) Kinds() []ExprKind {
	var kinds []ExprKind
	for k, hs := range d.exprs {
		if len(hs) > 0 {
			kinds = append(kinds, ExprKind(k))
		}
	}
	return kinds
}

// StatementKinds returns the statement kinds that have at least one handler.
func (d *DynamicVisitor[C]) StatementKinds() []StmtKind {
	var kinds []StmtKind
	for k, hs := range d.stmts {
		if len(hs) > 0 {
			kinds = append(kinds, StmtKind(k))
		}
	}
	return kinds
}

func (d *DynamicVisitor[C]) expr(kind ExprKind, e Expr, span Span, ctx *C) {
	for _, h := range d.exprs[kind] {
		h(Expression{e}, span, ctx)
	}
}

func (d *DynamicVisitor[C]) stmt(kind StmtKind, s Stmt, span Span, ctx *C) {
	for _, h := range d.stmts[kind] {
		h(Statement{s}, span, ctx)
	}
}

func (d *DynamicVisitor[C]) OnStatementList(list StatementList, ctx *C) {
	for _, h := range d.lists {
		h(list, ctx)
	}
}

func (d *DynamicVisitor[C]) OnEnterScope(kind ScopeKind, ctx *C) {
	for _, h := range d.enter {
		h(kind, ctx)
	}
}

func (d *DynamicVisitor[C]) OnLeaveScope(ctx *C) {
	for _, h := range d.leave {
		h(ctx)
	}
}

func (d *DynamicVisitor[C]) OnReferenceUse(name Identifier, span Span, ctx *C) {
	for _, h := range d.uses {
		h(name, span, ctx)
	}
}

func (d *DynamicVisitor[C]) OnReferenceDeclaration(name Identifier, span Span, ctx *C) {
	for _, h := range d.decls {
		h(name, span, ctx)
	}
}

func (d *DynamicVisitor[C]) OnThisExpression(n *ThisExpression, span Span, ctx *C) {
	d.expr(ExprThis, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnIdentifierExpression(n *IdentifierExpression, span Span, ctx *C) {
	d.expr(ExprIdentifier, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnLiteralExpression(n *Literal, span Span, ctx *C) {
	d.expr(ExprLiteral, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnSequenceExpression(n *SequenceExpression, span Span, ctx *C) {
	d.expr(ExprSequence, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnArrayExpression(n *ArrayExpression, span Span, ctx *C) {
	d.expr(ExprArray, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnMemberExpression(n *MemberExpression, span Span, ctx *C) {
	d.expr(ExprMember, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnComputedMemberExpression(n *ComputedMemberExpression, span Span, ctx *C) {
	d.expr(ExprComputedMember, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnCallExpression(n *CallExpression, span Span, ctx *C) {
	d.expr(ExprCall, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnBinaryExpression(n *BinaryExpression, span Span, ctx *C) {
	d.expr(ExprBinary, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnPrefixExpression(n *PrefixExpression, span Span, ctx *C) {
	d.expr(ExprPrefix, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnPostfixExpression(n *PostfixExpression, span Span, ctx *C) {
	d.expr(ExprPostfix, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnConditionalExpression(n *ConditionalExpression, span Span, ctx *C) {
	d.expr(ExprConditional, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnTemplateLiteral(n *TemplateExpression, span Span, ctx *C) {
	d.expr(ExprTemplate, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnTaggedTemplateExpression(n *TemplateExpression, span Span, ctx *C) {
	d.expr(ExprTemplate, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnSpreadExpression(n *SpreadExpression, span Span, ctx *C) {
	d.expr(ExprSpread, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnArrowExpression(n *ArrowExpression, span Span, ctx *C) {
	d.expr(ExprArrow, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnObjectExpression(n *ObjectExpression, span Span, ctx *C) {
	d.expr(ExprObject, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnFunctionExpression(n *FunctionExpression, span Span, ctx *C) {
	d.expr(ExprFunction, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnClassExpression(n *ClassExpression, span Span, ctx *C) {
	d.expr(ExprClass, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnEmptyStatement(n *EmptyStatement, span Span, ctx *C) {
	d.stmt(StmtEmpty, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnExpressionStatement(n *ExpressionStatement, span Span, ctx *C) {
	d.stmt(StmtExpression, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnDeclarationStatement(n *DeclarationStatement, span Span, ctx *C) {
	d.stmt(StmtDeclaration, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnReturnStatement(n *ReturnStatement, span Span, ctx *C) {
	d.stmt(StmtReturn, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnBreakStatement(n *BreakStatement, span Span, ctx *C) {
	d.stmt(StmtBreak, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnContinueStatement(n *ContinueStatement, span Span, ctx *C) {
	d.stmt(StmtContinue, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnThrowStatement(n *ThrowStatement, span Span, ctx *C) {
	d.stmt(StmtThrow, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnIfStatement(n *IfStatement, span Span, ctx *C) {
	d.stmt(StmtIf, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnWhileStatement(n *WhileStatement, span Span, ctx *C) {
	d.stmt(StmtWhile, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnDoStatement(n *DoStatement, span Span, ctx *C) {
	d.stmt(StmtDo, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnForStatement(n *ForStatement, span Span, ctx *C) {
	d.stmt(StmtFor, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnForInStatement(n *ForInStatement, span Span, ctx *C) {
	d.stmt(StmtForIn, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnForOfStatement(n *ForOfStatement, span Span, ctx *C) {
	d.stmt(StmtForOf, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnTryStatement(n *TryStatement, span Span, ctx *C) {
	d.stmt(StmtTry, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnBlockStatement(n *BlockStatement, span Span, ctx *C) {
	d.stmt(StmtBlock, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnLabeledStatement(n *LabeledStatement, span Span, ctx *C) {
	d.stmt(StmtLabeled, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnSwitchStatement(n *SwitchStatement, span Span, ctx *C) {
	d.stmt(StmtSwitch, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnFunctionStatement(n *FunctionStatement, span Span, ctx *C) {
	d.stmt(StmtFunction, n, span, ctx)
}

func (d *DynamicVisitor[C]) OnClassStatement(n *ClassStatement, span Span, ctx *C) {
	d.stmt(StmtClass, n, span, ctx)
}
