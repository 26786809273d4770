package ast

// Visitable is implemented by the types a traversal can start from: a
// Module, a Node and a NodeList. The payload unions are deliberately not
// Visitable; they are only reached through the node that locates them.
type Visitable interface {
	accept(d dispatcher)
}

// dispatcher is the set of entry points a Visitable can route to.
type dispatcher interface {
	module(m *Module)
	statement(n StatementNode)
	statementList(l StatementList)
	expression(n ExpressionNode)
	pattern(n PatternNode)
	property(n PropertyNode)
	propertyKey(n PropertyKeyNode)
	classMember(n ClassMemberNode)
	declarator(n DeclaratorNode)
	switchCase(n SwitchCaseNode)
}

func (m *Module) accept(d dispatcher) { d.module(m) }

func (n Node[T]) accept(d dispatcher) {
	switch n := any(n).(type) {
	case ExpressionNode:
		d.expression(n)
	case StatementNode:
		d.statement(n)
	case PatternNode:
		d.pattern(n)
	case PropertyNode:
		d.property(n)
	case PropertyKeyNode:
		d.propertyKey(n)
	case ClassMemberNode:
		d.classMember(n)
	case DeclaratorNode:
		d.declarator(n)
	case SwitchCaseNode:
		d.switchCase(n)
	}
}

func (l NodeList[T]) accept(d dispatcher) {
	if l, ok := any(l).(StatementList); ok {
		d.statementList(l)
		return
	}
	for _, n := range l.list.slice() {
		n.accept(d)
	}
}

// Traverse walks n depth-first in source order, calling v's callbacks with
// ctx. The walker is instantiated per visitor type, so callbacks of a
// concrete V are called directly.
func Traverse[C any, V Visitor[C]](n Visitable, v V, ctx *C) {
	n.accept(&walker[C, V]{v: v, ctx: ctx})
}

type walker[C any, V Visitor[C]] struct {
	v   V
	ctx *C
}

func (w *walker[C, V]) module(m *Module) {
	if m == nil {
		return
	}
	w.statementList(m.Body)
}

func (w *walker[C, V]) statementList(l StatementList) {
	w.v.OnStatementList(l, w.ctx)
	for _, s := range l.list.slice() {
		w.statement(s)
	}
}

func (w *walker[C, V]) expressions(l ExpressionList) {
	for _, e := range l.list.slice() {
		w.expression(e)
	}
}

func (w *walker[C, V]) patterns(l PatternList) {
	for _, p := range l.list.slice() {
		w.pattern(p)
	}
}

func (w *walker[C, V]) statement(n StatementNode) {
	if n.IsNil() {
		return
	}
	loc := n.Get()
	span := loc.Span()
	switch s := loc.Item.Stmt.(type) {
	case nil, *ErrorStatement:
	case *EmptyStatement:
		w.v.OnEmptyStatement(s, span, w.ctx)
	case *ExpressionStatement:
		w.v.OnExpressionStatement(s, span, w.ctx)
		w.expression(s.Expression)
	case *DeclarationStatement:
		w.v.OnDeclarationStatement(s, span, w.ctx)
		for _, d := range s.Declarators.list.slice() {
			w.declarator(d)
		}
	case *ReturnStatement:
		w.v.OnReturnStatement(s, span, w.ctx)
		w.expression(s.Value)
	case *BreakStatement:
		w.v.OnBreakStatement(s, span, w.ctx)
	case *ContinueStatement:
		w.v.OnContinueStatement(s, span, w.ctx)
	case *ThrowStatement:
		w.v.OnThrowStatement(s, span, w.ctx)
		w.expression(s.Value)
	case *IfStatement:
		w.v.OnIfStatement(s, span, w.ctx)
		w.expression(s.Test)
		w.statement(s.Consequent)
		w.statement(s.Alternate)
	case *WhileStatement:
		w.v.OnWhileStatement(s, span, w.ctx)
		w.expression(s.Test)
		w.statement(s.Body)
	case *DoStatement:
		w.v.OnDoStatement(s, span, w.ctx)
		w.statement(s.Body)
		w.expression(s.Test)
	case *ForStatement:
		w.v.OnForStatement(s, span, w.ctx)
		w.statement(s.Init)
		w.expression(s.Test)
		w.expression(s.Update)
		w.statement(s.Body)
	case *ForInStatement:
		w.v.OnForInStatement(s, span, w.ctx)
		w.statement(s.Left)
		w.expression(s.Right)
		w.statement(s.Body)
	case *ForOfStatement:
		w.v.OnForOfStatement(s, span, w.ctx)
		w.statement(s.Left)
		w.expression(s.Right)
		w.statement(s.Body)
	case *TryStatement:
		w.v.OnTryStatement(s, span, w.ctx)
		w.block(s.Block)
		if h := s.Handler.Get(); h != nil {
			w.v.OnEnterScope(ScopeBlock, w.ctx)
			w.pattern(h.Item.Param)
			if b := h.Item.Body.Get(); b != nil {
				w.statementList(b.Item.Body)
			}
			w.v.OnLeaveScope(w.ctx)
		}
		w.block(s.Finalizer)
	case *BlockStatement:
		w.v.OnBlockStatement(s, span, w.ctx)
		w.v.OnEnterScope(ScopeBlock, w.ctx)
		w.statementList(s.Body)
		w.v.OnLeaveScope(w.ctx)
	case *LabeledStatement:
		w.v.OnLabeledStatement(s, span, w.ctx)
		w.statement(s.Body)
	case *SwitchStatement:
		w.v.OnSwitchStatement(s, span, w.ctx)
		w.expression(s.Discriminant)
		w.v.OnEnterScope(ScopeBlock, w.ctx)
		for _, c := range s.Cases.list.slice() {
			w.switchCase(c)
		}
		w.v.OnLeaveScope(w.ctx)
	case *FunctionStatement:
		w.v.OnFunctionStatement(s, span, w.ctx)
		w.declare(s.Name.Ident)
		w.function(s.Params, s.Body)
	case *ClassStatement:
		w.v.OnClassStatement(s, span, w.ctx)
		w.declare(s.Name.Ident)
		w.class(s.Extends, s.Body)
	}
}

// block walks a braced statement list in its own block scope.
func (w *walker[C, V]) block(b StatementBlock) {
	loc := b.Get()
	if loc == nil {
		return
	}
	w.v.OnEnterScope(ScopeBlock, w.ctx)
	w.statementList(loc.Item.Body)
	w.v.OnLeaveScope(w.ctx)
}

func (w *walker[C, V]) declare(id IdentifierNode) {
	if loc := id.Get(); loc != nil {
		w.v.OnReferenceDeclaration(loc.Item, loc.Span(), w.ctx)
	}
}

// function walks parameters and body in one function scope. The body's
// braces do not open a second scope.
func (w *walker[C, V]) function(params PatternList, body StatementBlock) {
	w.v.OnEnterScope(ScopeFunction, w.ctx)
	w.patterns(params)
	if loc := body.Get(); loc != nil {
		w.statementList(loc.Item.Body)
	}
	w.v.OnLeaveScope(w.ctx)
}

// class walks the heritage and the members. A class body is not a scope;
// its methods open their own.
func (w *walker[C, V]) class(extends ExpressionNode, body ClassBody) {
	w.expression(extends)
	if loc := body.Get(); loc != nil {
		for _, m := range loc.Item.Body.list.slice() {
			w.classMember(m)
		}
	}
}

func (w *walker[C, V]) expression(n ExpressionNode) {
	if n.IsNil() {
		return
	}
	loc := n.Get()
	span := loc.Span()
	switch e := loc.Item.Expr.(type) {
	case nil, *ErrorExpression, *VoidExpression:
	case *ThisExpression:
		w.v.OnThisExpression(e, span, w.ctx)
	case *IdentifierExpression:
		w.v.OnIdentifierExpression(e, span, w.ctx)
		w.v.OnReferenceUse(e.Name, span, w.ctx)
	case *Literal:
		w.v.OnLiteralExpression(e, span, w.ctx)
	case *SequenceExpression:
		w.v.OnSequenceExpression(e, span, w.ctx)
		w.expressions(e.Body)
	case *ArrayExpression:
		w.v.OnArrayExpression(e, span, w.ctx)
		w.expressions(e.Body)
	case *MemberExpression:
		w.v.OnMemberExpression(e, span, w.ctx)
		w.expression(e.Object)
	case *ComputedMemberExpression:
		w.v.OnComputedMemberExpression(e, span, w.ctx)
		w.expression(e.Object)
		w.expression(e.Property)
	case *CallExpression:
		w.v.OnCallExpression(e, span, w.ctx)
		w.expression(e.Callee)
		w.expressions(e.Arguments)
	case *BinaryExpression:
		w.v.OnBinaryExpression(e, span, w.ctx)
		w.expression(e.Left)
		w.expression(e.Right)
	case *PrefixExpression:
		w.v.OnPrefixExpression(e, span, w.ctx)
		w.expression(e.Operand)
	case *PostfixExpression:
		w.v.OnPostfixExpression(e, span, w.ctx)
		w.expression(e.Operand)
	case *ConditionalExpression:
		w.v.OnConditionalExpression(e, span, w.ctx)
		w.expression(e.Test)
		w.expression(e.Consequent)
		w.expression(e.Alternate)
	case *TemplateExpression:
		if e.Tag.IsNil() {
			w.v.OnTemplateLiteral(e, span, w.ctx)
		} else {
			w.v.OnTaggedTemplateExpression(e, span, w.ctx)
			w.expression(e.Tag)
		}
		w.expressions(e.Expressions)
	case *SpreadExpression:
		w.v.OnSpreadExpression(e, span, w.ctx)
		w.expression(e.Argument)
	case *ArrowExpression:
		w.v.OnArrowExpression(e, span, w.ctx)
		w.v.OnEnterScope(ScopeFunction, w.ctx)
		w.patterns(e.Params)
		if loc := e.Body.Block.Get(); loc != nil {
			w.statementList(loc.Item.Body)
		} else {
			w.expression(e.Body.Expression)
		}
		w.v.OnLeaveScope(w.ctx)
	case *ObjectExpression:
		w.v.OnObjectExpression(e, span, w.ctx)
		for _, p := range e.Body.list.slice() {
			w.property(p)
		}
	case *FunctionExpression:
		w.v.OnFunctionExpression(e, span, w.ctx)
		w.function(e.Params, e.Body)
	case *ClassExpression:
		w.v.OnClassExpression(e, span, w.ctx)
		w.class(e.Extends, e.Body)
	}
}

func (w *walker[C, V]) pattern(n PatternNode) {
	if n.IsNil() {
		return
	}
	loc := n.Get()
	switch p := loc.Item.Pat.(type) {
	case *IdentifierPattern:
		w.v.OnReferenceDeclaration(p.Name, loc.Span(), w.ctx)
	case *ObjectPattern:
		for _, prop := range p.Properties.slice() {
			if !prop.Shorthand {
				w.propertyKey(prop.Key)
			}
			w.pattern(prop.Value)
		}
	case *ArrayPattern:
		w.patterns(p.Elements)
	case *RestElement:
		w.pattern(p.Argument)
	case *AssignmentPattern:
		w.pattern(p.Left)
		w.expression(p.Right)
	}
}

func (w *walker[C, V]) property(n PropertyNode) {
	if n.IsNil() {
		return
	}
	loc := n.Get()
	switch p := loc.Item.Prop.(type) {
	case *ShorthandProperty:
		w.v.OnReferenceUse(p.Name, loc.Span(), w.ctx)
	case *LiteralProperty:
		w.propertyKey(p.Key)
		w.expression(p.Value)
	case *MethodProperty:
		w.propertyKey(p.Key)
		if fn := p.Value.Get(); fn != nil {
			w.function(fn.Params, fn.Body)
		}
	}
}

func (w *walker[C, V]) propertyKey(n PropertyKeyNode) {
	if n.IsNil() {
		return
	}
	if k, ok := n.Item().Key.(*ComputedKey); ok {
		w.expression(k.Expression)
	}
}

func (w *walker[C, V]) classMember(n ClassMemberNode) {
	if n.IsNil() {
		return
	}
	switch m := n.Item().Member.(type) {
	case *MethodMember:
		w.propertyKey(m.Key)
		if fn := m.Value.Get(); fn != nil {
			w.function(fn.Params, fn.Body)
		}
	case *ValueMember:
		w.propertyKey(m.Key)
		w.expression(m.Value)
	}
}

func (w *walker[C, V]) declarator(n DeclaratorNode) {
	if n.IsNil() {
		return
	}
	d := n.Item()
	w.pattern(d.ID)
	w.expression(d.Init)
}

func (w *walker[C, V]) switchCase(n SwitchCaseNode) {
	if n.IsNil() {
		return
	}
	c := n.Item()
	w.expression(c.Test)
	w.statementList(c.Consequent)
}
