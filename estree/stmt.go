package estree

import (
	"github.com/t14raptor/go-ratel/ast"
)

func (d *describer) statements(l ast.StatementList) []any {
	out := make([]any, 0, l.Len())
	for st := range l.Values() {
		out = append(out, d.stmt(st))
	}
	return out
}

func (d *describer) block(b ast.StatementBlock) any {
	loc := b.Get()
	if loc == nil {
		return nil
	}
	r := record("BlockStatement", loc.Span())
	r["body"] = d.statements(loc.Item.Body)
	return r
}

func (d *describer) stmt(n ast.StatementNode) any {
	if n.IsNil() {
		return nil
	}
	span := n.Span()
	var r Record
	switch st := n.Item().Stmt.(type) {
	case *ast.ErrorStatement:
		d.sentinel("statement", span)
		return nil
	case nil, *ast.EmptyStatement:
		r = record("EmptyStatement", span)
	case *ast.ExpressionStatement:
		r = record("ExpressionStatement", span)
		r["expression"] = d.expr(st.Expression)
	case *ast.DeclarationStatement:
		r = d.declaration(st, span)
	case *ast.ReturnStatement:
		r = record("ReturnStatement", span)
		r["argument"] = d.expr(st.Value)
	case *ast.BreakStatement:
		r = record("BreakStatement", span)
		r["label"] = identifier(st.Label)
	case *ast.ContinueStatement:
		r = record("ContinueStatement", span)
		r["label"] = identifier(st.Label)
	case *ast.ThrowStatement:
		r = record("ThrowStatement", span)
		r["argument"] = d.expr(st.Value)
	case *ast.IfStatement:
		r = record("IfStatement", span)
		r["test"] = d.expr(st.Test)
		r["consequent"] = d.stmt(st.Consequent)
		r["alternate"] = d.stmt(st.Alternate)
	case *ast.WhileStatement:
		r = record("WhileStatement", span)
		r["test"] = d.expr(st.Test)
		r["body"] = d.stmt(st.Body)
	case *ast.DoStatement:
		r = record("DoWhileStatement", span)
		r["body"] = d.stmt(st.Body)
		r["test"] = d.expr(st.Test)
	case *ast.ForStatement:
		r = record("ForStatement", span)
		r["init"] = d.forHead(st.Init)
		r["test"] = d.expr(st.Test)
		r["update"] = d.expr(st.Update)
		r["body"] = d.stmt(st.Body)
	case *ast.ForInStatement:
		r = record("ForInStatement", span)
		r["left"] = d.forHead(st.Left)
		r["right"] = d.expr(st.Right)
		r["body"] = d.stmt(st.Body)
	case *ast.ForOfStatement:
		r = record("ForOfStatement", span)
		r["await"] = false
		r["left"] = d.forHead(st.Left)
		r["right"] = d.expr(st.Right)
		r["body"] = d.stmt(st.Body)
	case *ast.TryStatement:
		r = record("TryStatement", span)
		r["block"] = d.block(st.Block)
		r["handler"] = d.catchClause(st.Handler)
		r["finalizer"] = d.block(st.Finalizer)
	case *ast.BlockStatement:
		r = record("BlockStatement", span)
		r["body"] = d.statements(st.Body)
	case *ast.LabeledStatement:
		r = record("LabeledStatement", span)
		r["label"] = identifier(st.Label)
		r["body"] = d.stmt(st.Body)
	case *ast.SwitchStatement:
		r = record("SwitchStatement", span)
		r["discriminant"] = d.expr(st.Discriminant)
		cases := make([]any, 0, st.Cases.Len())
		for c := range st.Cases.Values() {
			sc := record("SwitchCase", c.Span())
			sc["test"] = d.expr(c.Item().Test)
			sc["consequent"] = d.statements(c.Item().Consequent)
			cases = append(cases, sc)
		}
		r["cases"] = cases
	case *ast.FunctionStatement:
		r = d.function("FunctionDeclaration", span, st.Name.Ident, st.Params, st.Body, st.Async, st.Generator)
	case *ast.ClassStatement:
		r = d.class("ClassDeclaration", span, st.Name.Ident, st.Extends, st.Body)
	}
	return r
}

// forHead unwraps the expression statement that stands for a bare
// expression in a for head.
func (d *describer) forHead(n ast.StatementNode) any {
	if n.IsNil() {
		return nil
	}
	if es, ok := n.Item().Stmt.(*ast.ExpressionStatement); ok {
		return d.expr(es.Expression)
	}
	return d.stmt(n)
}

func (d *describer) declaration(st *ast.DeclarationStatement, span ast.Span) Record {
	r := record("VariableDeclaration", span)
	r["kind"] = st.Kind.String()
	decls := make([]any, 0, st.Declarators.Len())
	for n := range st.Declarators.Values() {
		decl := record("VariableDeclarator", n.Span())
		decl["id"] = d.pattern(n.Item().ID)
		decl["init"] = d.expr(n.Item().Init)
		decls = append(decls, decl)
	}
	r["declarations"] = decls
	return r
}

func (d *describer) catchClause(h ast.Ptr[ast.Loc[ast.CatchClause]]) any {
	loc := h.Get()
	if loc == nil {
		return nil
	}
	r := record("CatchClause", loc.Span())
	r["param"] = d.pattern(loc.Item.Param)
	r["body"] = d.block(loc.Item.Body)
	return r
}

func (d *describer) function(typ string, span ast.Span, name ast.IdentifierNode, params ast.PatternList, body ast.StatementBlock, async, generator bool) Record {
	r := record(typ, span)
	r["id"] = identifier(name)
	r["params"] = d.patterns(params)
	r["body"] = d.block(body)
	r["async"] = async
	r["generator"] = generator
	r["expression"] = false
	return r
}

func (d *describer) method(span ast.Span, fn *ast.Function[ast.EmptyName]) Record {
	if fn == nil {
		return d.function("FunctionExpression", span, ast.IdentifierNode{}, ast.PatternList{}, ast.StatementBlock{}, false, false)
	}
	return d.function("FunctionExpression", span, ast.IdentifierNode{}, fn.Params, fn.Body, fn.Async, fn.Generator)
}

var methodKinds = [...]string{
	ast.MethodConstructor: "constructor",
	ast.MethodMethod:      "method",
	ast.MethodGet:         "get",
	ast.MethodSet:         "set",
}

func (d *describer) class(typ string, span ast.Span, name ast.IdentifierNode, extends ast.ExpressionNode, body ast.ClassBody) Record {
	r := record(typ, span)
	r["id"] = identifier(name)
	r["superClass"] = d.expr(extends)
	loc := body.Get()
	if loc == nil {
		r["body"] = Record{"type": "ClassBody", "start": span.End, "end": span.End, "body": []any{}}
		return r
	}
	members := make([]any, 0, loc.Item.Body.Len())
	for n := range loc.Item.Body.Values() {
		members = append(members, d.classMember(n))
	}
	cb := record("ClassBody", loc.Span())
	cb["body"] = members
	r["body"] = cb
	return r
}

func (d *describer) classMember(n ast.ClassMemberNode) any {
	span := n.Span()
	switch m := n.Item().Member.(type) {
	case *ast.MethodMember:
		r := record("MethodDefinition", span)
		r["static"] = m.Static
		r["kind"] = methodKinds[m.Kind]
		r["computed"] = isComputed(m.Key)
		r["key"] = d.key(m.Key)
		r["value"] = d.method(span, m.Value.Get())
		return r
	case *ast.ValueMember:
		r := record("PropertyDefinition", span)
		r["static"] = m.Static
		r["computed"] = isComputed(m.Key)
		r["key"] = d.key(m.Key)
		r["value"] = d.expr(m.Value)
		return r
	}
	d.sentinel("class member", span)
	return nil
}
