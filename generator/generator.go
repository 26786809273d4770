package generator

import (
	"strconv"
	"strings"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

// Options controls the layout of the generated source.
type Options struct {
	// Indent is written once per nesting level.
	Indent string
}

var DefaultOptions = Options{Indent: "    "}

var assignPower = token.Assign.BindingPower()

// Generate prints node as JavaScript source. Parentheses are inserted only
// where binding powers require them.
func Generate(node ast.Visitable) string {
	return GenerateWith(node, DefaultOptions)
}

func GenerateWith(node ast.Visitable, opts Options) string {
	s := &state{out: &strings.Builder{}, opts: opts}
	switch n := node.(type) {
	case *ast.Module:
		s.statements(n.Body)
	case ast.StatementList:
		s.statements(n)
	case ast.StatementNode:
		s.stmt(n)
	case ast.ExpressionNode:
		s.expr(n, 0)
	case ast.PatternNode:
		s.pattern(n)
	case ast.PropertyKeyNode:
		s.key(n)
	}
	return s.out.String()
}

func (s *state) statements(l ast.StatementList) {
	for i, st := range l.All() {
		if i > 0 {
			s.lineAndPad()
		}
		s.stmt(st)
	}
}

func (s *state) block(l ast.StatementList) {
	if l.Len() == 0 {
		s.write("{}")
		return
	}
	s.write("{")
	s.indent++
	for st := range l.Values() {
		s.lineAndPad()
		s.stmt(st)
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

func (s *state) body(b ast.StatementBlock) {
	if loc := b.Get(); loc != nil {
		s.block(loc.Item.Body)
		return
	}
	s.write("{}")
}

func (s *state) stmt(n ast.StatementNode) {
	if n.IsNil() {
		s.write(";")
		return
	}
	switch st := n.Item().Stmt.(type) {
	case nil, *ast.ErrorStatement:
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		s.exprWrapped(st.Expression, 0, !leftmost(st.Expression).IsAllowedAsBareStatement())
		s.write(";")
	case *ast.DeclarationStatement:
		s.declaration(st)
		s.write(";")
	case *ast.ReturnStatement:
		s.write("return")
		if !st.Value.IsNil() {
			s.write(" ")
			s.expr(st.Value, 0)
		}
		s.write(";")
	case *ast.BreakStatement:
		s.write("break")
		s.label(st.Label)
		s.write(";")
	case *ast.ContinueStatement:
		s.write("continue")
		s.label(st.Label)
		s.write(";")
	case *ast.ThrowStatement:
		s.write("throw ")
		s.expr(st.Value, 0)
		s.write(";")
	case *ast.IfStatement:
		s.write("if (")
		s.expr(st.Test, 0)
		s.write(") ")
		s.stmt(st.Consequent)
		if !st.Alternate.IsNil() {
			s.write(" else ")
			s.stmt(st.Alternate)
		}
	case *ast.WhileStatement:
		s.write("while (")
		s.expr(st.Test, 0)
		s.write(") ")
		s.stmt(st.Body)
	case *ast.DoStatement:
		s.write("do ")
		s.stmt(st.Body)
		s.write(" while (")
		s.expr(st.Test, 0)
		s.write(");")
	case *ast.ForStatement:
		s.write("for (")
		s.forHead(st.Init)
		s.write(";")
		if !st.Test.IsNil() {
			s.write(" ")
			s.expr(st.Test, 0)
		}
		s.write(";")
		if !st.Update.IsNil() {
			s.write(" ")
			s.expr(st.Update, 0)
		}
		s.write(") ")
		s.stmt(st.Body)
	case *ast.ForInStatement:
		s.write("for (")
		s.forHead(st.Left)
		s.write(" in ")
		s.expr(st.Right, 0)
		s.write(") ")
		s.stmt(st.Body)
	case *ast.ForOfStatement:
		s.write("for (")
		s.forHead(st.Left)
		s.write(" of ")
		s.expr(st.Right, assignPower)
		s.write(") ")
		s.stmt(st.Body)
	case *ast.TryStatement:
		s.write("try ")
		s.body(st.Block)
		if h := st.Handler.Get(); h != nil {
			s.write(" catch ")
			if !h.Item.Param.IsNil() {
				s.write("(")
				s.pattern(h.Item.Param)
				s.write(") ")
			}
			s.body(h.Item.Body)
		}
		if !st.Finalizer.IsNil() {
			s.write(" finally ")
			s.body(st.Finalizer)
		}
	case *ast.BlockStatement:
		s.block(st.Body)
	case *ast.LabeledStatement:
		s.write(string(st.Label.Get().Item), ": ")
		s.stmt(st.Body)
	case *ast.SwitchStatement:
		s.write("switch (")
		s.expr(st.Discriminant, 0)
		s.write(") {")
		for c := range st.Cases.Values() {
			s.switchCase(c.Item())
		}
		s.lineAndPad()
		s.write("}")
	case *ast.FunctionStatement:
		s.function(st.Async, st.Generator, st.Name.Ident, st.Params, st.Body)
	case *ast.ClassStatement:
		s.class(st.Name.Ident, st.Extends, st.Body)
	}
}

func (s *state) label(id ast.IdentifierNode) {
	if loc := id.Get(); loc != nil {
		s.write(" ", string(loc.Item))
	}
}

func (s *state) switchCase(c ast.SwitchCase) {
	s.indent++
	s.lineAndPad()
	if c.Test.IsNil() {
		s.write("default:")
	} else {
		s.write("case ")
		s.expr(c.Test, 0)
		s.write(":")
	}
	s.indent++
	for st := range c.Consequent.Values() {
		s.lineAndPad()
		s.stmt(st)
	}
	s.indent -= 2
}

// forHead prints the init or left side of a for statement without the
// trailing semicolon.
func (s *state) forHead(n ast.StatementNode) {
	if n.IsNil() {
		return
	}
	switch st := n.Item().Stmt.(type) {
	case *ast.DeclarationStatement:
		s.declaration(st)
	case *ast.ExpressionStatement:
		s.expr(st.Expression, 0)
	}
}

func (s *state) declaration(d *ast.DeclarationStatement) {
	s.write(d.Kind.String(), " ")
	for i, n := range d.Declarators.All() {
		if i > 0 {
			s.write(", ")
		}
		decl := n.Item()
		s.pattern(decl.ID)
		if !decl.Init.IsNil() {
			s.write(" = ")
			s.expr(decl.Init, assignPower)
		}
	}
}

func (s *state) function(async, generator bool, name ast.IdentifierNode, params ast.PatternList, body ast.StatementBlock) {
	if async {
		s.write("async ")
	}
	s.write("function")
	if generator {
		s.write("*")
	}
	if loc := name.Get(); loc != nil {
		s.write(" ", string(loc.Item))
	}
	s.params(params)
	s.write(" ")
	s.body(body)
}

func (s *state) method(key ast.PropertyKeyNode, fn *ast.Function[ast.EmptyName]) {
	if fn == nil {
		s.key(key)
		s.write("() {}")
		return
	}
	if fn.Async {
		s.write("async ")
	}
	if fn.Generator {
		s.write("*")
	}
	s.key(key)
	s.params(fn.Params)
	s.write(" ")
	s.body(fn.Body)
}

func (s *state) params(l ast.PatternList) {
	s.write("(")
	for i, p := range l.All() {
		if i > 0 {
			s.write(", ")
		}
		s.pattern(p)
	}
	s.write(")")
}

func (s *state) class(name ast.IdentifierNode, extends ast.ExpressionNode, body ast.ClassBody) {
	s.write("class")
	if loc := name.Get(); loc != nil {
		s.write(" ", string(loc.Item))
	}
	if !extends.IsNil() {
		s.write(" extends ")
		s.expr(extends, token.New.BindingPower())
	}
	loc := body.Get()
	if loc == nil || loc.Item.Body.Len() == 0 {
		s.write(" {}")
		return
	}
	s.write(" {")
	s.indent++
	for m := range loc.Item.Body.Values() {
		s.lineAndPad()
		s.classMember(m.Item())
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

func (s *state) classMember(m ast.ClassMember) {
	switch m := m.Member.(type) {
	case *ast.MethodMember:
		if m.Static {
			s.write("static ")
		}
		switch m.Kind {
		case ast.MethodGet:
			s.write("get ")
		case ast.MethodSet:
			s.write("set ")
		}
		s.method(m.Key, m.Value.Get())
	case *ast.ValueMember:
		if m.Static {
			s.write("static ")
		}
		s.key(m.Key)
		if !m.Value.IsNil() {
			s.write(" = ")
			s.expr(m.Value, assignPower)
		}
		s.write(";")
	}
}

func (s *state) key(n ast.PropertyKeyNode) {
	if n.IsNil() {
		return
	}
	switch k := n.Item().Key.(type) {
	case *ast.LiteralKey:
		if ast.IsIdentifierName(k.Name) {
			s.write(k.Name)
		} else {
			s.write(strconv.Quote(k.Name))
		}
	case *ast.BinaryKey:
		s.write(k.Raw)
	case *ast.ComputedKey:
		s.write("[")
		s.expr(k.Expression, assignPower)
		s.write("]")
	}
}

func (s *state) pattern(n ast.PatternNode) {
	if n.IsNil() {
		return
	}
	switch p := n.Item().Pat.(type) {
	case *ast.IdentifierPattern:
		s.write(string(p.Name))
	case *ast.ObjectPattern:
		s.write("{")
		for i, prop := range p.Properties.All() {
			if i > 0 {
				s.write(", ")
			}
			rest := !prop.Value.IsNil() && prop.Value.Item().Kind() == ast.PatRest
			if !prop.Shorthand && !rest {
				s.key(prop.Key)
				s.write(": ")
			}
			s.pattern(prop.Value)
		}
		s.write("}")
	case *ast.ArrayPattern:
		s.write("[")
		for i, el := range p.Elements.All() {
			if i > 0 {
				s.write(", ")
			}
			s.pattern(el)
		}
		s.write("]")
	case *ast.RestElement:
		s.write("...")
		s.pattern(p.Argument)
	case *ast.AssignmentPattern:
		s.pattern(p.Left)
		s.write(" = ")
		s.expr(p.Right, assignPower)
	}
}

func (s *state) expr(n ast.ExpressionNode, min uint8) {
	s.exprWrapped(n, min, false)
}

// exprWrapped prints n, parenthesized if its binding power is below min or
// force is set. Arrow functions bind loosely despite their table entry and
// are parenthesized wherever more than an assignment is expected.
func (s *state) exprWrapped(n ast.ExpressionNode, min uint8, force bool) {
	if n.IsNil() {
		return
	}
	e := n.Item()
	wrap := force || e.BindingPower() < min
	if _, ok := e.Expr.(*ast.ArrowExpression); ok && min > assignPower {
		wrap = true
	}
	s.parens(wrap, func() { s.gen(e) })
}

func (s *state) exprList(l ast.ExpressionList) {
	for i, e := range l.All() {
		if i > 0 {
			s.write(", ")
		}
		s.expr(e, assignPower)
	}
}

func (s *state) gen(e ast.Expression) {
	switch n := e.Expr.(type) {
	case nil, *ast.ErrorExpression, *ast.VoidExpression:
	case *ast.ThisExpression:
		s.write("this")
	case *ast.IdentifierExpression:
		s.write(string(n.Name))
	case *ast.Literal:
		s.write(n.Raw)
	case *ast.SequenceExpression:
		for i, item := range n.Body.All() {
			if i > 0 {
				s.write(", ")
			}
			s.expr(item, assignPower)
		}
	case *ast.ArrayExpression:
		s.write("[")
		s.exprList(n.Body)
		s.write("]")
	case *ast.MemberExpression:
		s.exprWrapped(n.Object, ast.BindingPowerCall, isBareInteger(n.Object))
		s.write(".", string(n.Property.Get().Item))
	case *ast.ComputedMemberExpression:
		s.expr(n.Object, ast.BindingPowerCall)
		s.write("[")
		s.expr(n.Property, 0)
		s.write("]")
	case *ast.CallExpression:
		s.expr(n.Callee, ast.BindingPowerCall)
		s.write("(")
		s.exprList(n.Arguments)
		s.write(")")
	case *ast.BinaryExpression:
		bp := n.Operator.BindingPower()
		lmin, rmin := bp, bp+1
		if n.Operator.IsRightAssociative() {
			lmin, rmin = bp+1, bp
		}
		_, prefixLeft := exprOf(n.Left).(*ast.PrefixExpression)
		s.exprWrapped(n.Left, lmin, mixesCoalesce(n.Operator, n.Left) || n.Operator == token.Exponent && prefixLeft)
		s.write(" ", n.Operator.String(), " ")
		s.exprWrapped(n.Right, rmin, mixesCoalesce(n.Operator, n.Right) || sharesExponentLevel(n.Operator, n.Right))
	case *ast.PrefixExpression:
		s.write(n.Operator.String())
		if n.Operator.IsWord() || repeatsSign(n.Operator, n.Operand) {
			s.write(" ")
		}
		s.expr(n.Operand, ast.BindingPowerPrefix)
	case *ast.PostfixExpression:
		s.expr(n.Operand, n.Operator.BindingPower())
		s.write(n.Operator.String())
	case *ast.ConditionalExpression:
		s.expr(n.Test, ast.BindingPowerConditional+1)
		s.write(" ? ")
		s.expr(n.Consequent, assignPower)
		s.write(" : ")
		s.expr(n.Alternate, assignPower)
	case *ast.TemplateExpression:
		s.expr(n.Tag, ast.BindingPowerCall)
		s.write("`")
		i := 0
		for q := range n.Elements() {
			s.write(q.Item)
			if !q.Tail && i < n.Expressions.Len() {
				s.write("${")
				s.expr(n.Expressions.At(i), 0)
				s.write("}")
				i++
			}
		}
		s.write("`")
	case *ast.SpreadExpression:
		s.write("...")
		s.expr(n.Argument, assignPower)
	case *ast.ArrowExpression:
		s.arrow(n)
	case *ast.ObjectExpression:
		s.object(n)
	case *ast.FunctionExpression:
		s.function(n.Async, n.Generator, n.Name.Ident, n.Params, n.Body)
	case *ast.ClassExpression:
		s.class(n.Name.Ident, n.Extends, n.Body)
	}
}
