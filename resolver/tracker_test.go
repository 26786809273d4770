package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/token"
)

const (
	block    = ast.ScopeBlock
	function = ast.ScopeFunction
)

var eventOpts = []cmp.Option{
	cmpopts.IgnoreFields(Reference{}, "Span"),
	cmpopts.EquateEmpty(),
}

func refs(pairs ...any) []Reference {
	var out []Reference
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Reference{Name: ast.Identifier(pairs[i].(string)), Depth: pairs[i+1].(int)})
	}
	return out
}

func TestTracker(t *testing.T) {
	tests := []struct {
		name  string
		build func(b ast.Builder) *ast.Module
		want  Events
	}{
		{
			name: "block scopes",
			// {{{}}}
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.Block(b.Block(b.Block())))
			},
			want: Events{Scopes: []ast.ScopeKind{block, block, block}, MaxDepth: 3},
		},
		{
			name: "declarations",
			// let foo; const bar = 42, doge;
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.Var(ast.DeclarationLet, "foo", ast.ExpressionNode{}),
					b.Declare(ast.DeclarationConst,
						b.Declarator(b.IdentPat("bar"), b.Number("42")),
						b.Declarator(b.IdentPat("doge"), ast.ExpressionNode{}),
					),
				)
			},
			want: Events{Declarations: refs("foo", 0, "bar", 0, "doge", 0)},
		},
		{
			name: "nested declarations",
			// let foo; { let foo; { let foo; }}
			build: func(b ast.Builder) *ast.Module {
				foo := func() ast.StatementNode { return b.Var(ast.DeclarationLet, "foo", ast.ExpressionNode{}) }
				return b.Module(foo(), b.Block(foo(), b.Block(foo())))
			},
			want: Events{
				Scopes:       []ast.ScopeKind{block, block},
				MaxDepth:     2,
				Declarations: refs("foo", 0, "foo", 1, "foo", 2),
			},
		},
		{
			name: "uses",
			// doge = to + the + moon
			build: func(b ast.Builder) *ast.Module {
				sum := b.Binary(token.Plus, b.Binary(token.Plus, b.Ident("to"), b.Ident("the")), b.Ident("moon"))
				return b.Module(b.ExprStmt(b.Binary(token.Assign, b.Ident("doge"), sum)))
			},
			want: Events{Uses: refs("doge", 0, "to", 0, "the", 0, "moon", 0)},
		},
		{
			name: "nested uses",
			// doge; { to; { the; { moon; }}}
			build: func(b ast.Builder) *ast.Module {
				use := func(name string) ast.StatementNode { return b.ExprStmt(b.Ident(name)) }
				return b.Module(use("doge"), b.Block(use("to"), b.Block(use("the"), b.Block(use("moon")))))
			},
			want: Events{
				Scopes:   []ast.ScopeKind{block, block, block},
				MaxDepth: 3,
				Uses:     refs("doge", 0, "to", 1, "the", 2, "moon", 3),
			},
		},
		{
			name: "function and class declarations",
			// function foo() {} class Bar {}
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.FunctionDecl("foo", nil), b.ClassDecl("Bar", ast.ExpressionNode{}))
			},
			want: Events{
				Scopes:       []ast.ScopeKind{function},
				MaxDepth:     1,
				Declarations: refs("foo", 0, "Bar", 0),
			},
		},
		{
			name: "function and class expressions",
			// (function foo() {}); (class Bar {});
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.ExprStmt(b.FunctionExpr("foo", nil)),
					b.ExprStmt(b.ClassExpr("Bar", ast.ExpressionNode{})),
				)
			},
			want: Events{Scopes: []ast.ScopeKind{function}, MaxDepth: 1},
		},
		{
			name: "empty class",
			// class Doge {}
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.ClassDecl("Doge", ast.ExpressionNode{}))
			},
			want: Events{Declarations: refs("Doge", 0)},
		},
		{
			name: "functions and object methods",
			// function doge() { foo; return { baz() { bar; } }; }
			build: func(b ast.Builder) *ast.Module {
				obj := b.Object(b.Method(b.Key("baz"), nil, b.ExprStmt(b.Ident("bar"))))
				return b.Module(b.FunctionDecl("doge", nil, b.ExprStmt(b.Ident("foo")), b.Return(obj)))
			},
			want: Events{
				Scopes:       []ast.ScopeKind{function, function},
				MaxDepth:     2,
				Uses:         refs("foo", 1, "bar", 2),
				Declarations: refs("doge", 0),
			},
		},
		{
			name: "shorthand properties",
			// const doge = { to, the, moon };
			build: func(b ast.Builder) *ast.Module {
				obj := b.Object(b.Shorthand("to"), b.Shorthand("the"), b.Shorthand("moon"))
				return b.Module(b.Var(ast.DeclarationConst, "doge", obj))
			},
			want: Events{
				Uses:         refs("to", 0, "the", 0, "moon", 0),
				Declarations: refs("doge", 0),
			},
		},
		{
			name: "function parameters",
			// function doge(to, the) { const moon; }
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.FunctionDecl("doge",
					[]ast.PatternNode{b.IdentPat("to"), b.IdentPat("the")},
					b.Var(ast.DeclarationConst, "moon", ast.ExpressionNode{}),
				))
			},
			want: Events{
				Scopes:       []ast.ScopeKind{function},
				MaxDepth:     1,
				Declarations: refs("doge", 0, "to", 1, "the", 1, "moon", 1),
			},
		},
		{
			name: "destructuring",
			// let { a, b: c, ...d } = e;
			build: func(b ast.Builder) *ast.Module {
				pat := b.ObjectPat(
					b.ShorthandPat("a"),
					b.PatProp(b.Key("b"), b.IdentPat("c")),
					b.PatProp(b.Key("rest"), b.Rest(b.IdentPat("d"))),
				)
				return b.Module(b.Declare(ast.DeclarationLet, b.Declarator(pat, b.Ident("e"))))
			},
			want: Events{
				Uses:         refs("e", 0),
				Declarations: refs("a", 0, "c", 0, "d", 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build(ast.NewBuilder(ast.NewArena()))
			defer m.Release()

			got := Track(m)
			if diff := cmp.Diff(tt.want, *got, eventOpts...); diff != "" {
				t.Errorf("static events mismatch (-want +got):\n%s", diff)
			}

			dynamic := &Events{}
			ast.Traverse(m, ast.NewDynamicVisitor[Events](Tracker{}), dynamic)
			if diff := cmp.Diff(got, dynamic, eventOpts...); diff != "" {
				t.Errorf("dynamic events differ (-static +dynamic):\n%s", diff)
			}
		})
	}
}

func TestTrackerSpans(t *testing.T) {
	b := ast.NewBuilder(ast.NewArena())
	m := b.Module(b.At(0, 4).ExprStmt(b.At(0, 3).Ident("foo")))

	ev := Track(m)
	if assert.Len(t, ev.Uses, 1) {
		assert.Equal(t, ast.Span{Start: 0, End: 3}, ev.Uses[0].Span)
	}
}
