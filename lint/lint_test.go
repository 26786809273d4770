package lint

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-ratel/ast"
)

var none = ast.ExpressionNode{}

func linter(t *testing.T, rules map[string]RuleConfig, opts ...Option) *Linter {
	t.Helper()
	l, err := New(DefaultRegistry(), Config{Rules: rules}, opts...)
	require.NoError(t, err)
	return l
}

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rules map[string]RuleConfig
		build func(b ast.Builder) *ast.Module
		want  []Finding
	}{
		{
			name:  "no-sequence",
			rules: map[string]RuleConfig{"no-sequence": {}},
			// a, b;
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.ExprStmt(b.At(0, 4).Sequence(b.Ident("a"), b.Ident("b"))))
			},
			want: []Finding{{Rule: "no-sequence", Span: ast.Span{Start: 0, End: 4}, Message: "unexpected comma expression"}},
		},
		{
			name:  "no-shadow",
			rules: map[string]RuleConfig{"no-shadow": {}},
			// let x; function f(x) { let y; { let y; } }
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.At(0, 1).Var(ast.DeclarationLet, "x", none),
					b.FunctionDecl("f", []ast.PatternNode{b.At(20, 21).IdentPat("x")},
						b.At(30, 31).Var(ast.DeclarationLet, "y", none),
						b.Block(b.At(40, 41).Var(ast.DeclarationLet, "y", none)),
					),
				)
			},
			want: []Finding{
				{Rule: "no-shadow", Span: ast.Span{Start: 20, End: 21}, Message: `"x" shadows the declaration at 0-1`},
				{Rule: "no-shadow", Span: ast.Span{Start: 40, End: 41}, Message: `"y" shadows the declaration at 30-31`},
			},
		},
		{
			name:  "no-shadow ignores siblings",
			rules: map[string]RuleConfig{"no-shadow": {}},
			// { let z; } { let z; }
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.Block(b.Var(ast.DeclarationLet, "z", none)),
					b.Block(b.Var(ast.DeclarationLet, "z", none)),
				)
			},
		},
		{
			name:  "max-depth",
			rules: map[string]RuleConfig{"max-depth": {"max": 1}},
			// { { ; } }
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.At(0, 10).Block(b.At(2, 8).Block(b.Empty())))
			},
			want: []Finding{{Rule: "max-depth", Span: ast.Span{Start: 2, End: 8}, Message: "scope depth 2 exceeds 1"}},
		},
		{
			name:  "max-depth default",
			rules: map[string]RuleConfig{"max-depth": {}},
			build: func(b ast.Builder) *ast.Module {
				return b.Module(b.Block(b.Block(b.Block(b.Block(b.Empty())))))
			},
		},
		{
			name:  "no-empty-block",
			rules: map[string]RuleConfig{"no-empty-block": {}},
			// {} switch (x) {} { ; }
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.At(0, 2).Block(),
					b.At(3, 16).Switch(b.Ident("x")),
					b.At(17, 22).Block(b.Empty()),
				)
			},
			want: []Finding{
				{Rule: "no-empty-block", Span: ast.Span{Start: 0, End: 2}, Message: "empty block"},
				{Rule: "no-empty-block", Span: ast.Span{Start: 3, End: 16}, Message: "empty switch"},
			},
		},
		{
			name: "findings sorted across rules",
			rules: map[string]RuleConfig{
				"no-sequence":    {},
				"no-empty-block": {},
			},
			// {} (a, b);
			build: func(b ast.Builder) *ast.Module {
				return b.Module(
					b.At(5, 12).ExprStmt(b.At(5, 11).Sequence(b.Ident("a"), b.Ident("b"))),
					b.At(0, 2).Block(),
				)
			},
			want: []Finding{
				{Rule: "no-empty-block", Span: ast.Span{Start: 0, End: 2}, Message: "empty block"},
				{Rule: "no-sequence", Span: ast.Span{Start: 5, End: 11}, Message: "unexpected comma expression"},
			},
		},
		{
			name:  "no-constant-condition",
			rules: map[string]RuleConfig{"no-constant-condition": {}},
			build: conditions,
			want: []Finding{
				{Rule: "no-constant-condition", Span: ast.Span{Start: 4, End: 5}, Message: "condition is always truthy"},
				{Rule: "no-constant-condition", Span: ast.Span{Start: 20, End: 21}, Message: "condition is always falsy"},
				{Rule: "no-constant-condition", Span: ast.Span{Start: 40, End: 44}, Message: "condition is always truthy"},
			},
		},
		{
			name:  "no-constant-condition allowing loops",
			rules: map[string]RuleConfig{"no-constant-condition": {"allow-loops": true}},
			build: conditions,
			want: []Finding{
				{Rule: "no-constant-condition", Span: ast.Span{Start: 4, End: 5}, Message: "condition is always truthy"},
				{Rule: "no-constant-condition", Span: ast.Span{Start: 40, End: 44}, Message: "condition is always truthy"},
			},
		},
		{
			name:  "no-unused-toplevel",
			rules: map[string]RuleConfig{"no-unused-toplevel": {}},
			build: topLevel,
			want: []Finding{
				{Rule: "no-unused-toplevel", Span: ast.Span{Start: 0, End: 1}, Message: `"a" is unused`},
				{Rule: "no-unused-toplevel", Span: ast.Span{Start: 10, End: 11}, Message: `"b" is unused`},
				{Rule: "no-unused-toplevel", Span: ast.Span{Start: 20, End: 21}, Message: `"c" is only used by "d"`},
				{Rule: "no-unused-toplevel", Span: ast.Span{Start: 30, End: 31}, Message: `"d" is only used by "c"`},
				{Rule: "no-unused-toplevel", Span: ast.Span{Start: 70, End: 71}, Message: `"y" is unused`},
			},
		},
		{
			name:  "no-unused-toplevel ignore",
			rules: map[string]RuleConfig{"no-unused-toplevel": {"ignore": []any{"a", "c", "y"}}},
			build: topLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build(ast.NewBuilder(ast.NewArena()))
			defer m.Release()

			got := linter(t, tt.rules).Run(m)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("findings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// if (1) {} while (x) {} do {} while (0); for (;;) {} a ? b : c; true ? 1 : 2;
func conditions(b ast.Builder) *ast.Module {
	return b.Module(
		b.If(b.At(4, 5).Number("1"), b.Block(), ast.StatementNode{}),
		b.While(b.Ident("x"), b.Block()),
		b.Do(b.Block(), b.At(20, 21).Number("0")),
		b.For(ast.StatementNode{}, none, none, b.Block()),
		b.ExprStmt(b.Conditional(b.Ident("a"), b.Ident("b"), b.Ident("c"))),
		b.ExprStmt(b.Conditional(b.At(40, 44).Lit(ast.LiteralTrue, "true"), b.Number("1"), b.Number("2"))),
	)
}

// function a() { b(); }
// function b() {}
// function c() { d(); }
// function d() { c(); }
// function e(x) { x; }
// let f = e;
// f(g);
// let y = function () { let z; z; f; };
func topLevel(b ast.Builder) *ast.Module {
	call := func(name string) ast.StatementNode { return b.ExprStmt(b.Call(b.Ident(name))) }
	return b.Module(
		b.At(0, 1).FunctionDecl("a", nil, call("b")),
		b.At(10, 11).FunctionDecl("b", nil),
		b.At(20, 21).FunctionDecl("c", nil, call("d")),
		b.At(30, 31).FunctionDecl("d", nil, call("c")),
		b.At(40, 41).FunctionDecl("e", []ast.PatternNode{b.IdentPat("x")}, b.ExprStmt(b.Ident("x"))),
		b.Declare(ast.DeclarationLet, b.Declarator(b.At(50, 51).IdentPat("f"), b.Ident("e"))),
		b.ExprStmt(b.Call(b.Ident("f"), b.Ident("g"))),
		b.Declare(ast.DeclarationLet, b.Declarator(b.At(70, 71).IdentPat("y"), b.FunctionExpr("", nil,
			b.Var(ast.DeclarationLet, "z", none),
			b.ExprStmt(b.Ident("z")),
			b.ExprStmt(b.Ident("f")),
		))),
	)
}

func TestRunStartsFresh(t *testing.T) {
	b := ast.NewBuilder(ast.NewArena())
	m := b.Module(b.ExprStmt(b.Sequence(b.Ident("a"), b.Ident("b"))))
	defer m.Release()

	l := linter(t, DefaultConfig(DefaultRegistry()).Rules)
	first := l.Run(m)
	assert.Len(t, first, 1)
	assert.Equal(t, first, l.Run(m))
}

func TestConcurrentRuns(t *testing.T) {
	b := ast.NewBuilder(ast.NewArena())
	m := b.Module(
		b.Var(ast.DeclarationLet, "x", none),
		b.Block(b.Var(ast.DeclarationLet, "x", none), b.Block()),
		b.ExprStmt(b.Ident("x")),
	)
	defer m.Release()

	l := linter(t, DefaultConfig(DefaultRegistry()).Rules)
	want := l.Run(m)
	require.Len(t, want, 2)

	var wg sync.WaitGroup
	results := make([][]Finding, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = l.Run(m)
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNewReportsAllProblems(t *testing.T) {
	cfg := Config{Rules: map[string]RuleConfig{
		"no-such":   {},
		"max-depth": {"max": "three"},
		"also-not":  {},
	}}
	_, err := New(DefaultRegistry(), cfg)
	require.Error(t, err)

	var unknown *UnknownRuleError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), `"also-not"`)
	assert.Contains(t, err.Error(), `"no-such"`)
	assert.Contains(t, err.Error(), "max-depth")
}

func TestRuleNamesFoldCase(t *testing.T) {
	l := linter(t, map[string]RuleConfig{
		"NO-SEQUENCE": {},
		"No-Shadow":   {"enabled": false},
	})
	assert.Equal(t, []string{"no-sequence"}, l.Rules())

	_, err := New(DefaultRegistry(), Config{Rules: map[string]RuleConfig{"no-shadow": {}, "NO-SHADOW": {}}})
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{
		"max-depth", "no-constant-condition", "no-empty-block", "no-sequence", "no-shadow", "no-unused-toplevel",
	}, reg.Names())

	rule, ok := reg.Lookup("Max-Depth")
	require.True(t, ok)
	assert.Equal(t, "max-depth", rule.Name())

	assert.Error(t, reg.Add(NoSequence{}))
	_, err := NewRegistry(NoShadow{}, NoShadow{})
	assert.Error(t, err)
}

func TestRuleConfigInt(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RuleConfig
		want    int
		wantErr bool
	}{
		{name: "unset", cfg: RuleConfig{}, want: 7},
		{name: "int", cfg: RuleConfig{"n": 3}, want: 3},
		{name: "int64", cfg: RuleConfig{"n": int64(5)}, want: 5},
		{name: "whole float", cfg: RuleConfig{"n": 2.0}, want: 2},
		{name: "fraction", cfg: RuleConfig{"n": 2.5}, wantErr: true},
		{name: "string", cfg: RuleConfig{"n": "2"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Int("n", 7)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleConfigBool(t *testing.T) {
	on, err := RuleConfig{}.Bool("b", true)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = RuleConfig{"b": false}.Bool("b", true)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = RuleConfig{"b": "yes"}.Bool("b", false)
	assert.Error(t, err)
}

func TestRuleConfigStrings(t *testing.T) {
	got, err := RuleConfig{"s": []any{"a", "b"}}.Strings("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = RuleConfig{}.Strings("s")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = RuleConfig{"s": []any{"a", 1}}.Strings("s")
	assert.ErrorContains(t, err, "element 1")
	_, err = RuleConfig{"s": "a"}.Strings("s")
	assert.Error(t, err)
}

func TestBadRuleOptions(t *testing.T) {
	_, err := New(DefaultRegistry(), Config{Rules: map[string]RuleConfig{
		"no-constant-condition": {"allow-loops": 1},
		"no-unused-toplevel":    {"ignore": "a"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-constant-condition")
	assert.Contains(t, err.Error(), "no-unused-toplevel")
}

func TestNegativeMaxDepth(t *testing.T) {
	_, err := New(DefaultRegistry(), Config{Rules: map[string]RuleConfig{"max-depth": {"max": -1}}})
	assert.ErrorContains(t, err, "negative")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := ast.NewBuilder(ast.NewArena())
	m := b.Module(b.Empty())
	defer m.Release()

	linter(t, map[string]RuleConfig{"no-sequence": {}}, WithLogger(logger)).Run(m)
	assert.Contains(t, buf.String(), "rule enabled")
	assert.Contains(t, buf.String(), "rule=no-sequence")
	assert.Contains(t, buf.String(), "findings=0")
}
