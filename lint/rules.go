package lint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-ratel/ast"
	"github.com/t14raptor/go-ratel/evaluator"
	"github.com/t14raptor/go-ratel/graph"
)

// MaxDepth reports scopes nested deeper than the max option.
type MaxDepth struct{}

func (MaxDepth) Name() string { return "max-depth" }

func (r MaxDepth) Register(d *ast.DynamicVisitor[State], cfg RuleConfig) error {
	limit, err := cfg.Int("max", 4)
	if err != nil {
		return err
	}
	if limit < 0 {
		return fmt.Errorf("option %q: must not be negative", "max")
	}
	d.HandleEnterScope(func(_ ast.ScopeKind, s *State) {
		if s.Depth() > limit {
			s.Report(r.Name(), s.Last(), "scope depth %d exceeds %d", s.Depth(), limit)
		}
	})
	return nil
}

// NoShadow reports declarations that hide a name declared in an enclosing
// scope.
type NoShadow struct{}

func (NoShadow) Name() string { return "no-shadow" }

func (r NoShadow) Register(d *ast.DynamicVisitor[State], _ RuleConfig) error {
	d.HandleReferenceDeclaration(func(name ast.Identifier, span ast.Span, s *State) {
		if outer, ok := s.Enclosing(name); ok {
			s.Report(r.Name(), span, "%q shadows the declaration at %d-%d", name, outer.Start, outer.End)
		}
	})
	return nil
}

// NoSequence reports comma expressions.
type NoSequence struct{}

func (NoSequence) Name() string { return "no-sequence" }

func (r NoSequence) Register(d *ast.DynamicVisitor[State], _ RuleConfig) error {
	d.HandleExpression(ast.ExprSequence, func(_ ast.Expression, span ast.Span, s *State) {
		s.Report(r.Name(), span, "unexpected comma expression")
	})
	return nil
}

// NoEmptyBlock reports block statements and switch statements with nothing
// in them.
type NoEmptyBlock struct{}

func (NoEmptyBlock) Name() string { return "no-empty-block" }

func (r NoEmptyBlock) Register(d *ast.DynamicVisitor[State], _ RuleConfig) error {
	d.HandleStatement(ast.StmtBlock, func(st ast.Statement, span ast.Span, s *State) {
		if st.Stmt.(*ast.BlockStatement).Body.Len() == 0 {
			s.Report(r.Name(), span, "empty block")
		}
	})
	d.HandleStatement(ast.StmtSwitch, func(st ast.Statement, span ast.Span, s *State) {
		if st.Stmt.(*ast.SwitchStatement).Cases.Len() == 0 {
			s.Report(r.Name(), span, "empty switch")
		}
	})
	return nil
}

// NoConstantCondition reports conditions whose value is known statically.
// With allow-loops set, loop conditions are left alone.
type NoConstantCondition struct{}

func (NoConstantCondition) Name() string { return "no-constant-condition" }

func (r NoConstantCondition) Register(d *ast.DynamicVisitor[State], cfg RuleConfig) error {
	allowLoops, err := cfg.Bool("allow-loops", false)
	if err != nil {
		return err
	}
	check := func(test ast.ExpressionNode, s *State) {
		if test.IsNil() {
			return
		}
		if truthy, ok := evaluator.Truthy(test); ok {
			s.Report(r.Name(), test.Span(), "condition is always %s", truthiness(truthy))
		}
	}
	d.HandleStatement(ast.StmtIf, func(st ast.Statement, _ ast.Span, s *State) {
		check(st.Stmt.(*ast.IfStatement).Test, s)
	})
	d.HandleExpression(ast.ExprConditional, func(e ast.Expression, _ ast.Span, s *State) {
		check(e.Expr.(*ast.ConditionalExpression).Test, s)
	})
	if allowLoops {
		return nil
	}
	d.HandleStatement(ast.StmtWhile, func(st ast.Statement, _ ast.Span, s *State) {
		check(st.Stmt.(*ast.WhileStatement).Test, s)
	})
	d.HandleStatement(ast.StmtDo, func(st ast.Statement, _ ast.Span, s *State) {
		check(st.Stmt.(*ast.DoStatement).Test, s)
	})
	d.HandleStatement(ast.StmtFor, func(st ast.Statement, _ ast.Span, s *State) {
		check(st.Stmt.(*ast.ForStatement).Test, s)
	})
	return nil
}

func truthiness(b bool) string {
	if b {
		return "truthy"
	}
	return "falsy"
}

// NoUnusedTopLevel reports module-level declarations that nothing reachable
// from the module body uses. Names listed in the ignore option count as
// used.
//
// Every top-level statement is attributed to the module itself, except
// that a declaration owns what follows it up to the next top-level
// statement: its initializer, its function body or its class body. Uses
// resolved to a nested scope are not counted.
type NoUnusedTopLevel struct{}

func (NoUnusedTopLevel) Name() string { return "no-unused-toplevel" }

// moduleRoot stands for the module body in the use graph. No declaration
// can have an empty name.
const moduleRoot ast.Identifier = ""

type topLevelUses struct {
	owner ast.Identifier
	spans map[ast.Identifier]ast.Span
	uses  *graph.Directed[ast.Identifier, struct{}]
}

func (r NoUnusedTopLevel) uses(s *State) *topLevelUses {
	return stashed(s, r.Name(), func() *topLevelUses {
		g := graph.New[ast.Identifier, struct{}]()
		g.AddNode(moduleRoot)
		return &topLevelUses{spans: map[ast.Identifier]ast.Span{}, uses: g}
	})
}

func (r NoUnusedTopLevel) Register(d *ast.DynamicVisitor[State], cfg RuleConfig) error {
	if _, err := cfg.Strings("ignore"); err != nil {
		return err
	}
	for k := ast.StmtEmpty; k <= ast.StmtClass; k++ {
		d.HandleStatement(k, func(_ ast.Statement, _ ast.Span, s *State) {
			if s.Depth() == 0 {
				r.uses(s).owner = moduleRoot
			}
		})
	}
	d.HandleReferenceDeclaration(func(name ast.Identifier, span ast.Span, s *State) {
		if s.Depth() != 0 {
			return
		}
		t := r.uses(s)
		if _, ok := t.spans[name]; !ok {
			t.spans[name] = span
			t.uses.AddNode(name)
		}
		t.owner = name
	})
	d.HandleReferenceUse(func(name ast.Identifier, _ ast.Span, s *State) {
		if s.local(name) {
			return
		}
		t := r.uses(s)
		t.uses.AddEdge(t.owner, name, struct{}{})
	})
	return nil
}

func (r NoUnusedTopLevel) Finish(s *State, cfg RuleConfig) {
	t := r.uses(s)
	ignore, _ := cfg.Strings("ignore")
	roots := []ast.Identifier{moduleRoot}
	for _, name := range ignore {
		roots = append(roots, ast.Identifier(name))
	}
	live := t.uses.Reachable(roots...)

	for _, comp := range graph.Components[ast.Identifier](t.uses) {
		var dead []ast.Identifier
		for _, name := range comp {
			if _, declared := t.spans[name]; declared && !live[name] {
				dead = append(dead, name)
			}
		}
		slices.Sort(dead)
		for _, name := range dead {
			if len(dead) == 1 {
				s.Report(r.Name(), t.spans[name], "%q is unused", name)
				continue
			}
			var others []string
			for _, o := range dead {
				if o != name {
					others = append(others, strconv.Quote(string(o)))
				}
			}
			s.Report(r.Name(), t.spans[name], "%q is only used by %s", name, strings.Join(others, ", "))
		}
	}
}
