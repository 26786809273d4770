// Package lint runs configurable rules over a module. Rules are composed at
// run time on a single dynamic visitor, so one traversal serves all of them.
package lint

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-ratel/ast"
)

// Finding is one problem reported by a rule.
type Finding struct {
	Rule    string
	Span    ast.Span
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%d-%d: %s (%s)", f.Span.Start, f.Span.End, f.Message, f.Rule)
}

// State is the context of one lint run. It tracks the scope stack so rules
// can ask about enclosing declarations, and collects findings.
type State struct {
	last     ast.Span
	scopes   []map[ast.Identifier]ast.Span
	findings []Finding
	stash    map[string]any
}

func newState() *State {
	return &State{scopes: []map[ast.Identifier]ast.Span{{}}}
}

// Depth is the number of scopes entered below the module scope.
func (s *State) Depth() int { return len(s.scopes) - 1 }

// Last returns the span of the most recently visited statement or
// expression. When a scope opens, that is the node opening it.
func (s *State) Last() ast.Span { return s.last }

// Enclosing finds name among the scopes around the current one and returns
// the span of its declaration.
func (s *State) Enclosing(name ast.Identifier) (ast.Span, bool) {
	for i := len(s.scopes) - 2; i >= 0; i-- {
		if span, ok := s.scopes[i][name]; ok {
			return span, true
		}
	}
	return ast.Span{}, false
}

// local reports whether name is declared in a scope below the module
// scope that is still open.
func (s *State) local(name ast.Identifier) bool {
	for _, scope := range s.scopes[1:] {
		if _, ok := scope[name]; ok {
			return true
		}
	}
	return false
}

func (s *State) Report(rule string, span ast.Span, format string, args ...any) {
	s.findings = append(s.findings, Finding{Rule: rule, Span: span, Message: fmt.Sprintf(format, args...)})
}

// stashed returns the per-run value rule keeps in s, creating it with
// init on first use.
func stashed[T any](s *State, rule string, init func() *T) *T {
	if v, ok := s.stash[rule]; ok {
		return v.(*T)
	}
	if s.stash == nil {
		s.stash = make(map[string]any)
	}
	v := init()
	s.stash[rule] = v
	return v
}

// scopes keeps State's scope stack and last span current. It is registered
// ahead of every rule.
type scopes struct{}

func (scopes) Register(d *ast.DynamicVisitor[State]) {
	d.HandleEnterScope(func(_ ast.ScopeKind, s *State) {
		s.scopes = append(s.scopes, map[ast.Identifier]ast.Span{})
	})
	d.HandleLeaveScope(func(s *State) {
		s.scopes = s.scopes[:len(s.scopes)-1]
	})
	d.HandleReferenceDeclaration(func(name ast.Identifier, span ast.Span, s *State) {
		top := s.scopes[len(s.scopes)-1]
		if _, ok := top[name]; !ok {
			top[name] = span
		}
	})
	for k := ast.ExprThis; k <= ast.ExprClass; k++ {
		d.HandleExpression(k, func(_ ast.Expression, span ast.Span, s *State) { s.last = span })
	}
	for k := ast.StmtEmpty; k <= ast.StmtClass; k++ {
		d.HandleStatement(k, func(_ ast.Statement, span ast.Span, s *State) { s.last = span })
	}
}

// Linter runs a fixed set of configured rules. It is safe for concurrent
// use; every run gets its own State.
type Linter struct {
	visitor   *ast.DynamicVisitor[State]
	rules     []string
	finishers []configured
	logger    *slog.Logger
}

type Option func(*Linter)

// WithLogger sets the logger for rule setup and run summaries. Without it
// nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(lt *Linter) { lt.logger = l }
}

// New builds a linter from the rules cfg enables. All configuration
// problems are reported together.
func New(reg *Registry, cfg Config, opts ...Option) (*Linter, error) {
	l := &Linter{
		visitor: ast.NewDynamicVisitor[State](scopes{}),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}

	rules, errs := reg.resolve(cfg)
	for _, c := range rules {
		if err := c.rule.Register(l.visitor, c.cfg); err != nil {
			errs = append(errs, fmt.Errorf("lint: %s: %w", c.rule.Name(), err))
			continue
		}
		l.rules = append(l.rules, c.rule.Name())
		if _, ok := c.rule.(Finisher); ok {
			l.finishers = append(l.finishers, c)
		}
		l.logger.Debug("rule enabled", "rule", c.rule.Name())
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return l, nil
}

// Rules returns the names of the active rules.
func (l *Linter) Rules() []string { return l.rules }

// Run lints n and returns the findings ordered by position, then rule.
func (l *Linter) Run(n ast.Visitable) []Finding {
	s := newState()
	ast.Traverse(n, l.visitor, s)
	for _, c := range l.finishers {
		c.rule.(Finisher).Finish(s, c.cfg)
	}

	slices.SortStableFunc(s.findings, func(a, b Finding) int {
		if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Rule, b.Rule)
	})
	l.logger.Info("lint finished", "rules", len(l.rules), "findings", len(s.findings))
	return s.findings
}
