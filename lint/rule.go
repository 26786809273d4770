package lint

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"

	"github.com/t14raptor/go-ratel/ast"
)

// Rule contributes handlers to the visitor a Linter runs. Handlers report
// through the State they receive.
type Rule interface {
	Name() string
	Register(d *ast.DynamicVisitor[State], cfg RuleConfig) error
}

// RuleConfig holds the options of one rule as decoded from a config file.
type RuleConfig map[string]any

// Enabled reports whether the rule is switched on. Rules are on unless
// their config sets enabled to false.
func (c RuleConfig) Enabled() bool {
	on, ok := c["enabled"].(bool)
	return !ok || on
}

// Int returns the integer option key, or def when it is unset.
func (c RuleConfig) Int(key string, def int) (int, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("option %q: want an integer, got %v", key, v)
}

// Bool returns the boolean option key, or def when it is unset.
func (c RuleConfig) Bool(key string, def bool) (bool, error) {
	v, ok := c[key]
	if !ok {
		return def, nil
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("option %q: want a boolean, got %v", key, v)
}

// Strings returns the string list option key. Decoders hand lists over as
// []any, so each element is checked.
func (c RuleConfig) Strings(key string) ([]string, error) {
	switch v := c[key].(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("option %q: element %d: want a string, got %v", key, i, e)
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("option %q: want a list of strings, got %v", key, v)
	}
}

// Finisher is implemented by rules that report once the whole module has
// been visited. cfg is the config the rule was registered with.
type Finisher interface {
	Finish(s *State, cfg RuleConfig)
}

// UnknownRuleError is returned when a config names a rule that is not
// registered.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("lint: unknown rule %q", e.Name)
}

// Registry maps rule names to rules. Names are matched without regard to
// case.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{rules: make(map[string]Rule, len(rules))}
	for _, rule := range rules {
		if err := r.Add(rule); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry holds the built-in rules.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(MaxDepth{}, NoShadow{}, NoSequence{}, NoEmptyBlock{}, NoConstantCondition{}, NoUnusedTopLevel{})
	return r
}

func fold(name string) string {
	return cases.Fold().String(name)
}

func (r *Registry) Add(rule Rule) error {
	key := fold(rule.Name())
	if _, ok := r.rules[key]; ok {
		return fmt.Errorf("lint: rule %q registered twice", rule.Name())
	}
	r.rules[key] = rule
	return nil
}

func (r *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := r.rules[fold(name)]
	return rule, ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name())
	}
	slices.Sort(names)
	return names
}

type configured struct {
	rule Rule
	cfg  RuleConfig
}

// resolve looks up every rule named in cfg. Unknown names are collected
// rather than stopping at the first.
func (r *Registry) resolve(cfg Config) ([]configured, []error) {
	names := maps.Keys(cfg.Rules)
	slices.Sort(names)

	var (
		rules []configured
		errs  []error
		seen  = make(map[string]string, len(names))
	)
	for _, name := range names {
		rule, ok := r.Lookup(name)
		if !ok {
			errs = append(errs, &UnknownRuleError{Name: name})
			continue
		}
		if prev, dup := seen[fold(name)]; dup {
			errs = append(errs, fmt.Errorf("lint: rule %q configured as both %q and %q", rule.Name(), prev, name))
			continue
		}
		seen[fold(name)] = name
		if cfg.Rules[name].Enabled() {
			rules = append(rules, configured{rule: rule, cfg: cfg.Rules[name]})
		}
	}
	return rules, errs
}
