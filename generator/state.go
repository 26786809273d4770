package generator

import (
	"strings"
)

type state struct {
	out    *strings.Builder
	indent int
	opts   Options
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat(s.opts.Indent, s.indent))
}

func (s *state) write(parts ...string) {
	for _, p := range parts {
		s.out.WriteString(p)
	}
}

// parens wraps whatever f writes in parentheses when cond holds.
func (s *state) parens(cond bool, f func()) {
	if cond {
		s.out.WriteString("(")
		defer s.out.WriteString(")")
	}
	f()
}
