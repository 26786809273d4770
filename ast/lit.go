package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type LiteralKind uint8

const (
	LiteralUndefined LiteralKind = iota
	LiteralNull
	LiteralTrue
	LiteralFalse
	LiteralNumber
	// LiteralBinary is a numeric literal written with a 0b, 0o or 0x prefix.
	LiteralBinary
	LiteralString
	// LiteralTemplate is a template literal without substitutions.
	LiteralTemplate
	LiteralRegExp
)

// Literal is a primitive value. Raw keeps the source text, quotes and
// delimiters included.
type Literal struct {
	Kind LiteralKind
	Raw  string
}

// RegExp is the pattern/flags split of a regular expression literal.
type RegExp struct {
	Pattern string
	Flags   string
}

// MalformedLiteralError is returned when a literal's raw text does not have
// the shape its kind requires.
type MalformedLiteralError struct {
	Kind LiteralKind
	Raw  string
	Msg  string
}

func (e *MalformedLiteralError) Error() string {
	return fmt.Sprintf("ast: malformed literal %q: %s", e.Raw, e.Msg)
}

// RegExp splits a regular expression literal into its pattern and flags.
// The flags start after the last slash of the raw text.
func (l *Literal) RegExp() (RegExp, error) {
	if l.Kind != LiteralRegExp {
		return RegExp{}, &MalformedLiteralError{Kind: l.Kind, Raw: l.Raw, Msg: "not a regular expression"}
	}
	return ParseRegExp(l.Raw)
}

// ParseRegExp splits raw, the source text of a regular expression literal
// such as /ab+c/gi, into pattern and flags.
func ParseRegExp(raw string) (RegExp, error) {
	if len(raw) < 2 || raw[0] != '/' {
		return RegExp{}, &MalformedLiteralError{Kind: LiteralRegExp, Raw: raw, Msg: "missing opening delimiter"}
	}
	end := strings.LastIndexByte(raw, '/')
	if end == 0 {
		return RegExp{}, &MalformedLiteralError{Kind: LiteralRegExp, Raw: raw, Msg: "missing closing delimiter"}
	}
	return RegExp{Pattern: raw[1:end], Flags: raw[end+1:]}, nil
}

// Number returns the value of a numeric literal. Decimal literals out of
// range become infinities; prefixed integers too wide for 64 bits are
// rejected.
func (l *Literal) Number() (float64, error) {
	raw := l.Raw
	switch l.Kind {
	case LiteralBinary:
		u, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return 0, &MalformedLiteralError{Kind: l.Kind, Raw: raw, Msg: err.Error()}
		}
		return float64(u), nil
	case LiteralNumber:
		f, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, &MalformedLiteralError{Kind: l.Kind, Raw: raw, Msg: err.Error()}
		}
		return f, nil
	}
	return 0, &MalformedLiteralError{Kind: l.Kind, Raw: raw, Msg: "not a number"}
}

// Unquote returns the value of a string or substitution-free template
// literal. String escapes are resolved as JavaScript does; a malformed
// escape leaves the text between the quotes as written. Templates are
// returned raw.
func (l *Literal) Unquote() string {
	raw := l.Raw
	if len(raw) < 2 {
		return raw
	}
	inner := raw[1 : len(raw)-1]
	if l.Kind == LiteralTemplate || !strings.Contains(inner, `\`) {
		return inner
	}
	if s, ok := unescape(inner); ok {
		return s
	}
	return inner
}

var simpleEscapes = map[rune]rune{
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
}

// unescape resolves the escape sequences of a string literal body.
func unescape(s string) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		c, size := utf8.DecodeRuneInString(s[i+1:])
		if size == 0 {
			return "", false
		}
		i += 1 + size
		switch c {
		case 'x':
			r, ok := hexRune(s, i, 2)
			if !ok {
				return "", false
			}
			sb.WriteRune(r)
			i += 2
		case 'u':
			r, n, ok := unicodeEscape(s, i)
			if !ok {
				return "", false
			}
			i += n
			if utf16.IsSurrogate(r) && strings.HasPrefix(s[i:], `\u`) {
				if lo, m, ok := unicodeEscape(s, i+2); ok {
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						r = pair
						i += 2 + m
					}
				}
			}
			sb.WriteRune(r)
		case '0':
			if i < len(s) && s[i] >= '0' && s[i] <= '9' {
				return "", false
			}
			sb.WriteByte(0)
		case '\r':
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
		default:
			if r, ok := simpleEscapes[c]; ok {
				sb.WriteRune(r)
			} else if c >= '1' && c <= '9' {
				return "", false
			} else {
				sb.WriteRune(c)
			}
		}
	}
	return sb.String(), true
}

// unicodeEscape reads the part of a \u escape that follows the u at s[i]:
// four hex digits or a braced code point. It returns the rune and the
// number of bytes read.
func unicodeEscape(s string, i int) (rune, int, bool) {
	if i < len(s) && s[i] == '{' {
		end := strings.IndexByte(s[i:], '}')
		if end < 2 {
			return 0, 0, false
		}
		v, err := strconv.ParseUint(s[i+1:i+end], 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, 0, false
		}
		return rune(v), end + 1, true
	}
	r, ok := hexRune(s, i, 4)
	return r, 4, ok
}

func hexRune(s string, i, n int) (rune, bool) {
	if i+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[i:i+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
