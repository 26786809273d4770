package evaluator

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const builtinStringTrimWhitespace = "\u0009\u000A\u000B\u000C\u000D\u0020\u00A0\u1680\u180E\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u2028\u2029\u202F\u205F\u3000\uFEFF"

// parseNumber converts a string to a number the way JavaScript's Number()
// does for the forms it accepts.
func parseNumber(value string) float64 {
	value = strings.Trim(value, builtinStringTrimWhitespace)
	switch value {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(value) > 2 && value[0] == '0' && strings.ContainsRune("xXoObB", rune(value[1])) {
		if strings.ContainsRune(value, '_') {
			return math.NaN()
		}
		number, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(number)
	}
	if strings.ContainsAny(value, "_xXpPiInN") {
		return math.NaN()
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return number
}

// Kind is the type of a Value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindNumber
	KindString
	KindBoolean
	// KindObject covers arrays, objects, functions, classes and regular
	// expressions. Only their truthiness is known.
	KindObject
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindNull:      "null",
	KindNumber:    "number",
	KindString:    "string",
	KindBoolean:   "boolean",
	KindObject:    "object",
}

func (k Kind) String() string { return kindNames[k] }

var (
	undefinedValue = Value{kind: KindUndefined}
	nullValue      = Value{kind: KindNull}
	objectValue    = Value{kind: KindObject}
)

// Value is the representation of a JavaScript value.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

func (v Value) Kind() Kind { return v.kind }

func floatToString(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		s := strconv.FormatFloat(value, 'e', -1, 64)
		// 1e-07 => 1e-7
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// String converts v the way JavaScript's String() does. Objects have no
// static string form and print as "[object]".
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindNumber:
		return floatToString(v.num)
	case KindString:
		return v.str
	case KindBoolean:
		return strconv.FormatBool(v.b)
	}
	return "[object]"
}

// Number converts v the way JavaScript's Number() does.
func (v Value) Number() float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindNumber:
		return v.num
	case KindString:
		return parseNumber(v.str)
	case KindBoolean:
		if v.b {
			return 1
		}
		return 0
	}
	return math.NaN()
}

// Truthy reports whether v converts to true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return !math.IsNaN(v.num) && v.num != 0
	case KindString:
		return v.str != ""
	case KindBoolean:
		return v.b
	case KindObject:
		return true
	}
	return false
}

func (v Value) isNullish() bool {
	return v.kind == KindUndefined || v.kind == KindNull
}

// toUint32 is ECMA-262 ToUint32: truncate, then reduce modulo 2^32.
func toUint32(value Value) uint32 {
	f := value.Number()
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}

// toInt32 is ECMA-262 ToInt32, the two's complement view of toUint32.
func toInt32(value Value) int32 {
	return int32(toUint32(value))
}

// utf16Len is the JavaScript length of s.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func stringValue(value string) Value {
	return Value{kind: KindString, str: value}
}

func float64Value(value float64) Value {
	return Value{kind: KindNumber, num: value}
}

func boolValue(value bool) Value {
	return Value{kind: KindBoolean, b: value}
}
