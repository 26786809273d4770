package ast

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
)

// IsIdentifierName reports whether name can be written as a bare property
// key or member name.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

func IsIdentifierStart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr == '$' || chr == '_' || 'a' <= chr && chr <= 'z' || 'A' <= chr && chr <= 'Z'
	}
	return unicodeid.IsIDStartUnicode(chr)
}

func IsIdentifierPart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return IsIdentifierStart(chr) || '0' <= chr && chr <= '9'
	}
	return unicodeid.IsIDContinueUnicode(chr)
}
