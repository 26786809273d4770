package token

import "testing"

func TestBindingPower(t *testing.T) {
	tests := []struct {
		tok  Token
		want uint8
	}{
		{Assign, 3},
		{CoalesceAssign, 3},
		{LogicalOr, 5},
		{Coalesce, 5},
		{LogicalAnd, 6},
		{Or, 7},
		{ExclusiveOr, 8},
		{And, 9},
		{StrictEqual, 10},
		{InstanceOf, 11},
		{In, 11},
		{UnsignedShiftRight, 12},
		{Minus, 13},
		{Exponent, 14},
		{Remainder, 14},
		{Typeof, 15},
		{Increment, 16},
		{New, 17},
		{Undetermined, 0},
		{Token(1000), 0},
	}
	for _, tt := range tests {
		if got := tt.tok.BindingPower(); got != tt.want {
			t.Errorf("%v.BindingPower() = %d; want %d", tt.tok, got, tt.want)
		}
	}
}

func TestOperatorClasses(t *testing.T) {
	if !Exponent.IsRightAssociative() || !AddAssign.IsRightAssociative() {
		t.Error("** and += must be right associative")
	}
	if Minus.IsRightAssociative() {
		t.Error("- must be left associative")
	}
	if !Minus.IsPrefix() || !Minus.IsBinary() {
		t.Error("- is both a prefix and a binary operator")
	}
	if Not.IsBinary() || !Not.IsPrefix() {
		t.Error("! is only a prefix operator")
	}
	if !Increment.IsPostfix() || Plus.IsPostfix() {
		t.Error("only ++ and -- are postfix")
	}
	if !Typeof.IsWord() || Plus.IsWord() {
		t.Error("typeof is spelled as a word, + is not")
	}
}

func TestString(t *testing.T) {
	tests := map[Token]string{
		Plus:                     "+",
		InstanceOf:               "instanceof",
		UnsignedShiftRightAssign: ">>>=",
		Undetermined:             "UNKNOWN",
		Token(1000):              "token(1000)",
	}
	for tok, want := range tests {
		if got := tok.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	}
}
