package token

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{PLUS, "+"},
		{MINUS, "-"},
		{ASTERISK, "*"},
		{SLASH, "/"},
		{LE, "<="},
		{NEQ, "!="},
		{ASSIGN, "="},
		{IDENT, "IDENT"},
		{INTK, "int"},
		{VOIDK, "void"},
	}
	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := TokenType(9999).String(); got != "TokenType(9999)" {
		t.Errorf("unknown token String() = %q", got)
	}
}

func TestOperatorClasses(t *testing.T) {
	for _, op := range []TokenType{LT, LE, GT, GE, EQ, NEQ} {
		if !op.IsComparison() {
			t.Errorf("%v should be a comparison", op)
		}
	}
	for _, op := range []TokenType{PLUS, MINUS, ASSIGN, ASTERISK} {
		if op.IsComparison() {
			t.Errorf("%v should not be a comparison", op)
		}
	}
	if !ASTERISK.IsMulDiv() || !SLASH.IsMulDiv() {
		t.Error("* and / should be IsMulDiv")
	}
	if PLUS.IsMulDiv() || MINUS.IsMulDiv() {
		t.Error("+ and - should not be IsMulDiv")
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 4}).String(); got != "4" {
		t.Errorf("Position without column = %q, want \"4\"", got)
	}
	if got := (Position{Line: 4, Column: 7}).String(); got != "4:7" {
		t.Errorf("Position with column = %q, want \"4:7\"", got)
	}
}
