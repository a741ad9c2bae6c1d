package token

import "testing"

func TestClassifyWord(t *testing.T) {
	tests := []struct {
		input    string
		wantKind Kind
		wantLit  LiteralKind
	}{
		{"true", KindLiteral, Boolean},
		{"false", KindLiteral, Boolean},
		{"null", KindLiteral, Null},
		{"class", KindKeyword, NotLiteral},
		{"synchronized", KindKeyword, NotLiteral},
		{"foo", KindIdentifier, NotLiteral},
		{"Foo123", KindIdentifier, NotLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotKind, gotLit := ClassifyWord(tt.input)
			if gotKind != tt.wantKind {
				t.Errorf("kind: got %v, want %v", gotKind, tt.wantKind)
			}
			if gotLit != tt.wantLit {
				t.Errorf("literal kind: got %v, want %v", gotLit, tt.wantLit)
			}
		})
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, word := range []string{"class", "enum", "true", "false", "null", "strictfp"} {
		if !IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"foo", "Main", "var"} {
		if IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = true, want false", word)
		}
	}
}

func TestIsSeparator(t *testing.T) {
	for _, sep := range []string{LParen, RParen, LBrace, RBrace, Semicolon, Comma, Dot, Ellipsis, ColonColon} {
		if !IsSeparator(sep) {
			t.Errorf("IsSeparator(%q) = false, want true", sep)
		}
	}
	if IsSeparator(Plus) {
		t.Errorf("IsSeparator(%q) = true, want false", Plus)
	}
}

func TestPositionLess(t *testing.T) {
	a := Position{Offset: 3}
	b := Position{Offset: 7}
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if b.Less(a) {
		t.Errorf("did not expect %v < %v", b, a)
	}
}
