package dxf

import "testing"

func TestKindForCode(t *testing.T) {
	tests := []struct {
		code int
		want ValueKind
	}{
		{0, KindString},
		{8, KindString},
		{10, KindFloat},
		{59, KindFloat},
		{62, KindShort},
		{90, KindInt},
		{102, KindString},
		{290, KindBool},
		{330, KindString},
		{370, KindShort},
		{420, KindInt},
		{440, KindInt},
		{1000, KindString},
		{1010, KindFloat},
		{1070, KindShort},
		{1071, KindInt},
	}
	for _, tt := range tests {
		got, err := kindForCode(tt.code)
		if err != nil {
			t.Fatalf("kindForCode(%d) returned error: %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("kindForCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestKindForCodeOutOfRange(t *testing.T) {
	if _, err := kindForCode(999); err == nil {
		t.Fatal("expected an error for group code 999 (comment code, not a value family)")
	}
}

func TestCodePairConstructors(t *testing.T) {
	if p := StringPair(8, "0"); p.Kind != KindString || p.Str != "0" {
		t.Errorf("StringPair = %+v", p)
	}
	if p := FloatPair(40, 1.5); p.Kind != KindFloat || p.Float != 1.5 {
		t.Errorf("FloatPair = %+v", p)
	}
	if p := ShortPair(70, 3); p.Kind != KindShort || p.Int != 3 {
		t.Errorf("ShortPair = %+v", p)
	}
	if p := IntPair(90, 42); p.Kind != KindInt || p.Int != 42 {
		t.Errorf("IntPair = %+v", p)
	}
	if p := BoolPair(290, true); p.Kind != KindBool || !p.Bool {
		t.Errorf("BoolPair = %+v", p)
	}
}
