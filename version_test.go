package dxf

import "testing"

func TestParseVersionKnown(t *testing.T) {
	tests := []struct {
		wire string
		want Version
	}{
		{"AC1006", R9},
		{"AC1009", R12}, // most recent release sharing this wire string
		{"AC1012", R13},
		{"AC1015", R2000},
		{"AC1027", R2013},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.wire)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", tt.wire, err)
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.wire, got, tt.want)
		}
	}
}

func TestParseVersionFuture(t *testing.T) {
	v, err := ParseVersion("AC1099")
	if err != nil {
		t.Fatalf("ParseVersion of a future-looking AC10NN should not error: %v", err)
	}
	if v != R2013 {
		t.Errorf("ParseVersion(\"AC1099\") = %v, want R2013 (clamped)", v)
	}
}

func TestParseVersionGarbage(t *testing.T) {
	if _, err := ParseVersion("NOTAVERSION"); err == nil {
		t.Fatal("expected an UnknownVersion error for a non-AC10NN-shaped string")
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	for v := R9; v <= R2013; v++ {
		wire := v.String()
		got, err := ParseVersion(wire)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", wire, err)
		}
		// Several releases share a wire string (R11/R12 both read as
		// AC1009); reparsing must at least land on a version whose own
		// String() matches, not necessarily the original constant.
		if got.String() != wire {
			t.Errorf("version %v wire %q reparsed to %v (wire %q)", v, wire, got, got.String())
		}
	}
}

func TestClampVersion(t *testing.T) {
	if got := clampVersion(R2013); got != R2013 {
		t.Errorf("clampVersion(R2013) = %v, want R2013", got)
	}
	if got := clampVersion(Version(999)); got != R2013 {
		t.Errorf("clampVersion(999) = %v, want R2013", got)
	}
}

func TestVersionAtLeast(t *testing.T) {
	if !R2000.AtLeast(R13) {
		t.Error("R2000 should be at least R13")
	}
	if R9.AtLeast(R13) {
		t.Error("R9 should not be at least R13")
	}
}
