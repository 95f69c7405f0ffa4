package dxf

import "testing"

func TestSyntaxErrorMessage(t *testing.T) {
	err := newSyntaxError(BadPair, 12, StringPair(0, "LINE"), "bad short value")
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() returned an empty string")
	}
	if err.Kind.String() != "bad pair" {
		t.Errorf("Kind.String() = %q, want %q", err.Kind.String(), "bad pair")
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := []ErrorKind{BadPair, UnexpectedCode, UnexpectedEof, UnknownVersion, InvariantViolation}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "unknown error" {
			t.Errorf("ErrorKind %d stringified to %q", k, s)
		}
		if seen[s] {
			t.Errorf("ErrorKind %d collides with an earlier kind's string %q", k, s)
		}
		seen[s] = true
	}
}
