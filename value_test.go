package dxf

import "testing"

func TestHandleString(t *testing.T) {
	if got := Handle(0).String(); got != "0" {
		t.Errorf("Handle(0).String() = %q, want %q", got, "0")
	}
	if got := Handle(0xABC).String(); got != "ABC" {
		t.Errorf("Handle(0xABC).String() = %q, want %q", got, "ABC")
	}
}

func TestParseHandle(t *testing.T) {
	h, err := ParseHandle("1A2B")
	if err != nil {
		t.Fatalf("ParseHandle returned error: %v", err)
	}
	if h != 0x1A2B {
		t.Errorf("ParseHandle(\"1A2B\") = %v, want %v", h, Handle(0x1A2B))
	}
	if h, err := ParseHandle(""); err != nil || h != 0 {
		t.Errorf("ParseHandle(\"\") = %v, %v, want 0, nil", h, err)
	}
	if _, err := ParseHandle("zz"); err == nil {
		t.Error("ParseHandle(\"zz\") expected an error")
	}
}

func TestTransparencyRoundTrip(t *testing.T) {
	tr := NewTransparency(50)
	if !tr.IsByValue() {
		t.Fatal("NewTransparency result should be by-value")
	}
	if got := tr.OpacityPercent(); got < 49 || got > 51 {
		t.Errorf("OpacityPercent() = %d, want ~50", got)
	}
	if TransparencyByLayer.IsByValue() {
		t.Error("TransparencyByLayer must not be by-value")
	}
	if got := TransparencyByLayer.OpacityPercent(); got != 100 {
		t.Errorf("TransparencyByLayer.OpacityPercent() = %d, want 100", got)
	}
}

func TestDegreesRadians(t *testing.T) {
	if got := degrees(radians(90)); got < 89.999 || got > 90.001 {
		t.Errorf("degrees(radians(90)) = %v, want ~90", got)
	}
}

func TestColorIndexIsOn(t *testing.T) {
	if !ColorByLayer.IsOn() {
		t.Error("ColorByLayer should be considered on")
	}
	if !ColorByBlock.IsOn() {
		t.Error("ColorByBlock should be considered on")
	}
	if ColorIndex(-1).IsOn() {
		t.Error("negative color index (layer off) should not be on")
	}
}
