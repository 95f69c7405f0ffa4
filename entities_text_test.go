package dxf

import "testing"

func TestTextDecodeDefaults(t *testing.T) {
	r := decodeFrom(t, "8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n40\r\n2.5\r\n1\r\nhello\r\n0\r\nEOF\r\n")
	e, err := decodeText(r)
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if e.Value != "hello" {
		t.Errorf("Value = %q", e.Value)
	}
	if e.WidthScale != 1 || e.Style != "Standard" {
		t.Errorf("defaults not applied: widthscale=%v style=%q", e.WidthScale, e.Style)
	}
}

func TestMTextConcatenatesContinuationStrings(t *testing.T) {
	src := "8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n40\r\n1.0\r\n" +
		"3\r\nfirst chunk \r\n1\r\nlast chunk\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	e, err := decodeMText(r)
	if err != nil {
		t.Fatalf("decodeMText: %v", err)
	}
	if e.Value != "first chunk last chunk" {
		t.Errorf("Value = %q, want concatenation of code 3 then code 1", e.Value)
	}
}
