package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestPairWriterBasicFraming(t *testing.T) {
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	w.section("HEADER")
	w.endsec()
	w.eof()
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "0\r\nSECTION\r\n2\r\nHEADER\r\n") {
		t.Errorf("missing SECTION framing in output:\n%s", got)
	}
	if !strings.Contains(got, "0\r\nENDSEC\r\n") {
		t.Errorf("missing ENDSEC in output:\n%s", got)
	}
	if !strings.HasSuffix(got, "0\r\nEOF\r\n") {
		t.Errorf("expected output to end with 0/EOF, got:\n%s", got)
	}
}

func TestPairWriterPoint(t *testing.T) {
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	w.Point(10, 1, 2, 3)
	w.Flush()
	got := buf.String()
	for _, code := range []string{"10\r\n", "20\r\n", "30\r\n"} {
		if !strings.Contains(got, code) {
			t.Errorf("Point(10, ...) output missing code %s:\n%s", code, got)
		}
	}
}

func TestPairWriterBoolShortRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	w.Bool(290, true)
	w.Bool(290, false)
	w.Flush()
	lines := strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n")
	want := []string{"290", "1", "290", "0"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPairWriterHandle(t *testing.T) {
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	w.Handle(5, Handle(0x2A))
	w.Flush()
	if got := buf.String(); !strings.Contains(got, "2A\r\n") {
		t.Errorf("Handle(5, 0x2A) should emit upper-case hex, got:\n%s", got)
	}
}
