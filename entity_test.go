package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeEntityDispatchesToRegisteredKind(t *testing.T) {
	src := "0\r\nLINE\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n11\r\n1.0\r\n21\r\n0.0\r\n31\r\n0.0\r\n0\r\nEOF\r\n"
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)
	e, err := decodeEntity(r)
	if err != nil {
		t.Fatalf("decodeEntity: %v", err)
	}
	if e.Kind() != "LINE" {
		t.Fatalf("Kind() = %q, want LINE", e.Kind())
	}
	line, ok := e.(*Line)
	if !ok {
		t.Fatalf("decoded entity has type %T, want *Line", e)
	}
	if line.End != [3]float64{1, 0, 0} {
		t.Errorf("End = %v, want {1 0 0}", line.End)
	}
}

func TestDecodeEntityUnknownKindFallsBackToPassthrough(t *testing.T) {
	src := "0\r\nACAD_PROXY_ENTITY\r\n5\r\n7\r\n8\r\nLAYER1\r\n999999\r\nodd\r\n0\r\nEOF\r\n"
	// 999999 is outside any value family and would error as a group code
	// in buildPair; use a code this package does treat as passthrough
	// instead so the tokenizer itself doesn't choke.
	src = "0\r\nACAD_PROXY_ENTITY\r\n5\r\n7\r\n8\r\nLAYER1\r\n90\r\n3\r\n0\r\nEOF\r\n"
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)
	e, err := decodeEntity(r)
	if err != nil {
		t.Fatalf("decodeEntity: %v", err)
	}
	ue, ok := e.(*UnknownEntity)
	if !ok {
		t.Fatalf("decoded entity has type %T, want *UnknownEntity", e)
	}
	if ue.TypeName != "ACAD_PROXY_ENTITY" {
		t.Errorf("TypeName = %q", ue.TypeName)
	}
	if ue.Handle != 7 || ue.Layer != "LAYER1" {
		t.Errorf("common fields not captured: handle=%v layer=%q", ue.Handle, ue.Layer)
	}
	if len(ue.Raw) != 1 || ue.Raw[0].Code != 90 {
		t.Errorf("Raw = %+v, want the unrecognised code-90 pair preserved", ue.Raw)
	}
}

func TestEncodeEntityRoundTripsUnknownEntity(t *testing.T) {
	ue := &UnknownEntity{TypeName: "ACAD_PROXY_ENTITY", Raw: []CodePair{IntPair(90, 3)}}
	ue.Layer = "0"
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	encodeEntity(w, ue, R2013, nil)
	w.Flush()
	out := buf.String()
	if !strings.Contains(out, "ACAD_PROXY_ENTITY") {
		t.Errorf("encoded output missing type name:\n%s", out)
	}
	if !strings.Contains(out, "90\r\n3\r\n") {
		t.Errorf("encoded output missing preserved raw pair:\n%s", out)
	}
}
