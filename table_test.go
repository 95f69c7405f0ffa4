package dxf

import (
	"strings"
	"testing"
)

type namedThing struct {
	Name string
}

func TestTableAddLookupDuplicateName(t *testing.T) {
	tbl := NewTable(func(n namedThing) string { return n.Name })
	var anomalies []string
	tbl.Add(namedThing{Name: "0"}, &anomalies, "LAYER")
	tbl.Add(namedThing{Name: "1"}, &anomalies, "LAYER")
	tbl.Add(namedThing{Name: "0"}, &anomalies, "LAYER") // duplicate

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (duplicates are preserved in write order)", tbl.Len())
	}
	if len(anomalies) != 1 {
		t.Fatalf("expected one duplicate-name anomaly, got %v", anomalies)
	}
	got, ok := tbl.Lookup("0")
	if !ok {
		t.Fatal("Lookup(\"0\") should find the record")
	}
	if got != (namedThing{Name: "0"}) {
		t.Errorf("Lookup(\"0\") = %+v", got)
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Error("Lookup of an absent name should report false")
	}
}

func TestDecodeTableFrameDispatchesRecords(t *testing.T) {
	src := "5\r\n10\r\n330\r\n0\r\n100\r\nAcDbSymbolTable\r\n70\r\n1\r\n" +
		"0\r\nLAYER\r\n2\r\nMYLAYER\r\n0\r\nENDTAB\r\n"
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)

	var names []string
	handle, owner, err := decodeTableFrame(r, "LAYER", func(r *pairReader) error {
		l, err := decodeLayer(r)
		if err != nil {
			return err
		}
		names = append(names, l.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("decodeTableFrame: %v", err)
	}
	if handle != 0x10 {
		t.Errorf("handle = %v, want 0x10", handle)
	}
	if owner != 0 {
		t.Errorf("owner = %v, want 0", owner)
	}
	if len(names) != 1 || names[0] != "MYLAYER" {
		t.Errorf("decoded record names = %v, want [MYLAYER]", names)
	}
}
