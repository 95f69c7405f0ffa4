package dxf

import "testing"

func TestDictionaryEntriesPairNameWithTarget(t *testing.T) {
	src := "280\r\n1\r\n281\r\n0\r\n3\r\nLAYOUT1\r\n350\r\n1A\r\n3\r\nLAYOUT2\r\n360\r\n2B\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	o, err := decodeDictionary(r)
	if err != nil {
		t.Fatalf("decodeDictionary: %v", err)
	}
	if len(o.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(o.Entries))
	}
	if o.Entries[0].Name != "LAYOUT1" || o.Entries[0].Target != 0x1A {
		t.Errorf("entry[0] = %+v", o.Entries[0])
	}
	if o.Entries[1].Name != "LAYOUT2" || o.Entries[1].Target != 0x2B {
		t.Errorf("entry[1] = %+v", o.Entries[1])
	}
}

func TestXRecordPreservesArbitraryPairsVerbatim(t *testing.T) {
	src := "280\r\n1\r\n1\r\ncustom\r\n70\r\n5\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	o, err := decodeXRecord(r)
	if err != nil {
		t.Fatalf("decodeXRecord: %v", err)
	}
	if o.Cloning != 1 {
		t.Errorf("Cloning = %v, want 1", o.Cloning)
	}
	if len(o.Raw) != 2 {
		t.Fatalf("Raw = %+v, want 2 arbitrary pairs preserved", o.Raw)
	}
}

func TestLayoutDecode(t *testing.T) {
	src := "1\r\nLayout1\r\n70\r\n1\r\n71\r\n2\r\n330\r\n1F\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	o, err := decodeLayout(r)
	if err != nil {
		t.Fatalf("decodeLayout: %v", err)
	}
	if o.Name != "Layout1" || o.TabOrder != 2 || o.BlockOwner != 0x1F {
		t.Fatalf("decoded Layout = %+v", o)
	}
}

func TestGroupDefaultsSelectableAndCollectsMembers(t *testing.T) {
	src := "300\r\nmy group\r\n70\r\n0\r\n340\r\n1\r\n340\r\n2\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	o, err := decodeGroup(r)
	if err != nil {
		t.Fatalf("decodeGroup: %v", err)
	}
	if !o.Selectable {
		t.Error("Selectable should default to true when code 71 is absent")
	}
	if len(o.Members) != 2 || o.Members[0] != 1 || o.Members[1] != 2 {
		t.Fatalf("Members = %v", o.Members)
	}
}

func TestMlineStyleKeepsUnmodeledFieldsAsRaw(t *testing.T) {
	src := "2\r\nSTANDARD\r\n70\r\n0\r\n3\r\nstandard style\r\n62\r\n7\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	o, err := decodeMlineStyle(r)
	if err != nil {
		t.Fatalf("decodeMlineStyle: %v", err)
	}
	if o.Name != "STANDARD" || o.Description != "standard style" {
		t.Fatalf("decoded MlineStyle = %+v", o)
	}
	if len(o.Raw) != 1 || o.Raw[0].Code != 62 {
		t.Fatalf("Raw = %+v, want the unmodeled code-62 pair preserved", o.Raw)
	}
}
