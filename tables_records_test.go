package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTableSetSeedsDefaults(t *testing.T) {
	ts := NewTableSet()
	if _, ok := ts.Layers.Lookup("0"); !ok {
		t.Error("default layer \"0\" must be seeded")
	}
	if _, ok := ts.Linetypes.Lookup("Continuous"); !ok {
		t.Error("default linetype \"Continuous\" must be seeded")
	}
	if _, ok := ts.Styles.Lookup("Standard"); !ok {
		t.Error("default style \"Standard\" must be seeded")
	}
	if _, ok := ts.BlockRecords.Lookup("*Model_Space"); !ok {
		t.Error("default block record \"*Model_Space\" must be seeded")
	}
	if _, ok := ts.BlockRecords.Lookup("*Paper_Space"); !ok {
		t.Error("default block record \"*Paper_Space\" must be seeded")
	}
}

func TestLayerDecodeEncode(t *testing.T) {
	src := "0\r\nLAYER\r\n5\r\n3F\r\n330\r\n10\r\n2\r\nWALLS\r\n70\r\n1\r\n62\r\n5\r\n6\r\nDASHED\r\n" +
		"370\r\n25\r\n290\r\n0\r\n0\r\nENDTAB\r\n"
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)
	l, err := decodeLayer(r)
	if err != nil {
		t.Fatalf("decodeLayer: %v", err)
	}
	if l.Name != "WALLS" || l.Color != 5 || l.Linetype != "DASHED" {
		t.Fatalf("decoded layer = %+v", l)
	}
	if !l.Flags.Has(LayerFrozen) {
		t.Error("LayerFrozen flag should be set (code 70 = 1)")
	}
	if l.IsPlottable {
		t.Error("IsPlottable should be false (code 290 = 0)")
	}

	var buf bytes.Buffer
	w := newPairWriter(&buf)
	encodeLayer(w, l, R2000)
	w.Flush()
	out := buf.String()
	if !strings.Contains(out, "WALLS") || !strings.Contains(out, "DASHED") {
		t.Errorf("encoded layer missing expected fields:\n%s", out)
	}
}

func TestLayerEncodeOmitsR2000FieldsBelowR2000(t *testing.T) {
	l := Layer{Name: "0", LineWeight: 25, PlotStyle: 1, IsPlottable: false}
	var buf bytes.Buffer
	w := newPairWriter(&buf)
	encodeLayer(w, l, R14)
	w.Flush()
	if strings.Contains(buf.String(), "370\r\n25\r\n") {
		t.Error("LineWeight (code 370) should not be emitted below R2000")
	}
}

func TestStyleObliqueAngleIsDegreesInMemory(t *testing.T) {
	src := "0\r\nSTYLE\r\n2\r\nItalic\r\n50\r\n0.174533\r\n0\r\nENDTAB\r\n" // ~10 degrees in radians
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)
	s, err := decodeStyle(r)
	if err != nil {
		t.Fatalf("decodeStyle: %v", err)
	}
	if s.ObliqueDeg < 9.9 || s.ObliqueDeg > 10.1 {
		t.Errorf("ObliqueDeg = %v, want ~10 degrees", s.ObliqueDeg)
	}
}

func TestDimstylePreservesUnmodeledFieldsAsRaw(t *testing.T) {
	src := "0\r\nDIMSTYLE\r\n2\r\nMYDIM\r\n41\r\n2.5\r\n0\r\nENDTAB\r\n"
	tok, err := newPairTokenizer(strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("newPairTokenizer: %v", err)
	}
	r := newPairReader(tok)
	d, err := decodeDimstyle(r)
	if err != nil {
		t.Fatalf("decodeDimstyle: %v", err)
	}
	if d.Name != "MYDIM" {
		t.Fatalf("name = %q", d.Name)
	}
	if len(d.Raw) != 1 || d.Raw[0].Code != 41 {
		t.Fatalf("Raw = %+v, want the unmodeled code-41 pair preserved", d.Raw)
	}
}
