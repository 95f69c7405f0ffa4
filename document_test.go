package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentMinimalRoundTrip(t *testing.T) {
	d := NewDocument(R2013)
	d.Entities = append(d.Entities, &Line{
		EntityData: EntityData{Layer: "0", Handle: d.AllocHandle()},
		Start:      [3]float64{0, 0, 0},
		End:        [3]float64{10, 0, 0},
	})

	var buf bytes.Buffer
	if err := d.Save(&buf, R2013); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(loaded.Entities))
	}
	line, ok := loaded.Entities[0].(*Line)
	if !ok {
		t.Fatalf("loaded entity has type %T, want *Line", loaded.Entities[0])
	}
	if line.End != [3]float64{10, 0, 0} {
		t.Errorf("End = %v, want {10 0 0}", line.End)
	}
	if loaded.Version != R2013 {
		t.Errorf("Version = %v, want R2013", loaded.Version)
	}
}

func TestDocumentSaveOmitsBlockRecordTableBelowR2000(t *testing.T) {
	d := NewDocument(R12)
	var buf bytes.Buffer
	if err := d.Save(&buf, R12); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(buf.String(), "BLOCK_RECORD") {
		t.Error("BLOCK_RECORD table should not be emitted below R2000")
	}
}

func TestDocumentBlockRoundTripOmitsEntityHandles(t *testing.T) {
	d := NewDocument(R2013)
	line := &Line{EntityData: EntityData{Layer: "0", Handle: d.AllocHandle()}, Start: [3]float64{0, 0, 0}, End: [3]float64{1, 1, 0}}
	d.Blocks = append(d.Blocks, &Block{
		Handle:   d.AllocHandle(),
		Layer:    "0",
		Name:     "MYBLOCK",
		Entities: []Entity{line},
	})

	var buf bytes.Buffer
	if err := d.Save(&buf, R2013); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Blocks) != 1 || len(loaded.Blocks[0].Entities) != 1 {
		t.Fatalf("loaded blocks = %+v", loaded.Blocks)
	}
	loadedLine, ok := loaded.Blocks[0].Entities[0].(*Line)
	if !ok {
		t.Fatalf("block entity has type %T, want *Line", loaded.Blocks[0].Entities[0])
	}
	if loadedLine.Handle != 0 {
		t.Errorf("entity read back from inside a block should have no handle of its own, got %v", loadedLine.Handle)
	}
}

func TestDocumentToleratesUnknownSectionEntityAndObject(t *testing.T) {
	src := "0\r\nSECTION\r\n2\r\nFUTURESECTION\r\n999\r\nsomething unknown\r\n0\r\nENDSEC\r\n" +
		"0\r\nSECTION\r\n2\r\nENTITIES\r\n" +
		"0\r\nFUTUREENTITY\r\n8\r\n0\r\n" +
		"0\r\nENDSEC\r\n" +
		"0\r\nSECTION\r\n2\r\nOBJECTS\r\n" +
		"0\r\nFUTUREOBJECT\r\n5\r\n1\r\n" +
		"0\r\nENDSEC\r\n" +
		"0\r\nEOF\r\n"
	d, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Entities) != 1 || d.Entities[0].Kind() != "FUTUREENTITY" {
		t.Fatalf("Entities = %+v", d.Entities)
	}
	if len(d.Objects) != 1 || d.Objects[0].Kind() != "FUTUREOBJECT" {
		t.Fatalf("Objects = %+v", d.Objects)
	}
	wantAnomalies := map[string]bool{
		anomalyPrefix(AnoUnknownSection): false,
		anomalyPrefix(AnoUnknownEntity):  false,
		anomalyPrefix(AnoUnknownObject):  false,
	}
	for _, a := range d.Anomalies {
		for prefix := range wantAnomalies {
			if strings.HasPrefix(a, prefix) {
				wantAnomalies[prefix] = true
			}
		}
	}
	for prefix, seen := range wantAnomalies {
		if !seen {
			t.Errorf("expected an anomaly with prefix %q, got %v", prefix, d.Anomalies)
		}
	}
}

// anomalyPrefix returns the literal text preceding the first format verb
// in one of the Ano* templates, for matching against a formatted anomaly
// string without depending on the substituted value.
func anomalyPrefix(template string) string {
	if i := strings.IndexByte(template, '%'); i >= 0 {
		return template[:i]
	}
	return template
}

func TestDocumentStrictHandlesRejectsCollision(t *testing.T) {
	src := "0\r\nSECTION\r\n2\r\nENTITIES\r\n" +
		"0\r\nLINE\r\n5\r\n1\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n11\r\n1.0\r\n21\r\n0.0\r\n31\r\n0.0\r\n" +
		"0\r\nLINE\r\n5\r\n1\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n11\r\n2.0\r\n21\r\n0.0\r\n31\r\n0.0\r\n" +
		"0\r\nENDSEC\r\n0\r\nEOF\r\n"

	if _, err := Parse(src); err != nil {
		t.Fatalf("Parse without StrictHandles should tolerate the collision: %v", err)
	}

	if _, err := Load(strings.NewReader(src), &Options{StrictHandles: true}); err == nil {
		t.Error("Load with StrictHandles should reject a document with a duplicate handle")
	}
}

func TestDocumentMaxEntitiesTruncates(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("0\r\nSECTION\r\n2\r\nENTITIES\r\n")
	for i := 0; i < 5; i++ {
		sb.WriteString("0\r\nLINE\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n11\r\n1.0\r\n21\r\n0.0\r\n31\r\n0.0\r\n")
	}
	sb.WriteString("0\r\nENDSEC\r\n0\r\nEOF\r\n")

	d, err := Load(strings.NewReader(sb.String()), &Options{MaxEntities: 2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Entities) != 2 {
		t.Fatalf("got %d entities, want 2 (truncated)", len(d.Entities))
	}
	found := false
	prefix := anomalyPrefix(AnoEntitiesTruncated)
	for _, a := range d.Anomalies {
		if strings.HasPrefix(a, prefix) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an anomaly with prefix %q, got %v", prefix, d.Anomalies)
	}
}

func TestSaveDropsTransparencyBelowR2004(t *testing.T) {
	d := NewDocument(R12)
	d.Entities = append(d.Entities, &Line{
		EntityData: EntityData{Layer: "0", Transparency: Transparency(0x02000000)},
		Start:      [3]float64{0, 0, 0},
		End:        [3]float64{1, 0, 0},
	})

	var buf bytes.Buffer
	if err := d.Save(&buf, R12); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	line := loaded.Entities[0].(*Line)
	if line.Transparency != TransparencyByLayer {
		t.Errorf("Transparency = %#x, want default (dropped below R2004)", line.Transparency)
	}
	prefix := anomalyPrefix(AnoFieldDroppedForVersion)
	found := false
	for _, a := range d.Anomalies {
		if strings.HasPrefix(a, prefix) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an %q anomaly, got %v", prefix, d.Anomalies)
	}
}

func TestSavePreservesTransparencyAtR2004(t *testing.T) {
	d := NewDocument(R2004)
	d.Entities = append(d.Entities, &Line{
		EntityData: EntityData{Layer: "0", Transparency: Transparency(0x02000000)},
		Start:      [3]float64{0, 0, 0},
		End:        [3]float64{1, 0, 0},
	})

	var buf bytes.Buffer
	if err := d.Save(&buf, R2004); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	line := loaded.Entities[0].(*Line)
	if line.Transparency != Transparency(0x02000000) {
		t.Errorf("Transparency = %#x, want 0x2000000 preserved at R2004", line.Transparency)
	}
}

func TestSaveAssignsMissingHandles(t *testing.T) {
	d := NewDocument(R2000)
	d.Entities = append(d.Entities,
		&Line{EntityData: EntityData{Layer: "0"}, Start: [3]float64{0, 0, 0}, End: [3]float64{1, 0, 0}},
		&Line{EntityData: EntityData{Layer: "0"}, Start: [3]float64{0, 0, 0}, End: [3]float64{2, 0, 0}},
	)

	var buf bytes.Buffer
	if err := d.Save(&buf, R2000); err != nil {
		t.Fatalf("Save: %v", err)
	}

	h0 := d.Entities[0].Data().Handle
	h1 := d.Entities[1].Data().Handle
	if h0 == 0 || h1 == 0 {
		t.Fatalf("Save should assign non-zero handles, got %v and %v", h0, h1)
	}
	if h0 == h1 {
		t.Fatalf("Save should assign distinct handles, got %v for both", h0)
	}

	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seed := loaded.Header.String("$HANDSEED")
	seedHandle, err := ParseHandle(seed)
	if err != nil {
		t.Fatalf("ParseHandle($HANDSEED=%q): %v", seed, err)
	}
	max := h0
	if h1 > max {
		max = h1
	}
	if seedHandle <= max {
		t.Errorf("$HANDSEED = %v, want greater than the maximum assigned handle %v", seedHandle, max)
	}
}

func TestSaveRenumbersDuplicateHandle(t *testing.T) {
	d := NewDocument(R2000)
	dup := Handle(0x10)
	first := &Line{EntityData: EntityData{Layer: "0", Handle: dup}, Start: [3]float64{0, 0, 0}, End: [3]float64{1, 0, 0}}
	second := &Line{EntityData: EntityData{Layer: "0", Handle: dup}, Start: [3]float64{0, 0, 0}, End: [3]float64{2, 0, 0}}
	d.Entities = append(d.Entities, first, second)

	var buf bytes.Buffer
	if err := d.Save(&buf, R2000); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if first.Handle != dup {
		t.Errorf("first-seen binding should keep its handle, got %v", first.Handle)
	}
	if second.Handle == dup || second.Handle == 0 {
		t.Errorf("later duplicate should be renumbered to a fresh non-zero handle, got %v", second.Handle)
	}
	prefix := anomalyPrefix(AnoHandleRenumbered)
	found := false
	for _, a := range d.Anomalies {
		if strings.HasPrefix(a, prefix) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an %q anomaly, got %v", prefix, d.Anomalies)
	}
}

func TestNewDocumentDefaultsRoundTripThroughSaveAndLoad(t *testing.T) {
	d := NewDocument(R2013)
	var buf bytes.Buffer
	if err := d.Save(&buf, R2013); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(&buf, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := loaded.Tables.Layers.Lookup("0"); !ok {
		t.Error("default layer \"0\" should survive a Save/Load round trip")
	}
	if _, ok := loaded.Tables.Styles.Lookup("Standard"); !ok {
		t.Error("default style \"Standard\" should survive a Save/Load round trip")
	}
}
