package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestLWPolylineVertices(t *testing.T) {
	src := "8\r\n0\r\n70\r\n1\r\n43\r\n0.5\r\n" +
		"10\r\n0.0\r\n20\r\n0.0\r\n42\r\n0.1\r\n" +
		"10\r\n1.0\r\n20\r\n0.0\r\n" +
		"10\r\n1.0\r\n20\r\n1.0\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	e, err := decodeLWPolyline(r)
	if err != nil {
		t.Fatalf("decodeLWPolyline: %v", err)
	}
	if len(e.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(e.Vertices))
	}
	if e.Vertices[0].Bulge != 0.1 {
		t.Errorf("first vertex bulge = %v, want 0.1", e.Vertices[0].Bulge)
	}
	if e.Vertices[2] != (LWPolylineVertex{X: 1, Y: 1}) {
		t.Errorf("third vertex = %+v", e.Vertices[2])
	}
	if e.Flags&LWPolylineClosed == 0 {
		t.Error("Closed flag should be set")
	}
}

func TestPolylineVertexSeqendTermination(t *testing.T) {
	src := "8\r\n0\r\n70\r\n0\r\n" +
		"0\r\nVERTEX\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n" +
		"0\r\nVERTEX\r\n8\r\n0\r\n10\r\n1.0\r\n20\r\n1.0\r\n30\r\n0.0\r\n" +
		"0\r\nSEQEND\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	e, err := decodePolyline(r)
	if err != nil {
		t.Fatalf("decodePolyline: %v", err)
	}
	if len(e.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2", len(e.Vertices))
	}
	if e.Vertices[1].Location != [3]float64{1, 1, 0} {
		t.Errorf("second vertex location = %v", e.Vertices[1].Location)
	}

	var buf bytes.Buffer
	w := newPairWriter(&buf)
	encodePolyline(w, e, R2013, nil)
	w.Flush()
	out := buf.String()
	if !strings.Contains(out, "SEQEND") {
		t.Error("encoded POLYLINE must be terminated by SEQEND")
	}
}

func TestPolylineMissingSeqendErrors(t *testing.T) {
	src := "8\r\n0\r\n70\r\n0\r\n0\r\nVERTEX\r\n8\r\n0\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n"
	r := decodeFrom(t, src)
	_, err := decodePolyline(r)
	if err == nil {
		t.Error("expected an error when SEQEND never arrives before EOF")
	}
}

func TestSplineControlAndFitPoints(t *testing.T) {
	src := "8\r\n0\r\n70\r\n0\r\n71\r\n3\r\n" +
		"40\r\n0.0\r\n40\r\n0.0\r\n40\r\n1.0\r\n40\r\n1.0\r\n" +
		"10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n" +
		"10\r\n1.0\r\n20\r\n1.0\r\n30\r\n0.0\r\n" +
		"11\r\n0.5\r\n21\r\n0.5\r\n31\r\n0.0\r\n0\r\nEOF\r\n"
	r := decodeFrom(t, src)
	e, err := decodeSpline(r)
	if err != nil {
		t.Fatalf("decodeSpline: %v", err)
	}
	if e.Degree != 3 {
		t.Errorf("Degree = %v, want 3", e.Degree)
	}
	if len(e.ControlPoints) != 2 || len(e.FitPoints) != 1 {
		t.Fatalf("control=%d fit=%d, want 2/1", len(e.ControlPoints), len(e.FitPoints))
	}
	if e.ControlPoints[1] != [3]float64{1, 1, 0} {
		t.Errorf("ControlPoints[1] = %v", e.ControlPoints[1])
	}
}
