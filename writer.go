package dxf

import (
	"bufio"
	"io"
	"strconv"
)

// pairWriter emits CodePairs in the classic two-line ASCII framing with
// CRLF line endings (spec §6: "write CRLF"). It never emits the compact
// single-line framing, and never emits 999 comments — both are
// accept-only per spec §4.1.
type pairWriter struct {
	w   *bufio.Writer
	err error
}

func newPairWriter(w io.Writer) *pairWriter {
	return &pairWriter{w: bufio.NewWriter(w)}
}

func (w *pairWriter) writeLine(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
		return
	}
	if _, err := w.w.WriteString("\r\n"); err != nil {
		w.err = err
	}
}

func (w *pairWriter) writeCode(code int) { w.writeLine(strconv.Itoa(code)) }

// String emits a KindString pair.
func (w *pairWriter) String(code int, v string) {
	w.writeCode(code)
	w.writeLine(v)
}

// Float emits a KindFloat pair using DXF's conventional fixed-point
// formatting (6 decimal places), matching what every major DXF writer
// emits for point/length fields.
func (w *pairWriter) Float(code int, v float64) {
	w.writeCode(code)
	w.writeLine(strconv.FormatFloat(v, 'f', 6, 64))
}

// Short emits a KindShort pair.
func (w *pairWriter) Short(code int, v int16) {
	w.writeCode(code)
	w.writeLine(strconv.FormatInt(int64(v), 10))
}

// Int emits a KindInt pair.
func (w *pairWriter) Int(code int, v int32) {
	w.writeCode(code)
	w.writeLine(strconv.FormatInt(int64(v), 10))
}

// Bool emits a KindBool pair as a short 0/1.
func (w *pairWriter) Bool(code int, v bool) {
	w.writeCode(code)
	if v {
		w.writeLine("1")
	} else {
		w.writeLine("0")
	}
}

// Handle emits a handle-valued string pair (codes 5, 105, 330-369, 390).
func (w *pairWriter) Handle(code int, h Handle) {
	w.String(code, h.String())
}

// Point emits a 3D point as three consecutive float pairs at code,
// code+10 (the Y offset), code+20 (the Z offset) — the 10/20/30 (or
// 11/21/31, ...) convention every DXF entity uses for point fields.
func (w *pairWriter) Point(code int, x, y, z float64) {
	w.Float(code, x)
	w.Float(code+10, y)
	w.Float(code+20, z)
}

// Pair emits a pre-built CodePair verbatim, used for unknown-field
// passthrough (unknown header variables, XRECORD bodies) that must
// survive round-trip without reinterpretation.
func (w *pairWriter) Pair(p CodePair) {
	w.writeCode(p.Code)
	switch p.Kind {
	case KindString:
		w.writeLine(p.Str)
	case KindBool:
		if p.Bool {
			w.writeLine("1")
		} else {
			w.writeLine("0")
		}
	case KindFloat:
		w.writeLine(strconv.FormatFloat(p.Float, 'f', 6, 64))
	default:
		w.writeLine(strconv.FormatInt(p.Int, 10))
	}
}

func (w *pairWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return nil
}

// section/endsec/eof are the three framing markers every write path
// (header, tables, blocks, entities, objects) shares.
func (w *pairWriter) section(name string) {
	w.String(0, "SECTION")
	w.String(2, name)
}

func (w *pairWriter) endsec() { w.String(0, "ENDSEC") }

func (w *pairWriter) eof() { w.String(0, "EOF") }
