package dxf

func init() {
	registerEntity("TEXT", func(r *pairReader) (Entity, error) { return decodeText(r) })
	registerEntity("MTEXT", func(r *pairReader) (Entity, error) { return decodeMText(r) })
}

// Text is a TEXT entity: single-line text anchored at an insertion
// point, with optional second alignment point (spec §4.9: the second
// point is only meaningful when HAlign/VAlign request anything other
// than baseline-left).
type Text struct {
	EntityData
	Insertion  [3]float64
	Alignment  [3]float64
	Height     float64
	Value      string
	Rotation   float64
	WidthScale float64
	Style      string
	HAlign     int16
	VAlign     int16
}

func (e *Text) Kind() string      { return "TEXT" }
func (e *Text) Data() *EntityData { return &e.EntityData }

func decodeText(r *pairReader) (*Text, error) {
	e := &Text{WidthScale: 1, Style: "Standard"}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := e.readTrailer(r); err != nil {
				return nil, err
			}
			return e, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 10:
			e.Insertion[0] = pair.Float
		case 20:
			e.Insertion[1] = pair.Float
		case 30:
			e.Insertion[2] = pair.Float
		case 11:
			e.Alignment[0] = pair.Float
		case 21:
			e.Alignment[1] = pair.Float
		case 31:
			e.Alignment[2] = pair.Float
		case 40:
			e.Height = pair.Float
		case 1:
			e.Value = pair.Str
		case 50:
			e.Rotation = pair.Float
		case 41:
			e.WidthScale = pair.Float
		case 7:
			e.Style = pair.Str
		case 72:
			e.HAlign = int16(pair.Int)
		case 73:
			e.VAlign = int16(pair.Int)
		}
	}
}

func encodeText(w *pairWriter, e *Text, target Version, anomalies *[]string) {
	w.String(0, "TEXT")
	e.writeCommon(w, "AcDbText", target, anomalies)
	w.Point(10, e.Insertion[0], e.Insertion[1], e.Insertion[2])
	w.Float(40, e.Height)
	w.String(1, e.Value)
	if e.Rotation != 0 {
		w.Float(50, e.Rotation)
	}
	if e.WidthScale != 1 {
		w.Float(41, e.WidthScale)
	}
	w.String(7, e.Style)
	if e.HAlign != 0 {
		w.Short(72, e.HAlign)
	}
	if e.HAlign != 0 || e.VAlign != 0 {
		w.Point(11, e.Alignment[0], e.Alignment[1], e.Alignment[2])
	}
	if e.VAlign != 0 {
		w.String(100, "AcDbText")
		w.Short(73, e.VAlign)
	}
}

// MText is an MTEXT entity: multi-line formatted text. Value is the
// concatenation of the primary (code 1) and continuation (code 3)
// strings, since this package does not enforce the 250-byte chunking
// boundary real AutoCAD writers use when splitting long strings across
// multiple code-3 pairs (spec Non-goals: transport-level chunking is
// not modeled, only the text it encodes).
type MText struct {
	EntityData
	Insertion   [3]float64
	Height      float64
	RefWidth    float64
	AttachPoint int16
	DrawingDir  int16
	Value       string
	Style       string
	Rotation    float64
}

func (e *MText) Kind() string      { return "MTEXT" }
func (e *MText) Data() *EntityData { return &e.EntityData }

func decodeMText(r *pairReader) (*MText, error) {
	e := &MText{Style: "Standard"}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := e.readTrailer(r); err != nil {
				return nil, err
			}
			return e, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 10:
			e.Insertion[0] = pair.Float
		case 20:
			e.Insertion[1] = pair.Float
		case 30:
			e.Insertion[2] = pair.Float
		case 40:
			e.Height = pair.Float
		case 41:
			e.RefWidth = pair.Float
		case 71:
			e.AttachPoint = int16(pair.Int)
		case 72:
			e.DrawingDir = int16(pair.Int)
		case 1, 3:
			e.Value += pair.Str
		case 7:
			e.Style = pair.Str
		case 50:
			e.Rotation = pair.Float
		}
	}
}

func encodeMText(w *pairWriter, e *MText, target Version, anomalies *[]string) {
	w.String(0, "MTEXT")
	e.writeCommon(w, "AcDbMText", target, anomalies)
	w.Point(10, e.Insertion[0], e.Insertion[1], e.Insertion[2])
	w.Float(40, e.Height)
	w.Float(41, e.RefWidth)
	w.Short(71, e.AttachPoint)
	w.Short(72, e.DrawingDir)
	w.String(1, e.Value)
	w.String(7, e.Style)
	if e.Rotation != 0 {
		w.Float(50, e.Rotation)
	}
}
