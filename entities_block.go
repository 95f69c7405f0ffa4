package dxf

func init() {
	registerEntity("INSERT", func(r *pairReader) (Entity, error) { return decodeInsert(r) })
	registerEntity("ATTDEF", func(r *pairReader) (Entity, error) { return decodeAttDef(r) })
	registerEntity("ATTRIB", func(r *pairReader) (Entity, error) { return decodeAttrib(r) })
}

// Insert is an INSERT entity: a reference to a Block by name, with
// position, scale, rotation, and (for MINSERT-style array inserts) a
// row/column grid. When HasAttribs is set, Attribs holds the ATTRIB
// records between this record and its SEQEND (spec §4.6's
// block-insertion analogue of BLOCK/ENDBLK).
type Insert struct {
	EntityData
	BlockName  string
	Insertion  [3]float64
	ScaleX     float64
	ScaleY     float64
	ScaleZ     float64
	Rotation   float64
	ColCount   int16
	RowCount   int16
	ColSpacing float64
	RowSpacing float64
	HasAttribs bool
	Attribs    []*Attrib
}

func (e *Insert) Kind() string      { return "INSERT" }
func (e *Insert) Data() *EntityData { return &e.EntityData }

func decodeInsert(r *pairReader) (*Insert, error) {
	e := &Insert{ScaleX: 1, ScaleY: 1, ScaleZ: 1, ColCount: 1, RowCount: 1}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			break
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 2:
			e.BlockName = pair.Str
		case 10:
			e.Insertion[0] = pair.Float
		case 20:
			e.Insertion[1] = pair.Float
		case 30:
			e.Insertion[2] = pair.Float
		case 41:
			e.ScaleX = pair.Float
		case 42:
			e.ScaleY = pair.Float
		case 43:
			e.ScaleZ = pair.Float
		case 50:
			e.Rotation = pair.Float
		case 70:
			e.ColCount = int16(pair.Int)
		case 71:
			e.RowCount = int16(pair.Int)
		case 44:
			e.ColSpacing = pair.Float
		case 45:
			e.RowSpacing = pair.Float
		case 66:
			e.HasAttribs = boolFromShort(pair.Int)
		}
	}
	if e.HasAttribs {
		for {
			p, ok := r.Peek()
			if !ok {
				return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "INSERT missing SEQEND")
			}
			if p.Code == 0 && p.Str == "SEQEND" {
				r.Next()
				break
			}
			if p.Code == 0 && p.Str == "ATTRIB" {
				r.Next()
				a, err := decodeAttrib(r)
				if err != nil {
					return nil, err
				}
				e.Attribs = append(e.Attribs, a)
				continue
			}
			break
		}
	}
	if err := e.readTrailer(r); err != nil {
		return nil, err
	}
	return e, nil
}

func encodeInsert(w *pairWriter, e *Insert, target Version, anomalies *[]string) {
	w.String(0, "INSERT")
	e.writeCommon(w, "AcDbBlockReference", target, anomalies)
	if e.HasAttribs {
		w.Bool(66, true)
	}
	w.String(2, e.BlockName)
	w.Point(10, e.Insertion[0], e.Insertion[1], e.Insertion[2])
	if e.ScaleX != 1 {
		w.Float(41, e.ScaleX)
	}
	if e.ScaleY != 1 {
		w.Float(42, e.ScaleY)
	}
	if e.ScaleZ != 1 {
		w.Float(43, e.ScaleZ)
	}
	if e.Rotation != 0 {
		w.Float(50, e.Rotation)
	}
	if e.ColCount != 1 {
		w.Short(70, e.ColCount)
	}
	if e.RowCount != 1 {
		w.Short(71, e.RowCount)
	}
	if e.ColSpacing != 0 {
		w.Float(44, e.ColSpacing)
	}
	if e.RowSpacing != 0 {
		w.Float(45, e.RowSpacing)
	}
	if e.HasAttribs {
		for _, a := range e.Attribs {
			encodeAttribRecord(w, a, target, anomalies)
		}
		w.String(0, "SEQEND")
	}
}

// AttDef is an ATTDEF entity: an attribute definition template living
// inside a Block, instantiated as an Attrib on each INSERT.
type AttDef struct {
	EntityData
	Insertion  [3]float64
	Height     float64
	Tag        string
	Prompt     string
	Default    string
	Flags      int16
	Style      string
	WidthScale float64
}

func (e *AttDef) Kind() string      { return "ATTDEF" }
func (e *AttDef) Data() *EntityData { return &e.EntityData }

func decodeAttDef(r *pairReader) (*AttDef, error) {
	e := &AttDef{WidthScale: 1, Style: "Standard"}
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
		case 1:
			e.Default = pair.Str
		case 2:
			e.Tag = pair.Str
		case 3:
			e.Prompt = pair.Str
		case 70:
			e.Flags = int16(pair.Int)
		case 41:
			e.WidthScale = pair.Float
		case 7:
			e.Style = pair.Str
		}
	}
}

func encodeAttDef(w *pairWriter, e *AttDef, target Version, anomalies *[]string) {
	w.String(0, "ATTDEF")
	e.writeCommon(w, "AcDbAttributeDefinition", target, anomalies)
	w.Point(10, e.Insertion[0], e.Insertion[1], e.Insertion[2])
	w.Float(40, e.Height)
	w.String(1, e.Default)
	w.Short(70, e.Flags)
	w.String(2, e.Tag)
	w.String(3, e.Prompt)
	if e.WidthScale != 1 {
		w.Float(41, e.WidthScale)
	}
	w.String(7, e.Style)
}

// Attrib is an ATTRIB entity: one instantiated attribute value attached
// to an Insert, mirroring the corresponding ATTDEF's tag.
type Attrib struct {
	EntityData
	Insertion  [3]float64
	Height     float64
	Value      string
	Tag        string
	Flags      int16
	Style      string
	WidthScale float64
}

func (e *Attrib) Kind() string      { return "ATTRIB" }
func (e *Attrib) Data() *EntityData { return &e.EntityData }

func decodeAttrib(r *pairReader) (*Attrib, error) {
	e := &Attrib{WidthScale: 1, Style: "Standard"}
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
		case 1:
			e.Value = pair.Str
		case 2:
			e.Tag = pair.Str
		case 70:
			e.Flags = int16(pair.Int)
		case 41:
			e.WidthScale = pair.Float
		case 7:
			e.Style = pair.Str
		}
	}
}

func encodeAttrib(w *pairWriter, e *Attrib, target Version, anomalies *[]string) {
	encodeAttribRecord(w, e, target, anomalies)
}

func encodeAttribRecord(w *pairWriter, e *Attrib, target Version, anomalies *[]string) {
	w.String(0, "ATTRIB")
	e.writeCommon(w, "AcDbAttribute", target, anomalies)
	w.Point(10, e.Insertion[0], e.Insertion[1], e.Insertion[2])
	w.Float(40, e.Height)
	w.String(1, e.Value)
	w.Short(70, e.Flags)
	w.String(2, e.Tag)
	if e.WidthScale != 1 {
		w.Float(41, e.WidthScale)
	}
	w.String(7, e.Style)
}
