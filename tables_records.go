package dxf

// LayerFlags bitset (code 70): named-accessor bitset per spec §9, rather
// than one bool field per bit.
type LayerFlags int16

const (
	LayerFrozen       LayerFlags = 1
	LayerFrozenByDflt LayerFlags = 2
	LayerLocked       LayerFlags = 4
	LayerXref         LayerFlags = 16
	LayerXrefResolved LayerFlags = 32
	LayerReferenced   LayerFlags = 64
)

func (f LayerFlags) Has(bit LayerFlags) bool { return f&bit != 0 }

// Layer is a LAYER table record.
type Layer struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Flags       LayerFlags
	Color       ColorIndex
	Linetype    string
	LineWeight  int16
	PlotStyle   Handle
	IsPlottable bool
}

func (l Layer) RecordName() string { return l.Name }

func decodeLayer(r *pairReader) (Layer, error) {
	l := Layer{IsPlottable: true}
	r.Next() // 0/LAYER
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return l, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			l.Handle, _ = ParseHandle(pair.Str)
		case 330:
			l.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			l.Name = pair.Str
		case 70:
			l.Flags = LayerFlags(pair.Int)
		case 62:
			l.Color = ColorIndex(pair.Int)
		case 6:
			l.Linetype = pair.Str
		case 370:
			l.LineWeight = int16(pair.Int)
		case 390:
			l.PlotStyle, _ = ParseHandle(pair.Str)
		case 290:
			l.IsPlottable = pair.Bool
		}
	}
}

func encodeLayer(w *pairWriter, l Layer, target Version) {
	w.String(0, "LAYER")
	if l.Handle != 0 {
		w.Handle(5, l.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbLayerTableRecord")
	w.String(2, l.Name)
	w.Short(70, int16(l.Flags))
	w.Short(62, int16(l.Color))
	w.String(6, l.Linetype)
	if target.AtLeast(R2000) {
		w.Short(370, l.LineWeight)
		if l.PlotStyle != 0 {
			w.Handle(390, l.PlotStyle)
		}
		w.Bool(290, l.IsPlottable)
	}
}

// Linetype is an LTYPE table record. Dash patterns are stored as a
// slice of signed lengths: positive is a dash, negative a gap, zero a
// dot, matching AutoCAD's own encoding.
type Linetype struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Description string
	PatternLen  float64
	Pattern     []float64
}

func (l Linetype) RecordName() string { return l.Name }

func decodeLinetype(r *pairReader) (Linetype, error) {
	l := Linetype{}
	r.Next() // 0/LTYPE
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return l, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			l.Handle, _ = ParseHandle(pair.Str)
		case 330:
			l.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			l.Name = pair.Str
		case 3:
			l.Description = pair.Str
		case 40:
			l.PatternLen = pair.Float
		case 49:
			l.Pattern = append(l.Pattern, pair.Float)
		}
	}
}

func encodeLinetype(w *pairWriter, l Linetype) {
	w.String(0, "LTYPE")
	if l.Handle != 0 {
		w.Handle(5, l.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbLinetypeTableRecord")
	w.String(2, l.Name)
	w.Short(70, 0)
	w.String(3, l.Description)
	w.Short(72, 65)
	w.Short(73, int16(len(l.Pattern)))
	w.Float(40, l.PatternLen)
	for _, d := range l.Pattern {
		w.Float(49, d)
	}
}

// Style is a STYLE (text style) table record.
type Style struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Flags       int16
	FixedHeight float64
	WidthFactor float64
	ObliqueDeg  float64
	FontFile    string
	BigFontFile string
}

func (s Style) RecordName() string { return s.Name }

func decodeStyle(r *pairReader) (Style, error) {
	s := Style{WidthFactor: 1}
	r.Next() // 0/STYLE
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return s, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			s.Handle, _ = ParseHandle(pair.Str)
		case 330:
			s.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			s.Name = pair.Str
		case 70:
			s.Flags = int16(pair.Int)
		case 40:
			s.FixedHeight = pair.Float
		case 41:
			s.WidthFactor = pair.Float
		case 50:
			s.ObliqueDeg = degrees(pair.Float)
		case 3:
			s.FontFile = pair.Str
		case 4:
			s.BigFontFile = pair.Str
		}
	}
}

func encodeStyle(w *pairWriter, s Style) {
	w.String(0, "STYLE")
	if s.Handle != 0 {
		w.Handle(5, s.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbTextStyleTableRecord")
	w.String(2, s.Name)
	w.Short(70, s.Flags)
	w.Float(40, s.FixedHeight)
	w.Float(41, s.WidthFactor)
	w.Float(50, radians(s.ObliqueDeg))
	w.Short(71, 0)
	w.Float(42, s.FixedHeight)
	w.String(3, s.FontFile)
	w.String(4, s.BigFontFile)
}

// Appid is an APPID table record: a registered extended-data application
// name.
type Appid struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Flags       int16
}

func (a Appid) RecordName() string { return a.Name }

func decodeAppid(r *pairReader) (Appid, error) {
	a := Appid{}
	r.Next() // 0/APPID
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return a, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			a.Handle, _ = ParseHandle(pair.Str)
		case 330:
			a.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			a.Name = pair.Str
		case 70:
			a.Flags = int16(pair.Int)
		}
	}
}

func encodeAppid(w *pairWriter, a Appid) {
	w.String(0, "APPID")
	if a.Handle != 0 {
		w.Handle(5, a.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbRegAppTableRecord")
	w.String(2, a.Name)
	w.Short(70, a.Flags)
}

// Vport is a VPORT table record (viewport configuration).
type Vport struct {
	Handle        Handle
	OwnerHandle   Handle
	Name          string
	CenterX       float64
	CenterY       float64
	HeightInUnits float64
	AspectRatio   float64
	ViewDirX      float64
	ViewDirY      float64
	ViewDirZ      float64
}

func (v Vport) RecordName() string { return v.Name }

func decodeVport(r *pairReader) (Vport, error) {
	v := Vport{AspectRatio: 1, HeightInUnits: 1, ViewDirZ: 1}
	r.Next() // 0/VPORT
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return v, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			v.Handle, _ = ParseHandle(pair.Str)
		case 330:
			v.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			v.Name = pair.Str
		case 12:
			v.CenterX = pair.Float
		case 22:
			v.CenterY = pair.Float
		case 40:
			v.HeightInUnits = pair.Float
		case 41:
			v.AspectRatio = pair.Float
		case 16:
			v.ViewDirX = pair.Float
		case 26:
			v.ViewDirY = pair.Float
		case 36:
			v.ViewDirZ = pair.Float
		}
	}
}

func encodeVport(w *pairWriter, v Vport) {
	w.String(0, "VPORT")
	if v.Handle != 0 {
		w.Handle(5, v.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbViewportTableRecord")
	w.String(2, v.Name)
	w.Short(70, 0)
	w.Float(12, v.CenterX)
	w.Float(22, v.CenterY)
	w.Float(40, v.HeightInUnits)
	w.Float(41, v.AspectRatio)
	w.Float(16, v.ViewDirX)
	w.Float(26, v.ViewDirY)
	w.Float(36, v.ViewDirZ)
}

// View is a VIEW table record.
type View struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Width       float64
	Height      float64
	CenterX     float64
	CenterY     float64
}

func (v View) RecordName() string { return v.Name }

func decodeView(r *pairReader) (View, error) {
	v := View{}
	r.Next() // 0/VIEW
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return v, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			v.Handle, _ = ParseHandle(pair.Str)
		case 330:
			v.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			v.Name = pair.Str
		case 40:
			v.Height = pair.Float
		case 41:
			v.Width = pair.Float
		case 10:
			v.CenterX = pair.Float
		case 20:
			v.CenterY = pair.Float
		}
	}
}

func encodeView(w *pairWriter, v View) {
	w.String(0, "VIEW")
	if v.Handle != 0 {
		w.Handle(5, v.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbViewTableRecord")
	w.String(2, v.Name)
	w.Short(70, 0)
	w.Float(40, v.Height)
	w.Float(41, v.Width)
	w.Float(10, v.CenterX)
	w.Float(20, v.CenterY)
}

// Ucs is a UCS table record (named coordinate system).
type Ucs struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Origin      [3]float64
	XAxis       [3]float64
	YAxis       [3]float64
}

func (u Ucs) RecordName() string { return u.Name }

func decodeUcs(r *pairReader) (Ucs, error) {
	u := Ucs{XAxis: [3]float64{1, 0, 0}, YAxis: [3]float64{0, 1, 0}}
	r.Next() // 0/UCS
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return u, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			u.Handle, _ = ParseHandle(pair.Str)
		case 330:
			u.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			u.Name = pair.Str
		case 10:
			u.Origin[0] = pair.Float
		case 20:
			u.Origin[1] = pair.Float
		case 30:
			u.Origin[2] = pair.Float
		case 11:
			u.XAxis[0] = pair.Float
		case 21:
			u.XAxis[1] = pair.Float
		case 31:
			u.XAxis[2] = pair.Float
		case 12:
			u.YAxis[0] = pair.Float
		case 22:
			u.YAxis[1] = pair.Float
		case 32:
			u.YAxis[2] = pair.Float
		}
	}
}

func encodeUcs(w *pairWriter, u Ucs) {
	w.String(0, "UCS")
	if u.Handle != 0 {
		w.Handle(5, u.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbUCSTableRecord")
	w.String(2, u.Name)
	w.Short(70, 0)
	w.Point(10, u.Origin[0], u.Origin[1], u.Origin[2])
	w.Point(11, u.XAxis[0], u.XAxis[1], u.XAxis[2])
	w.Point(12, u.YAxis[0], u.YAxis[1], u.YAxis[2])
}

// Dimstyle is a DIMSTYLE table record. DIMSTYLE carries dozens of
// dimensioning variables in real AutoCAD; this package retains the
// handful every round-trip of a plain-default style needs and keeps
// everything else it reads as raw pairs for passthrough.
type Dimstyle struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Raw         []CodePair
}

func (d Dimstyle) RecordName() string { return d.Name }

func decodeDimstyle(r *pairReader) (Dimstyle, error) {
	d := Dimstyle{}
	r.Next() // 0/DIMSTYLE
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return d, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			d.Handle, _ = ParseHandle(pair.Str)
		case 330:
			d.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			d.Name = pair.Str
		default:
			d.Raw = append(d.Raw, pair)
		}
	}
}

func encodeDimstyle(w *pairWriter, d Dimstyle) {
	w.String(0, "DIMSTYLE")
	if d.Handle != 0 {
		w.Handle(5, d.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbDimStyleTableRecord")
	w.String(2, d.Name)
	w.Short(70, 0)
	for _, p := range d.Raw {
		w.Pair(p)
	}
}

// BlockRecord is a BLOCK_RECORD table record (R2000+): one per Block,
// tying the table name to the BLOCK/ENDBLK pair's owning handle.
type BlockRecord struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
}

func (b BlockRecord) RecordName() string { return b.Name }

func decodeBlockRecord(r *pairReader) (BlockRecord, error) {
	b := BlockRecord{}
	r.Next() // 0/BLOCK_RECORD
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return b, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			b.Handle, _ = ParseHandle(pair.Str)
		case 330:
			b.OwnerHandle, _ = ParseHandle(pair.Str)
		case 2:
			b.Name = pair.Str
		}
	}
}

func encodeBlockRecord(w *pairWriter, b BlockRecord) {
	w.String(0, "BLOCK_RECORD")
	if b.Handle != 0 {
		w.Handle(5, b.Handle)
	}
	w.String(100, "AcDbSymbolTableRecord")
	w.String(100, "AcDbBlockTableRecord")
	w.String(2, b.Name)
}

// TableSet is the whole TABLES section (spec §4.5): a fixed-order
// collection of the nine symbol tables.
type TableSet struct {
	Layers       *Table[Layer]
	Linetypes    *Table[Linetype]
	Styles       *Table[Style]
	Views        *Table[View]
	Vports       *Table[Vport]
	UCSs         *Table[Ucs]
	Appids       *Table[Appid]
	Dimstyles    *Table[Dimstyle]
	BlockRecords *Table[BlockRecord]
}

// NewTableSet returns a TableSet seeded with a default "0" layer, a
// "Standard" style and dimstyle, an "ACAD" appid, the "ByBlock",
// "ByLayer" and "Continuous" linetypes, and the "*Model_Space" and
// "*Paper_Space" block records — the minimum every AutoCAD drawing,
// including a blank one, carries.
func NewTableSet() *TableSet {
	ts := &TableSet{
		Layers:       NewTable(func(l Layer) string { return l.Name }),
		Linetypes:    NewTable(func(l Linetype) string { return l.Name }),
		Styles:       NewTable(func(s Style) string { return s.Name }),
		Views:        NewTable(func(v View) string { return v.Name }),
		Vports:       NewTable(func(v Vport) string { return v.Name }),
		UCSs:         NewTable(func(u Ucs) string { return u.Name }),
		Appids:       NewTable(func(a Appid) string { return a.Name }),
		Dimstyles:    NewTable(func(d Dimstyle) string { return d.Name }),
		BlockRecords: NewTable(func(b BlockRecord) string { return b.Name }),
	}
	ts.Layers.Add(Layer{Name: "0", Color: ColorByLayer, Linetype: "Continuous", IsPlottable: true}, nil, "LAYER")
	ts.Linetypes.Add(Linetype{Name: "ByBlock"}, nil, "LTYPE")
	ts.Linetypes.Add(Linetype{Name: "ByLayer"}, nil, "LTYPE")
	ts.Linetypes.Add(Linetype{Name: "Continuous", Description: "Solid line"}, nil, "LTYPE")
	ts.Styles.Add(Style{Name: "Standard", FontFile: "txt.shx"}, nil, "STYLE")
	ts.Appids.Add(Appid{Name: "ACAD"}, nil, "APPID")
	ts.Dimstyles.Add(Dimstyle{Name: "Standard"}, nil, "DIMSTYLE")
	ts.BlockRecords.Add(BlockRecord{Name: "*Model_Space"}, nil, "BLOCK_RECORD")
	ts.BlockRecords.Add(BlockRecord{Name: "*Paper_Space"}, nil, "BLOCK_RECORD")
	return ts
}

// decodeTables reads the TABLES section body: a fixed sequence of
// TABLE/ENDTAB frames in whatever order the file presents them in (this
// package preserves read order internally via TableSet's fixed fields,
// but tolerates files that order tables differently than spec §3's
// canonical write order).
func decodeTables(r *pairReader, anomalies *[]string) (*TableSet, error) {
	ts := NewTableSet()
	ts.Layers = NewTable(func(l Layer) string { return l.Name })
	ts.Linetypes = NewTable(func(l Linetype) string { return l.Name })
	ts.Styles = NewTable(func(s Style) string { return s.Name })
	ts.Views = NewTable(func(v View) string { return v.Name })
	ts.Vports = NewTable(func(v Vport) string { return v.Name })
	ts.UCSs = NewTable(func(u Ucs) string { return u.Name })
	ts.Appids = NewTable(func(a Appid) string { return a.Name })
	ts.Dimstyles = NewTable(func(d Dimstyle) string { return d.Name })
	ts.BlockRecords = NewTable(func(b BlockRecord) string { return b.Name })

	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "TABLES section never closed")
		}
		if p.Code == 0 && p.Str == "ENDSEC" {
			r.Next()
			return ts, nil
		}
		if p.Code != 0 || p.Str != "TABLE" {
			return nil, newSyntaxError(UnexpectedCode, r.Offset(), p, "expected 0/TABLE in TABLES section")
		}
		// Peek the table name (code 2 immediately follows 0/TABLE) to
		// decide which concrete decoder drives this frame.
		nameCode, err := peekTableName(r)
		if err != nil {
			return nil, err
		}
		switch nameCode {
		case "LAYER":
			h, o, err := decodeTableFrame(r, "LAYER", func(r *pairReader) error {
				l, err := decodeLayer(r)
				if err != nil {
					return err
				}
				ts.Layers.Add(l, anomalies, "LAYER")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Layers.Handle, ts.Layers.OwnerHandle = h, o
		case "LTYPE":
			h, o, err := decodeTableFrame(r, "LTYPE", func(r *pairReader) error {
				l, err := decodeLinetype(r)
				if err != nil {
					return err
				}
				ts.Linetypes.Add(l, anomalies, "LTYPE")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Linetypes.Handle, ts.Linetypes.OwnerHandle = h, o
		case "STYLE":
			h, o, err := decodeTableFrame(r, "STYLE", func(r *pairReader) error {
				s, err := decodeStyle(r)
				if err != nil {
					return err
				}
				ts.Styles.Add(s, anomalies, "STYLE")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Styles.Handle, ts.Styles.OwnerHandle = h, o
		case "VIEW":
			h, o, err := decodeTableFrame(r, "VIEW", func(r *pairReader) error {
				v, err := decodeView(r)
				if err != nil {
					return err
				}
				ts.Views.Add(v, anomalies, "VIEW")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Views.Handle, ts.Views.OwnerHandle = h, o
		case "VPORT":
			h, o, err := decodeTableFrame(r, "VPORT", func(r *pairReader) error {
				v, err := decodeVport(r)
				if err != nil {
					return err
				}
				ts.Vports.Add(v, anomalies, "VPORT")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Vports.Handle, ts.Vports.OwnerHandle = h, o
		case "UCS":
			h, o, err := decodeTableFrame(r, "UCS", func(r *pairReader) error {
				u, err := decodeUcs(r)
				if err != nil {
					return err
				}
				ts.UCSs.Add(u, anomalies, "UCS")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.UCSs.Handle, ts.UCSs.OwnerHandle = h, o
		case "APPID":
			h, o, err := decodeTableFrame(r, "APPID", func(r *pairReader) error {
				a, err := decodeAppid(r)
				if err != nil {
					return err
				}
				ts.Appids.Add(a, anomalies, "APPID")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Appids.Handle, ts.Appids.OwnerHandle = h, o
		case "DIMSTYLE":
			h, o, err := decodeTableFrame(r, "DIMSTYLE", func(r *pairReader) error {
				d, err := decodeDimstyle(r)
				if err != nil {
					return err
				}
				ts.Dimstyles.Add(d, anomalies, "DIMSTYLE")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.Dimstyles.Handle, ts.Dimstyles.OwnerHandle = h, o
		case "BLOCK_RECORD":
			h, o, err := decodeTableFrame(r, "BLOCK_RECORD", func(r *pairReader) error {
				b, err := decodeBlockRecord(r)
				if err != nil {
					return err
				}
				ts.BlockRecords.Add(b, anomalies, "BLOCK_RECORD")
				return nil
			})
			if err != nil {
				return nil, err
			}
			ts.BlockRecords.Handle, ts.BlockRecords.OwnerHandle = h, o
		default:
			// Unknown table kind: drain to ENDTAB and move on.
			r.Next() // 0/TABLE
			r.Next() // 2/<name>
			for {
				p, ok := r.Peek()
				if !ok {
					return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "unknown TABLE never closed")
				}
				if p.Code == 0 && p.Str == "ENDTAB" {
					r.Next()
					break
				}
				r.Next()
			}
		}
	}
}

// peekTableName consumes the opening "0/TABLE 2/<name>" pair and returns
// the name, since pairReader only offers one-pair lookahead (spec §4.2)
// and dispatch needs to see the name before picking a concrete decoder.
// decodeTableFrame therefore starts from just after this pair.
func peekTableName(r *pairReader) (string, error) {
	open, err := r.Next()
	if err != nil || open.Code != 0 {
		return "", newSyntaxError(UnexpectedCode, r.Offset(), open, "expected 0/TABLE")
	}
	nameP, err := r.Next()
	if err != nil || nameP.Code != 2 {
		return "", newSyntaxError(UnexpectedCode, r.Offset(), nameP, "expected 2/<table name> after 0/TABLE")
	}
	return nameP.Str, nil
}
