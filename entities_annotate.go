package dxf

func init() {
	registerEntity("DIMENSION", func(r *pairReader) (Entity, error) { return decodeDimension(r) })
	registerEntity("HATCH", func(r *pairReader) (Entity, error) { return decodeHatch(r) })
}

// DimensionType is the low 5 bits of code 70, naming which of the six
// dimension kinds (linear, aligned, angular, diameter, radius, ordinate)
// this record describes; the upper bits are status flags this package
// keeps in RawFlags for passthrough.
type DimensionType int16

const (
	DimRotated  DimensionType = 0
	DimAligned  DimensionType = 1
	DimAngular  DimensionType = 2
	DimDiameter DimensionType = 3
	DimRadius   DimensionType = 4
	DimOrdinate DimensionType = 6
)

// Dimension is a DIMENSION entity: the shared header every dimension
// kind carries (block name, definition/text points, measured value,
// style) plus the type code distinguishing which geometry it annotates.
// Per-type extra points (e.g. the two leader points of an angular
// dimension) are not modeled individually; this package round-trips the
// common subset every dimension kind shares and keeps the rest as
// verbatim extension pairs via Raw.
type Dimension struct {
	EntityData
	BlockName   string
	DefPoint    [3]float64
	TextMidpt   [3]float64
	Type        DimensionType
	RawFlags    int16
	Text        string
	TextAngle   float64
	Measurement float64
	Style       string
	Raw         []CodePair
}

func (e *Dimension) Kind() string      { return "DIMENSION" }
func (e *Dimension) Data() *EntityData { return &e.EntityData }

func decodeDimension(r *pairReader) (*Dimension, error) {
	e := &Dimension{Style: "Standard"}
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
		case 2:
			e.BlockName = pair.Str
		case 10:
			e.DefPoint[0] = pair.Float
		case 20:
			e.DefPoint[1] = pair.Float
		case 30:
			e.DefPoint[2] = pair.Float
		case 11:
			e.TextMidpt[0] = pair.Float
		case 21:
			e.TextMidpt[1] = pair.Float
		case 31:
			e.TextMidpt[2] = pair.Float
		case 70:
			e.RawFlags = int16(pair.Int)
			e.Type = DimensionType(pair.Int & 0x1F)
		case 1:
			e.Text = pair.Str
		case 53:
			e.TextAngle = pair.Float
		case 42:
			e.Measurement = pair.Float
		case 3:
			e.Style = pair.Str
		default:
			e.Raw = append(e.Raw, pair)
		}
	}
}

func encodeDimension(w *pairWriter, e *Dimension, target Version, anomalies *[]string) {
	w.String(0, "DIMENSION")
	e.writeCommon(w, "AcDbDimension", target, anomalies)
	w.String(2, e.BlockName)
	w.Point(10, e.DefPoint[0], e.DefPoint[1], e.DefPoint[2])
	w.Point(11, e.TextMidpt[0], e.TextMidpt[1], e.TextMidpt[2])
	w.Short(70, int16(e.Type)|e.RawFlags&^0x1F)
	if e.Text != "" {
		w.String(1, e.Text)
	}
	if e.TextAngle != 0 {
		w.Float(53, e.TextAngle)
	}
	w.String(3, e.Style)
	w.Float(42, e.Measurement)
	for _, p := range e.Raw {
		w.Pair(p)
	}
}

// HatchBoundaryPath is one boundary loop of a Hatch, stored as a
// polyline-style vertex list — HATCH's full boundary grammar (circular
// arcs, elliptic arcs, and spline edges within a single path) is not
// modeled; non-polyline edges are retained verbatim in the owning
// Hatch's Raw.
type HatchBoundaryPath struct {
	Vertices [][2]float64
	IsClosed bool
}

// Hatch is a HATCH entity: a filled region bounded by one or more
// boundary paths, with a named or custom-defined pattern.
type Hatch struct {
	EntityData
	PatternName string
	IsSolid     bool
	Elevation   float64
	Paths       []HatchBoundaryPath
	Raw         []CodePair
}

func (e *Hatch) Kind() string      { return "HATCH" }
func (e *Hatch) Data() *EntityData { return &e.EntityData }

func decodeHatch(r *pairReader) (*Hatch, error) {
	e := &Hatch{}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	var curPath *HatchBoundaryPath
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
		case 2:
			e.PatternName = pair.Str
		case 30:
			e.Elevation = pair.Float
		case 70:
			e.IsSolid = boolFromShort(pair.Int)
		case 92:
			e.Paths = append(e.Paths, HatchBoundaryPath{})
			curPath = &e.Paths[len(e.Paths)-1]
		case 73:
			if curPath != nil {
				curPath.IsClosed = boolFromShort(pair.Int)
			}
		case 10:
			if curPath != nil {
				curPath.Vertices = append(curPath.Vertices, [2]float64{pair.Float, 0})
			} else {
				e.Raw = append(e.Raw, pair)
			}
		case 20:
			if curPath != nil && len(curPath.Vertices) > 0 {
				curPath.Vertices[len(curPath.Vertices)-1][1] = pair.Float
			} else {
				e.Raw = append(e.Raw, pair)
			}
		default:
			e.Raw = append(e.Raw, pair)
		}
	}
}

func encodeHatch(w *pairWriter, e *Hatch, target Version, anomalies *[]string) {
	w.String(0, "HATCH")
	e.writeCommon(w, "AcDbHatch", target, anomalies)
	w.Point(10, 0, 0, e.Elevation)
	w.String(2, e.PatternName)
	w.Bool(70, e.IsSolid)
	w.Short(71, 0)
	w.Int(91, int32(len(e.Paths)))
	for _, path := range e.Paths {
		w.Int(92, 2) // boundary path type flag: polyline
		w.Bool(73, path.IsClosed)
		w.Int(93, int32(len(path.Vertices)))
		for _, v := range path.Vertices {
			w.Float(10, v[0])
			w.Float(20, v[1])
		}
	}
	for _, p := range e.Raw {
		w.Pair(p)
	}
}
