package dxf

func init() {
	registerEntity("LWPOLYLINE", func(r *pairReader) (Entity, error) { return decodeLWPolyline(r) })
	registerEntity("POLYLINE", func(r *pairReader) (Entity, error) { return decodePolyline(r) })
	registerEntity("SPLINE", func(r *pairReader) (Entity, error) { return decodeSpline(r) })
}

// LWPolylineVertex is one vertex of an LWPOLYLINE: a 2D point plus
// per-vertex starting bulge (arc sag factor).
type LWPolylineVertex struct {
	X, Y  float64
	Bulge float64
}

// LWPolylineFlags bitset (code 70).
type LWPolylineFlags int16

const LWPolylineClosed LWPolylineFlags = 1

// LWPolyline is an LWPOLYLINE entity (R14+): a lightweight 2D polyline
// storing its vertices inline rather than as separate VERTEX records.
type LWPolyline struct {
	EntityData
	Flags      LWPolylineFlags
	Elevation  float64
	Thickness  float64
	ConstWidth float64
	Vertices   []LWPolylineVertex
}

func (e *LWPolyline) Kind() string      { return "LWPOLYLINE" }
func (e *LWPolyline) Data() *EntityData { return &e.EntityData }

func decodeLWPolyline(r *pairReader) (*LWPolyline, error) {
	e := &LWPolyline{}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	var cur *LWPolylineVertex
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
		case 70:
			e.Flags = LWPolylineFlags(pair.Int)
		case 38:
			e.Elevation = pair.Float
		case 39:
			e.Thickness = pair.Float
		case 43:
			e.ConstWidth = pair.Float
		case 10:
			e.Vertices = append(e.Vertices, LWPolylineVertex{X: pair.Float})
			cur = &e.Vertices[len(e.Vertices)-1]
		case 20:
			if cur != nil {
				cur.Y = pair.Float
			}
		case 42:
			if cur != nil {
				cur.Bulge = pair.Float
			}
		}
	}
}

func encodeLWPolyline(w *pairWriter, e *LWPolyline, target Version, anomalies *[]string) {
	w.String(0, "LWPOLYLINE")
	e.writeCommon(w, "AcDbPolyline", target, anomalies)
	w.Int(90, int32(len(e.Vertices)))
	w.Short(70, int16(e.Flags))
	if e.ConstWidth != 0 {
		w.Float(43, e.ConstWidth)
	}
	if e.Elevation != 0 {
		w.Float(38, e.Elevation)
	}
	if e.Thickness != 0 {
		w.Float(39, e.Thickness)
	}
	for _, v := range e.Vertices {
		w.Float(10, v.X)
		w.Float(20, v.Y)
		if v.Bulge != 0 {
			w.Float(42, v.Bulge)
		}
	}
}

// PolylineFlags bitset (code 70).
type PolylineFlags int16

const (
	PolylineClosed     PolylineFlags = 1
	PolylineIs3D       PolylineFlags = 8
	PolylineIsPolyface PolylineFlags = 64
)

// Vertex is a VERTEX record belonging to a Polyline.
type Vertex struct {
	EntityData
	Location [3]float64
	Bulge    float64
	Flags    int16
}

func (v *Vertex) Kind() string      { return "VERTEX" }
func (v *Vertex) Data() *EntityData { return &v.EntityData }

func decodeVertex(r *pairReader) (*Vertex, error) {
	v := &Vertex{}
	if err := v.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := v.readTrailer(r); err != nil {
				return nil, err
			}
			return v, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 10:
			v.Location[0] = pair.Float
		case 20:
			v.Location[1] = pair.Float
		case 30:
			v.Location[2] = pair.Float
		case 42:
			v.Bulge = pair.Float
		case 70:
			v.Flags = int16(pair.Int)
		}
	}
}

func encodeVertex(w *pairWriter, v *Vertex, target Version, anomalies *[]string) {
	w.String(0, "VERTEX")
	v.writeCommon(w, "AcDbVertex", target, anomalies)
	w.String(100, "AcDb2dVertex")
	w.Point(10, v.Location[0], v.Location[1], v.Location[2])
	if v.Bulge != 0 {
		w.Float(42, v.Bulge)
	}
	w.Short(70, v.Flags)
}

// Polyline is a POLYLINE entity: a sequence of VERTEX records terminated
// by SEQEND (spec §4.6's BLOCK/ENDBLK 3-state pattern recurs here at
// smaller scale: POLYLINE/VERTEX.../SEQEND).
type Polyline struct {
	EntityData
	Flags    PolylineFlags
	Vertices []*Vertex
}

func (e *Polyline) Kind() string      { return "POLYLINE" }
func (e *Polyline) Data() *EntityData { return &e.EntityData }

func decodePolyline(r *pairReader) (*Polyline, error) {
	e := &Polyline{}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			break
		}
		pair, _ := r.Next()
		if pair.Code == 70 {
			e.Flags = PolylineFlags(pair.Int)
		}
	}
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "POLYLINE missing SEQEND")
		}
		if p.Code == 0 && p.Str == "SEQEND" {
			r.Next()
			break
		}
		if p.Code == 0 && p.Str == "VERTEX" {
			r.Next()
			v, err := decodeVertex(r)
			if err != nil {
				return nil, err
			}
			e.Vertices = append(e.Vertices, v)
			continue
		}
		// Anything else ends the POLYLINE...SEQEND run early (e.g. a
		// malformed file missing SEQEND). Unlike a missing ENDBLK, no
		// anomaly is recorded; a stream that ends before SEQEND is an
		// error (above).
		break
	}
	if err := e.readTrailer(r); err != nil {
		return nil, err
	}
	return e, nil
}

func encodePolyline(w *pairWriter, e *Polyline, target Version, anomalies *[]string) {
	w.String(0, "POLYLINE")
	e.writeCommon(w, "AcDb2dPolyline", target, anomalies)
	w.Short(66, 1)
	w.Short(70, int16(e.Flags))
	for _, v := range e.Vertices {
		encodeVertex(w, v, target, anomalies)
	}
	w.String(0, "SEQEND")
}

// SplineFlags bitset (code 70).
type SplineFlags int16

const (
	SplineClosed   SplineFlags = 1
	SplinePeriodic SplineFlags = 2
	SplineRational SplineFlags = 4
	SplinePlanar   SplineFlags = 8
)

// Spline is a SPLINE entity: a NURBS curve given by its degree, knot
// vector, optional per-control-point weights, control points, and
// optional fit points.
type Spline struct {
	EntityData
	Flags         SplineFlags
	Degree        int16
	Knots         []float64
	Weights       []float64
	ControlPoints [][3]float64
	FitPoints     [][3]float64
}

func (e *Spline) Kind() string      { return "SPLINE" }
func (e *Spline) Data() *EntityData { return &e.EntityData }

func decodeSpline(r *pairReader) (*Spline, error) {
	e := &Spline{}
	if err := e.readCommon(r); err != nil {
		return nil, err
	}
	var cp, fp *[3]float64
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
		case 70:
			e.Flags = SplineFlags(pair.Int)
		case 71:
			e.Degree = int16(pair.Int)
		case 40:
			e.Knots = append(e.Knots, pair.Float)
		case 41:
			e.Weights = append(e.Weights, pair.Float)
		case 10:
			e.ControlPoints = append(e.ControlPoints, [3]float64{pair.Float, 0, 0})
			cp = &e.ControlPoints[len(e.ControlPoints)-1]
		case 20:
			if cp != nil {
				cp[1] = pair.Float
			}
		case 30:
			if cp != nil {
				cp[2] = pair.Float
			}
		case 11:
			e.FitPoints = append(e.FitPoints, [3]float64{pair.Float, 0, 0})
			fp = &e.FitPoints[len(e.FitPoints)-1]
		case 21:
			if fp != nil {
				fp[1] = pair.Float
			}
		case 31:
			if fp != nil {
				fp[2] = pair.Float
			}
		}
	}
}

func encodeSpline(w *pairWriter, e *Spline, target Version, anomalies *[]string) {
	w.String(0, "SPLINE")
	e.writeCommon(w, "AcDbSpline", target, anomalies)
	w.Short(70, int16(e.Flags))
	w.Short(71, e.Degree)
	w.Int(72, int32(len(e.Knots)))
	w.Int(73, int32(len(e.ControlPoints)))
	w.Int(74, int32(len(e.FitPoints)))
	for _, k := range e.Knots {
		w.Float(40, k)
	}
	for _, wt := range e.Weights {
		w.Float(41, wt)
	}
	for _, p := range e.ControlPoints {
		w.Point(10, p[0], p[1], p[2])
	}
	for _, p := range e.FitPoints {
		w.Point(11, p[0], p[1], p[2])
	}
}
