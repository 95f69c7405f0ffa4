package dxf

func init() {
	registerEntity("LINE", func(r *pairReader) (Entity, error) { return decodeLine(r) })
	registerEntity("POINT", func(r *pairReader) (Entity, error) { return decodePoint3D(r) })
	registerEntity("CIRCLE", func(r *pairReader) (Entity, error) { return decodeCircle(r) })
	registerEntity("ARC", func(r *pairReader) (Entity, error) { return decodeArc(r) })
	registerEntity("ELLIPSE", func(r *pairReader) (Entity, error) { return decodeEllipse(r) })
	registerEntity("3DFACE", func(r *pairReader) (Entity, error) { return decodeFace3D(r) })
	registerEntity("SOLID", func(r *pairReader) (Entity, error) { return decodeSolid(r) })
}

// Line is a LINE entity: a straight segment between two 3D points.
type Line struct {
	EntityData
	Start [3]float64
	End   [3]float64
}

func (e *Line) Kind() string      { return "LINE" }
func (e *Line) Data() *EntityData { return &e.EntityData }

func decodeLine(r *pairReader) (*Line, error) {
	e := &Line{}
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
			e.Start[0] = pair.Float
		case 20:
			e.Start[1] = pair.Float
		case 30:
			e.Start[2] = pair.Float
		case 11:
			e.End[0] = pair.Float
		case 21:
			e.End[1] = pair.Float
		case 31:
			e.End[2] = pair.Float
		}
	}
}

func encodeLine(w *pairWriter, e *Line, target Version, anomalies *[]string) {
	w.String(0, "LINE")
	e.writeCommon(w, "AcDbLine", target, anomalies)
	w.Point(10, e.Start[0], e.Start[1], e.Start[2])
	w.Point(11, e.End[0], e.End[1], e.End[2])
}

// Point3D is a POINT entity: a single location.
type Point3D struct {
	EntityData
	Location [3]float64
}

func (e *Point3D) Kind() string      { return "POINT" }
func (e *Point3D) Data() *EntityData { return &e.EntityData }

func decodePoint3D(r *pairReader) (*Point3D, error) {
	e := &Point3D{}
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
			e.Location[0] = pair.Float
		case 20:
			e.Location[1] = pair.Float
		case 30:
			e.Location[2] = pair.Float
		}
	}
}

func encodePoint3D(w *pairWriter, e *Point3D, target Version, anomalies *[]string) {
	w.String(0, "POINT")
	e.writeCommon(w, "AcDbPoint", target, anomalies)
	w.Point(10, e.Location[0], e.Location[1], e.Location[2])
}

// Circle is a CIRCLE entity.
type Circle struct {
	EntityData
	Center [3]float64
	Radius float64
}

func (e *Circle) Kind() string      { return "CIRCLE" }
func (e *Circle) Data() *EntityData { return &e.EntityData }

func decodeCircle(r *pairReader) (*Circle, error) {
	e := &Circle{}
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
			e.Center[0] = pair.Float
		case 20:
			e.Center[1] = pair.Float
		case 30:
			e.Center[2] = pair.Float
		case 40:
			e.Radius = pair.Float
		}
	}
}

func encodeCircle(w *pairWriter, e *Circle, target Version, anomalies *[]string) {
	w.String(0, "CIRCLE")
	e.writeCommon(w, "AcDbCircle", target, anomalies)
	w.Point(10, e.Center[0], e.Center[1], e.Center[2])
	w.Float(40, e.Radius)
}

// Arc is an ARC entity: a CIRCLE plus a start/end angle range in degrees.
type Arc struct {
	EntityData
	Center     [3]float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (e *Arc) Kind() string      { return "ARC" }
func (e *Arc) Data() *EntityData { return &e.EntityData }

func decodeArc(r *pairReader) (*Arc, error) {
	e := &Arc{}
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
			e.Center[0] = pair.Float
		case 20:
			e.Center[1] = pair.Float
		case 30:
			e.Center[2] = pair.Float
		case 40:
			e.Radius = pair.Float
		case 50:
			e.StartAngle = pair.Float
		case 51:
			e.EndAngle = pair.Float
		}
	}
}

func encodeArc(w *pairWriter, e *Arc, target Version, anomalies *[]string) {
	w.String(0, "ARC")
	e.writeCommon(w, "AcDbCircle", target, anomalies)
	w.Point(10, e.Center[0], e.Center[1], e.Center[2])
	w.Float(40, e.Radius)
	w.String(100, "AcDbArc")
	w.Float(50, e.StartAngle)
	w.Float(51, e.EndAngle)
}

// Ellipse is an ELLIPSE entity: a center, a major-axis endpoint relative
// to the center, a minor/major axis ratio, and a start/end parameter
// range in radians (full ellipse when both are the defaults 0/2π).
type Ellipse struct {
	EntityData
	Center     [3]float64
	MajorAxis  [3]float64
	AxisRatio  float64
	StartParam float64
	EndParam   float64
}

func (e *Ellipse) Kind() string      { return "ELLIPSE" }
func (e *Ellipse) Data() *EntityData { return &e.EntityData }

func decodeEllipse(r *pairReader) (*Ellipse, error) {
	e := &Ellipse{AxisRatio: 1}
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
			e.Center[0] = pair.Float
		case 20:
			e.Center[1] = pair.Float
		case 30:
			e.Center[2] = pair.Float
		case 11:
			e.MajorAxis[0] = pair.Float
		case 21:
			e.MajorAxis[1] = pair.Float
		case 31:
			e.MajorAxis[2] = pair.Float
		case 40:
			e.AxisRatio = pair.Float
		case 41:
			e.StartParam = pair.Float
		case 42:
			e.EndParam = pair.Float
		}
	}
}

func encodeEllipse(w *pairWriter, e *Ellipse, target Version, anomalies *[]string) {
	w.String(0, "ELLIPSE")
	e.writeCommon(w, "AcDbEllipse", target, anomalies)
	w.Point(10, e.Center[0], e.Center[1], e.Center[2])
	w.Point(11, e.MajorAxis[0], e.MajorAxis[1], e.MajorAxis[2])
	w.Float(40, e.AxisRatio)
	w.Float(41, e.StartParam)
	w.Float(42, e.EndParam)
}

// Face3D is a 3DFACE entity: a quadrilateral (or triangle, with the
// fourth point repeating the third) in 3-space, with per-edge visibility
// flags packed into code 70.
type Face3D struct {
	EntityData
	Points [4][3]float64
	Flags  int16
}

func (e *Face3D) Kind() string      { return "3DFACE" }
func (e *Face3D) Data() *EntityData { return &e.EntityData }

func decodeFace3D(r *pairReader) (*Face3D, error) {
	e := &Face3D{}
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
		case 10, 11, 12, 13:
			e.Points[pair.Code-10][0] = pair.Float
		case 20, 21, 22, 23:
			e.Points[pair.Code-20][1] = pair.Float
		case 30, 31, 32, 33:
			e.Points[pair.Code-30][2] = pair.Float
		case 70:
			e.Flags = int16(pair.Int)
		}
	}
}

func encodeFace3D(w *pairWriter, e *Face3D, target Version, anomalies *[]string) {
	w.String(0, "3DFACE")
	e.writeCommon(w, "AcDbFace", target, anomalies)
	for i, p := range e.Points {
		w.Point(10+i, p[0], p[1], p[2])
	}
	if e.Flags != 0 {
		w.Short(70, e.Flags)
	}
}

// Solid is a SOLID entity: a filled triangle or quadrilateral, point
// order per the legacy SOLID convention (third and fourth corners
// swapped relative to the visual quad order 3DFACE uses).
type Solid struct {
	EntityData
	Points [4][3]float64
}

func (e *Solid) Kind() string      { return "SOLID" }
func (e *Solid) Data() *EntityData { return &e.EntityData }

func decodeSolid(r *pairReader) (*Solid, error) {
	e := &Solid{}
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
		case 10, 11, 12, 13:
			e.Points[pair.Code-10][0] = pair.Float
		case 20, 21, 22, 23:
			e.Points[pair.Code-20][1] = pair.Float
		case 30, 31, 32, 33:
			e.Points[pair.Code-30][2] = pair.Float
		}
	}
}

func encodeSolid(w *pairWriter, e *Solid, target Version, anomalies *[]string) {
	w.String(0, "SOLID")
	e.writeCommon(w, "AcDbTrace", target, anomalies)
	for i, p := range e.Points {
		w.Point(10+i, p[0], p[1], p[2])
	}
}
