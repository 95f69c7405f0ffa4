package dxf

// EntityData is the common header every entity kind carries (spec §3):
// handle, owner, layer/linetype/color, and the extension-data groups and
// XData every entity may attach regardless of its specific geometry.
type EntityData struct {
	Handle       Handle
	OwnerHandle  Handle
	Layer        string
	Linetype     string
	Color        ColorIndex
	LineWeight   int16
	Transparency Transparency
	PaperSpace   bool
	ExtGroups    []ExtensionGroup
	XData        []XDataEntry
}

// Entity is any decoded ENTITIES/BLOCKS record. Kind is the DXF record
// name as written (code 0), e.g. "LINE" or "LWPOLYLINE". Concrete kinds
// implement this by embedding EntityData and adding their own fields;
// UnknownEntity implements it for kinds this package does not model.
type Entity interface {
	Kind() string
	Data() *EntityData
}

func (d *EntityData) readCommon(r *pairReader) error {
	for {
		p, ok := r.Peek()
		if !ok {
			return nil
		}
		switch p.Code {
		case 0, 1001, 102:
			return nil
		case 5:
			pair, _ := r.Next()
			d.Handle, _ = ParseHandle(pair.Str)
		case 330:
			pair, _ := r.Next()
			d.OwnerHandle, _ = ParseHandle(pair.Str)
		case 8:
			pair, _ := r.Next()
			d.Layer = pair.Str
		case 6:
			pair, _ := r.Next()
			d.Linetype = pair.Str
		case 62:
			pair, _ := r.Next()
			d.Color = ColorIndex(pair.Int)
		case 370:
			pair, _ := r.Next()
			d.LineWeight = int16(pair.Int)
		case 440:
			pair, _ := r.Next()
			d.Transparency = Transparency(pair.Int)
		case 67:
			pair, _ := r.Next()
			d.PaperSpace = boolFromShort(pair.Int)
		case 100:
			r.Next() // subclass marker, e.g. AcDbEntity/AcDbLine
		default:
			// Anything else belongs to the entity's own subclass (its
			// geometry codes) or is a common field this package doesn't
			// model individually (e.g. code 48 linetype scale, 60
			// visibility). Either way it's not readCommon's to consume:
			// leave it in the lookahead for the entity-specific decoder,
			// which drops what it doesn't recognize on its own.
			return nil
		}
	}
}

// entityCommonMinVersion names the minimum target Version each
// version-conditional EntityData field may be written at (spec §4.6: a
// field whose minimum version exceeds target is suppressed, never
// written as an out-of-range value). Fields absent from this table have
// been valid since the earliest version this package supports.
const (
	lineWeightMinVersion   = R2000
	transparencyMinVersion = R2004
)

func (d *EntityData) writeCommon(w *pairWriter, subclass string, target Version, anomalies *[]string) {
	if d.Handle != 0 {
		w.Handle(5, d.Handle)
	}
	if d.OwnerHandle != 0 {
		w.Handle(330, d.OwnerHandle)
	}
	w.String(100, "AcDbEntity")
	if d.PaperSpace {
		w.Bool(67, true)
	}
	w.String(8, d.Layer)
	if d.Linetype != "" {
		w.String(6, d.Linetype)
	}
	if d.Color != 0 {
		w.Short(62, int16(d.Color))
	}
	if d.LineWeight != 0 {
		if target.AtLeast(lineWeightMinVersion) {
			w.Short(370, d.LineWeight)
		} else {
			anomalyf(anomalies, AnoFieldDroppedForVersion, subclass, "LineWeight", target.String())
		}
	}
	if d.Transparency != TransparencyByLayer {
		if target.AtLeast(transparencyMinVersion) {
			w.Int(440, int32(d.Transparency))
		} else {
			anomalyf(anomalies, AnoFieldDroppedForVersion, subclass, "Transparency", target.String())
		}
	}
	if subclass != "" {
		w.String(100, subclass)
	}
}

func (d *EntityData) readTrailer(r *pairReader) error {
	groups, err := readExtensionGroups(r)
	if err != nil {
		return err
	}
	d.ExtGroups = groups
	xd, err := readXData(r)
	if err != nil {
		return err
	}
	d.XData = xd
	return nil
}

func (d *EntityData) writeTrailer(w *pairWriter) {
	writeExtensionGroups(w, d.ExtGroups)
	writeXData(w, d.XData)
}

// UnknownEntity retains the entire record verbatim (all pairs including
// its own 0-code header) for an ENTITIES/BLOCKS record whose kind has no
// registered decoder (spec §9: forward-compatible passthrough).
type UnknownEntity struct {
	EntityData
	TypeName string
	Raw      []CodePair
}

func (e *UnknownEntity) Kind() string      { return e.TypeName }
func (e *UnknownEntity) Data() *EntityData { return &e.EntityData }

func decodeUnknownEntity(r *pairReader, typeName string) (*UnknownEntity, error) {
	e := &UnknownEntity{TypeName: typeName}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return e, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			e.Handle, _ = ParseHandle(pair.Str)
		case 330:
			e.OwnerHandle, _ = ParseHandle(pair.Str)
		case 8:
			e.Layer = pair.Str
		default:
			e.Raw = append(e.Raw, pair)
		}
	}
}

func encodeUnknownEntity(w *pairWriter, e *UnknownEntity) {
	w.String(0, e.TypeName)
	if e.Handle != 0 {
		w.Handle(5, e.Handle)
	}
	if e.OwnerHandle != 0 {
		w.Handle(330, e.OwnerHandle)
	}
	w.String(8, e.Layer)
	for _, p := range e.Raw {
		w.Pair(p)
	}
}

// entityDecoder decodes one entity's body, given the pairReader already
// positioned just after the "0/<TYPE>" pair that introduced it.
type entityDecoder func(r *pairReader) (Entity, error)

// entityRegistry dispatches on the code-0 type string. Registered in
// entities_*.go init()s, per spec §9's "register concrete kinds, fall
// back to passthrough" pattern.
var entityRegistry = map[string]entityDecoder{}

func registerEntity(typeName string, dec entityDecoder) {
	entityRegistry[typeName] = dec
}

// decodeEntity reads one "0/<TYPE> ..." entity record, dispatching to a
// registered decoder or falling back to UnknownEntity.
func decodeEntity(r *pairReader) (Entity, error) {
	open, err := r.Next() // 0/<TYPE>
	if err != nil {
		return nil, err
	}
	typeName := open.Str
	if dec, ok := entityRegistry[typeName]; ok {
		return dec(r)
	}
	return decodeUnknownEntity(r, typeName)
}

// encodeEntity dispatches on the concrete type via a type switch, the
// idiomatic Go analogue of spec §9's polymorphic "encode by kind" note:
// Go has no virtual methods on data alone, so each kind below
// self-describes through its own Kind()/Data() pair, but the actual
// field layout dispatch still needs the concrete type.
func encodeEntity(w *pairWriter, e Entity, target Version, anomalies *[]string) {
	switch v := e.(type) {
	case *Line:
		encodeLine(w, v, target, anomalies)
	case *Point3D:
		encodePoint3D(w, v, target, anomalies)
	case *Circle:
		encodeCircle(w, v, target, anomalies)
	case *Arc:
		encodeArc(w, v, target, anomalies)
	case *Ellipse:
		encodeEllipse(w, v, target, anomalies)
	case *Face3D:
		encodeFace3D(w, v, target, anomalies)
	case *Solid:
		encodeSolid(w, v, target, anomalies)
	case *LWPolyline:
		encodeLWPolyline(w, v, target, anomalies)
	case *Polyline:
		encodePolyline(w, v, target, anomalies)
	case *Spline:
		encodeSpline(w, v, target, anomalies)
	case *Text:
		encodeText(w, v, target, anomalies)
	case *MText:
		encodeMText(w, v, target, anomalies)
	case *Insert:
		encodeInsert(w, v, target, anomalies)
	case *AttDef:
		encodeAttDef(w, v, target, anomalies)
	case *Attrib:
		encodeAttrib(w, v, target, anomalies)
	case *Dimension:
		encodeDimension(w, v, target, anomalies)
	case *Hatch:
		encodeHatch(w, v, target, anomalies)
	case *UnknownEntity:
		encodeUnknownEntity(w, v)
	default:
		// Unreachable for entities produced by this package's own
		// decoders; a caller-constructed Entity of an unregistered
		// concrete type is silently dropped, matching the tolerant
		// posture elsewhere in this package.
		return
	}
	e.Data().writeTrailer(w)
}
