package dxf

// ObjectData is the common header every OBJECTS record carries (spec
// §4's "non-graphical records similarly structured" note): handle,
// owner, and extension/XData passthrough, with no layer/color since
// objects are non-graphical.
type ObjectData struct {
	Handle      Handle
	OwnerHandle Handle
	ExtGroups   []ExtensionGroup
	XData       []XDataEntry
}

// Object is any decoded OBJECTS record.
type Object interface {
	Kind() string
	Data() *ObjectData
}

func (d *ObjectData) readCommon(r *pairReader) error {
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
		case 100:
			r.Next() // subclass marker
		default:
			// Leave unrecognized codes, including the object's own
			// subclass-specific fields, for the object-specific decoder.
			return nil
		}
	}
}

func (d *ObjectData) writeCommon(w *pairWriter, subclass string) {
	if d.Handle != 0 {
		w.Handle(5, d.Handle)
	}
	if d.OwnerHandle != 0 {
		w.Handle(330, d.OwnerHandle)
	}
	if subclass != "" {
		w.String(100, subclass)
	}
}

func (d *ObjectData) readTrailer(r *pairReader) error {
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

func (d *ObjectData) writeTrailer(w *pairWriter) {
	writeExtensionGroups(w, d.ExtGroups)
	writeXData(w, d.XData)
}

// UnknownObject retains an OBJECTS record verbatim when its kind has no
// registered decoder.
type UnknownObject struct {
	ObjectData
	TypeName string
	Raw      []CodePair
}

func (o *UnknownObject) Kind() string      { return o.TypeName }
func (o *UnknownObject) Data() *ObjectData { return &o.ObjectData }

func decodeUnknownObject(r *pairReader, typeName string) (*UnknownObject, error) {
	o := &UnknownObject{TypeName: typeName}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return o, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			o.Handle, _ = ParseHandle(pair.Str)
		case 330:
			o.OwnerHandle, _ = ParseHandle(pair.Str)
		default:
			o.Raw = append(o.Raw, pair)
		}
	}
}

func encodeUnknownObject(w *pairWriter, o *UnknownObject) {
	w.String(0, o.TypeName)
	if o.Handle != 0 {
		w.Handle(5, o.Handle)
	}
	if o.OwnerHandle != 0 {
		w.Handle(330, o.OwnerHandle)
	}
	for _, p := range o.Raw {
		w.Pair(p)
	}
}

type objectDecoder func(r *pairReader) (Object, error)

var objectRegistry = map[string]objectDecoder{}

func registerObject(typeName string, dec objectDecoder) {
	objectRegistry[typeName] = dec
}

// decodeObject reads one "0/<TYPE> ..." OBJECTS record, dispatching to a
// registered decoder or falling back to UnknownObject.
func decodeObject(r *pairReader) (Object, error) {
	open, err := r.Next() // 0/<TYPE>
	if err != nil {
		return nil, err
	}
	typeName := open.Str
	if dec, ok := objectRegistry[typeName]; ok {
		return dec(r)
	}
	return decodeUnknownObject(r, typeName)
}

func encodeObject(w *pairWriter, o Object, target Version) {
	switch v := o.(type) {
	case *Dictionary:
		encodeDictionary(w, v, target)
	case *XRecord:
		encodeXRecord(w, v, target)
	case *Layout:
		encodeLayout(w, v, target)
	case *MlineStyle:
		encodeMlineStyle(w, v, target)
	case *Group:
		encodeGroup(w, v, target)
	case *UnknownObject:
		encodeUnknownObject(w, v)
	default:
	}
	o.Data().writeTrailer(w)
}

// decodeObjects reads the whole OBJECTS section body (R13+).
func decodeObjects(r *pairReader, anomalies *[]string) ([]Object, error) {
	var objs []Object
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "OBJECTS section never closed")
		}
		if p.Code == 0 && p.Str == "ENDSEC" {
			r.Next()
			return objs, nil
		}
		if p.Code != 0 {
			return nil, newSyntaxError(UnexpectedCode, r.Offset(), p, "expected 0/<kind> in OBJECTS section")
		}
		o, err := decodeObject(r)
		if err != nil {
			return nil, err
		}
		if _, ok := o.(*UnknownObject); ok {
			anomalyf(anomalies, AnoUnknownObject, o.Kind())
		}
		objs = append(objs, o)
	}
}

func encodeObjects(w *pairWriter, objs []Object, target Version) {
	if !target.AtLeast(R13) {
		return
	}
	w.section("OBJECTS")
	for _, o := range objs {
		encodeObject(w, o, target)
	}
	w.endsec()
}
