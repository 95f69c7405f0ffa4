package dxf

func init() {
	registerObject("DICTIONARY", func(r *pairReader) (Object, error) { return decodeDictionary(r) })
	registerObject("XRECORD", func(r *pairReader) (Object, error) { return decodeXRecord(r) })
	registerObject("LAYOUT", func(r *pairReader) (Object, error) { return decodeLayout(r) })
	registerObject("MLINESTYLE", func(r *pairReader) (Object, error) { return decodeMlineStyle(r) })
	registerObject("GROUP", func(r *pairReader) (Object, error) { return decodeGroup(r) })
}

// DictionaryEntry is one (name, owned-object handle) pair of a
// Dictionary, the 3/350 code pair run (spec §4.10).
type DictionaryEntry struct {
	Name   string
	Target Handle
}

// Dictionary is a DICTIONARY object: a named map from string key to
// owned-object handle, the backbone AutoCAD uses to organize objects
// that aren't entities or symbol-table records (layouts, mline styles,
// group definitions, and arbitrary XRECORD payloads all hang off one).
type Dictionary struct {
	ObjectData
	HardOwned bool
	Cloning   int16
	Entries   []DictionaryEntry
}

func (o *Dictionary) Kind() string      { return "DICTIONARY" }
func (o *Dictionary) Data() *ObjectData { return &o.ObjectData }

func decodeDictionary(r *pairReader) (*Dictionary, error) {
	o := &Dictionary{}
	if err := o.readCommon(r); err != nil {
		return nil, err
	}
	var pendingName string
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := o.readTrailer(r); err != nil {
				return nil, err
			}
			return o, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 280:
			o.HardOwned = boolFromShort(pair.Int)
		case 281:
			o.Cloning = int16(pair.Int)
		case 3:
			pendingName = pair.Str
		case 350, 360:
			h, _ := ParseHandle(pair.Str)
			o.Entries = append(o.Entries, DictionaryEntry{Name: pendingName, Target: h})
			pendingName = ""
		}
	}
}

func encodeDictionary(w *pairWriter, o *Dictionary, target Version) {
	w.String(0, "DICTIONARY")
	o.writeCommon(w, "AcDbDictionary")
	w.Bool(280, o.HardOwned)
	w.Short(281, o.Cloning)
	for _, e := range o.Entries {
		w.String(3, e.Name)
		w.Handle(350, e.Target)
	}
}

// Lookup returns the handle filed under name, if any.
func (o *Dictionary) Lookup(name string) (Handle, bool) {
	for _, e := range o.Entries {
		if e.Name == name {
			return e.Target, true
		}
	}
	return 0, false
}

// XRecord is an XRECORD object: an arbitrary bag of code/value pairs an
// application stores under a Dictionary entry. This package has no
// opinion on XRECORD's contents and preserves them verbatim.
type XRecord struct {
	ObjectData
	Cloning int16
	Raw     []CodePair
}

func (o *XRecord) Kind() string      { return "XRECORD" }
func (o *XRecord) Data() *ObjectData { return &o.ObjectData }

func decodeXRecord(r *pairReader) (*XRecord, error) {
	o := &XRecord{}
	if err := o.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			if err := o.readTrailer(r); err != nil {
				return nil, err
			}
			return o, nil
		}
		pair, _ := r.Next()
		if pair.Code == 280 {
			o.Cloning = int16(pair.Int)
			continue
		}
		o.Raw = append(o.Raw, pair)
	}
}

func encodeXRecord(w *pairWriter, o *XRecord, target Version) {
	w.String(0, "XRECORD")
	o.writeCommon(w, "AcDbXrecord")
	w.Short(280, o.Cloning)
	for _, p := range o.Raw {
		w.Pair(p)
	}
}

// Layout is a LAYOUT object: the paper-space/model-space page setup
// AutoCAD's layout tabs reference.
type Layout struct {
	ObjectData
	Name       string
	Flags      int16
	TabOrder   int16
	BlockOwner Handle
}

func (o *Layout) Kind() string      { return "LAYOUT" }
func (o *Layout) Data() *ObjectData { return &o.ObjectData }

func decodeLayout(r *pairReader) (*Layout, error) {
	o := &Layout{}
	if err := o.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := o.readTrailer(r); err != nil {
				return nil, err
			}
			return o, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 1:
			o.Name = pair.Str
		case 70:
			o.Flags = int16(pair.Int)
		case 71:
			o.TabOrder = int16(pair.Int)
		case 330:
			o.BlockOwner, _ = ParseHandle(pair.Str)
		}
	}
}

func encodeLayout(w *pairWriter, o *Layout, target Version) {
	w.String(0, "LAYOUT")
	o.writeCommon(w, "AcDbLayout")
	w.String(1, o.Name)
	w.Short(70, o.Flags)
	w.Short(71, o.TabOrder)
	if o.BlockOwner != 0 {
		w.Handle(330, o.BlockOwner)
	}
}

// MlineStyle is an MLINESTYLE object: a named multiline style (element
// offsets/colors are not modeled individually; this package round-trips
// the style's name, description, and flags and keeps element data
// verbatim via Raw).
type MlineStyle struct {
	ObjectData
	Name        string
	Description string
	Flags       int16
	Raw         []CodePair
}

func (o *MlineStyle) Kind() string      { return "MLINESTYLE" }
func (o *MlineStyle) Data() *ObjectData { return &o.ObjectData }

func decodeMlineStyle(r *pairReader) (*MlineStyle, error) {
	o := &MlineStyle{}
	if err := o.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := o.readTrailer(r); err != nil {
				return nil, err
			}
			return o, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 2:
			o.Name = pair.Str
		case 3:
			o.Description = pair.Str
		case 70:
			o.Flags = int16(pair.Int)
		default:
			o.Raw = append(o.Raw, pair)
		}
	}
}

func encodeMlineStyle(w *pairWriter, o *MlineStyle, target Version) {
	w.String(0, "MLINESTYLE")
	o.writeCommon(w, "AcDbMlineStyle")
	w.String(2, o.Name)
	w.Short(70, o.Flags)
	w.String(3, o.Description)
	for _, p := range o.Raw {
		w.Pair(p)
	}
}

// Group is a GROUP object: a named, possibly unnamed ("*") collection of
// entity handles that select together.
type Group struct {
	ObjectData
	Description string
	Unnamed     bool
	Selectable  bool
	Members     []Handle
}

func (o *Group) Kind() string      { return "GROUP" }
func (o *Group) Data() *ObjectData { return &o.ObjectData }

func decodeGroup(r *pairReader) (*Group, error) {
	o := &Group{Selectable: true}
	if err := o.readCommon(r); err != nil {
		return nil, err
	}
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 || p.Code == 1001 || p.Code == 102 {
			if err := o.readTrailer(r); err != nil {
				return nil, err
			}
			return o, nil
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 300:
			o.Description = pair.Str
		case 70:
			o.Unnamed = boolFromShort(pair.Int)
		case 71:
			o.Selectable = boolFromShort(pair.Int)
		case 340:
			h, _ := ParseHandle(pair.Str)
			o.Members = append(o.Members, h)
		}
	}
}

func encodeGroup(w *pairWriter, o *Group, target Version) {
	w.String(0, "GROUP")
	o.writeCommon(w, "AcDbGroup")
	w.String(300, o.Description)
	w.Bool(70, o.Unnamed)
	w.Bool(71, o.Selectable)
	for _, h := range o.Members {
		w.Handle(340, h)
	}
}
