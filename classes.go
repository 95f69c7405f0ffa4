package dxf

// Class is one CLASSES section entry (R13+, spec §4.7): registered
// metadata for a custom/ObjectARX class that appears elsewhere in the
// file as an entity or object kind.
type Class struct {
	DXFRecordName   string // code 1
	CppClassName    string // code 2
	ApplicationName string // code 3
	ProxyFlags      int32  // code 90
	InstanceCount   int32  // code 91, R2004+
	WasAProxy       bool   // code 280
	IsAnEntity      bool   // code 281
}

// decodeClasses reads the CLASSES section body: a flat run of 0/CLASS
// records, no framing markers of its own beyond the enclosing SECTION.
func decodeClasses(r *pairReader) ([]Class, error) {
	var classes []Class
	for {
		p, ok := r.Peek()
		if !ok || p.Code != 0 || p.Str != "CLASS" {
			return classes, nil
		}
		r.Next()
		var c Class
		for {
			np, ok := r.Peek()
			if !ok || np.Code == 0 {
				break
			}
			pair, _ := r.Next()
			switch pair.Code {
			case 1:
				c.DXFRecordName = pair.Str
			case 2:
				c.CppClassName = pair.Str
			case 3:
				c.ApplicationName = pair.Str
			case 90:
				c.ProxyFlags = int32(pair.Int)
			case 91:
				c.InstanceCount = int32(pair.Int)
			case 280:
				c.WasAProxy = boolFromShort(pair.Int)
			case 281:
				c.IsAnEntity = boolFromShort(pair.Int)
			}
		}
		classes = append(classes, c)
	}
}

// encodeClasses writes the CLASSES section, omitted entirely below R13
// by the caller (document.go).
func encodeClasses(w *pairWriter, classes []Class, target Version) {
	w.section("CLASSES")
	for _, c := range classes {
		w.String(0, "CLASS")
		w.String(1, c.DXFRecordName)
		w.String(2, c.CppClassName)
		w.String(3, c.ApplicationName)
		w.Int(90, c.ProxyFlags)
		if target.AtLeast(R2004) {
			w.Int(91, c.InstanceCount)
		}
		w.Short(280, shortFromBool(c.WasAProxy))
		w.Short(281, shortFromBool(c.IsAnEntity))
	}
	w.endsec()
}
