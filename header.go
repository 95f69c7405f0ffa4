package dxf


// headerVarSpec describes one $SYSVAR entry: the version range it's
// valid in and, for documentation/default-reconstruction purposes, the
// group codes it's carried on. Defaults are expressed as CodePair slices
// so Header can hand back a ready-to-write value without the caller
// needing to know the variable's shape.
type headerVarSpec struct {
	name       string
	minVersion Version
	maxVersion Version // R2013 sentinel: "still valid in the newest release this package knows"
	codes      []int
	def        []CodePair
}

// headerTable is the static, version-conditional dictionary of spec §4.4.
// It is not exhaustive of every AutoCAD system variable — DESIGN.md
// records that as a deliberate scope decision — but covers the variables
// the round-trip and version-downgrade tests in spec §8 exercise plus the
// ones every real-world drawing carries.
var headerTable = []headerVarSpec{
	{"$ACADVER", R9, R2013, []int{1}, []CodePair{StringPair(1, R2013.String())}},
	{"$ACADMAINTVER", R14, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$DWGCODEPAGE", R11, R2013, []int{3}, []CodePair{StringPair(3, "ANSI_1252")}},
	{"$INSBASE", R9, R2013, []int{10, 20, 30}, pointDefault(10, 0, 0, 0)},
	{"$EXTMIN", R9, R2013, []int{10, 20, 30}, pointDefault(10, 1e20, 1e20, 1e20)},
	{"$EXTMAX", R9, R2013, []int{10, 20, 30}, pointDefault(10, -1e20, -1e20, -1e20)},
	{"$LIMMIN", R9, R2013, []int{10, 20}, []CodePair{FloatPair(10, 0), FloatPair(20, 0)}},
	{"$LIMMAX", R9, R2013, []int{10, 20}, []CodePair{FloatPair(10, 420), FloatPair(20, 297)}},
	{"$ORTHOMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$REGENMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$FILLMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$QTEXTMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$MIRRTEXT", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$LTSCALE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 1)}},
	{"$ATTMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$TEXTSIZE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 2.5)}},
	{"$TRACEWID", R9, R2013, []int{40}, []CodePair{FloatPair(40, 1)}},
	{"$TEXTSTYLE", R9, R2013, []int{7}, []CodePair{StringPair(7, "Standard")}},
	{"$CLAYER", R9, R2013, []int{8}, []CodePair{StringPair(8, "0")}},
	{"$CELTYPE", R9, R2013, []int{6}, []CodePair{StringPair(6, "ByLayer")}},
	{"$CECOLOR", R9, R2013, []int{62}, []CodePair{ShortPair(62, 256)}},
	{"$CELTSCALE", R13, R2013, []int{40}, []CodePair{FloatPair(40, 1)}},
	{"$DIMSCALE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 1)}},
	{"$DIMASZ", R9, R2013, []int{40}, []CodePair{FloatPair(40, 2.5)}},
	{"$LUNITS", R9, R2013, []int{70}, []CodePair{ShortPair(70, 2)}},
	{"$LUPREC", R9, R2013, []int{70}, []CodePair{ShortPair(70, 4)}},
	{"$SKETCHINC", R9, R2013, []int{40}, []CodePair{FloatPair(40, 1)}},
	{"$FILLETRAD", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$AUNITS", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$AUPREC", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$MENU", R9, R2013, []int{1}, []CodePair{StringPair(1, ".")}},
	{"$ELEVATION", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$PELEVATION", R11, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$THICKNESS", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$LIMCHECK", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$CHAMFERA", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$CHAMFERB", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$CHAMFERC", R13, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$CHAMFERD", R13, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$SKPOLY", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$TDCREATE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$TDUPDATE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$HANDSEED", R13, R2013, []int{5}, []CodePair{StringPair(5, "1")}},
	{"$USRTIMER", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$ANGBASE", R9, R2013, []int{50}, []CodePair{FloatPair(50, 0)}},
	{"$ANGDIR", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$PDMODE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$PDSIZE", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$PLINEWID", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$SPLFRAME", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$SPLINETYPE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$SPLINESEGS", R9, R2013, []int{70}, []CodePair{ShortPair(70, 8)}},
	{"$SURFTAB1", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$SURFTAB2", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$SURFTYPE", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$SURFU", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$SURFV", R9, R2013, []int{70}, []CodePair{ShortPair(70, 6)}},
	{"$UCSNAME", R11, R2013, []int{2}, []CodePair{StringPair(2, "")}},
	{"$UCSORG", R11, R2013, []int{10, 20, 30}, pointDefault(10, 0, 0, 0)},
	{"$UCSXDIR", R11, R2013, []int{10, 20, 30}, pointDefault(10, 1, 0, 0)},
	{"$UCSYDIR", R11, R2013, []int{10, 20, 30}, pointDefault(10, 0, 1, 0)},
	{"$PUCSNAME", R11, R2013, []int{2}, []CodePair{StringPair(2, "")}},
	{"$USERI1", R9, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$USERR1", R9, R2013, []int{40}, []CodePair{FloatPair(40, 0)}},
	{"$WORLDVIEW", R9, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$SHADEDGE", R10, R2013, []int{70}, []CodePair{ShortPair(70, 3)}},
	{"$SHADEDIF", R10, R2013, []int{70}, []CodePair{ShortPair(70, 70)}},
	{"$MEASUREMENT", R13, R2013, []int{70}, []CodePair{ShortPair(70, 0)}},
	{"$PROXYGRAPHICS", R14, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$TREEDEPTH", R13, R2013, []int{70}, []CodePair{ShortPair(70, 3020)}},
	{"$LWDISPLAY", R2000, R2013, []int{290}, []CodePair{BoolPair(290, false)}},
	{"$PSLTSCALE", R13, R2013, []int{70}, []CodePair{ShortPair(70, 1)}},
	{"$XEDIT", R14, R2013, []int{290}, []CodePair{BoolPair(290, true)}},
	{"$EXTNAMES", R2000, R2013, []int{290}, []CodePair{BoolPair(290, true)}},
	{"$FINGERPRINTGUID", R2000, R2013, []int{2}, []CodePair{StringPair(2, "")}},
	{"$VERSIONGUID", R2000, R2013, []int{2}, []CodePair{StringPair(2, "")}},
}

func pointDefault(baseCode int, x, y, z float64) []CodePair {
	return []CodePair{
		FloatPair(baseCode, x),
		FloatPair(baseCode+10, y),
		FloatPair(baseCode+20, z),
	}
}

var headerTableByName = func() map[string]headerVarSpec {
	m := make(map[string]headerVarSpec, len(headerTable))
	for _, v := range headerTable {
		m[v.name] = v
	}
	return m
}()

// HeaderVariable is a named header entry as actually present in a
// Document: either a recognised variable (validated against headerTable
// when written) or an unknown one retained verbatim for round-trip.
type HeaderVariable struct {
	Name  string
	Pairs []CodePair
}

// Header is the HEADER section: an ordered, named collection of system
// variables (spec §3, §4.4).
type Header struct {
	vars  map[string]HeaderVariable
	order []string
}

// NewHeader returns a Header seeded with this package's defaults for
// every variable valid at version v, exactly reconstructing what a
// from-scratch Document would emit (spec §3's "pure reconstruction from
// field values, not conditional on was-present").
func NewHeader(v Version) *Header {
	h := &Header{vars: map[string]HeaderVariable{}}
	for _, spec := range headerTable {
		if v.AtLeast(spec.minVersion) && spec.maxVersion.AtLeast(v) {
			h.Set(spec.name, append([]CodePair(nil), spec.def...))
		}
	}
	return h
}

// Set assigns (or replaces) a header variable's raw pairs.
func (h *Header) Set(name string, pairs []CodePair) {
	if _, exists := h.vars[name]; !exists {
		h.order = append(h.order, name)
	}
	h.vars[name] = HeaderVariable{Name: name, Pairs: pairs}
}

// Get returns a variable's pairs and whether it is present.
func (h *Header) Get(name string) ([]CodePair, bool) {
	v, ok := h.vars[name]
	return v.Pairs, ok
}

// String returns the first KindString pair's value for name, or "" if
// the variable is absent or carries no string pair — a convenience for
// the handful of callers (ACADVER, CLAYER, ...) that want a scalar.
func (h *Header) String(name string) string {
	pairs, ok := h.vars[name]
	if !ok {
		return ""
	}
	for _, p := range pairs.Pairs {
		if p.Kind == KindString {
			return p.Str
		}
	}
	return ""
}

// Float returns the first KindFloat pair's value for name.
func (h *Header) Float(name string) float64 {
	pairs, ok := h.vars[name]
	if !ok {
		return 0
	}
	for _, p := range pairs.Pairs {
		if p.Kind == KindFloat {
			return p.Float
		}
	}
	return 0
}

// Names returns the variables present, in insertion order.
func (h *Header) Names() []string {
	return append([]string(nil), h.order...)
}

// decodeHeader reads the HEADER section body (everything between
// 0/SECTION 2/HEADER and 0/ENDSEC) from r.
func decodeHeader(r *pairReader, anomalies *[]string) (*Header, error) {
	h := &Header{vars: map[string]HeaderVariable{}}
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "HEADER section never closed")
		}
		if p.Code == 0 {
			return h, nil
		}
		if p.Code != 9 {
			return nil, newSyntaxError(UnexpectedCode, r.Offset(), p, "expected a 9/$VARNAME marker in HEADER")
		}
		marker, _ := r.Next()
		var pairs []CodePair
		for {
			np, ok := r.Peek()
			if !ok || np.Code == 9 || np.Code == 0 {
				break
			}
			pair, _ := r.Next()
			pairs = append(pairs, pair)
		}
		if _, known := headerTableByName[marker.Str]; !known {
			anomalyf(anomalies, AnoUnknownHeaderVariable, marker.Str)
		}
		h.Set(marker.Str, pairs)
	}
}

// encodeHeader writes the HEADER section, emitting only variables valid
// at target and, for known variables, only within their documented
// version range (spec §4.4). Unknown variables are always re-emitted —
// this package has no basis to gate a variable it doesn't recognise, so
// it favours round-trip fidelity over guessing a range.
func encodeHeader(w *pairWriter, h *Header, target Version) {
	w.section("HEADER")
	for _, name := range h.order {
		v, ok := h.vars[name]
		if !ok {
			continue
		}
		if spec, known := headerTableByName[name]; known {
			if !target.AtLeast(spec.minVersion) || !spec.maxVersion.AtLeast(target) {
				continue
			}
		}
		w.String(9, name)
		for _, p := range v.Pairs {
			w.Pair(p)
		}
	}
	w.endsec()
}
