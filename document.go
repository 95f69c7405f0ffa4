package dxf

import (
	"io"
	"os"
	"strconv"

	"github.com/go-kratos/kratos/v2/log"
)

// Document is the whole in-memory drawing (spec §3, §4.11): header,
// classes, tables, blocks, entities, objects, and the optional
// thumbnail, plus Anomalies (spec §7's tolerated, non-fatal conditions)
// accumulated on both Load (unknown records, handle collisions) and
// Save (version-dropped fields, handle renumbering).
type Document struct {
	Version     Version
	Header      *Header
	Classes     []Class
	Tables      *TableSet
	Blocks      []*Block
	Entities    []Entity
	Objects     []Object
	Thumbnail   []byte
	Anomalies   []string
	nextHandle  uint64
	seenHandles map[Handle]bool
}

// NewDocument returns an empty Document targeting v, seeded with the
// minimum symbol tables and header variables a from-scratch drawing
// needs (spec §3's "defaults reconstructed purely from field values").
func NewDocument(v Version) *Document {
	return &Document{
		Version:     v,
		Header:      NewHeader(v),
		Tables:      NewTableSet(),
		nextHandle:  1,
		seenHandles: map[Handle]bool{},
	}
}

// AllocHandle returns a fresh, never-before-used handle, advancing the
// allocator. Used both while building a Document programmatically and
// while repairing a handle collision found on load.
func (d *Document) AllocHandle() Handle {
	for {
		h := Handle(d.nextHandle)
		d.nextHandle++
		if !d.seenHandles[h] {
			d.seenHandles[h] = true
			return h
		}
	}
}

func (d *Document) noteHandle(h Handle) bool {
	if h == 0 {
		return true
	}
	if d.seenHandles[h] {
		return false
	}
	d.seenHandles[h] = true
	if uint64(h) >= d.nextHandle {
		d.nextHandle = uint64(h) + 1
	}
	return true
}

// Parse is a convenience wrapper around Load for in-memory text.
func Parse(text string) (*Document, error) {
	return Load(stringReader(text), nil)
}

type stringReaderT struct {
	s   string
	pos int
}

func (r *stringReaderT) Read(p []byte) (int, error) {
	if r.pos >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.pos:])
	r.pos += n
	return n, nil
}

func stringReader(s string) io.Reader { return &stringReaderT{s: s} }

// Options configures Load/LoadFile behavior, mirroring the teacher's
// pe.Options.
type Options struct {
	// StrictHandles rejects a document containing a handle collision
	// instead of tolerating it per spec §7's default policy.
	StrictHandles bool

	// MaxEntities caps the number of ENTITIES-section records decoded, 0
	// meaning unbounded, analogous to the teacher's MaxCOFFSymbolsCount.
	MaxEntities uint32

	// Codepage overrides $DWGCODEPAGE sniffing with an explicit codepage
	// name (e.g. "ANSI_1252").
	Codepage string

	// Logger receives Warn-level notices for every tolerated anomaly
	// (unknown sections/entities/header variables, handle collisions,
	// version clamping). Defaults to a stdout logger filtered to errors
	// only, exactly as the teacher's file.go configures its default.
	Logger log.Logger
}

func (o *Options) helper() *log.Helper {
	if o.Logger != nil {
		return log.NewHelper(o.Logger)
	}
	logger := log.NewStdLogger(os.Stdout)
	return log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))
}

// Load decodes a complete DXF stream into a Document, dispatching each
// SECTION to its decoder and draining/skipping any section name this
// package doesn't recognise (spec §4.3).
func Load(r io.Reader, opts *Options) (*Document, error) {
	if opts == nil {
		opts = &Options{}
	}
	helper := opts.helper()
	tok, err := newPairTokenizer(r, opts.Codepage)
	if err != nil {
		return nil, err
	}
	pr := newPairReader(tok)

	d := &Document{nextHandle: 1, seenHandles: map[Handle]bool{}}

	for {
		p, ok := pr.Peek()
		if !ok {
			d.Anomalies = append(d.Anomalies, AnoMissingEOF)
			break
		}
		if p.Code == 0 && p.Str == "EOF" {
			pr.Next()
			break
		}
		if p.Code != 0 || p.Str != "SECTION" {
			return nil, newSyntaxError(UnexpectedCode, pr.Offset(), p, "expected 0/SECTION or 0/EOF at top level")
		}
		pr.Next() // 0/SECTION
		nameP, err := pr.Next() // 2/<name>
		if err != nil {
			return nil, err
		}
		if nameP.Code != 2 {
			return nil, newSyntaxError(UnexpectedCode, pr.Offset(), nameP, "expected 2/<section name> after 0/SECTION")
		}

		switch nameP.Str {
		case "HEADER":
			h, err := decodeHeader(pr, &d.Anomalies)
			if err != nil {
				return nil, err
			}
			d.Header = h
			if opts.Codepage == "" {
				if cp := d.Header.String("$DWGCODEPAGE"); cp != "" {
					tok.decoder = codepageDecoder(cp)
				}
			}
			if _, err := pr.Next(); err != nil { // 0/ENDSEC
				return nil, err
			}
			if acadver := d.Header.String("$ACADVER"); acadver != "" {
				v, verr := ParseVersion(acadver)
				if verr != nil {
					return nil, verr
				}
				if v == R2013 && acadver != R2013.String() {
					anomalyf(&d.Anomalies, AnoVersionClamped, acadver)
				}
				d.Version = clampVersion(v)
			}
		case "CLASSES":
			classes, err := decodeClasses(pr)
			if err != nil {
				return nil, err
			}
			d.Classes = classes
			if _, err := pr.Next(); err != nil { // 0/ENDSEC
				return nil, err
			}
		case "TABLES":
			ts, err := decodeTables(pr, &d.Anomalies)
			if err != nil {
				return nil, err
			}
			d.Tables = ts
		case "BLOCKS":
			blocks, err := decodeBlocks(pr, &d.Anomalies)
			if err != nil {
				return nil, err
			}
			d.Blocks = blocks
		case "ENTITIES":
			ents, err := decodeEntitiesSection(pr, &d.Anomalies, opts.MaxEntities)
			if err != nil {
				return nil, err
			}
			d.Entities = ents
		case "OBJECTS":
			objs, err := decodeObjects(pr, &d.Anomalies)
			if err != nil {
				return nil, err
			}
			d.Objects = objs
		case "THUMBNAILIMAGE":
			data, err := decodeThumbnail(pr)
			if err != nil {
				return nil, err
			}
			d.Thumbnail = data
			if _, err := pr.Next(); err != nil { // 0/ENDSEC
				return nil, err
			}
		default:
			anomalyf(&d.Anomalies, AnoUnknownSection, nameP.Str)
			if err := skipSection(pr); err != nil {
				return nil, err
			}
		}
	}

	collided := d.reconcileHandles(opts)
	for _, a := range d.Anomalies {
		helper.Warn(a)
	}
	if opts.StrictHandles && collided {
		return nil, newSyntaxError(InvariantViolation, 0, CodePair{}, "duplicate handle with StrictHandles enabled")
	}
	return d, nil
}

// reconcileHandles walks every handle-bearing record once, recording
// collisions (spec §7: first-seen binding wins) and seeding the
// allocator so Save can assign fresh handles without colliding.
func (d *Document) reconcileHandles(opts *Options) bool {
	collided := false
	note := func(h Handle) {
		if !d.noteHandle(h) && h != 0 {
			anomalyf(&d.Anomalies, AnoHandleCollision, h.String())
			collided = true
		}
	}
	if d.Tables != nil {
		note(d.Tables.Layers.Handle)
		note(d.Tables.Linetypes.Handle)
		note(d.Tables.Styles.Handle)
		note(d.Tables.Views.Handle)
		note(d.Tables.Vports.Handle)
		note(d.Tables.UCSs.Handle)
		note(d.Tables.Appids.Handle)
		note(d.Tables.Dimstyles.Handle)
		note(d.Tables.BlockRecords.Handle)
		for _, l := range d.Tables.Layers.Records() {
			note(l.Handle)
		}
		for _, l := range d.Tables.Linetypes.Records() {
			note(l.Handle)
		}
		for _, s := range d.Tables.Styles.Records() {
			note(s.Handle)
		}
		for _, v := range d.Tables.Views.Records() {
			note(v.Handle)
		}
		for _, v := range d.Tables.Vports.Records() {
			note(v.Handle)
		}
		for _, u := range d.Tables.UCSs.Records() {
			note(u.Handle)
		}
		for _, a := range d.Tables.Appids.Records() {
			note(a.Handle)
		}
		for _, dm := range d.Tables.Dimstyles.Records() {
			note(dm.Handle)
		}
		for _, b := range d.Tables.BlockRecords.Records() {
			note(b.Handle)
		}
	}
	for _, b := range d.Blocks {
		note(b.Handle)
		for _, e := range b.Entities {
			note(e.Data().Handle)
		}
	}
	for _, e := range d.Entities {
		note(e.Data().Handle)
	}
	for _, o := range d.Objects {
		note(o.Data().Handle)
	}
	return collided
}

// decodeEntitiesSection reads the ENTITIES section body: a flat run of
// 0/<Kind> records with no framing of their own. maxEntities caps the
// number decoded (0 means unbounded); once hit, remaining records are
// drained unparsed rather than returned, mirroring the teacher's
// MaxCOFFSymbolsCount/MaxRelocEntriesCount ceilings.
func decodeEntitiesSection(r *pairReader, anomalies *[]string, maxEntities uint32) ([]Entity, error) {
	var ents []Entity
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "ENTITIES section never closed")
		}
		if p.Code == 0 && p.Str == "ENDSEC" {
			r.Next()
			return ents, nil
		}
		if p.Code != 0 {
			return nil, newSyntaxError(UnexpectedCode, r.Offset(), p, "expected 0/<kind> in ENTITIES section")
		}
		if maxEntities != 0 && uint32(len(ents)) >= maxEntities {
			anomalyf(anomalies, AnoEntitiesTruncated, maxEntities)
			return ents, skipSection(r)
		}
		e, err := decodeEntity(r)
		if err != nil {
			return nil, err
		}
		if _, ok := e.(*UnknownEntity); ok {
			anomalyf(anomalies, AnoUnknownEntity, e.Kind())
		}
		ents = append(ents, e)
	}
}

func encodeEntitiesSection(w *pairWriter, ents []Entity, target Version, anomalies *[]string) {
	w.section("ENTITIES")
	for _, e := range ents {
		encodeEntity(w, e, target, anomalies)
	}
	w.endsec()
}

// decodeThumbnail reads the THUMBNAILIMAGE section: a code-90 byte count
// followed by a BMP payload hex-encoded across repeated code-310 chunk
// lines. The count is skipped, not checked against the payload.
func decodeThumbnail(r *pairReader) ([]byte, error) {
	var out []byte
	for {
		p, ok := r.Peek()
		if ok && p.Code == 90 {
			r.Next()
			continue
		}
		if !ok || p.Code != 310 {
			return out, nil
		}
		pair, _ := r.Next()
		chunk, err := hexDecode(pair.Str)
		if err != nil {
			return nil, newSyntaxError(BadPair, r.Offset(), pair, "bad thumbnail hex chunk: "+err.Error())
		}
		out = append(out, chunk...)
	}
}

func encodeThumbnail(w *pairWriter, data []byte) {
	w.section("THUMBNAILIMAGE")
	w.Int(90, int32(len(data)))
	const chunkSize = 128
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		w.String(310, hexEncode(data[i:end]))
	}
	w.endsec()
}

const hexDigits = "0123456789ABCDEF"

func hexEncode(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0xF]
	}
	return string(out)
}

func hexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, err := strconv.ParseUint(s[i*2:i*2+1], 16, 8)
		if err != nil {
			return nil, err
		}
		lo, err := strconv.ParseUint(s[i*2+1:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(hi<<4 | lo)
	}
	return out, nil
}

// skipSection drains an unrecognised section body up to and including
// its 0/ENDSEC marker (spec §4.3's forward-compatibility rule).
func skipSection(r *pairReader) error {
	for {
		p, ok := r.Peek()
		if !ok {
			return newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "unknown section never closed")
		}
		if p.Code == 0 && p.Str == "ENDSEC" {
			r.Next()
			return nil
		}
		r.Next()
	}
}

// assignHandles gives every zero-handle entity, block, and object a fresh
// non-zero handle from the monotonic allocator (spec §4.9), renumbering
// any non-zero handle that collides with one already bound in this pass
// (spec §7: first-seen binding wins, the later duplicate is renumbered
// and the rename recorded as an anomaly), then brings $HANDSEED up to
// the next free value. Table records are not walked: Table[T]'s Records
// returns a value copy with no mutable handle field to assign through.
func (d *Document) assignHandles() {
	if d.seenHandles == nil {
		d.seenHandles = map[Handle]bool{}
	}
	if d.nextHandle == 0 {
		d.nextHandle = 1
	}
	if d.Header != nil {
		if seed, ok := d.Header.Get("$HANDSEED"); ok {
			for _, p := range seed {
				if p.Kind == KindString {
					if h, err := ParseHandle(p.Str); err == nil && uint64(h) >= d.nextHandle {
						d.nextHandle = uint64(h)
					}
				}
			}
		}
	}

	bound := map[Handle]bool{}
	assign := func(h *Handle) {
		switch {
		case *h == 0:
			*h = d.AllocHandle()
		case bound[*h]:
			old := *h
			*h = d.AllocHandle()
			anomalyf(&d.Anomalies, AnoHandleRenumbered, old.String(), (*h).String())
		default:
			d.noteHandle(*h)
		}
		bound[*h] = true
	}

	for _, b := range d.Blocks {
		assign(&b.Handle)
		for _, e := range b.Entities {
			assign(&e.Data().Handle)
		}
	}
	for _, e := range d.Entities {
		assign(&e.Data().Handle)
	}
	for _, o := range d.Objects {
		assign(&o.Data().Handle)
	}

	if d.Header != nil {
		d.Header.Set("$HANDSEED", []CodePair{StringPair(5, Handle(d.nextHandle).String())})
	}
}

// Save encodes the Document at target, applying version-conditional
// field dropping per spec §6/§9 and emitting sections in the fixed
// canonical order.
func (d *Document) Save(w io.Writer, target Version) error {
	pw := newPairWriter(w)

	if d.Header == nil {
		d.Header = NewHeader(target)
	}
	d.assignHandles()
	d.Header.Set("$ACADVER", []CodePair{StringPair(1, target.String())})
	encodeHeader(pw, d.Header, target)

	if target.AtLeast(R13) {
		encodeClasses(pw, d.Classes, target)
	}

	if d.Tables == nil {
		d.Tables = NewTableSet()
	}
	pw.section("TABLES")
	encodeTableFrame(pw, "LAYER", d.Tables.Layers.Handle, d.Tables.Layers.OwnerHandle, d.Tables.Layers.Len(), func() {
		for _, l := range d.Tables.Layers.Records() {
			encodeLayer(pw, l, target)
		}
	})
	encodeTableFrame(pw, "LTYPE", d.Tables.Linetypes.Handle, d.Tables.Linetypes.OwnerHandle, d.Tables.Linetypes.Len(), func() {
		for _, l := range d.Tables.Linetypes.Records() {
			encodeLinetype(pw, l)
		}
	})
	encodeTableFrame(pw, "STYLE", d.Tables.Styles.Handle, d.Tables.Styles.OwnerHandle, d.Tables.Styles.Len(), func() {
		for _, s := range d.Tables.Styles.Records() {
			encodeStyle(pw, s)
		}
	})
	encodeTableFrame(pw, "VIEW", d.Tables.Views.Handle, d.Tables.Views.OwnerHandle, d.Tables.Views.Len(), func() {
		for _, v := range d.Tables.Views.Records() {
			encodeView(pw, v)
		}
	})
	encodeTableFrame(pw, "UCS", d.Tables.UCSs.Handle, d.Tables.UCSs.OwnerHandle, d.Tables.UCSs.Len(), func() {
		for _, u := range d.Tables.UCSs.Records() {
			encodeUcs(pw, u)
		}
	})
	encodeTableFrame(pw, "VPORT", d.Tables.Vports.Handle, d.Tables.Vports.OwnerHandle, d.Tables.Vports.Len(), func() {
		for _, v := range d.Tables.Vports.Records() {
			encodeVport(pw, v)
		}
	})
	encodeTableFrame(pw, "APPID", d.Tables.Appids.Handle, d.Tables.Appids.OwnerHandle, d.Tables.Appids.Len(), func() {
		for _, a := range d.Tables.Appids.Records() {
			encodeAppid(pw, a)
		}
	})
	encodeTableFrame(pw, "DIMSTYLE", d.Tables.Dimstyles.Handle, d.Tables.Dimstyles.OwnerHandle, d.Tables.Dimstyles.Len(), func() {
		for _, dm := range d.Tables.Dimstyles.Records() {
			encodeDimstyle(pw, dm)
		}
	})
	if target.AtLeast(R2000) {
		encodeTableFrame(pw, "BLOCK_RECORD", d.Tables.BlockRecords.Handle, d.Tables.BlockRecords.OwnerHandle, d.Tables.BlockRecords.Len(), func() {
			for _, b := range d.Tables.BlockRecords.Records() {
				encodeBlockRecord(pw, b)
			}
		})
	}
	pw.endsec()

	encodeBlocks(pw, d.Blocks, target, &d.Anomalies)
	encodeEntitiesSection(pw, d.Entities, target, &d.Anomalies)
	encodeObjects(pw, d.Objects, target)

	if len(d.Thumbnail) > 0 {
		encodeThumbnail(pw, d.Thumbnail)
	}

	pw.eof()
	return pw.Flush()
}
