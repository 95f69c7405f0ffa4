package dxf

// BlockFlags bitset (code 70).
type BlockFlags int16

const (
	BlockAnonymous   BlockFlags = 1
	BlockHasAttdefs  BlockFlags = 2
	BlockIsXref      BlockFlags = 4
	BlockXrefOverlay BlockFlags = 16
	BlockIsExternal  BlockFlags = 32
)

// Block is a named group of entities framed by BLOCK/ENDBLK (spec §4.6).
// StartExtGroups/EndExtGroups hold extension data attached to the BLOCK
// and ENDBLK markers themselves, distinct from XData/extension groups on
// the individual entities in Entities.
type Block struct {
	Handle         Handle
	OwnerHandle    Handle
	Layer          string
	Name           string
	XrefName       string
	Description    string
	Flags          BlockFlags
	BasePoint      [3]float64
	Entities       []Entity
	StartExtGroups []ExtensionGroup
	EndExtGroups   []ExtensionGroup
	XData          []XDataEntry
	EndblkHandle   Handle
}

// decodeBlock implements the Reading-start/Reading-entities/Reading-end
// state machine of spec §4.6, entered with the reader positioned just
// after the "0/BLOCK" pair.
func decodeBlock(r *pairReader, anomalies *[]string) (*Block, error) {
	b := &Block{}

	// Reading-start: block header codes up to the first entity or ENDBLK.
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "BLOCK header truncated")
		}
		if p.Code == 0 {
			break
		}
		if p.Code == 102 {
			groups, err := readExtensionGroups(r)
			if err != nil {
				return nil, err
			}
			b.StartExtGroups = append(b.StartExtGroups, groups...)
			continue
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			b.Handle, _ = ParseHandle(pair.Str)
		case 330:
			b.OwnerHandle, _ = ParseHandle(pair.Str)
		case 8:
			b.Layer = pair.Str
		case 2, 3:
			b.Name = pair.Str
		case 1:
			b.XrefName = pair.Str
		case 4:
			b.Description = pair.Str
		case 70:
			b.Flags = BlockFlags(pair.Int)
		case 10:
			b.BasePoint[0] = pair.Float
		case 20:
			b.BasePoint[1] = pair.Float
		case 30:
			b.BasePoint[2] = pair.Float
		case 100:
			// subclass marker, no state of its own
		}
	}

	// Reading-entities: zero or more 0/<Kind> records until ENDBLK.
	for {
		p, ok := r.Peek()
		if !ok {
			anomalyf(anomalies, AnoMissingEndblk, b.Name)
			return b, nil
		}
		if p.Code == 0 && p.Str == "ENDBLK" {
			break
		}
		if p.Code == 0 && (p.Str == "BLOCK" || p.Str == "ENDSEC") {
			// Missing ENDBLK before the next BLOCK or the end of the
			// section: synthesize it.
			anomalyf(anomalies, AnoMissingEndblk, b.Name)
			return b, nil
		}
		ent, err := decodeEntity(r)
		if err != nil {
			return nil, err
		}
		b.Entities = append(b.Entities, ent)
	}

	// Reading-end: consume ENDBLK and its trailing codes.
	r.Next() // 0/ENDBLK
	for {
		p, ok := r.Peek()
		if !ok || p.Code == 0 {
			return b, nil
		}
		if p.Code == 102 {
			groups, err := readExtensionGroups(r)
			if err != nil {
				return nil, err
			}
			b.EndExtGroups = append(b.EndExtGroups, groups...)
			continue
		}
		pair, _ := r.Next()
		switch pair.Code {
		case 5:
			b.EndblkHandle, _ = ParseHandle(pair.Str)
		case 8:
			// layer on ENDBLK, already carried by BLOCK; ignored on read
		case 100:
		}
	}
}

// encodeBlock writes BLOCK, its entities, and ENDBLK. Per spec §6's
// round-trip rule, entities written inside a block omit their own
// handles — the block's handle governs ownership.
func encodeBlock(w *pairWriter, b *Block, target Version, anomalies *[]string) {
	w.String(0, "BLOCK")
	if b.Handle != 0 {
		w.Handle(5, b.Handle)
	}
	writeExtensionGroups(w, b.StartExtGroups)
	if b.OwnerHandle != 0 {
		w.Handle(330, b.OwnerHandle)
	}
	w.String(100, "AcDbEntity")
	w.String(8, b.Layer)
	w.String(100, "AcDbBlockBegin")
	w.String(2, b.Name)
	w.Short(70, int16(b.Flags))
	w.Point(10, b.BasePoint[0], b.BasePoint[1], b.BasePoint[2])
	w.String(3, b.Name)
	if b.XrefName != "" {
		w.String(1, b.XrefName)
	}

	for _, e := range b.Entities {
		// Per spec, entities written inside a block omit their own handle;
		// the block's handle governs ownership. Suppress it for the
		// duration of this write and restore it afterward since Entities
		// may be re-saved at another version later.
		d := e.Data()
		saved := d.Handle
		d.Handle = 0
		encodeEntity(w, e, target, anomalies)
		d.Handle = saved
	}

	w.String(0, "ENDBLK")
	if b.EndblkHandle != 0 {
		w.Handle(5, b.EndblkHandle)
	}
	w.String(100, "AcDbEntity")
	w.String(8, b.Layer)
	w.String(100, "AcDbBlockEnd")
	writeExtensionGroups(w, b.EndExtGroups)
}

// decodeBlocks reads the whole BLOCKS section body.
func decodeBlocks(r *pairReader, anomalies *[]string) ([]*Block, error) {
	var blocks []*Block
	for {
		p, ok := r.Peek()
		if !ok {
			return nil, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "BLOCKS section never closed")
		}
		if p.Code == 0 && p.Str == "ENDSEC" {
			r.Next()
			return blocks, nil
		}
		if p.Code != 0 || p.Str != "BLOCK" {
			return nil, newSyntaxError(UnexpectedCode, r.Offset(), p, "expected 0/BLOCK in BLOCKS section")
		}
		r.Next() // 0/BLOCK
		b, err := decodeBlock(r, anomalies)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

func encodeBlocks(w *pairWriter, blocks []*Block, target Version, anomalies *[]string) {
	w.section("BLOCKS")
	for _, b := range blocks {
		encodeBlock(w, b, target, anomalies)
	}
	w.endsec()
}
