package dxf

// Table is an ordered, named-key symbol table (spec §4.5): LAYER, LTYPE,
// STYLE, VIEW, VPORT, UCS, APPID, DIMSTYLE, or BLOCK_RECORD. Duplicate
// names are accepted on read (last one wins in Lookup) and preserved in
// insertion order on write.
type Table[T any] struct {
	Handle      Handle
	OwnerHandle Handle
	records     []T
	index       map[string]int // name -> index of the last-seen record with that name
	nameOf      func(T) string
}

// NewTable returns an empty table whose records are keyed by nameOf.
func NewTable[T any](nameOf func(T) string) *Table[T] {
	return &Table[T]{index: map[string]int{}, nameOf: nameOf}
}

// Add appends a record, recording a duplicate-name anomaly (not an
// error) when its name collides with one already present.
func (t *Table[T]) Add(rec T, anomalies *[]string, tableName string) {
	name := t.nameOf(rec)
	if _, dup := t.index[name]; dup && anomalies != nil {
		anomalyf(anomalies, AnoDuplicateTableRecordName, tableName, name)
	}
	t.index[name] = len(t.records)
	t.records = append(t.records, rec)
}

// Lookup returns the last-inserted record named name.
func (t *Table[T]) Lookup(name string) (T, bool) {
	if i, ok := t.index[name]; ok {
		return t.records[i], true
	}
	var zero T
	return zero, false
}

// Records returns all records in insertion (write) order.
func (t *Table[T]) Records() []T { return append([]T(nil), t.records...) }

// Len reports the number of records, including shadowed duplicates.
func (t *Table[T]) Len() int { return len(t.records) }

// decodeTableFrame consumes "[5/<handle>] [330/<owner>] ... 0/ENDTAB",
// calling decodeRecord once per "0/<RecordType>" frame in between. The
// caller must already have consumed the opening "0/TABLE 2/<name>" pair
// (it needs to inspect the name itself to pick which concrete decoder to
// dispatch to) before calling decodeTableFrame.
func decodeTableFrame(r *pairReader, wantName string, decodeRecord func(*pairReader) error) (handle, owner Handle, err error) {
	for {
		p, ok := r.Peek()
		if !ok {
			return 0, 0, newSyntaxError(UnexpectedEof, r.Offset(), CodePair{}, "TABLE "+wantName+" never closed")
		}
		switch {
		case p.Code == 5:
			pair, _ := r.Next()
			h, perr := ParseHandle(pair.Str)
			if perr != nil {
				return 0, 0, perr
			}
			handle = h
		case p.Code == 330:
			pair, _ := r.Next()
			h, perr := ParseHandle(pair.Str)
			if perr != nil {
				return 0, 0, perr
			}
			owner = h
		case p.Code == 100:
			r.Next() // subclass marker on the table header itself, e.g. AcDbSymbolTable
		case p.Code == 70:
			r.Next() // "number of entries" hint; this package derives it from len(records)
		case p.Code == 0 && p.Str == "ENDTAB":
			r.Next()
			return handle, owner, nil
		case p.Code == 0:
			if err := decodeRecord(r); err != nil {
				return 0, 0, err
			}
		default:
			r.Next()
		}
	}
}

// encodeTableFrame writes the TABLE/ENDTAB framing around n records
// emitted by writeRecords.
func encodeTableFrame(w *pairWriter, name string, handle, owner Handle, n int, writeRecords func()) {
	w.String(0, "TABLE")
	w.String(2, name)
	if handle != 0 {
		w.Handle(5, handle)
	}
	w.String(100, "AcDbSymbolTable")
	if owner != 0 {
		w.Handle(330, owner)
	}
	w.Short(70, int16(n))
	writeRecords()
	w.String(0, "ENDTAB")
}
