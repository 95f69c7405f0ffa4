package dxf

// ExtensionGroup is one {APPNAME ... } nestable block opened by a
// code-102 pair whose value begins with "{" and closed by the matching
// code-102 "}" (spec §4.8). Groups may nest; Nested holds child groups in
// the order they were opened, interleaved conceptually with Pairs but
// tracked separately since callers almost always want one or the other.
type ExtensionGroup struct {
	Name   string
	Pairs  []CodePair
	Nested []ExtensionGroup
}

// XDataItem is one typed value (codes 1000-1071) within an application's
// XData block.
type XDataItem = CodePair

// XDataEntry is the per-application XData attached to an entity or
// object: a 1001/<appname> pair followed by 1000-1071 pairs up to the
// next 0 or 1001 code (spec §4.8).
type XDataEntry struct {
	AppName string
	Items   []XDataItem
}

// readExtensionGroups consumes zero or more top-level 102 groups from r,
// stopping at the first pair that isn't a 102-open. Nested groups close
// the same way: a 102 pair whose value is exactly "}".
func readExtensionGroups(r *pairReader) ([]ExtensionGroup, error) {
	var groups []ExtensionGroup
	for {
		p, ok := r.Peek()
		if !ok || p.Code != 102 || len(p.Str) == 0 || p.Str[0] != '{' {
			return groups, nil
		}
		g, err := readOneExtensionGroup(r)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
}

func readOneExtensionGroup(r *pairReader) (ExtensionGroup, error) {
	open, err := r.Next()
	if err != nil {
		return ExtensionGroup{}, err
	}
	g := ExtensionGroup{Name: open.Str[1:]}
	for {
		p, ok := r.Peek()
		if !ok {
			return ExtensionGroup{}, newSyntaxError(UnexpectedEof, r.Offset(), open, "extension group never closed")
		}
		if p.Code == 102 && p.Str == "}" {
			r.Next()
			return g, nil
		}
		if p.Code == 102 && len(p.Str) > 0 && p.Str[0] == '{' {
			nested, err := readOneExtensionGroup(r)
			if err != nil {
				return ExtensionGroup{}, err
			}
			g.Nested = append(g.Nested, nested)
			continue
		}
		pair, _ := r.Next()
		g.Pairs = append(g.Pairs, pair)
	}
}

// writeExtensionGroups emits groups in the same nested-bracket shape they
// were read in.
func writeExtensionGroups(w *pairWriter, groups []ExtensionGroup) {
	for _, g := range groups {
		writeOneExtensionGroup(w, g)
	}
}

func writeOneExtensionGroup(w *pairWriter, g ExtensionGroup) {
	w.String(102, "{"+g.Name)
	for _, p := range g.Pairs {
		w.Pair(p)
	}
	for _, n := range g.Nested {
		writeOneExtensionGroup(w, n)
	}
	w.String(102, "}")
}

// readXData consumes zero or more 1001-introduced XData entries from r,
// stopping at the first pair that isn't a 1001 code.
func readXData(r *pairReader) ([]XDataEntry, error) {
	var entries []XDataEntry
	for {
		p, ok := r.Peek()
		if !ok || p.Code != 1001 {
			return entries, nil
		}
		app, _ := r.Next()
		entry := XDataEntry{AppName: app.Str}
		for {
			p, ok := r.Peek()
			if !ok || p.Code == 0 || p.Code == 1001 {
				break
			}
			item, _ := r.Next()
			entry.Items = append(entry.Items, item)
		}
		entries = append(entries, entry)
	}
}

// writeXData emits XData entries as 1001/<app> followed by their items.
func writeXData(w *pairWriter, entries []XDataEntry) {
	for _, e := range entries {
		w.String(1001, e.AppName)
		for _, it := range e.Items {
			w.Pair(it)
		}
	}
}
