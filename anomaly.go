package dxf

import "fmt"

// Anomalies recorded while decoding a Document. Unlike the SyntaxError
// kinds in errors.go, none of these abort the parse (spec §7: unknown
// record kinds, unknown header variables, unknown codes, unknown
// sections, and handle collisions are all tolerated silently at the
// protocol level, but worth surfacing to a caller who wants to know).
var (
	// AnoUnknownSection is reported when a SECTION name isn't one of the
	// seven this package decodes; its body is drained and skipped.
	AnoUnknownSection = "unknown section %q skipped"

	// AnoUnknownEntity is reported when an ENTITIES-section record's 0-code
	// type string has no registered decoder. Unknown kinds inside a BLOCK
	// are kept as UnknownEntity without this anomaly.
	AnoUnknownEntity = "unknown entity kind %q skipped"

	// AnoUnknownObject is reported when an OBJECTS record's 0-code type
	// string has no registered decoder.
	AnoUnknownObject = "unknown object kind %q skipped"

	// AnoUnknownHeaderVariable is reported when a $VARNAME header entry
	// isn't in the static variable table; its raw pairs are retained
	// verbatim for round-trip at the same version.
	AnoUnknownHeaderVariable = "unknown header variable %q retained verbatim"

	// AnoHandleCollision is reported when two records claim the same
	// non-zero handle; the first-seen binding wins.
	AnoHandleCollision = "duplicate handle %s: first binding kept"

	// AnoMissingEndblk is reported when a BLOCK has no ENDBLK before the
	// next BLOCK or ENDSEC; one is synthesized.
	AnoMissingEndblk = "BLOCK %q missing ENDBLK: synthesized on load"

	// AnoMissingEOF is reported when the stream ends without a 0/EOF
	// marker; tolerated per spec §4.3.
	AnoMissingEOF = "stream ended without 0/EOF marker"

	// AnoDuplicateTableRecordName is reported when a symbol table holds
	// two records under the same name; the later one wins in name
	// lookups but both are preserved in write order.
	AnoDuplicateTableRecordName = "table %q: duplicate record name %q"

	// AnoFieldDroppedForVersion is reported when a field on an
	// entity/object/header variable cannot be represented at the target
	// save version and is replaced by its default-equivalent.
	AnoFieldDroppedForVersion = "%s.%s not representable at %s: dropped"

	// AnoVersionClamped is reported when $ACADVER declares a release
	// newer than this package knows and is clamped to R2013 (spec §9b).
	AnoVersionClamped = "$ACADVER %q newer than known releases: clamped to R2013"

	// AnoHandleRenumbered is reported when Save assigns a fresh handle to
	// a record whose original handle collided with an earlier one.
	AnoHandleRenumbered = "record renumbered from handle %s to %s on save"

	// AnoEntitiesTruncated is reported when Options.MaxEntities is hit
	// partway through the ENTITIES section; the remainder is skipped.
	AnoEntitiesTruncated = "ENTITIES section exceeds MaxEntities=%d: remainder skipped"
)

// anomalyf formats one of the Ano* templates above with fmt.Sprintf and
// appends it to dst, mirroring the teacher's flat []string anomaly log.
func anomalyf(dst *[]string, format string, args ...interface{}) {
	*dst = append(*dst, fmt.Sprintf(format, args...))
}
