package dxf

import "fmt"

// ErrorKind identifies one of the five fatal grammar failures of spec §7.
// Every SyntaxError carries one of these plus the offending pair (when
// one was successfully tokenised) and the input line it was read at.
type ErrorKind int

const (
	// BadPair is a code line that isn't an integer, or a value that
	// doesn't parse for its code's family.
	BadPair ErrorKind = iota
	// UnexpectedCode is a required code missing, or a forbidden code
	// appearing in the current decoder state.
	UnexpectedCode
	// UnexpectedEof is the stream ending inside a section, block, or
	// entity.
	UnexpectedEof
	// UnknownVersion is an unrecognised $ACADVER value.
	UnknownVersion
	// InvariantViolation is a broken structural invariant, e.g. a
	// duplicate handle found by Load when Options.StrictHandles is set.
	// A BLOCK missing its ENDBLK is not reported this way: Load
	// synthesizes the ENDBLK and records an anomaly.
	InvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case BadPair:
		return "bad pair"
	case UnexpectedCode:
		return "unexpected code"
	case UnexpectedEof:
		return "unexpected eof"
	case UnknownVersion:
		return "unknown version"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown error"
	}
}

// SyntaxError is returned for every fatal condition in spec §7. Pair is
// the zero value when the stream ended before a pair could be tokenised.
// Offset is the 1-based input line number the offending pair (or partial
// pair) starts at, not a byte offset — the wire grammar is line-oriented,
// and a line number survives editor round-trips better than a byte count.
type SyntaxError struct {
	Kind   ErrorKind
	Pair   CodePair
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("dxf: %s at offset %d: %s (pair %s)", e.Kind, e.Offset, e.Msg, e.Pair)
	}
	return fmt.Sprintf("dxf: %s at offset %d (pair %s)", e.Kind, e.Offset, e.Pair)
}

func newSyntaxError(kind ErrorKind, offset int64, pair CodePair, msg string) *SyntaxError {
	return &SyntaxError{Kind: kind, Pair: pair, Offset: offset, Msg: msg}
}
