package dxf

import "fmt"

// ValueKind identifies which Go type backs a CodePair's value, as
// determined by the group code's range (spec ranges below).
type ValueKind int

const (
	// KindString covers 0-9, 100-109, 300-369, 390-399, 410-419, 430-439.
	KindString ValueKind = iota
	// KindFloat covers 10-59, 140-149, 210-239.
	KindFloat
	// KindShort covers 60-79, 170-179, 270-289, 370-389, 400-409.
	KindShort
	// KindInt covers 90-99, 420-429, 440-449, 450-459.
	KindInt
	// KindBool covers 290-299.
	KindBool
)

// CodePair is the atomic unit of the DXF wire grammar: a group code and
// its typed value. The code determines the value's family; Kind records
// which field of Value is meaningful.
type CodePair struct {
	Code  int
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// StringPair wraps a KindString pair.
func StringPair(code int, v string) CodePair { return CodePair{Code: code, Kind: KindString, Str: v} }

// FloatPair wraps a KindFloat pair.
func FloatPair(code int, v float64) CodePair { return CodePair{Code: code, Kind: KindFloat, Float: v} }

// ShortPair wraps a KindShort pair.
func ShortPair(code int, v int16) CodePair { return CodePair{Code: code, Kind: KindShort, Int: int64(v)} }

// IntPair wraps a KindInt pair.
func IntPair(code int, v int32) CodePair { return CodePair{Code: code, Kind: KindInt, Int: int64(v)} }

// BoolPair wraps a KindBool pair.
func BoolPair(code int, v bool) CodePair { return CodePair{Code: code, Kind: KindBool, Bool: v} }

// kindForCode classifies a group code into its value family per spec §3.
// XData codes (1000-1071) are classified by xdataKind, not this table.
func kindForCode(code int) (ValueKind, error) {
	switch {
	case code >= 0 && code <= 9:
		return KindString, nil
	case code >= 10 && code <= 59:
		return KindFloat, nil
	case code >= 60 && code <= 79:
		return KindShort, nil
	case code >= 90 && code <= 99:
		return KindInt, nil
	case code >= 100 && code <= 109:
		return KindString, nil
	case code >= 140 && code <= 149:
		return KindFloat, nil
	case code >= 170 && code <= 179:
		return KindShort, nil
	case code >= 210 && code <= 239:
		return KindFloat, nil
	case code >= 270 && code <= 289:
		return KindShort, nil
	case code >= 290 && code <= 299:
		return KindBool, nil
	case code >= 300 && code <= 369:
		return KindString, nil
	case code >= 370 && code <= 389:
		return KindShort, nil
	case code >= 390 && code <= 399:
		return KindString, nil
	case code >= 400 && code <= 409:
		return KindShort, nil
	case code >= 410 && code <= 419:
		return KindString, nil
	case code >= 420 && code <= 429:
		return KindInt, nil
	case code >= 430 && code <= 439:
		return KindString, nil
	case code >= 440 && code <= 449:
		return KindInt, nil
	case code >= 450 && code <= 459:
		return KindInt, nil
	case code >= 1000 && code <= 1071:
		return xdataKind(code), nil
	default:
		return 0, fmt.Errorf("dxf: group code %d is outside any known value family", code)
	}
}

// xdataKind classifies the 1000-1071 XData sub-codes, which follow their
// own, narrower mapping than the main group-code table (spec §4.8).
func xdataKind(code int) ValueKind {
	switch {
	case code == 1000, code == 1001, code == 1002, code == 1003:
		return KindString
	case code >= 1010 && code <= 1013:
		return KindFloat
	case code == 1040, code == 1041:
		return KindFloat
	case code == 1070:
		return KindShort
	case code == 1071:
		return KindInt
	default:
		return KindString
	}
}

// String renders a pair for diagnostics, never for the wire (see writer.go).
func (p CodePair) String() string {
	switch p.Kind {
	case KindString:
		return fmt.Sprintf("%d/%s", p.Code, p.Str)
	case KindFloat:
		return fmt.Sprintf("%d/%g", p.Code, p.Float)
	case KindBool:
		return fmt.Sprintf("%d/%t", p.Code, p.Bool)
	default:
		return fmt.Sprintf("%d/%d", p.Code, p.Int)
	}
}
