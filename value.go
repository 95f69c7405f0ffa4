package dxf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Handle uniquely identifies a record within a Document. The zero Handle
// means "unassigned" on a record not yet saved, or "root" as an owner
// reference (spec §3).
type Handle uint64

// String renders a Handle as the upper-case hex string DXF writes it as.
func (h Handle) String() string {
	if h == 0 {
		return "0"
	}
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// ParseHandle decodes a handle hex string (code 5, 105, or 330-349, 360,
// 390). An empty string parses as the zero/unassigned handle.
func ParseHandle(s string) (Handle, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("dxf: invalid handle %q: %w", s, err)
	}
	return Handle(v), nil
}

// boolFromShort decodes the short 0/1 boolean encoding used throughout
// entity and header fields (e.g. the code 66 "entities follow" flag).
func boolFromShort(v int64) bool { return v != 0 }

func shortFromBool(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// ColorIndex is an AutoCAD Color Index (ACI), code 62. 0 means BYBLOCK,
// 256 means BYLAYER, 257+ is invalid; negative values mean "layer off".
type ColorIndex int16

const (
	ColorByBlock ColorIndex = 0
	ColorByLayer ColorIndex = 256
)

// IsOn reports whether the color encodes a visible (non-"layer off")
// index.
func (c ColorIndex) IsOn() bool { return c >= 0 }

// Transparency packs the code-440 transparency value: the low byte
// holds an alpha (0 fully transparent .. 255 fully opaque, see
// OpacityPercent), and bit 25 (0x02000000) marks "by-value" as opposed
// to BYLAYER/BYBLOCK.
type Transparency uint32

const (
	TransparencyByLayer Transparency = 0
	transparencyByValue Transparency = 0x02000000
)

// NewTransparency builds a by-value Transparency from an opacity percent
// in [0,100] (100 = fully opaque).
func NewTransparency(opacityPercent int) Transparency {
	if opacityPercent < 0 {
		opacityPercent = 0
	}
	if opacityPercent > 100 {
		opacityPercent = 100
	}
	alpha := uint32(opacityPercent) * 255 / 100
	return Transparency(transparencyByValue | alpha)
}

// IsByValue reports whether t encodes an explicit alpha rather than
// BYLAYER.
func (t Transparency) IsByValue() bool { return t&transparencyByValue != 0 }

// OpacityPercent returns the opacity in [0,100] for a by-value
// Transparency; 100 for TransparencyByLayer.
func (t Transparency) OpacityPercent() int {
	if !t.IsByValue() {
		return 100
	}
	return int(uint32(t)&0xFF) * 100 / 255
}

const degToRad = math.Pi / 180
const radToDeg = 180 / math.Pi

// degrees converts a radian angle to degrees. STYLE's code-50 oblique
// angle is read from the wire in radians and held in memory in degrees;
// entity angles such as ARC's are kept in degrees with no conversion.
func degrees(rad float64) float64 { return rad * radToDeg }

// radians is the inverse of degrees.
func radians(deg float64) float64 { return deg * degToRad }
