package dxf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codepageTable maps the handful of $DWGCODEPAGE values DXF files
// actually carry to their golang.org/x/text/encoding/charmap decoder.
// Unrecognised or absent codepages fall back to latin-1 (spec §4.1).
var codepageTable = map[string]encoding.Encoding{
	"ANSI_1252":  charmap.Windows1252,
	"ANSI_1250":  charmap.Windows1250,
	"ANSI_1251":  charmap.Windows1251,
	"ANSI_1253":  charmap.Windows1253,
	"ANSI_1254":  charmap.Windows1254,
	"ANSI_1257":  charmap.Windows1257,
	"ANSI_28591": charmap.ISO8859_1,
}

func codepageDecoder(name string) encoding.Encoding {
	if enc, ok := codepageTable[name]; ok {
		return enc
	}
	return charmap.ISO8859_1
}

// pairTokenizer turns a byte stream into a sequence of CodePairs,
// accepting both the classic two-line framing and the compact
// "code<TAB>value" single-line framing (spec §4.1). Comments (group code
// 999) are dropped silently and never surface to callers.
type pairTokenizer struct {
	lines   []string
	line    int // 0-based index of the next unread line
	decoder encoding.Encoding
}

// newPairTokenizer reads all of r, strips a UTF-8 BOM if present, and
// splits on CRLF or LF.
func newPairTokenizer(r io.Reader, codepage string) (*pairTokenizer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	dec := codepageDecoder(codepage)
	return &pairTokenizer{lines: lines, decoder: dec}, nil
}

// decodeText runs a raw wire value through the active codepage decoder.
// Pure-ASCII input (the overwhelming majority of a DXF file: numbers,
// handles, keywords) round-trips unchanged through every codepage this
// package supports, so failures here are tolerated, not fatal.
func (t *pairTokenizer) decodeText(s string) string {
	out, err := t.decoder.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// next reads one pair, skipping 999 comments. io.EOF is returned once no
// lines remain; that is not itself an error (spec: "missing EOF is
// tolerated").
func (t *pairTokenizer) next() (CodePair, error) {
	for {
		if t.line >= len(t.lines) {
			return CodePair{}, io.EOF
		}

		// Compact framing: a single "code\tvalue" line.
		codeLine := t.lines[t.line]
		if tab := strings.IndexByte(codeLine, '\t'); tab >= 0 {
			codeStr, valStr := codeLine[:tab], codeLine[tab+1:]
			code, err := parseCode(codeStr)
			if err != nil {
				return CodePair{}, newSyntaxError(BadPair, int64(t.line+1), CodePair{}, err.Error())
			}
			t.line++
			if code == 999 {
				continue
			}
			return t.buildPair(code, valStr, t.line)
		}

		// Classic framing: code on one line, value on the next.
		code, err := parseCode(codeLine)
		if err != nil {
			return CodePair{}, newSyntaxError(BadPair, int64(t.line+1), CodePair{}, err.Error())
		}
		if t.line+1 >= len(t.lines) {
			return CodePair{}, newSyntaxError(UnexpectedEof, int64(t.line+1), CodePair{}, "code without a matching value line")
		}
		valStr := t.lines[t.line+1]
		t.line += 2
		if code == 999 {
			continue
		}
		return t.buildPair(code, valStr, t.line-1)
	}
}

func (t *pairTokenizer) buildPair(code int, rawValue string, atLine int) (CodePair, error) {
	kind, err := kindForCode(code)
	if err != nil {
		return CodePair{}, newSyntaxError(BadPair, int64(atLine), CodePair{Code: code}, err.Error())
	}
	switch kind {
	case KindString:
		return CodePair{Code: code, Kind: KindString, Str: t.decodeText(rawValue)}, nil
	case KindBool:
		v := strings.TrimSpace(rawValue)
		return CodePair{Code: code, Kind: KindBool, Bool: v != "0" && v != ""}, nil
	case KindShort:
		n, err := strconv.ParseInt(strings.TrimSpace(rawValue), 10, 16)
		if err != nil {
			return CodePair{}, newSyntaxError(BadPair, int64(atLine), CodePair{Code: code}, "bad short value: "+err.Error())
		}
		return CodePair{Code: code, Kind: KindShort, Int: n}, nil
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(rawValue), 10, 32)
		if err != nil {
			return CodePair{}, newSyntaxError(BadPair, int64(atLine), CodePair{Code: code}, "bad int value: "+err.Error())
		}
		return CodePair{Code: code, Kind: KindInt, Int: n}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(rawValue), 64)
		if err != nil {
			return CodePair{}, newSyntaxError(BadPair, int64(atLine), CodePair{Code: code}, "bad float value: "+err.Error())
		}
		return CodePair{Code: code, Kind: KindFloat, Float: f}, nil
	default:
		return CodePair{}, fmt.Errorf("dxf: unreachable value kind %d", kind)
	}
}

// parseCode parses a group code, tolerating the leading spaces classic
// DXF writers right-justify it with.
func parseCode(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("group code %q is not an integer", s)
	}
	return n, nil
}
