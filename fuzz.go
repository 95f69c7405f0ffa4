package dxf

import "bytes"

// Fuzz is the go-fuzz/libFuzzer entry point: it decodes arbitrary bytes
// as a DXF stream and reports success, exactly like the teacher's own
// Fuzz. The go-fuzz dependency itself is consumed externally by
// go-fuzz-build against this symbol, not imported here.
func Fuzz(data []byte) int {
	doc, err := Load(bytes.NewReader(data), nil)
	if err != nil {
		return 0
	}
	var buf bytes.Buffer
	if err := doc.Save(&buf, doc.Version); err != nil {
		return 0
	}
	return 1
}
