package dxf

import (
	"bytes"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// File represents an open DXF file, the path-backed counterpart to a
// bare Document (spec §9's facade note). It keeps the mapped bytes
// alive until Close so LoadFile never copies the whole input.
type File struct {
	*Document
	data mmap.MMap
	f    *os.File
}

// LoadFile memory-maps name and decodes it into a File, mirroring the
// teacher's New(name, opts).
func LoadFile(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	doc, err := Load(bytes.NewReader(data), opts)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}

	return &File{Document: doc, data: data, f: f}, nil
}

// LoadBytes decodes a DXF file already fully in memory, mirroring the
// teacher's NewBytes(data, opts).
func LoadBytes(data []byte, opts *Options) (*File, error) {
	doc, err := Load(bytes.NewReader(data), opts)
	if err != nil {
		return nil, err
	}
	return &File{Document: doc}, nil
}

// Close releases the memory map and underlying file handle, if any.
func (f *File) Close() error {
	if f.data != nil {
		if err := f.data.Unmap(); err != nil {
			return err
		}
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}
