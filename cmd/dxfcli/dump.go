package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	dxf "github.com/15831944/dxf"
	"github.com/spf13/cobra"
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error:", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

type dumpReport struct {
	Version   string         `json:"version"`
	Header    map[string]any `json:"header,omitempty"`
	Layers    int            `json:"layers"`
	Linetypes int            `json:"linetypes"`
	Styles    int            `json:"styles"`
	Blocks    int            `json:"blocks"`
	Entities  int            `json:"entities"`
	Objects   int            `json:"objects"`
	Anomalies []string       `json:"anomalies,omitempty"`
}

func dumpFile(filename string, opts *dxf.Options, wantHeader bool) {
	log.Printf("processing %s", filename)
	f, err := dxf.LoadFile(filename, opts)
	if err != nil {
		log.Printf("error while opening file %s: %s", filename, err)
		return
	}
	defer f.Close()

	report := dumpReport{
		Version:   f.Version.String(),
		Entities:  len(f.Entities),
		Objects:   len(f.Objects),
		Blocks:    len(f.Blocks),
		Anomalies: f.Anomalies,
	}
	if f.Tables != nil {
		report.Layers = f.Tables.Layers.Len()
		report.Linetypes = f.Tables.Linetypes.Len()
		report.Styles = f.Tables.Styles.Len()
	}
	if wantHeader && f.Header != nil {
		report.Header = map[string]any{}
		for _, name := range f.Header.Names() {
			report.Header[name] = f.Header.String(name)
		}
	}

	out, _ := json.Marshal(report)
	fmt.Println(prettyPrint(out))
}

func newDumpCmd() *cobra.Command {
	var wantHeader bool
	var maxEntities uint32

	cmd := &cobra.Command{
		Use:   "dump <file-or-dir>",
		Short: "Dumps a summary of a DXF file",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts := &dxf.Options{MaxEntities: maxEntities}
			path := args[0]
			if !isDirectory(path) {
				dumpFile(path, opts, wantHeader)
				return
			}
			filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
				if err == nil && !info.IsDir() {
					dumpFile(p, opts, wantHeader)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&wantHeader, "header", "", false, "Dump header variables")
	cmd.Flags().Uint32VarP(&maxEntities, "max-entities", "", 0, "Cap the number of entities decoded")
	return cmd
}
