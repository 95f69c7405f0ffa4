package main

import (
	"fmt"
	"log"
	"os"
	"time"

	dxf "github.com/15831944/dxf"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var targetVersion string

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Rewrites a DXF file, optionally downgrading/upgrading its version",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			in, out := args[0], args[1]

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = fmt.Sprintf(" converting %s", in)
			s.Start()
			defer s.Stop()

			f, err := dxf.LoadFile(in, nil)
			if err != nil {
				log.Fatalf("error while opening file %s: %s", in, err)
			}
			defer f.Close()

			target := f.Version
			if targetVersion != "" {
				target, err = dxf.ParseVersion(targetVersion)
				if err != nil {
					log.Fatalf("unrecognized target version %q: %s", targetVersion, err)
				}
			}

			w, err := os.Create(out)
			if err != nil {
				log.Fatalf("error while creating file %s: %s", out, err)
			}
			defer w.Close()

			if err := f.Save(w, target); err != nil {
				log.Fatalf("error while writing file %s: %s", out, err)
			}
		},
	}
	cmd.Flags().StringVarP(&targetVersion, "version", "", "", "Target $ACADVER (e.g. R12, R2000, R2013); default keeps the source version")
	return cmd
}
