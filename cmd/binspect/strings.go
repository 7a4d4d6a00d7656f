package main

import (
	"fmt"

	"github.com/daktlib/memkit/buffer"
	"github.com/spf13/cobra"
)

var stringsMin int

func init() {
	cmd := newStringsCmd()
	cmd.Flags().IntVar(&stringsMin, "min", 4, "Minimum run length to report")
	rootCmd.AddCommand(cmd)
}

func newStringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strings <file>",
		Short: "Scan for printable string runs",
		Long: `The strings command reports runs of printable bytes, terminated by a NUL
or a non-printable byte.

Example:
  binspect strings firmware.bin --min 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args[0])
		},
	}
}

func runStrings(path string) error {
	data, err := loadFile(path)
	if err != nil {
		return err
	}

	r := buffer.NewReader(data)
	for !r.EOF() {
		b, err := r.PeekByte()
		if err != nil {
			break
		}
		if !printable(b) {
			r.Skip(1)
			continue
		}
		off := r.Position()
		run := scanRun(r)
		if len(run) >= stringsMin {
			fmt.Printf("%08x  %s\n", off, run)
		}
	}
	return nil
}

// scanRun consumes printable bytes from the cursor, plus a trailing NUL
// when one ends the run.
func scanRun(r *buffer.Reader) string {
	start := r.Position()
	for !r.EOF() {
		b, _ := r.PeekByte()
		if !printable(b) {
			break
		}
		r.Skip(1)
	}
	n := r.Position() - start
	r.Seek(start)
	// Bounded NUL-terminated read: lenient, consumes the terminator when
	// present, returns the run either way.
	return r.ReadCStringMax(n)
}

func printable(b byte) bool {
	return b >= 0x20 && b < 0x7F
}
