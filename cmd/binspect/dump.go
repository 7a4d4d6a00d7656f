package main

import (
	"fmt"
	"strings"

	"github.com/daktlib/memkit/buffer"
	"github.com/spf13/cobra"
)

var (
	dumpOffset int
	dumpLength int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Byte offset to start from")
	cmd.Flags().IntVar(&dumpLength, "length", 0, "Bytes to dump (0 = to end)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex and ASCII dump of a file region",
		Long: `The dump command prints a classic 16-bytes-per-row hex dump.

Example:
  binspect dump firmware.bin
  binspect dump firmware.bin --offset 512 --length 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	data, err := loadFile(path)
	if err != nil {
		return err
	}

	r := buffer.NewReader(data)
	r.Seek(dumpOffset)
	if dumpOffset > r.Size() {
		return fmt.Errorf("offset %d beyond end of file (%d bytes)", dumpOffset, r.Size())
	}

	remaining := r.Remaining()
	if dumpLength > 0 && dumpLength < remaining {
		remaining = dumpLength
	}

	for remaining > 0 {
		n := 16
		if n > remaining {
			n = remaining
		}
		off := r.Position()
		row, err := r.ReadBytes(n)
		if err != nil {
			return err
		}
		fmt.Printf("%08x  %-48s %s\n", off, hexCells(row), asciiCells(row))
		remaining -= n
	}
	return nil
}

func hexCells(row []byte) string {
	var b strings.Builder
	for i, v := range row {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x ", v)
	}
	return b.String()
}

func asciiCells(row []byte) string {
	var b strings.Builder
	b.WriteByte('|')
	for _, v := range row {
		if v >= 0x20 && v < 0x7F {
			b.WriteByte(v)
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte('|')
	return b.String()
}
