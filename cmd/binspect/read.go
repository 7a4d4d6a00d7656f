package main

import (
	"fmt"

	"github.com/daktlib/memkit/buffer"
	"github.com/spf13/cobra"
)

var (
	readAt        int
	readType      string
	readBigEndian bool
)

func init() {
	cmd := newReadCmd()
	cmd.Flags().IntVar(&readAt, "at", 0, "Byte offset of the value")
	cmd.Flags().StringVar(&readType, "type", "u32", "Value type: u8, u16, u32, u64, i8, i16, i32, i64, f32, f64, cstr, lpstr")
	cmd.Flags().BoolVar(&readBigEndian, "be", false, "Decode big-endian instead of little-endian")
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <file>",
		Short: "Decode one typed value at an offset",
		Long: `The read command decodes a single value at a byte offset.

Example:
  binspect read header.bin --at 4 --type u32
  binspect read header.bin --at 16 --type u16 --be
  binspect read table.bin --at 64 --type lpstr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args[0])
		},
	}
}

func runRead(path string) error {
	data, err := loadFile(path)
	if err != nil {
		return err
	}

	r := buffer.NewReader(data)
	if readAt > r.Size() {
		return fmt.Errorf("offset %d beyond end of file (%d bytes)", readAt, r.Size())
	}
	r.Seek(readAt)

	v, err := decodeOne(r, readType, readBigEndian)
	if err != nil {
		return fmt.Errorf("decode %s at %d: %w", readType, readAt, err)
	}
	fmt.Println(v)
	return nil
}

func decodeOne(r *buffer.Reader, typ string, be bool) (any, error) {
	switch typ {
	case "u8":
		return r.ReadUint8()
	case "i8":
		return r.ReadInt8()
	case "u16":
		if be {
			return r.ReadUint16BE()
		}
		return r.ReadUint16()
	case "i16":
		if be {
			return r.ReadInt16BE()
		}
		return r.ReadInt16()
	case "u32":
		if be {
			return r.ReadUint32BE()
		}
		return r.ReadUint32()
	case "i32":
		if be {
			return r.ReadInt32BE()
		}
		return r.ReadInt32()
	case "u64":
		if be {
			return r.ReadUint64BE()
		}
		return r.ReadUint64()
	case "i64":
		if be {
			return r.ReadInt64BE()
		}
		return r.ReadInt64()
	case "f32":
		return r.ReadFloat32()
	case "f64":
		return r.ReadFloat64()
	case "cstr":
		return r.ReadCString()
	case "lpstr":
		return r.ReadLengthPrefixedString()
	default:
		return nil, fmt.Errorf("unknown type %q", typ)
	}
}
