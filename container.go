package huff2

import (
	"encoding/binary"
	"io"
)

// Magic values identifying the container format. HUF2 is the canonical,
// lengths-only layout this package always writes; HUF1 is the legacy
// full-frequency-table layout, readable (and, via EncodeLegacy, writable)
// for interoperability with the reference C implementation's older format.
var (
	magicHUF2 = [4]byte{'H', 'U', 'F', '2'}
	magicHUF1 = [4]byte{'H', 'U', 'F', '1'}
)

const (
	headerSizeHUF2 = 4 + 8 + symbolRange
	headerSizeHUF1 = 4 + 8 + symbolRange*8
)

// writeHeaderHUF2 writes the magic, original size, and lengths table, in
// that order, with no padding between fields.
func writeHeaderHUF2(w io.Writer, originalSize uint64, lengths [symbolRange]byte) error {
	var buf [headerSizeHUF2]byte
	copy(buf[0:4], magicHUF2[:])
	binary.LittleEndian.PutUint64(buf[4:12], originalSize)
	copy(buf[12:], lengths[:])
	_, err := w.Write(buf[:])
	return err
}

// writeHeaderHUF1 writes the magic, original size, and the full 256-entry
// u64 frequency table.
func writeHeaderHUF1(w io.Writer, originalSize uint64, freq [symbolRange]uint64) error {
	buf := make([]byte, headerSizeHUF1)
	copy(buf[0:4], magicHUF1[:])
	binary.LittleEndian.PutUint64(buf[4:12], originalSize)
	for i, f := range freq {
		binary.LittleEndian.PutUint64(buf[12+i*8:12+i*8+8], f)
	}
	_, err := w.Write(buf)
	return err
}

// containerHeader is the common result of reading either container
// variant. readHeader fills lengths for HUF2 and freq for HUF1; Decode
// builds a tree (and from there, lengths) from a HUF1 frequency table.
type containerHeader struct {
	legacy       bool
	originalSize uint64
	lengths      [symbolRange]byte
	freq         [symbolRange]uint64 // only meaningful when legacy
}

// readHeader reads and validates a container's magic, original size, and
// tree representation. It accepts either HUF2 or HUF1; anything else, or a
// malformed HUF2 lengths table, is reported as KindBadFormat.
func readHeader(r io.Reader) (containerHeader, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return containerHeader{}, errf(KindBadFormat, "read magic", err)
	}

	switch magic {
	case magicHUF2:
		var rest [8 + symbolRange]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return containerHeader{}, errf(KindBadFormat, "read header", err)
		}
		h := containerHeader{
			originalSize: binary.LittleEndian.Uint64(rest[0:8]),
		}
		copy(h.lengths[:], rest[8:])
		if kraftViolated(h.lengths) {
			return containerHeader{}, errf(KindBadFormat, "validate lengths", nil)
		}
		return h, nil

	case magicHUF1:
		var rest [8 + symbolRange*8]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return containerHeader{}, errf(KindBadFormat, "read header", err)
		}
		h := containerHeader{
			legacy:       true,
			originalSize: binary.LittleEndian.Uint64(rest[0:8]),
		}
		var total uint64
		for i := 0; i < symbolRange; i++ {
			h.freq[i] = binary.LittleEndian.Uint64(rest[8+i*8 : 8+i*8+8])
			total += h.freq[i]
		}
		if total != h.originalSize {
			return containerHeader{}, errf(KindBadFormat, "validate frequency table", nil)
		}
		return h, nil

	default:
		return containerHeader{}, errf(KindBadFormat, "check magic", nil)
	}
}
