package huff2

import (
	"bufio"
	"io"
	"os"
	"time"
)

// Encode reads the entirety of inputPath into memory, builds a canonical
// Huffman code over its bytes, and writes a self-describing HUF2 container
// to outputPath. If stats is non-nil it is populated with size, timing,
// and entropy information about the run.
//
// The container layout is:
//
//	offset  size  field
//	0       4     magic "HUF2"
//	4       8     original size, little-endian u64
//	12      256   per-symbol code length, 0 for absent symbols
//	268     ...   bit-packed body
//
// Encode always writes HUF2; see EncodeLegacy for the HUF1 frequency-table
// variant.
func Encode(inputPath, outputPath string, stats *Stats) error {
	return encode(inputPath, outputPath, stats, false)
}

// EncodeLegacy is Encode's HUF1 counterpart: it persists the full 256-entry
// frequency table instead of code lengths, at roughly 8x the header cost,
// for interoperability with decoders (including this package's Decode)
// that still accept the older format.
func EncodeLegacy(inputPath, outputPath string, stats *Stats) error {
	return encode(inputPath, outputPath, stats, true)
}

func encode(inputPath, outputPath string, stats *Stats, legacy bool) error {
	start := time.Now()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errf(KindFileOpen, "read input", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errf(KindFileOpen, "create output", err)
	}
	defer out.Close()

	bw := bufio.NewWriterSize(out, ioBufferCap)

	freq := countFrequencies(data)

	var lengths [symbolRange]byte
	var codes [symbolRange]code
	if len(data) > 0 {
		root, nodes, err := buildTree(freq)
		if err != nil {
			return err
		}
		if root < 0 {
			return errf(KindUnknown, "build tree", nil)
		}
		lengths = lengthsFromTree(root, nodes)
		codes = canonicalCodes(lengths)
	}

	if legacy {
		if err := writeHeaderHUF1(bw, uint64(len(data)), freq); err != nil {
			return errf(KindFileWrite, "write header", err)
		}
	} else {
		if err := writeHeaderHUF2(bw, uint64(len(data)), lengths); err != nil {
			return errf(KindFileWrite, "write header", err)
		}
	}

	if len(data) > 0 {
		if err := writeBody(bw, data, codes); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return errf(KindFileWrite, "flush output", err)
	}

	if stats != nil {
		compressed, err := out.Seek(0, io.SeekCurrent)
		if err != nil {
			compressed = 0
		}
		fillEncodeStats(stats, freq, codes, uint64(len(data)), uint64(compressed), time.Since(start))
	}

	return nil
}

// writeBody packs every byte of data through the bit writer in strict
// input order. The single-symbol case is not special-cased here: its
// 1-bit code still gets written per byte (see DESIGN.md for why this
// implementation chose "encode the bit, bypass on decode" over skipping
// the body altogether).
func writeBody(w *bufio.Writer, data []byte, codes [symbolRange]code) error {
	fast := toFastCodes(codes)
	bw := newBitWriter(w)

	for _, b := range data {
		fc := fast[b]
		if fc.len < 0 {
			if err := bw.writeLongCode(&codes[b]); err != nil {
				return errf(KindFileWrite, "write body", err)
			}
			continue
		}
		if err := bw.writeCode(fc.bits, fc.len); err != nil {
			return errf(KindFileWrite, "write body", err)
		}
	}

	if err := bw.close(); err != nil {
		return errf(KindFileWrite, "flush body", err)
	}
	return nil
}
