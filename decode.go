package huff2

import (
	"bufio"
	"os"
	"time"
)

// Decode reads a HUF2 or HUF1 container from inputPath and writes the
// original bytes to outputPath. If stats is non-nil it is populated with
// size and timing information about the run; CompressedSize, Entropy, and
// AvgCodeLen are always zero after Decode.
func Decode(inputPath, outputPath string, stats *Stats) error {
	start := time.Now()

	in, err := os.Open(inputPath)
	if err != nil {
		return errf(KindFileOpen, "open input", err)
	}
	defer in.Close()

	br := bufio.NewReaderSize(in, ioBufferCap)
	hdr, err := readHeader(br)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errf(KindFileOpen, "create output", err)
	}
	defer out.Close()

	bw := bufio.NewWriterSize(out, ioBufferCap)

	if hdr.originalSize == 0 {
		if err := bw.Flush(); err != nil {
			return errf(KindFileWrite, "flush output", err)
		}
		fillDecodeStats(stats, 0, time.Since(start))
		return nil
	}

	lengths := hdr.lengths
	if hdr.legacy {
		root, nodes, err := buildTree(hdr.freq)
		if err != nil {
			return err
		}
		if root < 0 {
			return errf(KindBadFormat, "rebuild tree from frequencies", nil)
		}
		lengths = lengthsFromTree(root, nodes)
	}

	if err := decodeBody(br, bw, lengths, hdr.originalSize); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return errf(KindFileWrite, "flush output", err)
	}

	fillDecodeStats(stats, hdr.originalSize, time.Since(start))
	return nil
}

// decodeBody emits exactly originalSize symbols to w, using the
// single-symbol bypass when lengths has exactly one non-zero entry and the
// table-accelerated decode loop (§4.5/§4.7) otherwise.
func decodeBody(r *bufio.Reader, w *bufio.Writer, lengths [symbolRange]byte, originalSize uint64) error {
	if symbol, ok := singleSymbol(lengths); ok {
		return writeRepeated(w, symbol, originalSize)
	}

	codes := canonicalCodes(lengths)
	root, nodes := rebuildTree(codes)
	table := buildDecodeTable(root, nodes)

	br := newBitReader(r)
	var produced uint64
	for produced < originalSize {
		br.ensure(decTableBits)
		entry := table[br.peek(decTableBits)]

		if entry.symbol >= 0 {
			if uint64(br.count) < uint64(entry.bits) {
				return errf(KindBadFormat, "decode symbol", nil)
			}
			if err := w.WriteByte(byte(entry.symbol)); err != nil {
				return errf(KindFileWrite, "write body", err)
			}
			br.consume(uint(entry.bits))
			produced++
			continue
		}

		if entry.nextNode < 0 {
			return errf(KindBadFormat, "decode symbol", nil)
		}
		if uint64(br.count) < decTableBits {
			return errf(KindBadFormat, "decode symbol", nil)
		}
		br.consume(decTableBits)

		cur := int(entry.nextNode)
		for !nodes[cur].isLeaf() {
			bit, ok := br.readBit()
			if !ok {
				return errf(KindBadFormat, "decode symbol", nil)
			}
			if bit == 0 {
				cur = int(nodes[cur].left)
			} else {
				cur = int(nodes[cur].right)
			}
			if cur < 0 {
				return errf(KindBadFormat, "decode symbol", nil)
			}
		}
		if err := w.WriteByte(byte(nodes[cur].symbol)); err != nil {
			return errf(KindFileWrite, "write body", err)
		}
		produced++
	}
	return nil
}

// singleSymbol reports the one symbol with a non-zero length, and whether
// lengths names exactly one such symbol.
func singleSymbol(lengths [symbolRange]byte) (symbol byte, ok bool) {
	count := 0
	for s, l := range lengths {
		if l > 0 {
			count++
			symbol = byte(s)
		}
	}
	return symbol, count == 1
}

// writeRepeated writes n copies of b to w in block-sized chunks.
func writeRepeated(w *bufio.Writer, b byte, n uint64) error {
	const blockSize = 4096
	var block [blockSize]byte
	for i := range block {
		block[i] = b
	}
	for n > 0 {
		chunk := uint64(blockSize)
		if n < chunk {
			chunk = n
		}
		if _, err := w.Write(block[:chunk]); err != nil {
			return errf(KindFileWrite, "write body", err)
		}
		n -= chunk
	}
	return nil
}
