package huff2

import "io"

// bitReader is the decode-side mirror of bitWriter: a 64-bit accumulator
// refilled from a buffered byte stream, with bits consumed from the LSB
// end in the same order the writer placed them.
type bitReader struct {
	r      io.Reader
	buffer uint64
	count  uint

	in    []byte
	inPos int
	inBit uint // low bits of in[inPos] already moved into buffer
	inEnd int
	eof   bool
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r, in: make([]byte, ioBufferCap)}
}

// ensure loads bytes into the accumulator until count >= n or the
// underlying stream is exhausted. It never blocks waiting for bytes the
// stream will never produce; callers must check count against n
// themselves to detect exhaustion, since ensure does not return an error.
// count never exceeds 64: when fewer than 8 bits of room remain, only the
// low bits of the next byte that fit are loaded and the rest of that byte
// is kept for the next call.
func (br *bitReader) ensure(n uint) {
	for br.count < n {
		if br.inPos >= br.inEnd {
			if !br.refill() {
				br.eof = true
				return
			}
		}
		br.buffer |= (uint64(br.in[br.inPos]) >> br.inBit) << br.count
		if avail, room := 8-br.inBit, 64-br.count; avail <= room {
			br.count += avail
			br.inPos++
			br.inBit = 0
		} else {
			br.count = 64
			br.inBit += room
		}
	}
}

func (br *bitReader) refill() bool {
	n, err := br.r.Read(br.in)
	br.inPos = 0
	br.inEnd = n
	if n > 0 {
		return true
	}
	_ = err
	return false
}

// peek returns the low n bits of the accumulator (n <= 64). Callers must
// have called ensure(n) first and checked count >= n if exhaustion matters.
func (br *bitReader) peek(n uint) uint64 {
	if n == 64 {
		return br.buffer
	}
	return br.buffer & ((uint64(1) << n) - 1)
}

// consume discards the low n bits of the accumulator.
func (br *bitReader) consume(n uint) {
	if n == 64 {
		br.buffer = 0
	} else {
		br.buffer >>= n
	}
	br.count -= n
}

// readBit consumes and returns a single bit, refilling from the stream one
// byte at a time if the accumulator is empty. ok is false if the stream is
// exhausted.
func (br *bitReader) readBit() (bit int, ok bool) {
	if br.count == 0 {
		br.ensure(1)
		if br.count == 0 {
			return 0, false
		}
	}
	bit = int(br.buffer & 1)
	br.consume(1)
	return bit, true
}
