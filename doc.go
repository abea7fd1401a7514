// Package huff2 implements a static, two-pass Huffman codec for arbitrary
// byte streams.
//
// A file is read once to build a frequency table over the 256 possible
// byte values, a binary tree is built from that table with a min-heap,
// canonical codes are derived from the tree's leaf depths, and the file is
// re-read (in memory) to emit a bit-packed, self-describing container:
//
//	huff2.Encode("report.csv", "report.csv.huf2", nil)
//	huff2.Decode("report.csv.huf2", "report.csv", nil)
//
// The container format is documented on Encode. Passing a
// non-nil *Stats to either call populates size, timing, and entropy
// information about the run.
//
// # Thread Safety
//
// Encode and Decode allocate all of their working state per call; there is
// no shared mutable state, so concurrent calls operating on disjoint files
// are safe. A single call's internal helpers (tree builder, bit writer,
// decode loop) are not safe for concurrent use by multiple goroutines.
package huff2
