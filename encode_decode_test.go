package huff2

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"
)

func roundTrip(t *testing.T, data []byte, legacy bool) []byte {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	enc := filepath.Join(dir, "enc")
	out := filepath.Join(dir, "out")

	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var encodeStats Stats
	encodeFn := Encode
	if legacy {
		encodeFn = EncodeLegacy
	}
	if err := encodeFn(in, enc, &encodeStats); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encodeStats.OriginalSize != uint64(len(data)) {
		t.Fatalf("OriginalSize = %d, want %d", encodeStats.OriginalSize, len(data))
	}

	var decodeStats Stats
	if err := Decode(enc, out, &decodeStats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decodeStats.OriginalSize != uint64(len(data)) {
		t.Fatalf("decode OriginalSize = %d, want %d", decodeStats.OriginalSize, len(data))
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return got
}

func TestRoundTripEmpty(t *testing.T) {
	got := roundTrip(t, nil, false)
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestRoundTripSingleSymbol(t *testing.T) {
	data := bytes.Repeat([]byte{'z'}, 10000)
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for single-symbol input")
	}
}

func TestRoundTripTwoSymbols(t *testing.T) {
	data := bytes.Repeat([]byte{0, 1}, 5000)
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for two-symbol input")
	}
}

func TestRoundTripText(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 500)
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for text input")
	}
}

func TestRoundTripAllByteValues(t *testing.T) {
	data := make([]byte, symbolRange*4)
	for i := range data {
		data[i] = byte(i)
	}
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for all-byte-values input")
	}
}

func TestRoundTripRandom(t *testing.T) {
	data := make([]byte, 1<<16)
	if _, err := rand.Read(data); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for random input")
	}
}

func TestRoundTripLargeInputUsesParallelFrequencyCount(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), parallelThreshold/16+1)
	got := roundTrip(t, data, false)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for input spanning the parallel threshold")
	}
}

func TestRoundTripLegacyContainer(t *testing.T) {
	data := bytes.Repeat([]byte("legacy format payload "), 300)
	got := roundTrip(t, data, true)
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch for legacy (HUF1) container")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("deterministic encode check "), 200)
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	enc1 := filepath.Join(dir, "enc1")
	enc2 := filepath.Join(dir, "enc2")
	if err := Encode(in, enc1, nil); err != nil {
		t.Fatalf("encode 1: %v", err)
	}
	if err := Encode(in, enc2, nil); err != nil {
		t.Fatalf("encode 2: %v", err)
	}

	b1, err := os.ReadFile(enc1)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	b2, err := os.ReadFile(enc2)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("two encodes of the same input produced different containers")
	}
}

func TestDecodeRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	err := Decode(filepath.Join(dir, "does-not-exist"), filepath.Join(dir, "out"), nil)
	if err == nil {
		t.Fatalf("Decode succeeded on a missing input file")
	}
}

func TestEncodeStatsEntropyAndAvgCodeLen(t *testing.T) {
	data := bytes.Repeat([]byte("aaaabbbc"), 1000) // skewed distribution
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var st Stats
	if err := Encode(in, filepath.Join(dir, "out"), &st); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if st.AvgCodeLen < st.Entropy-1e-9 {
		t.Fatalf("AvgCodeLen (%.4f) < Entropy (%.4f)", st.AvgCodeLen, st.Entropy)
	}
	if len(st.Codes) != 3 {
		t.Fatalf("len(Codes) = %d, want 3", len(st.Codes))
	}
}
