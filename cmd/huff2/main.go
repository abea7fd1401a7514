// huff2 is a thin command-line wrapper around the huff2 package: it parses
// arguments, calls Encode/Decode, and prints stats when asked. None of the
// container format lives here.
//
// Usage:
//
//	huff2 encode [-legacy] [-stats] [-v] infile [outfile]
//	huff2 decode [-stats] infile [outfile]
//	huff2 -r encode|decode dir
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/lars-t-hansen/huff2"
)

const usage = "Usage: huff2 [-r] encode [-legacy] [-stats] [-v] infile [outfile]\n" +
	"       huff2 [-r] decode [-stats] infile [outfile]"

func main() {
	log.SetFlags(0)
	log.SetPrefix("huff2: ")

	recursive := flag.Bool("r", false, "treat the path argument as a directory and process every regular file in it")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		log.Fatal(usage)
	}

	lg := newLogger()
	op := args[0]
	rest := args[1:]

	switch op {
	case "encode":
		runEncode(rest, *recursive, lg)
	case "decode":
		runDecode(rest, *recursive, lg)
	default:
		log.Fatal(usage)
	}
}

func runEncode(args []string, recursive bool, lg logger) {
	fset := flag.NewFlagSet("encode", flag.ExitOnError)
	legacy := fset.Bool("legacy", false, "write the legacy HUF1 frequency-table container instead of HUF2")
	stats := fset.Bool("stats", false, "print size and entropy statistics after encoding")
	verbose := fset.Bool("v", false, "print the per-symbol code table (implies -stats)")
	if err := fset.Parse(args); err != nil {
		log.Fatal(err)
	}

	encodeOne := huff2.Encode
	if *legacy {
		encodeOne = huff2.EncodeLegacy
	}

	if recursive {
		walkDir(fset.Arg(0), ".huf2", false, lg, func(in, out string) error {
			return runOne("encode", in, out, encodeOne, *stats || *verbose, *verbose)
		})
		return
	}

	in, out := requirePaths(fset.Args(), ".huf2")
	if err := runOne("encode", in, out, encodeOne, *stats || *verbose, *verbose); err != nil {
		log.Fatal(err)
	}
}

func runDecode(args []string, recursive bool, lg logger) {
	fset := flag.NewFlagSet("decode", flag.ExitOnError)
	stats := fset.Bool("stats", false, "print size statistics after decoding")
	if err := fset.Parse(args); err != nil {
		log.Fatal(err)
	}

	if recursive {
		walkDir(fset.Arg(0), ".huf2", true, lg, func(in, out string) error {
			return runOne("decode", in, out, huff2.Decode, *stats, false)
		})
		return
	}

	in, out := decodePaths(fset.Args())
	if err := runOne("decode", in, out, huff2.Decode, *stats, false); err != nil {
		log.Fatal(err)
	}
}

type codecFunc func(inputPath, outputPath string, stats *huff2.Stats) error

func runOne(verb, in, out string, run codecFunc, printStats, printTable bool) error {
	var st huff2.Stats
	statsArg := (*huff2.Stats)(nil)
	if printStats {
		statsArg = &st
	}

	if err := run(in, out, statsArg); err != nil {
		return fmt.Errorf("%s %s: %w", verb, in, err)
	}

	if printStats {
		printSummary(verb, in, out, &st)
		if printTable {
			printCodeTable(&st)
		}
	}
	return nil
}

func requirePaths(args []string, suffix string) (in, out string) {
	switch len(args) {
	case 1:
		return args[0], args[0] + suffix
	case 2:
		return args[0], args[1]
	default:
		log.Fatal(usage)
		return "", ""
	}
}

func decodePaths(args []string) (in, out string) {
	switch len(args) {
	case 1:
		in = args[0]
		if strings.HasSuffix(in, ".huf2") {
			return in, in[:len(in)-len(".huf2")]
		}
		return in, in + ".out"
	case 2:
		return args[0], args[1]
	default:
		log.Fatal(usage)
		return "", ""
	}
}

// walkDir applies op to every regular file under root. For decoding
// (wantSuffix true) it visits only files already carrying suffix and
// strips it to form the output path; for encoding it visits files that
// don't yet carry it and appends it. A single file's failure is logged
// and skipped rather than aborting the rest of the walk.
func walkDir(root, suffix string, wantSuffix bool, lg logger, op func(in, out string) error) {
	if root == "" {
		log.Fatal(usage)
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		hasSuffix := strings.HasSuffix(path, suffix)
		if hasSuffix != wantSuffix {
			return nil
		}
		var out string
		if wantSuffix {
			out = path[:len(path)-len(suffix)]
		} else {
			out = path + suffix
		}
		lg.Infof("%s -> %s", path, out)
		if err := op(path, out); err != nil {
			lg.Errorf("%v", err)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

// printSummary mirrors the reference driver's size/ratio/entropy report.
func printSummary(verb, in, out string, st *huff2.Stats) {
	fmt.Printf("%s: %s -> %s\n", verb, in, out)
	fmt.Printf("  original size:   %d bytes\n", st.OriginalSize)
	if st.CompressedSize > 0 {
		ratio := 0.0
		if st.OriginalSize > 0 {
			ratio = float64(st.CompressedSize) / float64(st.OriginalSize)
		}
		fmt.Printf("  compressed size: %d bytes (%.2f%%)\n", st.CompressedSize, ratio*100)
	}
	if st.OriginalSize > 0 {
		fmt.Printf("  entropy:         %.4f bits/symbol\n", st.Entropy)
		fmt.Printf("  avg code length: %.4f bits/symbol\n", st.AvgCodeLen)
	}
	fmt.Printf("  elapsed:         %s\n", st.Elapsed)
}

// printCodeTable mirrors the reference driver's print_code_table, one line
// per present symbol: the byte value, its bit length, and its bit pattern
// in transmission order (the order the bit writer emits it, not the
// conceptual MSB-first canonical order).
func printCodeTable(st *huff2.Stats) {
	fmt.Println("  code table:")
	for _, c := range st.Codes {
		var pattern strings.Builder
		for _, bit := range c.Pattern {
			if bit {
				pattern.WriteByte('1')
			} else {
				pattern.WriteByte('0')
			}
		}
		fmt.Printf("    %-4s (0x%02x)  len=%-3d  %s\n", printableByte(c.Symbol), c.Symbol, c.BitCount, pattern.String())
	}
}

func printableByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("\\x%02x", b)
}
