package main

import "testing"

func TestRequirePathsDefaultsOutputSuffix(t *testing.T) {
	in, out := requirePaths([]string{"report.csv"}, ".huf2")
	if in != "report.csv" || out != "report.csv.huf2" {
		t.Fatalf("got (%q, %q)", in, out)
	}
}

func TestRequirePathsHonorsExplicitOutput(t *testing.T) {
	in, out := requirePaths([]string{"report.csv", "out.bin"}, ".huf2")
	if in != "report.csv" || out != "out.bin" {
		t.Fatalf("got (%q, %q)", in, out)
	}
}

func TestDecodePathsStripsSuffix(t *testing.T) {
	in, out := decodePaths([]string{"report.csv.huf2"})
	if in != "report.csv.huf2" || out != "report.csv" {
		t.Fatalf("got (%q, %q)", in, out)
	}
}

func TestDecodePathsFallsBackWithoutSuffix(t *testing.T) {
	in, out := decodePaths([]string{"report.bin"})
	if in != "report.bin" || out != "report.bin.out" {
		t.Fatalf("got (%q, %q)", in, out)
	}
}
