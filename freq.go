package huff2

import "runtime"

// symbolRange is the size of the byte alphabet this codec operates over.
const symbolRange = 256

// parallelThreshold is the smallest input size, in bytes, for which the
// frequency counter splits work across more than one goroutine.
const parallelThreshold = 1 << 20 // 1 MiB

// maxWorkers bounds the number of frequency-counting goroutines regardless
// of GOMAXPROCS, matching the pack's own thread cap for this kind of
// trivial map-reduce.
const maxWorkers = 64

// countFrequencies returns F, the 256-entry histogram of data's bytes.
// For inputs at or above parallelThreshold it partitions data into disjoint
// chunks and sums per-worker local histograms; the result is identical
// regardless of how many workers ran.
func countFrequencies(data []byte) [symbolRange]uint64 {
	n := workerCount(len(data))
	if n <= 1 {
		return countFrequenciesRange(data)
	}

	chunk := len(data) / n
	partials := make([][symbolRange]uint64, n)
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		start := i * chunk
		end := start + chunk
		if i == n-1 {
			end = len(data)
		}
		go func(worker, start, end int) {
			partials[worker] = countFrequenciesRange(data[start:end])
			done <- worker
		}(i, start, end)
	}

	var freq [symbolRange]uint64
	for i := 0; i < n; i++ {
		<-done
	}
	for _, p := range partials {
		for s := 0; s < symbolRange; s++ {
			freq[s] += p[s]
		}
	}
	return freq
}

// countFrequenciesRange computes a local histogram over a single chunk with
// no shared writes; it is the unit of work handed to each goroutine by
// countFrequencies, and is also the whole job when run single-threaded.
func countFrequenciesRange(data []byte) [symbolRange]uint64 {
	var freq [symbolRange]uint64
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// workerCount decides how many goroutines countFrequencies should use for
// an input of the given size: one below parallelThreshold, otherwise the
// number of available cores capped at maxWorkers.
func workerCount(size int) int {
	if size < parallelThreshold {
		return 1
	}
	n := runtime.GOMAXPROCS(0)
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}
