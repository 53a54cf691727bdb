package isa

import "sort"

// multiIsaMinConfidence is the low acceptance bar a window's top candidate
// must clear to count toward that ISA's window tally (spec C7 step 3).
const multiIsaMinConfidence = 0.14

// multiIsaMinWindowCount and multiIsaMinShare gate which accumulated ISAs
// are actually reported (spec C7 step 5).
const (
	multiIsaMinWindowCount = 3
	multiIsaMinShare       = 0.08
	multiIsaMinTotalBytes  = 2048
)

type windowAccumulator struct {
	isa         Isa
	windowCount int
	totalBytes  int
	scoreSum    int64
	endianness  Endianness
	bitwidth    int
}

// DetectMultiISA slides a non-overlapping fixed window across data,
// pre-filters and classifies each window independently, and aggregates
// which ISAs dominate enough windows to be reported. This is how the
// classifier handles firmware images containing more than one
// architecture (bootloader + application core, mixed ARM/Thumb blobs).
func DetectMultiISA(data []byte, options ClassifierOptions, windowSize int) []DetectedIsa {
	if windowSize <= 0 {
		windowSize = 2048
	}

	acc := make(map[IsaKind]*windowAccumulator)
	classifiedWindows := 0

	for start := 0; start < len(data); start += windowSize {
		end := start + windowSize
		if end > len(data) {
			end = len(data)
		}
		win := data[start:end]
		if shouldSkipWindow(win) {
			continue
		}

		top := TopCandidates(win, 1, options)
		if len(top) == 0 || top[0].Confidence < multiIsaMinConfidence {
			continue
		}
		classifiedWindows++

		cand := top[0]
		a, ok := acc[cand.Isa.Kind]
		if !ok {
			a = &windowAccumulator{isa: cand.Isa, endianness: cand.Endianness, bitwidth: cand.Bitwidth}
			acc[cand.Isa.Kind] = a
		}
		a.windowCount++
		a.totalBytes += len(win)
		a.scoreSum += cand.RawScore
	}

	results := make([]DetectedIsa, 0, len(acc))
	for _, a := range acc {
		share := 0.0
		if classifiedWindows > 0 {
			share = float64(a.windowCount) / float64(classifiedWindows)
		}
		if a.windowCount < multiIsaMinWindowCount {
			continue
		}
		if share < multiIsaMinShare {
			continue
		}
		if a.totalBytes < multiIsaMinTotalBytes {
			continue
		}
		results = append(results, DetectedIsa{
			Isa:         a.isa,
			WindowCount: a.windowCount,
			TotalBytes:  a.totalBytes,
			AvgScore:    float64(a.scoreSum) / float64(a.windowCount),
			Endianness:  a.endianness,
			Bitwidth:    a.bitwidth,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].WindowCount != results[j].WindowCount {
			return results[i].WindowCount > results[j].WindowCount
		}
		return results[i].Isa.Kind < results[j].Isa.Kind
	})
	return results
}
