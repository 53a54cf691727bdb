package isa

// Shared helpers used across the per-ISA scorers. Keeping these in one
// place is what lets every scorer follow the same three design rules:
// exact improbable patterns, structural correlation bonuses, and
// density-thresholded cross-architecture penalties.

func clamp0(score int64) int64 {
	if score < 0 {
		return 0
	}
	return score
}

// runPenalty discounts long runs of a single repeated byte (flash erase
// value 0xFF, zero padding, BSS). Returns a negative adjustment.
func runPenalty(data []byte, step int) int64 {
	if len(data) < step*3 {
		return 0
	}
	var penalty int64
	runLen := 0
	var last byte
	for i := 0; i+step <= len(data); i += step {
		b := data[i]
		allSame := true
		for j := 1; j < step; j++ {
			if data[i+j] != b {
				allSame = false
				break
			}
		}
		if !allSame {
			runLen = 0
			continue
		}
		if runLen > 0 && b == last {
			runLen++
		} else {
			runLen = 1
			last = b
		}
		if runLen > 2 {
			penalty -= 2
		}
	}
	return penalty
}

// density reports matches per unit-length (per byte of scanned region),
// used to gate cross-architecture penalties so large files don't
// coincidentally trip every penalty probe.
func density(matches int, scanned int) float64 {
	if scanned <= 0 {
		return 0
	}
	return float64(matches) / float64(scanned)
}

// tieredPenalty applies a multiplicative penalty when density crosses the
// "overwhelming evidence" threshold, a softer multiplier at the "moderate
// evidence" threshold, or a flat per-match subtraction otherwise.
func tieredPenalty(score int64, matches int, scanned int, strongDensity, moderateDensity float64, strongMul, moderateMul float64, flatPerMatch int64) int64 {
	if matches == 0 {
		return score
	}
	d := density(matches, scanned)
	switch {
	case d >= strongDensity:
		return int64(float64(score) * strongMul)
	case d >= moderateDensity:
		return int64(float64(score) * moderateMul)
	default:
		return score - flatPerMatch*int64(matches)
	}
}

// lengthDeflate discounts scores on very long inputs that accumulated
// weak per-byte evidence but never saw a single strong structural match
// (spec 9: "length-dependent confidence deflators, not definitive cutoffs").
func lengthDeflate(score int64, length int, strongEvidence bool, bigLen int) int64 {
	if strongEvidence || length <= bigLen {
		return score
	}
	return score / 2
}

func countSetBits32(v uint32) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}

// vectorTableOffsets are where a Cortex-M image's interrupt vector table
// commonly sits: at file start, or after a small bootloader/CRC/image
// header (grounded on original_source/classifier/src/architectures/
// arm.rs's score_cortex_m_vector_table, which tries the same four
// offsets).
var vectorTableOffsets = []int{0, 0x100, 0x200, 0x400}

// vectorTableScore hunts for a Cortex-M interrupt vector table: an array
// of word-aligned addresses with the Thumb LSB set (bit 0 = 1), clustered
// in the same 64 KB region, at one of the offsets a Cortex-M image
// typically places its table. Spec §4.2 calls this "one of the single
// strongest signals in the entire classifier," so it is scanned at every
// candidate offset and the best hit wins. Grounded on
// original_source/classifier/src/architectures/arm.rs:733's
// score_cortex_m_vector_table/score_vector_table_at_offset.
func vectorTableScore(data []byte, end Endianness) int64 {
	var best int64
	for _, offset := range vectorTableOffsets {
		if s := vectorTableScoreAt(data, offset, end); s > best {
			best = s
		}
	}
	return best
}

// vectorTableScoreAt scores a candidate vector table starting at offset,
// following arm.rs's checks: the first entry is the initial stack
// pointer (SRAM or low-SRAM-alias range, word-aligned, plausible stack
// size), the remaining entries (up to 48, covering the main Cortex-M
// exception and IRQ range) must be odd (Thumb bit set) and point into a
// plausible code range, and the decoded addresses must cluster — both in
// overall span and in shared upper bits (same 64 KB region).
func vectorTableScoreAt(data []byte, offset int, end Endianness) int64 {
	const maxVectors = 48 // 192 bytes: main Cortex-M exception + IRQ range
	if len(data) < offset+16 {
		return 0
	}

	var score int64
	validVectors := 0
	spValid := false
	addrs := make([]uint32, 0, maxVectors)

	for i := 0; i < maxVectors; i++ {
		addr, ok := ReadU32(data, offset+i*4, end)
		if !ok {
			break
		}

		if i == 0 {
			// Initial SP: typically SRAM (0x2000_0000 alias) or the
			// 0x1000_0000 region, word-aligned, sized 4 KiB-1 MiB.
			switch {
			case addr&0xF0000000 == 0x20000000:
				score += 50
				spValid = true
			case addr&0xFFF00000 == 0x10000000:
				score += 40
				spValid = true
			}
			if spValid && addr&3 == 0 {
				if size := addr & 0x00FFFFFF; size >= 0x1000 && size <= 0x100000 {
					score += 20
				}
			}
			continue
		}

		if addr == 0 {
			continue // reserved/unused vector
		}
		if addr&1 != 1 {
			continue // not Thumb-mode (LSB clear)
		}
		codeAddr := addr &^ 1
		if codeAddr >= 0x100 && codeAddr < 0x20000000 {
			validVectors++
			addrs = append(addrs, codeAddr)
		}
	}

	if len(addrs) >= 4 {
		minAddr, maxAddr := addrs[0], addrs[0]
		for _, a := range addrs {
			if a < minAddr {
				minAddr = a
			}
			if a > maxAddr {
				maxAddr = a
			}
		}
		if span := maxAddr - minAddr; span > 0 && span < 0x100000 {
			score += 30 // clustered vectors: typical of real firmware
		}

		const regionMask = 0xFFFF0000
		firstRegion := addrs[0] & regionMask
		sameRegion := 0
		for _, a := range addrs {
			if a&regionMask == firstRegion {
				sameRegion++
			}
		}
		if sameRegion*4 >= len(addrs)*3 {
			score += 40 // most vectors share the same 64 KB region
		}
	}

	switch {
	case validVectors >= 12 && spValid:
		score += 150
	case validVectors >= 8 && spValid:
		score += 100
	case validVectors >= 8:
		score += 80
	case validVectors >= 4:
		score += 40
	}

	return score
}
