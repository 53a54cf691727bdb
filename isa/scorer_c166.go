package isa

// C166: Infineon 16-bit microcontroller family, variable-length but with
// a very dense single-byte opcode map for RET/RETS which makes density
// (not raw count) the deciding discrimination signal against HC(S)12/SH.

func scoreC166(data []byte, end Endianness) int64 {
	var score int64
	var retCount, retsCount, callCount, nopCount, extCount, pushPopCount int
	var shPenaltyHits, tricorePenaltyHits int

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch b {
		case 0xCB: // RET
			retCount++
			score += 20
		case 0xDB: // RETS
			retsCount++
			score += 18
		case 0xBB, 0xCA, 0xDA: // CALLR/CALLI/CALLS
			callCount++
			score += 6
		case 0xCC: // NOP
			nopCount++
			score += 4
		case 0xD7, 0xD1: // EXTS/EXTR
			extCount++
			score += 3
		case 0xEC, 0xFC: // PUSH/POP
			pushPopCount++
			score += 4
		}
	}

	retDensity := density(retCount+retsCount, len(data)/2)
	if retDensity > 0.010 {
		score += 25 // real C166 code clears this density bar comfortably
	}
	if retCount > 0 && (callCount > 0 || extCount > 0) {
		score += 15
	}

	// SuperH cross penalty: sparse/packed vector tables and RTS;NOP
	// delay-slot pairs are SH's signature, not C166's.
	for i := 0; i+4 <= len(data); i += 4 {
		lo, _ := ReadU16(data, i, Little)
		hi, _ := ReadU16(data, i+2, Little)
		if lo == 0x000B && hi == 0x0009 {
			shPenaltyHits++
		}
	}
	// TriCore cross penalty: its RET opcode (0x00 0x90 in the 32-bit
	// instruction stream) is easy to mistake for C166 bytes at low density.
	for i := 0; i+2 <= len(data); i += 2 {
		if data[i] == 0x00 && data[i+1] == 0x90 {
			tricorePenaltyHits++
		}
	}

	scanned := len(data)
	score = tieredPenalty(score, shPenaltyHits, scanned/4, 0.02, 0.005, 0.05, 0.3, 3)
	score = tieredPenalty(score, tricorePenaltyHits, scanned/2, 0.03, 0.01, 0.05, 0.3, 2)

	score += runPenalty(data, 1)
	return clamp0(score)
}
