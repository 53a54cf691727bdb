package isa

// HC11 and HCS12: Motorola/Freescale 8-bit MCU families sharing much of
// their opcode map. The two mainly differ in RET/RTS encoding (0x39 for
// HC11 vs 0x3D for HCS12) and in the 0x18-prefix page — which is exactly
// the discrimination spec 4.2.1 calls out.

func scoreHc11(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, rtiCount, bsrCount, jsrCount, nopCount int
	var hcs12PenaltyHits int

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch b {
		case 0x39: // RTS
			rtsCount++
			score += 22
		case 0x3B: // RTI
			rtiCount++
			score += 15
		case 0x01: // NOP
			nopCount++
			score += 4
		case 0x8D: // BSR
			bsrCount++
			score += 6
		case 0x9D, 0xAD, 0xBD: // JSR
			jsrCount++
			score += 5
		case 0x3D: // HCS12's RTS opcode, a strong cross-architecture signal here
			hcs12PenaltyHits++
		}
	}

	if rtsCount > 0 && (bsrCount > 0 || jsrCount > 0) {
		score += 15
	}

	scanned := len(data)
	score = tieredPenalty(score, hcs12PenaltyHits, scanned, 0.015, 0.004, 0.2, 0.5, 3)
	score += runPenalty(data, 1)
	return clamp0(score)
}

func scoreHcs12(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, rtcCount, rtiCount, bsrCount, jsrCount, callCount, nopCount int
	var shPenaltyHits, c166PenaltyHits int

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch b {
		case 0x3D: // RTS
			rtsCount++
			score += 22
		case 0x0A: // RTC (banked return, HCS12X)
			rtcCount++
			score += 20
		case 0x0B: // RTI
			rtiCount++
			score += 18
		case 0xA7: // NOP
			nopCount++
			score += 6
		case 0x07: // BSR
			bsrCount++
			score += 6
		case 0x15, 0x16, 0x17: // JSR
			jsrCount++
			score += 5
		case 0x4A, 0x4B: // CALL
			callCount++
			score += 6
		}
		// C166 RET/RETS density probe (bytes 0xCB/0xDB).
		if b == 0xCB || b == 0xDB {
			c166PenaltyHits++
		}
	}

	if rtsCount > 0 && (bsrCount > 0 || jsrCount > 0 || callCount > 0) {
		score += 15
	}

	for i := 0; i+4 <= len(data); i += 4 {
		lo, _ := ReadU16(data, i, Little)
		hi, _ := ReadU16(data, i+2, Little)
		if lo == 0x000B && hi == 0x0009 { // SH RTS; NOP delay-slot pair
			shPenaltyHits++
		}
	}

	scanned := len(data)
	score = tieredPenalty(score, c166PenaltyHits, scanned, 0.010, 0.003, 0.2, 0.5, 3)
	score = tieredPenalty(score, shPenaltyHits, scanned/4, 0.02, 0.005, 0.2, 0.5, 3)
	score += runPenalty(data, 1)
	return clamp0(score)
}
