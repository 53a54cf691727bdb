package isa

func scoreVax(data []byte, end Endianness) int64 {
	var score int64
	var retCount, jsbCount, nopCount int
	var msp430PenaltyHits, avrPenaltyHits, thumbPenaltyHits, x86PenaltyHits int

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch b {
		case 0x04, 0x05: // RET, RSB
			retCount++
			score += 10 // deliberately modest: these bytes are common in any ISA
		case 0x16, 0x17: // JSB, JMP
			jsbCount++
			score += 4
		case 0x01: // NOP
			nopCount++
			score += 2
		}
	}

	if retCount > 0 && jsbCount > 0 {
		score += 10
	}

	for j := 0; j+2 <= len(data); j += 2 {
		hw, _ := ReadU16(data, j, Little)
		switch hw {
		case 0x4130, 0x1300: // MSP430 RET/RETI
			msp430PenaltyHits++
		case 0x9508, 0x9518: // AVR RET/RETI
			avrPenaltyHits++
		case 0x4770: // Thumb BX LR
			thumbPenaltyHits++
		}
	}
	for j := 0; j < len(data); j++ {
		b := data[j]
		if b == 0x55 && j+2 < len(data) && data[j+1] == 0x89 && data[j+2] == 0xE5 {
			x86PenaltyHits++
		}
		if b == 0xC3 {
			x86PenaltyHits++
		}
	}

	scanned16 := len(data) / 2
	score = tieredPenalty(score, msp430PenaltyHits, scanned16, 0.03, 0.01, 0.2, 0.4, 3)
	score = tieredPenalty(score, avrPenaltyHits, scanned16, 0.03, 0.01, 0.2, 0.4, 3)
	score = tieredPenalty(score, thumbPenaltyHits, scanned16, 0.03, 0.01, 0.2, 0.4, 3)
	score = tieredPenalty(score, x86PenaltyHits, len(data), 0.02, 0.005, 0.15, 0.4, 2)

	score = lengthDeflate(score, len(data), retCount > 0 && jsbCount > 0, 4096)
	score += runPenalty(data, 1)
	return clamp0(score)
}

func scoreI860(data []byte, end Endianness) int64 {
	var score int64
	var graphicsOpCount, validCount int
	var armPenaltyHits, armTotal int

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Little)
		if !ok {
			break
		}
		if word == 0 || word == 0xFFFFFFFF {
			continue
		}
		if word == 0x5A5A5A5A || word == 0xDEADBEEF || word == 0xCAFEBABE || word == 0xFEEDFACE {
			score -= 3
			continue
		}

		op := word >> 26
		if op >= 0x38 && op <= 0x3B { // graphics/dual-ops opcode band
			graphicsOpCount++
			score += 6
		} else if op < 0x30 {
			validCount++
			score += 1
		}

		// ARM32 cross-architecture penalty: condition field 0xE (AL) in
		// the top nibble is extremely common in real ARM code and
		// coincides with i860's high opcode bits.
		armTotal++
		cond := word >> 28
		if cond <= 0xE {
			if cond == 0xE {
				armPenaltyHits++
			}
		}
	}

	scanned := len(data) / 4
	score = tieredPenalty(score, armPenaltyHits, scanned, 0.25, 0.10, 0.2, 0.5, 1)

	score += runPenalty(data, 4)
	_ = validCount
	_ = armTotal
	return clamp0(score)
}
