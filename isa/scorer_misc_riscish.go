package isa

// S390x, M68k, SH, Alpha, LoongArch, and Hexagon. These see less firmware
// traffic than the families above, so their scorers lean on a smaller set
// of exact canonical sequences (return, nop, call) plus the documented
// cross-architecture penalties against their most common look-alikes.

func scoreS390x(data []byte, end Endianness) int64 {
	var score int64
	var brCount, nopCount int
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, end)
		if !ok {
			break
		}
		switch {
		case hw == 0x07FE:
			// BR %r14 (return from leaf), two-byte RR form
			brCount++
			score += 20
		case hw&0xFF00 == 0x0700:
			// BCR mask,reg family incl. NOP (BCR 0,0 = 0x0700)
			nopCount++
			score += 4
		}
	}
	if brCount > 0 && nopCount > 0 {
		score += 10
	}
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreM68k(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, nopCount, jsrCount int
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, end)
		if !ok {
			break
		}
		switch hw {
		case 0x4E75: // RTS
			rtsCount++
			score += 25
		case 0x4E71: // NOP
			nopCount++
			score += 8
		case 0x4E56: // LINK A6,#n (prologue), followed by displacement word
			score += 15
		}
		if hw&0xFFC0 == 0x4E80 { // JSR
			jsrCount++
			score += 6
		}
	}
	if rtsCount > 0 && jsrCount > 0 {
		score += 15
	}
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreSh(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, nopCount, bsrCount int
	var c166PenaltyHits, hcs12PenaltyHits int
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, end)
		if !ok {
			break
		}
		switch hw {
		case 0x000B: // RTS
			rtsCount++
			score += 22
		case 0x0009: // NOP
			nopCount++
			score += 6
		case 0x002B: // RTE
			score += 18
		}
		if hw&0xF000 == 0xB000 { // BSR
			bsrCount++
			score += 5
		}
		// C166 RET (0xCB00-ish halfword when read little-endian) and HCS12
		// RTS (0x3Dxx) both show up as common halfwords in SH code; track
		// density so long files don't trip the penalty on coincidence.
		if hw&0xFF00 == 0xCB00 {
			c166PenaltyHits++
		}
		if hw&0xFF00 == 0x3D00 {
			hcs12PenaltyHits++
		}
	}
	if rtsCount > 0 && bsrCount > 0 {
		score += 12 // RTS; NOP delay-slot pairing is SH's signature idiom
	}
	scanned := len(data) / 2
	score = tieredPenalty(score, c166PenaltyHits, scanned, 0.03, 0.01, 0.2, 0.5, 2)
	score = tieredPenalty(score, hcs12PenaltyHits, scanned, 0.03, 0.01, 0.2, 0.5, 2)
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreAlpha(data []byte, end Endianness) int64 {
	var score int64
	var retCount, callCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0x6BFA8001 { // RET
			retCount++
			score += 25
		}
		if word>>26 == 0x1A { // JSR/JMP/RET/CALL family, opcode 0x1A
			score += 3
		}
		if word>>26 == 0x34 { // BSR
			callCount++
			score += 6
		}
		if word == 0x47FF041F { // NOP (BIS R31,R31,R31)
			score += 8
		}
	}
	if retCount > 0 && callCount > 0 {
		score += 15
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreLoongArch32(data []byte, end Endianness) int64 { return scoreLoongArchFamily(data, end) }
func scoreLoongArch64(data []byte, end Endianness) int64 { return scoreLoongArchFamily(data, end) }

func scoreLoongArchFamily(data []byte, end Endianness) int64 {
	var score int64
	var jirlCount, blCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0x4C000020 { // JIRL $ra, $ra, 0 == RET idiom
			jirlCount++
			score += 25
		}
		if word == 0x03400000 { // ANDI $zero,$zero,0 == NOP
			nopCount++
			score += 8
		}
		if word>>26 == 0x15 { // BL, opcode 0x15
			blCount++
			score += 6
		}
	}
	if jirlCount > 0 && blCount > 0 {
		score += 15
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreHexagon(data []byte, end Endianness) int64 {
	var score int64
	var allocframeCount, deallocRetCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word&0xFFFF0000 == 0x7F000000 { // packet NOP
			nopCount++
			score += 6
		}
		if word == 0x961EC01E { // ALLOCFRAME canonical encoding
			allocframeCount++
			score += 18
		}
		if word&0xFFFFE000 == 0xA09DC000 { // DEALLOC_RETURN idiom
			deallocRetCount++
			score += 22
		}
		if word&0xFFE03FFF == 0x52800000 {
			score += 4
		}
	}
	if allocframeCount > 0 && deallocRetCount > 0 {
		score += 15
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}
