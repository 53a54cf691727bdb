package isa

// Tier B: embedded/niche ISAs without a reference scorer in the
// retrieval corpus (see DESIGN.md). Each still follows the three-rule
// design (exact pattern, structural correlation, padding/cross penalty)
// but with a single dominant canonical sequence rather than a full
// opcode map, per the fixed-width-RISC-family template the rest of the
// registry is built from.

func scoreParisc(data []byte, end Endianness) int64 {
	var score int64
	var bvCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Big)
		if !ok {
			break
		}
		switch word {
		case 0x08000240: // NOP (OR %r0,%r0,%r0)
			nopCount++
			score += 6
		case 0xE840C000: // BV %r0(%r2) == RET
			bvCount++
			score += 22
		}
		if word>>26 == 0x3A { // BE/BLE family, opcode 0x3A
			score += 3
		}
	}
	if bvCount > 0 {
		score += 10
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreArc(data []byte, end Endianness) int64 {
	var score int64
	var jBlinkCount, nopCount int
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, Little)
		if !ok {
			break
		}
		switch hw {
		case 0x7EE0: // J_S [blink] == RET (16-bit compact form)
			jBlinkCount++
			score += 20
		case 0x78E0: // NOP_S
			nopCount++
			score += 5
		}
	}
	if jBlinkCount > 0 {
		score += 8
	}
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreXtensa(data []byte, end Endianness) int64 {
	var score int64
	var retCount, nopCount int
	for i := 0; i+3 <= len(data); i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		// RET.N (narrow) == 0x000D f0 little-endian-packed 3-byte form: 0F 00 0D in memory order varies by config.
		if b0 == 0x0D && b1 == 0xF0 && b2 == 0x00 {
			retCount++
			score += 18
		}
		if b0 == 0x00 && b1 == 0x20 && b2 == 0x00 { // NOP.N padded to 3 bytes
			nopCount++
			score += 4
		}
	}
	if retCount > 0 {
		score += 8
	}
	score += runPenalty(data, 3)
	return clamp0(score)
}

func scoreMicroBlaze(data []byte, end Endianness) int64 {
	var score int64
	var rtsdCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		switch word {
		case 0xB61F0008: // RTSD r15, 8 == RET
			rtsdCount++
			score += 22
		case 0x80000000: // NOP (or r0, r0, r0)
			nopCount++
			score += 6
		}
		if word>>26 == 0x2E { // BRLID (call-with-link), opcode 0x2E
			score += 4
		}
	}
	if rtsdCount > 0 {
		score += 10
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreNios2(data []byte, end Endianness) int64 {
	var score int64
	var retCount, nopCount, callCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Little)
		if !ok {
			break
		}
		opx := (word >> 6) & 0x3F
		opcode := word & 0x3F
		switch {
		case opcode == 0x3A && opx == 0x01 && ((word>>27)&0x1F) == 31:
			// ret: R-type jmp using ra (r31)
			retCount++
			score += 18
		case word == 0x00000000:
			// true zero word is usually padding, not Nios2 NOP; counted elsewhere
		case opcode == 0x00:
			callCount++
			score += 3
		}
		if opcode == 0x3A && opx == 0x3A { // nop pseudo-op (add r0,r0,r0 shares opx space)
			nopCount++
			score += 2
		}
	}
	if retCount > 0 && callCount > 0 {
		score += 10
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreOpenRisc(data []byte, end Endianness) int64 {
	var score int64
	var jrCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Big)
		if !ok {
			break
		}
		op := word >> 26
		switch {
		case op == 0x11 && (word>>16)&0x7FF == 9:
			// l.jr r9 == return via link register
			jrCount++
			score += 20
		case word == 0x15000000:
			// l.nop
			nopCount++
			score += 6
		case op == 0x01:
			score += 4 // l.jal (call)
		}
	}
	if jrCount > 0 {
		score += 10
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreLanai(data []byte, end Endianness) int64 {
	var score int64
	var retCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Big)
		if !ok {
			break
		}
		if word>>24 == 0x02 { // RET pseudo-op approximated by branch-register opcode band
			retCount++
			score += 12
		}
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreBlackfin(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, nopCount int
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, Little)
		if !ok {
			break
		}
		switch hw {
		case 0x0010: // RTS
			rtsCount++
			score += 20
		case 0x0000: // NOP
			nopCount++
			score += 3
		}
	}
	if rtsCount > 0 {
		score += 8
	}
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreIa64(data []byte, end Endianness) int64 {
	// IA-64 packs three 41-bit instruction slots plus a 5-bit template
	// field into a 128-bit (16-byte) bundle. We only check that the
	// low 5 bits of each 16-byte chunk form a plausible template number
	// (0-0x1F, but most real code clusters in a handful of values) and
	// that bundles aren't all-zero/all-one padding.
	var score int64
	var plausibleBundles int
	for i := 0; i+16 <= len(data); i += 16 {
		lo, ok := ReadU64(data, i, Little)
		if !ok {
			break
		}
		if lo == 0 || lo == ^uint64(0) {
			continue
		}
		template := lo & 0x1F
		if template <= 0x1D {
			plausibleBundles++
			score += 2
		}
	}
	score = lengthDeflate(score, len(data), plausibleBundles > 4, 8192)
	score += runPenalty(data, 16)
	return clamp0(score)
}

func scoreCellSpu(data []byte, end Endianness) int64 {
	var score int64
	var biCount, nopCount int
	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, Big)
		if !ok {
			break
		}
		if word>>21 == 0b00110101000 { // bi $0 == RET idiom
			biCount++
			score += 20
		}
		if word>>21 == 0b01000000001 { // lnop
			nopCount++
			score += 4
		}
	}
	if biCount > 0 {
		score += 8
	}
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreTricore(data []byte, end Endianness) int64 {
	var score int64
	var retCount, callCount int
	var c166PenaltyHits int
	for i := 0; i < len(data); i++ {
		if i+1 < len(data) && data[i] == 0x00 && data[i+1] == 0x90 {
			retCount++
			score += 20
			i++
		}
		if i+3 < len(data) && data[i]&0x3F == 0x6D {
			callCount++
			score += 4
		}
		if data[i] == 0xCB { // C166 RET cross penalty byte
			c166PenaltyHits++
		}
	}
	if retCount > 0 {
		score += 8
	}
	scanned := len(data)
	score = tieredPenalty(score, c166PenaltyHits, scanned, 0.02, 0.005, 0.2, 0.4, 2)
	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreZ80(data []byte, end Endianness) int64 {
	var score int64
	var retCount, callCount, nopCount int
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 0xC9: // RET
			retCount++
			score += 20
		case 0x00: // NOP
			nopCount++
			score += 2
		case 0xCD: // CALL nn
			if i+3 <= len(data) {
				callCount++
				score += 6
				i += 2
			}
		}
	}
	if retCount > 0 && callCount > 0 {
		score += 15
	}
	score += runPenalty(data, 1)
	return clamp0(score)
}

func scoreW65816(data []byte, end Endianness) int64 {
	var score int64
	var rtsCount, rtlCount, jsrCount, nopCount int
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 0x60: // RTS
			rtsCount++
			score += 20
		case 0x6B: // RTL
			rtlCount++
			score += 18
		case 0xEA: // NOP
			nopCount++
			score += 3
		case 0x20: // JSR abs
			if i+3 <= len(data) {
				jsrCount++
				score += 6
				i += 2
			}
		}
	}
	if (rtsCount > 0 || rtlCount > 0) && jsrCount > 0 {
		score += 15
	}
	score += runPenalty(data, 1)
	return clamp0(score)
}
