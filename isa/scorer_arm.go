package isa

// Arm scorer covers both classic 32-bit ARM encoding and Thumb/Thumb-2,
// since firmware commonly mixes the two and the spec's multi-ISA test
// scenario expects a single "Arm" window tally for Thumb-2 code.

const (
	armNop       uint32 = 0xE1A00000 // MOV R0, R0
	armNopHint   uint32 = 0xE320F000
	armBxLr      uint32 = 0xE12FFF1E
	armPushMask  uint32 = 0xFFFF0000
	armPushValue uint32 = 0xE92D0000
	armPopValue  uint32 = 0xE8BD0000
)

func scoreArm(data []byte, end Endianness) int64 {
	arm := scoreArm32(data, end)
	thumb := scoreThumb(data, end)
	base := arm
	if thumb > base {
		base = thumb
	}

	// Cortex-M vector table: one of the single strongest signals (spec
	// §4.2), so its bonus is scaled relative to how decisive the hit is
	// rather than added flat, following arm.rs's score() blend.
	vt := vectorTableScore(data, end)
	var bonus int64
	switch {
	case vt >= 200:
		bonus = vt
		if cap := base / 2; bonus > cap {
			bonus = cap
		}
	case vt >= 100:
		bonus = vt
		if cap := base * 3 / 10; bonus > cap {
			bonus = cap
		}
	default:
		bonus = vt
		if cap := base / 5; bonus > cap {
			bonus = cap
		}
	}

	result := base + bonus
	if vt >= 150 && thumb > arm {
		// Cortex-M firmware is overwhelmingly Thumb-2; a strong vector
		// table alongside a Thumb win boosts confidence further.
		result = result * 110 / 100
	}
	return clamp0(result)
}

func scoreArm32(data []byte, end Endianness) int64 {
	var score int64
	var bxLrCount, blCount, pushCount, popCount int
	var aarch64Penalty int64

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0 || word == 0xFFFFFFFF {
			continue
		}
		if word == armNop || word == armNopHint {
			score += 10
		}
		if word == armBxLr {
			bxLrCount++
			score += 25
		}
		if word&armPushMask == armPushValue {
			pushCount++
			score += 8
		}
		if word&armPushMask == armPopValue {
			popCount++
			score += 8
		}
		// BL: cond(4) 101 L(1) imm24, unconditional form bits[27:25]=101
		if word&0x0F000000 == 0x0B000000 {
			blCount++
			score += 6
		}

		// AArch64 cross-architecture penalty probes.
		if word == 0xD503201F || word == 0xD65F03C0 {
			aarch64Penalty += 18
			continue
		}
		if word>>26 == 0x25 { // AArch64 BL
			aarch64Penalty += 4
		}
		if (word>>20) == 0xD53 || (word>>20) == 0xD51 { // MRS/MSR
			aarch64Penalty += 6
		}
	}

	if bxLrCount > 0 && (pushCount > 0 || blCount > 0) {
		score += 15 // return + call/push correlation bonus
	}

	score -= aarch64Penalty
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scoreThumb(data []byte, end Endianness) int64 {
	var score int64
	var pushCount, popCount, bxLrCount, blCount int

	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, end)
		if !ok {
			break
		}
		if hw == 0 || hw == 0xFFFF {
			continue
		}
		// Thumb NOP: MOV R8,R8 = 0x46C0, or BF00.
		if hw == 0x46C0 || hw == 0xBF00 {
			score += 6
		}
		// PUSH {reglist, LR}: 1011 010 R rrrrrrrr
		if hw&0xFE00 == 0xB400 {
			pushCount++
			score += 8
		}
		// POP {reglist, PC}: 1011 110 R rrrrrrrr
		if hw&0xFE00 == 0xBC00 {
			popCount++
			score += 8
		}
		// BX LR: 0100 0111 0 111 0 000 = 0x4770
		if hw == 0x4770 {
			bxLrCount++
			score += 20
		}

		top5 := hw >> 11
		if top5 == 0x1D || top5 == 0x1E || top5 == 0x1F {
			// 32-bit Thumb-2 instruction: BL/BLX when 0x1E/0x1F with high bit pair.
			blCount++
			score += 4
			i += 2 // consume the second halfword of the 32-bit instruction
		}
	}

	if bxLrCount > 0 && (pushCount > 0 || blCount > 0) {
		score += 15
	}

	// AVR/MSP430 cross-architecture penalty: both are also 16-bit-stepped
	// ISAs; a strong run of their own canonical RET forms should pull the
	// Thumb score down rather than let Thumb win by default.
	avrRetCount := 0
	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, end)
		if !ok {
			break
		}
		if hw == 0x9508 { // AVR RET
			avrRetCount++
		}
	}
	score = tieredPenalty(score, avrRetCount, len(data)/2, 0.02, 0.005, 0.15, 0.4, 3)

	score += runPenalty(data, 2)
	return clamp0(score)
}

func scoreAArch64(data []byte, end Endianness) int64 {
	var score int64
	var retCount, nopCount, blCount, stpCount, msrMrsCount int
	var thumbPenaltyHits, avrPenaltyHits int

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0 || word == 0xFFFFFFFF {
			continue
		}
		switch word {
		case 0xD65F03C0: // RET
			retCount++
			score += 25
			continue
		case 0xD503201F: // NOP
			nopCount++
			score += 10
			continue
		}
		if word>>26 == 0x25 { // BL
			blCount++
			score += 8
		}
		if (word>>22) == 0x2A4 || (word>>22) == 0x2A5 { // STP/LDP sp-relative
			stpCount++
			score += 10
		}
		if (word>>20) == 0xD53 || (word>>20) == 0xD51 { // MRS/MSR
			msrMrsCount++
			score += 5
		}
		if (word>>24) == 0x91 || (word>>24) == 0xD1 { // ADD/SUB imm with SP
			score += 4
		}

		// Thumb BX LR as a 32-bit misread (0x4770 in either halfword) — weak penalty.
		lo := uint16(word & 0xFFFF)
		hi := uint16(word >> 16)
		if lo == 0x4770 || hi == 0x4770 {
			thumbPenaltyHits++
		}
		if word == 0x9508_9508 { // two AVR RETs back to back, extremely unlikely legitimate AArch64 word
			avrPenaltyHits++
		}
	}

	evidence := 0
	if retCount > 0 {
		evidence++
	}
	if blCount > 0 {
		evidence++
	}
	if stpCount > 0 {
		evidence++
	}
	if evidence >= 2 {
		score += 20
	}

	scanned := len(data) / 4
	score = tieredPenalty(score, thumbPenaltyHits, scanned, 0.05, 0.01, 0.2, 0.5, 3)
	score = tieredPenalty(score, avrPenaltyHits, scanned, 0.05, 0.01, 0.2, 0.5, 3)
	score += runPenalty(data, 4)
	_ = nopCount
	_ = msrMrsCount
	return clamp0(score)
}
