package isa

// MIPS and PowerPC: both fixed-width 32-bit, bi-endian in the wild
// (mipsel/mips, ppc64/ppc64le). Each carries a cross-architecture penalty
// against the other's canonical return sequence since both show up in
// router/embedded firmware corpora together.

func scoreMips(data []byte, end Endianness) int64 { return scoreMipsFamily(data, end) }

func scoreMips64(data []byte, end Endianness) int64 { return scoreMipsFamily(data, end) }

func scoreMipsFamily(data []byte, end Endianness) int64 {
	var score int64
	var jrRaCount, jalCount, nopCount, addiuCount int
	var ppcPenaltyHits int

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0 {
			nopCount++
			continue
		}
		if word == 0xFFFFFFFF {
			continue
		}
		opcode := word >> 26
		switch {
		case word == 0x03E00008:
			// JR $ra
			jrRaCount++
			score += 25
		case opcode == 0x03 && (word&0x3F) == 0x08:
			// generic JR via function field, broader net
			score += 4
		case opcode == 0x03:
			// JAL target
			jalCount++
			score += 8
		case opcode == 0x09:
			// ADDIU
			addiuCount++
			score += 2
		case opcode == 0x0F:
			// LUI
			score += 3
		}
		// PowerPC BLR == 0x4E800020 (big-endian canonical form).
		if word == 0x4E800020 {
			ppcPenaltyHits++
		}
	}

	if jrRaCount > 0 && jalCount > 0 {
		score += 15
	}

	scanned := len(data) / 4
	score = tieredPenalty(score, ppcPenaltyHits, scanned, 0.02, 0.005, 0.15, 0.4, 4)
	score += runPenalty(data, 4)
	return clamp0(score)
}

func scorePpc(data []byte, end Endianness) int64 { return scorePpcFamily(data, end) }

func scorePpc64(data []byte, end Endianness) int64 { return scorePpcFamily(data, end) }

func scorePpcFamily(data []byte, end Endianness) int64 {
	var score int64
	var blrCount, blCount, nopCount, mflrCount int
	var mipsPenaltyHits, sparcPenaltyHits int

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := ReadU32(data, i, end)
		if !ok {
			break
		}
		if word == 0xFFFFFFFF {
			continue
		}
		switch word {
		case 0x4E800020: // BLR
			blrCount++
			score += 25
		case 0x60000000: // ORI r0,r0,0 == NOP
			nopCount++
			score += 8
		case 0x7C0802A6: // MFLR r0
			mflrCount++
			score += 10
		}
		opcode := word >> 26
		if opcode == 18 { // B/BL, primary op 18
			if word&1 == 1 {
				blCount++
				score += 6
			}
		}
		// MIPS JR $ra cross penalty.
		if word == 0x03E00008 {
			mipsPenaltyHits++
		}
		// SPARC NOP cross penalty (0x01000000).
		if word == 0x01000000 {
			sparcPenaltyHits++
		}
	}

	if blrCount > 0 && (mflrCount > 0 || blCount > 0) {
		score += 15
	}

	scanned := len(data) / 4
	score = tieredPenalty(score, mipsPenaltyHits, scanned, 0.02, 0.005, 0.15, 0.4, 4)
	score = tieredPenalty(score, sparcPenaltyHits, scanned, 0.02, 0.005, 0.15, 0.4, 3)
	score += runPenalty(data, 4)
	_ = nopCount
	return clamp0(score)
}
