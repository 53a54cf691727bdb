package isa

// JVM, WASM, and Dalvik: stack-machine bytecode. JVM bytecode is
// big-endian (constant pool indices), Dalvik and WASM are little-endian.
// These scorers use opcode->length tables rather than scanning raw words.

func scoreJvm(data []byte, end Endianness) int64 {
	var score int64
	var returnCount, invokeCount, loadStoreCount, nopCount int

	i := 0
	for i < len(data) {
		op := data[i]
		switch op {
		case 0xB1: // RETURN (void)
			returnCount++
			score += 20
			i++
		case 0xAC, 0xAD, 0xAE, 0xAF, 0xB0: // IRETURN/LRETURN/FRETURN/DRETURN/ARETURN
			returnCount++
			score += 18
			i++
		case 0xB6, 0xB7, 0xB8, 0xB9: // invokevirtual/special/static/interface
			invokeCount++
			score += 10
			if op == 0xB9 {
				i += 5 // invokeinterface has two extra bytes
			} else {
				i += 3
			}
		case 0x2A, 0x2B, 0x2C, 0x2D: // aload_0..3
			loadStoreCount++
			score += 2
			i++
		case 0x4B, 0x4C, 0x4D, 0x4E: // astore_0..3
			loadStoreCount++
			score += 2
			i++
		case 0x00: // NOP
			nopCount++
			score += 4
			i++
		case 0xBB: // NEW
			score += 6
			i += 3
		case 0xB2, 0xB3, 0xB4, 0xB5: // getstatic/putstatic/getfield/putfield
			score += 5
			i += 3
		default:
			i++
		}
	}

	if returnCount > 0 && invokeCount > 0 {
		score += 15
	}
	score = lengthDeflate(score, len(data), returnCount > 0 && invokeCount > 0, 4096)
	score += runPenalty(data, 1)
	return clamp0(score)
}

func scoreWasm(data []byte, end Endianness) int64 {
	var score int64
	var endCount, callCount, returnCount, localCount int

	i := 0
	for i < len(data) {
		op := data[i]
		switch op {
		case 0x0B: // end
			endCount++
			score += 4
			i++
		case 0x0F: // return
			returnCount++
			score += 10
			i++
		case 0x10: // call <LEB128 funcidx>
			callCount++
			score += 8
			i++
			_, n, ok := ReadULEB128(data, i)
			if !ok {
				i++
				continue
			}
			i += n
		case 0x20, 0x21, 0x22, 0x23, 0x24: // local.get/set/tee, global.get/set
			localCount++
			score += 2
			i++
			_, n, ok := ReadULEB128(data, i)
			if !ok {
				i++
				continue
			}
			i += n
		case 0x01: // nop
			score += 3
			i++
		case 0x00: // unreachable
			score += 2
			i++
		case 0x02, 0x03, 0x04: // block/loop/if
			score += 3
			i += 2 // opcode + block type byte (simplified)
		default:
			i++
		}
	}

	if endCount > 0 && (callCount > 0 || returnCount > 0) {
		score += 15
	}
	score = lengthDeflate(score, len(data), endCount > 0 && callCount > 0, 4096)
	score += runPenalty(data, 1)
	return clamp0(score)
}

func scoreDalvik(data []byte, end Endianness) int64 {
	var score int64
	var returnCount, invokeCount, moveCount, nopCount int

	for i := 0; i+2 <= len(data); i += 2 {
		hw, ok := ReadU16(data, i, Little)
		if !ok {
			break
		}
		op := byte(hw & 0xFF)
		switch op {
		case 0x00: // nop / pseudo-opcode marker
			nopCount++
			score += 3
		case 0x0E: // return-void
			returnCount++
			score += 20
		case 0x0F, 0x10, 0x11: // return / return-wide / return-object
			returnCount++
			score += 18
		case 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78: // invoke-* family
			invokeCount++
			score += 10
			i += 2 // these are 3 code-units (6 bytes); consume two extra
		case 0x01, 0x02, 0x03: // move/move-wide/move-object
			moveCount++
			score += 2
		}
	}

	if returnCount > 0 && invokeCount > 0 {
		score += 15
	}
	score = lengthDeflate(score, len(data), returnCount > 0 && invokeCount > 0, 4096)
	score += runPenalty(data, 2)
	return clamp0(score)
}
