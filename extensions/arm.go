package extensions

import "github.com/19h/isa-classifier-sub000/isa"

// detectArm scans 32-bit ARM words for the NEON and VFP coprocessor
// encoding bands (coproc fields 10/11 in the classic ARM coprocessor
// instruction space cover both extensions).
func detectArm(data []byte, end isa.Endianness) []isa.Extension {
	found := make(map[string]isa.ExtensionCategory)

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := isa.ReadU32(data, i, end)
		if !ok {
			break
		}

		coproc := (word >> 8) & 0xF
		if coproc != 0xA && coproc != 0xB {
			continue
		}

		// NEON: top byte 0xF4/0xF2/0xF3 (unconditional SIMD encoding) or the
		// coprocessor load/store and register-transfer forms with coproc 11.
		top := (word >> 24) & 0xFF
		switch {
		case top == 0xF2 || top == 0xF3 || top == 0xF4:
			found["NEON"] = isa.CategorySimd
		case word&0x0F000E10 == 0x0E000A10 || word&0x0FE00E10 == 0x0C400A10:
			found["VFP"] = isa.CategoryFloatingPoint
		default:
			if coproc == 0xB {
				found["NEON"] = isa.CategorySimd
			}
		}
	}

	return dedupeExtensions(found)
}
