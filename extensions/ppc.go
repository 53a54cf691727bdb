package extensions

import "github.com/19h/isa-classifier-sub000/isa"

// detectPpc inspects each 32-bit word's primary opcode (bits [31:26]) and,
// for the extended-opcode groups, the secondary opcode field to recognize
// AltiVec/VMX, VSX, decimal floating-point, and crypto/vector instructions.
func detectPpc(data []byte, end isa.Endianness) []isa.Extension {
	found := make(map[string]isa.ExtensionCategory)

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := isa.ReadU32(data, i, end)
		if !ok {
			break
		}

		primary := word >> 26
		ext := (word >> 1) & 0x3FF

		switch primary {
		case 4:
			// AltiVec/VMX primary opcode space.
			found["VMX"] = isa.CategorySimd
			switch ext & 0x3F {
			case 0x2A, 0x2B:
				found["VMX-CRYPTO"] = isa.CategoryCrypto
			}
		case 60, 61:
			// VSX load/store and arithmetic primary opcode space.
			found["VSX"] = isa.CategorySimd
		case 59, 63:
			// Decimal floating point shares the scalar FP primary opcodes;
			// the DFP-specific secondary opcodes sit at the high end of the
			// extended-opcode field.
			switch ext {
			case 0x2, 0x42, 0x82, 0xC2, 0x102, 0x142:
				found["DFP"] = isa.CategoryFloatingPoint
			}
		}

		// Matrix-multiply accumulate (MMA) extended opcodes under primary 4.
		if primary == 4 && (ext == 0x168 || ext == 0x1A8) {
			found["MMA"] = isa.CategoryMachineLearning
		}
	}

	return dedupeExtensions(found)
}
