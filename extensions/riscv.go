package extensions

import "github.com/19h/isa-classifier-sub000/isa"

// RISC-V base opcodes used to recognize which standard extension an
// instruction word belongs to.
const (
	riscvOpAmo    = 0x2F // A: atomic memory operations
	riscvOpLoadFP = 0x07 // F/D: floating-point load
	riscvOpStoreFP = 0x27 // F/D: floating-point store
	riscvOpFP     = 0x53 // F/D: floating-point arithmetic
	riscvOpOp     = 0x33 // M: integer multiply/divide (funct7=1)
	riscvOp32     = 0x3B // M: 64-bit word multiply/divide variants
)

// detectRiscV inspects each 32-bit word's opcode/funct3/funct7 fields (and
// each 16-bit halfword's compressed-instruction quadrant) to infer which
// standard extensions the stream exercises: M, A, F, D, C, and the bit
// manipulation extensions Zba/Zbb/Zbs.
func detectRiscV(data []byte, end isa.Endianness) []isa.Extension {
	found := make(map[string]isa.ExtensionCategory)

	i := 0
	for i+2 <= len(data) {
		half, ok := isa.ReadU16(data, i, end)
		if !ok {
			break
		}

		if half&0x3 != 0x3 {
			// Compressed (16-bit) instruction: quadrant 0-2.
			found["C"] = isa.CategoryCompressed
			i += 2
			continue
		}

		word, ok := isa.ReadU32(data, i, end)
		if !ok {
			break
		}
		i += 4

		opcode := word & 0x7F
		funct3 := (word >> 12) & 0x7
		funct7 := (word >> 25) & 0x7F

		switch opcode {
		case riscvOpAmo:
			found["A"] = isa.CategoryAtomic
		case riscvOpLoadFP, riscvOpStoreFP:
			found["F"] = isa.CategoryFloatingPoint
		case riscvOpFP:
			switch funct7 & 0x3 {
			case 0x1:
				found["D"] = isa.CategoryFloatingPoint
			default:
				found["F"] = isa.CategoryFloatingPoint
			}
		case riscvOpOp:
			if funct7 == 0x01 {
				found["M"] = isa.CategoryOther
			}
			switch {
			case funct7 == 0x20 && (funct3 == 0x4 || funct3 == 0x6 || funct3 == 0x7):
				found["Zbb"] = isa.CategoryBitManip
			case funct7 == 0x10 && funct3 == 0x2:
				found["Zbs"] = isa.CategoryBitManip
			case funct7 == 0x04 && funct3 == 0x4:
				found["Zba"] = isa.CategoryBitManip
			}
		case riscvOp32:
			if funct7 == 0x01 {
				found["M"] = isa.CategoryOther
			}
		}
	}

	return dedupeExtensions(found)
}
