package formats

import (
	"encoding/binary"

	"github.com/19h/isa-classifier-sub000/isa"
)

func init() {
	isa.RegisterFormatSniffer(SniffPE)
}

// SniffPE reads the MZ/PE header chain far enough to recover
// IMAGE_FILE_HEADER.Machine. PE is always little-endian.
func SniffPE(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 0x40 || data[0] != 'M' || data[1] != 'Z' {
		return isa.ClassificationResult{}, false
	}
	peOffset := int(binary.LittleEndian.Uint32(data[0x3C:0x40]))
	if peOffset < 0 || peOffset+24 > len(data) {
		return isa.ClassificationResult{}, false
	}
	if string(data[peOffset:peOffset+4]) != "PE\x00\x00" {
		return isa.ClassificationResult{}, false
	}

	machine := binary.LittleEndian.Uint16(data[peOffset+4 : peOffset+6])
	kind, bitwidth := peMachineToIsa(machine)

	return isa.ClassificationResult{
		Isa:        kind,
		Bitwidth:   bitwidth,
		Endianness: isa.Little,
		Source:     isa.SourceHeader,
		Format:     isa.FormatPe,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   uint32(machine),
			ScannedBytes: peOffset + 24,
		},
	}, true
}

// peMachineToIsa maps IMAGE_FILE_HEADER.Machine constants documented by
// the Microsoft PE/COFF specification.
func peMachineToIsa(machine uint16) (isa.Isa, int) {
	switch machine {
	case 0x014c: // IMAGE_FILE_MACHINE_I386
		return isa.Of(isa.IsaX86), 32
	case 0x8664: // IMAGE_FILE_MACHINE_AMD64
		return isa.Of(isa.IsaX86_64), 64
	case 0x01c0, 0x01c4: // ARM, ARMNT (Thumb-2)
		return isa.Of(isa.IsaArm), 32
	case 0xaa64: // ARM64
		return isa.Of(isa.IsaAArch64), 64
	case 0x5032: // RISCV32
		return isa.Of(isa.IsaRiscV32), 32
	case 0x5064: // RISCV64
		return isa.Of(isa.IsaRiscV64), 64
	case 0x0200: // IA64
		return isa.Of(isa.IsaIa64), 64
	default:
		return isa.UnknownIsa(uint32(machine)), 0
	}
}
