package formats

import (
	"encoding/binary"

	"github.com/19h/isa-classifier-sub000/isa"
)

const (
	machoMagic32LE = 0xFEEDFACE
	machoMagic64LE = 0xFEEDFACF
	machoMagic32BE = 0xCEFAEDFE
	machoMagic64BE = 0xCFFAEDFE
)

func init() {
	isa.RegisterFormatSniffer(SniffMachO)
}

// SniffMachO reads the Mach-O mach_header(_64) cputype/cpusubtype fields.
func SniffMachO(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 8 {
		return isa.ClassificationResult{}, false
	}
	magicLE := binary.LittleEndian.Uint32(data[0:4])

	var order binary.ByteOrder
	var is64 bool
	switch {
	case magicLE == machoMagic32LE:
		order, is64 = binary.LittleEndian, false
	case magicLE == machoMagic64LE:
		order, is64 = binary.LittleEndian, true
	case magicLE == machoMagic32BE:
		order, is64 = binary.BigEndian, false
	case magicLE == machoMagic64BE:
		order, is64 = binary.BigEndian, true
	default:
		return isa.ClassificationResult{}, false
	}
	if len(data) < 12 {
		return isa.ClassificationResult{}, false
	}

	cpuType := order.Uint32(data[4:8])
	kind, bitwidth := machoCPUTypeToIsa(cpuType, is64)

	end := isa.Little
	if order == binary.BigEndian {
		end = isa.Big
	}

	return isa.ClassificationResult{
		Isa:        kind,
		Bitwidth:   bitwidth,
		Endianness: end,
		Source:     isa.SourceHeader,
		Format:     isa.FormatMachO,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			RawMachine:   cpuType,
			ScannedBytes: 12,
		},
	}, true
}

const cpuArchAbi64 = 0x01000000

// machoCPUTypeToIsa maps Mach-O CPU_TYPE_* constants (mach/machine.h).
func machoCPUTypeToIsa(cpuType uint32, is64 bool) (isa.Isa, int) {
	base := cpuType &^ cpuArchAbi64
	switch base {
	case 7: // CPU_TYPE_X86
		if is64 || cpuType&cpuArchAbi64 != 0 {
			return isa.Of(isa.IsaX86_64), 64
		}
		return isa.Of(isa.IsaX86), 32
	case 12: // CPU_TYPE_ARM
		if is64 || cpuType&cpuArchAbi64 != 0 {
			return isa.Of(isa.IsaAArch64), 64
		}
		return isa.Of(isa.IsaArm), 32
	case 18: // CPU_TYPE_POWERPC
		if is64 || cpuType&cpuArchAbi64 != 0 {
			return isa.Of(isa.IsaPpc64), 64
		}
		return isa.Of(isa.IsaPpc), 32
	default:
		return isa.UnknownIsa(cpuType), 0
	}
}
