// Package formats implements the external-format adapter contract (spec
// C9): header sniffers that bypass the heuristic classifier entirely when
// a signed ELF/PE/Mach-O/kernel-image header is present. Each sniffer
// registers itself with the isa package at init time, the way
// database/sql drivers register themselves, so the core classifier never
// imports format-parsing code.
package formats

import (
	"encoding/binary"

	"github.com/19h/isa-classifier-sub000/isa"
)

const elfMagic = "\x7fELF"

const (
	elfClass32 = 1
	elfClass64 = 2
	elfData2LSB = 1
	elfData2MSB = 2
)

func init() {
	isa.RegisterFormatSniffer(SniffELF)
}

// SniffELF parses an ELF header and maps e_machine to an Isa. It never
// falls back to heuristics itself — a recognized ELF magic always wins,
// even mapping to Isa.Unknown(e_machine) when the machine value has no
// known mapping, because a signed-but-unrecognized header is still more
// authoritative than a heuristic guess.
func SniffELF(data []byte) (isa.ClassificationResult, bool) {
	if len(data) < 20 || string(data[:4]) != elfMagic {
		return isa.ClassificationResult{}, false
	}

	eiClass := data[4]
	eiData := data[5]

	var order binary.ByteOrder = binary.LittleEndian
	end := isa.Little
	if eiData == elfData2MSB {
		order = binary.BigEndian
		end = isa.Big
	}

	is64 := eiClass == elfClass64
	headerLen := 52
	if is64 {
		headerLen = 64
	}
	if len(data) < headerLen {
		return isa.ClassificationResult{}, false
	}

	eMachine := order.Uint16(data[18:20])
	var eFlags uint32
	var entry uint64
	if is64 {
		entry = order.Uint64(data[24:32])
		eFlags = order.Uint32(data[48:52])
	} else {
		entry = uint64(order.Uint32(data[24:28]))
		eFlags = order.Uint32(data[36:40])
	}

	kind, bitwidth := elfMachineToIsa(eMachine, is64)

	result := isa.ClassificationResult{
		Isa:        kind,
		Bitwidth:   bitwidth,
		Endianness: end,
		Source:     isa.SourceHeader,
		Format:     isa.FormatElf,
		Confidence: 1.0,
		Metadata: isa.Metadata{
			EntryPoint:   entry,
			HasEntry:     true,
			Flags:        eFlags,
			RawMachine:   uint32(eMachine),
			ScannedBytes: headerLen,
		},
		Variant: variantFromFlags(kind, eFlags),
	}
	return result, true
}

// elfMachineToIsa maps the full e_machine value space, mirroring the
// official ELF specification plus vendor extensions. Unmapped values
// become isa.UnknownIsa(value) rather than falling through to heuristics
// — the header is still authoritative.
func elfMachineToIsa(machine uint16, is64 bool) (isa.Isa, int) {
	switch machine {
	case 0x00:
		return isa.UnknownIsa(0), 0
	case 0x02:
		return isa.Of(isa.IsaSparc), 32
	case 0x03, 0x06:
		return isa.Of(isa.IsaX86), 32
	case 0x04:
		return isa.Of(isa.IsaM68k), 32
	case 0x07:
		return isa.Of(isa.IsaI860), 32
	case 0x08, 0x0A, 0x33:
		if is64 {
			return isa.Of(isa.IsaMips64), 64
		}
		return isa.Of(isa.IsaMips), 32
	case 0x09:
		return isa.Of(isa.IsaS390x), 32
	case 0x0F:
		return isa.Of(isa.IsaParisc), 32
	case 0x12:
		return isa.Of(isa.IsaSparc), 32
	case 0x14:
		return isa.Of(isa.IsaPpc), 32
	case 0x15:
		return isa.Of(isa.IsaPpc64), 64
	case 0x16:
		if is64 {
			return isa.Of(isa.IsaS390x), 64
		}
		return isa.Of(isa.IsaS390x), 32
	case 0x28:
		return isa.Of(isa.IsaArm), 32
	case 0x29:
		return isa.Of(isa.IsaAlpha), 64
	case 0x2A:
		return isa.Of(isa.IsaSh), 32
	case 0x2B:
		return isa.Of(isa.IsaSparc64), 64
	case 0x2D:
		return isa.Of(isa.IsaArc), 32
	case 0x32:
		return isa.Of(isa.IsaIa64), 64
	case 0x3E:
		return isa.Of(isa.IsaX86_64), 64
	case 0x4B:
		return isa.Of(isa.IsaVax), 32
	case 0x53:
		return isa.Of(isa.IsaAvr), 8
	case 0x57:
		return isa.Of(isa.IsaV850), 32
	case 0x5C:
		return isa.Of(isa.IsaOpenRisc), 32
	case 0x5E:
		return isa.Of(isa.IsaXtensa), 32
	case 0x69:
		return isa.Of(isa.IsaMsp430), 16
	case 0x6A:
		return isa.Of(isa.IsaBlackfin), 32
	case 0x71:
		return isa.Of(isa.IsaNios2), 32
	case 0xA4:
		return isa.Of(isa.IsaHexagon), 32
	case 0xB7:
		return isa.Of(isa.IsaAArch64), 64
	case 0xBD:
		return isa.Of(isa.IsaMicroBlaze), 32
	case 0xDC:
		return isa.Of(isa.IsaZ80), 8
	case 0xF3:
		if is64 {
			return isa.Of(isa.IsaRiscV64), 64
		}
		return isa.Of(isa.IsaRiscV32), 32
	case 0x101:
		return isa.Of(isa.IsaW65816), 16
	case 0x102:
		if is64 {
			return isa.Of(isa.IsaLoongArch64), 64
		}
		return isa.Of(isa.IsaLoongArch32), 32
	default:
		return isa.UnknownIsa(uint32(machine)), 0
	}
}

// variantFromFlags extracts a small set of well-known ABI/profile hints
// from e_flags. This is intentionally partial — just enough to populate
// ClassificationResult.Variant for the ISAs whose e_flags layout is
// simple and stable (ARM EABI version, MIPS ABI, RISC-V float ABI).
func variantFromFlags(kind isa.Isa, flags uint32) string {
	switch kind.Kind {
	case isa.IsaArm:
		eabi := flags >> 24
		switch eabi {
		case 5:
			return "EABI5"
		case 4:
			return "EABI4"
		case 0:
			return "EABI-unset"
		}
	case isa.IsaMips, isa.IsaMips64:
		abi := flags & 0x0000F000
		switch abi {
		case 0x1000:
			return "O32"
		case 0x3000:
			return "N32"
		}
	case isa.IsaRiscV32, isa.IsaRiscV64:
		if flags&0x1 != 0 {
			return "RVC"
		}
		switch (flags >> 1) & 0x3 {
		case 1:
			return "ilp32f/lp64f"
		case 2:
			return "ilp32d/lp64d"
		case 3:
			return "ilp32q/lp64q"
		}
	}
	return ""
}
