// Package isa implements the heuristic instruction-set-architecture
// classifier: a family of per-ISA scorers, a rank-off engine, a
// window pre-filter, and a windowed multi-ISA detector.
package isa

import "fmt"

// IsaKind tags a logical instruction-set architecture. 32/64-bit siblings
// (Mips/Mips64, Ppc/Ppc64, RiscV32/RiscV64, LoongArch32/LoongArch64,
// Sparc/Sparc64) are distinct values.
type IsaKind int

const (
	IsaUnknown IsaKind = iota
	IsaX86
	IsaX86_64
	IsaArm
	IsaAArch64
	IsaRiscV32
	IsaRiscV64
	IsaMips
	IsaMips64
	IsaPpc
	IsaPpc64
	IsaSparc
	IsaSparc64
	IsaS390x
	IsaM68k
	IsaSh
	IsaAlpha
	IsaLoongArch32
	IsaLoongArch64
	IsaHexagon
	IsaAvr
	IsaMsp430
	IsaParisc
	IsaArc
	IsaXtensa
	IsaMicroBlaze
	IsaNios2
	IsaOpenRisc
	IsaLanai
	IsaJvm
	IsaWasm
	IsaDalvik
	IsaBlackfin
	IsaIa64
	IsaVax
	IsaI860
	IsaCellSpu
	IsaTricore
	IsaHcs12
	IsaHc11
	IsaC166
	IsaV850
	IsaRl78
	IsaZ80
	IsaW65816
)

var isaNames = map[IsaKind]string{
	IsaUnknown:     "Unknown",
	IsaX86:         "X86",
	IsaX86_64:      "X86_64",
	IsaArm:         "Arm",
	IsaAArch64:     "AArch64",
	IsaRiscV32:     "RiscV32",
	IsaRiscV64:     "RiscV64",
	IsaMips:        "Mips",
	IsaMips64:      "Mips64",
	IsaPpc:         "Ppc",
	IsaPpc64:       "Ppc64",
	IsaSparc:       "Sparc",
	IsaSparc64:     "Sparc64",
	IsaS390x:       "S390x",
	IsaM68k:        "M68k",
	IsaSh:          "Sh",
	IsaAlpha:       "Alpha",
	IsaLoongArch32: "LoongArch32",
	IsaLoongArch64: "LoongArch64",
	IsaHexagon:     "Hexagon",
	IsaAvr:         "Avr",
	IsaMsp430:      "Msp430",
	IsaParisc:      "Parisc",
	IsaArc:         "Arc",
	IsaXtensa:      "Xtensa",
	IsaMicroBlaze:  "MicroBlaze",
	IsaNios2:       "Nios2",
	IsaOpenRisc:    "OpenRisc",
	IsaLanai:       "Lanai",
	IsaJvm:         "Jvm",
	IsaWasm:        "Wasm",
	IsaDalvik:      "Dalvik",
	IsaBlackfin:    "Blackfin",
	IsaIa64:        "Ia64",
	IsaVax:         "Vax",
	IsaI860:        "I860",
	IsaCellSpu:     "CellSpu",
	IsaTricore:     "Tricore",
	IsaHcs12:       "Hcs12",
	IsaHc11:        "Hc11",
	IsaC166:        "C166",
	IsaV850:        "V850",
	IsaRl78:        "Rl78",
	IsaZ80:         "Z80",
	IsaW65816:      "W65816",
}

func (k IsaKind) String() string {
	if n, ok := isaNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Isa is the tagged ISA value. When Kind is IsaUnknown and Value is
// non-zero, Value carries the raw unmapped header discriminant (e.g. an
// unrecognized ELF e_machine), matching the spec's Unknown(u32) variant.
type Isa struct {
	Kind  IsaKind
	Value uint32
}

// UnknownIsa builds the catch-all variant for an unmapped header value.
func UnknownIsa(v uint32) Isa {
	return Isa{Kind: IsaUnknown, Value: v}
}

// Of builds a plain (non-Unknown) ISA value.
func Of(k IsaKind) Isa {
	return Isa{Kind: k}
}

func (i Isa) String() string {
	if i.Kind == IsaUnknown && i.Value != 0 {
		return fmt.Sprintf("Unknown(0x%x)", i.Value)
	}
	return i.Kind.String()
}

// Endianness is byte order for multi-byte values.
type Endianness int

const (
	Little Endianness = iota
	Big
)

func (e Endianness) String() string {
	if e == Big {
		return "big"
	}
	return "little"
}

// Format names the container the bytes were classified from.
type Format int

const (
	FormatRaw Format = iota
	FormatElf
	FormatPe
	FormatMachO
	FormatKernelImage
)

func (f Format) String() string {
	switch f {
	case FormatElf:
		return "Elf"
	case FormatPe:
		return "Pe"
	case FormatMachO:
		return "MachO"
	case FormatKernelImage:
		return "KernelImage"
	default:
		return "Raw"
	}
}

// Source names how a ClassificationResult was obtained.
type Source int

const (
	SourceHeuristic Source = iota
	SourceHeader
	SourceHybrid
)

func (s Source) String() string {
	switch s {
	case SourceHeader:
		return "Header"
	case SourceHybrid:
		return "Hybrid"
	default:
		return "Heuristic"
	}
}
