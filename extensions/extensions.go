// Package extensions implements the secondary extension-detection pass
// (spec §6, SPEC_FULL.md C15): given the winning ISA and endianness from a
// successful classification, scan the same bytes a second time for
// optional ISA features (SIMD, crypto, atomics, …) and return them as
// isa.Extension values. This pass never influences the classifier's score
// or confidence — it only enriches a result already accepted.
package extensions

import (
	"github.com/19h/isa-classifier-sub000/isa"
)

func init() {
	isa.RegisterExtensionDetector(Detect)
}

// Detect dispatches to the per-ISA extension scanner for the winning ISA.
// ISAs with no registered scanner return an empty list — a no-op result is
// itself part of the contract, not an error.
func Detect(data []byte, kind isa.Isa, end isa.Endianness) []isa.Extension {
	switch kind.Kind {
	case isa.IsaX86, isa.IsaX86_64:
		return detectX86(data)
	case isa.IsaAArch64:
		return detectAArch64(data, end)
	case isa.IsaArm:
		return detectArm(data, end)
	case isa.IsaRiscV32, isa.IsaRiscV64:
		return detectRiscV(data, end)
	case isa.IsaPpc, isa.IsaPpc64:
		return detectPpc(data, end)
	default:
		return nil
	}
}

func dedupeExtensions(found map[string]isa.ExtensionCategory) []isa.Extension {
	out := make([]isa.Extension, 0, len(found))
	for name, cat := range found {
		out = append(out, isa.Extension{Name: name, Category: cat})
	}
	return out
}
