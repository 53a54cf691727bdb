package extensions

import (
	"testing"

	"github.com/19h/isa-classifier-sub000/isa"
)

func hasExtension(exts []isa.Extension, name string) bool {
	for _, e := range exts {
		if e.Name == name {
			return true
		}
	}
	return false
}

func TestDetectX86AESNI(t *testing.T) {
	// AESENC xmm0, xmm1 : 66 0F 38 DC C1
	data := []byte{0x66, 0x0F, 0x38, 0xDC, 0xC1}
	exts := detectX86(data)
	if !hasExtension(exts, "AES-NI") {
		t.Fatalf("expected AES-NI, got %v", exts)
	}
}

func TestDetectX86EndBr64(t *testing.T) {
	data := []byte{0xF3, 0x0F, 0x1E, 0xFA, 0x90, 0x90}
	exts := detectX86(data)
	if !hasExtension(exts, "CET-ENDBR64") {
		t.Fatalf("expected CET-ENDBR64, got %v", exts)
	}
}

func TestDetectX86VexPrefix(t *testing.T) {
	data := []byte{0xC5, 0xF8, 0x77} // VZEROUPPER
	exts := detectX86(data)
	if !hasExtension(exts, "AVX") {
		t.Fatalf("expected AVX, got %v", exts)
	}
}

func TestDetectAArch64Bti(t *testing.T) {
	// BTI c: 0xD503245F (crm=4, op2=2 -> BTI per our decode)
	data := []byte{0x5F, 0x24, 0x03, 0xD5}
	exts := detectAArch64(data, isa.Little)
	if !hasExtension(exts, "BTI") {
		t.Fatalf("expected BTI, got %v", exts)
	}
}

func TestDetectAArch64NoFalsePositiveOnEmpty(t *testing.T) {
	exts := detectAArch64(nil, isa.Little)
	if len(exts) != 0 {
		t.Fatalf("expected no extensions for empty input, got %v", exts)
	}
}

func TestDetectRiscVCompressed(t *testing.T) {
	// C.NOP: 0x0001, quadrant 1 (low bits != 11).
	data := []byte{0x01, 0x00}
	exts := detectRiscV(data, isa.Little)
	if !hasExtension(exts, "C") {
		t.Fatalf("expected C extension, got %v", exts)
	}
}

func TestDetectRiscVMul(t *testing.T) {
	// MUL x5, x6, x7: opcode=0x33, funct3=0, funct7=1.
	// word = funct7<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opcode
	word := uint32(1)<<25 | uint32(7)<<20 | uint32(6)<<15 | uint32(0)<<12 | uint32(5)<<7 | 0x33
	data := []byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	exts := detectRiscV(data, isa.Little)
	if !hasExtension(exts, "M") {
		t.Fatalf("expected M extension, got %v", exts)
	}
}

func TestDetectPpcVmx(t *testing.T) {
	// Primary opcode 4 (AltiVec space), arbitrary operands.
	word := uint32(4)<<26 | uint32(1)<<1
	data := []byte{byte(word >> 24), byte(word >> 16), byte(word >> 8), byte(word)}
	exts := detectPpc(data, isa.Big)
	if !hasExtension(exts, "VMX") {
		t.Fatalf("expected VMX, got %v", exts)
	}
}

func TestDetectDispatchUnknownIsaReturnsNil(t *testing.T) {
	exts := Detect([]byte{0x00, 0x00, 0x00, 0x00}, isa.Isa{Kind: isa.IsaUnknown}, isa.Little)
	if exts != nil {
		t.Fatalf("expected nil for unsupported ISA, got %v", exts)
	}
}

func TestDetectDispatchX86(t *testing.T) {
	data := []byte{0xF3, 0x0F, 0x1E, 0xFA}
	exts := Detect(data, isa.Isa{Kind: isa.IsaX86_64}, isa.Little)
	if !hasExtension(exts, "CET-ENDBR64") {
		t.Fatalf("expected CET-ENDBR64 via dispatch, got %v", exts)
	}
}
