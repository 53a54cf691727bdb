package extensions

import "github.com/19h/isa-classifier-sub000/isa"

// detectX86 scans for prefix bytes and 0F-prefixed opcodes that mark SIMD,
// crypto, and control-flow-integrity extensions, grounded on the spec's
// x86 pass description: VEX (0xC5/0xC4), EVEX (0x62), REX2 (0xD5) prefixes,
// 0F-prefixed SSE/AES-NI/SHA opcodes, and CET ENDBR32/64.
func detectX86(data []byte) []isa.Extension {
	found := make(map[string]isa.ExtensionCategory)

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case 0xC5:
			found["AVX"] = isa.CategorySimd
		case 0xC4:
			found["AVX2"] = isa.CategorySimd
		case 0x62:
			found["AVX-512"] = isa.CategorySimd
		case 0xD5:
			found["REX2"] = isa.CategoryOther
		}

		if data[i] == 0x0F && i+1 < len(data) {
			op := data[i+1]
			switch {
			case op >= 0x28 && op <= 0x2F:
				found["SSE"] = isa.CategorySimd
			case op == 0x38 && i+2 < len(data):
				op3 := data[i+2]
				switch {
				case op3 >= 0xDB && op3 <= 0xDF:
					found["AES-NI"] = isa.CategoryCrypto
				case op3 >= 0xC8 && op3 <= 0xCD:
					found["SHA"] = isa.CategoryCrypto
				}
			case op >= 0x60 && op <= 0x6F:
				found["MMX"] = isa.CategorySimd
			}
		}

		if i+3 < len(data) && data[i] == 0xF3 && data[i+1] == 0x0F && data[i+2] == 0x1E {
			switch data[i+3] {
			case 0xFA:
				found["CET-ENDBR64"] = isa.CategorySecurity
			case 0xFB:
				found["CET-ENDBR32"] = isa.CategorySecurity
			}
		}
	}

	return dedupeExtensions(found)
}
