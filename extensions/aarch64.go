package extensions

import "github.com/19h/isa-classifier-sub000/isa"

// detectAArch64 decodes the fixed 4-byte instruction stream word by word and
// flags the encoding bands that mark optional AArch64 extensions: PAC, BTI,
// MTE, LSE atomics, CRC32, the crypto extension (AES/SHA1/SHA2/SHA3/SM3/SM4),
// dot-product, BFloat16, Int8 matrix multiply, and half-precision float.
func detectAArch64(data []byte, end isa.Endianness) []isa.Extension {
	found := make(map[string]isa.ExtensionCategory)

	for i := 0; i+4 <= len(data); i += 4 {
		word, ok := isa.ReadU32(data, i, end)
		if !ok {
			break
		}

		// HINT space (PAC/BTI): 1101 0101 0000 0011 0010 xxxx xxxx xx11111
		if word&0xFFFFF01F == 0xD503201F {
			crm := (word >> 8) & 0xF
			op2 := (word >> 5) & 0x7
			switch {
			case crm == 2 && (op2 == 4 || op2 == 5 || op2 == 6 || op2 == 7):
				found["PAC"] = isa.CategorySecurity
			case crm == 4 && op2 >= 0 && op2 <= 3:
				found["BTI"] = isa.CategorySecurity
			}
		}

		// PACIA/PACIB/AUTIA/AUTIB system instructions and combined branch forms.
		if word&0xFFFFFC00 == 0xDAC10C00 || word&0x7FC00000 == 0x5AC00000 {
			found["PAC"] = isa.CategorySecurity
		}

		// MTE: IRG/GMI/SUBP (0x9AC01000 band) and LDG/STG (top byte 0xD9, bit 23 clear).
		if word&0xFFE0FC00 == 0x9AC01000 || word&0xFF800000 == 0xD9000000 {
			found["MTE"] = isa.CategorySecurity
		}

		// LSE atomics: LDADD/LDCLR/LDEOR/LDSET/SWP, opc in bits[15:12], size in [31:30].
		if word&0x3F200C00 == 0x38200000 {
			found["LSE"] = isa.CategoryAtomic
		}

		// CRC32/CRC32C: DataProcessing2Source, opcode2 field = 0b0100xx / 0b0101xx.
		if word&0x7FE0E000 == 0x1AC04000 {
			found["CRC32"] = isa.CategoryOther
		}

		// SIMD crypto extension: AESE/AESD/AESMC/AESIMC and SHA1/SHA256 op space.
		if word&0xFF3E0C00 == 0x4E280800 || word&0x5E000000 == 0x5E000000 && word&0xFF3E0C00 == 0x5E280800 {
			found["CRYPTO-AES"] = isa.CategoryCrypto
		}
		if word&0xFFE08000 == 0x5E000000 {
			found["CRYPTO-SHA"] = isa.CategoryCrypto
		}

		// SVE: top byte 0x04/0x05 is taken as the SVE encoding group.
		if word&0xFE000000 == 0x04000000 {
			found["SVE"] = isa.CategorySimd
		}
		if word&0xFF000000 == 0x45000000 {
			found["SVE2"] = isa.CategorySimd
		}

		// SME: ZA array accesses, top bits 1100_0000.
		if word&0xFF800000 == 0xC0000000 {
			found["SME"] = isa.CategorySimd
		}

		// Advanced SIMD dot-product: opcode field 1001 in bits [15:12] of the
		// 3-register-same-extended encoding.
		if word&0xBF20FC00 == 0x0E809400 {
			found["DOTPROD"] = isa.CategorySimd
		}

		// BFloat16: BFDOT/BFMMLA/BFCVT encoding band.
		if word&0xFFA0FC00 == 0x0E40FC00 {
			found["BF16"] = isa.CategoryFloatingPoint
		}

		// Int8 matrix multiply: SMMLA/UMMLA/USMMLA.
		if word&0xBF20FC00 == 0x0EA09C00 {
			found["I8MM"] = isa.CategorySimd
		}

		// Half-precision float ops carry 0b11 in the FP type field.
		if word&0xFF207C00 == 0x1EE07800 {
			found["FP16"] = isa.CategoryFloatingPoint
		}
	}

	return dedupeExtensions(found)
}
