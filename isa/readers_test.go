package isa

import "testing"

func TestReadU8Bounds(t *testing.T) {
	data := []byte{0xAB, 0xCD}
	if v, ok := ReadU8(data, 0); !ok || v != 0xAB {
		t.Fatalf("ReadU8(0) = %v, %v", v, ok)
	}
	if _, ok := ReadU8(data, 2); ok {
		t.Fatal("expected out-of-bounds read to fail")
	}
	if _, ok := ReadU8(data, -1); ok {
		t.Fatal("expected negative offset to fail")
	}
}

func TestReadU16Endianness(t *testing.T) {
	data := []byte{0x01, 0x02}
	if v, ok := ReadU16(data, 0, Little); !ok || v != 0x0201 {
		t.Fatalf("ReadU16 little = %#x, %v", v, ok)
	}
	if v, ok := ReadU16(data, 0, Big); !ok || v != 0x0102 {
		t.Fatalf("ReadU16 big = %#x, %v", v, ok)
	}
	if _, ok := ReadU16(data, 1, Little); ok {
		t.Fatal("expected truncated read to fail")
	}
}

func TestReadU32Endianness(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	if v, ok := ReadU32(data, 0, Little); !ok || v != 0x04030201 {
		t.Fatalf("ReadU32 little = %#x, %v", v, ok)
	}
	if v, ok := ReadU32(data, 0, Big); !ok || v != 0x01020304 {
		t.Fatalf("ReadU32 big = %#x, %v", v, ok)
	}
}

func TestReadU64Endianness(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if v, ok := ReadU64(data, 0, Little); !ok || v != 0x0807060504030201 {
		t.Fatalf("ReadU64 little = %#x, %v", v, ok)
	}
	if v, ok := ReadU64(data, 0, Big); !ok || v != 0x0102030405060708 {
		t.Fatalf("ReadU64 big = %#x, %v", v, ok)
	}
	if _, ok := ReadU64(data, 4, Little); ok {
		t.Fatal("expected truncated read to fail")
	}
}

func TestReadULEB128SingleByte(t *testing.T) {
	data := []byte{0x05}
	v, n, ok := ReadULEB128(data, 0)
	if !ok || v != 5 || n != 1 {
		t.Fatalf("ReadULEB128 = %v, %v, %v", v, n, ok)
	}
}

func TestReadULEB128MultiByte(t *testing.T) {
	// 624485 encodes as E5 8E 26 per the DWARF/WASM LEB128 spec example.
	data := []byte{0xE5, 0x8E, 0x26}
	v, n, ok := ReadULEB128(data, 0)
	if !ok || v != 624485 || n != 3 {
		t.Fatalf("ReadULEB128 = %v, %v, %v, want 624485, 3, true", v, n, ok)
	}
}

func TestReadULEB128Unterminated(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80} // continuation bit set on every byte, then EOF
	if _, _, ok := ReadULEB128(data, 0); ok {
		t.Fatal("expected unterminated LEB128 to fail")
	}
}
