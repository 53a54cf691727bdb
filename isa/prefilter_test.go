package isa

import "testing"

func TestShouldSkipWindowEmpty(t *testing.T) {
	if !shouldSkipWindow(nil) {
		t.Fatal("expected empty window to be skipped")
	}
}

func TestShouldSkipWindowAllConstant(t *testing.T) {
	if !shouldSkipWindow(make([]byte, 512)) {
		t.Fatal("expected all-zero window to be skipped")
	}
	allFF := make([]byte, 512)
	for i := range allFF {
		allFF[i] = 0xFF
	}
	if !shouldSkipWindow(allFF) {
		t.Fatal("expected all-0xFF window to be skipped")
	}
}

func TestShouldSkipWindowStringHeavy(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog, again and again, many times over")
	data := make([]byte, 0, 600)
	for len(data) < 600 {
		data = append(data, text...)
	}
	if !shouldSkipWindow(data[:600]) {
		t.Fatal("expected printable-ASCII-heavy window to be skipped")
	}
}

func TestShouldSkipWindowHighEntropy(t *testing.T) {
	data := randomBytes(600, 7)
	if !shouldSkipWindow(data) {
		t.Fatal("expected high-entropy random window to be skipped")
	}
}

func TestShouldNotSkipRealCodeWindow(t *testing.T) {
	prologue := []byte{
		0x55, 0x48, 0x89, 0xE5, 0x48, 0x83, 0xEC, 0x20,
		0x48, 0x89, 0x7D, 0xF8, 0x48, 0x89, 0x75, 0xF0,
		0x90, 0x90, 0x48, 0x83, 0xC4, 0x20, 0x5D, 0xC3,
	}
	data := make([]byte, 0, 600)
	for len(data) < 600 {
		data = append(data, prologue...)
	}
	if shouldSkipWindow(data[:600]) {
		t.Fatal("expected repeated real-code prologue window to survive the pre-filter")
	}
}
