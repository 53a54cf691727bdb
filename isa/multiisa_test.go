package isa

import "testing"

func TestDetectMultiISADefaultsWindowSize(t *testing.T) {
	data := randomBytes(4096, 3)
	// A zero or negative window size must not panic; it falls back to the
	// documented 2048-byte default.
	detected := DetectMultiISA(data, DefaultOptions(), 0)
	if detected == nil {
		t.Fatal("expected a non-nil (possibly empty) slice")
	}
}

func TestDetectMultiISAPaddingWindowsAreIgnored(t *testing.T) {
	padding := make([]byte, 8192)
	detected := DetectMultiISA(padding, DefaultOptions(), 1024)
	if len(detected) != 0 {
		t.Fatalf("expected no ISAs detected in all-zero padding, got %v", detected)
	}
}

func TestDetectMultiISASortedByWindowCountDescending(t *testing.T) {
	aarch64Prologue := []byte{
		0xFD, 0x7B, 0xBF, 0xA9, 0xFD, 0x03, 0x00, 0x91,
		0xE0, 0x03, 0x00, 0xAA, 0xE1, 0x03, 0x01, 0xAA,
		0x1F, 0x20, 0x03, 0xD5, 0x1F, 0x20, 0x03, 0xD5,
		0xFD, 0x7B, 0xC1, 0xA8, 0xC0, 0x03, 0x5F, 0xD6,
	}
	block := make([]byte, 0, 16384)
	for len(block) < 16384 {
		block = append(block, aarch64Prologue...)
	}
	block = block[:16384]

	detected := DetectMultiISA(block, DefaultOptions(), 1024)
	for i := 1; i < len(detected); i++ {
		if detected[i].WindowCount > detected[i-1].WindowCount {
			t.Fatalf("results not sorted by window count descending at index %d", i)
		}
	}
}

func TestDetectMultiISASingleIsaBlockReportsIt(t *testing.T) {
	aarch64Prologue := []byte{
		0xFD, 0x7B, 0xBF, 0xA9, 0xFD, 0x03, 0x00, 0x91,
		0xE0, 0x03, 0x00, 0xAA, 0xE1, 0x03, 0x01, 0xAA,
		0x1F, 0x20, 0x03, 0xD5, 0x1F, 0x20, 0x03, 0xD5,
		0xFD, 0x7B, 0xC1, 0xA8, 0xC0, 0x03, 0x5F, 0xD6,
	}
	block := make([]byte, 0, 16384)
	for len(block) < 16384 {
		block = append(block, aarch64Prologue...)
	}
	block = block[:16384]

	detected := DetectMultiISA(block, DefaultOptions(), 1024)
	found := false
	for _, d := range detected {
		if d.Isa.Kind == IsaAArch64 {
			found = true
			if d.WindowCount < multiIsaMinWindowCount {
				t.Errorf("window count %d below the reporting floor %d", d.WindowCount, multiIsaMinWindowCount)
			}
		}
	}
	if !found {
		t.Fatalf("expected AArch64 to be detected in a uniform AArch64 block, got %v", detected)
	}
}
