package tui

import (
	"strings"
	"testing"
)

func TestHexDumpRendersOffsetAndAscii(t *testing.T) {
	data := []byte("Hello, World!!!!")
	out := hexDump(data, nil)
	if !strings.Contains(out, "0x00000000:") {
		t.Fatalf("missing offset header in output:\n%s", out)
	}
	if !strings.Contains(out, "Hello, World!!!!") {
		t.Fatalf("missing ascii column in output:\n%s", out)
	}
}

func TestHexDumpHighlightsRequestedOffsets(t *testing.T) {
	data := []byte{0xAB, 0xCD}
	out := hexDump(data, map[int]bool{0: true})
	if !strings.Contains(out, "[yellow]AB[white]") {
		t.Fatalf("expected offset 0 to be highlighted, got:\n%s", out)
	}
	if strings.Contains(out, "[yellow]CD[white]") {
		t.Fatalf("did not expect offset 1 to be highlighted, got:\n%s", out)
	}
}

func TestMatchedOffsetsCoversLeadingBytes(t *testing.T) {
	m := matchedOffsets(3)
	for i := 0; i < 3; i++ {
		if !m[i] {
			t.Fatalf("expected offset %d to be marked", i)
		}
	}
	if m[3] {
		t.Fatal("did not expect offset 3 to be marked")
	}
}
