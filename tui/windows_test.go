package tui

import (
	"testing"

	"github.com/19h/isa-classifier-sub000/isa"
)

func TestBuildWindowsDefaultsWindowSize(t *testing.T) {
	data := make([]byte, 5000)
	rows := buildWindows(data, isa.DefaultOptions(), 0)
	if len(rows) != 3 { // 2048, 2048, 904
		t.Fatalf("got %d windows, want 3", len(rows))
	}
	if rows[0].Offset != 0 || rows[0].Length != defaultWindowSize {
		t.Fatalf("unexpected first window: %+v", rows[0])
	}
	if rows[2].Length != 5000-2*defaultWindowSize {
		t.Fatalf("unexpected trailing window length: %+v", rows[2])
	}
}

func TestBuildWindowsEmptyInput(t *testing.T) {
	rows := buildWindows(nil, isa.DefaultOptions(), 1024)
	if len(rows) != 0 {
		t.Fatalf("expected no windows for empty input, got %d", len(rows))
	}
}

func TestWindowRowWinnerEmpty(t *testing.T) {
	row := windowRow{}
	if _, ok := row.Winner(); ok {
		t.Fatal("expected Winner() to report false on a candidate-less row")
	}
}

func TestFilterWindowsEmptyQueryReturnsAll(t *testing.T) {
	rows := []windowRow{{Offset: 0}, {Offset: 1024}}
	if got := filterWindows(rows, ""); len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
}

func TestFilterWindowsMatchesByIsaName(t *testing.T) {
	rows := []windowRow{
		{Offset: 0, Candidates: []isa.ArchitectureScore{{Isa: isa.Of(isa.IsaAArch64)}}},
		{Offset: 1024, Candidates: []isa.ArchitectureScore{{Isa: isa.Of(isa.IsaArm)}}},
	}
	got := filterWindows(rows, "aarch64")
	if len(got) != 1 || got[0].Offset != 0 {
		t.Fatalf("expected only the AArch64 row, got %+v", got)
	}
}

func TestContainsFoldCaseInsensitive(t *testing.T) {
	if !containsFold("AArch64", "aarch") {
		t.Fatal("expected case-insensitive substring match")
	}
	if containsFold("Arm", "aarch64") {
		t.Fatal("expected no match when needle is longer than haystack")
	}
}
