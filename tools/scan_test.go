package tools

import (
	"os"
	"path/filepath"
	"testing"
)

func x86Sample() []byte {
	return []byte{
		0x55, 0x48, 0x89, 0xE5, 0x48, 0x83, 0xEC, 0x20,
		0x48, 0x89, 0x7D, 0xF8, 0x48, 0x89, 0x75, 0xF0,
		0x90, 0x90, 0x48, 0x83, 0xC4, 0x20, 0x5D, 0xC3,
	}
}

func TestScanDirClassifiesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	if err := os.WriteFile(path, x86Sample(), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(DefaultScanOptions())
	report, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if report.FileCount != 1 {
		t.Fatalf("expected 1 file, got %d", report.FileCount)
	}
	found := false
	for _, issue := range report.Issues {
		if issue.Code == "CLASSIFIED" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a CLASSIFIED issue, got %v", report.Issues)
	}
}

func TestScanDirFlagsPadding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "padding.bin")
	if err := os.WriteFile(path, make([]byte, 256), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(DefaultScanOptions())
	report, err := s.ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if report.CountByLevel(ScanWarning) == 0 {
		t.Fatalf("expected a warning for all-zero padding, got %v", report.Issues)
	}
}

func TestScanReportSortedBySeverity(t *testing.T) {
	report := buildReport([]*ScanIssue{
		{Level: ScanInfo, Path: "b.bin", Code: "CLASSIFIED"},
		{Level: ScanError, Path: "a.bin", Code: "READ_ERROR"},
		{Level: ScanWarning, Path: "c.bin", Code: "LOW_CONFIDENCE"},
	}, 3)

	if report.Issues[0].Level != ScanError {
		t.Fatalf("expected first issue to be ScanError, got %v", report.Issues[0].Level)
	}
	if report.Issues[len(report.Issues)-1].Level != ScanInfo {
		t.Fatalf("expected last issue to be ScanInfo, got %v", report.Issues[len(report.Issues)-1].Level)
	}
}

func TestScanLevelString(t *testing.T) {
	cases := map[ScanLevel]string{ScanError: "error", ScanWarning: "warning", ScanInfo: "info"}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("ScanLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
