package tui

import "testing"

func TestFilterHistoryAddAndPrevious(t *testing.T) {
	h := NewFilterHistory(3)
	h.Add("arm")
	h.Add("x86")

	q, ok := h.Previous()
	if !ok || q != "x86" {
		t.Fatalf("Previous() = %q, %v, want x86, true", q, ok)
	}
	q, ok = h.Previous()
	if !ok || q != "arm" {
		t.Fatalf("Previous() = %q, %v, want arm, true", q, ok)
	}
	if _, ok := h.Previous(); ok {
		t.Fatal("expected Previous() to fail past the oldest entry")
	}
}

func TestFilterHistoryEvictsOldest(t *testing.T) {
	h := NewFilterHistory(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")

	all := h.GetAll()
	if len(all) != 2 || all[0] != "b" || all[1] != "c" {
		t.Fatalf("unexpected history contents: %v", all)
	}
}

func TestFilterHistoryCollapsesConsecutiveDuplicates(t *testing.T) {
	h := NewFilterHistory(10)
	h.Add("arm")
	h.Add("arm")
	if h.Size() != 1 {
		t.Fatalf("got size %d, want 1", h.Size())
	}
}

func TestFilterHistoryIgnoresEmptyQuery(t *testing.T) {
	h := NewFilterHistory(10)
	h.Add("")
	if h.Size() != 0 {
		t.Fatalf("got size %d, want 0", h.Size())
	}
}

func TestFilterHistoryNextPastNewestClears(t *testing.T) {
	h := NewFilterHistory(10)
	h.Add("arm")
	h.Previous()
	q, ok := h.Next()
	if !ok || q != "" {
		t.Fatalf("Next() past newest = %q, %v, want empty string, true", q, ok)
	}
}

func TestFilterHistoryClear(t *testing.T) {
	h := NewFilterHistory(10)
	h.Add("arm")
	h.Clear()
	if h.Size() != 0 {
		t.Fatalf("got size %d after Clear(), want 0", h.Size())
	}
	if _, ok := h.GetLast(); ok {
		t.Fatal("expected GetLast() to fail after Clear()")
	}
}
