package isa

import "testing"

func TestScoreAllSortedDescendingByRawScore(t *testing.T) {
	data := []byte{
		0x55, 0x48, 0x89, 0xE5, 0x48, 0x83, 0xEC, 0x20,
		0x48, 0x89, 0x7D, 0xF8, 0x48, 0x89, 0x75, 0xF0,
		0x90, 0x90, 0x48, 0x83, 0xC4, 0x20, 0x5D, 0xC3,
	}
	scores := ScoreAll(data, DefaultOptions())
	for i := 1; i < len(scores); i++ {
		if scores[i].RawScore > scores[i-1].RawScore {
			t.Fatalf("scores not sorted descending at index %d: %d > %d", i, scores[i].RawScore, scores[i-1].RawScore)
		}
	}
}

func TestScoreAllCollapsesBiEndianDuplicates(t *testing.T) {
	data := []byte{
		0x55, 0x48, 0x89, 0xE5, 0x48, 0x83, 0xEC, 0x20,
		0x48, 0x89, 0x7D, 0xF8, 0x48, 0x89, 0x75, 0xF0,
		0x90, 0x90, 0x48, 0x83, 0xC4, 0x20, 0x5D, 0xC3,
	}
	scores := ScoreAll(data, DefaultOptions())
	seen := make(map[IsaKind]int)
	for _, s := range scores {
		seen[s.Isa.Kind]++
	}
	for kind, count := range seen {
		if count > 1 {
			t.Errorf("IsaKind %s appeared %d times in ScoreAll output, want at most 1", kind, count)
		}
	}
}

func TestScoreAllFastModeFiltersSlowScorers(t *testing.T) {
	data := randomBytes(4096, 99)
	options := DefaultOptions()
	options.FastMode = true

	fastOnlyCount := 0
	for _, e := range registry {
		if e.fast {
			fastOnlyCount++
		}
	}

	scores := ScoreAll(data, options)
	distinctKinds := make(map[IsaKind]bool)
	for _, s := range scores {
		distinctKinds[s.Isa.Kind] = true
	}
	if len(distinctKinds) > fastOnlyCount {
		t.Errorf("FastMode produced %d distinct ISA kinds, want at most %d (the fast-only registry subset)", len(distinctKinds), fastOnlyCount)
	}
}

func TestTopCandidatesClampsCount(t *testing.T) {
	data := randomBytes(2048, 5)
	options := DefaultOptions()

	top := TopCandidates(data, 1000000, options)
	all := ScoreAll(data, options)
	if len(top) != len(all) {
		t.Fatalf("TopCandidates(huge n) returned %d, want %d (all candidates)", len(top), len(all))
	}

	zero := TopCandidates(data, 0, options)
	if len(zero) != 0 {
		t.Fatalf("TopCandidates(0) returned %d entries, want 0", len(zero))
	}

	negative := TopCandidates(data, -5, options)
	if len(negative) != 0 {
		t.Fatalf("TopCandidates(-5) returned %d entries, want 0", len(negative))
	}
}

func TestScoreAllConfidencesSumToAtMostOne(t *testing.T) {
	data := []byte{
		0x55, 0x48, 0x89, 0xE5, 0x48, 0x83, 0xEC, 0x20,
		0x48, 0x89, 0x7D, 0xF8, 0x48, 0x89, 0x75, 0xF0,
		0x90, 0x90, 0x48, 0x83, 0xC4, 0x20, 0x5D, 0xC3,
	}
	scores := ScoreAll(data, DefaultOptions())
	var sum float64
	for _, s := range scores {
		if s.Confidence < 0 || s.Confidence > 1 {
			t.Fatalf("confidence out of [0,1] range: %v", s.Confidence)
		}
		sum += s.Confidence
	}
	// The winner's confidence can be boosted by the margin signal above its
	// raw share, so the sum is not strictly bounded by 1 — but it should
	// never run away unboundedly.
	if sum > float64(len(scores)) {
		t.Fatalf("sum of confidences %v implausibly exceeds candidate count %d", sum, len(scores))
	}
}
