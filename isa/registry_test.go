package isa

import (
	"math/rand"
	"testing"
)

// Every registered scorer must satisfy the quantified invariants from the
// spec: non-negative output, determinism, and a zero score on empty input.
func TestAllScorersAreNonNegative(t *testing.T) {
	samples := [][]byte{
		nil,
		{},
		{0x00},
		{0xFF},
		make([]byte, 256),
		randomBytes(1024, 1),
	}
	for _, e := range registry {
		for _, sample := range samples {
			got := e.score(sample, e.end)
			if got < 0 {
				t.Errorf("%s/%s: score(%d bytes) = %d, want >= 0", e.isa, e.end, len(sample), got)
			}
		}
	}
}

func TestAllScorersAreDeterministic(t *testing.T) {
	sample := randomBytes(2048, 42)
	for _, e := range registry {
		first := e.score(sample, e.end)
		second := e.score(sample, e.end)
		if first != second {
			t.Errorf("%s/%s: non-deterministic score %d vs %d", e.isa, e.end, first, second)
		}
	}
}

func TestAllScorersZeroOnEmptyInput(t *testing.T) {
	for _, e := range registry {
		if got := e.score(nil, e.end); got != 0 {
			t.Errorf("%s/%s: score(nil) = %d, want 0", e.isa, e.end, got)
		}
		if got := e.score([]byte{}, e.end); got != 0 {
			t.Errorf("%s/%s: score([]byte{}) = %d, want 0", e.isa, e.end, got)
		}
	}
}

// All-zero input must never classify successfully: padding/run-detection
// penalties should keep every scorer's confidence below the acceptance
// floor, which Analyze surfaces as HeuristicInconclusiveError (spec
// scenario 5). The per-scorer growth bound itself is exercised end-to-end
// in TestScenarioAllZeroIsInconclusive.
func TestAllScorersNonNegativeOnSmallConstantRun(t *testing.T) {
	for _, e := range registry {
		tiny := e.score(make([]byte, 8), e.end)
		if tiny < 0 {
			t.Errorf("%s/%s: score(8 zero bytes) = %d, want >= 0", e.isa, e.end, tiny)
		}
	}
}

func TestRegistryCoversEveryScorerAtLeastOnce(t *testing.T) {
	seen := make(map[IsaKind]bool)
	for _, e := range registry {
		seen[e.isa] = true
	}
	for kind, name := range isaNames {
		if kind == IsaUnknown {
			continue
		}
		if !seen[kind] {
			t.Errorf("IsaKind %s has no registry entry", name)
		}
	}
}

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}
