package tui

import "github.com/19h/isa-classifier-sub000/isa"

// defaultWindowSize mirrors the multi-ISA scanner's own default so the
// browser's window map lines up with what DetectMultiISA would report.
const defaultWindowSize = 2048

// windowRow is one row of the browser's window map: the rank-off result for
// a single fixed-size slice of the input.
type windowRow struct {
	Offset     int
	Length     int
	Candidates []isa.ArchitectureScore
}

// Winner returns the top-ranked candidate for this window, or the zero value
// if the window produced no candidates at all.
func (w windowRow) Winner() (isa.ArchitectureScore, bool) {
	if len(w.Candidates) == 0 {
		return isa.ArchitectureScore{}, false
	}
	return w.Candidates[0], true
}

// buildWindows slides a non-overlapping window across data and runs the
// rank-off on each slice, producing the raw material for the window-map
// panel. windowSize <= 0 falls back to defaultWindowSize.
func buildWindows(data []byte, options isa.ClassifierOptions, windowSize int) []windowRow {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	var rows []windowRow
	for offset := 0; offset < len(data); offset += windowSize {
		end := offset + windowSize
		if end > len(data) {
			end = len(data)
		}
		slice := data[offset:end]
		rows = append(rows, windowRow{
			Offset:     offset,
			Length:     len(slice),
			Candidates: isa.TopCandidates(slice, 8, options),
		})
	}
	return rows
}

// filterWindows returns only the rows whose winning ISA name contains query
// (case-insensitive ASCII substring match kept deliberately simple). An empty query
// returns rows unchanged.
func filterWindows(rows []windowRow, query string) []windowRow {
	if query == "" {
		return rows
	}
	var out []windowRow
	for _, row := range rows {
		winner, ok := row.Winner()
		if !ok {
			continue
		}
		if containsFold(winner.Isa.Kind.String(), query) {
			out = append(out, row)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	h, n := []rune(haystack), []rune(needle)
	if len(n) == 0 {
		return true
	}
	toLower := func(rs []rune) []rune {
		out := make([]rune, len(rs))
		for i, r := range rs {
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			out[i] = r
		}
		return out
	}
	h, n = toLower(h), toLower(n)
	if len(n) > len(h) {
		return false
	}
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if h[i+j] != n[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
