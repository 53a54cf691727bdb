package tui

import (
	"fmt"
	"strings"
)

// hexDump renders data as a classic 16-bytes-per-row hex/ASCII dump using
// tview's [color] tag syntax. Bytes at the offsets listed in highlight are
// rendered in yellow, the convention the rest of the panels use to mark
// "the thing the cursor is on".
func hexDump(data []byte, highlight map[int]bool) string {
	var b strings.Builder
	for row := 0; row < len(data); row += 16 {
		end := row + 16
		if end > len(data) {
			end = len(data)
		}
		line := data[row:end]

		fmt.Fprintf(&b, "0x%08X: ", row)

		var hexParts []string
		var ascii strings.Builder
		for i, by := range line {
			off := row + i
			hx := fmt.Sprintf("%02X", by)
			if highlight[off] {
				hx = "[yellow]" + hx + "[white]"
			}
			hexParts = append(hexParts, hx)

			if by >= 32 && by < 127 {
				ascii.WriteByte(by)
			} else {
				ascii.WriteByte('.')
			}
		}
		for i := len(line); i < 16; i++ {
			hexParts = append(hexParts, "  ")
		}

		b.WriteString(strings.Join(hexParts, " "))
		b.WriteString("  ")
		b.WriteString(ascii.String())
		b.WriteString("\n")
	}
	return b.String()
}

// matchedOffsets returns a highlight set covering the first matchLen bytes
// of the window, a coarse stand-in for "the bytes the winning scorer's
// strongest pattern matched" — the scorers themselves don't report match
// spans, so the browser highlights the leading instruction-sized chunk
// instead of claiming precision it doesn't have.
func matchedOffsets(matchLen int) map[int]bool {
	out := make(map[int]bool, matchLen)
	for i := 0; i < matchLen; i++ {
		out[i] = true
	}
	return out
}
