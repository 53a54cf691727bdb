// Package tui implements a results browser for completed ISA classification
// scans, repurposed from the debugger's instruction-stepping TUI into a
// read-only drill-down viewer over the window map a multi-ISA scan produces.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/19h/isa-classifier-sub000/isa"
)

// Browser is the text user interface over a completed scan.
type Browser struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout  *tview.Flex
	LeftPanel   *tview.Flex
	RightPanel  *tview.Flex

	WindowList   *tview.Table
	ScoreView    *tview.TextView
	HexView      *tview.TextView
	FilterInput  *tview.InputField

	data      []byte
	options   isa.ClassifierOptions
	allRows   []windowRow
	rows      []windowRow
	selected  int
	history   *FilterHistory
}

// NewBrowser builds a browser over data, windowed at windowSize bytes
// (<=0 uses the scanner's 2048-byte default).
func NewBrowser(data []byte, options isa.ClassifierOptions, windowSize int) *Browser {
	rows := buildWindows(data, options, windowSize)
	b := &Browser{
		App:     tview.NewApplication(),
		data:    data,
		options: options,
		allRows: rows,
		rows:    rows,
		history: NewFilterHistory(100),
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.refreshWindowList()

	return b
}

func (b *Browser) initializeViews() {
	b.WindowList = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	b.WindowList.SetBorder(true).SetTitle(" Window Map ")

	b.ScoreView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.ScoreView.SetBorder(true).SetTitle(" Score Breakdown ")

	b.HexView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.HexView.SetBorder(true).SetTitle(" Hex Dump ")

	b.FilterInput = tview.NewInputField().
		SetLabel("/ ").
		SetFieldWidth(0)
	b.FilterInput.SetBorder(true).SetTitle(" Filter by ISA name ")
	b.FilterInput.SetDoneFunc(b.handleFilterDone)
}

func (b *Browser) buildLayout() {
	b.LeftPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.WindowList, 0, 1, true)

	b.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.ScoreView, 0, 1, false).
		AddItem(b.HexView, 0, 2, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(b.LeftPanel, 0, 1, true).
		AddItem(b.RightPanel, 0, 2, false)

	b.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 1, true).
		AddItem(b.FilterInput, 3, 0, false)

	b.Pages = tview.NewPages().
		AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			b.refreshWindowList()
			return nil
		}
		if event.Rune() == '/' && b.App.GetFocus() != b.FilterInput {
			b.App.SetFocus(b.FilterInput)
			return nil
		}
		return event
	})

	b.WindowList.SetSelectionChangedFunc(func(row, col int) {
		b.selected = row - 1 // row 0 is the header
		b.refreshDetail()
	})

	b.WindowList.SetSelectedFunc(func(row, col int) {
		b.selected = row - 1
		b.refreshDetail()
	})

	b.FilterInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if q, ok := b.history.Previous(); ok {
				b.FilterInput.SetText(q)
			}
			return nil
		case tcell.KeyDown:
			if q, ok := b.history.Next(); ok {
				b.FilterInput.SetText(q)
			}
			return nil
		case tcell.KeyEscape:
			b.App.SetFocus(b.WindowList)
			return nil
		}
		return event
	})
}

func (b *Browser) handleFilterDone(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	query := b.FilterInput.GetText()
	b.history.Add(query)
	b.rows = filterWindows(b.allRows, query)
	b.selected = 0
	b.refreshWindowList()
	b.App.SetFocus(b.WindowList)
}

// refreshWindowList repaints the window-map table, one row per scanned
// window, colored by the winning ISA.
func (b *Browser) refreshWindowList() {
	b.WindowList.Clear()

	headers := []string{"Offset", "Length", "Winner", "Confidence"}
	for col, h := range headers {
		cell := tview.NewTableCell("[::b]" + h).SetSelectable(false)
		b.WindowList.SetCell(0, col, cell)
	}

	for i, row := range b.rows {
		winner, ok := row.Winner()
		name, conf, color := "(inconclusive)", 0.0, "white"
		if ok {
			name = winner.Isa.Kind.String()
			conf = winner.Confidence
			color = winnerColor(winner.Isa.Kind)
		}

		b.WindowList.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("0x%08X", row.Offset)))
		b.WindowList.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%d", row.Length)))
		b.WindowList.SetCell(i+1, 2, tview.NewTableCell(fmt.Sprintf("[%s]%s[white]", color, name)))
		b.WindowList.SetCell(i+1, 3, tview.NewTableCell(fmt.Sprintf("%.2f", conf)))
	}

	b.selected = 0
	if len(b.rows) > 0 {
		b.WindowList.Select(1, 0)
	}
	b.refreshDetail()
}

// winnerColor assigns a stable color per ISA family so repeated scans of the
// same binary always render the same architecture in the same color.
func winnerColor(kind isa.IsaKind) string {
	palette := []string{"green", "yellow", "cyan", "magenta", "blue", "red", "white"}
	return palette[int(kind)%len(palette)]
}

// refreshDetail repaints the score breakdown and hex dump for the currently
// selected window.
func (b *Browser) refreshDetail() {
	if b.selected < 0 || b.selected >= len(b.rows) {
		b.ScoreView.SetText("[yellow]No window selected[white]")
		b.HexView.Clear()
		return
	}
	row := b.rows[b.selected]

	var lines []string
	lines = append(lines, fmt.Sprintf("[yellow]Window at 0x%08X, %d bytes[white]", row.Offset, row.Length))
	lines = append(lines, "")
	for i, c := range row.Candidates {
		marker := "  "
		color := "white"
		if i == 0 {
			marker = "->"
			color = "green"
		}
		lines = append(lines, fmt.Sprintf("[%s]%s %-16s score=%-8d confidence=%.3f[white]",
			color, marker, c.Isa.Kind.String(), c.RawScore, c.Confidence))
	}
	b.ScoreView.SetText(strings.Join(lines, "\n"))

	end := row.Offset + row.Length
	if end > len(b.data) {
		end = len(b.data)
	}
	window := b.data[row.Offset:end]
	highlightLen := len(window)
	if highlightLen > 32 {
		highlightLen = 32
	}
	b.HexView.SetText(hexDump(window, matchedOffsets(highlightLen)))
}

// Run starts the browser's event loop.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.WindowList).Run()
}

// Stop stops the browser's event loop.
func (b *Browser) Stop() {
	b.App.Stop()
}
