package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/picklist/internal/state"
)

const (
	pickedMarker = "●"
	minTitleCols = 8
)

// renderHeader renders the logo plus list totals and the current selection.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot()

	parts := []string{
		styles.Logo.Render("picklist"),
		styles.MutedText.Render("Records:") + " " + styles.Text.Render(strconv.Itoa(snap.Len())),
	}
	if rec, ok := snap.Selected(); ok {
		parts = append(parts,
			styles.MutedText.Render("Selected:")+" "+styles.Picked.Render(truncate(rec.Label(), 40)))
	} else {
		parts = append(parts, styles.FaintText.Render("Nothing selected"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders the short help line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderList renders the visible window of records around the cursor.
func (m Model) renderList(width, height int) string {
	styles := m.theme.Styles()
	list := m.snapshot().List
	if height < 1 {
		height = 1
	}

	if len(list) == 0 {
		msg := styles.MutedText.Render("No records. Press a to add one.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	codeWidth := codeColumnWidth(list)
	start, end := visibleRange(m.cursor, len(list), height)

	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		rec := list[i]
		row := formatRow(rec, codeWidth, width)
		switch {
		case i == m.cursor:
			row = styles.Cursor.Render(row)
		case rec.Selected:
			row = styles.Picked.Render(row)
		default:
			row = styles.Text.Render(row)
		}
		lines = append(lines, row)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// formatRow lays out one record as plain text padded to width: marker,
// right-aligned code, title, and the selection counter on the right.
func formatRow(rec state.Record, codeWidth, width int) string {
	marker := " "
	if rec.Selected {
		marker = pickedMarker
	}
	left := fmt.Sprintf(" %s %*d  ", marker, codeWidth, rec.Code)

	var right string
	if rec.SelectionCount > 0 {
		right = "  Выделяли " + state.FormatSelectionCount(rec.SelectionCount) + " "
	}

	titleWidth := width - runeLen(left) - runeLen(right)
	if titleWidth < minTitleCols {
		right = ""
		titleWidth = width - runeLen(left)
	}
	if titleWidth < 1 {
		return truncate(left+rec.Title, width)
	}
	return left + padRight(truncate(rec.Title, titleWidth), titleWidth) + right
}

// visibleRange returns the [start, end) window of total rows that fits in
// height and keeps cursor on screen.
func visibleRange(cursor, total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, start + height
}

func codeColumnWidth(list []state.Record) int {
	width := 1
	for _, rec := range list {
		if w := len(strconv.Itoa(rec.Code)); w > width {
			width = w
		}
	}
	return width
}
