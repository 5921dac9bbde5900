package ui

import (
	"strings"
	"testing"

	"github.com/five82/picklist/internal/state"
)

func TestFormatRow_LaysOutColumns(t *testing.T) {
	rec := state.Record{Code: 7, Title: "Groceries", Selected: true, SelectionCount: 3}

	got := formatRow(rec, 2, 50)
	if runeLen(got) != 50 {
		t.Fatalf("row width = %d, want 50: %q", runeLen(got), got)
	}
	if !strings.HasPrefix(got, " ●  7  Groceries") {
		t.Fatalf("row = %q, want marker, padded code and title first", got)
	}
	if !strings.HasSuffix(got, "Выделяли 3 раза ") {
		t.Fatalf("row = %q, want selection counter at the end", got)
	}
}

func TestFormatRow_HidesZeroCount(t *testing.T) {
	got := formatRow(state.Record{Code: 1, Title: "New record"}, 1, 30)
	if strings.Contains(got, "Выделяли") {
		t.Fatalf("row = %q, want no counter for zero selections", got)
	}
	if strings.Contains(got, pickedMarker) {
		t.Fatalf("row = %q, want no marker for unselected record", got)
	}
}

func TestFormatRow_DropsCounterWhenNarrow(t *testing.T) {
	rec := state.Record{Code: 1, Title: "A title that is long", SelectionCount: 5}

	got := formatRow(rec, 1, 24)
	if strings.Contains(got, "Выделяли") {
		t.Fatalf("row = %q, want counter dropped on narrow width", got)
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("row = %q, want truncated title", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                  string
		cursor, total, height int
		wantStart, wantEnd    int
	}{
		{"fits", 2, 5, 10, 0, 5},
		{"cursor in first page", 3, 20, 5, 0, 5},
		{"cursor past first page", 7, 20, 5, 3, 8},
		{"cursor at end", 19, 20, 5, 15, 20},
		{"zero height", 0, 4, 0, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.cursor, tt.total, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("visibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.cursor, tt.total, tt.height, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCodeColumnWidth(t *testing.T) {
	list := []state.Record{{Code: 3}, {Code: 120}, {Code: 45}}
	if got := codeColumnWidth(list); got != 3 {
		t.Fatalf("codeColumnWidth = %d, want 3", got)
	}
	if got := codeColumnWidth(nil); got != 1 {
		t.Fatalf("codeColumnWidth(nil) = %d, want 1", got)
	}
}
