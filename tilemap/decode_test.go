package tilemap

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		lines    []string
		rowCount int
		expected []string
	}{
		{"two_rows_one_line", []string{"AB01"}, 2, []string{"AB", "01"}},
		{"spaces_stripped", []string{"A B [", " ] 0 1", "23"}, 2, []string{"AB[]", "0123"}},
		{"split_across_lines", []string{"AAA", "A", "0012"}, 2, []string{"AAAA", "0012"}},
		{"three_rows", []string{"AB", "01", "xy"}, 3, []string{"AB", "01", "xy"}},
		{"single_row", []string{"ABC"}, 1, []string{"ABC"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rows, err := Decode(c.lines, c.rowCount)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(rows) != len(c.expected) {
				t.Fatalf("expected %d rows, got %d", len(c.expected), len(rows))
			}
			for i, want := range c.expected {
				if string(rows[i]) != want {
					t.Fatalf("row %d: expected %q, got %q", i, want, string(rows[i]))
				}
			}
			if rows.Cells() != len(c.expected[0]) {
				t.Fatalf("expected %d cells, got %d", len(c.expected[0]), rows.Cells())
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name     string
		lines    []string
		rowCount int
	}{
		{"odd_length", []string{"AB0"}, 2},
		{"empty", []string{"   ", ""}, 2},
		{"no_lines", nil, 2},
		{"zero_rows", []string{"AB01"}, 0},
		{"not_divisible_by_three", []string{"ABCD"}, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.lines, c.rowCount)
			var decErr *MapDecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected MapDecodeError, got %v", err)
			}
		})
	}
}

func TestCells(t *testing.T) {
	rows, err := Decode([]string{"AA[]", "0019"}, DefaultRowCount)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	cells, err := Cells(rows, 64, 640)
	if err != nil {
		t.Fatalf("Cells failed: %v", err)
	}
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}

	expected := []Cell{
		{Index: 0, Code: 'A', Digit: 0, X: 0, Y: 576},
		{Index: 1, Code: 'A', Digit: 0, X: 64, Y: 576},
		{Index: 2, Code: '[', Digit: 1, X: 128, Y: 512},
		{Index: 3, Code: ']', Digit: 9, X: 192, Y: 0},
	}
	for i, want := range expected {
		if cells[i] != want {
			t.Fatalf("cell %d: expected %+v, got %+v", i, want, cells[i])
		}
	}
}

func TestCellsCoverEveryColumn(t *testing.T) {
	const n = 37
	types := make([]rune, n)
	heights := make([]rune, n)
	for i := range types {
		types[i] = 'A'
		heights[i] = rune('0' + i%10)
	}
	cells, err := Cells(Rows{types, heights}, 32, 640)
	if err != nil {
		t.Fatalf("Cells failed: %v", err)
	}
	if len(cells) != n {
		t.Fatalf("expected %d cells, got %d", n, len(cells))
	}
	for i, c := range cells {
		if c.X != float64(i*32) {
			t.Fatalf("cell %d: expected x=%d, got %v", i, i*32, c.X)
		}
	}
}

func TestCellsErrors(t *testing.T) {
	cases := []struct {
		name      string
		rows      Rows
		tileWidth float64
		cell      int
	}{
		{"non_digit_height", Rows{[]rune("AB"), []rune("0x")}, 64, 1},
		{"one_row_only", Rows{[]rune("AB")}, 64, -1},
		{"zero_tile_width", Rows{[]rune("AB"), []rune("00")}, 0, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Cells(c.rows, c.tileWidth, 640)
			var decErr *MapDecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected MapDecodeError, got %v", err)
			}
			if decErr.Cell != c.cell {
				t.Fatalf("expected cell %d, got %d", c.cell, decErr.Cell)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	rows := Rows{[]rune("AB"), []rune("01")}
	if got := Encode(rows); got != "AB01" {
		t.Fatalf("expected AB01, got %q", got)
	}
}
