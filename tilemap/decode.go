// Package tilemap decodes packed multi-row ASCII tile maps.
//
// A packed map is written as any number of text lines. Once the lines are
// joined and spaces removed, the result holds rowCount logical rows back to
// back, each with one character per map cell. In level data the first row
// holds tile codes and the second row holds height digits.
package tilemap

import (
	"fmt"
	"strings"

	"github.com/milk9111/levelgeo/common"
)

const (
	TypeRow   = 0
	HeightRow = 1

	// DefaultRowCount is the number of rows in level map strings.
	DefaultRowCount = 2
)

// MapDecodeError reports a malformed map encoding.
type MapDecodeError struct {
	Cell   int // -1 when the error is not tied to a cell
	Reason string
}

func (e *MapDecodeError) Error() string {
	if e.Cell < 0 {
		return "tilemap: " + e.Reason
	}
	return fmt.Sprintf("tilemap: cell %d: %s", e.Cell, e.Reason)
}

// Rows holds one field array per encoded row, indexed by cell.
type Rows [][]rune

// Cells returns the number of cells in each row.
func (r Rows) Cells() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Decode joins lines, strips spaces and splits the result into rowCount
// equally sized rows.
func Decode(lines []string, rowCount int) (Rows, error) {
	if rowCount < 1 {
		return nil, &MapDecodeError{Cell: -1, Reason: fmt.Sprintf("invalid row count %d", rowCount)}
	}

	var packed []rune
	for _, line := range lines {
		for _, ch := range line {
			if ch != ' ' {
				packed = append(packed, ch)
			}
		}
	}
	if len(packed) == 0 {
		return nil, &MapDecodeError{Cell: -1, Reason: "empty map"}
	}
	if len(packed)%rowCount != 0 {
		return nil, &MapDecodeError{Cell: -1, Reason: fmt.Sprintf("%d characters do not split into %d rows", len(packed), rowCount)}
	}

	n := len(packed) / rowCount
	rows := make(Rows, rowCount)
	for i := range rows {
		rows[i] = packed[i*n : (i+1)*n : (i+1)*n]
	}
	return rows, nil
}

// Cell is one decoded map cell positioned in level space.
type Cell struct {
	Index int
	Code  rune
	Digit int
	X     float64
	Y     float64
}

// Cells positions every cell using the type and height rows. The base y of
// a cell is levelHeight - (digit+1)*RowHeight.
func Cells(rows Rows, tileWidth, levelHeight float64) ([]Cell, error) {
	if len(rows) <= HeightRow {
		return nil, &MapDecodeError{Cell: -1, Reason: fmt.Sprintf("need at least %d rows, got %d", HeightRow+1, len(rows))}
	}
	if tileWidth <= 0 {
		return nil, &MapDecodeError{Cell: -1, Reason: fmt.Sprintf("invalid tile width %v", tileWidth)}
	}

	types, heights := rows[TypeRow], rows[HeightRow]
	out := make([]Cell, len(types))
	for i, code := range types {
		ch := heights[i]
		if ch < '0' || ch > '9' {
			return nil, &MapDecodeError{Cell: i, Reason: fmt.Sprintf("height %q is not a digit", ch)}
		}
		digit := int(ch - '0')
		out[i] = Cell{
			Index: i,
			Code:  code,
			Digit: digit,
			X:     float64(i) * tileWidth,
			Y:     levelHeight - float64((digit+1)*common.RowHeight),
		}
	}
	return out, nil
}

// Encode is the inverse of Decode for single-line output.
func Encode(rows Rows) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
	}
	return b.String()
}
