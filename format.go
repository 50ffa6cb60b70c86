package kiri

import (
	"strconv"
	"strings"
)

// formatPosition renders a board: one row per board row, row numbers on
// the left with row 1 at the bottom (matching StrCoord's convention), a
// trailing column-letter footer (A..T, skipping I).
func formatPosition(p *Position) string {
	var b strings.Builder
	width := p.Width()
	height := p.Height()

	for displayRow := height; displayRow >= 1; displayRow-- {
		b.WriteString(padRowLabel(displayRow))
		y := height - displayRow + 1
		for x := 1; x <= width; x++ {
			b.WriteString(p.State(p.XYToLinear(x, y)).String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("    ")
	for x := 1; x <= width; x++ {
		b.WriteByte(columnLetters[x-1])
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}

func padRowLabel(row int) string {
	s := strconv.Itoa(row)
	if len(s) < 2 {
		s += " "
	}
	return " " + s + " "
}

// ParsePosition builds a side x side Position from a text board: side
// lines of side characters, 'X'/'x' for Black, 'O'/'o' for White, '#' for
// Out, anything else Empty. Fails with ErrWrongRows or ErrWrongColumns on a shape mismatch.
// Turn defaults to Black, komi to the default 6.5, no ko — callers that
// need otherwise should call SetTurn/SetKomi afterward.
func ParsePosition(side int, s string) (*Position, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != side {
		return nil, ErrWrongRows
	}

	p := NewPosition(side)
	for row, line := range lines {
		if len(line) != side {
			return nil, ErrWrongColumns
		}
		y := row + 1
		for col := 0; col < side; col++ {
			x := col + 1
			pt := p.XYToLinear(x, y)
			p.SetState(pt, pointStateFromChar(line[col]))
		}
	}
	return p, nil
}
