package kiri

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// columnLetters is the skip-I alphabet used for board columns: A-H cover
// x=1..8, J-T cover x=9..19. Indexed by x-1 directly.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// StrCoord renders mov in its external text form: "pass", "resign", or
// the algebraic vertex for a linear move. Row 1 is the bottom row in
// display, matching the board formatter's convention.
func (p *Position) StrCoord(mov Move) string {
	switch mov.Kind {
	case KindPass:
		return "pass"
	case KindResign:
		return "resign"
	default:
		x, y := p.LinearToXY(mov.Point)
		displayRow := p.Height() - y + 1
		return columnLetters[x-1:x] + strconv.Itoa(displayRow)
	}
}

// AlgebraicToMove parses s into a Move. The exact token "PASS"
// (case-insensitive) maps to PassMove; otherwise s must be one column
// letter (A-T, skipping I) followed by a decimal row. Range against board
// size is the caller's responsibility; only malformed input fails, with
// ErrInvalidVertex.
func (p *Position) AlgebraicToMove(s string) (Move, error) {
	up := strings.ToUpper(s)
	if up == "PASS" {
		return PassMove, nil
	}
	if len(up) < 2 {
		return Move{}, errors.Wrapf(ErrInvalidVertex, "vertex %q", s)
	}

	col := strings.IndexByte(columnLetters, up[0])
	if col < 0 {
		return Move{}, errors.Wrapf(ErrInvalidVertex, "vertex %q", s)
	}
	x := col + 1

	displayRow, err := strconv.Atoi(up[1:])
	if err != nil {
		return Move{}, errors.Wrapf(ErrInvalidVertex, "vertex %q", s)
	}
	y := p.Height() - displayRow + 1

	return LinearMove(p.XYToLinear(x, y)), nil
}
