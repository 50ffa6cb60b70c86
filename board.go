package kiri

import "fmt"

// defaultHalo is the width of the out-of-bounds padding ring around the
// playable area. One ring is enough: adjacencies and diagonals of any
// on-board point always land inside the padded array.
const defaultHalo = 1

// defaultKomi is the komi applied by the reset constructor.
const defaultKomi = 6.5

// Position is the aggregate state of a game: the padded point array, the
// side to move, an optional ko point, and komi. It is the single mutable
// value callers hold; it is mutated by Play/Undo, SetKomi, Reset, and the
// direct setters SetState/SetTurn/SwitchTurn.
//
// A Position is not safe to mutate concurrently from multiple goroutines.
// Concurrent read-only observation is safe provided callers synchronize
// externally.
type Position struct {
	side   int // board side (9, 13, 19, ...)
	halo   int
	padded int // side + 2*halo

	states []PointState
	turn   Color

	koSet   bool
	koPoint int

	komi float64

	allPoints []int // precomputed on-board linear coordinates, row-major

	marker Marker // shared flood scratch, embedded per-Position
}

// NewPosition returns the default opening position on a side x side board:
// empty, Black to play, komi 6.5, no ko.
func NewPosition(side int) *Position {
	p := &Position{}
	p.resize(side)
	p.Reset()
	return p
}

// resize (re)allocates the padded array and scratch for the given side.
// Called once by NewPosition.
func (p *Position) resize(side int) {
	p.side = side
	p.halo = defaultHalo
	p.padded = side + 2*defaultHalo

	n := p.padded * p.padded
	p.states = make([]PointState, n)
	p.marker.resize(n)

	p.allPoints = make([]int, 0, side*side)
	for y := 1; y <= side; y++ {
		for x := 1; x <= side; x++ {
			p.allPoints = append(p.allPoints, p.XYToLinear(x, y))
		}
	}
}

// Reset writes Out into every padded cell, Empty into the interior, and
// sets turn=Black, ko=None, komi=6.5 — the same starting position
// NewPosition builds.
func (p *Position) Reset() {
	for i := range p.states {
		p.states[i] = Out
	}
	for _, pt := range p.allPoints {
		p.states[pt] = Empty
	}
	p.turn = Black
	p.koSet = false
	p.koPoint = 0
	p.komi = defaultKomi
}

// Width returns the board side.
func (p *Position) Width() int { return p.side }

// Height returns the board side (square boards only).
func (p *Position) Height() int { return p.side }

// Halo returns the out-of-bounds padding width.
func (p *Position) Halo() int { return p.halo }

// PaddedWidth returns side + 2*Halo().
func (p *Position) PaddedWidth() int { return p.padded }

// State returns the state of a linear point, including halo cells.
func (p *Position) State(pt int) PointState { return p.states[pt] }

// SetState sets the state of a linear point. The move engine never calls
// this on a halo cell; callers who do so violate the halo invariant.
func (p *Position) SetState(pt int, s PointState) { p.states[pt] = s }

// Turn returns the color to move.
func (p *Position) Turn() Color { return p.turn }

// SetTurn sets the color to move directly, bypassing Play. Intended for
// constructing test positions and the text-board parser.
func (p *Position) SetTurn(c Color) { p.turn = c }

// SwitchTurn flips the color to move.
func (p *Position) SwitchTurn() { p.turn = p.turn.Opponent() }

// SetKomi sets the komi used by Score.
func (p *Position) SetKomi(v float64) { p.komi = v }

// Komi returns the current komi.
func (p *Position) Komi() float64 { return p.komi }

// GetKo returns the ko-forbidden point and whether one is set.
func (p *Position) GetKo() (pt int, ok bool) { return p.koPoint, p.koSet }

// XYToLinear maps on-board (x,y), (1,1) at top-left, to a linear
// coordinate. Branchless by construction: the halo guarantees that
// adjacent/diagonal arithmetic on the result never leaves the array.
func (p *Position) XYToLinear(x, y int) int {
	return (x - 1 + p.halo) + (y-1+p.halo)*p.padded
}

// LinearToXY is the inverse of XYToLinear on the on-board domain.
func (p *Position) LinearToXY(pt int) (x, y int) {
	x = pt%p.padded - p.halo + 1
	y = pt/p.padded - p.halo + 1
	return
}

// AllPoints returns the on-board linear coordinates in row-major order
// from (1,1) to (side,side). The returned slice is owned by the Position
// and must not be modified.
func (p *Position) AllPoints() []int { return p.allPoints }

// Empties collects every on-board point currently Empty.
func (p *Position) Empties() []int {
	out := make([]int, 0, len(p.allPoints))
	for _, pt := range p.allPoints {
		if p.states[pt] == Empty {
			out = append(out, pt)
		}
	}
	return out
}

// IsOnBoard reports whether pt is not part of the halo.
func (p *Position) IsOnBoard(pt int) bool { return p.states[pt] != Out }

// cardinalOffsets returns the fixed N,E,S,W index deltas for this board's
// padded width. Neighbor order is part of the public contract: it governs
// the order MoveLog.Captives reports captured points in.
func (p *Position) cardinalOffsets() [4]int {
	return [4]int{-p.padded, 1, p.padded, -1}
}

// diagonalOffsets returns the fixed NE,SE,SW,NW index deltas.
func (p *Position) diagonalOffsets() [4]int {
	return [4]int{-p.padded + 1, p.padded + 1, p.padded - 1, -p.padded - 1}
}

// adjacenciesAt returns pt's four cardinal neighbors in N,E,S,W order.
// Precondition: pt is on the board; callers that violate it get garbage
// indices rather than a panic — a programmer error, not a recoverable
// one.
func (p *Position) adjacenciesAt(pt int) [4]int {
	off := p.cardinalOffsets()
	return [4]int{pt + off[0], pt + off[1], pt + off[2], pt + off[3]}
}

// diagonalsAt returns pt's four diagonal neighbors in NE,SE,SW,NW order.
func (p *Position) diagonalsAt(pt int) [4]int {
	off := p.diagonalOffsets()
	return [4]int{pt + off[0], pt + off[1], pt + off[2], pt + off[3]}
}

// String renders the board: row numbers on the left (row 1 at the
// bottom), stones as X (Black) / O (White), empty as '.', column letters
// A..T below (skipping I). Only on-board points are printed; the halo
// (which PointState.String renders as '#') is not. This convention matches
// StrCoord/AlgebraicToMove in coord.go.
func (p *Position) String() string {
	return formatPosition(p)
}

var _ fmt.Stringer = (*Position)(nil)
