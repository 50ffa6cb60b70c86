package kiri

import "testing"

// S3 : a corner eye with no opposing diagonals is a true eye.
func TestIsEyeCornerTrueEye(t *testing.T) {
	p := NewPosition(19)
	p.SetState(p.XYToLinear(1, 2), Occupied(Black))
	p.SetState(p.XYToLinear(2, 1), Occupied(Black))

	if got := p.IsEye(p.XYToLinear(1, 1)); got != Occupied(Black) {
		t.Errorf("IsEye(corner) = %v, want Occupied(Black)", got)
	}
}

// S4 : adding a White stone diagonally makes it a false eye.
func TestIsEyeCornerFalseEye(t *testing.T) {
	p := NewPosition(19)
	p.SetState(p.XYToLinear(1, 2), Occupied(Black))
	p.SetState(p.XYToLinear(2, 1), Occupied(Black))
	p.SetState(p.XYToLinear(2, 2), Occupied(White))

	if got := p.IsEye(p.XYToLinear(1, 1)); got != Empty {
		t.Errorf("IsEye(corner with diagonal enemy) = %v, want Empty", got)
	}
}

func TestIsEyeEmptyNeighborIsNotAnEye(t *testing.T) {
	p := NewPosition(9)
	pt := p.XYToLinear(5, 5)
	p.SetState(p.XYToLinear(5, 4), Occupied(Black))
	p.SetState(p.XYToLinear(6, 5), Occupied(Black))
	p.SetState(p.XYToLinear(5, 6), Occupied(Black))
	// (4,5) left as Empty: not all cardinal neighbors are stones.
	if got := p.IsEye(pt); got != Empty {
		t.Errorf("IsEye with an empty cardinal neighbor = %v, want Empty", got)
	}
}

func TestIsEyeMixedColorNeighborsIsNotAnEye(t *testing.T) {
	p := NewPosition(9)
	pt := p.XYToLinear(5, 5)
	p.SetState(p.XYToLinear(5, 4), Occupied(Black))
	p.SetState(p.XYToLinear(6, 5), Occupied(White))
	p.SetState(p.XYToLinear(5, 6), Occupied(Black))
	p.SetState(p.XYToLinear(4, 5), Occupied(Black))
	if got := p.IsEye(pt); got != Empty {
		t.Errorf("IsEye with mixed-color cardinal neighbors = %v, want Empty", got)
	}
}

func TestIsEyeCenterNeedsTwoOpposingDiagonals(t *testing.T) {
	p := NewPosition(9)
	pt := p.XYToLinear(5, 5)
	for _, n := range p.adjacenciesAt(pt) {
		p.SetState(n, Occupied(Black))
	}
	diag := p.diagonalsAt(pt)

	// One opposing diagonal stone: still a real eye in the center.
	p.SetState(diag[0], Occupied(White))
	if got := p.IsEye(pt); got != Occupied(Black) {
		t.Errorf("IsEye with one center diagonal enemy = %v, want Occupied(Black)", got)
	}

	// Two opposing diagonal stones: false eye.
	p.SetState(diag[1], Occupied(White))
	if got := p.IsEye(pt); got != Empty {
		t.Errorf("IsEye with two center diagonal enemies = %v, want Empty", got)
	}
}

// Score symmetry, property 7.
func TestScoreEmptyBoardIsMinusKomi(t *testing.T) {
	p := NewPosition(9)
	p.SetKomi(6.5)
	if got := p.Score(); got != -6.5 {
		t.Errorf("Score() on empty board = %v, want -6.5", got)
	}
}

func TestScoreFullyBlackBoard(t *testing.T) {
	p := NewPosition(9)
	p.SetKomi(6.5)
	for _, pt := range p.AllPoints() {
		p.SetState(pt, Occupied(Black))
	}
	want := float64(9*9) - 6.5
	if got := p.Score(); got != want {
		t.Errorf("Score() on fully Black board = %v, want %v", got, want)
	}
}
