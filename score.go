package kiri

// IsEye determines whether pt — which must be Empty — is a simple eye
// belonging to one color. Returns Occupied(c) when pt is an eye of color
// c, or Empty when it is not an eye (Empty is the "not an eye" sentinel;
// Forbidden is never returned here). A point counts as an eye only when
// every cardinal neighbor belongs to one color; among its diagonal
// neighbors, an interior point tolerates at most one belonging to the
// opponent, while an edge or corner point (one with an off-board
// diagonal) tolerates none.
func (p *Position) IsEye(pt int) PointState {
	eyeColor := Empty
	var other PointState

	for _, n := range p.adjacenciesAt(pt) {
		switch c := p.states[n]; c {
		case Out:
			continue
		case Empty:
			return Empty
		default:
			if eyeColor == Empty {
				eyeColor = c
				other = c.Opponent()
			} else if c == other {
				return Empty
			}
		}
	}

	nOut, nOpponent := 0, 0
	for _, n := range p.diagonalsAt(pt) {
		switch c := p.states[n]; {
		case c == Out:
			nOut++
		case c == other:
			nOpponent++
		}
	}

	if (nOut >= 1 && nOpponent >= 1) || (nOut == 0 && nOpponent >= 2) {
		return Empty
	}
	return eyeColor
}

// Score computes the terminal area (Chinese-style) score: Black points
// (stones plus Black eyes) minus White points (stones plus White eyes),
// minus komi. Positive means Black wins. Precondition: the position is
// terminal, with dame filled and dead stones already removed — Score
// does not verify this.
func (p *Position) Score() float64 {
	var s int
	for _, pt := range p.allPoints {
		c := p.states[pt]
		if c == Empty {
			c = p.IsEye(pt)
		}
		switch c {
		case Occupied(Black):
			s++
		case Occupied(White):
			s--
		}
	}
	return float64(s) - p.komi
}
