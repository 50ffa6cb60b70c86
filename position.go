package kiri

// MoveLog fully describes the inverse of a successful Play: the turn and
// ko state before the move, the move itself, and the points captured (in
// N,E,S,W neighbor-scan order — part of the public contract that governs
// how captured points are reported). Undo consumes one to restore the
// prior state.
type MoveLog struct {
	PriorTurn  Color
	PriorKo    int
	PriorHadKo bool
	Move       Move
	Captives   []int
}

// Play applies mov to the position. On success it returns a MoveLog that
// Undo can use to reverse the effect; on failure the position is
// unchanged and the error is one of ErrResignNotPlayable, ErrKoForbidden,
// or ErrSuicide.
//
// Preconditions enforced only as panics, since they represent a
// programmer error rather than a recoverable condition: mov.Point must
// be on the board and Empty for a KindLinear move.
func (p *Position) Play(mov Move) (MoveLog, error) {
	priorKoPoint, priorHadKo := p.koPoint, p.koSet

	switch mov.Kind {
	case KindPass:
		// A pass lifts any pre-existing ko; the prior ko is kept in the
		// MoveLog so Undo can restore it.
		p.koSet = false
		p.koPoint = 0
		p.SwitchTurn()
		return MoveLog{
			PriorTurn:  p.turn.Opponent(),
			PriorKo:    priorKoPoint,
			PriorHadKo: priorHadKo,
			Move:       PassMove,
		}, nil

	case KindResign:
		return MoveLog{}, ErrResignNotPlayable

	case KindLinear:
		pt := mov.Point
		if !p.IsOnBoard(pt) {
			panic("kiri: Play called with an off-board point")
		}
		if priorHadKo && priorKoPoint == pt {
			return MoveLog{}, ErrKoForbidden
		}
		if p.states[pt] != Empty {
			panic("kiri: Play called on an occupied point")
		}

		turn := p.turn
		p.states[pt] = Occupied(turn)

		captives := p.captureBy(pt)

		played := p.StringAt(pt)
		if played.NumLiberties() == 0 {
			// Suicide: undo the placement. Captives is necessarily empty
			// here — a self-capturing move can't have removed an
			// opposing string, since doing so would have left the played
			// stone at least one liberty.
			p.states[pt] = Empty
			return MoveLog{}, ErrSuicide
		}

		if len(captives) == 1 && played.size() == 1 && played.NumLiberties() == 1 {
			p.koSet = true
			p.koPoint = played.Liberties()[0]
		} else {
			p.koSet = false
			p.koPoint = 0
		}

		p.SwitchTurn()
		return MoveLog{
			PriorTurn:  turn,
			PriorKo:    priorKoPoint,
			PriorHadKo: priorHadKo,
			Move:       mov,
			Captives:   captives,
		}, nil

	default:
		panic("kiri: unknown move kind")
	}
}

// captureBy removes every opposing string adjacent to pt that has zero
// liberties after pt was placed, in N,E,S,W scan order, and returns the
// removed points. A string shared by two of pt's neighbors is only
// captured once: after the first neighbor's string is removed, any
// sibling neighbor belonging to that same string is already Empty and no
// longer Occupied(opponent).
func (p *Position) captureBy(pt int) []int {
	opponent := p.turn.Opponent()
	var captives []int

	for _, a := range p.adjacenciesAt(pt) {
		if p.states[a] != Occupied(opponent) {
			continue
		}
		str := p.StringAt(a)
		if str.NumLiberties() == 0 {
			for _, e := range str.Points() {
				p.states[e] = Empty
			}
			captives = append(captives, str.Points()...)
		}
	}
	return captives
}

// Undo reverses the effect of the MoveLog returned by a prior successful
// Play, restoring turn, ko, and every affected cell. Passing a MoveLog
// produced by a different Position, or one from a failed Play, is a
// programmer error; this implementation does not attempt to detect it.
func (p *Position) Undo(log MoveLog) {
	p.koPoint, p.koSet = log.PriorKo, log.PriorHadKo
	p.SwitchTurn()

	if log.Move.Kind != KindLinear {
		return
	}
	p.states[log.Move.Point] = Empty
	opponent := log.PriorTurn.Opponent()
	for _, pt := range log.Captives {
		p.states[pt] = Occupied(opponent)
	}
}

// CheckLegal reports whether every stone on the board currently has at
// least one liberty. Useful as a test oracle for verifying Play's
// postconditions; not called by Play itself.
func (p *Position) CheckLegal() bool {
	for _, pt := range p.allPoints {
		if p.states[pt].IsStone() && p.StringAt(pt).NumLiberties() == 0 {
			return false
		}
	}
	return true
}
