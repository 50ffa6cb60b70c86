package kiri

import "testing"

func TestXYLinearRoundTrip(t *testing.T) {
	p := NewPosition(9)
	for y := 1; y <= 9; y++ {
		for x := 1; x <= 9; x++ {
			pt := p.XYToLinear(x, y)
			gotX, gotY := p.LinearToXY(pt)
			if gotX != x || gotY != y {
				t.Errorf("round trip (%d,%d) -> %d -> (%d,%d)", x, y, pt, gotX, gotY)
			}
		}
	}
}

func TestHaloIntegrity(t *testing.T) {
	p := NewPosition(9)
	for pt := 0; pt < p.PaddedWidth()*p.PaddedWidth(); pt++ {
		x, y := p.LinearToXY(pt)
		onBoard := x >= 1 && x <= p.Width() && y >= 1 && y <= p.Height()
		if onBoard {
			if p.State(pt) == Out {
				t.Errorf("on-board point (%d,%d) unexpectedly Out", x, y)
			}
		} else if p.State(pt) != Out {
			t.Errorf("halo point (%d,%d) = %v, want Out", x, y, p.State(pt))
		}
	}
}

func TestAllPointsRowMajor(t *testing.T) {
	p := NewPosition(4)
	pts := p.AllPoints()
	if len(pts) != 16 {
		t.Fatalf("len(AllPoints()) = %d, want 16", len(pts))
	}
	i := 0
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			if pts[i] != p.XYToLinear(x, y) {
				t.Errorf("AllPoints()[%d] = %d, want (%d,%d)=%d", i, pts[i], x, y, p.XYToLinear(x, y))
			}
			i++
		}
	}
}

func TestEmptiesPartition(t *testing.T) {
	p := NewPosition(5)
	p.SetState(p.XYToLinear(1, 1), Occupied(Black))
	p.SetState(p.XYToLinear(3, 3), Occupied(White))

	want := map[int]bool{}
	for _, pt := range p.AllPoints() {
		if p.State(pt) == Empty {
			want[pt] = true
		}
	}
	got := p.Empties()
	if len(got) != len(want) {
		t.Fatalf("len(Empties()) = %d, want %d", len(got), len(want))
	}
	for _, pt := range got {
		if !want[pt] {
			t.Errorf("Empties() contains %d which is not Empty or not on board", pt)
		}
		if !p.IsOnBoard(pt) {
			t.Errorf("Empties() contains off-board point %d", pt)
		}
	}
}

func TestSwitchTurn(t *testing.T) {
	p := NewPosition(9)
	if p.Turn() != Black {
		t.Fatalf("new position should start with Black to move")
	}
	p.SwitchTurn()
	if p.Turn() != White {
		t.Errorf("SwitchTurn should flip to White")
	}
	p.SwitchTurn()
	if p.Turn() != Black {
		t.Errorf("SwitchTurn twice should return to Black")
	}
}

func TestResetDefaults(t *testing.T) {
	p := NewPosition(19)
	if p.Turn() != Black {
		t.Error("default turn should be Black")
	}
	if _, ok := p.GetKo(); ok {
		t.Error("default position should have no ko")
	}
	if p.Komi() != 6.5 {
		t.Errorf("default komi = %v, want 6.5", p.Komi())
	}
}
