package kiri

import "testing"

func BenchmarkStringAt(b *testing.B) {
	p := NewPosition(19)
	for _, pt := range p.AllPoints() {
		p.SetState(pt, Occupied(Black))
	}
	pt := p.XYToLinear(10, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.StringAt(pt)
	}
}

func BenchmarkPlayAndUndo(b *testing.B) {
	p := NewPosition(19)
	pt := p.XYToLinear(10, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log, err := p.Play(LinearMove(pt))
		if err != nil {
			b.Fatal(err)
		}
		p.Undo(log)
	}
}
