// Package playout provides a uniform-random rollout driver over a
// kiri.Position, for exercising the rule engine in bulk (e.g. as the
// inner loop of a Monte-Carlo search, or as a smoke test that legality
// checking terminates in a reasonable number of moves).
package playout

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/y-ich/kiri"
)

// Randomness is the seam a caller can use to make a rollout
// deterministic in tests — the only RNG abstraction a uniform-random
// playout needs.
type Randomness interface {
	Intn(n int) int
}

type mathRandSource struct{ r *rand.Rand }

func (m mathRandSource) Intn(n int) int { return m.r.Intn(n) }

// DefaultRandomness returns a Randomness backed by math/rand, seeded
// from the current time.
func DefaultRandomness() Randomness {
	return mathRandSource{rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Config configures Run. A zero Config uses default randomness and the
// 1000-move safety cap from S5.
type Config struct {
	Randomness Randomness
	MaxMoves   int // 0 means the S5 default of 1000
}

// Result summarizes one completed rollout.
type Result struct {
	Moves int
	Score float64
}

// Run plays a uniform-random game to completion on p: each move, walk the
// empty points in a rotation starting at a random index and play the
// first one that is legal and does not
// fill the mover's own eye (per p.IsEye), else pass. Stops at two
// consecutive passes or at the move cap, whichever comes first — the
// move cap exists only to bound pathological non-terminating sequences,
// since superko is out of scope and positional cycles are
// possible in principle.
func Run(p *kiri.Position, cfg Config) Result {
	rnd := cfg.Randomness
	if rnd == nil {
		rnd = DefaultRandomness()
	}
	maxMoves := cfg.MaxMoves
	if maxMoves <= 0 {
		maxMoves = 1000
	}

	moves := 0
	consecutivePasses := 0
	for consecutivePasses < 2 && moves < maxMoves {
		if playOneRandomMove(p, rnd) {
			consecutivePasses = 0
		} else {
			p.Play(kiri.PassMove)
			consecutivePasses++
		}
		moves++
	}

	score := p.Score()
	logger().Debug("rollout finished", zap.Int("moves", moves), zap.Float64("score", score))
	return Result{Moves: moves, Score: score}
}

// playOneRandomMove tries every empty point in a random rotation starting
// from a random index and plays the first one that is both not an eye
// fill and legal. Returns false if nothing could be played, meaning the
// caller should pass.
func playOneRandomMove(p *kiri.Position, rnd Randomness) bool {
	candidates := p.Empties()
	if len(candidates) == 0 {
		return false
	}

	start := rnd.Intn(len(candidates))
	n := len(candidates)
	for k := 0; k < n; k++ {
		pt := candidates[(start+k)%n]
		if p.IsEye(pt) == kiri.Occupied(p.Turn()) {
			continue
		}
		if _, err := p.Play(kiri.LinearMove(pt)); err == nil {
			return true
		}
	}
	return false
}

func logger() *zap.Logger { return kiri.Logger() }
