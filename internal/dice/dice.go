// Package dice wraps the single seedable random source shared by the whole
// simulation: spawn positions and loot rolls both draw from one Roller so a
// fixed seed replays a session exactly.
package dice

import (
	"math/rand"
	"time"

	"chosenoffset.com/petalfield/internal/core/geom"
)

// Roller handles random rolls with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewSeeded creates a Roller from a seed. A zero seed uses the wall clock.
func NewSeeded(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Float returns a value in [0, 1)
func (r *Roller) Float() float64 {
	return r.rng.Float64()
}

// Range returns a value in [lo, hi). If hi <= lo it returns lo.
func (r *Roller) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// IntRange returns an integer in [lo, hi] inclusive
func (r *Roller) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// PointIn returns a random integral point inside [-limit+margin, limit-margin]
// on both axes. When the margin swallows the whole area the origin is used.
func (r *Roller) PointIn(limit, margin float64) geom.Point {
	span := int(limit - margin)
	if span <= 0 {
		return geom.Point{}
	}
	return geom.Point{
		X: float64(r.IntRange(-span, span)),
		Y: float64(r.IntRange(-span, span)),
	}
}

// Weight is one row of a cumulative probability table: a roll strictly
// below Threshold (and not claimed by an earlier row) selects Value.
type Weight struct {
	Threshold float64
	Value     int
}

// Weighted rolls once against a cumulative table ordered by ascending
// threshold. If the roll clears every threshold the last row wins.
func (r *Roller) Weighted(table []Weight) int {
	if len(table) == 0 {
		return 0
	}
	return Pick(table, r.Float())
}

// Pick resolves a roll in [0, 1) against a cumulative table
func Pick(table []Weight, roll float64) int {
	for _, w := range table {
		if roll < w.Threshold {
			return w.Value
		}
	}
	return table[len(table)-1].Value
}
