package projectile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/petalfield/internal/core/geom"
)

func TestVelocityFixedAtLaunch(t *testing.T) {
	p := New(geom.Point{}, geom.Point{X: 100, Y: 0}, 0, 7.5, 15)
	assert.InDelta(t, 7.5, p.Vel.X, 1e-9)
	assert.InDelta(t, 0, p.Vel.Y, 1e-9)

	p.Update(0.1, 4)
	p.Update(0.2, 4)
	assert.InDelta(t, 15, p.Pos.X, 1e-9)
	assert.InDelta(t, 0, p.Heading(), 1e-9)
	assert.True(t, p.Alive)
}

func TestCoincidentTargetDoesNotProduceNaN(t *testing.T) {
	p := New(geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5}, 0, 7.5, 15)
	p.Update(0.1, 4)
	assert.False(t, math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y))
	assert.Equal(t, geom.Point{X: 5, Y: 5}, p.Pos)
}

func TestExpiresAfterTTL(t *testing.T) {
	p := New(geom.Point{}, geom.Point{X: 0, Y: 1}, 10, 7.5, 15)
	p.Update(14.0, 4)
	assert.True(t, p.Alive)
	p.Update(14.01, 4)
	assert.False(t, p.Alive)

	pos := p.Pos
	p.Update(15, 4)
	assert.Equal(t, pos, p.Pos, "dead projectiles do not move")
}

func TestHitsOnlyWhileAlive(t *testing.T) {
	p := New(geom.Point{}, geom.Point{X: 1}, 0, 7.5, 15)
	assert.True(t, p.Hits(geom.Point{X: 20}, 30))
	assert.False(t, p.Hits(geom.Point{X: 40}, 30))
	p.Kill()
	assert.False(t, p.Hits(geom.Point{X: 20}, 30))
}
