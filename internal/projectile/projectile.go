// Package projectile implements the straight-line missile fired by ranged mobs.
package projectile

import "chosenoffset.com/petalfield/internal/core/geom"

// Projectile travels in a fixed direction chosen at launch
type Projectile struct {
	Pos       geom.Point
	Vel       geom.Point
	SpawnTime float64
	Damage    float64
	Alive     bool
}

// New launches a projectile from `from` toward where target is right now.
// The heading is never updated after launch. A target on top of the spawn
// point yields a stationary projectile that simply expires.
func New(from, target geom.Point, now, speed, damage float64) *Projectile {
	return &Projectile{
		Pos:       from,
		Vel:       target.Sub(from).Normalize().Scale(speed),
		SpawnTime: now,
		Damage:    damage,
		Alive:     true,
	}
}

// Update advances the projectile one tick and expires it after ttl seconds
func (p *Projectile) Update(now, ttl float64) {
	if !p.Alive {
		return
	}
	p.Pos = p.Pos.Add(p.Vel)
	if now-p.SpawnTime > ttl {
		p.Alive = false
	}
}

// Hits reports whether a live projectile is within radius of target
func (p *Projectile) Hits(target geom.Point, radius float64) bool {
	return p.Alive && geom.Distance(p.Pos, target) < radius
}

// Kill ends the projectile's life
func (p *Projectile) Kill() {
	p.Alive = false
}

// Heading returns the direction of travel in radians
func (p *Projectile) Heading() float64 {
	return p.Vel.Angle()
}
