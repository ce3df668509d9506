// Package player implements the player avatar: pointer-following movement,
// health with rate-limited damage and passive regeneration, knockback, and the
// level/XP/buff progression that survives respawns.
package player

import (
	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/simulation"
	"chosenoffset.com/petalfield/internal/timer"
)

// Player is the transient avatar state, rebuilt on every respawn
type Player struct {
	Pos       geom.Point
	Health    float64
	MaxHealth float64

	hurt       timer.Cooldown
	hurtOnce   bool
	lastAttack float64
	lastRegen  float64

	regenAmount     float64
	regenInterval   float64
	regenAfterFight float64
}

// New creates a full-health player at the origin. now seeds the regen and
// attack timestamps.
func New(cfg simulation.PlayerConfig, now float64) *Player {
	return &Player{
		Health:          cfg.MaxHealth,
		MaxHealth:       cfg.MaxHealth,
		hurt:            timer.NewCooldown(cfg.HitCooldown),
		lastAttack:      now - cfg.RegenAfterFight,
		lastRegen:       now - cfg.RegenInterval,
		regenAmount:     cfg.RegenAmount,
		regenInterval:   cfg.RegenInterval,
		regenAfterFight: cfg.RegenAfterFight,
	}
}

// Steer moves the player a fraction alpha of the way toward target
func (p *Player) Steer(target geom.Point, alpha float64) {
	p.Pos = p.Pos.Add(target.Sub(p.Pos).Scale(alpha))
}

// Clamp keeps the player inside the world
func (p *Player) Clamp(worldSize float64) {
	p.Pos = p.Pos.ClampBounds(worldSize)
}

// Hurt applies damage unless the shared hit cooldown is still running.
// It reports whether the damage landed.
func (p *Player) Hurt(amount, now float64) bool {
	if !p.hurt.ReadyAt(now) {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.hurt.Trigger(now)
	p.hurtOnce = true
	return true
}

// Knockback pushes the player directly away from `from` by magnitude.
// Knockback is never rate limited.
func (p *Player) Knockback(from geom.Point, magnitude float64) {
	p.Pos = p.Pos.Add(p.Pos.Sub(from).Normalize().Scale(magnitude))
}

// MarkAttack records that one of the player's petals landed a hit
func (p *Player) MarkAttack(now float64) {
	p.lastAttack = now
}

// Regenerate heals by the regen amount when the player has neither attacked
// nor regenerated recently. It reports whether healing happened.
func (p *Player) Regenerate(now float64) bool {
	if now-p.lastAttack <= p.regenAfterFight || now-p.lastRegen <= p.regenInterval {
		return false
	}
	p.Health += p.regenAmount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	p.lastRegen = now
	return true
}

// Dead reports whether the player has no health left
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// LastHit returns when damage last landed
func (p *Player) LastHit() float64 {
	return p.hurt.LastTrigger()
}

// Flashing reports whether damage landed within the last window seconds
func (p *Player) Flashing(now, window float64) bool {
	return p.hurtOnce && now-p.hurt.LastTrigger() < window
}
