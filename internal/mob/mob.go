// Package mob implements the hostile creatures of the arena. Regular mobs and
// bosses share one entity type; everything that differs between them is data
// in the tier's Stats, copied in once at spawn.
package mob

import (
	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/dice"
	"chosenoffset.com/petalfield/internal/simulation"
	"chosenoffset.com/petalfield/internal/timer"
)

// Tier classifies a mob
type Tier int

const (
	Regular Tier = iota
	Boss
)

// String returns the tier name used in logs and labels
func (t Tier) String() string {
	switch t {
	case Boss:
		return "boss"
	default:
		return "regular"
	}
}

// State is the lifecycle state of a mob
type State int

const (
	Passive State = iota
	Aggressive
	Dead
)

// Stats is the tier-specific stat record
type Stats = simulation.TierConfig

// StatsFor selects the stat record of a tier from the config
func StatsFor(cfg *simulation.Config, t Tier) Stats {
	if t == Boss {
		return cfg.Boss
	}
	return cfg.Regular
}

// Mob is a single hostile creature
type Mob struct {
	Tier  Tier
	Stats Stats

	Pos         geom.Point
	Health      float64
	Aggressive  bool
	LastHitTime float64
	DeathTime   float64
	LootDropped bool

	ranged timer.Cooldown
	hit    bool // LastHitTime is meaningful
}

// Spawn creates a passive mob at a random position inside the tier's safe margin
func Spawn(tier Tier, stats Stats, roller *dice.Roller, worldSize float64) *Mob {
	m := &Mob{
		Tier:   tier,
		Stats:  stats,
		ranged: timer.NewCooldown(stats.RangedInterval),
	}
	m.Respawn(roller, worldSize)
	return m
}

// MaxHealth returns the tier's full health
func (m *Mob) MaxHealth() float64 {
	return m.Stats.MaxHealth
}

// Alive reports whether the mob has health left
func (m *Mob) Alive() bool {
	return m.Health > 0
}

// State derives the lifecycle state
func (m *Mob) State() State {
	switch {
	case !m.Alive():
		return Dead
	case m.Aggressive:
		return Aggressive
	default:
		return Passive
	}
}

// TakeDamage applies a hit. Any hit makes the mob aggressive; the hit that
// takes health to zero stamps the death time. Dead mobs ignore damage.
func (m *Mob) TakeDamage(amount, now float64) {
	if !m.Alive() {
		return
	}
	m.Health -= amount
	m.LastHitTime = now
	m.hit = true
	m.Aggressive = true
	if m.Health <= 0 {
		m.Health = 0
		m.DeathTime = now
	}
}

// Update chases target while aggressive and keeps the mob inside the world
func (m *Mob) Update(target geom.Point, worldSize float64) {
	if !m.Alive() {
		return
	}
	if m.Aggressive {
		dir := target.Sub(m.Pos).Normalize()
		m.Pos = m.Pos.Add(dir.Scale(m.Stats.Speed))
	}
	m.Pos = m.Pos.ClampBounds(worldSize)
}

// NeedsLoot reports whether the mob died and has not yet rolled its loot
func (m *Mob) NeedsLoot() bool {
	return !m.Alive() && !m.LootDropped
}

// MarkLooted records that the death loot roll happened
func (m *Mob) MarkLooted() {
	m.LootDropped = true
}

// CanRespawn reports whether a dead mob has waited out its respawn timer.
// Always false for living mobs.
func (m *Mob) CanRespawn(now float64) bool {
	return !m.Alive() && now-m.DeathTime >= m.Stats.RespawnSeconds
}

// Respawn restores full health at a new random position and clears every
// transient flag.
func (m *Mob) Respawn(roller *dice.Roller, worldSize float64) {
	m.Health = m.Stats.MaxHealth
	m.Pos = roller.PointIn(worldSize, m.Stats.SpawnMargin)
	m.Aggressive = false
	m.LootDropped = false
	m.DeathTime = 0
	m.LastHitTime = 0
	m.hit = false
	m.ranged = timer.NewCooldown(m.Stats.RangedInterval)
}

// TryRangedAttack reports whether the mob fires at target this tick. Only
// ranged tiers fire, only while aggressive and within engagement range, and
// no more often than the tier's ranged interval.
func (m *Mob) TryRangedAttack(target geom.Point, now float64) bool {
	if !m.Stats.Ranged || m.State() != Aggressive {
		return false
	}
	if geom.Distance(m.Pos, target) >= m.Stats.EngagementRange {
		return false
	}
	if !m.ranged.ReadyAt(now) {
		return false
	}
	m.ranged.Trigger(now)
	return true
}

// InContact reports whether the mob can touch the player at p this tick
func (m *Mob) InContact(p geom.Point) bool {
	if !m.Alive() {
		return false
	}
	if !m.Aggressive && !m.Stats.ContactPassive {
		return false
	}
	return geom.Distance(m.Pos, p) < m.Stats.ContactRadius
}

// InReach reports whether a petal at p is close enough to hit the mob
func (m *Mob) InReach(p geom.Point) bool {
	return m.Alive() && geom.Distance(m.Pos, p) < m.Stats.HitRadius
}

// Flashing reports whether the mob was hit within the last window seconds
func (m *Mob) Flashing(now, window float64) bool {
	return m.hit && now-m.LastHitTime < window
}
