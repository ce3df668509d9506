package session

import (
	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/loot"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/projectile"
	"chosenoffset.com/petalfield/internal/weapon"
)

// Tick advances the simulation to now. target is the pointer position in
// world space. Nothing runs outside the Active state, and the tick stops as
// soon as the player dies.
func (s *Session) Tick(now float64, target geom.Point) {
	s.now = now
	if s.state != Active {
		return
	}
	if s.checkDeath() {
		return
	}

	world := s.cfg.World.Size
	p := s.Player

	p.Regenerate(now)
	if d := target.Sub(p.Pos); d.Len() > 0 {
		s.facing = d.Angle()
	}
	p.Steer(target, s.cfg.Player.Smoothing)
	p.Clamp(world)

	s.Angle += s.Progress.RotationSpeed
	s.resolveWeapons(now)

	s.updateProjectiles(now)
	if s.checkDeath() {
		return
	}

	s.updateMobs(now)
	if s.checkDeath() {
		return
	}

	s.collectPickups()
}

// checkDeath moves to Dead once the player has no health left
func (s *Session) checkDeath() bool {
	if !s.Player.Dead() {
		return false
	}
	s.state = Dead
	s.pending = noSwap
	s.metrics.PlayerDied()
	s.log.Info().
		Float64("t", s.now).
		Int("level", s.Progress.Level).
		Msg("Player died")
	return true
}

// resolveWeapons lets every active petal strike at most one mob, taking the
// first mob in reach in list order. A killing blow pays out its reward here,
// before a later phase can end the tick.
func (s *Session) resolveWeapons(now float64) {
	n := s.Hotbar.Len()
	for i := 0; i < n; i++ {
		w := s.Hotbar.Slot(i)
		w.Update(now)
		if !w.Active() {
			continue
		}
		pos := weapon.OrbitPosition(s.Player.Pos, s.Angle, s.Progress.OrbitRange, i, n)
		for _, m := range s.Mobs {
			if !m.InReach(pos) {
				continue
			}
			m.TakeDamage(w.Damage(), now)
			if m.NeedsLoot() {
				s.dropLoot(m)
			}
			w.Trigger(now)
			s.Player.MarkAttack(now)
			s.metrics.WeaponHit(w.Name())
			s.trace.Debug().
				Str("weapon", w.Name()).
				Stringer("tier", m.Tier).
				Float64("health", m.Health).
				Msg("Petal hit")
			break
		}
	}
}

func (s *Session) updateProjectiles(now float64) {
	ttl := s.cfg.Projectile.TTL
	world := s.cfg.World.Size
	for _, pr := range s.Projectiles {
		pr.Update(now, ttl)
		if pr.Alive && !pr.Pos.InBounds(world) {
			pr.Kill()
		}
		if pr.Hits(s.Player.Pos, s.cfg.Projectile.HitRadius) {
			pr.Kill()
			s.Player.Hurt(pr.Damage, now)
		}
	}

	alive := s.Projectiles[:0]
	for _, pr := range s.Projectiles {
		if pr.Alive {
			alive = append(alive, pr)
		}
	}
	for i := len(alive); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = alive
}

func (s *Session) updateMobs(now float64) {
	world := s.cfg.World.Size
	for _, m := range s.Mobs {
		if m.NeedsLoot() {
			s.dropLoot(m)
		}
		if !m.Alive() {
			if m.CanRespawn(now) {
				m.Respawn(s.roller, world)
				s.log.Debug().
					Stringer("tier", m.Tier).
					Float64("x", m.Pos.X).
					Float64("y", m.Pos.Y).
					Msg("Mob respawned")
			}
			continue
		}

		m.Update(s.Player.Pos, world)

		if m.TryRangedAttack(s.Player.Pos, now) {
			s.Projectiles = append(s.Projectiles, projectile.New(
				m.Pos, s.Player.Pos, now, s.cfg.Projectile.Speed, s.cfg.Projectile.Damage))
			s.trace.Debug().Stringer("tier", m.Tier).Msg("Projectile fired")
		}

		if m.InContact(s.Player.Pos) {
			s.Player.Knockback(m.Pos, m.Stats.Knockback)
			s.Player.Clamp(world)
			s.Player.Hurt(m.Stats.ContactDamage, now)
			if s.Player.Dead() {
				return
			}
		}
	}
}

// dropLoot performs the one-time death reward of a mob
func (s *Session) dropLoot(m *mob.Mob) {
	m.MarkLooted()

	world := s.cfg.World.Size
	for _, d := range loot.Drops(m.Tier, m.Pos, s.roller) {
		d.Pos = d.Pos.ClampBounds(world)
		s.Pickups = append(s.Pickups, d)
	}

	gained := s.Progress.AddXP(m.Stats.XP)
	s.metrics.MobKilled(m.Tier.String())
	s.metrics.LevelsGained(gained)

	s.log.Debug().
		Stringer("tier", m.Tier).
		Int("xp", m.Stats.XP).
		Int("pickups", len(s.Pickups)).
		Msg("Mob killed")
	if gained > 0 {
		s.log.Info().
			Int("level", s.Progress.Level).
			Int("points", s.Progress.Points).
			Msg("Level up")
	}
}

func (s *Session) collectPickups() {
	radius := s.cfg.World.PickupRadius
	kept := s.Pickups[:0]
	for _, d := range s.Pickups {
		if !d.Reachable(s.Player.Pos, radius) {
			kept = append(kept, d)
			continue
		}
		s.Inventory.Add(d.Template)
		s.metrics.PickupCollected(d.Template.Name)
		s.log.Debug().
			Str("weapon", d.Template.Name).
			Int("count", s.Inventory.Count(d.Template.Name)).
			Msg("Pickup collected")
	}
	s.Pickups = kept
}
