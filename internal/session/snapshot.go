package session

import (
	"image/color"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/inventory"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/weapon"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// It shares no mutable state with the session.
type Snapshot struct {
	State       State
	Now         float64
	WorldSize   float64
	RadarRange  float64
	Player      PlayerView
	Mobs        []MobView
	Projectiles []ProjectileView
	Pickups     []PickupView
	Hotbar      []SlotView
	Inventory   []inventory.Entry
	PendingSwap int // -1 when no swap is armed
}

// PlayerView is the player's state for drawing
type PlayerView struct {
	Pos           geom.Point
	Radius        float64
	Health        float64
	MaxHealth     float64
	Facing        float64
	Flash         bool
	Level         int
	XP            int
	XPRequired    int
	Points        int
	RotationSpeed float64
	OrbitRange    float64
}

// MobView is a living mob
type MobView struct {
	Pos        geom.Point
	Radius     float64
	Health     float64
	MaxHealth  float64
	Tier       mob.Tier
	Aggressive bool
	Flash      bool
}

// ProjectileView is a projectile in flight
type ProjectileView struct {
	Pos     geom.Point
	Heading float64
}

// PickupView is a dropped petal
type PickupView struct {
	Pos    geom.Point
	Radius float64
	Name   string
	Color  color.RGBA
	Shape  weapon.Shape
}

// SlotView is one hotbar petal, including where it currently orbits
type SlotView struct {
	Pos      geom.Point
	Name     string
	Color    color.RGBA
	Shape    weapon.Shape
	Active   bool
	Cooldown float64 // 0 just fired .. 1 ready
}

// Snapshot captures the current state for drawing at time now
func (s *Session) Snapshot(now float64) Snapshot {
	flash := s.cfg.World.HitFlash
	p := s.Player

	snap := Snapshot{
		State:      s.state,
		Now:        now,
		WorldSize:  s.cfg.World.Size,
		RadarRange: s.cfg.World.RadarRange,
		Player: PlayerView{
			Pos:           p.Pos,
			Radius:        s.cfg.Player.Radius,
			Health:        p.Health,
			MaxHealth:     p.MaxHealth,
			Facing:        s.facing,
			Flash:         p.Flashing(now, flash),
			Level:         s.Progress.Level,
			XP:            s.Progress.XP,
			XPRequired:    s.Progress.Requirement(),
			Points:        s.Progress.Points,
			RotationSpeed: s.Progress.RotationSpeed,
			OrbitRange:    s.Progress.OrbitRange,
		},
		Inventory:   s.Inventory.Entries(),
		PendingSwap: s.pending,
	}

	for _, m := range s.Mobs {
		if !m.Alive() {
			continue
		}
		snap.Mobs = append(snap.Mobs, MobView{
			Pos:        m.Pos,
			Radius:     m.Stats.Radius,
			Health:     m.Health,
			MaxHealth:  m.MaxHealth(),
			Tier:       m.Tier,
			Aggressive: m.Aggressive,
			Flash:      m.Flashing(now, flash),
		})
	}

	for _, pr := range s.Projectiles {
		if pr.Alive {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Pos: pr.Pos, Heading: pr.Heading()})
		}
	}

	for _, d := range s.Pickups {
		snap.Pickups = append(snap.Pickups, PickupView{
			Pos:    d.Pos,
			Radius: d.Radius,
			Name:   d.Template.Name,
			Color:  d.Template.Color,
			Shape:  d.Template.Shape,
		})
	}

	n := s.Hotbar.Len()
	snap.Hotbar = make([]SlotView, 0, n)
	s.Hotbar.Each(func(i int, w *weapon.Weapon) {
		snap.Hotbar = append(snap.Hotbar, SlotView{
			Pos:      weapon.OrbitPosition(p.Pos, s.Angle, s.Progress.OrbitRange, i, n),
			Name:     w.Name(),
			Color:    w.Color(),
			Shape:    w.Shape(),
			Active:   w.ActiveAt(now),
			Cooldown: w.CooldownProgress(now),
		})
	})

	return snap
}
