// Package session owns all mutable game state and advances it one tick at a
// time: player movement, petal combat, mob behaviour, projectiles, loot and the
// Active/InventoryPanel/BuffsPanel/Dead state machine.
//
// A Session is single-threaded. The caller drives it with a wall-clock
// timestamp in seconds and reads a Snapshot after each tick.
package session

import (
	"errors"

	"github.com/rs/zerolog"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/dice"
	"chosenoffset.com/petalfield/internal/inventory"
	"chosenoffset.com/petalfield/internal/logging"
	"chosenoffset.com/petalfield/internal/loot"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/player"
	"chosenoffset.com/petalfield/internal/projectile"
	"chosenoffset.com/petalfield/internal/simulation"
	"chosenoffset.com/petalfield/internal/telemetry"
	"chosenoffset.com/petalfield/internal/weapon"
)

// State is the game state machine value
type State int

const (
	Active State = iota
	InventoryPanel
	BuffsPanel
	Dead
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case InventoryPanel:
		return "inventory"
	case BuffsPanel:
		return "buffs"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

var (
	// ErrWrongState is returned when a command is not valid in the current state
	ErrWrongState = errors.New("command not allowed in current state")
	// ErrBadSlot is returned for an out-of-range hotbar or inventory index
	ErrBadSlot = errors.New("slot index out of range")
	// ErrNoPendingSwap is returned when a hotbar click arrives with no inventory selection
	ErrNoPendingSwap = errors.New("no inventory selection pending")
)

const noSwap = -1

// Session is the single owner of all game state.
type Session struct {
	cfg     *simulation.Config
	roller  *dice.Roller
	log     zerolog.Logger
	trace   zerolog.Logger
	metrics *telemetry.Metrics

	// Persistent across respawns
	Progress  *player.Progress
	Hotbar    *weapon.Hotbar
	Inventory *inventory.Inventory

	// Rebuilt on every reset
	Player      *player.Player
	Mobs        []*mob.Mob // bosses first
	Projectiles []*projectile.Projectile
	Pickups     []loot.Pickup
	Angle       float64 // petal ring rotation

	state   State
	pending int
	facing  float64
	now     float64
}

// New creates a session in the Active state with a freshly spawned world.
// A nil metrics recorder is allowed.
func New(cfg *simulation.Config, roller *dice.Roller, logger zerolog.Logger, metrics *telemetry.Metrics) *Session {
	s := &Session{
		cfg:       cfg,
		roller:    roller,
		log:       logger.With().Str("component", "session").Logger(),
		metrics:   metrics,
		Progress:  player.NewProgress(cfg),
		Hotbar:    weapon.NewHotbar(weapon.Basic),
		Inventory: inventory.New(),
	}
	s.trace = logging.Sampled(s.log, 100)
	s.Reset(0)
	return s
}

// Reset rebuilds the transient world: a full-health player at the origin,
// freshly spawned mobs, and no projectiles or pickups. Inventory, hotbar and
// progression are kept.
func (s *Session) Reset(now float64) {
	s.now = now
	s.Player = player.New(s.cfg.Player, now)
	s.Projectiles = nil
	s.Pickups = nil
	s.Angle = 0
	s.facing = 0
	s.state = Active
	s.pending = noSwap

	world := s.cfg.World.Size
	s.Mobs = make([]*mob.Mob, 0, s.cfg.World.BossCount+s.cfg.World.MobCount)
	for i := 0; i < s.cfg.World.BossCount; i++ {
		s.Mobs = append(s.Mobs, mob.Spawn(mob.Boss, s.cfg.Boss, s.roller, world))
	}
	for i := 0; i < s.cfg.World.MobCount; i++ {
		s.Mobs = append(s.Mobs, mob.Spawn(mob.Regular, s.cfg.Regular, s.roller, world))
	}

	s.log.Info().
		Int("mobs", len(s.Mobs)).
		Int("level", s.Progress.Level).
		Int("inventory", s.Inventory.TotalItems()).
		Msg("Session reset")
}

// State returns the current state machine value
func (s *Session) State() State {
	return s.state
}

// Now returns the timestamp of the most recent tick or reset
func (s *Session) Now() float64 {
	return s.now
}

// PendingSwap returns the armed inventory index, if any
func (s *Session) PendingSwap() (int, bool) {
	return s.pending, s.pending != noSwap
}

// Config returns the rules the session runs with
func (s *Session) Config() *simulation.Config {
	return s.cfg
}

// Camera returns the world coordinate of the viewport's top-left corner for a
// camera centred on the player.
func (s *Session) Camera(viewW, viewH float64) geom.Point {
	return s.Player.Pos.Sub(geom.Point{X: viewW / 2, Y: viewH / 2})
}
