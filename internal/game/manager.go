package game

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/render"
	"chosenoffset.com/petalfield/internal/session"
	"chosenoffset.com/petalfield/internal/ui/hud"
)

// Manager drives one session from the engine loop: it turns input into
// session commands, ticks the simulation on a fixed clock and draws the
// resulting snapshot.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *session.Session
	HUD          *hud.HUD
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Engine is optional; when set the F key toggles fullscreen.
	Engine render.Engine

	log        zerolog.Logger
	now        float64
	step       float64
	debounce   float64
	lastClick  float64
	fullscreen bool
}

// NewManager creates a new game manager.
func NewManager(sess *session.Session, r render.Renderer, input render.InputManager, width, height int, logger zerolog.Logger) *Manager {
	cfg := sess.Config()
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Session:      sess,
		HUD:          hud.New(r, width, height),
		Renderer:     r,
		InputMgr:     input,
		log:          logger.With().Str("component", "game").Logger(),
		now:          sess.Now(),
		step:         1 / float64(cfg.World.TicksPerSecond),
		debounce:     cfg.World.UIDebounce,
		lastClick:    sess.Now() - cfg.World.UIDebounce,
		fullscreen:   cfg.Window.Fullscreen,
	}
}

// Now returns the simulation clock in seconds
func (m *Manager) Now() float64 {
	return m.now
}

// Update advances the clock by one tick, applies input and ticks the session.
func (m *Manager) Update() error {
	m.now += m.step

	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		m.log.Info().Float64("now", m.now).Msg("Escape pressed, quitting")
		return render.ErrQuit
	}
	m.handleKeys()

	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
		m.command("cancel swap", m.Session.CancelSwap())
	}
	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := m.InputMgr.GetCursorPosition()
		if m.handleClick(x, y) {
			m.log.Info().Float64("now", m.now).Msg("Quit button clicked")
			return render.ErrQuit
		}
	}

	m.Session.Tick(m.now, m.PointerWorld())
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	snap := m.Session.Snapshot(m.now)
	m.HUD.Draw(screen, snap, m.camera())
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.HUD.SetSize(outsideWidth, outsideHeight)
		m.log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("Screen resized")
	}
	return outsideWidth, outsideHeight
}

// PointerWorld returns the cursor position in world coordinates
func (m *Manager) PointerWorld() geom.Point {
	x, y := m.InputMgr.GetCursorPosition()
	return m.camera().Add(geom.Point{X: float64(x), Y: float64(y)})
}

func (m *Manager) camera() geom.Point {
	return m.Session.Camera(float64(m.ScreenWidth), float64(m.ScreenHeight))
}
