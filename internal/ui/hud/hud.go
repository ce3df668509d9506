// Package hud draws a session snapshot: the scrolling arena, the on-screen
// controls, the minimap and XP tracker, and the inventory, buffs and death
// screens. It only reads snapshots and never touches session state.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/render"
	"chosenoffset.com/petalfield/internal/session"
	"chosenoffset.com/petalfield/internal/weapon"
)

var (
	mapGreen     = color.RGBA{34, 139, 34, 255}
	gridColor    = color.RGBA{30, 120, 30, 255}
	borderColor  = color.RGBA{200, 200, 200, 255}
	playerColor  = color.RGBA{255, 220, 100, 255}
	playerFlash  = color.RGBA{255, 100, 100, 255}
	beeYellow    = color.RGBA{255, 215, 0, 255}
	beeStripe    = color.RGBA{40, 40, 40, 255}
	mobFlash     = color.RGBA{255, 150, 150, 255}
	missileColor = color.RGBA{255, 50, 50, 255}
	white        = color.RGBA{255, 255, 255, 255}
	black        = color.RGBA{0, 0, 0, 255}
	healthBack   = color.RGBA{50, 0, 0, 255}
	mobHealth    = color.RGBA{255, 50, 50, 255}
	playerHealth = color.RGBA{50, 255, 50, 255}
)

const gridSpacing = 100

// HUD draws snapshots onto the screen
type HUD struct {
	r      render.Renderer
	layout Layout
}

// New creates a HUD for the given screen size
func New(r render.Renderer, width, height int) *HUD {
	return &HUD{r: r, layout: NewLayout(width, height)}
}

// SetSize re-lays out the UI for a new screen size
func (h *HUD) SetSize(width, height int) {
	if width != h.layout.Width || height != h.layout.Height {
		h.layout = NewLayout(width, height)
	}
}

// Layout returns the current clickable regions
func (h *HUD) Layout() Layout {
	return h.layout
}

// Draw renders the full frame for snap with the camera's top-left corner at cam
func (h *HUD) Draw(screen render.Image, snap session.Snapshot, cam geom.Point) {
	h.drawWorld(screen, snap, cam)
	h.drawControls(screen, snap)

	switch snap.State {
	case session.InventoryPanel:
		h.drawInventory(screen, snap)
	case session.BuffsPanel:
		h.drawBuffs(screen, snap)
	case session.Dead:
		h.drawDeath(screen)
	}
}

func (h *HUD) drawWorld(screen render.Image, snap session.Snapshot, cam geom.Point) {
	w, ht := float32(h.layout.Width), float32(h.layout.Height)
	screen.Fill(mapGreen)

	startX := math.Floor(cam.X/gridSpacing) * gridSpacing
	for x := startX; x < cam.X+float64(w)+gridSpacing; x += gridSpacing {
		sx := float32(x - cam.X)
		h.r.StrokeLine(screen, sx, 0, sx, ht, 1, gridColor)
	}
	startY := math.Floor(cam.Y/gridSpacing) * gridSpacing
	for y := startY; y < cam.Y+float64(ht)+gridSpacing; y += gridSpacing {
		sy := float32(y - cam.Y)
		h.r.StrokeLine(screen, 0, sy, w, sy, 1, gridColor)
	}

	ws := snap.WorldSize
	h.r.StrokeRect(screen, float32(-ws-cam.X), float32(-ws-cam.Y), float32(2*ws), float32(2*ws), 5, borderColor)

	for _, d := range snap.Pickups {
		h.drawPetal(screen, d.Pos.Sub(cam), d.Shape, d.Color, float32(d.Radius))
	}
	for _, m := range snap.Mobs {
		h.drawMob(screen, m, m.Pos.Sub(cam))
	}
	for _, p := range snap.Projectiles {
		h.drawProjectile(screen, p, p.Pos.Sub(cam))
	}
	for _, s := range snap.Hotbar {
		if s.Active {
			h.drawPetal(screen, s.Pos.Sub(cam), s.Shape, s.Color, 12)
		}
	}
	h.drawPlayer(screen, snap.Player, snap.Player.Pos.Sub(cam))
}

func (h *HUD) drawPetal(screen render.Image, at geom.Point, shape weapon.Shape, clr color.RGBA, radius float32) {
	x, y := float32(at.X), float32(at.Y)
	if shape == weapon.Square {
		h.r.FillRect(screen, x-radius, y-radius, 2*radius, 2*radius, clr)
		h.r.StrokeRect(screen, x-radius, y-radius, 2*radius, 2*radius, 2, white)
		return
	}
	h.r.FillCircle(screen, x, y, radius, clr)
	h.r.StrokeCircle(screen, x, y, radius, 2, white)
}

func (h *HUD) drawMob(screen render.Image, m session.MobView, at geom.Point) {
	x, y, r := float32(at.X), float32(at.Y), float32(m.Radius)

	body := beeYellow
	if m.Flash {
		body = mobFlash
	}
	h.r.FillCircle(screen, x, y, r, body)
	h.r.FillRect(screen, x-r*0.4, y-r*0.7, r*0.25, r*1.4, beeStripe)
	h.r.FillRect(screen, x+r*0.1, y-r*0.7, r*0.25, r*1.4, beeStripe)
	if m.Tier == mob.Boss {
		h.r.FillPolygon(screen, []float32{
			x - 20, y - r,
			x - 10, y - r - 20,
			x, y - r,
			x + 10, y - r - 20,
			x + 20, y - r,
		}, beeYellow)
	}
	h.r.StrokeCircle(screen, x, y, r, 2, black)

	if m.Health < m.MaxHealth {
		frac := float32(m.Health / m.MaxHealth)
		h.r.FillRect(screen, x-r, y-r-15, 2*r, 8, healthBack)
		h.r.FillRect(screen, x-r, y-r-15, 2*r*frac, 8, mobHealth)
	}
}

func (h *HUD) drawProjectile(screen render.Image, p session.ProjectileView, at geom.Point) {
	tip := at.Add(geom.Polar(p.Heading, 15))
	left := at.Add(geom.Polar(p.Heading+2.5, 10))
	right := at.Add(geom.Polar(p.Heading-2.5, 10))
	pts := []float32{
		float32(tip.X), float32(tip.Y),
		float32(left.X), float32(left.Y),
		float32(right.X), float32(right.Y),
	}
	h.r.FillPolygon(screen, pts, missileColor)
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		h.r.StrokeLine(screen, pts[2*i], pts[2*i+1], pts[2*j], pts[2*j+1], 1, white)
	}
}

func (h *HUD) drawPlayer(screen render.Image, p session.PlayerView, at geom.Point) {
	x, y, r := float32(at.X), float32(at.Y), float32(p.Radius)

	body := playerColor
	if p.Flash {
		body = playerFlash
	}
	h.r.FillCircle(screen, x, y, r, body)
	h.r.StrokeCircle(screen, x, y, r, 2, black)

	// eyes look toward the pointer
	for _, side := range []float64{-1, 1} {
		eye := at.Add(geom.Polar(p.Facing+side*0.55, 12))
		pupil := eye.Add(geom.Polar(p.Facing, 3))
		h.r.FillCircle(screen, float32(eye.X), float32(eye.Y), 5, white)
		h.r.FillCircle(screen, float32(pupil.X), float32(pupil.Y), 3, black)
	}
	// smile: short arc on the facing side
	const segments = 4
	prev := at.Add(geom.Polar(p.Facing-0.8, 9))
	for i := 1; i <= segments; i++ {
		next := at.Add(geom.Polar(p.Facing-0.8+1.6*float64(i)/segments, 9))
		h.r.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), 3, black)
		prev = next
	}

	frac := float32(0)
	if p.MaxHealth > 0 {
		frac = float32(p.Health / p.MaxHealth)
	}
	h.r.FillRect(screen, x-30, y+35, 60, 8, healthBack)
	h.r.FillRect(screen, x-30, y+35, 60*frac, 8, playerHealth)

	label := fmt.Sprintf("Lvl: %d", p.Level)
	tw, _ := h.r.MeasureText(label, 1)
	h.r.DrawText(screen, label, int(x)-tw/2, int(y)+45, white, 1)
}
