package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/render"
	"chosenoffset.com/petalfield/internal/session"
)

var (
	quitColor      = color.RGBA{200, 50, 50, 255}
	buttonColor    = color.RGBA{80, 80, 80, 255}
	slotColor      = color.RGBA{50, 50, 50, 255}
	cooldownShade  = color.NRGBA{50, 50, 50, 180}
	pendingColor   = color.RGBA{255, 255, 0, 255}
	inventoryBack  = color.RGBA{20, 20, 20, 255}
	exitColor      = color.RGBA{150, 50, 50, 255}
	cellColor      = color.RGBA{60, 60, 60, 255}
	buffsBack      = color.RGBA{20, 25, 30, 255}
	speedColor     = color.RGBA{0, 200, 100, 255}
	rangeColor     = color.RGBA{0, 150, 255, 255}
	lockedColor    = color.RGBA{80, 80, 80, 255}
	deathShade     = color.NRGBA{0, 0, 0, 180}
	respawnColor   = color.RGBA{50, 150, 50, 255}
	minimapBack    = color.NRGBA{30, 30, 30, 200}
	minimapFrame   = color.RGBA{100, 100, 100, 255}
	minimapBee     = color.RGBA{255, 0, 0, 255}
	minimapQueen   = color.RGBA{255, 215, 0, 255}
	minimapPlayer  = color.RGBA{255, 255, 0, 255}
	xpBarBack      = color.RGBA{20, 20, 20, 255}
	xpBarFill      = color.RGBA{0, 255, 100, 255}
	secondaryText  = color.RGBA{200, 200, 200, 255}
	insufficientFg = color.RGBA{255, 100, 100, 255}
)

// button fills r and centres label in it
func (h *HUD) button(screen render.Image, r Rect, fill color.Color, label string, scale float64) {
	h.r.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill)
	h.centeredText(screen, label, r.X+r.W/2, r.Y+r.H/2, white, scale)
}

func (h *HUD) centeredText(screen render.Image, label string, cx, cy int, clr color.Color, scale float64) {
	tw, th := h.r.MeasureText(label, scale)
	h.r.DrawText(screen, label, cx-tw/2, cy-th/2, clr, scale)
}

func (h *HUD) drawControls(screen render.Image, snap session.Snapshot) {
	l := h.layout
	h.button(screen, l.Quit, quitColor, "QUIT", 1.5)
	h.button(screen, l.Inventory, buttonColor, "Inventory", 1)
	h.button(screen, l.Buffs, buttonColor, "Buffs", 1)

	for i, s := range snap.Hotbar {
		if i >= len(l.Hotbar) {
			break
		}
		r := l.Hotbar[i]
		x, y, w, ht := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		h.r.FillRect(screen, x, y, w, ht, slotColor)

		cx, cy := r.Center()
		h.drawPetal(screen, geom.Point{X: float64(cx), Y: float64(cy - 5)}, s.Shape, s.Color, 10)
		h.centeredText(screen, s.Name, cx, r.Y+r.H-8, white, 0.8)

		if !s.Active {
			shade := ht * float32(1-s.Cooldown)
			h.r.FillRect(screen, x, y, w, shade, cooldownShade)
		}
		if snap.PendingSwap >= 0 {
			h.r.StrokeRect(screen, x, y, w, ht, 2, pendingColor)
		} else {
			h.r.StrokeRect(screen, x, y, w, ht, 2, white)
		}
	}
	if snap.PendingSwap >= 0 && snap.PendingSwap < len(snap.Inventory) {
		hint := fmt.Sprintf("Click a hotbar slot to equip %s", snap.Inventory[snap.PendingSwap].Template.Name)
		h.r.DrawText(screen, hint, l.Hotbar[0].X, l.Hotbar[0].Y-20, pendingColor, 1)
	}

	h.drawMinimap(screen, snap)
	h.drawXPTracker(screen, snap.Player)
}

func (h *HUD) drawMinimap(screen render.Image, snap session.Snapshot) {
	r := h.layout.Minimap
	x, y, w, ht := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	h.r.FillRect(screen, x, y, w, ht, minimapBack)

	if snap.RadarRange > 0 {
		scale := float64(r.W) / snap.RadarRange
		cx, cy := r.Center()
		origin := snap.Player.Pos
		toMap := func(p geom.Point) (float32, float32) {
			d := p.Sub(origin).Scale(scale)
			return float32(float64(cx) + d.X), float32(float64(cy) + d.Y)
		}

		for _, m := range snap.Mobs {
			mx, my := toMap(m.Pos)
			if !r.Contains(int(mx), int(my)) {
				continue
			}
			if m.Tier == mob.Boss {
				h.r.FillCircle(screen, mx, my, 4, minimapQueen)
			} else {
				h.r.FillCircle(screen, mx, my, 2, minimapBee)
			}
		}
		h.r.FillCircle(screen, float32(cx), float32(cy), 3, minimapPlayer)

		bx, by := toMap(geom.Point{X: -snap.WorldSize, Y: -snap.WorldSize})
		side := float32(2 * snap.WorldSize * scale)
		h.r.StrokeRect(screen, bx, by, side, side, 1, white)
	}
	h.r.StrokeRect(screen, x, y, w, ht, 2, minimapFrame)
}

func (h *HUD) drawXPTracker(screen render.Image, p session.PlayerView) {
	r := h.layout.XPTracker
	h.r.DrawText(screen, fmt.Sprintf("LEVEL %d", p.Level), r.X, r.Y, white, 1.5)
	h.r.DrawText(screen, fmt.Sprintf("%d / %d XP", p.XP, p.XPRequired), r.X, r.Y+22, secondaryText, 1)

	frac := float32(0)
	if p.XPRequired > 0 {
		frac = float32(p.XP) / float32(p.XPRequired)
	}
	if frac > 1 {
		frac = 1
	}
	bx, by, bw := float32(r.X), float32(r.Y+r.H-10), float32(r.W)
	h.r.FillRect(screen, bx, by, bw, 8, xpBarBack)
	h.r.FillRect(screen, bx, by, bw*frac, 8, xpBarFill)
}

func (h *HUD) drawInventory(screen render.Image, snap session.Snapshot) {
	l := h.layout
	h.r.FillRect(screen, 0, 0, float32(l.Width), float32(l.Height), inventoryBack)
	h.r.DrawText(screen, "INVENTORY", gridOrigin, 60, white, 3)
	h.r.DrawText(screen, "Select a petal, then click a hotbar slot", gridOrigin, 110, secondaryText, 1)
	h.button(screen, l.Exit, exitColor, "EXIT", 1.5)

	if len(snap.Inventory) == 0 {
		h.r.DrawText(screen, "Empty. Defeat bees to collect petals.", gridOrigin, gridOrigin, secondaryText, 1.5)
		return
	}
	for i, e := range snap.Inventory {
		r := l.InventorySlot(i)
		h.r.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cellColor)
		cx, cy := r.Center()
		h.drawPetal(screen, geom.Point{X: float64(cx), Y: float64(cy - 10)}, e.Template.Shape, e.Template.Color, 15)
		h.centeredText(screen, e.Template.Name, cx, r.Y+r.H-22, white, 1)
		h.centeredText(screen, fmt.Sprintf("x%d", e.Count), cx, r.Y+r.H-8, secondaryText, 1)
		h.r.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, white)
	}
}

func (h *HUD) drawBuffs(screen render.Image, snap session.Snapshot) {
	l := h.layout
	p := snap.Player
	h.r.FillRect(screen, 0, 0, float32(l.Width), float32(l.Height), buffsBack)
	h.r.DrawText(screen, "BUFFS", 150, 60, white, 3)
	h.button(screen, l.Exit, exitColor, "EXIT", 1.5)

	pointsColor := color.Color(white)
	if p.Points == 0 {
		pointsColor = insufficientFg
	}
	h.centeredText(screen, fmt.Sprintf("Points: %d", p.Points), l.Width/2, l.SpeedBuff.Y-40, pointsColor, 2)

	h.buffOrb(screen, l.SpeedBuff, speedColor, p.Points > 0, "SPEED", fmt.Sprintf("%.3f rad/tick", p.RotationSpeed))
	h.buffOrb(screen, l.RangeBuff, rangeColor, p.Points > 0, "RANGE", fmt.Sprintf("%.0f px", p.OrbitRange))
}

func (h *HUD) buffOrb(screen render.Image, r Rect, clr color.Color, affordable bool, title, value string) {
	if !affordable {
		clr = lockedColor
	}
	cx, cy := r.Center()
	rad := float32(r.W) / 2
	h.r.FillCircle(screen, float32(cx), float32(cy), rad, clr)
	h.r.StrokeCircle(screen, float32(cx), float32(cy), rad, 2, white)
	h.centeredText(screen, title, cx, cy-10, white, 1.5)
	h.centeredText(screen, value, cx, cy+12, white, 1)
	h.centeredText(screen, "+1 point", cx, r.Y+r.H+15, secondaryText, 1)
}

func (h *HUD) drawDeath(screen render.Image) {
	l := h.layout
	h.r.FillRect(screen, 0, 0, float32(l.Width), float32(l.Height), deathShade)
	h.centeredText(screen, "YOU DIED", l.Width/2, l.Height/2-60, quitColor, 4)
	h.button(screen, l.Respawn, respawnColor, "RESPAWN", 2)
}
