package hud

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/inventory"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/render"
	"chosenoffset.com/petalfield/internal/session"
	"chosenoffset.com/petalfield/internal/weapon"
)

type fakeImage struct {
	w, h   int
	filled color.Color
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *fakeImage) Size() (int, int)        { return f.w, f.h }
func (f *fakeImage) Fill(clr color.Color)    { f.filled = clr }
func (f *fakeImage) Clear()                  { f.filled = nil }
func (f *fakeImage) Dispose()                {}

func newFakeImage(w, h int) *fakeImage { return &fakeImage{w: w, h: h} }

type recordingRenderer struct {
	texts    []string
	polygons int
	circles  int
	rects    []color.Color
}

func (r *recordingRenderer) NewImage(w, h int) render.Image { return newFakeImage(w, h) }
func (r *recordingRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *recordingRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
}
func (r *recordingRenderer) FillRect(_ render.Image, _, _, _, _ float32, clr color.Color) {
	r.rects = append(r.rects, clr)
}
func (r *recordingRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *recordingRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *recordingRenderer) FillPolygon(render.Image, []float32, color.Color) { r.polygons++ }
func (r *recordingRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
}
func (r *recordingRenderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(7*len(text)) * scale), int(13 * scale)
}

func activeSnapshot() session.Snapshot {
	basic := weapon.Lookup(weapon.Basic)
	return session.Snapshot{
		State:      session.Active,
		WorldSize:  2500,
		RadarRange: 2000,
		Player: session.PlayerView{
			Pos: geom.Point{X: 10, Y: 20}, Radius: 25, Health: 80, MaxHealth: 100,
			Level: 2, XP: 10, XPRequired: 150, Points: 1, RotationSpeed: 0.04, OrbitRange: 80,
		},
		Mobs: []session.MobView{
			{Pos: geom.Point{X: 300}, Radius: 50, Health: 500, MaxHealth: 1000, Tier: mob.Boss},
			{Pos: geom.Point{X: -200}, Radius: 20, Health: 100, MaxHealth: 100, Tier: mob.Regular},
		},
		Projectiles: []session.ProjectileView{{Pos: geom.Point{X: 100}, Heading: 3.14}},
		Pickups: []session.PickupView{
			{Pos: geom.Point{Y: 100}, Radius: 10, Name: "Glass", Color: color.RGBA{230, 245, 255, 255}, Shape: weapon.Square},
		},
		Hotbar: []session.SlotView{
			{Name: "Basic", Color: basic.Color, Shape: basic.Shape, Active: true, Cooldown: 1},
			{Name: "Basic", Color: basic.Color, Shape: basic.Shape, Active: false, Cooldown: 0.5},
		},
		PendingSwap: -1,
	}
}

func TestLayoutHitTests(t *testing.T) {
	l := NewLayout(1280, 800)

	assert.True(t, l.Quit.Contains(20, 20), "edges are inclusive")
	assert.True(t, l.Quit.Contains(120, 60))
	assert.False(t, l.Quit.Contains(121, 60))

	assert.Equal(t, Rect{X: 20, Y: 730, W: 50, H: 50}, l.Hotbar[0])
	assert.Equal(t, Rect{X: 260, Y: 730, W: 50, H: 50}, l.Hotbar[4])

	i, ok := l.HotbarAt(85, 750)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = l.HotbarAt(75, 750)
	assert.False(t, ok, "gap between slots")

	assert.Equal(t, Rect{X: 150, Y: 260, W: 90, H: 90}, l.InventorySlot(8), "ninth entry wraps to the second row")
	i, ok = l.InventoryAt(270, 160, 3)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = l.InventoryAt(370, 160, 2)
	assert.False(t, ok, "cells beyond the entry count are not clickable")

	assert.Equal(t, Rect{X: 540, Y: 420, W: 200, H: 60}, l.Respawn)
	assert.Equal(t, Rect{X: 1070, Y: 30, W: 180, H: 180}, l.Minimap)
}

func TestSetSizeRelayouts(t *testing.T) {
	h := New(&recordingRenderer{}, 1280, 800)
	h.SetSize(800, 600)
	assert.Equal(t, 800, h.Layout().Width)
	assert.Equal(t, Rect{X: 650, Y: 30, W: 120, H: 50}, h.Layout().Exit)
}

func TestDrawActiveFrame(t *testing.T) {
	r := &recordingRenderer{}
	h := New(r, 1280, 800)
	screen := newFakeImage(1280, 800)
	snap := activeSnapshot()

	h.Draw(screen, snap, geom.Point{X: 10 - 640, Y: 20 - 400})

	assert.Equal(t, mapGreen, screen.filled)
	assert.Equal(t, 2, r.polygons, "one crown and one projectile")
	assert.Contains(t, r.texts, "Lvl: 2")
	assert.Contains(t, r.texts, "LEVEL 2")
	assert.Contains(t, r.texts, "10 / 150 XP")
	assert.Contains(t, r.rects, color.Color(cooldownShade), "the cooling slot is shaded")
	assert.NotContains(t, r.texts, "YOU DIED")
	assert.NotContains(t, r.texts, "INVENTORY")
}

func TestDrawPanels(t *testing.T) {
	snap := activeSnapshot()

	t.Run("inventory", func(t *testing.T) {
		r := &recordingRenderer{}
		s := snap
		s.State = session.InventoryPanel
		s.Inventory = []inventory.Entry{{Template: weapon.Lookup(weapon.Light), Count: 3}}
		New(r, 1280, 800).Draw(newFakeImage(1280, 800), s, geom.Point{})
		assert.Contains(t, r.texts, "INVENTORY")
		assert.Contains(t, r.texts, "x3")
		assert.Contains(t, r.texts, "Light")
	})

	t.Run("empty inventory", func(t *testing.T) {
		r := &recordingRenderer{}
		s := snap
		s.State = session.InventoryPanel
		New(r, 1280, 800).Draw(newFakeImage(1280, 800), s, geom.Point{})
		assert.Contains(t, r.texts, "Empty. Defeat bees to collect petals.")
	})

	t.Run("buffs", func(t *testing.T) {
		r := &recordingRenderer{}
		s := snap
		s.State = session.BuffsPanel
		New(r, 1280, 800).Draw(newFakeImage(1280, 800), s, geom.Point{})
		assert.Contains(t, r.texts, "Points: 1")
		assert.Contains(t, r.texts, "SPEED")
		assert.Contains(t, r.texts, "80 px")
	})

	t.Run("dead", func(t *testing.T) {
		r := &recordingRenderer{}
		s := snap
		s.State = session.Dead
		New(r, 1280, 800).Draw(newFakeImage(1280, 800), s, geom.Point{})
		assert.Contains(t, r.texts, "YOU DIED")
		assert.Contains(t, r.texts, "RESPAWN")
		assert.Contains(t, r.rects, color.Color(deathShade))
	})

	t.Run("pending swap hint", func(t *testing.T) {
		r := &recordingRenderer{}
		s := snap
		s.Inventory = []inventory.Entry{{Template: weapon.Lookup(weapon.Stinger), Count: 1}}
		s.PendingSwap = 0
		New(r, 1280, 800).Draw(newFakeImage(1280, 800), s, geom.Point{})
		assert.Contains(t, r.texts, "Click a hotbar slot to equip Stinger")
	})
}
