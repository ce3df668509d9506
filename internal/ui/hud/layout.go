package hud

import "chosenoffset.com/petalfield/internal/weapon"

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r, edges included
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Center returns the middle of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

const (
	hotbarSlotSize = 50
	hotbarPitch    = 60

	gridColumns  = 8
	gridSlotSize = 90
	gridPitch    = 110
	gridOrigin   = 150

	minimapSize = 180
)

// Layout holds every clickable and fixed region for one screen size.
type Layout struct {
	Width, Height int

	Quit      Rect
	Inventory Rect
	Buffs     Rect
	Respawn   Rect
	Exit      Rect
	SpeedBuff Rect
	RangeBuff Rect
	Minimap   Rect
	XPTracker Rect
	Hotbar    [weapon.SlotCount]Rect
}

// NewLayout places the UI for a width x height screen
func NewLayout(width, height int) Layout {
	l := Layout{
		Width:     width,
		Height:    height,
		Quit:      Rect{X: 20, Y: 20, W: 100, H: 40},
		Inventory: Rect{X: 20, Y: height - 110, W: 100, H: 30},
		Buffs:     Rect{X: 20, Y: height - 150, W: 100, H: 30},
		Respawn:   Rect{X: width/2 - 100, Y: height/2 + 20, W: 200, H: 60},
		Exit:      Rect{X: width - 150, Y: 30, W: 120, H: 50},
		SpeedBuff: Rect{X: width/2 - 200, Y: height/2 - 75, W: 150, H: 150},
		RangeBuff: Rect{X: width/2 + 50, Y: height/2 - 75, W: 150, H: 150},
		Minimap:   Rect{X: width - minimapSize - 30, Y: 30, W: minimapSize, H: minimapSize},
		XPTracker: Rect{X: width - minimapSize - 30, Y: 225, W: minimapSize, H: 50},
	}
	for i := range l.Hotbar {
		l.Hotbar[i] = Rect{X: 20 + i*hotbarPitch, Y: height - 70, W: hotbarSlotSize, H: hotbarSlotSize}
	}
	return l
}

// InventorySlot returns the grid cell of inventory entry i
func (l Layout) InventorySlot(i int) Rect {
	return Rect{
		X: gridOrigin + (i%gridColumns)*gridPitch,
		Y: gridOrigin + (i/gridColumns)*gridPitch,
		W: gridSlotSize,
		H: gridSlotSize,
	}
}

// HotbarAt returns the hotbar slot under the point
func (l Layout) HotbarAt(px, py int) (int, bool) {
	for i, r := range l.Hotbar {
		if r.Contains(px, py) {
			return i, true
		}
	}
	return 0, false
}

// InventoryAt returns the inventory entry under the point, given n entries
func (l Layout) InventoryAt(px, py, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if l.InventorySlot(i).Contains(px, py) {
			return i, true
		}
	}
	return 0, false
}
