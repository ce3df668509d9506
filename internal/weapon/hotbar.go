package weapon

import (
	"fmt"
	"math"

	"chosenoffset.com/petalfield/internal/core/geom"
)

// SlotCount is the fixed number of hotbar slots
const SlotCount = 5

// Hotbar is the ring of equipped petals. Slots are always populated: a slot
// is replaced, never emptied.
type Hotbar struct {
	slots [SlotCount]*Weapon
}

// NewHotbar fills every slot with a fresh weapon of the given kind
func NewHotbar(k Kind) *Hotbar {
	h := &Hotbar{}
	for i := range h.slots {
		h.slots[i] = New(Lookup(k))
	}
	return h
}

// Len returns the number of slots
func (h *Hotbar) Len() int {
	return SlotCount
}

// Slot returns the weapon in slot i, or nil if i is out of range
func (h *Hotbar) Slot(i int) *Weapon {
	if i < 0 || i >= SlotCount {
		return nil
	}
	return h.slots[i]
}

// Replace swaps w into slot i and returns the weapon that was there
func (h *Hotbar) Replace(i int, w *Weapon) (*Weapon, error) {
	if i < 0 || i >= SlotCount {
		return nil, fmt.Errorf("hotbar slot %d out of range", i)
	}
	if w == nil {
		return nil, fmt.Errorf("hotbar slot %d: nil weapon", i)
	}
	old := h.slots[i]
	h.slots[i] = w
	return old, nil
}

// Each calls fn for every slot in order
func (h *Hotbar) Each(fn func(i int, w *Weapon)) {
	for i, w := range h.slots {
		fn(i, w)
	}
}

// OrbitPosition returns where slot i of n sits around center when the ring is
// rotated to angle with the given radius.
func OrbitPosition(center geom.Point, angle, radius float64, i, n int) geom.Point {
	if n <= 0 {
		return center
	}
	return center.Add(geom.Polar(angle+2*math.Pi*float64(i)/float64(n), radius))
}
