package weapon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/petalfield/internal/core/geom"
)

func TestLookupTable(t *testing.T) {
	cases := []struct {
		kind     Kind
		name     string
		damage   float64
		shape    Shape
		cooldown float64
	}{
		{Basic, "Basic", 20, Circle, 3.0},
		{Light, "Light", 20, Circle, 1.5},
		{Glass, "Glass", 40, Square, 3.0},
		{Stinger, "Stinger", 80, Circle, 6.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := Lookup(tc.kind)
			assert.Equal(t, tc.name, tpl.Name)
			assert.Equal(t, tc.damage, tpl.Damage)
			assert.Equal(t, tc.shape, tpl.Shape)
			assert.Equal(t, tc.cooldown, tpl.Cooldown)
			assert.Equal(t, tc.name, tc.kind.String())
		})
	}
	assert.Equal(t, "Basic", Lookup(Kind(99)).Name)
}

func TestWeaponCooldownCycle(t *testing.T) {
	w := New(Lookup(Basic))
	require.True(t, w.Active())

	w.Trigger(10.0)
	assert.False(t, w.Active())

	w.Update(12.9)
	assert.False(t, w.Active())

	w.Update(13.0)
	assert.True(t, w.Active())
}

func TestActiveAtWithoutUpdate(t *testing.T) {
	w := New(Lookup(Basic))
	w.Trigger(10.0)
	assert.False(t, w.ActiveAt(12.9))
	assert.True(t, w.ActiveAt(13.0))
	assert.True(t, w.Active())
}

func TestTemplateRoundTripKeepsStats(t *testing.T) {
	w := New(Lookup(Stinger))
	w.Trigger(1)
	tpl := w.Template()
	assert.Equal(t, Lookup(Stinger), tpl)
}

func TestHotbarAlwaysFull(t *testing.T) {
	h := NewHotbar(Basic)
	for i := 0; i < h.Len(); i++ {
		require.NotNil(t, h.Slot(i))
	}
	assert.Nil(t, h.Slot(-1))
	assert.Nil(t, h.Slot(SlotCount))

	old, err := h.Replace(2, New(Lookup(Glass)))
	require.NoError(t, err)
	assert.Equal(t, "Basic", old.Name())
	assert.Equal(t, "Glass", h.Slot(2).Name())

	_, err = h.Replace(7, New(Lookup(Glass)))
	assert.Error(t, err)
	_, err = h.Replace(0, nil)
	assert.Error(t, err)
	assert.NotNil(t, h.Slot(0))
}

func TestOrbitPositionSpacing(t *testing.T) {
	center := geom.Point{X: 100, Y: -50}
	for i := 0; i < SlotCount; i++ {
		p := OrbitPosition(center, 0.3, 85, i, SlotCount)
		assert.InDelta(t, 85, geom.Distance(center, p), 1e-9)
	}

	p0 := OrbitPosition(geom.Point{}, 0, 10, 0, 4)
	p1 := OrbitPosition(geom.Point{}, 0, 10, 1, 4)
	assert.InDelta(t, 10, p0.X, 1e-9)
	assert.InDelta(t, 10, p1.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, p1.Angle(), 1e-9)

	assert.Equal(t, center, OrbitPosition(center, 1, 10, 0, 0))
}
