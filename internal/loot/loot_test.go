package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/dice"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/weapon"
)

func TestBossDropsAreFixed(t *testing.T) {
	pos := geom.Point{X: 100, Y: 200}
	drops := Drops(mob.Boss, pos, dice.NewSeeded(1))
	require.Len(t, drops, 3)

	assert.Equal(t, "Glass", drops[0].Template.Name)
	assert.Equal(t, geom.Point{X: 70, Y: 200}, drops[0].Pos)
	assert.Equal(t, "Glass", drops[1].Template.Name)
	assert.Equal(t, geom.Point{X: 130, Y: 200}, drops[1].Pos)
	assert.Equal(t, "Stinger", drops[2].Template.Name)
	assert.Equal(t, geom.Point{X: 100, Y: 230}, drops[2].Pos)
}

func TestRegularDropIsSingleAtPosition(t *testing.T) {
	r := dice.NewSeeded(5)
	pos := geom.Point{X: -40, Y: 12}
	for i := 0; i < 50; i++ {
		drops := Drops(mob.Regular, pos, r)
		require.Len(t, drops, 1)
		assert.Equal(t, pos, drops[0].Pos)
		assert.Contains(t, []string{"Glass", "Basic", "Light"}, drops[0].Template.Name)
	}
}

func TestRarityThresholds(t *testing.T) {
	assert.Equal(t, int(weapon.Glass), dice.Pick(RegularTable, 0.05))
	assert.Equal(t, int(weapon.Basic), dice.Pick(RegularTable, 0.3))
	assert.Equal(t, int(weapon.Light), dice.Pick(RegularTable, 0.8))
}

func TestRollDistribution(t *testing.T) {
	r := dice.NewSeeded(11)
	counts := map[weapon.Kind]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[Roll(r)]++
	}
	assert.InDelta(t, 0.09, float64(counts[weapon.Glass])/n, 0.02)
	assert.InDelta(t, 0.45, float64(counts[weapon.Basic])/n, 0.02)
	assert.InDelta(t, 0.46, float64(counts[weapon.Light])/n, 0.02)
	assert.Zero(t, counts[weapon.Stinger])
}

func TestReachable(t *testing.T) {
	p := NewPickup(geom.Point{}, weapon.Light)
	assert.True(t, p.Reachable(geom.Point{X: 34}, 35))
	assert.False(t, p.Reachable(geom.Point{X: 35}, 35))
	assert.Equal(t, float64(PickupRadius), p.Radius)
}
