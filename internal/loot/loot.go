// Package loot decides what a dying mob leaves behind and models the pickups
// lying in the world.
package loot

import (
	"chosenoffset.com/petalfield/internal/core/geom"
	"chosenoffset.com/petalfield/internal/dice"
	"chosenoffset.com/petalfield/internal/mob"
	"chosenoffset.com/petalfield/internal/weapon"
)

// PickupRadius is the draw radius of a dropped petal
const PickupRadius = 10

// Pickup is a petal lying in the world waiting to be collected
type Pickup struct {
	Pos      geom.Point
	Template weapon.Template
	Radius   float64
}

// NewPickup drops a petal of the given kind at pos
func NewPickup(pos geom.Point, k weapon.Kind) Pickup {
	return Pickup{Pos: pos, Template: weapon.Lookup(k), Radius: PickupRadius}
}

// Reachable reports whether a player at p is close enough to collect it
func (d Pickup) Reachable(p geom.Point, radius float64) bool {
	return geom.Distance(d.Pos, p) < radius
}

// RegularTable is the cumulative rarity table for regular mob drops
var RegularTable = []dice.Weight{
	{Threshold: 0.09, Value: int(weapon.Glass)},
	{Threshold: 0.54, Value: int(weapon.Basic)},
	{Threshold: 1.00, Value: int(weapon.Light)},
}

type placement struct {
	offset geom.Point
	kind   weapon.Kind
}

// bossDrops is the fixed boss loot set, laid out around the death position
var bossDrops = []placement{
	{offset: geom.Point{X: -30}, kind: weapon.Glass},
	{offset: geom.Point{X: 30}, kind: weapon.Glass},
	{offset: geom.Point{Y: 30}, kind: weapon.Stinger},
}

// Roll picks the kind of a regular mob's drop
func Roll(r *dice.Roller) weapon.Kind {
	return weapon.Kind(r.Weighted(RegularTable))
}

// Drops returns the pickups a mob of the given tier leaves at pos
func Drops(tier mob.Tier, pos geom.Point, r *dice.Roller) []Pickup {
	if tier == mob.Boss {
		out := make([]Pickup, 0, len(bossDrops))
		for _, b := range bossDrops {
			out = append(out, NewPickup(pos.Add(b.offset), b.kind))
		}
		return out
	}
	return []Pickup{NewPickup(pos, Roll(r))}
}
