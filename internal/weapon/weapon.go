// Package weapon models petals: the orbiting weapons that ring the player.
// Every petal kind maps to a fixed stat record; a Weapon is one live instance
// of a kind with its own cooldown.
package weapon

import (
	"fmt"
	"image/color"

	"chosenoffset.com/petalfield/internal/timer"
)

// Kind identifies a petal species
type Kind int

const (
	Basic Kind = iota
	Light
	Glass
	Stinger
)

// Shape is how a petal is drawn
type Shape int

const (
	Circle Shape = iota
	Square
)

// Template is the stat record of a petal. Inventory entries and dropped
// pickups carry templates; hotbar slots carry Weapons built from them.
type Template struct {
	Kind     Kind
	Name     string
	Color    color.RGBA
	Damage   float64
	Shape    Shape
	Cooldown float64 // seconds
}

var templates = map[Kind]Template{
	Basic:   {Kind: Basic, Name: "Basic", Color: color.RGBA{0, 200, 255, 255}, Damage: 20, Shape: Circle, Cooldown: 3.0},
	Light:   {Kind: Light, Name: "Light", Color: color.RGBA{255, 255, 200, 255}, Damage: 20, Shape: Circle, Cooldown: 1.5},
	Glass:   {Kind: Glass, Name: "Glass", Color: color.RGBA{230, 245, 255, 255}, Damage: 40, Shape: Square, Cooldown: 3.0},
	Stinger: {Kind: Stinger, Name: "Stinger", Color: color.RGBA{255, 140, 0, 255}, Damage: 80, Shape: Circle, Cooldown: 6.0},
}

// Lookup returns the stat record for a kind. Unknown kinds fall back to Basic.
func Lookup(k Kind) Template {
	if t, ok := templates[k]; ok {
		return t
	}
	return templates[Basic]
}

// String returns the display name of the kind
func (k Kind) String() string {
	if t, ok := templates[k]; ok {
		return t.Name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Weapon is a live petal instance
type Weapon struct {
	kind   Kind
	name   string
	color  color.RGBA
	damage float64
	shape  Shape
	cd     timer.Cooldown
}

// New creates an active weapon from a template
func New(t Template) *Weapon {
	return &Weapon{
		kind:   t.Kind,
		name:   t.Name,
		color:  t.Color,
		damage: t.Damage,
		shape:  t.Shape,
		cd:     timer.NewCooldown(t.Cooldown),
	}
}

// Template reconstructs a template from the weapon's current stats
func (w *Weapon) Template() Template {
	return Template{
		Kind:     w.kind,
		Name:     w.name,
		Color:    w.color,
		Damage:   w.damage,
		Shape:    w.shape,
		Cooldown: w.cd.Duration(),
	}
}

// Update reactivates the weapon once its cooldown has elapsed
func (w *Weapon) Update(now float64) {
	w.cd.Refresh(now)
}

// Trigger starts the weapon's cooldown
func (w *Weapon) Trigger(now float64) {
	w.cd.Trigger(now)
}

// Active reports whether the weapon may take part in collisions
func (w *Weapon) Active() bool {
	return w.cd.Ready()
}

// ActiveAt refreshes the cooldown at now and reports whether the weapon is ready
func (w *Weapon) ActiveAt(now float64) bool {
	return w.cd.ReadyAt(now)
}

// Kind returns the petal kind
func (w *Weapon) Kind() Kind { return w.kind }

// Name returns the petal name
func (w *Weapon) Name() string { return w.name }

// Damage returns the damage dealt per hit
func (w *Weapon) Damage() float64 { return w.damage }

// Color returns the draw colour
func (w *Weapon) Color() color.RGBA { return w.color }

// Shape returns the draw shape
func (w *Weapon) Shape() Shape { return w.shape }

// CooldownProgress returns 0..1 through the current cooldown window
func (w *Weapon) CooldownProgress(now float64) float64 {
	return w.cd.Progress(now)
}
