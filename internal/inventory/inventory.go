// Package inventory provides the stacking petal inventory.
// Petals are stacked by name with quantities; entries keep the order in which
// each name was first added so the inventory panel stays stable.
package inventory

import (
	"errors"
	"fmt"
	"strings"

	"chosenoffset.com/petalfield/internal/weapon"
)

// ErrNoEntry is returned when an index does not name a stored entry
var ErrNoEntry = errors.New("no inventory entry at index")

// Entry represents a petal template and its quantity
type Entry struct {
	Template weapon.Template
	Count    int
}

// Inventory holds every petal the player is not currently wielding
type Inventory struct {
	entries []Entry

	// OnChange callback when inventory changes (for UI updates)
	OnChange func()
}

// New creates a new empty inventory
func New() *Inventory {
	return &Inventory{}
}

// Add stores one petal, stacking onto an existing entry of the same name
func (inv *Inventory) Add(t weapon.Template) {
	inv.AddN(t, 1)
}

// AddN stores count petals of the same template
func (inv *Inventory) AddN(t weapon.Template, count int) {
	if count <= 0 {
		return
	}
	if i := inv.indexOf(t.Name); i >= 0 {
		inv.entries[i].Count += count
	} else {
		inv.entries = append(inv.entries, Entry{Template: t, Count: count})
	}
	inv.notifyChange()
}

// Take removes one petal from the entry at index and returns its template.
// The entry disappears when its count reaches zero.
func (inv *Inventory) Take(index int) (weapon.Template, error) {
	if index < 0 || index >= len(inv.entries) {
		return weapon.Template{}, fmt.Errorf("%w %d", ErrNoEntry, index)
	}
	e := &inv.entries[index]
	t := e.Template
	e.Count--
	if e.Count <= 0 {
		inv.entries = append(inv.entries[:index], inv.entries[index+1:]...)
	}
	inv.notifyChange()
	return t, nil
}

// Entry returns the entry at index
func (inv *Inventory) Entry(index int) (Entry, bool) {
	if index < 0 || index >= len(inv.entries) {
		return Entry{}, false
	}
	return inv.entries[index], true
}

// Entries returns a copy of all entries in display order
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

// Has checks if the inventory contains at least one of the named petal
func (inv *Inventory) Has(name string) bool {
	return inv.indexOf(name) >= 0
}

// Count returns the quantity of a petal (0 if not present)
func (inv *Inventory) Count(name string) int {
	if i := inv.indexOf(name); i >= 0 {
		return inv.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct petal names stored
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// TotalItems returns the total count of all petals
func (inv *Inventory) TotalItems() int {
	total := 0
	for _, e := range inv.entries {
		total += e.Count
	}
	return total
}

// IsEmpty returns true if the inventory has no petals
func (inv *Inventory) IsEmpty() bool {
	return len(inv.entries) == 0
}

func (inv *Inventory) indexOf(name string) int {
	for i, e := range inv.entries {
		if e.Template.Name == name {
			return i
		}
	}
	return -1
}

// notifyChange calls the OnChange callback if set
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// String returns a compact representation such as {Basic: 1, Light: 2}
func (inv *Inventory) String() string {
	parts := make([]string, 0, len(inv.entries))
	for _, e := range inv.entries {
		parts = append(parts, fmt.Sprintf("%s: %d", e.Template.Name, e.Count))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
