package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/petalfield/internal/weapon"
)

func TestHotbarSwapScenario(t *testing.T) {
	s := newSession(t, 0, 0, nil)
	s.Inventory.AddN(weapon.Lookup(weapon.Light), 2)
	require.Equal(t, "Basic", s.Hotbar.Slot(0).Name())

	require.NoError(t, s.OpenInventory())
	require.NoError(t, s.SelectInventory(0))
	assert.Equal(t, Active, s.State(), "selecting returns to play")
	idx, armed := s.PendingSwap()
	require.True(t, armed)
	assert.Equal(t, 0, idx)

	require.NoError(t, s.ClickHotbar(0))

	assert.Equal(t, "Light", s.Hotbar.Slot(0).Name())
	assert.True(t, s.Hotbar.Slot(0).Active(), "a fresh instance is equipped")
	assert.Equal(t, 1, s.Inventory.Count("Basic"))
	assert.Equal(t, 1, s.Inventory.Count("Light"))
	assert.Equal(t, 2, s.Inventory.Len())
	_, armed = s.PendingSwap()
	assert.False(t, armed)
}

func TestSwapReturnsReconstructedTemplate(t *testing.T) {
	s := newSession(t, 0, 0, nil)
	_, err := s.Hotbar.Replace(2, weapon.New(weapon.Lookup(weapon.Stinger)))
	require.NoError(t, err)
	s.Inventory.Add(weapon.Lookup(weapon.Glass))

	require.NoError(t, s.OpenInventory())
	require.NoError(t, s.SelectInventory(0))
	require.NoError(t, s.ClickHotbar(2))

	e, ok := s.Inventory.Entry(0)
	require.True(t, ok)
	assert.Equal(t, weapon.Lookup(weapon.Stinger), e.Template)
	assert.Equal(t, "Glass", s.Hotbar.Slot(2).Name())
	assert.False(t, s.Inventory.Has("Glass"), "the last Glass left the inventory")
}

func TestSwapSameKindKeepsCount(t *testing.T) {
	s := newSession(t, 0, 0, nil)
	s.Inventory.Add(weapon.Lookup(weapon.Basic))

	require.NoError(t, s.OpenInventory())
	require.NoError(t, s.SelectInventory(0))
	require.NoError(t, s.ClickHotbar(4))

	assert.Equal(t, 1, s.Inventory.Count("Basic"))
	assert.Equal(t, 1, s.Inventory.Len())
}

func TestSwapRejections(t *testing.T) {
	s := newSession(t, 0, 0, nil)

	assert.True(t, errors.Is(s.SelectInventory(0), ErrWrongState))
	assert.True(t, errors.Is(s.ClickHotbar(0), ErrNoPendingSwap))
	assert.True(t, errors.Is(s.CancelSwap(), ErrNoPendingSwap))

	require.NoError(t, s.OpenInventory())
	assert.True(t, errors.Is(s.SelectInventory(0), ErrBadSlot), "empty inventory")
	assert.Equal(t, InventoryPanel, s.State())

	s.Inventory.Add(weapon.Lookup(weapon.Light))
	require.NoError(t, s.SelectInventory(0))

	assert.True(t, errors.Is(s.ClickHotbar(weapon.SlotCount), ErrBadSlot))
	_, armed := s.PendingSwap()
	assert.True(t, armed, "a bad hotbar slot leaves the selection armed")

	require.NoError(t, s.CancelSwap())
	_, armed = s.PendingSwap()
	assert.False(t, armed)
	assert.Equal(t, "Basic", s.Hotbar.Slot(0).Name())
}

func TestSwapWithStaleSelection(t *testing.T) {
	s := newSession(t, 0, 0, nil)
	s.Inventory.Add(weapon.Lookup(weapon.Light))
	s.Inventory.Add(weapon.Lookup(weapon.Glass))

	require.NoError(t, s.OpenInventory())
	require.NoError(t, s.SelectInventory(1))
	_, err := s.Inventory.Take(1)
	require.NoError(t, err)

	assert.True(t, errors.Is(s.ClickHotbar(0), ErrBadSlot))
	assert.Equal(t, "Basic", s.Hotbar.Slot(0).Name(), "hotbar untouched")
	assert.Equal(t, 1, s.Inventory.TotalItems())
	_, armed := s.PendingSwap()
	assert.False(t, armed)
}
