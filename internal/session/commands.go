package session

import (
	"fmt"

	"chosenoffset.com/petalfield/internal/weapon"
)

// OpenInventory pauses the simulation and shows the inventory panel
func (s *Session) OpenInventory() error {
	if s.state != Active {
		return ErrWrongState
	}
	s.state = InventoryPanel
	return nil
}

// OpenBuffs pauses the simulation and shows the buff shop
func (s *Session) OpenBuffs() error {
	if s.state != Active {
		return ErrWrongState
	}
	s.state = BuffsPanel
	return nil
}

// ClosePanel returns from either panel to Active
func (s *Session) ClosePanel() error {
	if s.state != InventoryPanel && s.state != BuffsPanel {
		return ErrWrongState
	}
	s.state = Active
	return nil
}

// SelectInventory arms a swap of inventory entry i into the next clicked
// hotbar slot and resumes play.
func (s *Session) SelectInventory(i int) error {
	if s.state != InventoryPanel {
		return ErrWrongState
	}
	if _, ok := s.Inventory.Entry(i); !ok {
		return fmt.Errorf("inventory entry %d: %w", i, ErrBadSlot)
	}
	s.pending = i
	s.state = Active
	s.log.Debug().Int("entry", i).Msg("Swap armed")
	return nil
}

// ClickHotbar completes an armed swap: the selected inventory petal replaces
// hotbar slot i and the old petal goes back into the inventory.
func (s *Session) ClickHotbar(i int) error {
	if s.state != Active {
		return ErrWrongState
	}
	if s.pending == noSwap {
		return ErrNoPendingSwap
	}
	old := s.Hotbar.Slot(i)
	if old == nil {
		return fmt.Errorf("hotbar slot %d: %w", i, ErrBadSlot)
	}

	idx := s.pending
	s.pending = noSwap
	if _, ok := s.Inventory.Entry(idx); !ok {
		return fmt.Errorf("inventory entry %d: %w", idx, ErrBadSlot)
	}

	// Add appends or increments, so idx still names the selected entry
	s.Inventory.Add(old.Template())
	tpl, err := s.Inventory.Take(idx)
	if err != nil {
		return fmt.Errorf("failed to take inventory entry %d: %w", idx, err)
	}
	if _, err := s.Hotbar.Replace(i, weapon.New(tpl)); err != nil {
		return fmt.Errorf("failed to equip %s: %w", tpl.Name, err)
	}

	s.log.Debug().
		Int("slot", i).
		Str("equipped", tpl.Name).
		Str("returned", old.Name()).
		Msg("Hotbar swap")
	return nil
}

// CancelSwap disarms a pending swap
func (s *Session) CancelSwap() error {
	if s.pending == noSwap {
		return ErrNoPendingSwap
	}
	s.pending = noSwap
	return nil
}

// Respawn resets the world after death
func (s *Session) Respawn(now float64) error {
	if s.state != Dead {
		return ErrWrongState
	}
	s.Reset(now)
	return nil
}

// BuySpeed spends level points on petal rotation speed
func (s *Session) BuySpeed() error {
	if s.state != BuffsPanel {
		return ErrWrongState
	}
	if err := s.Progress.BuySpeed(); err != nil {
		return err
	}
	s.log.Info().Float64("rotationSpeed", s.Progress.RotationSpeed).Msg("Speed buff bought")
	return nil
}

// BuyRange spends level points on petal orbit range
func (s *Session) BuyRange() error {
	if s.state != BuffsPanel {
		return ErrWrongState
	}
	if err := s.Progress.BuyRange(); err != nil {
		return err
	}
	s.log.Info().Float64("orbitRange", s.Progress.OrbitRange).Msg("Range buff bought")
	return nil
}
