// Package game connects a simulation session to the engine loop.
package game

import (
	"chosenoffset.com/petalfield/internal/render"
	"chosenoffset.com/petalfield/internal/session"
)

// handleKeys applies the keyboard shortcuts
func (m *Manager) handleKeys() {
	in := m.InputMgr
	state := m.Session.State()

	switch {
	case in.IsKeyJustPressed(render.KeyI):
		if state == session.InventoryPanel {
			m.command("close inventory", m.Session.ClosePanel())
		} else {
			m.open("open inventory", m.Session.OpenInventory())
		}
	case in.IsKeyJustPressed(render.KeyB):
		if state == session.BuffsPanel {
			m.command("close buffs", m.Session.ClosePanel())
		} else {
			m.open("open buffs", m.Session.OpenBuffs())
		}
	case in.IsKeyJustPressed(render.KeyR):
		if state == session.Dead {
			m.command("respawn", m.Session.Respawn(m.now))
		}
	}

	if in.IsKeyJustPressed(render.KeyF) && m.Engine != nil {
		m.fullscreen = !m.fullscreen
		m.Engine.SetFullscreen(m.fullscreen)
	}
}

// handleClick dispatches a left click at screen position (x, y) by state.
// It reports whether the click asked to quit.
func (m *Manager) handleClick(x, y int) bool {
	l := m.HUD.Layout()

	switch m.Session.State() {
	case session.Active:
		switch {
		case l.Quit.Contains(x, y):
			return true
		case l.Inventory.Contains(x, y):
			m.open("open inventory", m.Session.OpenInventory())
		case l.Buffs.Contains(x, y):
			m.open("open buffs", m.Session.OpenBuffs())
		default:
			if _, armed := m.Session.PendingSwap(); armed {
				if i, ok := l.HotbarAt(x, y); ok {
					m.command("equip", m.Session.ClickHotbar(i))
				}
			}
		}

	case session.InventoryPanel:
		if !m.accept() {
			return false
		}
		if l.Exit.Contains(x, y) {
			m.command("close inventory", m.Session.ClosePanel())
		} else if i, ok := l.InventoryAt(x, y, m.Session.Inventory.Len()); ok {
			m.command("select petal", m.Session.SelectInventory(i))
		}

	case session.BuffsPanel:
		if !m.accept() {
			return false
		}
		switch {
		case l.Exit.Contains(x, y):
			m.command("close buffs", m.Session.ClosePanel())
		case l.SpeedBuff.Contains(x, y):
			m.command("buy speed", m.Session.BuySpeed())
		case l.RangeBuff.Contains(x, y):
			m.command("buy range", m.Session.BuyRange())
		}

	case session.Dead:
		switch {
		case l.Quit.Contains(x, y):
			return true
		case l.Respawn.Contains(x, y):
			m.command("respawn", m.Session.Respawn(m.now))
		}
	}
	return false
}

// accept applies the panel click debounce
func (m *Manager) accept() bool {
	if m.now-m.lastClick < m.debounce {
		return false
	}
	m.lastClick = m.now
	return true
}

// open records a panel opening so the debounce window starts from it
func (m *Manager) open(name string, err error) {
	if err == nil {
		m.lastClick = m.now
	}
	m.command(name, err)
}

func (m *Manager) command(name string, err error) {
	if err != nil {
		m.log.Debug().Err(err).Str("command", name).Stringer("state", m.Session.State()).Msg("Command rejected")
	}
}
