package navbar

import tea "github.com/charmbracelet/bubbletea"

// TapHandler is invoked with the index of the tapped button within its zone.
// For the back button, returning false suppresses the built-in back action;
// returning true lets it proceed. A nil handler proceeds.
type TapHandler func(index int) bool

// Navigator is the optional host navigation handle. When present it takes
// precedence over the registry's global back action.
type Navigator interface {
	Back()
}

// DismissKeyboardMsg asks the host program to blur whatever text input is
// focused. It is emitted fire-and-forget when a button with auto-dismiss is
// tapped; the dispatcher does not wait for it.
type DismissKeyboardMsg struct{}

func dismissKeyboard() tea.Msg {
	return DismissKeyboardMsg{}
}

// lockKey identifies one button's reentrancy guard.
type lockKey struct {
	side  Side
	index int
}

// tap runs the dispatch protocol for one button: drop the tap if the button
// is still busy, otherwise lock it, request keyboard dismissal, invoke the
// side handler, and fall through to the back action for the back item unless
// the handler returned false.
//
// The unlock is deferred so it runs on every exit path. A panicking handler
// still propagates, but the button never stays stuck.
func (b *Bar) tap(side Side, index int) tea.Cmd {
	items := b.zoneItems(side)
	if index < 0 || index >= len(items) {
		return nil
	}
	item := items[index]

	if b.cfg.lock {
		key := lockKey{side: side, index: index}
		if b.locks[key] {
			return nil // duplicate tap while busy: ignored, not queued
		}
		b.locks[key] = true
		defer delete(b.locks, key)
	}

	var cmd tea.Cmd
	if b.cfg.dismissKeyboard {
		cmd = dismissKeyboard
	}

	allow := true
	if handler := b.zoneHandler(side); handler != nil {
		allow = handler(index)
	}
	if item.IsBack() && allow {
		b.goBack()
	}
	return cmd
}

// goBack prefers the configured navigation handle, then the registry's
// global back action. With neither wired up it is a silent no-op, a valid
// state during incremental integration.
func (b *Bar) goBack() {
	if b.cfg.navigator != nil {
		b.cfg.navigator.Back()
		return
	}
	if fn := b.reg.BackAction(); fn != nil {
		fn()
	}
}

func (b *Bar) zoneItems(side Side) []Item {
	if side == SideLeft {
		return b.cfg.left
	}
	return b.cfg.right
}

func (b *Bar) zoneHandler(side Side) TapHandler {
	if side == SideLeft {
		return b.cfg.onLeft
	}
	return b.cfg.onRight
}
