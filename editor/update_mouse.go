package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}

	before := m.buf.Version()
	p := m.screenToDocPos(msg.X, msg.Y)
	m.buf.Locate(m.buf.OffsetOf(p))
	if m.buf.Version() != before {
		m.notifyChange(slog.String("mouse", p.String()))
	}
	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
