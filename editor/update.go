package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romycode/xx/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		m.log.Debug("quit requested")
		return m, tea.Quit
	}
	if !m.focused {
		return m, nil
	}

	before := m.buf.Version()
	m.applyKey(msg)
	if m.buf.Version() == before {
		return m, nil
	}

	m.notifyChange(slog.String("key", msg.String()))
	return m, nil
}

// notifyChange re-renders after a buffer mutation, logs it and forwards it
// to the OnChange hook.
func (m *Model) notifyChange(trigger slog.Attr) {
	m.syncFromBuffer()
	m.followCursor()

	ev := buildChangeEvent(m.buf)
	m.log.Debug("buffer changed",
		trigger,
		slog.String("kind", ev.Change.Kind.String()),
		slog.String("state", m.buf.String()),
	)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m Model) applyKey(msg tea.KeyMsg) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertString(string(msg.Runes))
		return
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.DirUp, false, false)
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.DirDown, false, false)
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.DirLeft, false, true)
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.DirRight, false, true)

	case key.Matches(msg, km.UpLineStart):
		m.buf.Move(buffer.DirUp, true, false)
	case key.Matches(msg, km.DownLineStart):
		m.buf.Move(buffer.DirDown, true, false)
	case key.Matches(msg, km.UpLineEnd):
		m.buf.Move(buffer.DirUp, false, true)
	case key.Matches(msg, km.DownLineEnd):
		m.buf.Move(buffer.DirDown, false, true)

	case key.Matches(msg, km.Backspace):
		m.buf.Remove()
	case key.Matches(msg, km.Delete):
		m.buf.RemoveAt(m.buf.Cursor())
	case key.Matches(msg, km.Enter):
		m.buf.Insert('\n')

	default:
		switch msg.Type {
		case tea.KeyTab:
			m.buf.Insert('\t')
		case tea.KeySpace:
			m.buf.Insert(' ')
		case tea.KeyRunes:
			if msg.Alt {
				m.log.Debug("ignored key", slog.String("key", msg.String()))
				return
			}
			for _, r := range msg.Runes {
				m.buf.Insert(r)
			}
		}
	}
}
