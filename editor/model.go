package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/romycode/xx/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	focused bool

	width, height int
	viewport      viewport.Model

	lastBufVersion uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.FromString(cfg.Text),
		log:      logger.With(slog.String("component", "editor")),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-m.statusHeight(), 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		// Rebuild content in case the host mutated the buffer outside of the editor.
		m.syncFromBuffer()
		return m.updateMouse(msg)
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string {
	if m.statusHeight() == 0 {
		return m.viewport.View()
	}
	if m.viewport.Height == 0 {
		return m.renderStatus()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

// CursorCell returns the cursor's screen cell relative to the top-left of
// the view. ok is false when the cursor row is scrolled out of view.
func (m Model) CursorCell() (x, y int, ok bool) {
	pos := m.buf.Pos()
	y = pos.Line - m.viewport.YOffset
	if y < 0 || y >= m.viewport.Height {
		return 0, 0, false
	}
	x = m.gutterWidth() + cellColumn([]rune(m.buf.LineText(pos.Line)), pos.Column)
	return x, y, true
}

func (m Model) statusHeight() int {
	if !m.cfg.ShowStatus || m.height == 0 {
		return 0
	}
	return 1
}

// syncFromBuffer reports whether the buffer changed since the last render.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return false
	}
	m.lastBufVersion = ver
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	line := m.buf.Line()
	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}
