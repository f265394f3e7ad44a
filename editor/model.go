package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/linedit/buffer"
)

// chromeRows is the number of rows below the text area: the status bar and
// the message line.
const chromeRows = 2

// QuitMsg is emitted when the user confirmed quitting. Hosts decide what to
// do with it, usually tea.Quit.
type QuitMsg struct{}

func quit() tea.Msg { return QuitMsg{} }

// Model is a Bubble Tea component that renders and edits a buffer.Session.
type Model struct {
	cfg  Config
	sess *buffer.Session

	focused bool

	width, height int

	// viewport frames the text area; its content is only the visible rows.
	viewport viewport.Model

	mouseDragging bool

	message string
	prompt  savePrompt

	savedTextVersion uint64
	lastTextVersion  uint64
}

// New builds a Model. It fails when cfg.Lines exceeds cfg.MaxLines.
func New(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()
	sess, err := buffer.NewSession(cfg.Lines, buffer.SessionOptions{
		MaxLines:  cfg.MaxLines,
		TabWidth:  cfg.TabWidth,
		Clipboard: cfg.Clipboard,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		sess:     sess,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.savedTextVersion = sess.TextVersion()
	m.lastTextVersion = sess.TextVersion()
	return m, nil
}

func (m Model) Session() *buffer.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// Modified reports whether the text changed since it was loaded or last
// saved.
func (m Model) Modified() bool {
	return m.sess.TextVersion() != m.savedTextVersion
}

// Message returns the text of the bottom line.
func (m Model) Message() string { return m.message }

// Prompting reports whether the save-on-quit prompt is open.
func (m Model) Prompting() bool { return m.prompt.active }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = m.textRows()

	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.prompt.active {
			m, cmd = m.updatePrompt(msg)
		} else {
			m, cmd = m.updateKey(msg)
		}
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		return m, nil
	}

	m.followCursor()
	m.emitChange()
	return m, cmd
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	parts := make([]string, 0, 3)
	if rows := m.textRows(); rows > 0 {
		m.viewport.SetContent(strings.Join(m.renderRows(), "\n"))
		parts = append(parts, m.viewport.View())
	}
	if m.height >= chromeRows {
		parts = append(parts, m.renderStatusBar())
	}
	parts = append(parts, m.renderMessageLine())
	view := strings.Join(parts, "\n")

	if m.prompt.active {
		view = overlay.Composite(m.renderPrompt(), view, overlay.Left, overlay.Top, 0, m.height-1)
	}
	return view
}

// textRows is the height of the text area.
func (m Model) textRows() int {
	return max(m.height-chromeRows, 0)
}

// textCols is the width of the text area, margin excluded.
func (m Model) textCols() int {
	return max(m.width-m.sess.Buffer().Margin(), 0)
}

func (m *Model) followCursor() {
	m.sess.Follow(m.textRows(), m.textCols())
}

func (m *Model) emitChange() {
	tv := m.sess.TextVersion()
	if tv == m.lastTextVersion {
		return
	}
	m.lastTextVersion = tv
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.changeEvent())
	}
}
