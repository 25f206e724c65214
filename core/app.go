package core

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a modal pushed above the main layout (command palette, pickers).
// Screens arrive via PushScreenMsg and dismiss themselves by returning a
// command that yields PopScreenMsg.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// screenStack holds the modals above the main layout, top last.
type screenStack struct {
	items []Screen
}

func (s *screenStack) push(screen Screen) {
	if screen != nil {
		s.items = append(s.items, screen)
	}
}

func (s *screenStack) pop() {
	if n := len(s.items); n > 0 {
		s.items = s.items[:n-1]
	}
}

func (s *screenStack) top() Screen {
	if n := len(s.items); n > 0 {
		return s.items[n-1]
	}
	return nil
}

func (s *screenStack) setTop(screen Screen) {
	if n := len(s.items); n > 0 && screen != nil {
		s.items[n-1] = screen
	}
}

// SettingsStore is the persisted key-value settings surface the app consumes.
type SettingsStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	All(ctx context.Context) (map[string]string, error)
	ResetAll(ctx context.Context) error
}

type Model struct {
	width  int
	height int

	reader *Reader
	panes  []*Pane

	paneOpen   bool
	activePane int

	keys     *KeyDispatcher
	commands *CommandRegistry
	gestures *GestureRouter
	screens  screenStack

	searchInput   textinput.Model
	searchFocused bool

	// contacts counts concurrently held pointer buttons; used to abort a
	// swipe when a second contact appears mid-gesture.
	contacts int

	status    string
	statusErr bool
	quitting  bool

	DB       *sql.DB
	Settings SettingsStore

	OpenCommandModal func(m *Model) Screen
}

func NewModel(reader *Reader, panes []*Pane, commands *CommandRegistry, settings SettingsStore, db *sql.DB) Model {
	inp := textinput.New()
	inp.Placeholder = "search text"
	inp.Prompt = "/ "
	return Model{
		reader:      reader,
		panes:       panes,
		keys:        NewKeyDispatcher(commands),
		commands:    commands,
		gestures:    NewGestureRouter(commands),
		searchInput: inp,
		status:      "Ready",
		Settings:    settings,
		DB:          db,
		width:       100,
		height:      32,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) Reader() *Reader { return m.reader }

func (m *Model) Commands() *CommandRegistry { return m.commands }

func (m *Model) PaneOpen() bool { return m.paneOpen }

func (m *Model) ActivePane() *Pane {
	if !m.paneOpen || m.activePane < 0 || m.activePane >= len(m.panes) {
		return nil
	}
	return m.panes[m.activePane]
}

// ShowPane opens the bottom pane at the given index. Out-of-range indexes
// are ignored.
func (m *Model) ShowPane(index int) tea.Cmd {
	if index < 0 || index >= len(m.panes) {
		return nil
	}
	m.paneOpen = true
	m.activePane = index
	p := m.panes[index]
	m.searchFocused = false
	m.searchInput.Blur()
	if p.OnShow != nil {
		return p.OnShow(m, p)
	}
	return nil
}

func (m *Model) ClosePane() {
	m.paneOpen = false
	m.searchFocused = false
	m.searchInput.Blur()
}

// TypingActive reports whether a text field currently has focus, which
// suppresses all shortcut dispatch.
func (m *Model) TypingActive() bool {
	return m.searchFocused
}

// ResetSettings clears every key in the settings store.
func (m *Model) ResetSettings() tea.Cmd {
	if m.Settings == nil {
		return nil
	}
	if err := m.Settings.ResetAll(context.Background()); err != nil {
		return ErrorCmd(err)
	}
	return StatusCmd("Settings reset")
}
