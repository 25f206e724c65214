package core

import tea "github.com/charmbracelet/bubbletea"

// Bottom pane positions. Gesture surfaces are these plus one; surface 0 is
// the reading view.
const (
	PaneContents = iota
	PaneBookmarks
	PaneAnnotations
	PaneSearch
	PaneSettings
	PaneCount
)

// DefaultCommands is the built-in command table. Registration order is
// dispatch precedence; storage-backed commands are appended by the wiring
// layer.
func DefaultCommands() []Command {
	hasDoc := func(m *Model) bool { return m.reader.HasDocument() }
	return []Command{
		{
			ID:           "page-next",
			Name:         "next page",
			Description:  "Page forward through the document",
			Keys:         []string{"right", "space"},
			MatchKey:     KeyIs("right", "space"),
			MatchGesture: GestureIs(SwipeLeft),
			CanExecute:   hasDoc,
			Execute:      func(m *Model, _ *SwipeEvent) tea.Cmd { return m.reader.PageForward() },
		},
		{
			ID:           "page-prev",
			Name:         "prev page",
			Description:  "Page back through the document",
			Keys:         []string{"left", "b"},
			MatchKey:     KeyIs("left", "b"),
			MatchGesture: GestureIs(SwipeRight),
			CanExecute:   hasDoc,
			Execute:      func(m *Model, _ *SwipeEvent) tea.Cmd { return m.reader.PageBack() },
		},
		{
			ID:          "chapter-next",
			Name:        "next chapter",
			Description: "Jump to the next chapter",
			Keys:        []string{"]"},
			MatchKey:    KeyIs("]"),
			CanExecute:  hasDoc,
			Execute:     func(m *Model, _ *SwipeEvent) tea.Cmd { return m.reader.NextChapter() },
		},
		{
			ID:          "chapter-prev",
			Name:        "prev chapter",
			Description: "Jump to the previous chapter",
			Keys:        []string{"["},
			MatchKey:    KeyIs("["),
			CanExecute:  hasDoc,
			Execute:     func(m *Model, _ *SwipeEvent) tea.Cmd { return m.reader.PrevChapter() },
		},
		{
			ID:          "search",
			Name:        "search",
			Description: "Search the open document",
			Keys:        []string{"/"},
			MatchKey:    KeyIs("/"),
			CanExecute:  hasDoc,
			Execute:     func(m *Model, _ *SwipeEvent) tea.Cmd { return m.FocusSearch() },
		},
		{
			ID:          "close-pane",
			Name:        "close pane",
			Description: "Close the bottom pane",
			Keys:        []string{"esc"},
			MatchKey:    KeyIs("esc"),
			CanExecute:  func(m *Model) bool { return m.PaneOpen() },
			Execute: func(m *Model, _ *SwipeEvent) tea.Cmd {
				m.ClosePane()
				return nil
			},
		},
		{
			ID:          "command-palette",
			Name:        "commands",
			Description: "Open the command palette",
			Keys:        []string{"p"},
			MatchKey:    KeyIs("p"),
			Execute: func(m *Model, _ *SwipeEvent) tea.Cmd {
				if m.OpenCommandModal == nil {
					return nil
				}
				screen := m.OpenCommandModal(m)
				return func() tea.Msg { return PushScreenMsg{Screen: screen} }
			},
		},
		{
			ID:          "reset-settings",
			Name:        "reset settings",
			Description: "Clear every persisted setting",
			Visible: func(m *Model) bool {
				return m.PaneOpen() && m.activePane == PaneSettings
			},
			Execute: func(m *Model, _ *SwipeEvent) tea.Cmd { return m.ResetSettings() },
		},
		{
			// Inline annotation editing has no TUI yet. The entry stays
			// registered so the palette shows it greyed out.
			ID:             "annotation-edit",
			Name:           "edit annotation",
			Description:    "Edit the selected annotation",
			MatchKey:       KeyIs("e"),
			NotImplemented: true,
		},
		{
			ID:          "quit",
			Name:        "quit",
			Description: "Quit folio",
			Keys:        []string{"q"},
			MatchKey:    KeyIs("q"),
			Execute: func(m *Model, _ *SwipeEvent) tea.Cmd {
				m.quitting = true
				return tea.Quit
			},
		},
	}
}
