package core

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PaneShowMsg:
		return m, m.ShowPane(msg.Index)
	case PushScreenMsg:
		m.screens.push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case SearchDoneMsg:
		if msg.Hits == 0 {
			m.SetStatus("No matches for " + msg.Query)
		} else {
			m.SetStatus("")
		}
		return m, nil
	case PositionSavedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if top := m.screens.top(); top != nil {
			next, cmd := top.Update(msg)
			m.screens.setTop(next)
			return m, cmd
		}
		if cmd, consumed := m.keys.Dispatch(&m, msg); consumed {
			return m, cmd
		}
		if m.TypingActive() {
			return m.updateSearchInput(msg)
		}
		if pane := m.ActivePane(); pane != nil {
			if cmd, handled := m.handlePaneKey(pane, msg); handled {
				return m, cmd
			}
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if top := m.screens.top(); top != nil {
		next, cmd := top.Update(msg)
		m.screens.setTop(next)
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePaneKey(pane *Pane, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		pane.Next()
		return nil, true
	case "k", "up":
		pane.Prev()
		return nil, true
	case "enter":
		return pane.Activate(&m), true
	}
	return nil, false
}

// handleMouse adapts terminal pointer events to the gesture router. Button
// press and release bracket a swipe; wheel events scroll directly and never
// take part in gesture tracking.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if isWheelButton(msg.Button) {
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		return m, m.handleWheel(msg)
	}
	surface := m.surfaceAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		m.contacts++
		m.gestures.Begin(surface, msg.X, msg.Y, m.contacts)
	case tea.MouseActionRelease:
		cmd := m.gestures.End(&m, surface, msg.X, msg.Y)
		if m.contacts > 0 {
			m.contacts--
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWheel(msg tea.MouseMsg) tea.Cmd {
	surface := m.surfaceAt(msg.X, msg.Y)
	if surface == 0 {
		if msg.Button == tea.MouseButtonWheelDown {
			return m.reader.PageForward()
		}
		return m.reader.PageBack()
	}
	if msg.Button == tea.MouseButtonWheelDown {
		return m.PaneNext(surface)
	}
	return m.PanePrev(surface)
}

func isWheelButton(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

// surfaceAt maps a screen coordinate to a gesture surface: 0 for the reading
// view, pane position (1-based) for the open bottom pane region.
func (m Model) surfaceAt(x, y int) int {
	_ = x
	if !m.paneOpen {
		return 0
	}
	paneTop := m.height - footerHeight - m.paneRegionHeight()
	if y >= paneTop && y < m.height-footerHeight {
		return m.activePane + 1
	}
	return 0
}

const footerHeight = 1

// paneRegionHeight is the pane rows including its title line.
func (m Model) paneRegionHeight() int {
	h := m.height / 3
	if h > 12 {
		h = 12
	}
	if h < 4 {
		h = 4
	}
	return h
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	case "enter":
		query := m.searchInput.Value()
		m.searchFocused = false
		m.searchInput.Blur()
		return m, m.runSearch(query)
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}
