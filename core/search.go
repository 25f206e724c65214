package core

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FocusSearch opens the search pane and moves focus into its text field.
func (m *Model) FocusSearch() tea.Cmd {
	cmd := m.ShowPane(PaneSearch)
	m.searchFocused = true
	m.searchInput.Focus()
	return cmd
}

// runSearch scans the open document for the query and fills the search pane
// with one item per matching line, keyed "chapter:line" for JumpTo.
func (m *Model) runSearch(query string) tea.Cmd {
	q := strings.ToLower(strings.TrimSpace(query))
	pane := m.paneAt(PaneSearch + 1)
	if pane == nil {
		return nil
	}
	if q == "" {
		pane.SetItems(nil)
		return nil
	}
	items := []PaneItem{}
	for ci, ch := range m.reader.Chapters() {
		for li, line := range ch.Lines {
			if !strings.Contains(strings.ToLower(line), q) {
				continue
			}
			items = append(items, PaneItem{
				Key:    fmt.Sprintf("%d:%d", ci, li),
				Label:  strings.TrimSpace(line),
				Detail: ch.Title,
			})
		}
	}
	pane.SetItems(items)
	hits := len(items)
	return func() tea.Msg { return SearchDoneMsg{Query: query, Hits: hits} }
}

// jumpToSearchHit parses a "chapter:line" pane item key.
func (m *Model) jumpToSearchHit(key string) tea.Cmd {
	parts := strings.SplitN(key, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	ch, err1 := strconv.Atoi(parts[0])
	line, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	return m.reader.JumpTo(ch, line)
}
