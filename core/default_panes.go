package core

import (
	"context"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

const settingsResetKey = "__reset"

// DefaultPanes builds the five bottom panes. Contents, search and settings
// are self-contained; bookmarks and annotations get their OnShow/OnActivate
// hooks from the wiring layer, which owns the storage.
func DefaultPanes() []*Pane {
	panes := make([]*Pane, PaneCount)
	panes[PaneContents] = NewPane("contents", "Contents")
	panes[PaneContents].OnShow = func(m *Model, p *Pane) tea.Cmd {
		chapters := m.reader.Chapters()
		items := make([]PaneItem, 0, len(chapters))
		for i, ch := range chapters {
			items = append(items, PaneItem{Key: strconv.Itoa(i), Label: ch.Title})
		}
		p.SetItems(items)
		return nil
	}
	panes[PaneContents].OnActivate = func(m *Model, item PaneItem) tea.Cmd {
		idx, err := strconv.Atoi(item.Key)
		if err != nil {
			return nil
		}
		return m.reader.JumpTo(idx, 0)
	}

	panes[PaneBookmarks] = NewPane("bookmarks", "Bookmarks")
	panes[PaneAnnotations] = NewPane("annotations", "Notes")

	panes[PaneSearch] = NewPane("search", "Search")
	panes[PaneSearch].OnActivate = func(m *Model, item PaneItem) tea.Cmd {
		return m.jumpToSearchHit(item.Key)
	}

	panes[PaneSettings] = NewPane("settings", "Settings")
	panes[PaneSettings].OnShow = refreshSettingsPane
	panes[PaneSettings].OnActivate = func(m *Model, item PaneItem) tea.Cmd {
		if item.Key == settingsResetKey {
			// re-show the pane so the cleared list is visible immediately
			refresh := func() tea.Msg { return PaneShowMsg{Index: PaneSettings} }
			return tea.Batch(m.ResetSettings(), refresh)
		}
		return StatusCmd(item.Label + " = " + item.Detail)
	}
	return panes
}

func refreshSettingsPane(m *Model, p *Pane) tea.Cmd {
	items := []PaneItem{}
	if m.Settings != nil {
		all, err := m.Settings.All(context.Background())
		if err != nil {
			return ErrorCmd(err)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			items = append(items, PaneItem{Key: k, Label: k, Detail: all[k]})
		}
	}
	items = append(items, PaneItem{Key: settingsResetKey, Label: "Reset all settings"})
	p.SetItems(items)
	return nil
}
