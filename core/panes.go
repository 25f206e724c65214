package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PaneItem is one selectable row in a bottom pane.
type PaneItem struct {
	Key    string
	Label  string
	Detail string
}

// Pane is one of the fixed bottom panes. Position in the pane list is its
// SectionPosition for gesture routing (position i is surface i+1).
type Pane struct {
	id       string
	title    string
	items    []PaneItem
	selected int

	// OnShow refreshes the item list when the pane becomes visible.
	OnShow func(m *Model, p *Pane) tea.Cmd
	// OnActivate handles enter on the selected item.
	OnActivate func(m *Model, item PaneItem) tea.Cmd
}

func NewPane(id, title string) *Pane {
	return &Pane{id: id, title: title}
}

func (p *Pane) ID() string    { return p.id }
func (p *Pane) Title() string { return p.title }

func (p *Pane) SetItems(items []PaneItem) {
	p.items = items
	if p.selected >= len(items) {
		p.selected = len(items) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

func (p *Pane) Items() []PaneItem { return p.items }

func (p *Pane) Selected() (PaneItem, bool) {
	if p.selected < 0 || p.selected >= len(p.items) {
		return PaneItem{}, false
	}
	return p.items[p.selected], true
}

// Next moves selection down one item; reports whether it moved.
func (p *Pane) Next() bool {
	if p.selected+1 >= len(p.items) {
		return false
	}
	p.selected++
	return true
}

// Prev moves selection up one item; reports whether it moved.
func (p *Pane) Prev() bool {
	if p.selected == 0 || len(p.items) == 0 {
		return false
	}
	p.selected--
	return true
}

func (p *Pane) Activate(m *Model) tea.Cmd {
	item, ok := p.Selected()
	if !ok || p.OnActivate == nil {
		return nil
	}
	return p.OnActivate(m, item)
}

func (p *Pane) View(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	top := 0
	if p.selected >= height {
		top = p.selected - height + 1
	}
	for i := top; i < len(p.items) && len(lines) < height; i++ {
		it := p.items[i]
		row := it.Label
		if it.Detail != "" {
			row += "  " + paneDetailStyle.Render(it.Detail)
		}
		row = TrimToWidth(row, max(1, width-2))
		if i == p.selected {
			row = paneSelectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	if len(lines) == 0 {
		lines = append(lines, paneEmptyStyle.Render("  nothing here"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// PaneNext advances the pane at the given position (1-based) to its next
// item. Out-of-range positions are ignored.
func (m *Model) PaneNext(position int) tea.Cmd {
	if p := m.paneAt(position); p != nil {
		p.Next()
	}
	return nil
}

// PanePrev moves the pane at the given position to its previous item.
func (m *Model) PanePrev(position int) tea.Cmd {
	if p := m.paneAt(position); p != nil {
		p.Prev()
	}
	return nil
}

func (m *Model) paneAt(position int) *Pane {
	if position < 1 || position > len(m.panes) {
		return nil
	}
	return m.panes[position-1]
}
