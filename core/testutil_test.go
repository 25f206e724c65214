package core

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// memStore is an in-memory SettingsStore for tests.
type memStore struct {
	vals map[string]string
}

func newMemStore() *memStore { return &memStore{vals: map[string]string{}} }

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.vals[key] = value
	return nil
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.vals[key]
	return v, ok, nil
}

func (s *memStore) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s.vals))
	for k, v := range s.vals {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) ResetAll(_ context.Context) error {
	s.vals = map[string]string{}
	return nil
}

func testChapters() []Chapter {
	return []Chapter{
		{ID: "c1", Title: "One", Lines: strings.Split("a\nb\nc\nd\ne\nf", "\n")},
		{ID: "c2", Title: "Two", Lines: strings.Split("g\nh\ni", "\n")},
	}
}

func testModel(cmds []Command) Model {
	r := NewReader()
	r.Open("doc", "Test Book", testChapters(), 0, 0)
	r.SetPageSize(3)
	return NewModel(r, DefaultPanes(), NewCommandRegistry(cmds), newMemStore(), nil)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// resolveMsgs flattens a cmd into the messages it yields, unpacking batches.
func resolveMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c != nil {
			out = append(out, c())
		}
	}
	return out
}
