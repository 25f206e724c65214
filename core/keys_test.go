package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingGuardSwallowsNothing(t *testing.T) {
	var fired bool
	m := testModel([]Command{{
		ID:       "x",
		MatchKey: KeyIs("x"),
		Execute:  func(m *Model, ev *SwipeEvent) tea.Cmd { fired = true; return nil },
	}})
	m.searchFocused = true
	cmd, consumed := m.keys.Dispatch(&m, runeKey('x'))
	if cmd != nil || consumed || fired {
		t.Fatalf("keys must pass through untouched while typing")
	}
}

func TestChordModifiersBypassDispatch(t *testing.T) {
	var fired bool
	m := testModel([]Command{{
		ID:       "x",
		MatchKey: KeyIs("x"),
		Execute:  func(m *Model, ev *SwipeEvent) tea.Cmd { fired = true; return nil },
	}})

	altX := runeKey('x')
	altX.Alt = true
	if _, consumed := m.keys.Dispatch(&m, altX); consumed || fired {
		t.Fatalf("alt chord must not be consumed")
	}
	if _, consumed := m.keys.Dispatch(&m, tea.KeyMsg{Type: tea.KeyCtrlA}); consumed {
		t.Fatalf("ctrl chord must not be consumed")
	}
}

func TestDigitsOpenPanesByPosition(t *testing.T) {
	m := testModel(nil)
	for digit, want := range map[rune]int{'1': 0, '2': 1, '3': 2, '4': 3, '5': 4} {
		_, consumed := m.keys.Dispatch(&m, runeKey(digit))
		if !consumed {
			t.Fatalf("digit %c must be consumed", digit)
		}
		if !m.PaneOpen() || m.activePane != want {
			t.Fatalf("digit %c should open pane %d, got open=%v active=%d", digit, want, m.PaneOpen(), m.activePane)
		}
	}
	if _, consumed := m.keys.Dispatch(&m, runeKey('6')); consumed {
		t.Fatalf("digit 6 has no pane and must fall through")
	}
	if _, consumed := m.keys.Dispatch(&m, runeKey('0')); consumed {
		t.Fatalf("digit 0 has no pane and must fall through")
	}
}

func TestFirstMatchWinsAndConsumes(t *testing.T) {
	var fired []string
	mk := func(id string) Command {
		return Command{
			ID:       id,
			MatchKey: KeyIs("g"),
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd {
				fired = append(fired, id)
				return nil
			},
		}
	}
	m := testModel([]Command{mk("first"), mk("second")})
	_, consumed := m.keys.Dispatch(&m, runeKey('g'))
	if !consumed {
		t.Fatalf("matched command must consume the key")
	}
	if len(fired) != 1 || fired[0] != "first" {
		t.Fatalf("only the first registered match runs, got %v", fired)
	}
}

func TestIneligibleMatchDoesNotConsume(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
	}{
		{"not implemented", Command{ID: "a", MatchKey: KeyIs("g"), NotImplemented: true,
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd { t.Fatal("must not run"); return nil }}},
		{"cannot execute", Command{ID: "b", MatchKey: KeyIs("g"),
			CanExecute: func(m *Model) bool { return false },
			Execute:    func(m *Model, ev *SwipeEvent) tea.Cmd { t.Fatal("must not run"); return nil }}},
		{"not visible", Command{ID: "c", MatchKey: KeyIs("g"),
			Visible: func(m *Model) bool { return false },
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd { t.Fatal("must not run"); return nil }}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := testModel([]Command{tc.cmd})
			_, consumed := m.keys.Dispatch(&m, runeKey('g'))
			if consumed {
				t.Fatalf("ineligible match must let the key fall through")
			}
		})
	}
}

func TestIneligibleMatchBlocksLaterMatches(t *testing.T) {
	var fired bool
	m := testModel([]Command{
		{ID: "blocked", MatchKey: KeyIs("g"), CanExecute: func(m *Model) bool { return false }},
		{ID: "eager", MatchKey: KeyIs("g"),
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd { fired = true; return nil }},
	})
	if _, consumed := m.keys.Dispatch(&m, runeKey('g')); consumed || fired {
		t.Fatalf("the scan stops at the first match even when it is ineligible")
	}
}

func TestUnmatchedKeyFallsThrough(t *testing.T) {
	m := testModel(nil)
	if _, consumed := m.keys.Dispatch(&m, runeKey('z')); consumed {
		t.Fatalf("unknown key must not be consumed")
	}
}

func TestSpaceKeyMatchesSpaceBinding(t *testing.T) {
	m := testModel(DefaultCommands())
	msg := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	_, consumed := m.keys.Dispatch(&m, msg)
	if !consumed {
		t.Fatalf("space is bound to page-next and must be consumed")
	}
	if m.Reader().Offset() != 3 {
		t.Fatalf("space should page forward, offset = %d", m.Reader().Offset())
	}
}

func TestKeyNameNormalization(t *testing.T) {
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	if !KeyIs("space")(space) || !KeyIs("spacebar")(space) {
		t.Fatalf("space press must match both space and spacebar bindings")
	}
	ctrlA := tea.KeyMsg{Type: tea.KeyCtrlA}
	if !KeyIs("control+a")(ctrlA) || !KeyIs("Ctrl+A")(ctrlA) {
		t.Fatalf("control+a aliases must match a ctrl+a press")
	}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	if !KeyIs("return")(enter) {
		t.Fatalf("return must alias enter")
	}
	// single uppercase runes stay distinct from lowercase
	if KeyIs("G")(runeKey('g')) {
		t.Fatalf("uppercase binding must not match a lowercase press")
	}
	if !KeyIs("G")(runeKey('G')) {
		t.Fatalf("uppercase binding must match an uppercase press")
	}
}
