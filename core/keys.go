package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyDispatcher resolves a keypress to at most one action. Precedence, first
// match wins:
//
//  1. typing guard: a focused text field, or an Alt/Ctrl/Meta chord, ignores
//     the key entirely so shortcuts never fire mid-edit
//  2. digits 1-5 open the bottom pane at that position
//  3. the command table, scanned in registration order
//
// A consumed key stops here; an unconsumed key falls through to the active
// pane (wrong-state commands deliberately do not consume, so a matched but
// ineligible command lets the key reach the pane).
type KeyDispatcher struct {
	commands *CommandRegistry
}

func NewKeyDispatcher(commands *CommandRegistry) *KeyDispatcher {
	return &KeyDispatcher{commands: commands}
}

// Dispatch returns the command to run and whether the key was consumed.
func (d *KeyDispatcher) Dispatch(m *Model, msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.TypingActive() || hasChordModifier(msg) {
		return nil, false
	}
	if idx, ok := paneDigit(msg); ok {
		m.ShowPane(idx)
		return nil, true
	}
	c, ok := d.commands.FirstKeyMatch(msg)
	if !ok {
		return nil, false
	}
	if !c.Eligible(m) {
		return nil, false
	}
	return c.run(m, nil), true
}

// hasChordModifier reports Alt/Ctrl/Meta involvement. Terminal ctrl chords
// arrive as dedicated key types, so the string form is the reliable check.
func hasChordModifier(msg tea.KeyMsg) bool {
	if msg.Alt {
		return true
	}
	s := msg.String()
	return strings.HasPrefix(s, "ctrl+") || strings.HasPrefix(s, "meta+")
}

// paneDigit maps keys "1".."5" to pane indexes 0..4.
func paneDigit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '5' {
		return 0, false
	}
	return int(r - '1'), true
}

// KeyIs matches a key event against a human-readable chord like "n" or
// "shift+right". Used to build MatchKey predicates. Both sides go through
// normalizeKeyName so a space press (which stringifies as " ") matches a
// "space" binding.
func KeyIs(keys ...string) func(msg tea.KeyMsg) bool {
	norm := make([]string, 0, len(keys))
	for _, k := range keys {
		if n := normalizeKeyName(k); n != "" {
			norm = append(norm, n)
		}
	}
	return func(msg tea.KeyMsg) bool {
		pressed := normalizeKeyName(msg.String())
		for _, k := range norm {
			if k == pressed {
				return true
			}
		}
		return false
	}
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// GestureIs builds a MatchGesture predicate for one swipe direction.
func GestureIs(s Swipe) func(ev SwipeEvent) bool {
	return func(ev SwipeEvent) bool { return ev.Swipe == s }
}
