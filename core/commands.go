package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is one user-invokable action. A command can be reached through the
// key table (MatchKey), the gesture table (MatchGesture), or the palette
// (Execute by ID). CanExecute and Visible gate execution; nil means true.
type Command struct {
	ID          string
	Name        string
	Description string

	// Keys is the display hint for the footer; MatchKey decides matching.
	Keys []string

	MatchKey     func(msg tea.KeyMsg) bool
	MatchGesture func(ev SwipeEvent) bool

	NotImplemented bool
	CanExecute     func(m *Model) bool
	Visible        func(m *Model) bool

	// Execute receives the gesture event when invoked from the gesture
	// path, nil when invoked from the key table or the palette.
	Execute func(m *Model, ev *SwipeEvent) tea.Cmd
}

// Eligible reports whether the command may run right now.
func (c Command) Eligible(m *Model) bool {
	if c.NotImplemented {
		return false
	}
	if c.CanExecute != nil && !c.CanExecute(m) {
		return false
	}
	if c.Visible != nil && !c.Visible(m) {
		return false
	}
	return true
}

func (c Command) run(m *Model, ev *SwipeEvent) tea.Cmd {
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m, ev)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
}

// CommandRegistry holds commands in registration order. Order is the dispatch
// contract: key and gesture lookups return the first command whose predicate
// matches, so earlier registrations take precedence.
type CommandRegistry struct {
	commands []Command
	byID     map[string]int
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{byID: map[string]int{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if i, exists := r.byID[c.ID]; exists {
		r.commands[i] = c
		return
	}
	r.byID[c.ID] = len(r.commands)
	r.commands = append(r.commands, c)
}

func (r *CommandRegistry) Len() int { return len(r.commands) }

// Commands returns the registered commands in registration order.
func (r *CommandRegistry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// FirstKeyMatch returns the first command, in registration order, whose
// MatchKey predicate accepts the key. Eligibility is not checked here; the
// caller decides what a matched-but-ineligible command means.
func (r *CommandRegistry) FirstKeyMatch(msg tea.KeyMsg) (Command, bool) {
	for _, c := range r.commands {
		if c.MatchKey != nil && c.MatchKey(msg) {
			return c, true
		}
	}
	return Command{}, false
}

// FirstGestureMatch is FirstKeyMatch for the gesture table.
func (r *CommandRegistry) FirstGestureMatch(ev SwipeEvent) (Command, bool) {
	for _, c := range r.commands {
		if c.MatchGesture != nil && c.MatchGesture(ev) {
			return c, true
		}
	}
	return Command{}, false
}

// Execute runs a command by ID, reporting ineligibility on the status bar.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	i, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	c := r.commands[i]
	if !c.Eligible(m) {
		return StatusCmd(c.Name + " is not available")
	}
	return c.run(m, nil)
}

// Search lists visible commands for the palette. Substring hits keep
// registration order ahead of edit-distance hits; an empty query returns
// everything in registration order.
func (r *CommandRegistry) Search(query string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	type scored struct {
		res  CommandResult
		dist int
	}
	results := make([]scored, 0, len(r.commands))
	for _, c := range r.commands {
		if c.Visible != nil && !c.Visible(m) {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(c.Name+" "+c.Description+" "+c.ID), q) {
			results = append(results, scored{res: commandResult(c, m)})
			continue
		}
		d := levenshtein.ComputeDistance(q, strings.ToLower(c.Name))
		if id := levenshtein.ComputeDistance(q, c.ID); id < d {
			d = id
		}
		if d >= len(q) {
			continue
		}
		results = append(results, scored{res: commandResult(c, m), dist: d})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].dist < results[j].dist
	})
	out := make([]CommandResult, 0, len(results))
	for _, s := range results {
		out = append(out, s.res)
	}
	return out
}

func commandResult(c Command, m *Model) CommandResult {
	return CommandResult{
		CommandID: c.ID,
		Name:      c.Name,
		Desc:      c.Description,
		Disabled:  !c.Eligible(m),
	}
}
