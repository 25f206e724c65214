package core

import tea "github.com/charmbracelet/bubbletea"

// Swipe gesture thresholds. A horizontal swipe must move at least
// minSwipeDistance cells and be more than minAxisRatio times wider than tall.
const (
	minSwipeDistance = 40
	minAxisRatio     = 2
)

type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeLeft
	SwipeRight
)

func (s Swipe) String() string {
	switch s {
	case SwipeLeft:
		return "swipe-left"
	case SwipeRight:
		return "swipe-right"
	default:
		return "none"
	}
}

// SwipeEvent is a completed pointer gesture on one surface. Surface 0 is the
// reading view; surfaces 1..n are the bottom panes by position.
type SwipeEvent struct {
	Surface int
	Swipe   Swipe
	StartX  int
	StartY  int
	EndX    int
	EndY    int
}

// SwipeTracker follows at most one in-flight pointer per surface.
//
// Begin with a single contact arms the tracker; a second concurrent contact
// clears it. End on an armed tracker classifies the gesture vector: when the
// horizontal/vertical ratio stays at or below minAxisRatio the tracker keeps
// its start point and reports nothing (a mostly-vertical drag is not a
// gesture, and the next End reuses the same start). Otherwise the event is
// reported, tagged SwipeLeft/SwipeRight only past minSwipeDistance, and the
// tracker disarms.
type SwipeTracker struct {
	surface int
	armed   bool
	startX  int
	startY  int
}

func NewSwipeTracker(surface int) *SwipeTracker {
	return &SwipeTracker{surface: surface}
}

func (t *SwipeTracker) Surface() int { return t.surface }
func (t *SwipeTracker) Armed() bool  { return t.armed }

// Begin records the start of a pointer contact. contacts is the number of
// concurrently held contacts including this one.
func (t *SwipeTracker) Begin(x, y, contacts int) {
	if contacts > 1 {
		t.armed = false
		return
	}
	t.armed = true
	t.startX = x
	t.startY = y
}

// End completes the gesture. The second return is false when nothing was
// dispatched: either no contact was being tracked, or the drag was too
// vertical to classify (in which case the tracker stays armed).
func (t *SwipeTracker) End(x, y int) (SwipeEvent, bool) {
	if !t.armed {
		return SwipeEvent{}, false
	}
	dx := x - t.startX
	dy := y - t.startY
	// ratio check: |dx|/|dy| must exceed minAxisRatio; dy == 0 always passes
	if dy != 0 && absInt(dx) <= minAxisRatio*absInt(dy) {
		return SwipeEvent{}, false
	}
	ev := SwipeEvent{
		Surface: t.surface,
		StartX:  t.startX,
		StartY:  t.startY,
		EndX:    x,
		EndY:    y,
	}
	switch {
	case dx > minSwipeDistance:
		ev.Swipe = SwipeRight
	case dx < -minSwipeDistance:
		ev.Swipe = SwipeLeft
	}
	t.armed = false
	return ev, true
}

// GestureRouter owns one SwipeTracker per surface and routes completed
// gestures: surface 0 goes through the command table (MatchGesture, same
// eligibility and first-match policy as keys), any other surface maps
// SwipeLeft to the next item and SwipeRight to the previous item of that
// pane. An untagged event on a pane surface does nothing.
type GestureRouter struct {
	commands *CommandRegistry
	trackers map[int]*SwipeTracker
}

func NewGestureRouter(commands *CommandRegistry) *GestureRouter {
	return &GestureRouter{commands: commands, trackers: make(map[int]*SwipeTracker)}
}

func (g *GestureRouter) tracker(surface int) *SwipeTracker {
	t, ok := g.trackers[surface]
	if !ok {
		t = NewSwipeTracker(surface)
		g.trackers[surface] = t
	}
	return t
}

func (g *GestureRouter) Begin(surface, x, y, contacts int) {
	g.tracker(surface).Begin(x, y, contacts)
}

func (g *GestureRouter) End(m *Model, surface, x, y int) tea.Cmd {
	ev, ok := g.tracker(surface).End(x, y)
	if !ok {
		return nil
	}
	return g.route(m, ev)
}

func (g *GestureRouter) route(m *Model, ev SwipeEvent) tea.Cmd {
	if ev.Surface == 0 {
		c, ok := g.commands.FirstGestureMatch(ev)
		if !ok || !c.Eligible(m) {
			return nil
		}
		return c.run(m, &ev)
	}
	switch ev.Swipe {
	case SwipeLeft:
		return m.PaneNext(ev.Surface)
	case SwipeRight:
		return m.PanePrev(ev.Surface)
	}
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
