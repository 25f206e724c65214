package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSwipeRightTaggedPastThreshold(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(100, 100, 1)
	ev, ok := tr.End(145, 102)
	if !ok {
		t.Fatalf("expected gesture to dispatch")
	}
	if ev.Swipe != SwipeRight {
		t.Fatalf("expected swipe-right, got %s", ev.Swipe)
	}
	if ev.StartX != 100 || ev.StartY != 100 || ev.EndX != 145 || ev.EndY != 102 {
		t.Fatalf("unexpected coordinates: %+v", ev)
	}
	if tr.Armed() {
		t.Fatalf("tracker should disarm after dispatch")
	}
}

func TestSwipeLeftTaggedPastThreshold(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(200, 50, 1)
	ev, ok := tr.End(150, 50)
	if !ok || ev.Swipe != SwipeLeft {
		t.Fatalf("expected swipe-left, got ok=%v ev=%+v", ok, ev)
	}
}

func TestShortHorizontalDragDispatchesUntagged(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(100, 100, 1)
	ev, ok := tr.End(110, 100)
	if !ok {
		t.Fatalf("horizontal drag with dy=0 must dispatch")
	}
	if ev.Swipe != SwipeNone {
		t.Fatalf("10-cell drag is below the distance threshold, got %s", ev.Swipe)
	}
	if tr.Armed() {
		t.Fatalf("tracker should disarm after an untagged dispatch")
	}
}

func TestVerticalDragStaysArmedWithOriginalStart(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(100, 100, 1)
	if _, ok := tr.End(100, 130); ok {
		t.Fatalf("vertical drag must not dispatch")
	}
	if !tr.Armed() {
		t.Fatalf("tracker must stay armed after a too-vertical drag")
	}
	// the next End measures from the original start point
	ev, ok := tr.End(170, 101)
	if !ok || ev.Swipe != SwipeRight {
		t.Fatalf("expected swipe-right from retained start, got ok=%v ev=%+v", ok, ev)
	}
	if ev.StartX != 100 || ev.StartY != 100 {
		t.Fatalf("start point should be the original contact, got %+v", ev)
	}
}

func TestExactRatioBoundaryStaysArmed(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(0, 0, 1)
	// |dx| == 2*|dy| is not strictly greater, so it does not classify
	if _, ok := tr.End(60, 30); ok {
		t.Fatalf("ratio exactly at the limit must not dispatch")
	}
	if !tr.Armed() {
		t.Fatalf("tracker must stay armed at the ratio boundary")
	}
}

func TestSecondContactClearsTracking(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(100, 100, 1)
	tr.Begin(120, 100, 2)
	if tr.Armed() {
		t.Fatalf("second concurrent contact must clear the tracker")
	}
	if _, ok := tr.End(200, 100); ok {
		t.Fatalf("cleared tracker must not dispatch")
	}
}

func TestEndWhileIdleIgnored(t *testing.T) {
	tr := NewSwipeTracker(3)
	if _, ok := tr.End(50, 50); ok {
		t.Fatalf("End without Begin must not dispatch")
	}
}

func TestExactDistanceBoundaryUntagged(t *testing.T) {
	tr := NewSwipeTracker(0)
	tr.Begin(0, 0, 1)
	ev, ok := tr.End(40, 0)
	if !ok || ev.Swipe != SwipeNone {
		t.Fatalf("displacement of exactly 40 must dispatch untagged, got ok=%v ev=%+v", ok, ev)
	}
}

func TestRouterReadingSurfaceUsesCommandTable(t *testing.T) {
	var fired string
	cmds := []Command{
		{
			ID:           "left",
			MatchGesture: GestureIs(SwipeLeft),
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd {
				fired = "left"
				return nil
			},
		},
		{
			ID:           "right",
			MatchGesture: GestureIs(SwipeRight),
			Execute: func(m *Model, ev *SwipeEvent) tea.Cmd {
				fired = "right"
				return nil
			},
		},
	}
	m := testModel(cmds)
	g := NewGestureRouter(m.Commands())
	g.Begin(0, 100, 10, 1)
	g.End(&m, 0, 30, 10)
	if fired != "left" {
		t.Fatalf("expected left command on reading surface, got %q", fired)
	}
}

func TestRouterIneligibleGestureCommandDoesNothing(t *testing.T) {
	var fired bool
	cmds := []Command{{
		ID:           "left",
		MatchGesture: GestureIs(SwipeLeft),
		CanExecute:   func(m *Model) bool { return false },
		Execute: func(m *Model, ev *SwipeEvent) tea.Cmd {
			fired = true
			return nil
		},
	}}
	m := testModel(cmds)
	g := NewGestureRouter(m.Commands())
	g.Begin(0, 100, 10, 1)
	g.End(&m, 0, 30, 10)
	if fired {
		t.Fatalf("ineligible command must not run")
	}
}

func TestRouterPaneSurfaceMovesSelection(t *testing.T) {
	m := testModel(nil)
	pane := m.panes[0]
	pane.SetItems([]PaneItem{{Key: "a"}, {Key: "b"}, {Key: "c"}})

	g := NewGestureRouter(m.Commands())
	g.Begin(1, 100, 20, 1)
	g.End(&m, 1, 30, 20) // swipe-left: next item
	if item, _ := pane.Selected(); item.Key != "b" {
		t.Fatalf("swipe-left on pane surface should advance, got %q", item.Key)
	}

	g.Begin(1, 30, 20, 1)
	g.End(&m, 1, 100, 20) // swipe-right: previous item
	if item, _ := pane.Selected(); item.Key != "a" {
		t.Fatalf("swipe-right on pane surface should go back, got %q", item.Key)
	}
}

func TestRouterPaneSurfaceIgnoresUntagged(t *testing.T) {
	m := testModel(nil)
	pane := m.panes[0]
	pane.SetItems([]PaneItem{{Key: "a"}, {Key: "b"}})

	g := NewGestureRouter(m.Commands())
	g.Begin(1, 0, 0, 1)
	g.End(&m, 1, 10, 0)
	if item, _ := pane.Selected(); item.Key != "a" {
		t.Fatalf("untagged gesture on pane surface must not move selection")
	}
}

func TestRouterTracksSurfacesIndependently(t *testing.T) {
	m := testModel(nil)
	g := NewGestureRouter(m.Commands())
	g.Begin(1, 100, 10, 1)
	g.Begin(2, 200, 10, 1)
	if !g.tracker(1).Armed() || !g.tracker(2).Armed() {
		t.Fatalf("each surface keeps its own tracker")
	}
	g.End(&m, 1, 30, 10)
	if g.tracker(1).Armed() {
		t.Fatalf("surface 1 should disarm after dispatch")
	}
	if !g.tracker(2).Armed() {
		t.Fatalf("surface 2 must be unaffected by surface 1 ending")
	}
}
