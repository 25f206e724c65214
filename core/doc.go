// Package core implements the folio TUI: the reading surface, the bottom
// panes, and the two input dispatchers (keys and swipe gestures) that resolve
// raw terminal events against the command registry.
package core
