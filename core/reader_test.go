package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestReader() *Reader {
	r := NewReader()
	r.Open("doc", "Test Book", testChapters(), 0, 0)
	r.SetPageSize(3)
	return r
}

func TestPageForwardRollsIntoNextChapter(t *testing.T) {
	r := newTestReader()
	r.PageForward()
	if r.Chapter() != 0 || r.Offset() != 3 {
		t.Fatalf("expected second page of chapter one, got ch=%d off=%d", r.Chapter(), r.Offset())
	}
	r.PageForward()
	if r.Chapter() != 1 || r.Offset() != 0 {
		t.Fatalf("expected start of chapter two, got ch=%d off=%d", r.Chapter(), r.Offset())
	}
	r.PageForward()
	if r.Chapter() != 1 || r.Offset() != 0 {
		t.Fatalf("end of the book must not move, got ch=%d off=%d", r.Chapter(), r.Offset())
	}
}

func TestPageBackRollsIntoPreviousChapter(t *testing.T) {
	r := newTestReader()
	r.JumpTo(1, 0)
	r.PageBack()
	if r.Chapter() != 0 || r.Offset() != 3 {
		t.Fatalf("expected last page of chapter one, got ch=%d off=%d", r.Chapter(), r.Offset())
	}
	r.PageBack()
	if r.Chapter() != 0 || r.Offset() != 0 {
		t.Fatalf("expected first page, got ch=%d off=%d", r.Chapter(), r.Offset())
	}
	r.PageBack()
	if r.Chapter() != 0 || r.Offset() != 0 {
		t.Fatalf("start of the book must not move")
	}
}

func TestJumpToAlignsToPage(t *testing.T) {
	r := newTestReader()
	r.JumpTo(0, 4)
	if r.Offset() != 3 {
		t.Fatalf("line 4 lives on the page starting at 3, got %d", r.Offset())
	}
	r.JumpTo(5, 0)
	if r.Chapter() != 1 {
		t.Fatalf("chapter index must clamp, got %d", r.Chapter())
	}
}

func TestMoveNotifiesPersistenceHook(t *testing.T) {
	r := newTestReader()
	var gotDoc string
	var gotCh, gotOff int
	r.OnMove = func(docID string, chapter, offset int) tea.Cmd {
		gotDoc, gotCh, gotOff = docID, chapter, offset
		return nil
	}
	r.PageForward()
	if gotDoc != "doc" || gotCh != 0 || gotOff != 3 {
		t.Fatalf("hook saw %q ch=%d off=%d", gotDoc, gotCh, gotOff)
	}
}

func TestEmptyReaderIsInert(t *testing.T) {
	r := NewReader()
	if r.HasDocument() {
		t.Fatalf("fresh reader has no document")
	}
	if cmd := r.PageForward(); cmd != nil {
		t.Fatalf("paging an empty reader does nothing")
	}
	if got := r.Progress(); got != "no document" {
		t.Fatalf("unexpected progress: %q", got)
	}
}
