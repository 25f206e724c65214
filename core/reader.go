package core

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Chapter is a unit of reading content.
type Chapter struct {
	ID    string
	Title string
	Lines []string
}

// Reader is the primary reading surface: one open document, paged by lines.
type Reader struct {
	docID    string
	docTitle string
	chapters []Chapter
	chapter  int
	offset   int
	pageSize int

	// OnMove persists the reading position after any movement.
	OnMove func(docID string, chapter, offset int) tea.Cmd
}

func NewReader() *Reader {
	return &Reader{pageSize: 20}
}

func (r *Reader) Open(docID, title string, chapters []Chapter, chapter, offset int) {
	r.docID = docID
	r.docTitle = title
	r.chapters = chapters
	r.chapter = clamp(chapter, 0, len(chapters)-1)
	r.offset = 0
	if offset > 0 {
		r.offset = offset
	}
}

func (r *Reader) HasDocument() bool  { return len(r.chapters) > 0 }
func (r *Reader) DocID() string      { return r.docID }
func (r *Reader) Chapter() int       { return r.chapter }
func (r *Reader) Offset() int        { return r.offset }
func (r *Reader) Chapters() []Chapter { return r.chapters }

func (r *Reader) SetPageSize(n int) {
	if n > 0 {
		r.pageSize = n
	}
}

func (r *Reader) current() *Chapter {
	if r.chapter < 0 || r.chapter >= len(r.chapters) {
		return nil
	}
	return &r.chapters[r.chapter]
}

// PageForward pages down, rolling into the next chapter at the end.
func (r *Reader) PageForward() tea.Cmd {
	c := r.current()
	if c == nil {
		return nil
	}
	if r.offset+r.pageSize < len(c.Lines) {
		r.offset += r.pageSize
		return r.moved()
	}
	return r.NextChapter()
}

// PageBack pages up, rolling into the previous chapter at the start.
func (r *Reader) PageBack() tea.Cmd {
	if r.current() == nil {
		return nil
	}
	if r.offset > 0 {
		r.offset -= r.pageSize
		if r.offset < 0 {
			r.offset = 0
		}
		return r.moved()
	}
	if r.chapter == 0 {
		return nil
	}
	r.chapter--
	prev := r.current()
	r.offset = 0
	if n := len(prev.Lines); n > r.pageSize {
		r.offset = ((n - 1) / r.pageSize) * r.pageSize
	}
	return r.moved()
}

func (r *Reader) NextChapter() tea.Cmd {
	if r.chapter+1 >= len(r.chapters) {
		return nil
	}
	r.chapter++
	r.offset = 0
	return r.moved()
}

func (r *Reader) PrevChapter() tea.Cmd {
	if r.chapter == 0 || len(r.chapters) == 0 {
		return nil
	}
	r.chapter--
	r.offset = 0
	return r.moved()
}

// JumpTo opens a chapter at a line offset, aligned to the page grid.
func (r *Reader) JumpTo(chapter, line int) tea.Cmd {
	if len(r.chapters) == 0 {
		return nil
	}
	r.chapter = clamp(chapter, 0, len(r.chapters)-1)
	r.offset = 0
	if line > 0 && r.pageSize > 0 {
		r.offset = (line / r.pageSize) * r.pageSize
	}
	return r.moved()
}

func (r *Reader) moved() tea.Cmd {
	if r.OnMove == nil {
		return nil
	}
	return r.OnMove(r.docID, r.chapter, r.offset)
}

func (r *Reader) Progress() string {
	c := r.current()
	if c == nil {
		return "no document"
	}
	page := r.offset/r.pageSize + 1
	pages := (len(c.Lines)-1)/r.pageSize + 1
	if pages < 1 {
		pages = 1
	}
	return fmt.Sprintf("%s · ch %d/%d · p %d/%d", r.docTitle, r.chapter+1, len(r.chapters), page, pages)
}

func (r *Reader) View(width, height int) string {
	if height <= 0 {
		return ""
	}
	c := r.current()
	if c == nil {
		return readerEmptyStyle.Render("No document open. Import one with folio -import <dir>.")
	}
	r.SetPageSize(height - 1)
	lines := make([]string, 0, height)
	lines = append(lines, chapterTitleStyle.Render(TrimToWidth(c.Title, max(1, width))))
	for i := r.offset; i < len(c.Lines) && len(lines) < height; i++ {
		lines = append(lines, TrimToWidth(c.Lines[i], max(1, width)))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
