// Package app assembles the folio model: storage repositories, the command
// registry, the five bottom panes, and the reader.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/foliotui/folio/core"
	"github.com/foliotui/folio/internal/convert"
	"github.com/foliotui/folio/internal/database/repository"
	"github.com/foliotui/folio/internal/settings"
	"github.com/foliotui/folio/screens"
)

// BuildModel wires a ready-to-run model against an open, migrated database.
func BuildModel(ctx context.Context, db *sql.DB) (core.Model, error) {
	docs := repository.NewDocumentRepo(db)
	positions := repository.NewPositionRepo(db)
	bookmarks := repository.NewBookmarkRepo(db)
	annotations := repository.NewAnnotationRepo(db)
	store := settings.New(db)

	reader := core.NewReader()
	reader.OnMove = func(docID string, chapter, offset int) tea.Cmd {
		return func() tea.Msg {
			return core.PositionSavedMsg{Err: positions.Save(context.Background(), docID, chapter, offset)}
		}
	}
	if err := openInitialDocument(ctx, docs, positions, reader); err != nil {
		return core.Model{}, err
	}

	panes := core.DefaultPanes()
	wireStoragePanes(panes, bookmarks, annotations)

	registry := core.NewCommandRegistry(core.DefaultCommands())
	registry.Register(bookmarkAddCommand(bookmarks))

	m := core.NewModel(reader, panes, registry, store, db)
	m.OpenCommandModal = func(mm *core.Model) core.Screen {
		return screens.NewCommandScreen(
			func(q string) []screens.CommandOption {
				results := mm.Commands().Search(q, mm)
				opts := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					opts = append(opts, screens.CommandOption{
						ID:       r.CommandID,
						Name:     r.Name,
						Desc:     r.Desc,
						Disabled: r.Disabled,
					})
				}
				return opts
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	return m, nil
}

// openInitialDocument loads the first library document and its saved
// position. An empty library is not an error; the reader stays empty.
func openInitialDocument(ctx context.Context, docs *repository.DocumentRepo, positions *repository.PositionRepo, reader *core.Reader) error {
	list, err := docs.List(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	if len(list) == 0 {
		return nil
	}
	doc := list[0]
	chapters, err := docs.Chapters(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("load chapters: %w", err)
	}
	converted := make([]core.Chapter, 0, len(chapters))
	for _, c := range chapters {
		converted = append(converted, core.Chapter{
			ID:    c.ID,
			Title: c.Title,
			Lines: strings.Split(c.Body, "\n"),
		})
	}
	pos, ok, err := positions.Get(ctx, doc.ID)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}
	if !ok {
		reader.Open(doc.ID, doc.Title, converted, 0, 0)
		return nil
	}
	reader.Open(doc.ID, doc.Title, converted, pos.Chapter, pos.LineOffset)
	return nil
}

func wireStoragePanes(panes []*core.Pane, bookmarks *repository.BookmarkRepo, annotations *repository.AnnotationRepo) {
	bm := panes[core.PaneBookmarks]
	bm.OnShow = func(m *core.Model, p *core.Pane) tea.Cmd {
		list, err := bookmarks.ListForDocument(context.Background(), m.Reader().DocID())
		if err != nil {
			return core.ErrorCmd(err)
		}
		items := make([]core.PaneItem, 0, len(list))
		for _, b := range list {
			items = append(items, core.PaneItem{
				Key:    locationKey(b.Chapter, b.LineOffset),
				Label:  b.Label,
				Detail: fmt.Sprintf("ch %d", b.Chapter+1),
			})
		}
		p.SetItems(items)
		return nil
	}
	bm.OnActivate = jumpToLocation

	an := panes[core.PaneAnnotations]
	an.OnShow = func(m *core.Model, p *core.Pane) tea.Cmd {
		list, err := annotations.ListForDocument(context.Background(), m.Reader().DocID())
		if err != nil {
			return core.ErrorCmd(err)
		}
		items := make([]core.PaneItem, 0, len(list))
		for _, a := range list {
			items = append(items, core.PaneItem{
				Key:    locationKey(a.Chapter, a.LineOffset),
				Label:  a.Note,
				Detail: fmt.Sprintf("ch %d", a.Chapter+1),
			})
		}
		p.SetItems(items)
		return nil
	}
	an.OnActivate = jumpToLocation
}

func bookmarkAddCommand(bookmarks *repository.BookmarkRepo) core.Command {
	return core.Command{
		ID:          "bookmark-add",
		Name:        "bookmark",
		Description: "Bookmark the current page",
		Keys:        []string{"m"},
		MatchKey:    core.KeyIs("m"),
		CanExecute:  func(m *core.Model) bool { return m.Reader().HasDocument() },
		Execute: func(m *core.Model, _ *core.SwipeEvent) tea.Cmd {
			r := m.Reader()
			label := "Bookmark"
			if chs := r.Chapters(); r.Chapter() < len(chs) {
				label = chs[r.Chapter()].Title
			}
			b := repository.Bookmark{
				ID:         uuid.NewString(),
				DocumentID: r.DocID(),
				Chapter:    r.Chapter(),
				LineOffset: r.Offset(),
				Label:      label,
			}
			if err := bookmarks.Add(context.Background(), b); err != nil {
				return core.ErrorCmd(err)
			}
			return core.StatusCmd("Bookmarked " + label)
		},
	}
}

func locationKey(chapter, offset int) string {
	return fmt.Sprintf("%d:%d", chapter, offset)
}

func jumpToLocation(m *core.Model, item core.PaneItem) tea.Cmd {
	parts := strings.SplitN(item.Key, ":", 2)
	if len(parts) != 2 {
		return nil
	}
	ch, err1 := strconv.Atoi(parts[0])
	line, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	return m.Reader().JumpTo(ch, line)
}

// ImportBooks converts every XML file under dir into library documents.
// Document IDs are derived from class and title so re-imports update in
// place instead of duplicating.
func ImportBooks(ctx context.Context, db *sql.DB, dir string) (int, error) {
	docs := repository.NewDocumentRepo(db)
	books, errs := convert.ParseDir(dir)
	for _, book := range books {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(book.Class+"/"+book.Title)).String()
		d := repository.Document{ID: id, Title: book.Title, Class: book.Class}
		if err := docs.Upsert(ctx, d); err != nil {
			return 0, fmt.Errorf("upsert %s: %w", book.Title, err)
		}
		chapters := make([]repository.Chapter, 0, len(book.Chapters))
		for i, ch := range book.Chapters {
			chapters = append(chapters, repository.Chapter{
				ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(id+"/"+ch.Title)).String(),
				DocumentID: id,
				Position:   i,
				Title:      ch.Title,
				Body:       ch.Body,
			})
		}
		if err := docs.ReplaceChapters(ctx, id, chapters); err != nil {
			return 0, fmt.Errorf("chapters %s: %w", book.Title, err)
		}
	}
	if len(errs) > 0 {
		return len(books), fmt.Errorf("%d file(s) failed to convert: %v", len(errs), errs[0])
	}
	return len(books), nil
}
