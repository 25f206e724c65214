package repository

import (
	"context"
	"database/sql"
)

// BookmarkRepo handles bookmarks.
type BookmarkRepo struct {
	db *sql.DB
}

func NewBookmarkRepo(db *sql.DB) *BookmarkRepo {
	return &BookmarkRepo{db: db}
}

func (r *BookmarkRepo) Add(ctx context.Context, b Bookmark) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO bookmarks(id, document_id, chapter, line_offset, label, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, b.ID, b.DocumentID, b.Chapter, b.LineOffset, b.Label)
	return err
}

func (r *BookmarkRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	return err
}

func (r *BookmarkRepo) ListForDocument(ctx context.Context, docID string) ([]Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, document_id, chapter, line_offset, label, created_at
	FROM bookmarks WHERE document_id = ? ORDER BY chapter, line_offset`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.DocumentID, &b.Chapter, &b.LineOffset, &b.Label, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// AnnotationRepo handles annotations.
type AnnotationRepo struct {
	db *sql.DB
}

func NewAnnotationRepo(db *sql.DB) *AnnotationRepo {
	return &AnnotationRepo{db: db}
}

func (r *AnnotationRepo) Add(ctx context.Context, a Annotation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO annotations(id, document_id, chapter, line_offset, note, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, a.ID, a.DocumentID, a.Chapter, a.LineOffset, a.Note)
	return err
}

func (r *AnnotationRepo) ListForDocument(ctx context.Context, docID string) ([]Annotation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, document_id, chapter, line_offset, note, created_at
	FROM annotations WHERE document_id = ? ORDER BY chapter, line_offset`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Annotation
	for rows.Next() {
		var a Annotation
		if err := rows.Scan(&a.ID, &a.DocumentID, &a.Chapter, &a.LineOffset, &a.Note, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
