package repository

import (
	"context"
	"database/sql"

	"github.com/foliotui/folio/internal/database"
)

// DocumentRepo handles documents and their chapters.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

func (r *DocumentRepo) Upsert(ctx context.Context, d Document) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO documents(id, title, class, created_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 class=excluded.class;
	`, d.ID, d.Title, d.Class)
	return err
}

func (r *DocumentRepo) List(ctx context.Context) ([]Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, class, created_at FROM documents ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Class, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReplaceChapters swaps a document's chapter set in one transaction.
func (r *DocumentRepo) ReplaceChapters(ctx context.Context, docID string, chapters []Chapter) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM chapters WHERE document_id = ?`, docID); err != nil {
			return err
		}
		for _, c := range chapters {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO chapters(id, document_id, position, title, body)
			VALUES (?, ?, ?, ?, ?);
			`, c.ID, docID, c.Position, c.Title, c.Body)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DocumentRepo) Chapters(ctx context.Context, docID string) ([]Chapter, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, document_id, position, title, body
	FROM chapters WHERE document_id = ? ORDER BY position`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.Position, &c.Title, &c.Body); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
