package repository

import (
	"context"
	"database/sql"
	"errors"
)

// PositionRepo persists the last reading position per document.
type PositionRepo struct {
	db *sql.DB
}

func NewPositionRepo(db *sql.DB) *PositionRepo {
	return &PositionRepo{db: db}
}

func (r *PositionRepo) Save(ctx context.Context, docID string, chapter, lineOffset int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO positions(document_id, chapter, line_offset, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(document_id) DO UPDATE SET
	 chapter=excluded.chapter,
	 line_offset=excluded.line_offset,
	 updated_at=CURRENT_TIMESTAMP;
	`, docID, chapter, lineOffset)
	return err
}

func (r *PositionRepo) Get(ctx context.Context, docID string) (Position, bool, error) {
	var p Position
	err := r.db.QueryRowContext(ctx, `
	SELECT document_id, chapter, line_offset, updated_at
	FROM positions WHERE document_id = ?`, docID).
		Scan(&p.DocumentID, &p.Chapter, &p.LineOffset, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, false, nil
	}
	if err != nil {
		return Position{}, false, err
	}
	return p, true, nil
}
