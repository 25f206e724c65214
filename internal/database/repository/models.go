package repository

import "time"

type Document struct {
	ID        string
	Title     string
	Class     string
	CreatedAt time.Time
}

type Chapter struct {
	ID         string
	DocumentID string
	Position   int
	Title      string
	Body       string
}

type Position struct {
	DocumentID string
	Chapter    int
	LineOffset int
	UpdatedAt  time.Time
}

type Bookmark struct {
	ID         string
	DocumentID string
	Chapter    int
	LineOffset int
	Label      string
	CreatedAt  time.Time
}

type Annotation struct {
	ID         string
	DocumentID string
	Chapter    int
	LineOffset int
	Note       string
	CreatedAt  time.Time
}
