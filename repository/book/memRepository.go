package bookrepo

import (
	"context"

	"eternalink/model"
)

// MemRepo keeps the collection in memory. Used by tests and as the fallback
// when the configured database is unreachable.
type MemRepo struct{ books []model.Book }

func NewMem(seed []model.Book) *MemRepo {
	m := &MemRepo{}
	m.books = append(m.books, seed...)
	return m
}

func (m *MemRepo) Load(_ context.Context) ([]model.Book, error) {
	out := make([]model.Book, len(m.books))
	copy(out, m.books)
	return out, nil
}

func (m *MemRepo) Save(_ context.Context, books []model.Book) error {
	m.books = make([]model.Book, len(books))
	copy(m.books, books)
	return nil
}
