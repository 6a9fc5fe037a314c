package bookrepo

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"eternalink/model"
)

// Repo reads and writes the book collection as a whole. Every mutation is a
// full read-modify-write; there is no partial update and no locking, so
// concurrent writers can race (accepted limitation of the flat-file model).
type Repo interface {
	Load(ctx context.Context) ([]model.Book, error)
	Save(ctx context.Context, books []model.Book) error
}

type fileRepo struct{ path string }

func NewFile(path string) Repo { return &fileRepo{path: path} }

func (r *fileRepo) Load(_ context.Context) ([]model.Book, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read books file: %w", err)
	}
	var books []model.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse books file: %w", err)
	}
	return books, nil
}

func (r *fileRepo) Save(_ context.Context, books []model.Book) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write books file: %w", err)
	}
	return nil
}
