package userrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	json "github.com/goccy/go-json"

	"eternalink/model"
)

// Repo reads and writes the user collection as a whole, mirroring the book
// store contract.
type Repo interface {
	Load(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, users []model.User) error
}

type fileRepo struct{ path string }

func NewFile(path string) Repo { return &fileRepo{path: path} }

func (r *fileRepo) Load(_ context.Context) ([]model.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		// A missing users file is an empty store, not a failure.
		if errors.Is(err, fs.ErrNotExist) {
			return []model.User{}, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}

func (r *fileRepo) Save(_ context.Context, users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
