package postrepo

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"eternalink/model"
)

// Repo is read-only: posts are loaded once at startup and never change for
// the lifetime of the process.
type Repo interface {
	All() []model.Post
	ByID(id int64) (*model.Post, bool)
}

type staticRepo struct{ posts []model.Post }

func NewFromFile(path string) (Repo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parse posts file: %w", err)
	}
	return &staticRepo{posts: posts}, nil
}

func NewStatic(posts []model.Post) Repo { return &staticRepo{posts: posts} }

func (r *staticRepo) All() []model.Post { return r.posts }

func (r *staticRepo) ByID(id int64) (*model.Post, bool) {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return &r.posts[i], true
		}
	}
	return nil, false
}
