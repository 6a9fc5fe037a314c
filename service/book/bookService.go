package booksvc

import (
	"context"
	"errors"

	"eternalink/model"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Load(ctx context.Context) ([]model.Book, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Book, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Book, error) {
	return s.r.Load(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Book, error) {
	books, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, ErrNotFound
}
