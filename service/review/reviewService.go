package reviewsvc

import (
	"context"
	"errors"
	"time"

	"eternalink/model"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Load(ctx context.Context) ([]model.Book, error)
	Save(ctx context.Context, books []model.Book) error
}

type Service interface {
	Add(ctx context.Context, bookID int64, user string, rating int, text string) (*model.Review, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Add appends a review to the book and rewrites the whole collection. The
// read-modify-write is not serialized against other writers; a concurrent
// save can lose this update (accepted flat-file limitation).
func (s *service) Add(ctx context.Context, bookID int64, user string, rating int, text string) (*model.Review, error) {
	books, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range books {
		if books[i].ID == bookID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	if user == "" {
		user = "Anonymous"
	}
	review := model.Review{
		User:   user,
		Rating: rating,
		Date:   time.Now().Format("2006-01-02"),
		Text:   text,
	}
	books[idx].Reviews = append(books[idx].Reviews, review)

	if err := s.r.Save(ctx, books); err != nil {
		return nil, err
	}
	return &review, nil
}
