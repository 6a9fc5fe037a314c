package postsvc

import (
	"errors"

	"eternalink/model"
)

var ErrNotFound = errors.New("post not found")

const snippetLen = 200

type Repo interface {
	All() []model.Post
	ByID(id int64) (*model.Post, bool)
}

type Service interface {
	List() []model.PostSummary
	Get(id int64) (*model.Post, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List() []model.PostSummary {
	posts := s.r.All()
	out := make([]model.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, model.PostSummary{
			ID:          p.ID,
			Title:       p.Title,
			Author:      p.Author,
			PublishDate: p.PublishDate,
			Tags:        p.Tags,
			HeroImage:   p.HeroImage,
			Snippet:     snippet(p.ContentHTML),
		})
	}
	return out
}

func (s *service) Get(id int64) (*model.Post, error) {
	p, ok := s.r.ByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// snippet takes the leading slice of the HTML body; the truncation marker is
// always appended, matching the listing page's expectation.
func snippet(html string) string {
	r := []rune(html)
	if len(r) > snippetLen {
		r = r[:snippetLen]
	}
	return string(r) + "..."
}
