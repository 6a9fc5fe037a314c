package searchsvc

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"eternalink/model"
)

const (
	// Matches are kept up to this normalized edit distance, 0 meaning
	// exact. Same looseness knob the frontend search box was tuned with.
	scoreThreshold = 0.4

	DefaultLimit  = 6
	suggestionMax = 5
)

type Params struct {
	Query     string
	Genre     string
	MinRating *float64
	MaxPrice  *float64
	Page      int
	Limit     int
}

type Result struct {
	Books       []model.Book `json:"books"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}

type Suggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Repo interface {
	Load(ctx context.Context) ([]model.Book, error)
}

type Service interface {
	Search(ctx context.Context, p Params) (*Result, error)
	Autocomplete(ctx context.Context, q string) ([]Suggestion, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Search runs the pipeline in order: fresh load, fuzzy text match, static
// filters (AND), then pagination. Pages are 1-indexed; a page past the end is
// an empty page, not an error.
func (s *service) Search(ctx context.Context, p Params) (*Result, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}

	books, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.TrimSpace(p.Query); q != "" {
		books = rank(q, books)
	}
	if p.Genre != "" {
		books = keep(books, func(b model.Book) bool { return b.Genre == p.Genre })
	}
	if p.MinRating != nil {
		min := *p.MinRating
		books = keep(books, func(b model.Book) bool { return b.Rating.Average >= min })
	}
	if p.MaxPrice != nil {
		max := *p.MaxPrice
		books = keep(books, func(b model.Book) bool { return b.Price.Final <= max })
	}

	total := len(books)
	totalPages := (total + p.Limit - 1) / p.Limit

	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	page := make([]model.Book, end-start)
	copy(page, books[start:end])

	return &Result{Books: page, CurrentPage: p.Page, TotalPages: totalPages}, nil
}

// Autocomplete is the text-match step alone: top ranked titles as pre-built
// search links. An empty query short-circuits without touching the store.
func (s *service) Autocomplete(ctx context.Context, q string) ([]Suggestion, error) {
	if strings.TrimSpace(q) == "" {
		return []Suggestion{}, nil
	}
	books, err := s.r.Load(ctx)
	if err != nil {
		return nil, err
	}
	ranked := rank(q, books)
	if len(ranked) > suggestionMax {
		ranked = ranked[:suggestionMax]
	}
	out := make([]Suggestion, 0, len(ranked))
	for _, b := range ranked {
		out = append(out, Suggestion{
			Title: b.Title,
			URL:   "search.html?q=" + url.QueryEscape(b.Title),
		})
	}
	return out, nil
}

func keep(books []model.Book, pred func(model.Book) bool) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if pred(b) {
			out = append(out, b)
		}
	}
	return out
}

type scored struct {
	book  model.Book
	score float64
}

// rank keeps the books whose title or author matches q within the threshold,
// best match first. Ties keep the collection order.
func rank(q string, books []model.Book) []model.Book {
	matched := make([]scored, 0, len(books))
	for _, b := range books {
		sc := fieldScore(q, b.Title)
		if as := fieldScore(q, b.Author); as < sc {
			sc = as
		}
		if sc <= scoreThreshold {
			matched = append(matched, scored{book: b, score: sc})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score < matched[j].score })
	out := make([]model.Book, len(matched))
	for i, m := range matched {
		out[i] = m.book
	}
	return out
}

// fieldScore is a normalized edit distance in [0,1]: 0 for an exact or
// substring hit, 1 for no resemblance. The query is slid across the field and
// scored against the closest window, which keeps typo tolerance without
// punishing long titles ("hary" still finds "Harry Potter").
func fieldScore(q, field string) float64 {
	q = strings.ToLower(q)
	field = strings.ToLower(field)
	if q == "" || field == "" {
		return 1
	}
	if strings.Contains(field, q) {
		return 0
	}

	qr := []rune(q)
	fr := []rune(field)
	if len(qr) > len(fr) {
		d := fuzzy.LevenshteinDistance(q, field)
		return float64(d) / float64(len(qr))
	}
	best := len(qr)
	for i := 0; i+len(qr) <= len(fr); i++ {
		d := fuzzy.LevenshteinDistance(q, string(fr[i:i+len(qr)]))
		if d < best {
			best = d
		}
	}
	return float64(best) / float64(len(qr))
}
